package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/zones/dto"
	"fieldku_backend/internals/features/zones/model"
	helper "fieldku_backend/internals/helpers"
)

var validateZone = validator.New()

type ZoneController struct {
	DB *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{DB: db}
}

// =======================
// ➕ Create Zone
// =======================
func (ctrl *ZoneController) CreateZone(c *fiber.Ctx) error {
	var body dto.CreateZoneRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateZone.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	zone := model.ServiceZoneModel{
		ZoneName:          body.ZoneName,
		ZoneCenterLat:     body.ZoneCenterLat,
		ZoneCenterLng:     body.ZoneCenterLng,
		ZoneRadiusMeters:  body.ZoneRadiusMeters,
		ZoneCoverageAreas: body.ZoneCoverageAreas,
	}
	if zone.ZoneRadiusMeters <= 0 {
		zone.ZoneRadiusMeters = 5000
	}

	if err := ctrl.DB.Create(&zone).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create zone")
	}
	return helper.JsonCreated(c, "Zone created", dto.ToZoneDTO(zone))
}

// =======================
// 📄 Get All Zones
// =======================
func (ctrl *ZoneController) GetAllZones(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ServiceZoneModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count zones")
	}

	var zones []model.ServiceZoneModel
	if err := ctrl.DB.Order("zone_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&zones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve zones")
	}

	resp := make([]dto.ZoneDTO, 0, len(zones))
	for _, z := range zones {
		resp = append(resp, dto.ToZoneDTO(z))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get Zone by ID
// =======================
func (ctrl *ZoneController) GetZoneByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var zone model.ServiceZoneModel
	if err := ctrl.DB.Where("zone_id = ?", id).First(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Zone tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve zone")
	}
	return helper.JsonOK(c, "ok", dto.ToZoneDTO(zone))
}

// =======================
// ✏️ Update Zone
// =======================
func (ctrl *ZoneController) UpdateZone(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateZoneRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateZone.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var zone model.ServiceZoneModel
	if err := ctrl.DB.Where("zone_id = ?", id).First(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Zone tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve zone")
	}

	if body.ZoneName != nil {
		zone.ZoneName = *body.ZoneName
	}
	if body.ZoneCenterLat != nil {
		zone.ZoneCenterLat = *body.ZoneCenterLat
	}
	if body.ZoneCenterLng != nil {
		zone.ZoneCenterLng = *body.ZoneCenterLng
	}
	if body.ZoneRadiusMeters != nil {
		zone.ZoneRadiusMeters = *body.ZoneRadiusMeters
	}
	if body.ZoneCoverageAreas != nil {
		zone.ZoneCoverageAreas = body.ZoneCoverageAreas
	}

	if err := ctrl.DB.Save(&zone).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update zone")
	}
	return helper.JsonUpdated(c, "Zone updated", dto.ToZoneDTO(zone))
}

// =======================
// 🗑️ Delete Zone (soft delete)
// =======================
func (ctrl *ZoneController) DeleteZone(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Where("zone_id = ?", id).Delete(&model.ServiceZoneModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete zone")
	}
	return helper.JsonDeleted(c, "Zone deleted", fiber.Map{"zone_id": id})
}
