package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	"fieldku_backend/internals/features/users/user/dto"
	"fieldku_backend/internals/features/users/user/model"
	helper "fieldku_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =======================
// ➕ Create User (admin)
// =======================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     body.UserName,
		UserEmail:    body.UserEmail,
		UserPassword: string(hashed),
		UserPhone:    body.UserPhone,
		UserRole:     body.UserRole,
	}
	if body.ZoneID != nil {
		zid, err := uuid.Parse(*body.ZoneID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "zone_id tidak valid")
		}
		user.UserZoneID = &zid
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserDTO(user))
}

// =======================
// 📄 Get All Users (paginated, filter role/zone/search)
// =======================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if zoneID := c.Query("zone_id"); zoneID != "" {
		q = q.Where("user_zone_id = ?", zoneID)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserDTO(u))
	}

	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 📄 Roster: service person aktif (opsional filter zona)
// =======================
func (ctrl *UserController) GetRoster(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.UserModel{}).
		Where("user_role = ? AND user_is_active = true", constants.RoleServicePerson)
	if zoneID := c.Query("zone_id"); zoneID != "" {
		q = q.Where("user_zone_id = ?", zoneID)
	}

	var users []model.UserModel
	if err := q.Order("user_name ASC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve roster")
	}

	resp := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserDTO(u))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// 🔍 Get User by ID
// =======================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
}

// =======================
// ✏️ Update User (admin)
// =======================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	if body.UserName != nil {
		user.UserName = *body.UserName
	}
	if body.UserPhone != nil {
		user.UserPhone = body.UserPhone
	}
	if body.UserRole != nil {
		user.UserRole = *body.UserRole
	}
	if body.ZoneID != nil {
		zid, err := uuid.Parse(*body.ZoneID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "zone_id tidak valid")
		}
		user.UserZoneID = &zid
	}
	if body.IsActive != nil {
		user.UserIsActive = *body.IsActive
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}

// =======================
// 🗑️ Delete User (soft delete)
// =======================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Where("user_id = ?", id).Delete(&model.UserModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id})
}

// =======================
// 👤 Me (profil dari token)
// =======================
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
}
