package dto

import (
	"time"

	"github.com/google/uuid"

	"fieldku_backend/internals/features/zones/model"
)

type ZoneDTO struct {
	ZoneID            uuid.UUID `json:"zone_id"`
	ZoneName          string    `json:"zone_name"`
	ZoneCenterLat     float64   `json:"zone_center_lat"`
	ZoneCenterLng     float64   `json:"zone_center_lng"`
	ZoneRadiusMeters  float64   `json:"zone_radius_meters"`
	ZoneCoverageAreas []string  `json:"zone_coverage_areas"`
	ZoneCreatedAt     time.Time `json:"zone_created_at"`
}

type CreateZoneRequest struct {
	ZoneName          string   `json:"zone_name" validate:"required,min=2,max=100"`
	ZoneCenterLat     float64  `json:"zone_center_lat" validate:"required,gte=-90,lte=90"`
	ZoneCenterLng     float64  `json:"zone_center_lng" validate:"required,gte=-180,lte=180"`
	ZoneRadiusMeters  float64  `json:"zone_radius_meters" validate:"omitempty,gt=0"`
	ZoneCoverageAreas []string `json:"zone_coverage_areas"`
}

type UpdateZoneRequest struct {
	ZoneName          *string  `json:"zone_name" validate:"omitempty,min=2,max=100"`
	ZoneCenterLat     *float64 `json:"zone_center_lat" validate:"omitempty,gte=-90,lte=90"`
	ZoneCenterLng     *float64 `json:"zone_center_lng" validate:"omitempty,gte=-180,lte=180"`
	ZoneRadiusMeters  *float64 `json:"zone_radius_meters" validate:"omitempty,gt=0"`
	ZoneCoverageAreas []string `json:"zone_coverage_areas"`
}

func ToZoneDTO(m model.ServiceZoneModel) ZoneDTO {
	return ZoneDTO{
		ZoneID:            m.ZoneID,
		ZoneName:          m.ZoneName,
		ZoneCenterLat:     m.ZoneCenterLat,
		ZoneCenterLng:     m.ZoneCenterLng,
		ZoneRadiusMeters:  m.ZoneRadiusMeters,
		ZoneCoverageAreas: m.ZoneCoverageAreas,
		ZoneCreatedAt:     m.ZoneCreatedAt,
	}
}
