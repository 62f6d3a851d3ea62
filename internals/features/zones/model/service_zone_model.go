package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ServiceZoneModel struct {
	ZoneID            uuid.UUID      `gorm:"column:zone_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"zone_id"`
	ZoneName          string         `gorm:"column:zone_name;type:varchar(100);not null;unique" json:"zone_name"`
	ZoneCenterLat     float64        `gorm:"column:zone_center_lat;not null" json:"zone_center_lat"`
	ZoneCenterLng     float64        `gorm:"column:zone_center_lng;not null" json:"zone_center_lng"`
	ZoneRadiusMeters  float64        `gorm:"column:zone_radius_meters;not null;default:5000" json:"zone_radius_meters"`
	ZoneCoverageAreas pq.StringArray `gorm:"column:zone_coverage_areas;type:text[]" json:"zone_coverage_areas"`

	ZoneCreatedAt time.Time      `gorm:"column:zone_created_at;autoCreateTime" json:"zone_created_at"`
	ZoneUpdatedAt time.Time      `gorm:"column:zone_updated_at;autoUpdateTime" json:"zone_updated_at"`
	ZoneDeletedAt gorm.DeletedAt `gorm:"column:zone_deleted_at;index" json:"-"`
}

func (ServiceZoneModel) TableName() string {
	return "service_zones"
}
