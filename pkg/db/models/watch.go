package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/chronos-atelier/chronos-backend/pkg/enums"
)

// Watch is a sellable catalog entry. Identifiers are strings so the seed
// catalog's short ids and client-supplied ids coexist with generated ones.
type Watch struct {
	ID                  string              `gorm:"column:id;primaryKey" json:"id"`
	Name                string              `gorm:"column:name;not null" json:"name"`
	BrandID             string              `gorm:"column:brand_id;not null" json:"brand_id"`
	BrandName           string              `gorm:"column:brand_name;not null" json:"brand_name"`
	Price               int                 `gorm:"column:price;not null" json:"price"`
	Description         string              `gorm:"column:description" json:"description"`
	Images              pq.StringArray      `gorm:"column:images;type:text[];not null" json:"images"`
	SpecCase            string              `gorm:"column:spec_case" json:"spec_case"`
	SpecMovement        string              `gorm:"column:spec_movement" json:"spec_movement"`
	SpecWaterResistance string              `gorm:"column:spec_water_resistance" json:"spec_water_resistance"`
	SpecStrap           string              `gorm:"column:spec_strap" json:"spec_strap"`
	Stock               int                 `gorm:"column:stock;not null;default:0" json:"stock"`
	Category            enums.WatchCategory `gorm:"column:category;not null" json:"category"`
	Featured            bool                `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the table used by GORM.
func (Watch) TableName() string {
	return "watches"
}
