package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/chronos-atelier/chronos-backend/pkg/enums"
)

// Order is an immutable snapshot of a checkout. Items and total are fixed at
// placement; only Status changes afterward.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Reference       string            `gorm:"column:reference;uniqueIndex;not null" json:"reference"`
	PlacedAt        time.Time         `gorm:"column:placed_at;not null" json:"placed_at"`
	Items           []CartLine        `gorm:"column:items;type:jsonb;serializer:json;not null" json:"items"`
	Total           int               `gorm:"column:total;not null" json:"total"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	CustomerName    string            `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerEmail   string            `gorm:"column:customer_email;not null" json:"customer_email"`
	CustomerAddress string            `gorm:"column:customer_address;not null" json:"customer_address"`
	UserID          *uuid.UUID        `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the table used by GORM.
func (Order) TableName() string {
	return "orders"
}
