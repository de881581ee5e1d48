package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/chronos-atelier/chronos-backend/pkg/enums"
)

// User is an authenticated identity. Role carries the admin capability.
type User struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Email        string         `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Role         enums.UserRole `gorm:"column:role;not null;default:'customer'"`
	LastLoginAt  *time.Time     `gorm:"column:last_login_at"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table used by GORM.
func (User) TableName() string {
	return "users"
}
