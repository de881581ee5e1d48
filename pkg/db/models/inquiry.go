package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is one contact-form submission. Append-only from the public side.
type Inquiry struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Subject   string    `gorm:"column:subject;not null" json:"subject"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName pins the table used by GORM.
func (Inquiry) TableName() string {
	return "inquiries"
}
