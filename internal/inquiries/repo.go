package inquiries

import (
	"context"

	"gorm.io/gorm"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
)

// Repository exposes inquiry persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an inquiries repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends one contact-form submission.
func (r *Repository) Insert(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

// ListAll returns every inquiry, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}
