package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
)

// Repository exposes watch persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every watch ordered by creation time, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Watch, error) {
	var watches []models.Watch
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&watches).Error; err != nil {
		return nil, err
	}
	return watches, nil
}

// FindByID loads a single watch.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Watch, error) {
	var watch models.Watch
	if err := r.db.WithContext(ctx).First(&watch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &watch, nil
}

// Insert creates a new watch row.
func (r *Repository) Insert(ctx context.Context, watch *models.Watch) error {
	return r.db.WithContext(ctx).Create(watch).Error
}

// Upsert writes the watch, replacing every column when the id already exists.
func (r *Repository) Upsert(ctx context.Context, watch *models.Watch) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(watch).Error
}

// DeleteByID removes the watch row. Missing ids are not an error.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Watch{}, "id = ?", id).Error
}
