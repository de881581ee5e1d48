package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
)

// Repository exposes the singleton settings row.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a settings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindSingleton loads the one settings row if it has ever been saved.
func (r *Repository) FindSingleton(ctx context.Context) (*models.SiteSettings, error) {
	var row models.SiteSettings
	if err := r.db.WithContext(ctx).First(&row, "id = ?", models.SiteSettingsID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert overwrites the singleton row wholesale.
func (r *Repository) Upsert(ctx context.Context, row *models.SiteSettings) error {
	row.ID = models.SiteSettingsID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}
