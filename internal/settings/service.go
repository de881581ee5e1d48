package settings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
)

// SettingsInput is the administrative write payload. Saves overwrite the row
// wholesale; a field left empty falls back to its default on read.
type SettingsInput struct {
	HeroTag                 string `json:"hero_tag"`
	HeroTitle               string `json:"hero_title"`
	HeroSubtitle            string `json:"hero_subtitle"`
	HeroImageURL            string `json:"hero_image_url" validate:"omitempty,url"`
	HeroPrimaryBtnText      string `json:"hero_primary_btn_text"`
	HeroSecondaryBtnText    string `json:"hero_secondary_btn_text"`
	FeaturedTag             string `json:"featured_tag"`
	FeaturedHeading         string `json:"featured_heading"`
	FeaturedArchiveLinkText string `json:"featured_archive_link_text"`
	ImmersiveHeading        string `json:"immersive_heading"`
	ImmersiveSubheading     string `json:"immersive_subheading"`
	ImmersiveDescription    string `json:"immersive_description"`
	ImmersiveButtonText     string `json:"immersive_button_text"`
	ImmersiveImageURL       string `json:"immersive_image_url" validate:"omitempty,url"`
}

// Service defines the site settings behavior needed by the controllers.
type Service interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, input SettingsInput) (*models.SiteSettings, error)
}

type settingsRepository interface {
	FindSingleton(ctx context.Context) (*models.SiteSettings, error)
	Upsert(ctx context.Context, row *models.SiteSettings) error
}

type service struct {
	repo settingsRepository
}

// NewService constructs a settings service with the provided repository.
func NewService(repo settingsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository is required")
	}
	return &service{repo: repo}, nil
}

// Get returns the saved settings merged over the defaults.
func (s *service) Get(ctx context.Context) (*models.SiteSettings, error) {
	merged := Defaults()

	row, err := s.repo.FindSingleton(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &merged, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load site settings")
	}

	mergeOver(&merged, row)
	return &merged, nil
}

// Update overwrites the singleton row and returns the merged result.
func (s *service) Update(ctx context.Context, input SettingsInput) (*models.SiteSettings, error) {
	row := input.toModel()
	if err := s.repo.Upsert(ctx, &row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save site settings")
	}

	merged := Defaults()
	mergeOver(&merged, &row)
	return &merged, nil
}

func (in SettingsInput) toModel() models.SiteSettings {
	return models.SiteSettings{
		ID:                      models.SiteSettingsID,
		HeroTag:                 in.HeroTag,
		HeroTitle:               in.HeroTitle,
		HeroSubtitle:            in.HeroSubtitle,
		HeroImageURL:            in.HeroImageURL,
		HeroPrimaryBtnText:      in.HeroPrimaryBtnText,
		HeroSecondaryBtnText:    in.HeroSecondaryBtnText,
		FeaturedTag:             in.FeaturedTag,
		FeaturedHeading:         in.FeaturedHeading,
		FeaturedArchiveLinkText: in.FeaturedArchiveLinkText,
		ImmersiveHeading:        in.ImmersiveHeading,
		ImmersiveSubheading:     in.ImmersiveSubheading,
		ImmersiveDescription:    in.ImmersiveDescription,
		ImmersiveButtonText:     in.ImmersiveButtonText,
		ImmersiveImageURL:       in.ImmersiveImageURL,
	}
}

// mergeOver copies every non-empty field of row onto dst.
func mergeOver(dst, row *models.SiteSettings) {
	fields := []struct {
		dst *string
		src string
	}{
		{&dst.HeroTag, row.HeroTag},
		{&dst.HeroTitle, row.HeroTitle},
		{&dst.HeroSubtitle, row.HeroSubtitle},
		{&dst.HeroImageURL, row.HeroImageURL},
		{&dst.HeroPrimaryBtnText, row.HeroPrimaryBtnText},
		{&dst.HeroSecondaryBtnText, row.HeroSecondaryBtnText},
		{&dst.FeaturedTag, row.FeaturedTag},
		{&dst.FeaturedHeading, row.FeaturedHeading},
		{&dst.FeaturedArchiveLinkText, row.FeaturedArchiveLinkText},
		{&dst.ImmersiveHeading, row.ImmersiveHeading},
		{&dst.ImmersiveSubheading, row.ImmersiveSubheading},
		{&dst.ImmersiveDescription, row.ImmersiveDescription},
		{&dst.ImmersiveButtonText, row.ImmersiveButtonText},
		{&dst.ImmersiveImageURL, row.ImmersiveImageURL},
	}
	for _, f := range fields {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	dst.UpdatedAt = row.UpdatedAt
}
