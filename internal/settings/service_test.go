package settings

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
)

func TestGetReturnsDefaultsWhenUnsaved(t *testing.T) {
	svc := mustBuildSettingsService(t, &stubSettingsRepo{})

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HeroTitle != "Absolute Legacy" {
		t.Fatalf("expected default hero title, got %q", got.HeroTitle)
	}
	if got.ImmersiveButtonText != "Request Exclusive Access" {
		t.Fatalf("expected default immersive button, got %q", got.ImmersiveButtonText)
	}
}

func TestGetMergesSavedRowOverDefaults(t *testing.T) {
	repo := &stubSettingsRepo{row: &models.SiteSettings{
		ID:        models.SiteSettingsID,
		HeroTitle: "House of Hours",
	}}
	svc := mustBuildSettingsService(t, repo)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HeroTitle != "House of Hours" {
		t.Fatalf("expected saved hero title, got %q", got.HeroTitle)
	}
	// blank columns fall back to the defaults
	if got.HeroTag != "The Art of Precision" {
		t.Fatalf("expected default hero tag, got %q", got.HeroTag)
	}
}

func TestUpdateUpsertsWholesale(t *testing.T) {
	repo := &stubSettingsRepo{row: &models.SiteSettings{
		ID:      models.SiteSettingsID,
		HeroTag: "Old Tag",
	}}
	svc := mustBuildSettingsService(t, repo)

	got, err := svc.Update(context.Background(), SettingsInput{HeroTitle: "House of Hours"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if repo.row.HeroTag != "" {
		t.Fatalf("expected wholesale overwrite to drop the old tag, got %q", repo.row.HeroTag)
	}
	if repo.row.ID != models.SiteSettingsID {
		t.Fatalf("expected singleton id, got %d", repo.row.ID)
	}
	if got.HeroTitle != "House of Hours" {
		t.Fatalf("expected saved title in response, got %q", got.HeroTitle)
	}
	if got.HeroTag != "The Art of Precision" {
		t.Fatalf("expected default tag in merged response, got %q", got.HeroTag)
	}
}

func mustBuildSettingsService(t *testing.T, repo settingsRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubSettingsRepo struct {
	row *models.SiteSettings
}

func (s *stubSettingsRepo) FindSingleton(ctx context.Context) (*models.SiteSettings, error) {
	if s.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s.row
	return &copied, nil
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, row *models.SiteSettings) error {
	copied := *row
	s.row = &copied
	return nil
}
