package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
)

// Service defines the catalog behavior needed by the controllers.
//
// The write policy is refetch-after-write: Create and Update return the full
// refreshed list instead of patching a single entry, so callers always see
// server-assigned defaults. Delete intentionally does not refetch and does not
// set the initialized marker.
type Service interface {
	List(ctx context.Context) ([]WatchDTO, error)
	Get(ctx context.Context, id string) (*WatchDTO, error)
	Create(ctx context.Context, input WatchInput) ([]WatchDTO, error)
	Update(ctx context.Context, id string, input WatchInput) ([]WatchDTO, error)
	Delete(ctx context.Context, id string) error
}

type watchRepository interface {
	ListAll(ctx context.Context) ([]models.Watch, error)
	FindByID(ctx context.Context, id string) (*models.Watch, error)
	Insert(ctx context.Context, watch *models.Watch) error
	Upsert(ctx context.Context, watch *models.Watch) error
	DeleteByID(ctx context.Context, id string) error
}

type markerStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type markerKeyer interface {
	CatalogInitializedKey() string
}

type service struct {
	repo   watchRepository
	marker markerStore
	keyer  markerKeyer
}

// ServiceParams bundles the dependencies required to build a catalog service.
type ServiceParams struct {
	Repo        watchRepository
	MarkerStore markerStore
	MarkerKeyer markerKeyer
}

// NewService constructs a catalog service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("watch repository is required")
	}
	if params.MarkerStore == nil || params.MarkerKeyer == nil {
		return nil, fmt.Errorf("initialized marker store is required")
	}
	return &service{
		repo:   params.Repo,
		marker: params.MarkerStore,
		keyer:  params.MarkerKeyer,
	}, nil
}

// List returns the catalog, substituting the built-in seed set when the table
// is empty and no write has ever marked it initialized.
func (s *service) List(ctx context.Context) ([]WatchDTO, error) {
	watches, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list watches")
	}

	if len(watches) == 0 {
		initialized, err := s.marker.Exists(ctx, s.keyer.CatalogInitializedKey())
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check initialized marker")
		}
		if !initialized {
			return FromModels(SeedWatches()), nil
		}
	}

	return FromModels(watches), nil
}

func (s *service) Get(ctx context.Context, id string) (*WatchDTO, error) {
	watch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// fall through to the seed set when the table has never been written
			if dto := s.seedLookup(ctx, id); dto != nil {
				return dto, nil
			}
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "watch not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find watch")
	}
	dto := FromModel(*watch)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input WatchInput) ([]WatchDTO, error) {
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid watch category")
	}

	watch := input.ToModel()
	if watch.ID == "" {
		watch.ID = uuid.NewString()
	}

	if err := s.repo.Insert(ctx, &watch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert watch")
	}

	return s.afterWrite(ctx)
}

func (s *service) Update(ctx context.Context, id string, input WatchInput) ([]WatchDTO, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "watch id is required")
	}
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid watch category")
	}

	watch := input.ToModel()
	watch.ID = id

	if err := s.repo.Upsert(ctx, &watch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert watch")
	}

	return s.afterWrite(ctx)
}

// Delete removes the watch by id. It neither refetches nor sets the
// initialized marker, mirroring the add/update asymmetry of the storefront.
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "watch id is required")
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete watch")
	}
	return nil
}

// afterWrite sets the initialized marker so the seed fallback never
// reactivates, then refetches the catalog.
func (s *service) afterWrite(ctx context.Context) ([]WatchDTO, error) {
	if err := s.marker.Set(ctx, s.keyer.CatalogInitializedKey(), "true", 0); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set initialized marker")
	}
	watches, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "refetch watches")
	}
	return FromModels(watches), nil
}

func (s *service) seedLookup(ctx context.Context, id string) *WatchDTO {
	initialized, err := s.marker.Exists(ctx, s.keyer.CatalogInitializedKey())
	if err != nil || initialized {
		return nil
	}
	for _, seed := range SeedWatches() {
		if seed.ID == id {
			dto := FromModel(seed)
			return &dto
		}
	}
	return nil
}
