package cart

import (
	"context"
	"fmt"

	"github.com/chronos-atelier/chronos-backend/internal/catalog"
	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
)

// CartDTO is the transport shape of one cart.
type CartDTO struct {
	Items []models.CartLine `json:"items"`
	Total int               `json:"total"`
}

// Service manipulates per-token carts. Writes follow the local-patch policy:
// each operation applies its change and returns the resulting cart without a
// round trip through the catalog.
type Service interface {
	Get(ctx context.Context, token string) (*CartDTO, error)
	Add(ctx context.Context, token, watchID string, quantity int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, token, watchID string, quantity int) (*CartDTO, error)
	Remove(ctx context.Context, token, watchID string) (*CartDTO, error)
	Clear(ctx context.Context, token string) error
}

type lineStore interface {
	Load(ctx context.Context, token string) ([]models.CartLine, error)
	Save(ctx context.Context, token string, lines []models.CartLine) error
	Clear(ctx context.Context, token string) error
}

type watchGetter interface {
	Get(ctx context.Context, id string) (*catalog.WatchDTO, error)
}

type service struct {
	store   lineStore
	catalog watchGetter
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Store   lineStore
	Catalog watchGetter
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart line store is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog getter is required")
	}
	return &service{store: params.Store, catalog: params.Catalog}, nil
}

func (s *service) Get(ctx context.Context, token string) (*CartDTO, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	lines, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return toDTO(lines), nil
}

// Add snapshots the watch by value at add time. Later catalog edits do not
// touch lines already in the cart.
func (s *service) Add(ctx context.Context, token, watchID string, quantity int) (*CartDTO, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	watch, err := s.catalog.Get(ctx, watchID)
	if err != nil {
		return nil, err
	}

	lines, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	lines = addLine(lines, watch.ToModel(), quantity)
	return s.persist(ctx, token, lines)
}

func (s *service) UpdateQuantity(ctx context.Context, token, watchID string, quantity int) (*CartDTO, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	lines, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	lines = setQuantity(lines, watchID, quantity)
	return s.persist(ctx, token, lines)
}

func (s *service) Remove(ctx context.Context, token, watchID string) (*CartDTO, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	lines, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	lines = removeLine(lines, watchID)
	return s.persist(ctx, token, lines)
}

func (s *service) Clear(ctx context.Context, token string) error {
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	if err := s.store.Clear(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) persist(ctx context.Context, token string, lines []models.CartLine) (*CartDTO, error) {
	if err := s.store.Save(ctx, token, lines); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return toDTO(lines), nil
}

func toDTO(lines []models.CartLine) *CartDTO {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return &CartDTO{Items: lines, Total: total(lines)}
}
