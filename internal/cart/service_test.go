package cart

import (
	"context"
	"testing"

	"github.com/chronos-atelier/chronos-backend/internal/catalog"
	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
)

func TestAddSnapshotsWatchPrice(t *testing.T) {
	cat := &stubCatalog{watches: map[string]catalog.WatchDTO{
		"w1": {ID: "w1", Name: "Submariner Date", Price: 14500},
	}}
	store := newStubLineStore()
	svc := mustBuildCartService(t, store, cat)

	dto, err := svc.Add(context.Background(), "tok", "w1", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if dto.Total != 29000 {
		t.Fatalf("expected total 29000, got %d", dto.Total)
	}

	// a later price change must not affect the stored line
	cat.watches["w1"] = catalog.WatchDTO{ID: "w1", Name: "Submariner Date", Price: 99999}
	dto, err = svc.Get(context.Background(), "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Items[0].Watch.Price != 14500 {
		t.Fatalf("snapshot price changed, got %d", dto.Items[0].Watch.Price)
	}
}

func TestAddUnknownWatchFails(t *testing.T) {
	svc := mustBuildCartService(t, newStubLineStore(), &stubCatalog{watches: map[string]catalog.WatchDTO{}})

	_, err := svc.Add(context.Background(), "tok", "missing", 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc := mustBuildCartService(t, newStubLineStore(), &stubCatalog{})

	_, err := svc.Add(context.Background(), "tok", "w1", 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := newStubLineStore()
	store.carts["tok"] = []models.CartLine{{Watch: models.Watch{ID: "w1", Price: 100}, Quantity: 3}}
	svc := mustBuildCartService(t, store, &stubCatalog{})

	dto, err := svc.UpdateQuantity(context.Background(), "tok", "w1", 0)
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if len(dto.Items) != 0 || dto.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", dto)
	}
}

func TestClearDeletesCart(t *testing.T) {
	store := newStubLineStore()
	store.carts["tok"] = []models.CartLine{{Watch: models.Watch{ID: "w1", Price: 100}, Quantity: 1}}
	svc := mustBuildCartService(t, store, &stubCatalog{})

	if err := svc.Clear(context.Background(), "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.carts["tok"]; ok {
		t.Fatal("expected cart removed from store")
	}
}

func TestGetMissingCartIsEmpty(t *testing.T) {
	svc := mustBuildCartService(t, newStubLineStore(), &stubCatalog{})

	dto, err := svc.Get(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(dto.Items) != 0 || dto.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", dto)
	}
}

func TestOperationsRequireToken(t *testing.T) {
	svc := mustBuildCartService(t, newStubLineStore(), &stubCatalog{})

	if _, err := svc.Get(context.Background(), ""); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for empty token")
	}
	if err := svc.Clear(context.Background(), ""); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for empty token")
	}
}

func mustBuildCartService(t *testing.T, store lineStore, cat watchGetter) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: store, Catalog: cat})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubLineStore struct {
	carts map[string][]models.CartLine
}

func newStubLineStore() *stubLineStore {
	return &stubLineStore{carts: map[string][]models.CartLine{}}
}

func (s *stubLineStore) Load(ctx context.Context, token string) ([]models.CartLine, error) {
	return append([]models.CartLine(nil), s.carts[token]...), nil
}

func (s *stubLineStore) Save(ctx context.Context, token string, lines []models.CartLine) error {
	s.carts[token] = append([]models.CartLine(nil), lines...)
	return nil
}

func (s *stubLineStore) Clear(ctx context.Context, token string) error {
	delete(s.carts, token)
	return nil
}

type stubCatalog struct {
	watches map[string]catalog.WatchDTO
}

func (s *stubCatalog) Get(ctx context.Context, id string) (*catalog.WatchDTO, error) {
	w, ok := s.watches[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "watch not found")
	}
	return &w, nil
}
