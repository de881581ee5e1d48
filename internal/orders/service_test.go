package orders

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chronos-atelier/chronos-backend/internal/cart"
	"github.com/chronos-atelier/chronos-backend/pkg/config"
	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/enums"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
	"github.com/chronos-atelier/chronos-backend/pkg/pagination"
)

func TestPlaceRefusesEmptyCart(t *testing.T) {
	svc := mustBuildOrderService(t, newStubOrderRepo(), newStubCartManager(nil))

	_, err := svc.Place(context.Background(), "tok", nil, validCheckout())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceSnapshotsTotalsAndClearsCart(t *testing.T) {
	lines := []models.CartLine{
		{Watch: models.Watch{ID: "w1", Name: "Submariner Date", Price: 14500}, Quantity: 2},
		{Watch: models.Watch{ID: "w4", Name: "Speedmaster Moonwatch", Price: 7200}, Quantity: 1},
	}
	carts := newStubCartManager(lines)
	repo := newStubOrderRepo()
	svc := mustBuildOrderService(t, repo, carts)

	userID := uuid.New()
	dto, err := svc.Place(context.Background(), "tok", &userID, validCheckout())
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if dto.Total != 36200 {
		t.Fatalf("expected total 36200, got %d", dto.Total)
	}
	if dto.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", dto.Status)
	}
	if !strings.HasPrefix(dto.Reference, "ORD-") || len(dto.Reference) != 16 {
		t.Fatalf("unexpected reference %q", dto.Reference)
	}
	if dto.UserID == nil || *dto.UserID != userID {
		t.Fatalf("expected order bound to user, got %v", dto.UserID)
	}
	if !carts.cleared {
		t.Fatal("expected cart cleared after successful checkout")
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected 1 stored order, got %d", len(repo.orders))
	}
}

func TestPlaceKeepsCartWhenInsertFails(t *testing.T) {
	lines := []models.CartLine{{Watch: models.Watch{ID: "w1", Price: 100}, Quantity: 1}}
	carts := newStubCartManager(lines)
	repo := newStubOrderRepo()
	repo.insertErr = gorm.ErrInvalidDB
	svc := mustBuildOrderService(t, repo, carts)

	if _, err := svc.Place(context.Background(), "tok", nil, validCheckout()); err == nil {
		t.Fatal("expected insert failure to surface")
	}
	if carts.cleared {
		t.Fatal("cart must not be cleared when the order was not stored")
	}
}

func TestCancelRejectsOtherUsersOrder(t *testing.T) {
	owner := uuid.New()
	repo := newStubOrderRepo()
	order := storedOrder(owner, enums.OrderStatusPending, time.Now().UTC())
	repo.orders = append(repo.orders, order)
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	err := svc.Cancel(context.Background(), order.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCancelRejectsNonPendingOrder(t *testing.T) {
	owner := uuid.New()
	repo := newStubOrderRepo()
	order := storedOrder(owner, enums.OrderStatusShipped, time.Now().UTC())
	repo.orders = append(repo.orders, order)
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	err := svc.Cancel(context.Background(), order.ID, owner)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCancelRejectsAfterWindow(t *testing.T) {
	owner := uuid.New()
	repo := newStubOrderRepo()
	order := storedOrder(owner, enums.OrderStatusPending, time.Now().UTC().Add(-25*time.Hour))
	repo.orders = append(repo.orders, order)
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	err := svc.Cancel(context.Background(), order.ID, owner)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if len(repo.orders) != 1 {
		t.Fatal("expired cancellation must not delete the order")
	}
}

func TestCancelDeletesPendingOrderInWindow(t *testing.T) {
	owner := uuid.New()
	repo := newStubOrderRepo()
	order := storedOrder(owner, enums.OrderStatusPending, time.Now().UTC().Add(-time.Hour))
	repo.orders = append(repo.orders, order)
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	if err := svc.Cancel(context.Background(), order.ID, owner); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatal("expected order row deleted")
	}
}

func TestSetStatusValidatesAndReturnsOrder(t *testing.T) {
	owner := uuid.New()
	repo := newStubOrderRepo()
	order := storedOrder(owner, enums.OrderStatusPending, time.Now().UTC())
	repo.orders = append(repo.orders, order)
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	dto, err := svc.SetStatus(context.Background(), order.ID, StatusUpdateRequest{Status: "shipped"})
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if dto.Status != enums.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", dto.Status)
	}

	_, err = svc.SetStatus(context.Background(), order.ID, StatusUpdateRequest{Status: "returned"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestListMineIncludesGuestOrdersByEmail(t *testing.T) {
	userID := uuid.New()
	repo := newStubOrderRepo()
	owned := storedOrder(userID, enums.OrderStatusPending, time.Now().UTC())
	guest := storedOrder(uuid.New(), enums.OrderStatusPending, time.Now().UTC())
	guest.UserID = nil
	guest.CustomerEmail = "ada@example.com"
	repo.orders = append(repo.orders, owned, guest)
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	got, err := svc.ListMine(context.Background(), userID, "Ada@Example.com")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected owned and guest orders, got %d", len(got))
	}
}

func TestListAllPaginates(t *testing.T) {
	repo := newStubOrderRepo()
	base := time.Now().UTC()
	for i := 0; i < 30; i++ {
		o := storedOrder(uuid.New(), enums.OrderStatusPending, base.Add(-time.Duration(i)*time.Minute))
		repo.orders = append(repo.orders, o)
	}
	svc := mustBuildOrderService(t, repo, newStubCartManager(nil))

	page, err := svc.ListAll(context.Background(), pagination.Params{Limit: 25})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(page.Orders) != 25 {
		t.Fatalf("expected 25 orders, got %d", len(page.Orders))
	}
	if page.NextCursor == "" {
		t.Fatal("expected a next cursor for the remaining rows")
	}

	rest, err := svc.ListAll(context.Background(), pagination.Params{Limit: 25, Cursor: page.NextCursor})
	if err != nil {
		t.Fatalf("list all page 2: %v", err)
	}
	if len(rest.Orders) != 5 {
		t.Fatalf("expected 5 remaining orders, got %d", len(rest.Orders))
	}
	if rest.NextCursor != "" {
		t.Fatalf("expected no cursor on the last page, got %q", rest.NextCursor)
	}
}

func mustBuildOrderService(t *testing.T, repo *stubOrderRepo, carts *stubCartManager) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:        repo,
		CartManager: carts,
		Config:      config.OrdersConfig{CancelWindow: 24 * time.Hour},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:    "Ada Example",
		CustomerEmail:   "ada@example.com",
		CustomerAddress: "1 Rue de la Paix, Paris",
	}
}

func storedOrder(owner uuid.UUID, status enums.OrderStatus, placedAt time.Time) models.Order {
	id, _ := uuid.NewV7()
	return models.Order{
		ID:        id,
		Reference: orderReference(id),
		PlacedAt:  placedAt,
		Items:     []models.CartLine{{Watch: models.Watch{ID: "w1", Price: 100}, Quantity: 1}},
		Total:     100,
		Status:    status,
		UserID:    &owner,
	}
}

type stubOrderRepo struct {
	orders    []models.Order
	insertErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{}
}

func (s *stubOrderRepo) Insert(ctx context.Context, order *models.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.orders = append(s.orders, *order)
	return nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if (o.UserID != nil && *o.UserID == userID) || (email != "" && o.CustomerEmail == email) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) ListAll(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Order, error) {
	sorted := append([]models.Order(nil), s.orders...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].PlacedAt.After(sorted[i].PlacedAt) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	var out []models.Order
	for _, o := range sorted {
		if cursor != nil && !o.PlacedAt.Before(cursor.PlacedAt) {
			continue
		}
		out = append(out, o)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubOrderRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	return nil
}

type stubCartManager struct {
	lines   []models.CartLine
	cleared bool
}

func newStubCartManager(lines []models.CartLine) *stubCartManager {
	return &stubCartManager{lines: lines}
}

func (s *stubCartManager) Get(ctx context.Context, token string) (*cart.CartDTO, error) {
	totalValue := 0
	for _, line := range s.lines {
		totalValue += line.Subtotal()
	}
	return &cart.CartDTO{Items: append([]models.CartLine(nil), s.lines...), Total: totalValue}, nil
}

func (s *stubCartManager) Clear(ctx context.Context, token string) error {
	s.cleared = true
	s.lines = nil
	return nil
}
