package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chronos-atelier/chronos-backend/internal/cart"
	"github.com/chronos-atelier/chronos-backend/pkg/config"
	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/enums"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
	"github.com/chronos-atelier/chronos-backend/pkg/logger"
	"github.com/chronos-atelier/chronos-backend/pkg/pagination"
)

// Service defines the order behavior needed by the controllers.
type Service interface {
	Place(ctx context.Context, cartToken string, userID *uuid.UUID, req CheckoutRequest) (*OrderDTO, error)
	ListMine(ctx context.Context, userID uuid.UUID, email string) ([]OrderDTO, error)
	ListAll(ctx context.Context, params pagination.Params) (*OrderPage, error)
	Cancel(ctx context.Context, id uuid.UUID, requester uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, req StatusUpdateRequest) (*OrderDTO, error)
}

type orderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, email string) ([]models.Order, error)
	ListAll(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type cartManager interface {
	Get(ctx context.Context, token string) (*cart.CartDTO, error)
	Clear(ctx context.Context, token string) error
}

type service struct {
	repo         orderRepository
	carts        cartManager
	logg         *logger.Logger
	cancelWindow time.Duration
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Repo        orderRepository
	CartManager cartManager
	Logger      *logger.Logger
	Config      config.OrdersConfig
}

// NewService constructs an orders service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.CartManager == nil {
		return nil, fmt.Errorf("cart manager is required")
	}
	if params.Config.CancelWindow <= 0 {
		return nil, fmt.Errorf("cancel window must be positive")
	}
	return &service{
		repo:         params.Repo,
		carts:        params.CartManager,
		logg:         params.Logger,
		cancelWindow: params.Config.CancelWindow,
	}, nil
}

// Place snapshots the cart into an immutable order. The cart is cleared only
// after the insert succeeds; a failed checkout leaves the cart untouched.
func (s *service) Place(ctx context.Context, cartToken string, userID *uuid.UUID, req CheckoutRequest) (*OrderDTO, error) {
	current, err := s.carts.Get(ctx, cartToken)
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate order id")
	}

	order := models.Order{
		ID:              id,
		Reference:       orderReference(id),
		PlacedAt:        time.Now().UTC(),
		Items:           append([]models.CartLine(nil), current.Items...),
		Total:           current.Total,
		Status:          enums.OrderStatusPending,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		UserID:          userID,
	}

	if err := s.repo.Insert(ctx, &order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert order")
	}

	if err := s.carts.Clear(ctx, cartToken); err != nil && s.logg != nil {
		s.logg.Error(ctx, "clearing cart after checkout", err)
	}

	dto := FromModel(order)
	return &dto, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID, email string) ([]OrderDTO, error) {
	orders, err := s.repo.ListByUser(ctx, userID, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return FromModels(orders), nil
}

func (s *service) ListAll(ctx context.Context, params pagination.Params) (*OrderPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.ListAll(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	page := &OrderPage{}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			PlacedAt: last.PlacedAt,
			ID:       last.ID,
		})
	}
	page.Orders = FromModels(rows)
	return page, nil
}

// Cancel removes a pending order placed by the requester within the cancel
// window. Cancellation deletes the row; cancelled rows do not linger.
func (s *service) Cancel(ctx context.Context, id uuid.UUID, requester uuid.UUID) error {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}

	if order.UserID == nil || *order.UserID != requester {
		return pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another account")
	}
	if order.Status != enums.OrderStatusPending {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only pending orders can be cancelled")
	}
	if time.Now().UTC().Sub(order.PlacedAt) > s.cancelWindow {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "the cancellation window has closed")
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete order")
	}
	return nil
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, req StatusUpdateRequest) (*OrderDTO, error) {
	status, err := enums.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}

	return s.getDTO(ctx, id)
}

func (s *service) findOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order")
	}
	return order, nil
}

func (s *service) getDTO(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := FromModel(*order)
	return &dto, nil
}

// orderReference derives the customer-facing reference from the time-ordered
// order id, so references sort by placement and never collide.
func orderReference(id uuid.UUID) string {
	compact := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "ORD-" + compact[:12]
}
