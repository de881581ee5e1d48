package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/enums"
)

// CheckoutRequest carries the customer details collected at checkout.
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,max=200"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerAddress string `json:"customer_address" validate:"required,max=500"`
}

// StatusUpdateRequest is the administrative status transition payload.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
}

// OrderDTO is the transport shape of one placed order.
type OrderDTO struct {
	ID              uuid.UUID         `json:"id"`
	Reference       string            `json:"reference"`
	PlacedAt        time.Time         `json:"placed_at"`
	Items           []models.CartLine `json:"items"`
	Total           int               `json:"total"`
	Status          enums.OrderStatus `json:"status"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerAddress string            `json:"customer_address"`
	UserID          *uuid.UUID        `json:"user_id,omitempty"`
}

// OrderPage is one cursor page of the administrative order listing.
type OrderPage struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func FromModel(o models.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID,
		Reference:       o.Reference,
		PlacedAt:        o.PlacedAt,
		Items:           append([]models.CartLine(nil), o.Items...),
		Total:           o.Total,
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerAddress: o.CustomerAddress,
		UserID:          o.UserID,
	}
}

func FromModels(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromModel(o))
	}
	return out
}
