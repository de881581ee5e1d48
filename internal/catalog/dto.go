package catalog

import (
	"time"

	"github.com/lib/pq"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/enums"
)

// SpecificationsDTO is the fixed-shape spec record carried on the wire.
type SpecificationsDTO struct {
	Case            string `json:"case"`
	Movement        string `json:"movement"`
	WaterResistance string `json:"water_resistance"`
	Strap           string `json:"strap"`
}

// WatchInput is the administrative write payload. Decoding rejects unknown
// fields, so anything outside the canonical set never reaches the table.
type WatchInput struct {
	ID             string              `json:"id"`
	Name           string              `json:"name" validate:"required"`
	BrandID        string              `json:"brand_id" validate:"required"`
	BrandName      string              `json:"brand_name" validate:"required"`
	Price          int                 `json:"price" validate:"gte=0"`
	Description    string              `json:"description"`
	Images         []string            `json:"images" validate:"required,min=1"`
	Specifications SpecificationsDTO   `json:"specifications"`
	Stock          int                 `json:"stock" validate:"gte=0"`
	Category       enums.WatchCategory `json:"category" validate:"required"`
	Featured       bool                `json:"featured"`
}

// WatchDTO is the transport shape returned to clients.
type WatchDTO struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	BrandID        string              `json:"brand_id"`
	BrandName      string              `json:"brand_name"`
	Price          int                 `json:"price"`
	Description    string              `json:"description"`
	Images         []string            `json:"images"`
	Specifications SpecificationsDTO   `json:"specifications"`
	Stock          int                 `json:"stock"`
	Category       enums.WatchCategory `json:"category"`
	Featured       bool                `json:"featured"`
	CreatedAt      time.Time           `json:"created_at"`
}

func (in WatchInput) ToModel() models.Watch {
	return models.Watch{
		ID:                  in.ID,
		Name:                in.Name,
		BrandID:             in.BrandID,
		BrandName:           in.BrandName,
		Price:               in.Price,
		Description:         in.Description,
		Images:              pq.StringArray(append([]string(nil), in.Images...)),
		SpecCase:            in.Specifications.Case,
		SpecMovement:        in.Specifications.Movement,
		SpecWaterResistance: in.Specifications.WaterResistance,
		SpecStrap:           in.Specifications.Strap,
		Stock:               in.Stock,
		Category:            in.Category,
		Featured:            in.Featured,
	}
}

func FromModel(w models.Watch) WatchDTO {
	return WatchDTO{
		ID:          w.ID,
		Name:        w.Name,
		BrandID:     w.BrandID,
		BrandName:   w.BrandName,
		Price:       w.Price,
		Description: w.Description,
		Images:      append([]string(nil), []string(w.Images)...),
		Specifications: SpecificationsDTO{
			Case:            w.SpecCase,
			Movement:        w.SpecMovement,
			WaterResistance: w.SpecWaterResistance,
			Strap:           w.SpecStrap,
		},
		Stock:     w.Stock,
		Category:  w.Category,
		Featured:  w.Featured,
		CreatedAt: w.CreatedAt,
	}
}

// ToModel converts the transport shape back into a row snapshot. The cart
// stores watches by value, so lines keep the price seen at add time.
func (d WatchDTO) ToModel() models.Watch {
	return models.Watch{
		ID:                  d.ID,
		Name:                d.Name,
		BrandID:             d.BrandID,
		BrandName:           d.BrandName,
		Price:               d.Price,
		Description:         d.Description,
		Images:              pq.StringArray(append([]string(nil), d.Images...)),
		SpecCase:            d.Specifications.Case,
		SpecMovement:        d.Specifications.Movement,
		SpecWaterResistance: d.Specifications.WaterResistance,
		SpecStrap:           d.Specifications.Strap,
		Stock:               d.Stock,
		Category:            d.Category,
		Featured:            d.Featured,
		CreatedAt:           d.CreatedAt,
	}
}

func FromModels(watches []models.Watch) []WatchDTO {
	out := make([]WatchDTO, 0, len(watches))
	for _, w := range watches {
		out = append(out, FromModel(w))
	}
	return out
}
