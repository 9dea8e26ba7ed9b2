package shoe

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/shoe-shop-backend/internal/card"
)

// Shoe is a catalog entry and maps to the `shoe` table.
// SalePrice is nil when the shoe is not on sale; any non-nil value puts it on sale.
type Shoe struct {
	ID          int              `json:"shoeId"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	ImageSrc    string           `json:"imageSrc"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
	ReleaseDate time.Time        `json:"releaseDate"`
	NumOfColors int              `json:"numOfColors"`
	CreatedAt   *string          `json:"createdAt,omitempty"`
	UpdatedAt   *string          `json:"updatedAt,omitempty"`
}

// CardInput projects the shoe onto the fields a product card needs.
func (s Shoe) CardInput() card.Input {
	return card.Input{
		Slug:        s.Slug,
		Name:        s.Name,
		ImageSrc:    s.ImageSrc,
		Price:       s.Price,
		SalePrice:   s.SalePrice,
		ReleaseDate: s.ReleaseDate,
		NumOfColors: s.NumOfColors,
	}
}

// effectivePrice is what the customer pays: the sale price when there is one.
func (s Shoe) effectivePrice() decimal.Decimal {
	if s.SalePrice != nil {
		return *s.SalePrice
	}
	return s.Price
}
