package card

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/shoe-shop-backend/internal/format"
)

// Input is the flat set of fields a card is built from.
type Input struct {
	Slug        string
	Name        string
	ImageSrc    string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	ReleaseDate time.Time
	NumOfColors int
}

// View is the fully formatted card handed to the template and to JSON clients.
type View struct {
	Slug      string  `json:"slug"`
	Href      string  `json:"href"`
	Name      string  `json:"name"`
	ImageSrc  string  `json:"imageSrc"`
	Price     string  `json:"price"`
	SalePrice string  `json:"salePrice,omitempty"`
	OnSale    bool    `json:"onSale"`
	Colors    string  `json:"colors"`
	Variant   Variant `json:"variant"`
	Badge     *Badge  `json:"badge,omitempty"`
}

// Href returns the navigation target for a shoe. The slug is used as-is.
func Href(slug string) string {
	return "/shoe/" + slug
}

// Builder turns inputs into views using the configured recency window.
type Builder struct {
	Recency format.Recency
}

func NewBuilder(recency format.Recency) Builder {
	return Builder{Recency: recency}
}

func (b Builder) Build(in Input) View {
	variant := Classify(in.SalePrice, in.ReleaseDate, b.Recency.IsRecent)

	v := View{
		Slug:     in.Slug,
		Href:     Href(in.Slug),
		Name:     in.Name,
		ImageSrc: in.ImageSrc,
		Price:    format.FormatPrice(in.Price),
		Colors:   format.Pluralize("Color", in.NumOfColors),
		Variant:  variant,
	}
	if in.SalePrice != nil {
		v.OnSale = true
		v.SalePrice = format.FormatPrice(*in.SalePrice)
	}
	if badge, ok := variant.Badge(); ok {
		v.Badge = &badge
	}
	return v
}

// BuildAll builds one view per input, preserving order.
func (b Builder) BuildAll(ins []Input) []View {
	out := make([]View, 0, len(ins))
	for _, in := range ins {
		out = append(out, b.Build(in))
	}
	return out
}
