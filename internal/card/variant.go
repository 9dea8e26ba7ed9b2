// Package card builds product cards: it picks the display variant of a shoe and renders
// the card markup for it.
package card

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownVariant is returned by ParseVariant for anything other than the three variants.
var ErrUnknownVariant = errors.New("unknown card variant")

// Variant is the display state of a product card.
type Variant string

const (
	VariantNewRelease Variant = "new-release"
	VariantOnSale     Variant = "on-sale"
	VariantDefault    Variant = "default"
)

// Variants lists every variant in classification priority order.
var Variants = []Variant{VariantOnSale, VariantNewRelease, VariantDefault}

// Classify picks exactly one variant. A sale price of any value, zero included, wins over
// a recent release date.
func Classify(salePrice *decimal.Decimal, releaseDate time.Time, isRecent func(time.Time) bool) Variant {
	if salePrice != nil {
		return VariantOnSale
	}
	if isRecent != nil && isRecent(releaseDate) {
		return VariantNewRelease
	}
	return VariantDefault
}

// ParseVariant converts a query value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantNewRelease, VariantOnSale, VariantDefault:
		return v, nil
	default:
		return "", ErrUnknownVariant
	}
}

// Badge is the overlay label shown on non-default cards.
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Badge returns the label for the variant. The default variant has no badge.
func (v Variant) Badge() (Badge, bool) {
	switch v {
	case VariantOnSale:
		return Badge{Text: "Sale", Color: "#C5295D"}, true
	case VariantNewRelease:
		return Badge{Text: "Just released!", Color: "#6868D9"}, true
	case VariantDefault:
		return Badge{}, false
	default:
		return Badge{}, false
	}
}
