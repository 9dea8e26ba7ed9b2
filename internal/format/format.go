// Package format holds the small display helpers used when building product cards.
package format

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRecencyWindow is how long after its release date a shoe is shown as new.
const DefaultRecencyWindow = 30 * 24 * time.Hour

// FormatPrice renders a price in dollars with two decimals, e.g. "$49.99".
func FormatPrice(price decimal.Decimal) string {
	if price.IsNegative() {
		return "-$" + price.Abs().StringFixed(2)
	}
	return "$" + price.StringFixed(2)
}

// Pluralize returns "1 Color" for a count of one and "n Colors" otherwise.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return strconv.Itoa(count) + " " + noun
	}
	return strconv.Itoa(count) + " " + noun + "s"
}

// Recency decides whether a release date falls inside the "new release" window.
type Recency struct {
	Window time.Duration
	// Now defaults to time.Now when nil.
	Now func() time.Time
}

// NewRecency returns a Recency using the wall clock. A non-positive window falls back to
// DefaultRecencyWindow.
func NewRecency(window time.Duration) Recency {
	if window <= 0 {
		window = DefaultRecencyWindow
	}
	return Recency{Window: window, Now: time.Now}
}

// IsRecent reports whether releaseDate is less than Window before now. Dates in the
// future are recent.
func (r Recency) IsRecent(releaseDate time.Time) bool {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	window := r.Window
	if window <= 0 {
		window = DefaultRecencyWindow
	}
	return now().Sub(releaseDate) < window
}
