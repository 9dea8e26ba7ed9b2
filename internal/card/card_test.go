package card

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/shoe-shop-backend/internal/format"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func testBuilder() Builder {
	return NewBuilder(format.Recency{Window: format.DefaultRecencyWindow, Now: func() time.Time { return fixedNow }})
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestClassify(t *testing.T) {
	isRecent := testBuilder().Recency.IsRecent
	daysAgo := func(n int) time.Time { return fixedNow.AddDate(0, 0, -n) }
	yearsAgo := func(n int) time.Time { return fixedNow.AddDate(-n, 0, 0) }

	tests := []struct {
		name        string
		salePrice   *decimal.Decimal
		releaseDate time.Time
		want        Variant
	}{
		{"sale on old shoe", price("49.99"), yearsAgo(10), VariantOnSale},
		{"recent without sale", nil, daysAgo(3), VariantNewRelease},
		{"old without sale", nil, yearsAgo(5), VariantDefault},
		{"zero sale price beats recency", price("0"), daysAgo(1), VariantOnSale},
		{"sale above base price", price("999"), yearsAgo(1), VariantOnSale},
		{"negative sale price", price("-1"), daysAgo(2), VariantOnSale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.salePrice, tt.releaseDate, isRecent))
		})
	}
}

func TestClassify_NilPredicate(t *testing.T) {
	assert.Equal(t, VariantDefault, Classify(nil, fixedNow, nil))
	assert.Equal(t, VariantOnSale, Classify(price("1"), fixedNow, nil))
}

func TestClassify_ExactlyOneVariant(t *testing.T) {
	dates := []time.Time{fixedNow, fixedNow.AddDate(0, 0, -29), fixedNow.AddDate(0, -2, 0), fixedNow.AddDate(3, 0, 0)}
	sales := []*decimal.Decimal{nil, price("0"), price("12.5")}

	for _, d := range dates {
		for _, s := range sales {
			v := Classify(s, d, testBuilder().Recency.IsRecent)
			matches := 0
			for _, known := range Variants {
				if v == known {
					matches++
				}
			}
			require.Equal(t, 1, matches, "variant %q for sale=%v date=%v", v, s, d)
		}
	}
}

func TestVariantBadge(t *testing.T) {
	b, ok := VariantOnSale.Badge()
	assert.True(t, ok)
	assert.Equal(t, Badge{Text: "Sale", Color: "#C5295D"}, b)

	b, ok = VariantNewRelease.Badge()
	assert.True(t, ok)
	assert.Equal(t, Badge{Text: "Just released!", Color: "#6868D9"}, b)

	_, ok = VariantDefault.Badge()
	assert.False(t, ok)

	_, ok = Variant("clearance").Badge()
	assert.False(t, ok)
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		got, err := ParseVariant(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseVariant("sale")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestBuild_Scenarios(t *testing.T) {
	b := testBuilder()

	t.Run("A on-sale", func(t *testing.T) {
		v := b.Build(Input{Slug: "tilt", Name: "Tilt", Price: decimal.RequireFromString("89.99"), SalePrice: price("49.99"), ReleaseDate: fixedNow.AddDate(-10, 0, 0), NumOfColors: 2})
		assert.Equal(t, VariantOnSale, v.Variant)
		require.NotNil(t, v.Badge)
		assert.Equal(t, "Sale", v.Badge.Text)
		assert.True(t, v.OnSale)
		assert.Equal(t, "$89.99", v.Price)
		assert.Equal(t, "$49.99", v.SalePrice)
		assert.Equal(t, "2 Colors", v.Colors)
		assert.Equal(t, "/shoe/tilt", v.Href)
	})

	t.Run("B new-release", func(t *testing.T) {
		v := b.Build(Input{Slug: "pegasus", Price: decimal.NewFromInt(120), ReleaseDate: fixedNow.AddDate(0, 0, -3), NumOfColors: 1})
		assert.Equal(t, VariantNewRelease, v.Variant)
		require.NotNil(t, v.Badge)
		assert.Equal(t, "Just released!", v.Badge.Text)
		assert.False(t, v.OnSale)
		assert.Empty(t, v.SalePrice)
		assert.Equal(t, "1 Color", v.Colors)
	})

	t.Run("C default", func(t *testing.T) {
		v := b.Build(Input{Slug: "classic", Price: decimal.NewFromInt(60), ReleaseDate: fixedNow.AddDate(-5, 0, 0)})
		assert.Equal(t, VariantDefault, v.Variant)
		assert.Nil(t, v.Badge)
	})

	t.Run("D zero sale price", func(t *testing.T) {
		v := b.Build(Input{Slug: "zero", Price: decimal.NewFromInt(60), SalePrice: price("0"), ReleaseDate: fixedNow.AddDate(0, 0, -1)})
		assert.Equal(t, VariantOnSale, v.Variant)
		require.NotNil(t, v.Badge)
		assert.Equal(t, "Sale", v.Badge.Text)
		assert.Equal(t, "$0.00", v.SalePrice)
	})
}

func TestBuildAll_PreservesOrder(t *testing.T) {
	views := testBuilder().BuildAll([]Input{{Slug: "b"}, {Slug: "a"}, {Slug: "c"}})
	require.Len(t, views, 3)
	assert.Equal(t, "b", views[0].Slug)
	assert.Equal(t, "a", views[1].Slug)
	assert.Equal(t, "c", views[2].Slug)
}

func render(t *testing.T, v View) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Card(v).Render(context.Background(), &buf))
	return buf.String()
}

func TestCard_Render(t *testing.T) {
	b := testBuilder()

	t.Run("sale card", func(t *testing.T) {
		html := render(t, b.Build(Input{Slug: "tilt", Name: "Tilt", ImageSrc: "/img/tilt.jpg", Price: decimal.NewFromInt(90), SalePrice: price("45"), ReleaseDate: fixedNow, NumOfColors: 3}))
		assert.Contains(t, html, `href="/shoe/tilt"`)
		assert.Contains(t, html, `src="/img/tilt.jpg"`)
		assert.Contains(t, html, `<h3 class="shoe-card__name">Tilt</h3>`)
		assert.Contains(t, html, `shoe-card__price--sale">$90.00</span>`)
		assert.Contains(t, html, `<span class="shoe-card__sale-price">$45.00</span>`)
		assert.Contains(t, html, `3 Colors`)
		assert.Contains(t, html, `data-variant="on-sale" style="background-color:#C5295D">Sale</span>`)
		assert.True(t, strings.HasPrefix(html, `<a class="shoe-card"`))
		assert.True(t, strings.HasSuffix(html, `</article></a>`))
	})

	t.Run("new release card", func(t *testing.T) {
		html := render(t, b.Build(Input{Slug: "new", Name: "New", Price: decimal.NewFromInt(100), ReleaseDate: fixedNow.AddDate(0, 0, -2), NumOfColors: 1}))
		assert.Contains(t, html, `>Just released!</span>`)
		assert.Contains(t, html, `#6868D9`)
		assert.NotContains(t, html, "shoe-card__sale-price")
		assert.NotContains(t, html, "shoe-card__price--sale")
	})

	t.Run("default card has no tip element", func(t *testing.T) {
		html := render(t, b.Build(Input{Slug: "old", Name: "Old", Price: decimal.NewFromInt(100), ReleaseDate: fixedNow.AddDate(-3, 0, 0)}))
		assert.NotContains(t, html, "shoe-card__tip")
		assert.NotContains(t, html, "data-variant")
	})

	t.Run("escapes text", func(t *testing.T) {
		html := render(t, b.Build(Input{Slug: "x", Name: `<script>"hi"</script>`, ReleaseDate: fixedNow.AddDate(-3, 0, 0)}))
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})
}

func TestGridAndPage_Render(t *testing.T) {
	b := testBuilder()
	views := b.BuildAll([]Input{
		{Slug: "one", Name: "One", ReleaseDate: fixedNow.AddDate(-1, 0, 0)},
		{Slug: "two", Name: "Two", ReleaseDate: fixedNow.AddDate(-1, 0, 0)},
	})

	var buf bytes.Buffer
	require.NoError(t, Page("Shoes & more", Grid(views)).Render(context.Background(), &buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Shoes &amp; more</title>")
	assert.Contains(t, html, `<section class="shoe-grid">`)
	assert.Less(t, strings.Index(html, "/shoe/one"), strings.Index(html, "/shoe/two"))
	assert.Equal(t, 2, strings.Count(html, `<article`))
}
