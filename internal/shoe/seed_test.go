package shoe

import (
	"testing"

	"github.com/wichananm65/shoe-shop-backend/internal/card"
)

func TestSampleShoes_CoversEveryVariant(t *testing.T) {
	shoes, err := SampleShoes(testNow)
	if err != nil {
		t.Fatalf("sample catalog failed to load: %v", err)
	}
	if len(shoes) == 0 {
		t.Fatalf("sample catalog is empty")
	}

	seen := map[card.Variant]bool{}
	slugSeen := map[string]bool{}
	for _, s := range shoes {
		if ves := validateShoePayload(&s); len(ves) > 0 {
			t.Fatalf("sample shoe %q is invalid: %v", s.Slug, ves)
		}
		if slugSeen[s.Slug] {
			t.Fatalf("duplicate slug %q", s.Slug)
		}
		slugSeen[s.Slug] = true
		seen[testCards().Build(s.CardInput()).Variant] = true
	}
	for _, v := range card.Variants {
		if !seen[v] {
			t.Fatalf("sample catalog has no %s shoe", v)
		}
	}
}

func TestParseSeed(t *testing.T) {
	data := []byte(`
shoes:
  - slug: a
    name: A
    price: "10"
    releasedDaysAgo: 2
  - slug: b
    name: B
    price: "20.5"
    salePrice: "25"
    releaseDate: "2020-01-02"
    numOfColors: 2
`)
	shoes, err := ParseSeed(data, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shoes) != 2 {
		t.Fatalf("expected 2 shoes, got %d", len(shoes))
	}
	if !shoes[0].ReleaseDate.Equal(testNow.AddDate(0, 0, -2)) {
		t.Fatalf("relative release date not resolved: %v", shoes[0].ReleaseDate)
	}
	if shoes[0].SalePrice != nil {
		t.Fatalf("expected no sale price")
	}
	if shoes[1].SalePrice == nil || !shoes[1].SalePrice.Equal(dec("25")) {
		t.Fatalf("sale price above base price must be kept, got %v", shoes[1].SalePrice)
	}
	if shoes[1].ReleaseDate.Year() != 2020 {
		t.Fatalf("unexpected release date %v", shoes[1].ReleaseDate)
	}

	if _, err := ParseSeed([]byte("shoes:\n  - slug: x\n    price: \"1\"\n"), testNow); err == nil {
		t.Fatalf("expected error for missing release date")
	}
	if _, err := ParseSeed([]byte("shoes:\n  - slug: x\n    price: abc\n    releasedDaysAgo: 1\n"), testNow); err == nil {
		t.Fatalf("expected error for bad price")
	}
}
