package shoe

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Shoes []seedShoe `yaml:"shoes"`
}

type seedShoe struct {
	Slug            string  `yaml:"slug"`
	Name            string  `yaml:"name"`
	ImageSrc        string  `yaml:"imageSrc"`
	Price           string  `yaml:"price"`
	SalePrice       *string `yaml:"salePrice"`
	ReleaseDate     string  `yaml:"releaseDate"`
	ReleasedDaysAgo *int    `yaml:"releasedDaysAgo"`
	NumOfColors     int     `yaml:"numOfColors"`
}

// SampleShoes returns the embedded sample catalog with relative release dates resolved
// against now.
func SampleShoes(now time.Time) ([]Shoe, error) {
	return ParseSeed(seedYAML, now)
}

// ParseSeed decodes a YAML catalog.
func ParseSeed(data []byte, now time.Time) ([]Shoe, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	stamp := now.UTC().Format(time.RFC3339)
	out := make([]Shoe, 0, len(f.Shoes))
	for i, s := range f.Shoes {
		shoe, err := s.toShoe(now)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d (%s): %w", i, s.Slug, err)
		}
		shoe.CreatedAt = &stamp
		shoe.UpdatedAt = &stamp
		out = append(out, shoe)
	}
	return out, nil
}

func (s seedShoe) toShoe(now time.Time) (Shoe, error) {
	price, err := decimal.NewFromString(s.Price)
	if err != nil {
		return Shoe{}, fmt.Errorf("price: %w", err)
	}
	out := Shoe{
		Slug:        s.Slug,
		Name:        s.Name,
		ImageSrc:    s.ImageSrc,
		Price:       price,
		NumOfColors: s.NumOfColors,
	}
	if s.SalePrice != nil {
		sale, err := decimal.NewFromString(*s.SalePrice)
		if err != nil {
			return Shoe{}, fmt.Errorf("salePrice: %w", err)
		}
		out.SalePrice = &sale
	}

	switch {
	case s.ReleasedDaysAgo != nil:
		out.ReleaseDate = now.AddDate(0, 0, -*s.ReleasedDaysAgo).UTC()
	case s.ReleaseDate != "":
		out.ReleaseDate, err = parseDate(s.ReleaseDate)
		if err != nil {
			return Shoe{}, fmt.Errorf("releaseDate: %w", err)
		}
	default:
		return Shoe{}, fmt.Errorf("releaseDate or releasedDaysAgo is required")
	}
	return out, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, v)
}
