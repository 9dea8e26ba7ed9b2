package shoe

import (
	"errors"
	"sort"

	"github.com/wichananm65/shoe-shop-backend/internal/card"
)

var ErrUnknownSort = errors.New("unknown sort order")

// SortOrder controls catalog ordering. The zero value keeps insertion (id) order.
type SortOrder string

const (
	SortDefault SortOrder = ""
	SortNewest  SortOrder = "newest"
	SortPrice   SortOrder = "price"
)

func ParseSort(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortDefault, SortNewest, SortPrice:
		return o, nil
	default:
		return "", ErrUnknownSort
	}
}

// ListQuery narrows and orders a catalog listing. An empty Variant matches every shoe.
type ListQuery struct {
	Sort    SortOrder
	Variant card.Variant
}

type Service struct {
	repo  Repository
	cards card.Builder
}

func NewService(repo Repository, cards card.Builder) *Service {
	return &Service{repo: repo, cards: cards}
}

func (s *Service) List(q ListQuery) []Shoe {
	shoes := s.repo.List()

	if q.Variant != "" {
		filtered := shoes[:0]
		for _, sh := range shoes {
			if s.variantOf(sh) == q.Variant {
				filtered = append(filtered, sh)
			}
		}
		shoes = filtered
	}

	switch q.Sort {
	case SortNewest:
		sort.SliceStable(shoes, func(i, j int) bool {
			return shoes[i].ReleaseDate.After(shoes[j].ReleaseDate)
		})
	case SortPrice:
		sort.SliceStable(shoes, func(i, j int) bool {
			return shoes[i].effectivePrice().LessThan(shoes[j].effectivePrice())
		})
	}
	return shoes
}

func (s *Service) GetBySlug(slug string) (Shoe, error) {
	return s.repo.GetBySlug(slug)
}

// Cards returns the listing as formatted product cards.
func (s *Service) Cards(q ListQuery) []card.View {
	return s.buildAll(s.List(q))
}

func (s *Service) Card(slug string) (card.View, error) {
	sh, err := s.repo.GetBySlug(slug)
	if err != nil {
		return card.View{}, err
	}
	return s.cards.Build(sh.CardInput()), nil
}

// CardsBySlugs returns cards in the order the slugs were requested. Unknown slugs are skipped.
func (s *Service) CardsBySlugs(slugs []string) ([]card.View, error) {
	shoes, err := s.repo.ListBySlugs(slugs)
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]Shoe, len(shoes))
	for _, sh := range shoes {
		bySlug[sh.Slug] = sh
	}
	ordered := make([]Shoe, 0, len(shoes))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		sh, ok := bySlug[slug]
		if !ok || seen[slug] {
			continue
		}
		seen[slug] = true
		ordered = append(ordered, sh)
	}
	return s.buildAll(ordered), nil
}

func (s *Service) Create(sh Shoe) (Shoe, error) {
	return s.repo.Create(sh)
}

func (s *Service) Update(slug string, sh Shoe) (Shoe, error) {
	return s.repo.Update(slug, sh)
}

func (s *Service) Delete(slug string) error {
	return s.repo.Delete(slug)
}

// ResetShoes replaces all shoes with the given list (used for dev / seeding).
func (s *Service) ResetShoes(shoes []Shoe) error {
	return s.repo.Reset(shoes)
}

func (s *Service) variantOf(sh Shoe) card.Variant {
	return card.Classify(sh.SalePrice, sh.ReleaseDate, s.cards.Recency.IsRecent)
}

func (s *Service) buildAll(shoes []Shoe) []card.View {
	inputs := make([]card.Input, 0, len(shoes))
	for _, sh := range shoes {
		inputs = append(inputs, sh.CardInput())
	}
	return s.cards.BuildAll(inputs)
}
