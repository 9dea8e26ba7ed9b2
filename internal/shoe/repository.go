package shoe

import (
	"errors"
	"sync"
)

var (
	ErrNotFound   = errors.New("shoe not found")
	ErrSlugExists = errors.New("slug already exists")
)

type Repository interface {
	List() []Shoe
	GetBySlug(slug string) (Shoe, error)
	// ListBySlugs returns the shoes matching slugs; unknown slugs are skipped.
	ListBySlugs(slugs []string) ([]Shoe, error)
	Create(s Shoe) (Shoe, error)
	Update(slug string, s Shoe) (Shoe, error)
	Delete(slug string) error
	// Reset replaces all shoes with the provided list (used for dev / seeding).
	// Duplicate slugs fail with ErrSlugExists.
	Reset(shoes []Shoe) error
}

// InMemoryRepository backs the service when no database is configured, and in tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Shoe
	nextID  int
}

func NewInMemoryRepository(seed []Shoe) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() []Shoe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Shoe, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetBySlug(slug string) (Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(slug); i >= 0 {
		return r.storage[i], nil
	}
	return Shoe{}, ErrNotFound
}

func (r *InMemoryRepository) ListBySlugs(slugs []string) ([]Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		wanted[s] = true
	}
	out := make([]Shoe, 0, len(slugs))
	for _, s := range r.storage {
		if wanted[s.Slug] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(s Shoe) (Shoe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(s.Slug) >= 0 {
		return Shoe{}, ErrSlugExists
	}
	s.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, s)
	return s, nil
}

func (r *InMemoryRepository) Update(slug string, s Shoe) (Shoe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(slug)
	if i < 0 {
		return Shoe{}, ErrNotFound
	}
	s.ID = r.storage[i].ID
	s.Slug = slug
	if s.CreatedAt == nil {
		s.CreatedAt = r.storage[i].CreatedAt
	}
	r.storage[i] = s
	return s, nil
}

func (r *InMemoryRepository) Delete(slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(slug)
	if i < 0 {
		return ErrNotFound
	}
	r.storage = append(r.storage[:i], r.storage[i+1:]...)
	return nil
}

// Reset replaces the whole in-memory storage. Posted IDs are ignored and fresh ones are
// assigned. A repeated slug fails with ErrSlugExists and leaves the storage untouched.
func (r *InMemoryRepository) Reset(shoes []Shoe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(shoes))
	for _, s := range shoes {
		if seen[s.Slug] {
			return ErrSlugExists
		}
		seen[s.Slug] = true
	}

	r.storage = make([]Shoe, 0, len(shoes))
	for _, s := range shoes {
		s.ID = r.nextID
		r.nextID++
		r.storage = append(r.storage, s)
	}
	return nil
}

// indexOf expects the caller to hold the lock.
func (r *InMemoryRepository) indexOf(slug string) int {
	for i := range r.storage {
		if r.storage[i].Slug == slug {
			return i
		}
	}
	return -1
}
