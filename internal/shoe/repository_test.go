package shoe

import (
	"testing"
	"time"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	r := NewInMemoryRepository(sampleCatalog())

	created, err := r.Create(Shoe{Slug: "phantom", Name: "Phantom", Price: dec("75"), ReleaseDate: testNow})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5, got %d", created.ID)
	}
	if _, err := r.Create(Shoe{Slug: "phantom"}); err != ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}

	updated, err := r.Update("phantom", Shoe{Slug: "ignored", Name: "Phantom GX", Price: dec("80"), SalePrice: decPtr("70"), ReleaseDate: testNow})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != 5 || updated.Slug != "phantom" || updated.Name != "Phantom GX" || updated.SalePrice == nil {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if _, err := r.Update("missing", Shoe{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := r.Delete("phantom"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := r.GetBySlug("phantom"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := r.Delete("phantom"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestInMemoryRepository_ListReturnsCopy(t *testing.T) {
	r := NewInMemoryRepository(sampleCatalog())
	list := r.List()
	list[0].Name = "mutated"

	got, _ := r.GetBySlug(list[0].Slug)
	if got.Name == "mutated" {
		t.Fatalf("List must return a copy")
	}
}

func TestInMemoryRepository_Reset(t *testing.T) {
	r := NewInMemoryRepository(sampleCatalog())

	if err := r.Reset([]Shoe{
		{Slug: "a", ReleaseDate: time.Now()},
		{Slug: "b", ReleaseDate: time.Now()},
		{Slug: "a", ReleaseDate: time.Now()},
	}); err != ErrSlugExists {
		t.Fatalf("expected ErrSlugExists for repeated slug, got %v", err)
	}
	if len(r.List()) != len(sampleCatalog()) {
		t.Fatalf("failed reset must leave the catalog untouched")
	}

	if err := r.Reset([]Shoe{
		{Slug: "a", ReleaseDate: time.Now()},
		{Slug: "b", ReleaseDate: time.Now()},
	}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	all := r.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 shoes after reset, got %d", len(all))
	}
	if all[0].ID == all[1].ID {
		t.Fatalf("ids must be unique: %+v", all)
	}

	if err := r.Reset(nil); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(r.List()) != 0 {
		t.Fatalf("expected empty catalog")
	}
}

func TestInMemoryRepository_ResetIgnoresPostedIDs(t *testing.T) {
	r := NewInMemoryRepository(nil)

	if err := r.Reset([]Shoe{
		{Slug: "a", ReleaseDate: testNow},
		{ID: 1, Slug: "b", ReleaseDate: testNow},
		{ID: 1, Slug: "c", ReleaseDate: testNow},
	}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	ids := map[int]int{}
	for _, s := range r.List() {
		ids[s.ID]++
	}
	for id, n := range ids {
		if n > 1 {
			t.Fatalf("id %d assigned to %d shoes", id, n)
		}
	}

	created, err := r.Create(Shoe{Slug: "d", ReleaseDate: testNow})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ids[created.ID] != 0 {
		t.Fatalf("created id %d collides with reset ids %v", created.ID, ids)
	}
}

func TestInMemoryRepository_ListBySlugs(t *testing.T) {
	r := NewInMemoryRepository(sampleCatalog())
	got, err := r.ListBySlugs([]string{"classic", "missing", "tilt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 shoes, got %d", len(got))
	}
}
