package categorystore

import (
	"errors"
	"testing"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Create_DerivesSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Category{Name: "Luxury Villas", IsActive: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != "luxury-villas" {
		t.Errorf("Slug = %q, want 'luxury-villas'", created.Slug)
	}
}

func TestStore_Create_ExplicitSlugWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Category{Name: "Beachfront", Slug: "beach"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != "beach" {
		t.Errorf("Slug = %q, want 'beach'", created.Slug)
	}
}

func TestStore_Create_Conflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Category{Name: "Condos"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Same name derives the same slug.
	_, err := store.Create(ctx, models.Category{Name: "Condos"})
	if !errors.Is(err, storeutil.ErrConflict) {
		t.Errorf("Create() duplicate error = %v, want ErrConflict", err)
	}
}

func TestStore_Update_SlugConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Category{Name: "Villas"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	other, err := store.Create(ctx, models.Category{Name: "Condos"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = store.Update(ctx, other.ID, bson.M{"slug": "villas"})
	if !errors.Is(err, storeutil.ErrConflict) {
		t.Errorf("Update() slug collision error = %v, want ErrConflict", err)
	}

	// Re-asserting its own slug is not a conflict.
	if _, err := store.Update(ctx, other.ID, bson.M{"slug": "condos", "name": "Condominiums"}); err != nil {
		t.Errorf("Update() own slug error = %v", err)
	}
}

func TestStore_ListActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Category{Name: "Villas", IsActive: true, Order: 2}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, models.Category{Name: "Condos", IsActive: true, Order: 1}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, models.Category{Name: "Archived", IsActive: false}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("ListActive() count = %d, want 2", len(active))
	}
	if active[0].Name != "Condos" || active[1].Name != "Villas" {
		t.Errorf("ListActive() order = [%s, %s], want [Condos, Villas]", active[0].Name, active[1].Name)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List() count = %d, want 3", len(all))
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Category{Name: "Penthouses"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, storeutil.ErrNotFound) {
		t.Errorf("Delete() second time error = %v, want ErrNotFound", err)
	}
}
