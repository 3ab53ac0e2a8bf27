package enquirystore

import (
	"errors"
	"strings"
	"testing"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/Nexgeno-Developers/novaa-cms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Enquiry{
		FullName: "Jane Visitor",
		Email:    "jane@example.com",
		Message:  "Interested in beachfront villas",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Status != models.EnquiryStatusNew {
		t.Errorf("Status = %v, want %v", created.Status, models.EnquiryStatusNew)
	}
	if !strings.HasPrefix(created.Reference, "ENQ-") {
		t.Errorf("Reference = %q, want ENQ- prefix", created.Reference)
	}
	if len(created.Reference) != len("ENQ-")+8 {
		t.Errorf("Reference = %q, want 8 character suffix", created.Reference)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStore_Create_UniqueReferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	refs := make(map[string]bool)
	for i := 0; i < 10; i++ {
		e, err := store.Create(ctx, models.Enquiry{FullName: "Visitor", Email: "v@example.com"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if refs[e.Reference] {
			t.Fatalf("duplicate reference %q", e.Reference)
		}
		refs[e.Reference] = true
	}
}

func TestStore_List_NewestFirstAndFiltered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, models.Enquiry{FullName: "First", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := store.Create(ctx, models.Enquiry{FullName: "Second", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := store.UpdateStatus(ctx, first.ID, models.EnquiryStatusContacted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	res, err := store.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 2 {
		t.Errorf("Total = %d, want 2", res.Total)
	}
	if len(res.Enquiries) != 2 || res.Enquiries[0].ID != second.ID {
		t.Error("List() should return newest first")
	}

	contacted, err := store.List(ctx, ListOptions{Status: models.EnquiryStatusContacted})
	if err != nil {
		t.Fatalf("List(contacted) error = %v", err)
	}
	if contacted.Total != 1 || len(contacted.Enquiries) != 1 || contacted.Enquiries[0].ID != first.ID {
		t.Error("List(contacted) should return only the contacted enquiry")
	}
}

func TestStore_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, models.Enquiry{FullName: "Visitor", Email: "v@example.com"}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	res, err := store.List(ctx, ListOptions{Limit: 2, Page: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 5 {
		t.Errorf("Total = %d, want 5", res.Total)
	}
	if len(res.Enquiries) != 2 {
		t.Errorf("page size = %d, want 2", len(res.Enquiries))
	}
	if res.Page != 2 || res.Limit != 2 {
		t.Errorf("Page/Limit = %d/%d, want 2/2", res.Page, res.Limit)
	}

	last, err := store.List(ctx, ListOptions{Limit: 2, Page: 3})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(last.Enquiries) != 1 {
		t.Errorf("last page size = %d, want 1", len(last.Enquiries))
	}
}

func TestStore_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateStatus(ctx, primitive.NewObjectID(), models.EnquiryStatusClosed)
	if !errors.Is(err, storeutil.ErrNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Enquiry{FullName: "Visitor", Email: "v@example.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, storeutil.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}
