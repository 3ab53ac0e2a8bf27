// internal/app/store/enquiries/enquirystore.go
package enquirystore

import (
	"context"
	"strings"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the enquiries collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new enquiry store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("enquiries")}
}

// newReference generates a short human-quotable enquiry reference,
// e.g. "ENQ-9F2C41AB". Uniqueness is enforced by the index; the retry
// loop in Create covers the unlikely collision.
func newReference() string {
	id := uuid.New()
	return "ENQ-" + strings.ToUpper(id.String()[:8])
}

// Create inserts a new enquiry with a generated reference and status "new".
func (s *Store) Create(ctx context.Context, e models.Enquiry) (models.Enquiry, error) {
	e.ID = primitive.NewObjectID()
	e.Status = models.EnquiryStatusNew
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = nil

	for attempt := 0; attempt < 3; attempt++ {
		e.Reference = newReference()
		_, err := s.c.InsertOne(ctx, e)
		if err == nil {
			return e, nil
		}
		if !storeutil.IsDuplicateKeyErr(err) {
			return models.Enquiry{}, err
		}
	}
	return models.Enquiry{}, storeutil.ErrConflict
}

// ListOptions narrows enquiry listings.
type ListOptions struct {
	Status string
	Limit  int64
	Page   int64
}

// ListResult carries one page of enquiries plus the total match count.
type ListResult struct {
	Enquiries []models.Enquiry `json:"enquiries"`
	Total     int64            `json:"total"`
	Page      int64            `json:"page"`
	Limit     int64            `json:"limit"`
}

// List returns enquiries newest first, paginated, optionally filtered by
// handling status.
func (s *Store) List(ctx context.Context, lo ListOptions) (ListResult, error) {
	filter := bson.M{}
	if lo.Status != "" {
		filter["status"] = lo.Status
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}

	limit, skip := storeutil.Paginate(lo.Limit, lo.Page)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return ListResult{}, err
	}
	defer cur.Close(ctx)

	var enquiries []models.Enquiry
	if err := cur.All(ctx, &enquiries); err != nil {
		return ListResult{}, err
	}

	page := lo.Page
	if page < 1 {
		page = 1
	}
	return ListResult{Enquiries: enquiries, Total: total, Page: page, Limit: limit}, nil
}

// GetByID returns an enquiry by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Enquiry, error) {
	var e models.Enquiry
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return models.Enquiry{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Enquiry{}, err
	}
	return e, nil
}

// UpdateStatus moves an enquiry through its handling workflow.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Enquiry, error) {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var e models.Enquiry
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return models.Enquiry{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Enquiry{}, err
	}
	return e, nil
}

// Delete removes an enquiry by id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storeutil.ErrNotFound
	}
	return nil
}
