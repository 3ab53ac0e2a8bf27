// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/storeutil"
	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/slugify"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the project categories collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new category store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("categories")}
}

// List returns all categories sorted by display order.
func (s *Store) List(ctx context.Context) ([]models.Category, error) {
	return s.find(ctx, bson.M{})
}

// ListActive returns only active categories, for the public site.
func (s *Store) ListActive(ctx context.Context) ([]models.Category, error) {
	return s.find(ctx, bson.M{"is_active": true})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetByID returns a category by id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var cat models.Category
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return models.Category{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// GetBySlug returns a category by slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Category, error) {
	var cat models.Category
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return models.Category{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// Create inserts a new category. An empty slug is derived from the name.
// Slug collisions surface as storeutil.ErrConflict.
func (s *Store) Create(ctx context.Context, cat models.Category) (models.Category, error) {
	if cat.Slug == "" {
		cat.Slug = slugify.Make(cat.Name)
	}

	count, err := s.c.CountDocuments(ctx, bson.M{"slug": cat.Slug})
	if err != nil {
		return models.Category{}, err
	}
	if count > 0 {
		return models.Category{}, storeutil.ErrConflict
	}

	cat.ID = primitive.NewObjectID()
	cat.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, cat); err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Category{}, storeutil.ErrConflict
		}
		return models.Category{}, err
	}
	return cat, nil
}

// Update applies a partial update by id. Changing the slug to one already
// taken by another category returns storeutil.ErrConflict.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, partial bson.M) (models.Category, error) {
	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	delete(set, "_id")
	delete(set, "created_at")
	set["updated_at"] = time.Now().UTC()

	if slug, ok := set["slug"].(string); ok && slug != "" {
		count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug, "_id": bson.M{"$ne": id}})
		if err != nil {
			return models.Category{}, err
		}
		if count > 0 {
			return models.Category{}, storeutil.ErrConflict
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cat models.Category
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return models.Category{}, storeutil.ErrNotFound
	}
	if err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Category{}, storeutil.ErrConflict
		}
		return models.Category{}, err
	}
	return cat, nil
}

// Delete removes a category by id.
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
