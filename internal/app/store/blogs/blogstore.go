// internal/app/store/blogs/blogstore.go
package blogstore

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

// Store provides access to the blogs collection. Reads repopulate the
// Category field from the blog_categories collection.
type Store struct {
	c    *mongo.Collection
	cats *mongo.Collection
}

// New creates a new blog store.
func New(db *mongo.Database) *Store {
	return &Store{
		c:    db.Collection("blogs"),
		cats: db.Collection("blog_categories"),
	}
}

// ListOptions narrows blog listings.
type ListOptions struct {
	CategoryID *primitive.ObjectID
	ActiveOnly bool
	Limit      int64
	Page       int64
}

// ListResult carries one page of blogs plus the total match count so the
// API can report pagination metadata.
type ListResult struct {
	Blogs []models.Blog `json:"blogs"`
	Total int64         `json:"total"`
	Page  int64         `json:"page"`
	Limit int64         `json:"limit"`
}

// List returns blogs newest first, paginated, with categories populated.
func (s *Store) List(ctx context.Context, lo ListOptions) (ListResult, error) {
	filter := bson.M{}
	if lo.CategoryID != nil {
		filter["category_id"] = *lo.CategoryID
	}
	if lo.ActiveOnly {
		filter["is_active"] = true
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}

	limit, skip := storeutil.Paginate(lo.Limit, lo.Page)
	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return ListResult{}, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return ListResult{}, err
	}
	if err := s.populateCategories(ctx, blogs); err != nil {
		return ListResult{}, err
	}

	page := lo.Page
	if page < 1 {
		page = 1
	}
	return ListResult{Blogs: blogs, Total: total, Page: page, Limit: limit}, nil
}

// GetByID returns a blog by id with its category populated.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	var b models.Blog
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return models.Blog{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	if err := s.populateCategory(ctx, &b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// GetBySlug returns a blog by slug with its category populated.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Blog, error) {
	var b models.Blog
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return models.Blog{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	if err := s.populateCategory(ctx, &b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// Create inserts a new blog. An empty slug is derived from the title, and
// an active blog without a publish date gets one now.
func (s *Store) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	if b.Slug == "" {
		b.Slug = slugify.Make(b.Title)
	}

	count, err := s.c.CountDocuments(ctx, bson.M{"slug": b.Slug})
	if err != nil {
		return models.Blog{}, err
	}
	if count > 0 {
		return models.Blog{}, storeutil.ErrConflict
	}

	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	if b.IsActive && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
	b.Category = nil

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Blog{}, storeutil.ErrConflict
		}
		return models.Blog{}, err
	}

	if err := s.populateCategory(ctx, &b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// Update applies a partial update by id.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, partial bson.M) (models.Blog, error) {
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
			return models.Blog{}, err
		}
		if count > 0 {
			return models.Blog{}, storeutil.ErrConflict
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Blog
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return models.Blog{}, storeutil.ErrNotFound
	}
	if err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Blog{}, storeutil.ErrConflict
		}
		return models.Blog{}, err
	}
	if err := s.populateCategory(ctx, &b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// Delete removes a blog by id.
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

func (s *Store) populateCategory(ctx context.Context, b *models.Blog) error {
	if b.CategoryID == nil {
		return nil
	}
	var cat models.BlogCategory
	err := s.cats.FindOne(ctx, bson.M{"_id": *b.CategoryID}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return err
	}
	b.Category = &cat
	return nil
}

func (s *Store) populateCategories(ctx context.Context, blogs []models.Blog) error {
	ids := make([]primitive.ObjectID, 0, len(blogs))
	seen := make(map[primitive.ObjectID]bool)
	for _, b := range blogs {
		if b.CategoryID != nil && !seen[*b.CategoryID] {
			seen[*b.CategoryID] = true
			ids = append(ids, *b.CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cur, err := s.cats.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var cats []models.BlogCategory
	if err := cur.All(ctx, &cats); err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]models.BlogCategory, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	for i := range blogs {
		if blogs[i].CategoryID == nil {
			continue
		}
		if cat, ok := byID[*blogs[i].CategoryID]; ok {
			c := cat
			blogs[i].Category = &c
		}
	}
	return nil
}
