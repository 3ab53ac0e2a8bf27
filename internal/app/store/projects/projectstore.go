// internal/app/store/projects/projectstore.go
package projectstore

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

// Store provides access to the projects collection. Reads repopulate the
// Category field from the categories collection.
type Store struct {
	c    *mongo.Collection
	cats *mongo.Collection
}

// New creates a new project store.
func New(db *mongo.Database) *Store {
	return &Store{
		c:    db.Collection("projects"),
		cats: db.Collection("categories"),
	}
}

// ListOptions narrows project listings.
type ListOptions struct {
	CategoryID *primitive.ObjectID
	ActiveOnly bool
}

// List returns projects sorted by display order, with categories populated.
func (s *Store) List(ctx context.Context, lo ListOptions) ([]models.Project, error) {
	filter := bson.M{}
	if lo.CategoryID != nil {
		filter["category_id"] = *lo.CategoryID
	}
	if lo.ActiveOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	if err := s.populateCategories(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListBySlugs returns active projects matching the given slugs, in the
// order of the slugs argument. Unknown slugs are skipped. Used by the
// curated collection block on the home page.
func (s *Store) ListBySlugs(ctx context.Context, slugs []string) ([]models.Project, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"slug": bson.M{"$in": slugs}, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var found []models.Project
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	if err := s.populateCategories(ctx, found); err != nil {
		return nil, err
	}

	bySlug := make(map[string]models.Project, len(found))
	for _, p := range found {
		bySlug[p.Slug] = p
	}
	ordered := make([]models.Project, 0, len(slugs))
	for _, slug := range slugs {
		if p, ok := bySlug[slug]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// GetByID returns a project by id with its category populated.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Project{}, err
	}
	if err := s.populateCategory(ctx, &p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetBySlug returns a project by slug with its category populated.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Project, error) {
	var p models.Project
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, storeutil.ErrNotFound
	}
	if err != nil {
		return models.Project{}, err
	}
	if err := s.populateCategory(ctx, &p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Create inserts a new project. An empty slug is derived from the name.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if p.Slug == "" {
		p.Slug = slugify.Make(p.Name)
	}

	count, err := s.c.CountDocuments(ctx, bson.M{"slug": p.Slug})
	if err != nil {
		return models.Project{}, err
	}
	if count > 0 {
		return models.Project{}, storeutil.ErrConflict
	}

	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.Category = nil

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Project{}, storeutil.ErrConflict
		}
		return models.Project{}, err
	}

	if err := s.populateCategory(ctx, &p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update applies a partial update by id.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, partial bson.M) (models.Project, error) {
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
			return models.Project{}, err
		}
		if count > 0 {
			return models.Project{}, storeutil.ErrConflict
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Project
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, storeutil.ErrNotFound
	}
	if err != nil {
		if storeutil.IsDuplicateKeyErr(err) {
			return models.Project{}, storeutil.ErrConflict
		}
		return models.Project{}, err
	}
	if err := s.populateCategory(ctx, &p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Delete removes a project by id.
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

func (s *Store) populateCategory(ctx context.Context, p *models.Project) error {
	if p.CategoryID == nil {
		return nil
	}
	var cat models.Category
	err := s.cats.FindOne(ctx, bson.M{"_id": *p.CategoryID}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		// Dangling reference; leave Category nil.
		return nil
	}
	if err != nil {
		return err
	}
	p.Category = &cat
	return nil
}

// populateCategories resolves categories for a batch with one query.
func (s *Store) populateCategories(ctx context.Context, projects []models.Project) error {
	ids := make([]primitive.ObjectID, 0, len(projects))
	seen := make(map[primitive.ObjectID]bool)
	for _, p := range projects {
		if p.CategoryID != nil && !seen[*p.CategoryID] {
			seen[*p.CategoryID] = true
			ids = append(ids, *p.CategoryID)
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

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]models.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	for i := range projects {
		if projects[i].CategoryID == nil {
			continue
		}
		if cat, ok := byID[*projects[i].CategoryID]; ok {
			c := cat
			projects[i].Category = &c
		}
	}
	return nil
}
