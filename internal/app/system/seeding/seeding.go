// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/store/content"
	pagestore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/pages"
	sectionstore "github.com/Nexgeno-Developers/novaa-cms/internal/app/store/sections"
	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default data if not already present. Defaults never
// overwrite documents an administrator has edited.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedPages(ctx, db, logger); err != nil {
		return err
	}
	if err := seedSections(ctx, db, logger); err != nil {
		return err
	}
	if err := seedContent(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedPages creates the standard site pages if they don't exist.
func seedPages(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := pagestore.New(db)

	for _, page := range models.DefaultPages() {
		exists, err := store.Exists(ctx, page.Slug)
		if err != nil {
			logger.Error("failed to check if page exists",
				zap.String("slug", page.Slug),
				zap.Error(err))
			return err
		}
		if !exists {
			if err := store.Upsert(ctx, page); err != nil {
				logger.Error("failed to seed page",
					zap.String("slug", page.Slug),
					zap.Error(err))
				return err
			}
			logger.Info("seeded default page", zap.String("slug", page.Slug))
		}
	}

	return nil
}

// seedSections lays out the default home page blocks. Upsert only inserts
// on a missing (page_slug, slug) key, so edited blocks are left alone.
func seedSections(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := sectionstore.New(db)

	for _, sec := range models.DefaultHomeSections() {
		if err := store.Upsert(ctx, sec); err != nil {
			logger.Error("failed to seed section",
				zap.String("page_slug", sec.PageSlug),
				zap.String("slug", sec.Slug),
				zap.Error(err))
			return err
		}
	}
	logger.Info("seeded default home sections", zap.Int("count", len(models.DefaultHomeSections())))
	return nil
}

// seedContent materializes every singleton content document so admin
// reads and public reads start from the same defaults.
func seedContent(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	stores := content.NewStores(db)
	if err := stores.EnsureAll(ctx); err != nil {
		logger.Error("failed to seed content singletons", zap.Error(err))
		return err
	}
	logger.Info("content singletons ensured")
	return nil
}
