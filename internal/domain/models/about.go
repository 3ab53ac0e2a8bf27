// internal/domain/models/about.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// About is a singleton document: the about-us page content block.
type About struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Subtitle string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Body     string             `bson:"body,omitempty" json:"body,omitempty"` // sanitized HTML
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Stats    []AboutStat        `bson:"stats,omitempty" json:"stats,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// AboutStat is a headline figure ("120+ villas delivered").
type AboutStat struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// DefaultAbout returns the about block created on first read of an empty store.
func DefaultAbout() About {
	return About{
		Title:    "About Novaa",
		Subtitle: "Curated resort real estate, managed end to end",
	}
}

// OurStory is a slug-keyed singleton: one story block per page slug.
// Unlike the collection singletons, a read on a missing slug returns a
// default without persisting anything.
type OurStory struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageSlug string             `bson:"page_slug" json:"page_slug"`
	Title    string             `bson:"title" json:"title"`
	Body     string             `bson:"body,omitempty" json:"body,omitempty"` // sanitized HTML
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Mission  string             `bson:"mission,omitempty" json:"mission,omitempty"`
	Vision   string             `bson:"vision,omitempty" json:"vision,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultOurStory returns the non-persisted default for a page slug.
func DefaultOurStory(pageSlug string) OurStory {
	return OurStory{
		PageSlug: pageSlug,
		Title:    "Our Story",
	}
}
