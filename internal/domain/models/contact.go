// internal/domain/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a singleton document: contact page details and office info.
type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Intro   string             `bson:"intro,omitempty" json:"intro,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	MapURL  string             `bson:"map_url,omitempty" json:"map_url,omitempty"`
	Hours   string             `bson:"hours,omitempty" json:"hours,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultContact returns the contact block created on first read of an empty store.
func DefaultContact() Contact {
	return Contact{
		Title: "Get in Touch",
		Intro: "Speak to our investment team about available residences.",
	}
}

// Breadcrumb is a slug-keyed singleton: one breadcrumb banner per page
// slug. A read on a missing slug returns a default without persisting.
type Breadcrumb struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageSlug string             `bson:"page_slug" json:"page_slug"`
	Title    string             `bson:"title" json:"title"`
	Subtitle string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Trail    []BreadcrumbLink   `bson:"trail,omitempty" json:"trail,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// BreadcrumbLink is one step in the breadcrumb trail.
type BreadcrumbLink struct {
	Label string `bson:"label" json:"label"`
	Href  string `bson:"href" json:"href"`
}

// DefaultBreadcrumb returns the non-persisted default for a page slug.
func DefaultBreadcrumb(pageSlug string) Breadcrumb {
	return Breadcrumb{
		PageSlug: pageSlug,
		Trail:    []BreadcrumbLink{{Label: "Home", Href: "/"}},
	}
}
