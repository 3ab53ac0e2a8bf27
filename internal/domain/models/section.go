// internal/domain/models/section.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is an ordered, typed content block attached to a page by slug.
// The (page_slug, slug) pair is unique. Order defines the render sequence
// within a page; ties fall back to natural document order. The page
// reference is a lookup key, not a hard foreign key.
type Section struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageSlug string             `bson:"page_slug" json:"page_slug"`
	Slug     string             `bson:"slug" json:"slug"`
	Type     string             `bson:"type" json:"type"`
	Order    int                `bson:"order" json:"order"`
	Status   string             `bson:"status" json:"status"`
	Settings SectionSettings    `bson:"settings" json:"settings"`

	// Content is schema-less on the wire; use DecodeContent for the typed view.
	Content bson.M `bson:"content" json:"content"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// SectionSettings holds per-section presentation flags.
type SectionSettings struct {
	IsVisible bool   `bson:"is_visible" json:"is_visible"`
	Theme     string `bson:"theme,omitempty" json:"theme,omitempty"`
	Container string `bson:"container,omitempty" json:"container,omitempty"`
}

// RenderType returns the key used for renderer dispatch: the section type,
// falling back to the section slug when type is empty.
func (s Section) RenderType() string {
	if s.Type != "" {
		return s.Type
	}
	return s.Slug
}

// DefaultHomeSections returns the sections seeded for the home page.
func DefaultHomeSections() []Section {
	return []Section{
		{
			PageSlug: PageSlugHome,
			Slug:     "hero",
			Type:     SectionTypeHero,
			Order:    0,
			Status:   StatusActive,
			Settings: SectionSettings{IsVisible: true},
			Content: bson.M{
				"heading":    "Invest in Phuket's Finest Properties",
				"subheading": "Luxury villas and branded residences, curated by Novaa",
				"cta_label":  "Explore Projects",
				"cta_link":   "/projects",
			},
		},
		{
			PageSlug: PageSlugHome,
			Slug:     "about",
			Type:     SectionTypeAbout,
			Order:    1,
			Status:   StatusActive,
			Settings: SectionSettings{IsVisible: true},
			Content: bson.M{
				"title":       "About Novaa",
				"description": "Novaa brings institutional-grade diligence to resort real estate.",
			},
		},
		{
			PageSlug: PageSlugHome,
			Slug:     "why-invest",
			Type:     SectionTypeWhyInvest,
			Order:    2,
			Status:   StatusActive,
			Settings: SectionSettings{IsVisible: true},
			Content:  bson.M{"title": "Why Invest With Us"},
		},
		{
			PageSlug: PageSlugHome,
			Slug:     "testimonials",
			Type:     SectionTypeTestimonials,
			Order:    3,
			Status:   StatusActive,
			Settings: SectionSettings{IsVisible: true},
			Content:  bson.M{"title": "What Our Investors Say"},
		},
		{
			PageSlug: PageSlugHome,
			Slug:     "faq",
			Type:     SectionTypeFAQ,
			Order:    4,
			Status:   StatusActive,
			Settings: SectionSettings{IsVisible: true},
			Content:  bson.M{"title": "Frequently Asked Questions"},
		},
	}
}
