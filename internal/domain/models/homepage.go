// internal/domain/models/homepage.go
package models

// Homepage section singletons. Each of these is a one-document collection
// read via find-or-create: the public site always receives a populated
// structure, even before an admin has touched the content.

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonials is a singleton document: investor quotes shown on the home page.
type Testimonials struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Items []Testimonial      `bson:"items,omitempty" json:"items,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Testimonial is one quoted endorsement.
type Testimonial struct {
	Quote  string `bson:"quote" json:"quote"`
	Author string `bson:"author,omitempty" json:"author,omitempty"`
	Role   string `bson:"role,omitempty" json:"role,omitempty"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Order  int    `bson:"order" json:"order"`
}

// DefaultTestimonials returns the block created on first read of an empty store.
func DefaultTestimonials() Testimonials {
	return Testimonials{Title: "What Our Investors Say"}
}

// WhyInvest is a singleton document: the "why invest" pitch block.
type WhyInvest struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Intro string             `bson:"intro,omitempty" json:"intro,omitempty"`
	Items []IconPoint        `bson:"items,omitempty" json:"items,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IconPoint is an icon + title + text bullet used by pitch blocks.
type IconPoint struct {
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
	Title string `bson:"title" json:"title"`
	Text  string `bson:"text,omitempty" json:"text,omitempty"`
	Order int    `bson:"order" json:"order"`
}

// DefaultWhyInvest returns the block created on first read of an empty store.
func DefaultWhyInvest() WhyInvest {
	return WhyInvest{Title: "Why Invest With Novaa"}
}

// NovaaAdvantage is a singleton document: the brand differentiators block.
type NovaaAdvantage struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Items []IconPoint        `bson:"items,omitempty" json:"items,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultNovaaAdvantage returns the block created on first read of an empty store.
func DefaultNovaaAdvantage() NovaaAdvantage {
	return NovaaAdvantage{Title: "The Novaa Advantage"}
}

// InvestorInsights is a singleton document: curated market insights.
type InvestorInsights struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Items []InsightCard      `bson:"items,omitempty" json:"items,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// InsightCard is one market-insight card.
type InsightCard struct {
	Title string `bson:"title" json:"title"`
	Text  string `bson:"text,omitempty" json:"text,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Link  string `bson:"link,omitempty" json:"link,omitempty"`
	Order int    `bson:"order" json:"order"`
}

// DefaultInvestorInsights returns the block created on first read of an empty store.
func DefaultInvestorInsights() InvestorInsights {
	return InvestorInsights{Title: "Investor Insights"}
}

// CuratedCollection is a singleton document: the hand-picked project
// showcase. Project references are slugs resolved by the renderer.
type CuratedCollection struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Subtitle     string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ProjectSlugs []string           `bson:"project_slugs,omitempty" json:"project_slugs,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultCuratedCollection returns the block created on first read of an empty store.
func DefaultCuratedCollection() CuratedCollection {
	return CuratedCollection{Title: "Curated Collection"}
}

// Properties is a singleton document: settings for the public property
// listing surface (hero copy, filters shown, projects per page).
type Properties struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Intro        string             `bson:"intro,omitempty" json:"intro,omitempty"`
	ShowFilters  bool               `bson:"show_filters" json:"show_filters"`
	PageSize     int                `bson:"page_size" json:"page_size"`
	DefaultOrder string             `bson:"default_order,omitempty" json:"default_order,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultProperties returns the block created on first read of an empty store.
func DefaultProperties() Properties {
	return Properties{Title: "Our Properties", ShowFilters: true, PageSize: 12}
}
