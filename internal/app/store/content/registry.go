// internal/app/store/content/registry.go
package content

import (
	"context"

	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names for the content documents.
const (
	CollNavbars           = "navbars"
	CollFooters           = "footers"
	CollAbouts            = "abouts"
	CollFaqs              = "faqs"
	CollContacts          = "contacts"
	CollTestimonials      = "testimonials"
	CollWhyInvests        = "why_invests"
	CollNovaaAdvantages   = "novaa_advantages"
	CollInvestorInsights  = "investor_insights"
	CollCuratedCollection = "curated_collections"
	CollProperties        = "properties"
	CollBreadcrumbs       = "breadcrumbs"
	CollOurStories        = "our_stories"
)

// Stores bundles every content accessor. Built once in bootstrap and
// shared by the content feature and seeding.
type Stores struct {
	Navbar            *Singleton[models.Navbar]
	Footer            *Singleton[models.Footer]
	About             *Singleton[models.About]
	Faq               *Singleton[models.Faq]
	Contact           *Singleton[models.Contact]
	Testimonials      *Singleton[models.Testimonials]
	WhyInvest         *Singleton[models.WhyInvest]
	NovaaAdvantage    *Singleton[models.NovaaAdvantage]
	InvestorInsights  *Singleton[models.InvestorInsights]
	CuratedCollection *Singleton[models.CuratedCollection]
	Properties        *Singleton[models.Properties]

	Breadcrumb *SlugKeyed[models.Breadcrumb]
	OurStory   *SlugKeyed[models.OurStory]
}

// NewStores wires every content accessor to its collection and defaults.
func NewStores(db *mongo.Database) *Stores {
	return &Stores{
		Navbar:            NewSingleton(db, CollNavbars, models.DefaultNavbar),
		Footer:            NewSingleton(db, CollFooters, models.DefaultFooter),
		About:             NewSingleton(db, CollAbouts, models.DefaultAbout),
		Faq:               NewSingleton(db, CollFaqs, models.DefaultFaq),
		Contact:           NewSingleton(db, CollContacts, models.DefaultContact),
		Testimonials:      NewSingleton(db, CollTestimonials, models.DefaultTestimonials),
		WhyInvest:         NewSingleton(db, CollWhyInvests, models.DefaultWhyInvest),
		NovaaAdvantage:    NewSingleton(db, CollNovaaAdvantages, models.DefaultNovaaAdvantage),
		InvestorInsights:  NewSingleton(db, CollInvestorInsights, models.DefaultInvestorInsights),
		CuratedCollection: NewSingleton(db, CollCuratedCollection, models.DefaultCuratedCollection),
		Properties:        NewSingleton(db, CollProperties, models.DefaultProperties),

		Breadcrumb: NewSlugKeyed(db, CollBreadcrumbs, models.DefaultBreadcrumb),
		OurStory:   NewSlugKeyed(db, CollOurStories, models.DefaultOurStory),
	}
}

// EnsureAll materializes every singleton document. Called from seeding at
// startup so lazy creation never happens on the public read path.
func (s *Stores) EnsureAll(ctx context.Context) error {
	ensures := []func(context.Context) error{
		s.Navbar.Ensure,
		s.Footer.Ensure,
		s.About.Ensure,
		s.Faq.Ensure,
		s.Contact.Ensure,
		s.Testimonials.Ensure,
		s.WhyInvest.Ensure,
		s.NovaaAdvantage.Ensure,
		s.InvestorInsights.Ensure,
		s.CuratedCollection.Ensure,
		s.Properties.Ensure,
	}
	for _, ensure := range ensures {
		if err := ensure(ctx); err != nil {
			return err
		}
	}
	return nil
}
