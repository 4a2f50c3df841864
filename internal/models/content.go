// Package models defines the editable site content document.
package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Brand holds branding and hero section text.
type Brand struct {
	Name                string `json:"name"`
	Tagline             string `json:"tagline"`
	HeroHeadline        string `json:"heroHeadline"`
	HeroRating          string `json:"heroRating"`
	HeroBookingCount    string `json:"heroBookingCount"`
	HeroBackgroundImage string `json:"heroBackgroundImage"`
	HeroPersonImage     string `json:"heroPersonImage"`
	VIPText             string `json:"vipText"`
}

// Contact holds business contact details shown in the header and footer.
type Contact struct {
	Phone         string `json:"phone"`
	PhoneLink     string `json:"phoneLink"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	WhatsApp      string `json:"whatsapp"`
	BusinessHours string `json:"businessHours"`
	Facebook      string `json:"facebook"`
	Instagram     string `json:"instagram"`
	Twitter       string `json:"twitter"`
}

// Service is one marketing section. ID doubles as the HTML anchor for the
// section, so it must stay stable across edits.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Heading     string   `json:"heading"`
	Description string   `json:"description,omitempty"`
	Subheadings []string `json:"subheadings,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Content     []string `json:"content"`
	Bullets     []string `json:"bullets"`
	Highlight   string   `json:"highlight,omitempty"`
	Image       string   `json:"image"`
}

// Validate checks the fields a section cannot render without.
func (s Service) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Title, validation.Required),
	)
}

// Review is a customer testimonial.
type Review struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Text     string `json:"text"`
}

// Validate checks required review fields.
func (r Review) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Text, validation.Required),
	)
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Validate checks required FAQ fields.
func (f FAQ) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required),
		validation.Field(&f.Answer, validation.Required),
	)
}

// SiteContent is the full editable state of the site. There is exactly one
// instance, persisted as a single JSON document.
type SiteContent struct {
	Brand              Brand     `json:"brand"`
	Contact            Contact   `json:"contact"`
	ServiceAreas       []string  `json:"serviceAreas"`
	Services           []Service `json:"services"`
	Reviews            []Review  `json:"reviews"`
	FAQs               []FAQ     `json:"faqs"`
	SearchPlaceholders []string  `json:"searchPlaceholders"`
}

// Validate validates every collection entry in the document.
func (c SiteContent) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Services),
		validation.Field(&c.Reviews),
		validation.Field(&c.FAQs),
	)
}

// Fallback returns the minimal valid document served when the backing file
// is missing or unreadable. The public page must always render something.
func Fallback() SiteContent {
	return SiteContent{
		Brand: Brand{
			Name:             "EazyService",
			Tagline:          "BY EAZYSERVICE INDIA",
			HeroHeadline:     "Best AC Service & Repair in Delhi-NCR",
			HeroRating:       "4.8",
			HeroBookingCount: "3.8M bookings near you",
			VIPText:          "Save upto 15% off on cleaning, plumbing and ac services",
		},
		Contact: Contact{
			Phone:         "+91 9999999999",
			PhoneLink:     "tel:+919999999999",
			Email:         "info@eazyserviceindia.shop",
			Address:       "Delhi, 110001",
			WhatsApp:      "919999999999",
			BusinessHours: "Mon - Sun: 8:00 AM - 10:00 PM",
			Facebook:      "#",
			Instagram:     "#",
			Twitter:       "#",
		},
		ServiceAreas:       []string{"Delhi", "Gurgaon", "Noida", "Faridabad", "Ghaziabad"},
		Services:           []Service{},
		Reviews:            []Review{},
		FAQs:               []FAQ{},
		SearchPlaceholders: []string{"AC Service", "AC Repair"},
	}
}
