package leads

import (
	"time"

	"cafe-platform/internal/domain/users"
)

// Lead sources.
const (
	SourceGoogleMaps      = "google_maps"
	SourceFacebook        = "facebook"
	SourceInstagram       = "instagram"
	SourceWebsiteScraping = "website_scraping"
	SourceManual          = "manual"
)

// Contact statuses.
const (
	StatusNew        = "new"
	StatusContacted  = "contacted"
	StatusInterested = "interested"
	StatusConverted  = "converted"
	StatusDeclined   = "declined"
)

var validSources = map[string]bool{
	SourceGoogleMaps:      true,
	SourceFacebook:        true,
	SourceInstagram:       true,
	SourceWebsiteScraping: true,
	SourceManual:          true,
}

var validStatuses = map[string]bool{
	StatusNew:        true,
	StatusContacted:  true,
	StatusInterested: true,
	StatusConverted:  true,
	StatusDeclined:   true,
}

func ValidSource(s string) bool { return validSources[s] }
func ValidStatus(s string) bool { return validStatuses[s] }

type SocialLinks struct {
	Instagram  string `json:"instagram"`
	Facebook   string `json:"facebook"`
	Twitter    string `json:"twitter"`
	GoogleMaps string `json:"google_maps"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country string  `json:"country"`
}

type BusinessHours struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ContactLead is a prospect in the operator's sales pipeline. It is global,
// not cafe-scoped.
type ContactLead struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessName string `gorm:"not null;index" json:"business_name"`
	Email        string `gorm:"not null;index" json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Website      string `json:"website"`

	SocialMedia  SocialLinks `gorm:"serializer:json" json:"social_media"`
	BusinessType string      `gorm:"default:'cafe';index" json:"business_type"`
	Source       string      `gorm:"type:varchar(20);not null;index" json:"source"`

	ContactStatus    string     `gorm:"type:varchar(20);not null;default:'new';index" json:"contact_status"`
	Notes            string     `json:"notes"`
	LastContactDate  *time.Time `json:"last_contact_date"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date"`

	AssignedToID *uint       `json:"assigned_to_id"`
	AssignedTo   *users.User `json:"assigned_to,omitempty"`

	Tags          []string        `gorm:"serializer:json" json:"tags"`
	Location      Location        `gorm:"serializer:json" json:"location"`
	BusinessHours []BusinessHours `gorm:"serializer:json" json:"business_hours"`

	EstimatedRevenue float64 `json:"estimated_revenue"`
	EmployeeCount    int     `json:"employee_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
