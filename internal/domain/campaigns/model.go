package campaigns

import (
	"time"

	"cafe-platform/internal/domain/cafes"

	"gorm.io/gorm"
)

// Campaign statuses. Only draft->active and active<->paused are reachable
// from tenant actions; completed/cancelled require an operator action.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Campaign types.
const (
	TypeSocialMedia      = "social_media"
	TypeEmail            = "email"
	TypeSEO              = "seo"
	TypePaidAds          = "paid_ads"
	TypeContentMarketing = "content_marketing"
)

var validTypes = map[string]bool{
	TypeSocialMedia:      true,
	TypeEmail:            true,
	TypeSEO:              true,
	TypePaidAds:          true,
	TypeContentMarketing: true,
}

func ValidType(t string) bool { return validTypes[t] }

var transitions = map[string][]string{
	StatusDraft:  {StatusActive},
	StatusActive: {StatusPaused, StatusCompleted, StatusCancelled},
	StatusPaused: {StatusActive, StatusCompleted, StatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type TargetAudience struct {
	AgeRange     string   `json:"age_range"`
	Interests    []string `json:"interests"`
	Location     string   `json:"location"`
	Demographics string   `json:"demographics"`
}

type Budget struct {
	Total    float64 `json:"total"`
	Daily    float64 `json:"daily"`
	Currency string  `gorm:"default:'USD'" json:"currency"`
}

type Schedule struct {
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	PostFrequency int        `json:"post_frequency"`
	TimeSlots     []string   `gorm:"serializer:json" json:"time_slots"`
}

type Content struct {
	Hashtags         []string `json:"hashtags"`
	Keywords         []string `json:"keywords"`
	ContentTemplates []string `json:"content_templates"`
	ImageURLs        []string `json:"image_urls"`
}

type Automation struct {
	WebhookURL        string `json:"webhook_url"`
	AutoPost          bool   `gorm:"default:false" json:"auto_post"`
	AutoRespond       bool   `gorm:"default:false" json:"auto_respond"`
	ContentGeneration bool   `gorm:"default:true" json:"content_generation"`
}

// Metrics are cumulative counters. They are only ever incremented (see
// IncrementMetrics), never set to absolute values.
type Metrics struct {
	Impressions int64   `gorm:"default:0" json:"impressions"`
	Clicks      int64   `gorm:"default:0" json:"clicks"`
	Engagements int64   `gorm:"default:0" json:"engagements"`
	Conversions int64   `gorm:"default:0" json:"conversions"`
	Spend       float64 `gorm:"default:0" json:"spend"`
}

type Campaign struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	CafeID uint       `gorm:"not null;index" json:"cafe_id"`
	Cafe   cafes.Cafe `json:"-"`

	Name      string   `gorm:"not null" json:"name"`
	Type      string   `gorm:"type:varchar(20);not null" json:"type"`
	Status    string   `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Platforms []string `gorm:"serializer:json" json:"platforms"`

	TargetAudience TargetAudience `gorm:"serializer:json" json:"target_audience"`
	Budget         Budget         `gorm:"embedded;embeddedPrefix:budget_" json:"budget"`
	Schedule       Schedule       `gorm:"embedded;embeddedPrefix:schedule_" json:"schedule"`
	Content        Content        `gorm:"serializer:json" json:"content"`
	Automation     Automation     `gorm:"embedded;embeddedPrefix:automation_" json:"automation"`
	Metrics        Metrics        `gorm:"embedded;embeddedPrefix:metrics_" json:"metrics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MetricsDelta is a set of additive increments for campaign counters.
type MetricsDelta struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Engagements int64   `json:"engagements"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// IncrementMetrics applies delta as a single additive SQL update, so
// concurrent increments compose without lost updates. Absolute writes to
// metric columns are deliberately not offered.
func IncrementMetrics(db *gorm.DB, campaignID, cafeID uint, delta MetricsDelta) (int64, error) {
	res := db.Model(&Campaign{}).
		Where("id = ? AND cafe_id = ?", campaignID, cafeID).
		Updates(map[string]interface{}{
			"metrics_impressions": gorm.Expr("metrics_impressions + ?", delta.Impressions),
			"metrics_clicks":      gorm.Expr("metrics_clicks + ?", delta.Clicks),
			"metrics_engagements": gorm.Expr("metrics_engagements + ?", delta.Engagements),
			"metrics_conversions": gorm.Expr("metrics_conversions + ?", delta.Conversions),
			"metrics_spend":       gorm.Expr("metrics_spend + ?", delta.Spend),
			"updated_at":          time.Now(),
		})
	return res.RowsAffected, res.Error
}
