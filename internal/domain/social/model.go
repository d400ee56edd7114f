package social

import (
	"time"

	"cafe-platform/internal/domain/cafes"
)

// Post platforms.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
)

// Post lifecycle states. pending -> ready -> scheduled -> posted, with
// failed reachable from scheduled. posted/failed are written only by the
// external callback endpoint, never by an in-process transition.
const (
	StatusPending   = "pending"
	StatusReady     = "ready"
	StatusScheduled = "scheduled"
	StatusPosted    = "posted"
	StatusFailed    = "failed"
)

var validPlatforms = map[string]bool{
	PlatformInstagram: true,
	PlatformFacebook:  true,
	PlatformTwitter:   true,
}

func ValidPlatform(p string) bool { return validPlatforms[p] }

var transitions = map[string][]string{
	StatusPending:   {StatusReady},
	StatusReady:     {StatusScheduled},
	StatusScheduled: {StatusPosted, StatusFailed},
}

// CanTransition reports whether from -> to is a legal status move.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PostMetadata records how a post was produced. Stored as JSON.
type PostMetadata struct {
	Hashtags       []string   `json:"hashtags,omitempty"`
	Topic          string     `json:"topic,omitempty"`
	Tone           string     `json:"tone,omitempty"`
	AIPrompt       string     `json:"ai_prompt,omitempty"`
	GeneratedAt    *time.Time `json:"generated_at,omitempty"`
	BulkScheduled  bool       `json:"bulk_scheduled,omitempty"`
	WebhookCreated bool       `json:"webhook_created,omitempty"`
}

type Post struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	CafeID uint       `gorm:"not null;index" json:"cafe_id"`
	Cafe   cafes.Cafe `json:"-"`

	Platform    string `gorm:"type:varchar(20);not null" json:"platform"`
	ContentType string `gorm:"type:varchar(20);not null;default:'image'" json:"content_type"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`

	ScheduledDate *time.Time `json:"scheduled_date"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Metadata PostMetadata `gorm:"serializer:json" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
