package cafes

import (
	"time"

	"cafe-platform/internal/domain/plans"
	"cafe-platform/internal/domain/users"
)

// SocialHandles holds the cafe's per-platform profile handles.
type SocialHandles struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

// Cafe is the tenant root: every cafe-scoped record hangs off one of these.
type Cafe struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;uniqueIndex:idx_cafes_user" json:"user_id"`
	User   users.User `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`

	SocialMedia SocialHandles `gorm:"embedded;embeddedPrefix:social_" json:"social_media"`

	WebsiteURL  string `json:"website_url"`
	WebStoreURL string `json:"web_store_url"`

	SubscriptionPlanID *uint       `json:"subscription_plan_id"`
	SubscriptionPlan   *plans.Plan `json:"subscription_plan,omitempty"`
	SubscriptionDate   *time.Time  `json:"subscription_date"`
	NextBillingDate    *time.Time  `json:"next_billing_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasActiveSubscription reports whether the cafe's billing period covers now.
func (c *Cafe) HasActiveSubscription(now time.Time) bool {
	return c.SubscriptionPlanID != nil && c.NextBillingDate != nil && now.Before(*c.NextBillingDate)
}
