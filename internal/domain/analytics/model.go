package analytics

import (
	"time"

	"cafe-platform/internal/domain/cafes"
)

// Snapshot periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

var validPeriods = map[string]bool{
	PeriodDaily:   true,
	PeriodWeekly:  true,
	PeriodMonthly: true,
}

func ValidPeriod(p string) bool { return validPeriods[p] }

type Engagement struct {
	Likes    int     `json:"likes"`
	Comments int     `json:"comments"`
	Shares   int     `json:"shares"`
	Saves    int     `json:"saves,omitempty"`
	Retweets int     `json:"retweets,omitempty"`
	Replies  int     `json:"replies,omitempty"`
	Rate     float64 `json:"rate"`
}

type PlatformStats struct {
	Followers    int        `json:"followers"`
	Following    int        `json:"following,omitempty"`
	Posts        int        `json:"posts"`
	Engagement   Engagement `json:"engagement"`
	Reach        int        `json:"reach,omitempty"`
	Impressions  int        `json:"impressions"`
	ProfileViews int        `json:"profile_views,omitempty"`
}

type SocialMediaStats struct {
	Instagram PlatformStats `json:"instagram"`
	Facebook  PlatformStats `json:"facebook"`
	Twitter   PlatformStats `json:"twitter"`
}

type SEORanking struct {
	Keyword      string `json:"keyword"`
	Position     int    `json:"position"`
	SearchVolume int    `json:"search_volume"`
}

type WebsiteStats struct {
	Visitors               int          `json:"visitors"`
	PageViews              int          `json:"page_views"`
	BounceRate             float64      `json:"bounce_rate"`
	AverageSessionDuration float64      `json:"average_session_duration"`
	Conversions            int          `json:"conversions"`
	OrganicTraffic         int          `json:"organic_traffic"`
	SEORanking             []SEORanking `json:"seo_ranking"`
}

type LeadStats struct {
	Generated      int     `json:"generated"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversion_rate"`
}

type BusinessStats struct {
	Leads             LeadStats `json:"leads"`
	Revenue           float64   `json:"revenue"`
	Orders            int       `json:"orders"`
	AverageOrderValue float64   `json:"average_order_value"`
	CustomerRetention float64   `json:"customer_retention"`
}

// CampaignSnapshot is an embedded per-campaign spend/performance record.
type CampaignSnapshot struct {
	CampaignID  uint    `json:"campaign_id"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	ROAS        float64 `json:"roas"`
}

type AutomatedPostStats struct {
	Scheduled int `json:"scheduled"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

// Snapshot is a wide per-cafe metrics snapshot bucketed by (date, period).
// It is upserted by an explicit update call, never written automatically.
type Snapshot struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	CafeID uint       `gorm:"not null;uniqueIndex:idx_analytics_cafe_date_period" json:"cafe_id"`
	Cafe   cafes.Cafe `json:"-"`

	Date   time.Time `gorm:"not null;uniqueIndex:idx_analytics_cafe_date_period" json:"date"`
	Period string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_analytics_cafe_date_period" json:"period"`

	SocialMedia    SocialMediaStats   `gorm:"serializer:json" json:"social_media"`
	Website        WebsiteStats       `gorm:"serializer:json" json:"website"`
	Business       BusinessStats      `gorm:"serializer:json" json:"business"`
	Campaigns      []CampaignSnapshot `gorm:"serializer:json" json:"campaigns"`
	AutomatedPosts AutomatedPostStats `gorm:"serializer:json" json:"automated_posts"`

	CreatedAt time.Time `json:"created_at"`
}
