package hashtags

import (
	"time"

	"cafe-platform/internal/domain/cafes"
)

// Research platforms. Hashtag research covers platforms beyond the three
// posting targets.
const (
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformTikTok    = "tiktok"
	PlatformLinkedIn  = "linkedin"
)

var validPlatforms = map[string]bool{
	PlatformInstagram: true,
	PlatformTwitter:   true,
	PlatformTikTok:    true,
	PlatformLinkedIn:  true,
}

func ValidPlatform(p string) bool { return validPlatforms[p] }

type Metrics struct {
	Popularity  int     `json:"popularity"`  // 1-100 score
	Competition int     `json:"competition"` // 1-100 score
	Engagement  float64 `json:"engagement"`  // average engagement rate
	PostCount   int64   `json:"post_count"`
	Difficulty  string  `gorm:"default:'medium'" json:"difficulty"` // easy | medium | hard
}

type Trending struct {
	IsCurrentlyTrending bool       `gorm:"default:false" json:"is_currently_trending"`
	TrendingScore       int        `json:"trending_score"`
	PeakDate            *time.Time `json:"peak_date"`
}

type SEOValue struct {
	SearchVolume      int    `json:"search_volume"`
	Keyword           string `json:"keyword"`
	LocalSearchVolume int    `json:"local_search_volume"`
}

type Recommendation struct {
	ShouldUse      bool     `gorm:"default:true" json:"should_use"`
	Frequency      string   `gorm:"default:'weekly'" json:"frequency"`
	BestTimeToPost []string `gorm:"serializer:json" json:"best_time_to_post"`
	Notes          string   `json:"notes"`
}

// Research is uniquely keyed by (cafe, platform, hashtag); re-running
// research for the same keyword overwrites the existing record.
type Research struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	CafeID uint       `gorm:"not null;uniqueIndex:idx_hashtags_cafe_platform_tag" json:"cafe_id"`
	Cafe   cafes.Cafe `json:"-"`

	Platform string `gorm:"type:varchar(20);not null;uniqueIndex:idx_hashtags_cafe_platform_tag" json:"platform"`
	Hashtag  string `gorm:"not null;uniqueIndex:idx_hashtags_cafe_platform_tag" json:"hashtag"`

	Metrics         Metrics        `gorm:"embedded;embeddedPrefix:metric_" json:"metrics"`
	RelatedHashtags []string       `gorm:"serializer:json" json:"related_hashtags"`
	Category        string         `gorm:"type:varchar(20);default:'cafe';index" json:"category"`
	Trending        Trending       `gorm:"embedded;embeddedPrefix:trending_" json:"trending"`
	SEOValue        SEOValue       `gorm:"embedded;embeddedPrefix:seo_" json:"seo_value"`
	Recommendation  Recommendation `gorm:"embedded;embeddedPrefix:rec_" json:"recommendation"`

	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}
