package plans

import "time"

type Plan struct {
	ID                  uint     `gorm:"primaryKey" json:"id"`
	Name                string   `gorm:"not null" json:"name"`
	Price               float64  `gorm:"not null" json:"price"`
	Features            []string `gorm:"serializer:json" json:"features"`
	SocialPostFrequency int      `gorm:"default:0" json:"social_post_frequency"`
	IncludesWebStore    bool     `gorm:"default:false" json:"includes_web_store"`
	Description         string   `json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
