package content

import (
	"math/rand"
	"time"
)

// EngagementPrediction is a per-post engagement estimate.
type EngagementPrediction struct {
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
	Shares         int    `json:"shares"`
	BestTimeToPost string `json:"best_time_to_post"`
}

// AudienceInsights is a demographic/interest breakdown for a cafe's
// followers.
type AudienceInsights struct {
	Demographics struct {
		Age      map[string]int `json:"age"`
		Gender   map[string]int `json:"gender"`
		Location map[string]int `json:"location"`
	} `json:"demographics"`
	Interests []InterestShare `json:"interests"`
	PeakActivity struct {
		Days  []string `json:"days"`
		Hours []string `json:"hours"`
	} `json:"peak_activity"`
}

type InterestShare struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// EngagementEstimator supplies the engagement and audience figures that no
// real social API backs yet. Everything random lives behind this interface
// so the aggregation logic stays deterministic and swappable.
type EngagementEstimator interface {
	PredictPost(platform string) EngagementPrediction
	PostEngagement(platform string) (likes, comments, shares int, rate float64)
	Audience() AudienceInsights
}

var optimalPostTimes = map[string][]string{
	"instagram": {"9:00 AM", "1:00 PM", "5:00 PM"},
	"facebook":  {"1:00 PM", "3:00 PM", "4:00 PM"},
	"twitter":   {"9:00 AM", "12:00 PM", "6:00 PM"},
}

// BestPostTimes returns the conventional peak slots for a platform.
func BestPostTimes(platform string) []string {
	if times, ok := optimalPostTimes[platform]; ok {
		return times
	}
	return optimalPostTimes["instagram"]
}

// RandomEstimator produces plausible-looking placeholder numbers.
type RandomEstimator struct {
	rng *rand.Rand
}

func NewRandomEstimator() *RandomEstimator {
	return &RandomEstimator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (e *RandomEstimator) PredictPost(platform string) EngagementPrediction {
	times := BestPostTimes(platform)
	return EngagementPrediction{
		Likes:          e.rng.Intn(200) + 50,
		Comments:       e.rng.Intn(30) + 5,
		Shares:         e.rng.Intn(15) + 2,
		BestTimeToPost: times[e.rng.Intn(len(times))],
	}
}

func (e *RandomEstimator) PostEngagement(platform string) (int, int, int, float64) {
	likes := e.rng.Intn(100) + 10
	comments := e.rng.Intn(20) + 2
	shares := e.rng.Intn(10) + 1
	rate := e.rng.Float64()*8 + 2
	return likes, comments, shares, rate
}

func (e *RandomEstimator) Audience() AudienceInsights {
	var out AudienceInsights
	out.Demographics.Age = map[string]int{
		"18-24": 25, "25-34": 35, "35-44": 25, "45-54": 10, "55+": 5,
	}
	out.Demographics.Gender = map[string]int{"male": 45, "female": 52, "other": 3}
	out.Demographics.Location = map[string]int{
		"local": 60, "regional": 30, "national": 8, "international": 2,
	}
	out.Interests = []InterestShare{
		{Name: "Coffee", Percentage: 85},
		{Name: "Food & Dining", Percentage: 72},
		{Name: "Local Business", Percentage: 68},
		{Name: "Lifestyle", Percentage: 45},
		{Name: "Music & Entertainment", Percentage: 38},
	}
	out.PeakActivity.Days = []string{"Monday", "Wednesday", "Friday"}
	out.PeakActivity.Hours = []string{"8:00 AM", "12:00 PM", "6:00 PM"}
	return out
}
