package hashtags

import (
	"math/rand"
	"strings"
	"time"
)

// cafeVocabulary is the static domain vocabulary mixed into every research
// run alongside keyword-derived candidates.
var cafeVocabulary = []string{
	"coffee", "coffeetime", "coffeelover", "cafe", "cafelife",
	"espresso", "latte", "cappuccino", "barista", "coffeeart",
	"localbusiness", "smallbusiness", "artisancoffee", "specialtycoffee",
}

// Candidates derives the fixed-size candidate hashtag set for a keyword.
func Candidates(keyword string) []string {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	base := []string{
		kw,
		kw + "love",
		kw + "life",
		"local" + kw,
		"best" + kw,
		"fresh" + kw,
	}
	out := make([]string, 0, len(base)+len(cafeVocabulary))
	for _, h := range append(base, cafeVocabulary...) {
		out = append(out, "#"+h)
	}
	return out
}

// Categorize buckets a hashtag into the research category enum.
func Categorize(hashtag string) string {
	switch {
	case strings.Contains(hashtag, "coffee"), strings.Contains(hashtag, "espresso"), strings.Contains(hashtag, "latte"):
		return "coffee"
	case strings.Contains(hashtag, "cafe"), strings.Contains(hashtag, "coffeeshop"):
		return "cafe"
	case strings.Contains(hashtag, "local"), strings.Contains(hashtag, "community"):
		return "local"
	case strings.Contains(hashtag, "business"), strings.Contains(hashtag, "small"):
		return "business"
	default:
		return "food"
	}
}

// RelatedHashtags derives companion tags for a candidate.
func RelatedHashtags(hashtag string) []string {
	base := strings.TrimPrefix(hashtag, "#")
	return []string{
		"#" + base + "daily",
		"#" + base + "lover",
		"#" + base + "gram",
		"#local" + base,
	}
}

// ResearchResult carries everything a metric source produces for one
// candidate hashtag.
type ResearchResult struct {
	Metrics        Metrics
	Trending       Trending
	SEOValue       SEOValue
	Recommendation Recommendation
}

// MetricSource supplies research metrics for a candidate. No real social
// API exists yet, so the production source fabricates numbers; aggregation
// and upsert logic never depend on how they were produced.
type MetricSource interface {
	Score(hashtag, keyword, platform string) ResearchResult
}

// RandomMetricSource generates plausible-looking metric values.
type RandomMetricSource struct {
	rng *rand.Rand
}

func NewRandomMetricSource() *RandomMetricSource {
	return &RandomMetricSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var difficulties = []string{"easy", "medium", "hard"}
var frequencies = []string{"daily", "weekly", "monthly"}

func (s *RandomMetricSource) Score(hashtag, keyword, platform string) ResearchResult {
	now := time.Now()
	bestTimes := []string{"7:00 AM", "9:00 AM", "11:00 AM", "1:00 PM", "3:00 PM", "5:00 PM", "7:00 PM"}
	picked := make([]string, 0, 3)
	for _, i := range s.rng.Perm(len(bestTimes))[:s.rng.Intn(3)+2] {
		picked = append(picked, bestTimes[i])
	}

	return ResearchResult{
		Metrics: Metrics{
			Popularity:  s.rng.Intn(100) + 1,
			Competition: s.rng.Intn(100) + 1,
			Engagement:  s.rng.Float64() * 10,
			PostCount:   int64(s.rng.Intn(1000000) + 1000),
			Difficulty:  difficulties[s.rng.Intn(len(difficulties))],
		},
		Trending: Trending{
			IsCurrentlyTrending: s.rng.Float64() > 0.8,
			TrendingScore:       s.rng.Intn(100),
			PeakDate:            &now,
		},
		SEOValue: SEOValue{
			SearchVolume:      s.rng.Intn(10000) + 100,
			Keyword:           strings.TrimPrefix(hashtag, "#"),
			LocalSearchVolume: s.rng.Intn(1000) + 10,
		},
		Recommendation: Recommendation{
			ShouldUse:      s.rng.Float64() > 0.3,
			Frequency:      frequencies[s.rng.Intn(len(frequencies))],
			BestTimeToPost: picked,
			Notes:          "Good hashtag for " + keyword + " related content",
		},
	}
}

// TrendingHashtag is a platform-wide trending entry from the mock feed.
type TrendingHashtag struct {
	Hashtag        string `json:"hashtag"`
	Growth         string `json:"growth"`
	Posts          int64  `json:"posts"`
	Platform       string `json:"platform"`
	Difficulty     string `json:"difficulty"`
	Recommendation string `json:"recommendation"`
}

var trendingFeed = []TrendingHashtag{
	{Hashtag: "#coffeetime", Growth: "+45%", Posts: 2300000},
	{Hashtag: "#mondaymotivation", Growth: "+23%", Posts: 1800000},
	{Hashtag: "#artisancoffee", Growth: "+67%", Posts: 890000},
	{Hashtag: "#localbusiness", Growth: "+34%", Posts: 1200000},
	{Hashtag: "#coffeeculture", Growth: "+56%", Posts: 650000},
	{Hashtag: "#smallbusiness", Growth: "+28%", Posts: 3400000},
	{Hashtag: "#supportlocal", Growth: "+78%", Posts: 980000},
	{Hashtag: "#freshbrew", Growth: "+45%", Posts: 340000},
	{Hashtag: "#cafevibes", Growth: "+89%", Posts: 450000},
	{Hashtag: "#coffeeaddict", Growth: "+23%", Posts: 1900000},
}

// TrendingFeed returns the platform-wide trending list. Mock data until a
// real social listening API is wired in.
func (s *RandomMetricSource) TrendingFeed(platform string) []TrendingHashtag {
	out := make([]TrendingHashtag, len(trendingFeed))
	copy(out, trendingFeed)
	for i := range out {
		out[i].Platform = platform
		if s.rng.Float64() > 0.5 {
			out[i].Difficulty = "medium"
		} else {
			out[i].Difficulty = "hard"
		}
		if s.rng.Float64() > 0.3 {
			out[i].Recommendation = "recommended"
		} else {
			out[i].Recommendation = "consider"
		}
	}
	return out
}
