package hashtags

import (
	"sort"
	"strings"
)

// Recommendation filter types.
const (
	TypeTrending       = "trending"
	TypeLowCompetition = "low_competition"
	TypeHighEngagement = "high_engagement"
	TypeLocal          = "local"
	TypeBalanced       = "balanced"
)

// SortForType orders a recommendation slice in place according to the
// requested recommendation type. "balanced" sorts by popularity desc then
// competition asc; the others sort on their defining metric.
func SortForType(items []Research, recType string) {
	switch recType {
	case TypeTrending:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Trending.TrendingScore > items[j].Trending.TrendingScore
		})
	case TypeLowCompetition:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Metrics.Competition < items[j].Metrics.Competition
		})
	case TypeHighEngagement:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Metrics.Engagement > items[j].Metrics.Engagement
		})
	case TypeLocal:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Metrics.Popularity > items[j].Metrics.Popularity
		})
	default: // balanced
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Metrics.Popularity != items[j].Metrics.Popularity {
				return items[i].Metrics.Popularity > items[j].Metrics.Popularity
			}
			return items[i].Metrics.Competition < items[j].Metrics.Competition
		})
	}
}

// Set is a read-time bundle of researched hashtags. Sets are never persisted.
type Set struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Hashtags       []string `json:"hashtags"`
	Description    string   `json:"description"`
	EstimatedReach int      `json:"estimated_reach"`
}

var setDescriptions = map[string]string{
	"trending": "Current trending hashtags for maximum visibility",
	"balanced": "Well-balanced mix of popular and achievable hashtags",
	"niche":    "Low competition hashtags for targeted engagement",
	"local":    "Location-based hashtags for local community reach",
}

var setCaps = map[string]int{
	"trending": 10,
	"balanced": 15,
	"niche":    12,
	"local":    8,
}

// BuildSets computes the named bundles from already-stored metrics. Each
// bundle is independently filtered and capped; empty bundles are omitted.
func BuildSets(items []Research) []Set {
	if len(items) == 0 {
		return []Set{}
	}

	sets := []Set{}
	for _, setType := range []string{"trending", "balanced", "niche", "local"} {
		var selected []Research
		switch setType {
		case "trending":
			selected = filter(items, func(h Research) bool {
				return h.Trending.IsCurrentlyTrending
			})
		case "balanced":
			selected = filter(items, func(h Research) bool {
				return h.Metrics.Competition < 70 && h.Metrics.Popularity > 30
			})
		case "niche":
			selected = filter(items, func(h Research) bool {
				return h.Metrics.Competition < 40
			})
		case "local":
			selected = filter(items, func(h Research) bool {
				return h.Category == "local" || strings.Contains(h.Hashtag, "local")
			})
		}

		if cap := setCaps[setType]; len(selected) > cap {
			selected = selected[:cap]
		}
		if len(selected) == 0 {
			continue
		}

		tags := make([]string, 0, len(selected))
		for _, h := range selected {
			tags = append(tags, h.Hashtag)
		}
		sets = append(sets, Set{
			Name:           strings.ToUpper(setType[:1]) + setType[1:],
			Type:           setType,
			Hashtags:       tags,
			Description:    setDescriptions[setType],
			EstimatedReach: estimatedReach(selected),
		})
	}
	return sets
}

func filter(items []Research, keep func(Research) bool) []Research {
	out := []Research{}
	for _, h := range items {
		if keep(h) {
			out = append(out, h)
		}
	}
	return out
}

func estimatedReach(items []Research) int {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, h := range items {
		sum += h.Metrics.Popularity
	}
	avg := float64(sum) / float64(len(items))
	return int(avg * float64(len(items)) * 100)
}
