package hashtags

import (
	"strings"
	"testing"
)

func research(tag string, popularity, competition int, trending bool, category string) Research {
	return Research{
		Hashtag:  tag,
		Category: category,
		Metrics: Metrics{
			Popularity:  popularity,
			Competition: competition,
		},
		Trending: Trending{IsCurrentlyTrending: trending},
	}
}

func findSet(sets []Set, setType string) *Set {
	for i := range sets {
		if sets[i].Type == setType {
			return &sets[i]
		}
	}
	return nil
}

func TestBuildSetsEmpty(t *testing.T) {
	if sets := BuildSets(nil); len(sets) != 0 {
		t.Errorf("expected no sets, got %d", len(sets))
	}
}

func TestBuildSetsFilters(t *testing.T) {
	items := []Research{
		research("#coffeetime", 80, 60, true, "coffee"),
		research("#quietcorner", 50, 30, false, "cafe"),
		research("#localcafe", 40, 50, false, "local"),
		research("#obscurebrew", 20, 10, false, "coffee"),
	}

	sets := BuildSets(items)

	trending := findSet(sets, "trending")
	if trending == nil || len(trending.Hashtags) != 1 || trending.Hashtags[0] != "#coffeetime" {
		t.Fatalf("trending set wrong: %+v", trending)
	}

	// balanced: competition < 70 && popularity > 30
	balanced := findSet(sets, "balanced")
	if balanced == nil || len(balanced.Hashtags) != 3 {
		t.Fatalf("balanced set wrong: %+v", balanced)
	}

	// niche: competition < 40
	niche := findSet(sets, "niche")
	if niche == nil || len(niche.Hashtags) != 2 {
		t.Fatalf("niche set wrong: %+v", niche)
	}

	// local: category == local or name contains "local"
	local := findSet(sets, "local")
	if local == nil || len(local.Hashtags) != 1 || local.Hashtags[0] != "#localcafe" {
		t.Fatalf("local set wrong: %+v", local)
	}
}

func TestBuildSetsCaps(t *testing.T) {
	var items []Research
	for i := 0; i < 30; i++ {
		items = append(items, research("#tag", 90, 20, true, "coffee"))
	}

	sets := BuildSets(items)
	if s := findSet(sets, "trending"); s == nil || len(s.Hashtags) != 10 {
		t.Errorf("trending cap violated: %+v", s)
	}
	if s := findSet(sets, "balanced"); s == nil || len(s.Hashtags) != 15 {
		t.Errorf("balanced cap violated: %+v", s)
	}
	if s := findSet(sets, "niche"); s == nil || len(s.Hashtags) != 12 {
		t.Errorf("niche cap violated: %+v", s)
	}
}

func TestSortForTypeBalanced(t *testing.T) {
	items := []Research{
		research("#a", 50, 90, false, "cafe"),
		research("#b", 80, 50, false, "cafe"),
		research("#c", 80, 20, false, "cafe"),
	}
	SortForType(items, TypeBalanced)

	got := []string{items[0].Hashtag, items[1].Hashtag, items[2].Hashtag}
	want := []string{"#c", "#b", "#a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("balanced order = %v, want %v", got, want)
		}
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates("Espresso")
	if len(got) != 6+len(cafeVocabulary) {
		t.Fatalf("candidate count = %d", len(got))
	}
	for _, tag := range got {
		if !strings.HasPrefix(tag, "#") {
			t.Errorf("candidate %q missing # prefix", tag)
		}
		if tag != strings.ToLower(tag) {
			t.Errorf("candidate %q not lowercased", tag)
		}
	}
	if got[0] != "#espresso" {
		t.Errorf("first candidate = %q, want #espresso", got[0])
	}
}

func TestCategorize(t *testing.T) {
	cases := map[string]string{
		"#coffeetime":    "coffee",
		"#cafelife":      "cafe",
		"#localbusiness": "local",
		"#smallbiz":      "business",
		"#brunch":        "food",
	}
	for tag, want := range cases {
		if got := Categorize(tag); got != want {
			t.Errorf("Categorize(%q) = %q, want %q", tag, got, want)
		}
	}
}
