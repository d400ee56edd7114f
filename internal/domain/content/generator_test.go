package content

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestApplyPlatformRulesTwitterTruncates(t *testing.T) {
	long := strings.Repeat("a", 300)
	got := ApplyPlatformRules(long, []string{"#coffee"}, "twitter")
	if len(got) != TwitterCharLimit {
		t.Errorf("len = %d, want %d", len(got), TwitterCharLimit)
	}
	if strings.Contains(got, "#coffee") {
		t.Error("twitter content must not get hashtags appended")
	}
}

func TestApplyPlatformRulesTwitterTruncatesOnRunes(t *testing.T) {
	// an emoji straddling the cut point must be dropped whole, never
	// split into invalid bytes
	text := strings.Repeat("a", TwitterCharLimit-1) + "☕☕☕"
	got := ApplyPlatformRules(text, nil, "twitter")
	if !utf8.ValidString(got) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != TwitterCharLimit {
		t.Errorf("rune count = %d, want %d", n, TwitterCharLimit)
	}
	if !strings.HasSuffix(got, "☕") {
		t.Errorf("boundary rune dropped or mangled: %q", got[len(got)-8:])
	}
}

func TestGenerateTwitterMultiByteCafeName(t *testing.T) {
	g := NewTemplateGenerator()
	out := g.Generate(Request{
		CafeName: strings.Repeat("é", 250),
		Topic:    "default",
		Platform: "twitter",
		Tone:     "friendly",
	})
	if !utf8.ValidString(out.Text) {
		t.Fatalf("generated text is not valid UTF-8: %q", out.Text)
	}
	if n := utf8.RuneCountInString(out.Text); n > TwitterCharLimit {
		t.Errorf("rune count = %d, want <= %d", n, TwitterCharLimit)
	}
}

func TestApplyPlatformRulesTwitterShortUnchanged(t *testing.T) {
	got := ApplyPlatformRules("short text", []string{"#coffee"}, "twitter")
	if got != "short text" {
		t.Errorf("got %q", got)
	}
}

func TestApplyPlatformRulesInstagramAppends(t *testing.T) {
	got := ApplyPlatformRules("caption", []string{"#coffee", "#cafe"}, "instagram")
	if !strings.HasSuffix(got, "#coffee #cafe") {
		t.Errorf("hashtags not appended: %q", got)
	}
}

func TestApplyPlatformRulesFacebookUntouched(t *testing.T) {
	got := ApplyPlatformRules("caption", []string{"#coffee"}, "facebook")
	if got != "caption" {
		t.Errorf("facebook content changed: %q", got)
	}
}

func TestCapHashtags(t *testing.T) {
	ten := []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7", "#8", "#9", "#10"}

	if got := CapHashtags(ten, "twitter"); len(got) != 3 {
		t.Errorf("twitter cap = %d, want 3", len(got))
	}
	if got := CapHashtags(ten, "instagram"); len(got) != 8 {
		t.Errorf("instagram cap = %d, want 8", len(got))
	}
	if got := CapHashtags(ten[:2], "instagram"); len(got) != 2 {
		t.Errorf("under-limit slice changed: %d", len(got))
	}
}

func TestGenerateInterpolatesCafeName(t *testing.T) {
	g := NewTemplateGenerator()
	out := g.Generate(Request{
		CafeName: "Bean There",
		Topic:    "coffee",
		Platform: "facebook",
		Tone:     "professional",
	})
	if !strings.Contains(out.Text, "Bean There") {
		t.Errorf("cafe name missing from %q", out.Text)
	}
	if len(out.Hashtags) == 0 {
		t.Error("expected default hashtags")
	}
	if out.ImageURL == "" {
		t.Error("expected an image url")
	}
}

func TestGenerateUnknownToneAndTopicFallBack(t *testing.T) {
	g := NewTemplateGenerator()
	out := g.Generate(Request{
		CafeName: "Roast House",
		Topic:    "nonsense",
		Platform: "facebook",
		Tone:     "sarcastic",
	})
	if !strings.Contains(out.Text, "Roast House") {
		t.Errorf("fallback template missing cafe name: %q", out.Text)
	}
}

func TestGenerateAudienceMessage(t *testing.T) {
	g := NewTemplateGenerator()
	out := g.Generate(Request{
		CafeName:       "Roast House",
		Topic:          "default",
		Platform:       "facebook",
		Tone:           "friendly",
		TargetAudience: "students",
	})
	if !strings.Contains(out.Text, "study spot") {
		t.Errorf("audience message missing: %q", out.Text)
	}
}

func TestGenerateTwitterTruncationBeforeHashtags(t *testing.T) {
	g := NewTemplateGenerator()
	out := g.Generate(Request{
		CafeName:         strings.Repeat("x", 250),
		Topic:            "default",
		Platform:         "twitter",
		Tone:             "friendly",
		Hashtags:         []string{"#coffee", "#cafe", "#brew"},
		CampaignTemplate: strings.Repeat("y", 100),
	})
	if n := utf8.RuneCountInString(out.Text); n > TwitterCharLimit {
		t.Errorf("twitter text length %d exceeds limit", n)
	}
	if strings.HasSuffix(out.Text, "#brew") {
		t.Error("hashtags must not be appended to twitter text")
	}
	// the capped selection still travels in metadata
	if len(out.Hashtags) != 3 {
		t.Errorf("hashtag cap = %d, want 3", len(out.Hashtags))
	}
}

func TestBestPostTimes(t *testing.T) {
	if got := BestPostTimes("facebook"); len(got) != 3 {
		t.Errorf("facebook slots = %v", got)
	}
	// unknown platforms fall back to the instagram slots
	if got := BestPostTimes("myspace"); got[0] != "9:00 AM" {
		t.Errorf("fallback slots = %v", got)
	}
}
