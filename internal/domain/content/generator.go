package content

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// TwitterCharLimit is the short-form platform content cap. Content is
// truncated to this limit before any hashtag handling.
const TwitterCharLimit = 240

// Request describes what to generate. Hashtags are pre-selected strings;
// CampaignTemplate is an optional template line from an owning campaign.
type Request struct {
	CafeName         string
	Topic            string
	Platform         string
	Tone             string
	TargetAudience   string
	Hashtags         []string
	CampaignTemplate string
}

// Generated is a produced piece of post content.
type Generated struct {
	Text        string   `json:"text"`
	Hashtags    []string `json:"hashtags"`
	ImageURL    string   `json:"image_url"`
	ContentType string   `json:"content_type"`
	Prompt      string   `json:"prompt"`
}

// Generator produces post content. The production implementation is a
// template interpolator; a real AI backend can be swapped in without
// touching any handler or lifecycle logic.
type Generator interface {
	Generate(req Request) Generated
}

var toneTemplates = map[string]map[string]string{
	"friendly": {
		"default": "Hey coffee lovers! ☕ Start your day right with a visit to %s. We're brewing something special just for you!",
		"special": "🎉 Amazing news! This week only at %s - special offers that'll make your coffee experience even better!",
		"coffee":  "Coffee lovers, meet your new favorite! ☕ Our latest blend at %s is crafted with love and precision.",
		"event":   "🎵 Mark your calendars! Join us this weekend at %s for an evening of great music and exceptional coffee!",
	},
	"professional": {
		"default": "Experience premium coffee craftsmanship at %s. Quality ingredients, expert preparation, exceptional taste.",
		"special": "Limited time offer at %s. Discover our featured selections and seasonal specialties.",
		"coffee":  "Introducing our signature coffee blend at %s. Meticulously sourced and expertly roasted for the perfect cup.",
		"event":   "%s presents an exclusive coffee tasting event. Join fellow coffee enthusiasts for an educational experience.",
	},
	"casual": {
		"default": "Coffee time at %s! Drop by for your daily dose of caffeine and good vibes ☕✨",
		"special": "Weekend vibes at %s! Special treats and coffee combos that'll make your day 🌟",
		"coffee":  "New coffee alert! 🚨 We've got a fresh blend that's absolutely incredible at %s",
		"event":   "Party time at %s! Music, coffee, and good company - what more could you want? 🎉",
	},
	"engaging": {
		"default": "What's your perfect coffee moment? ☕ Share it with us at %s where every cup tells a story!",
		"special": "Coffee lovers, we've got a surprise! 🎁 This week's special at %s is designed just for you!",
		"coffee":  "Ready for a coffee adventure? 🌟 Our new blend at %s is here to take your taste buds on a journey!",
		"event":   "Who's ready for an unforgettable evening? 🎵 Join us at %s for music, coffee, and memories!",
	},
}

var audienceMessages = map[string]string{
	"young-professionals": "\n\nPerfect for your busy lifestyle! ⚡",
	"students":            "\n\nGreat study spot with student-friendly prices! 📚",
	"families":            "\n\nFamily-friendly atmosphere with something for everyone! 👨‍👩‍👧‍👦",
	"remote-workers":      "\n\nFree WiFi and quiet spaces for productive work! 💻",
}

var imageThemes = map[string]string{
	"default": "cafe,coffee,warm",
	"special": "cafe,special,promotion",
	"coffee":  "coffee,beans,brewing",
	"event":   "cafe,music,event,people",
}

// DefaultHashtags are used when the cafe has no usable research yet.
var DefaultHashtags = []string{"#coffee", "#cafe", "#local", "#fresh", "#quality"}

// TemplateGenerator interpolates cafe details into canned templates.
type TemplateGenerator struct {
	rng *rand.Rand
}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *TemplateGenerator) Generate(req Request) Generated {
	tone := req.Tone
	if _, ok := toneTemplates[tone]; !ok {
		tone = "friendly"
	}
	templates := toneTemplates[tone]
	tmpl, ok := templates[req.Topic]
	if !ok {
		tmpl = templates["default"]
	}
	text := fmt.Sprintf(tmpl, req.CafeName)

	if req.CampaignTemplate != "" {
		text += "\n\n" + req.CampaignTemplate
	}
	if msg, ok := audienceMessages[req.TargetAudience]; ok {
		text += msg
	}

	hashtags := req.Hashtags
	if len(hashtags) == 0 {
		hashtags = DefaultHashtags
	}
	hashtags = CapHashtags(hashtags, req.Platform)

	text = ApplyPlatformRules(text, hashtags, req.Platform)

	theme, ok := imageThemes[req.Topic]
	if !ok {
		theme = imageThemes["default"]
	}

	contentType := "image"
	if req.Platform == "instagram" && g.rng.Float64() > 0.7 {
		contentType = "carousel"
	}

	return Generated{
		Text:        text,
		Hashtags:    hashtags,
		ImageURL:    fmt.Sprintf("https://source.unsplash.com/1080x1080/?%s", theme),
		ContentType: contentType,
		Prompt:      fmt.Sprintf("Generate %s %s content for %s", tone, req.Topic, req.Platform),
	}
}

// CapHashtags limits the hashtag count per platform convention: 3 on the
// short-form platform, 8 elsewhere.
func CapHashtags(hashtags []string, platform string) []string {
	limit := 8
	if platform == "twitter" {
		limit = 3
	}
	if len(hashtags) > limit {
		return hashtags[:limit]
	}
	return hashtags
}

// ApplyPlatformRules truncates the text to the platform limit and appends
// hashtags only where the platform conventionally carries them. Truncation
// always happens before any append, and the short-form platform never gets
// hashtags appended.
func ApplyPlatformRules(text string, hashtags []string, platform string) string {
	switch platform {
	case "twitter":
		// limit counts characters, not bytes; slicing the string could
		// split a rune in the emoji-heavy templates
		if r := []rune(text); len(r) > TwitterCharLimit {
			return string(r[:TwitterCharLimit])
		}
		return text
	case "instagram":
		if len(hashtags) > 0 {
			return text + "\n\n" + strings.Join(hashtags, " ")
		}
		return text
	default:
		return text
	}
}

// Suggestions returned alongside generated content. Static advice.
func Suggestions() []string {
	return []string{
		"Consider posting during peak engagement hours",
		"Add a call-to-action to increase interaction",
		"Use location tags for local discovery",
		"Respond to comments within 2 hours for better engagement",
	}
}
