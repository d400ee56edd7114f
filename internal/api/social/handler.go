package social

import (
	"net/http"
	"time"

	"cafe-platform/database"
	"cafe-platform/internal/api/tenant"
	"cafe-platform/internal/domain/content"
	"cafe-platform/internal/domain/hashtags"
	domain "cafe-platform/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// Swappable seams for the template generator and the placeholder
// engagement numbers. Tests install deterministic doubles here.
var (
	generator content.Generator           = content.NewTemplateGenerator()
	estimator content.EngagementEstimator = content.NewRandomEstimator()
)

// researchedHashtags pulls the cafe's best-scoring researched hashtags
// for a platform, falling back to the stock set.
func researchedHashtags(cafeID uint, platform string) []string {
	var rows []hashtags.Research
	database.DB.Where("cafe_id = ? AND platform = ?", cafeID, platform).
		Order("metric_popularity desc").
		Limit(5).
		Find(&rows)

	if len(rows) == 0 {
		return content.DefaultHashtags
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Hashtag)
	}
	return out
}

// ListPosts returns the cafe's posts, optionally filtered by status and
// platform.
func ListPosts(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	q := database.DB.Where("cafe_id = ?", cafe.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if platform := c.Query("platform"); platform != "" {
		q = q.Where("platform = ?", platform)
	}

	var posts []domain.Post
	if err := q.Order("created_at desc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost records a manually authored post. Posts with content start
// in ready state; empty drafts start pending.
func CreatePost(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Platform    string   `json:"platform" binding:"required"`
		Content     string   `json:"content"`
		ContentType string   `json:"content_type"`
		ImageURL    string   `json:"image_url"`
		Hashtags    []string `json:"hashtags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidPlatform(input.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
		return
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "image"
	}
	status := domain.StatusPending
	if input.Content != "" {
		status = domain.StatusReady
	}

	post := domain.Post{
		CafeID:      cafe.ID,
		Platform:    input.Platform,
		ContentType: contentType,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Status:      status,
		Metadata:    domain.PostMetadata{Hashtags: input.Hashtags},
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GenerateContent produces one post from the tone templates and stores it
// in ready state, awaiting scheduling.
func GenerateContent(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Platform string `json:"platform" binding:"required"`
		Topic    string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidPlatform(input.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
		return
	}
	if input.Topic == "" {
		input.Topic = "default"
	}

	gen := generator.Generate(content.Request{
		CafeName: cafe.Name,
		Topic:    input.Topic,
		Platform: input.Platform,
		Tone:     "friendly",
		Hashtags: researchedHashtags(cafe.ID, input.Platform),
	})

	now := time.Now()
	post := domain.Post{
		CafeID:      cafe.ID,
		Platform:    input.Platform,
		ContentType: gen.ContentType,
		Content:     gen.Text,
		ImageURL:    gen.ImageURL,
		Status:      domain.StatusReady,
		Metadata: domain.PostMetadata{
			Hashtags:    gen.Hashtags,
			Topic:       input.Topic,
			AIPrompt:    gen.Prompt,
			GeneratedAt: &now,
		},
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"post":        post,
		"suggestions": content.Suggestions(),
	})
}

// GenerateAdvancedContent is the tone/audience/campaign-aware variant. It
// also returns an engagement prediction for the draft.
func GenerateAdvancedContent(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Platform         string   `json:"platform" binding:"required"`
		Topic            string   `json:"topic"`
		Tone             string   `json:"tone"`
		TargetAudience   string   `json:"target_audience"`
		Hashtags         []string `json:"hashtags"`
		CampaignTemplate string   `json:"campaign_template"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidPlatform(input.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
		return
	}
	if input.Topic == "" {
		input.Topic = "default"
	}

	selected := input.Hashtags
	if len(selected) == 0 {
		selected = researchedHashtags(cafe.ID, input.Platform)
	}

	gen := generator.Generate(content.Request{
		CafeName:         cafe.Name,
		Topic:            input.Topic,
		Platform:         input.Platform,
		Tone:             input.Tone,
		TargetAudience:   input.TargetAudience,
		Hashtags:         selected,
		CampaignTemplate: input.CampaignTemplate,
	})

	now := time.Now()
	post := domain.Post{
		CafeID:      cafe.ID,
		Platform:    input.Platform,
		ContentType: gen.ContentType,
		Content:     gen.Text,
		ImageURL:    gen.ImageURL,
		Status:      domain.StatusReady,
		Metadata: domain.PostMetadata{
			Hashtags:    gen.Hashtags,
			Topic:       input.Topic,
			Tone:        input.Tone,
			AIPrompt:    gen.Prompt,
			GeneratedAt: &now,
		},
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"post":                  post,
		"engagement_prediction": estimator.PredictPost(input.Platform),
		"suggestions":           content.Suggestions(),
	})
}

// SchedulePost moves one ready post to scheduled at the given time.
func SchedulePost(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		PostID        uint      `json:"post_id" binding:"required"`
		ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post domain.Post
	if err := database.DB.Where("id = ? AND cafe_id = ?", input.PostID, cafe.ID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !domain.CanTransition(post.Status, domain.StatusScheduled) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only ready posts can be scheduled"})
		return
	}

	post.Status = domain.StatusScheduled
	post.ScheduledDate = &input.ScheduledDate
	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post scheduled successfully", "post": post})
}

// BulkSlot is one expanded day/platform/time cell of a bulk schedule.
type BulkSlot struct {
	Platform string
	At       time.Time
}

// ExpandBulkSchedule expands days x platforms x slots into concrete
// scheduling times. Slots are clock strings like "09:00".
func ExpandBulkSchedule(start time.Time, days int, platforms []string, slots []string) []BulkSlot {
	if len(slots) == 0 {
		slots = []string{"09:00"}
	}
	var out []BulkSlot
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		for _, platform := range platforms {
			for _, slot := range slots {
				at := day
				if t, err := time.Parse("15:04", slot); err == nil {
					at = time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
				}
				out = append(out, BulkSlot{Platform: platform, At: at})
			}
		}
	}
	return out
}

// BulkSchedule generates and schedules a batch of posts in one call.
// Plan-gated: routes wrap this with the active-subscription check.
func BulkSchedule(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		StartDate time.Time `json:"start_date" binding:"required"`
		EndDate   time.Time `json:"end_date" binding:"required"`
		Platforms []string  `json:"platforms" binding:"required"`
		TimeSlots []string  `json:"time_slots"`
		Topic     string    `json:"topic"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// inclusive day count: start=D, end=D+2 schedules three days
	days := int(input.EndDate.Sub(input.StartDate).Hours()/24) + 1
	if days < 1 || days > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date range must cover between 1 and 31 days"})
		return
	}
	for _, p := range input.Platforms {
		if !domain.ValidPlatform(p) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform: " + p})
			return
		}
	}
	if input.Topic == "" {
		input.Topic = "default"
	}

	created := make([]domain.Post, 0)
	now := time.Now()
	for _, slot := range ExpandBulkSchedule(input.StartDate, days, input.Platforms, input.TimeSlots) {
		gen := generator.Generate(content.Request{
			CafeName: cafe.Name,
			Topic:    input.Topic,
			Platform: slot.Platform,
			Tone:     "friendly",
			Hashtags: researchedHashtags(cafe.ID, slot.Platform),
		})

		at := slot.At
		post := domain.Post{
			CafeID:        cafe.ID,
			Platform:      slot.Platform,
			ContentType:   gen.ContentType,
			Content:       gen.Text,
			ImageURL:      gen.ImageURL,
			ScheduledDate: &at,
			Status:        domain.StatusScheduled,
			Metadata: domain.PostMetadata{
				Hashtags:      gen.Hashtags,
				Topic:         input.Topic,
				GeneratedAt:   &now,
				BulkScheduled: true,
			},
		}
		if err := database.DB.Create(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create scheduled posts"})
			return
		}
		created = append(created, post)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bulk schedule created",
		"count":   len(created),
		"posts":   created,
	})
}

// PostAnalytics summarizes the cafe's posts by status and platform, with
// placeholder engagement figures for published posts.
func PostAnalytics(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var posts []domain.Post
	if err := database.DB.Where("cafe_id = ?", cafe.ID).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	byStatus := map[string]int{}
	byPlatform := map[string]int{}
	type engagement struct {
		Likes    int     `json:"likes"`
		Comments int     `json:"comments"`
		Shares   int     `json:"shares"`
		Rate     float64 `json:"engagement_rate"`
	}
	perPlatform := map[string]*engagement{}

	for _, p := range posts {
		byStatus[p.Status]++
		byPlatform[p.Platform]++
		if p.Status == domain.StatusPosted {
			likes, comments, shares, rate := estimator.PostEngagement(p.Platform)
			e, ok := perPlatform[p.Platform]
			if !ok {
				e = &engagement{}
				perPlatform[p.Platform] = e
			}
			e.Likes += likes
			e.Comments += comments
			e.Shares += shares
			e.Rate = rate
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_posts": len(posts),
		"by_status":   byStatus,
		"by_platform": byPlatform,
		"engagement":  perPlatform,
		"best_times": gin.H{
			"instagram": content.BestPostTimes("instagram"),
			"facebook":  content.BestPostTimes("facebook"),
			"twitter":   content.BestPostTimes("twitter"),
		},
	})
}
