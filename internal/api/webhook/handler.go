package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"cafe-platform/config"
	"cafe-platform/database"
	"cafe-platform/internal/domain/cafes"
	"cafe-platform/internal/domain/content"
	domain "cafe-platform/internal/domain/social"
	"cafe-platform/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var generator content.Generator = content.NewTemplateGenerator()

// Sign computes the hex HMAC-SHA256 of a payload.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a received signature against the payload in
// constant time.
func VerifySignature(secret string, body []byte, signature string) bool {
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

type event struct {
	Event  string `json:"event"`
	CafeID uint   `json:"cafe_id"`
	PostID uint   `json:"post_id"`

	// schedule_post / generate_content
	Platform      string     `json:"platform"`
	Content       string     `json:"content"`
	Topic         string     `json:"topic"`
	ScheduledDate *time.Time `json:"scheduled_date"`

	// post_status
	Status string `json:"status"`
	Error  string `json:"error"`

	// post_engagement
	Engagement struct {
		Likes    int `json:"likes"`
		Comments int `json:"comments"`
		Shares   int `json:"shares"`
	} `json:"engagement"`
}

// Receive is the callback endpoint for the external automation service.
// It is unauthenticated but every request must carry a valid body
// signature; a mismatch writes nothing.
func Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	signature := c.GetHeader("X-Webhook-Signature")
	if signature == "" || !VerifySignature(config.WEBHOOK_SECRET, body, signature) {
		logger.L.Warn("webhook signature mismatch", zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook signature"})
		return
	}

	var ev event
	if err := json.Unmarshal(body, &ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	switch ev.Event {
	case "schedule_post":
		handleSchedulePost(c, ev)
	case "generate_content":
		handleGenerateContent(c, ev)
	case "post_engagement":
		handlePostEngagement(c, ev)
	case "post_status":
		handlePostStatus(c, ev)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event: " + ev.Event})
	}
}

func findCafe(c *gin.Context, cafeID uint) (cafes.Cafe, bool) {
	var cafe cafes.Cafe
	if err := database.DB.First(&cafe, cafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return cafes.Cafe{}, false
	}
	return cafe, true
}

func handleSchedulePost(c *gin.Context, ev event) {
	cafe, ok := findCafe(c, ev.CafeID)
	if !ok {
		return
	}
	if !domain.ValidPlatform(ev.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
		return
	}
	if ev.ScheduledDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_date is required"})
		return
	}

	post := domain.Post{
		CafeID:        cafe.ID,
		Platform:      ev.Platform,
		ContentType:   "image",
		Content:       ev.Content,
		ScheduledDate: ev.ScheduledDate,
		Status:        domain.StatusScheduled,
		Metadata:      domain.PostMetadata{WebhookCreated: true},
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post scheduled", "post": post})
}

func handleGenerateContent(c *gin.Context, ev event) {
	cafe, ok := findCafe(c, ev.CafeID)
	if !ok {
		return
	}
	if !domain.ValidPlatform(ev.Platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform"})
		return
	}
	topic := ev.Topic
	if topic == "" {
		topic = "default"
	}

	gen := generator.Generate(content.Request{
		CafeName: cafe.Name,
		Topic:    topic,
		Platform: ev.Platform,
		Tone:     "friendly",
		Hashtags: content.DefaultHashtags,
	})

	now := time.Now()
	post := domain.Post{
		CafeID:      cafe.ID,
		Platform:    ev.Platform,
		ContentType: gen.ContentType,
		Content:     gen.Text,
		ImageURL:    gen.ImageURL,
		Status:      domain.StatusReady,
		Metadata: domain.PostMetadata{
			Hashtags:       gen.Hashtags,
			Topic:          topic,
			AIPrompt:       gen.Prompt,
			GeneratedAt:    &now,
			WebhookCreated: true,
		},
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Content generated", "post": post})
}

func handlePostEngagement(c *gin.Context, ev event) {
	var post domain.Post
	if err := database.DB.Where("id = ? AND cafe_id = ?", ev.PostID, ev.CafeID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	logger.L.Info("post engagement received",
		zap.Uint("post_id", post.ID),
		zap.Int("likes", ev.Engagement.Likes),
		zap.Int("comments", ev.Engagement.Comments),
		zap.Int("shares", ev.Engagement.Shares))

	c.JSON(http.StatusOK, gin.H{"message": "Engagement recorded"})
}

// handlePostStatus is the only code path that moves posts to their
// terminal states.
func handlePostStatus(c *gin.Context, ev event) {
	if ev.Status != domain.StatusPosted && ev.Status != domain.StatusFailed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be posted or failed"})
		return
	}

	var post domain.Post
	if err := database.DB.Where("id = ? AND cafe_id = ?", ev.PostID, ev.CafeID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !domain.CanTransition(post.Status, ev.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post is not in scheduled state"})
		return
	}

	post.Status = ev.Status
	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	if ev.Status == domain.StatusFailed && ev.Error != "" {
		logger.L.Warn("post publish failed",
			zap.Uint("post_id", post.ID), zap.String("reason", ev.Error))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post status updated", "post": post})
}
