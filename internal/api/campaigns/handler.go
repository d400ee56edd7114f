package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cafe-platform/database"
	"cafe-platform/internal/api/tenant"
	domain "cafe-platform/internal/domain/campaigns"
	"cafe-platform/internal/domain/content"
	"cafe-platform/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var generator content.Generator = content.NewTemplateGenerator()

const webhookTimeout = 5 * time.Second

func findCampaign(c *gin.Context, cafeID uint) (domain.Campaign, bool) {
	var campaign domain.Campaign
	if err := database.DB.Where("id = ? AND cafe_id = ?", c.Param("id"), cafeID).First(&campaign).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return domain.Campaign{}, false
	}
	return campaign, true
}

func ListCampaigns(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	q := database.DB.Where("cafe_id = ?", cafe.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if ctype := c.Query("type"); ctype != "" {
		q = q.Where("type = ?", ctype)
	}

	var all []domain.Campaign
	if err := q.Order("created_at desc").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
		return
	}
	c.JSON(http.StatusOK, all)
}

func GetCampaign(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}
	campaign, ok := findCampaign(c, cafe.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaign":    campaign,
		"performance": domain.ComputePerformance(campaign.Metrics),
	})
}

func CreateCampaign(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Name           string                `json:"name" binding:"required"`
		Type           string                `json:"type" binding:"required"`
		Platforms      []string              `json:"platforms"`
		TargetAudience domain.TargetAudience `json:"target_audience"`
		Budget         domain.Budget         `json:"budget"`
		Schedule       domain.Schedule       `json:"schedule"`
		Content        domain.Content        `json:"content"`
		Automation     domain.Automation     `json:"automation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign type"})
		return
	}

	campaign := domain.Campaign{
		CafeID:         cafe.ID,
		Name:           input.Name,
		Type:           input.Type,
		Status:         domain.StatusDraft,
		Platforms:      input.Platforms,
		TargetAudience: input.TargetAudience,
		Budget:         input.Budget,
		Schedule:       input.Schedule,
		Content:        input.Content,
		Automation:     input.Automation,
	}
	if err := database.DB.Create(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign edits campaign settings. Status and metrics are not
// touchable here; those go through the dedicated endpoints.
func UpdateCampaign(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}
	campaign, ok := findCampaign(c, cafe.ID)
	if !ok {
		return
	}

	var input struct {
		Name           *string                `json:"name"`
		Platforms      []string               `json:"platforms"`
		TargetAudience *domain.TargetAudience `json:"target_audience"`
		Budget         *domain.Budget         `json:"budget"`
		Schedule       *domain.Schedule       `json:"schedule"`
		Content        *domain.Content        `json:"content"`
		Automation     *domain.Automation     `json:"automation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Platforms != nil {
		campaign.Platforms = input.Platforms
	}
	if input.TargetAudience != nil {
		campaign.TargetAudience = *input.TargetAudience
	}
	if input.Budget != nil {
		campaign.Budget = *input.Budget
	}
	if input.Schedule != nil {
		campaign.Schedule = *input.Schedule
	}
	if input.Content != nil {
		campaign.Content = *input.Content
	}
	if input.Automation != nil {
		campaign.Automation = *input.Automation
	}

	if err := database.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func DeleteCampaign(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND cafe_id = ?", c.Param("id"), cafe.ID).Delete(&domain.Campaign{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

// notifyAutomation fires the campaign's automation webhook without
// blocking the response. Failures are logged and swallowed; campaign
// state never depends on the webhook outcome.
func notifyAutomation(campaign domain.Campaign, event string) {
	if campaign.Automation.WebhookURL == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
		defer cancel()

		payload, _ := json.Marshal(gin.H{
			"event":       event,
			"campaign_id": campaign.ID,
			"cafe_id":     campaign.CafeID,
			"name":        campaign.Name,
			"type":        campaign.Type,
			"timestamp":   time.Now().UTC(),
		})
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, campaign.Automation.WebhookURL, bytes.NewReader(payload))
		if err != nil {
			logger.L.Warn("automation webhook request build failed",
				zap.Uint("campaign_id", campaign.ID), zap.Error(err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			logger.L.Warn("automation webhook delivery failed",
				zap.Uint("campaign_id", campaign.ID),
				zap.String("event", event),
				zap.Error(err))
			return
		}
		resp.Body.Close()
	}()
}

// StartCampaign activates a draft or paused campaign, stamping the
// schedule start on first activation.
func StartCampaign(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}
	campaign, ok := findCampaign(c, cafe.ID)
	if !ok {
		return
	}

	if !domain.CanTransition(campaign.Status, domain.StatusActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign cannot be started from status " + campaign.Status})
		return
	}

	campaign.Status = domain.StatusActive
	if campaign.Schedule.StartDate == nil {
		now := time.Now()
		campaign.Schedule.StartDate = &now
	}

	if err := database.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start campaign"})
		return
	}

	notifyAutomation(campaign, "campaign_started")

	c.JSON(http.StatusOK, gin.H{"message": "Campaign started", "campaign": campaign})
}

func PauseCampaign(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}
	campaign, ok := findCampaign(c, cafe.ID)
	if !ok {
		return
	}

	if campaign.Status != domain.StatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only active campaigns can be paused"})
		return
	}

	campaign.Status = domain.StatusPaused
	if err := database.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pause campaign"})
		return
	}

	notifyAutomation(campaign, "campaign_paused")

	c.JSON(http.StatusOK, gin.H{"message": "Campaign paused", "campaign": campaign})
}

// RecordMetrics applies additive increments to the campaign counters.
func RecordMetrics(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}
	campaign, ok := findCampaign(c, cafe.ID)
	if !ok {
		return
	}

	var delta domain.MetricsDelta
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if delta.Impressions < 0 || delta.Clicks < 0 || delta.Engagements < 0 || delta.Conversions < 0 || delta.Spend < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Metric increments must be non-negative"})
		return
	}

	rows, err := domain.IncrementMetrics(database.DB, campaign.ID, cafe.ID, delta)
	if err != nil || rows == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record metrics"})
		return
	}

	// re-read so the response carries the incremented counters
	if err := database.DB.First(&campaign, campaign.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated metrics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaign":    campaign,
		"performance": domain.ComputePerformance(campaign.Metrics),
	})
}

// GenerateCampaignContent produces draft posts text from the campaign's
// own templates and hashtags, one piece per target platform.
func GenerateCampaignContent(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}
	campaign, ok := findCampaign(c, cafe.ID)
	if !ok {
		return
	}

	if !campaign.Automation.ContentGeneration {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content generation is disabled for this campaign"})
		return
	}

	platforms := campaign.Platforms
	if len(platforms) == 0 {
		platforms = []string{"instagram"}
	}

	var template string
	if len(campaign.Content.ContentTemplates) > 0 {
		template = campaign.Content.ContentTemplates[0]
	}

	pieces := make([]content.Generated, 0, len(platforms))
	for _, platform := range platforms {
		pieces = append(pieces, generator.Generate(content.Request{
			CafeName:         cafe.Name,
			Topic:            "default",
			Platform:         platform,
			Tone:             "engaging",
			TargetAudience:   campaign.TargetAudience.Demographics,
			Hashtags:         campaign.Content.Hashtags,
			CampaignTemplate: template,
		}))
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign_id": campaign.ID,
		"content":     pieces,
	})
}
