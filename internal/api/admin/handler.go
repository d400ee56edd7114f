package admin

import (
	"net/http"

	"cafe-platform/database"
	"cafe-platform/internal/domain/billing"
	"cafe-platform/internal/domain/cafes"
	"cafe-platform/internal/domain/campaigns"
	"cafe-platform/internal/domain/leads"
	"cafe-platform/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// Dashboard is the operator overview: tenants, revenue, plan spread and
// platform activity.
func Dashboard(c *gin.Context) {
	var totalCafes int64
	database.DB.Model(&cafes.Cafe{}).Count(&totalCafes)

	var subscribedCafes int64
	database.DB.Model(&cafes.Cafe{}).Where("subscription_plan_id IS NOT NULL").Count(&subscribedCafes)

	var totalRevenue float64
	database.DB.Model(&billing.Payment{}).
		Where("status = ?", billing.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	type planCount struct {
		Name  string `json:"name"`
		Count int64  `json:"count"`
	}
	var perPlan []planCount
	database.DB.Model(&cafes.Cafe{}).
		Select("plans.name, count(*) as count").
		Joins("JOIN plans ON plans.id = cafes.subscription_plan_id").
		Group("plans.name").
		Scan(&perPlan)

	var totalPosts int64
	database.DB.Model(&social.Post{}).Count(&totalPosts)

	var activeCampaigns int64
	database.DB.Model(&campaigns.Campaign{}).
		Where("status = ?", campaigns.StatusActive).
		Count(&activeCampaigns)

	var totalLeads int64
	database.DB.Model(&leads.ContactLead{}).Count(&totalLeads)

	c.JSON(http.StatusOK, gin.H{
		"cafes": gin.H{
			"total":      totalCafes,
			"subscribed": subscribedCafes,
			"per_plan":   perPlan,
		},
		"revenue":          totalRevenue,
		"posts":            totalPosts,
		"active_campaigns": activeCampaigns,
		"leads":            totalLeads,
	})
}

// SetCampaignStatus closes out a campaign. Terminal states are reserved
// for this operator action; tenant endpoints can only start and pause.
func SetCampaignStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != campaigns.StatusCompleted && input.Status != campaigns.StatusCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be completed or cancelled"})
		return
	}

	var campaign campaigns.Campaign
	if err := database.DB.First(&campaign, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}

	if !campaigns.CanTransition(campaign.Status, input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign cannot be closed from status " + campaign.Status})
		return
	}

	campaign.Status = input.Status
	if err := database.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Campaign status updated", "campaign": campaign})
}
