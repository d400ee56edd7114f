package plans

import (
	"net/http"
	"time"

	"cafe-platform/config"
	"cafe-platform/database"
	"cafe-platform/internal/api/tenant"
	"cafe-platform/internal/domain/cafes"
	domain "cafe-platform/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// ListPlans is public so the pricing page can render without a session.
func ListPlans(c *gin.Context) {
	var all []domain.Plan
	if err := database.DB.Order("price asc").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}
	c.JSON(http.StatusOK, all)
}

func CreatePlan(c *gin.Context) {
	var input struct {
		Name                string   `json:"name" binding:"required"`
		Price               float64  `json:"price" binding:"required"`
		Features            []string `json:"features"`
		SocialPostFrequency int      `json:"social_post_frequency"`
		IncludesWebStore    bool     `json:"includes_web_store"`
		Description         string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := domain.Plan{
		Name:                input.Name,
		Price:               input.Price,
		Features:            input.Features,
		SocialPostFrequency: input.SocialPostFrequency,
		IncludesWebStore:    input.IncludesWebStore,
		Description:         input.Description,
	}
	if err := database.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// Subscribe stamps the subscription window on the caller's cafe and,
// for web-store plans, mints the store URL once. Re-subscribing never
// rewrites an existing store URL.
func Subscribe(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		PlanID uint `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plan domain.Plan
	if err := database.DB.First(&plan, input.PlanID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	ApplySubscription(&cafe, &plan, time.Now())

	if err := database.DB.Save(&cafe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribed successfully",
		"cafe":    cafe,
		"plan":    plan,
	})
}

// ApplySubscription mutates the cafe in place; callers persist it,
// some inside a larger transaction.
func ApplySubscription(cafe *cafes.Cafe, plan *domain.Plan, now time.Time) {
	next := now.AddDate(0, 1, 0)
	cafe.SubscriptionPlanID = &plan.ID
	cafe.SubscriptionDate = &now
	cafe.NextBillingDate = &next

	if plan.IncludesWebStore && cafe.WebStoreURL == "" {
		cafe.WebStoreURL = cafes.WebStoreURL(config.WEB_STORE_BASE_URL, cafe.Name)
	}
}
