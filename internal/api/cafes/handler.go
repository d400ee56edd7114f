package cafes

import (
	"net/http"

	"cafe-platform/database"
	"cafe-platform/internal/api/tenant"
	domain "cafe-platform/internal/domain/cafes"

	"github.com/gin-gonic/gin"
)

// GetMyCafe returns the caller's cafe profile with its plan preloaded.
func GetMyCafe(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	if cafe.SubscriptionPlanID != nil {
		database.DB.Preload("SubscriptionPlan").First(&cafe, cafe.ID)
	}
	c.JSON(http.StatusOK, cafe)
}

// UpdateMyCafe applies a partial update. Empty strings mean "leave as is".
func UpdateMyCafe(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var input struct {
		Name        string               `json:"name"`
		Email       string               `json:"email"`
		Phone       string               `json:"phone"`
		Location    string               `json:"location"`
		SocialMedia domain.SocialHandles `json:"social_media"`
		WebsiteURL  string               `json:"website_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		cafe.Name = input.Name
	}
	if input.Email != "" {
		cafe.Email = input.Email
	}
	if input.Phone != "" {
		cafe.Phone = input.Phone
	}
	if input.Location != "" {
		cafe.Location = input.Location
	}
	if input.WebsiteURL != "" {
		cafe.WebsiteURL = input.WebsiteURL
	}
	if input.SocialMedia.Instagram != "" {
		cafe.SocialMedia.Instagram = input.SocialMedia.Instagram
	}
	if input.SocialMedia.Facebook != "" {
		cafe.SocialMedia.Facebook = input.SocialMedia.Facebook
	}
	if input.SocialMedia.Twitter != "" {
		cafe.SocialMedia.Twitter = input.SocialMedia.Twitter
	}

	if err := database.DB.Save(&cafe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cafe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cafe updated successfully", "cafe": cafe})
}

// ListCafes is the operator view of every tenant.
func ListCafes(c *gin.Context) {
	var all []domain.Cafe
	if err := database.DB.Preload("SubscriptionPlan").Order("created_at desc").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
		return
	}
	c.JSON(http.StatusOK, all)
}
