package middleware

import (
	"net/http"
	"time"

	"cafe-platform/database"
	"cafe-platform/internal/domain/cafes"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription blocks cafes whose billing period has lapsed.
// Used only for plan-gated features such as bulk scheduling.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var cafe cafes.Cafe
		if err := database.DB.Where("user_id = ?", userID).First(&cafe).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Cafe profile not found"})
			return
		}

		if cafe.SubscriptionPlanID == nil || cafe.NextBillingDate == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Subscription required"})
			return
		}

		if time.Now().After(*cafe.NextBillingDate) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "Your subscription has expired"})
			return
		}

		c.Next()
	}
}
