package billing

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"cafe-platform/database"
	"cafe-platform/internal/api/plans"
	"cafe-platform/internal/api/tenant"
	domain "cafe-platform/internal/domain/billing"
	planmodel "cafe-platform/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func paymentReference(now time.Time) string {
	return fmt.Sprintf("PAY-%d-%06d", now.UnixMilli(), rand.Intn(1000000))
}

// ProcessPayment records a completed payment and applies the plan to the
// cafe in the same transaction. There is no external gateway; the amount
// always comes from the plan, never from the client.
func ProcessPayment(c *gin.Context) {
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

	var plan planmodel.Plan
	if err := database.DB.First(&plan, input.PlanID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	now := time.Now()
	payment := domain.Payment{
		CafeID:    cafe.ID,
		PlanID:    &plan.ID,
		Amount:    plan.Price,
		PaymentID: paymentReference(now),
		Status:    domain.StatusCompleted,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		plans.ApplySubscription(&cafe, &plan, now)
		return tx.Save(&cafe).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment processed successfully",
		"payment": payment,
		"cafe":    cafe,
	})
}

// PaymentHistory lists the cafe's payments, newest first.
func PaymentHistory(c *gin.Context) {
	cafe, ok := tenant.Current(c)
	if !ok {
		return
	}

	var history []domain.Payment
	if err := database.DB.Preload("Plan").
		Where("cafe_id = ?", cafe.ID).
		Order("created_at desc").
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
