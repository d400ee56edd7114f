package billing

import (
	"time"

	"cafe-platform/internal/domain/cafes"
	"cafe-platform/internal/domain/plans"
)

const StatusCompleted = "completed"

// Payment is immutable after creation. The mock processor always records
// completed payments; a real gateway integration would add pending/failed.
type Payment struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	CafeID uint       `gorm:"not null;index" json:"cafe_id"`
	Cafe   cafes.Cafe `json:"-"`

	PlanID *uint       `json:"plan_id"`
	Plan   *plans.Plan `json:"plan,omitempty"`

	Amount    float64 `gorm:"not null" json:"amount"`
	PaymentID string  `gorm:"not null;uniqueIndex:idx_payments_payment_id" json:"payment_id"`
	Status    string  `gorm:"type:varchar(20);not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
