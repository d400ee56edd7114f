package cafes

import (
	"testing"
	"time"
)

func TestHasActiveSubscription(t *testing.T) {
	now := time.Now()
	planID := uint(1)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	c := Cafe{}
	if c.HasActiveSubscription(now) {
		t.Error("cafe without a plan must be inactive")
	}

	c = Cafe{SubscriptionPlanID: &planID}
	if c.HasActiveSubscription(now) {
		t.Error("plan without a billing date must be inactive")
	}

	c = Cafe{SubscriptionPlanID: &planID, NextBillingDate: &future}
	if !c.HasActiveSubscription(now) {
		t.Error("billing date in the future must be active")
	}

	c = Cafe{SubscriptionPlanID: &planID, NextBillingDate: &past}
	if c.HasActiveSubscription(now) {
		t.Error("lapsed billing date must be inactive")
	}
}
