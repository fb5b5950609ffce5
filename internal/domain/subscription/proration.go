package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Proration is the partial-period billing adjustment for switching plans
// mid-cycle. ProrationAmount is negative when the unused credit exceeds the
// candidate plan's price.
type Proration struct {
	DaysRemaining   int
	UnusedAmount    decimal.Decimal
	NewAmount       decimal.Decimal
	ProrationAmount decimal.Decimal
}

// CalculateProration computes the adjustment for moving from the current
// active subscription to candidatePlan at time now. Pure computation, no
// mutation.
//
// days_remaining is the whole days between now and the current cycle end,
// unused_amount is the current daily rate times days_remaining, and
// proration_amount = candidate price - unused_amount. Lifetime cycles have no
// period end, so the remaining credit is zero.
func CalculateProration(current *Subscription, currentPlan, candidatePlan *Plan, now time.Time) (*Proration, error) {
	if current == nil {
		return nil, fmt.Errorf("current subscription is required")
	}
	if currentPlan == nil || candidatePlan == nil {
		return nil, fmt.Errorf("current and candidate plans are required")
	}
	if current.PlanID() != currentPlan.ID() {
		return nil, fmt.Errorf("subscription plan mismatch")
	}
	if !current.IsActive() {
		return nil, fmt.Errorf("subscription is not active")
	}

	newAmount := candidatePlan.Price().Round(2)

	cycleDays := currentPlan.BillingCycle().CycleDays()
	if cycleDays == 0 {
		// Lifetime cycle: no bounded period, nothing left to credit.
		return &Proration{
			DaysRemaining:   0,
			UnusedAmount:    decimal.Zero,
			NewAmount:       newAmount,
			ProrationAmount: newAmount,
		}, nil
	}

	cycleEnd := current.StartsAt().AddDate(0, 0, cycleDays)
	daysRemaining := 0
	if cycleEnd.After(now) {
		daysRemaining = int(cycleEnd.Sub(now.UTC()) / (24 * time.Hour))
	}

	dailyRate := currentPlan.Price().Div(decimal.NewFromInt(int64(cycleDays)))
	unused := dailyRate.Mul(decimal.NewFromInt(int64(daysRemaining))).Round(2)

	return &Proration{
		DaysRemaining:   daysRemaining,
		UnusedAmount:    unused,
		NewAmount:       newAmount,
		ProrationAmount: newAmount.Sub(unused),
	}, nil
}
