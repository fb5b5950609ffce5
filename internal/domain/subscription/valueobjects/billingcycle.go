package valueobjects

import "fmt"

// BillingCycle represents the billing period of a plan.
type BillingCycle string

const (
	BillingCycleMonthly  BillingCycle = "monthly"
	BillingCycleYearly   BillingCycle = "yearly"
	BillingCycleLifetime BillingCycle = "lifetime"
)

var validBillingCycles = map[BillingCycle]bool{
	BillingCycleMonthly:  true,
	BillingCycleYearly:   true,
	BillingCycleLifetime: true,
}

// ParseBillingCycle parses a billing cycle string.
func ParseBillingCycle(s string) (BillingCycle, error) {
	cycle := BillingCycle(s)
	if !validBillingCycles[cycle] {
		return "", fmt.Errorf("invalid billing cycle: %s", s)
	}
	return cycle, nil
}

// IsValid reports whether the billing cycle is a known value.
func (c BillingCycle) IsValid() bool {
	return validBillingCycles[c]
}

// String returns the string representation.
func (c BillingCycle) String() string {
	return string(c)
}

// CycleDays returns the length of one billing period in whole days.
// Lifetime cycles have no period and return 0.
func (c BillingCycle) CycleDays() int {
	switch c {
	case BillingCycleMonthly:
		return 30
	case BillingCycleYearly:
		return 365
	case BillingCycleLifetime:
		return 0
	default:
		return 0
	}
}
