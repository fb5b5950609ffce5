package valueobjects

// SubscriptionStatus represents the lifecycle state of a subscription.
// A subscription is created active and can only transition to cancelled.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
)

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusCancelled: true,
}

// String returns the string representation.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is a known value.
func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

// CanTransitionTo reports whether a transition to the target status is allowed.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	if s == target {
		return true
	}
	return s == StatusActive && target == StatusCancelled
}
