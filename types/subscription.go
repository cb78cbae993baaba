package types

import (
	"fmt"

	"merchantcore/apperror"
	"merchantcore/secure"
)

// IntervalUnit is the closed set of billing-cycle units.
type IntervalUnit string

const (
	IntervalDay   IntervalUnit = "day"
	IntervalWeek  IntervalUnit = "week"
	IntervalMonth IntervalUnit = "month"
	IntervalYear  IntervalUnit = "year"
)

// SubscriptionInterval is a billing cycle: every N units, N in 1..=365.
type SubscriptionInterval struct {
	Unit  IntervalUnit
	Every int
}

func NewSubscriptionInterval(unit IntervalUnit, every int) (SubscriptionInterval, error) {
	switch unit {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
	default:
		return SubscriptionInterval{}, apperror.InvalidInput("interval unit must be day, week, month or year")
	}
	if every < 1 || every > 365 {
		return SubscriptionInterval{}, apperror.InvalidInput("interval multiplier must be between 1 and 365")
	}
	return SubscriptionInterval{Unit: unit, Every: every}, nil
}

func (i SubscriptionInterval) String() string {
	return fmt.Sprintf("every %d %s(s)", i.Every, i.Unit)
}

// Subscription is the gateway's record of a recurring payment
// agreement. Callers treat it as an immutable snapshot.
type Subscription struct {
	ID         secure.SubscriptionID
	Status     SubscriptionStatus
	Amount     Money
	Interval   SubscriptionInterval
	Recipients *Recipients
}
