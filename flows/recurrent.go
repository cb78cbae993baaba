package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// RecurrentPayments creates and manages billing subscriptions: the
// customer is charged the payment's total every interval until the
// subscription is canceled.
//
// CreateSubscription is idempotent under an equal idempotence key.
// CancelSubscription stops future billing; whether it takes effect
// immediately or at period end is up to the adapter.
type RecurrentPayments[P types.PaymentShape] interface {
	CreateSubscription(ctx context.Context, payment P, interval types.SubscriptionInterval) (types.Subscription, error)

	SubscriptionStatus(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error)

	CancelSubscription(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error)
}

// PauseSubscriptions suspends billing without canceling. Resume picks
// the schedule back up from the current period.
type PauseSubscriptions[P types.PaymentShape] interface {
	RecurrentPayments[P]

	PauseSubscription(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error)
	ResumeSubscription(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error)
}

// EditSubscriptionAmount changes the per-cycle amount of a running
// subscription. The currency cannot change.
type EditSubscriptionAmount[P types.PaymentShape] interface {
	RecurrentPayments[P]

	EditSubscriptionAmount(ctx context.Context, id secure.SubscriptionID, amount types.Money) (types.Subscription, error)
}

// EditSubscriptionInterval changes the billing cycle of a running
// subscription, effective from the next period.
type EditSubscriptionInterval[P types.PaymentShape] interface {
	RecurrentPayments[P]

	EditSubscriptionInterval(ctx context.Context, id secure.SubscriptionID, interval types.SubscriptionInterval) (types.Subscription, error)
}

// EditSubscriptionRecipients changes how future cycles are distributed
// across recipients. Only adapters whose payment shape is SplitPayment
// can carry it, which the embedded instantiation enforces.
type EditSubscriptionRecipients[M types.PaymentMethod] interface {
	RecurrentPayments[types.SplitPayment[M]]

	EditSubscriptionRecipients(ctx context.Context, id secure.SubscriptionID, recipients types.Recipients) (types.Subscription, error)
}
