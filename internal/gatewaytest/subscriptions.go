package gatewaytest

import (
	"context"

	"github.com/google/uuid"

	"merchantcore/apperror"
	"merchantcore/secure"
	"merchantcore/types"
)

// Recurring billing on the card adapter. CreateSubscription dedupes on
// the payment's idempotence key like the charge flows.

func newSubscriptionID() secure.SubscriptionID {
	id, err := secure.NewSubscriptionID("sub-" + uuid.New().String())
	if err != nil {
		panic(err)
	}
	return id
}

func (g *CardGateway) CreateSubscription(ctx context.Context, p types.SplitPayment[types.CreditCard], interval types.SubscriptionInterval) (types.Subscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fp := paymentFingerprint(p.Payment, recipientsFingerprint(p.Recipients), interval.String())
	if existing, ok := g.subByKey[p.IdempotenceKey.Value()]; ok {
		sub := g.subs[existing]
		if g.subFingerprints[existing] != fp {
			return types.Subscription{}, apperror.Conflict("idempotence key reused with a different payload")
		}
		return *sub, nil
	}

	sub := types.Subscription{
		ID:         newSubscriptionID(),
		Status:     types.SubscriptionActive,
		Amount:     types.Money{Amount: p.TotalAmount, Currency: p.Currency},
		Interval:   interval,
		Recipients: p.Recipients,
	}
	g.subs[sub.ID.Value()] = &sub
	g.subByKey[p.IdempotenceKey.Value()] = sub.ID.Value()
	g.subFingerprints[sub.ID.Value()] = fp
	return sub, nil
}

func (g *CardGateway) SubscriptionStatus(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sub, ok := g.subs[id.Value()]
	if !ok {
		return types.Subscription{}, apperror.PreconditionFailed("subscription %s not found", id)
	}
	return *sub, nil
}

// CancelSubscription is idempotent: canceling a canceled subscription
// returns the same record.
func (g *CardGateway) CancelSubscription(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error) {
	return g.updateSubscription(id, func(sub *types.Subscription) error {
		sub.Status = types.SubscriptionCanceled
		return nil
	})
}

func (g *CardGateway) PauseSubscription(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error) {
	return g.updateSubscription(id, func(sub *types.Subscription) error {
		if sub.Status == types.SubscriptionPaused {
			return nil
		}
		if sub.Status != types.SubscriptionActive {
			return apperror.PreconditionFailed("only an active subscription can be paused")
		}
		sub.Status = types.SubscriptionPaused
		return nil
	})
}

func (g *CardGateway) ResumeSubscription(ctx context.Context, id secure.SubscriptionID) (types.Subscription, error) {
	return g.updateSubscription(id, func(sub *types.Subscription) error {
		if sub.Status != types.SubscriptionPaused {
			return apperror.PreconditionFailed("only a paused subscription can be resumed")
		}
		sub.Status = types.SubscriptionActive
		return nil
	})
}

func (g *CardGateway) EditSubscriptionAmount(ctx context.Context, id secure.SubscriptionID, amount types.Money) (types.Subscription, error) {
	return g.updateSubscription(id, func(sub *types.Subscription) error {
		if sub.Status == types.SubscriptionCanceled {
			return apperror.PreconditionFailed("subscription is canceled")
		}
		if amount.Currency != sub.Amount.Currency {
			return apperror.PreconditionFailed("subscription currency cannot change")
		}
		if !amount.Amount.IsPositive() {
			return apperror.InvalidInput("subscription amount must be positive")
		}
		sub.Amount = amount
		return nil
	})
}

func (g *CardGateway) EditSubscriptionInterval(ctx context.Context, id secure.SubscriptionID, interval types.SubscriptionInterval) (types.Subscription, error) {
	return g.updateSubscription(id, func(sub *types.Subscription) error {
		if sub.Status == types.SubscriptionCanceled {
			return apperror.PreconditionFailed("subscription is canceled")
		}
		sub.Interval = interval
		return nil
	})
}

func (g *CardGateway) EditSubscriptionRecipients(ctx context.Context, id secure.SubscriptionID, recipients types.Recipients) (types.Subscription, error) {
	return g.updateSubscription(id, func(sub *types.Subscription) error {
		if sub.Status == types.SubscriptionCanceled {
			return apperror.PreconditionFailed("subscription is canceled")
		}
		allocated := recipients.CalculateTotal(sub.Amount.Amount, sub.Amount.Currency)
		if allocated.GreaterThan(sub.Amount.Amount) {
			return apperror.ValidationFailed("recipient allocations exceed the subscription amount")
		}
		sub.Recipients = &recipients
		return nil
	})
}

func (g *CardGateway) updateSubscription(id secure.SubscriptionID, f func(*types.Subscription) error) (types.Subscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sub, ok := g.subs[id.Value()]
	if !ok {
		return types.Subscription{}, apperror.PreconditionFailed("subscription %s not found", id)
	}
	if err := f(sub); err != nil {
		return types.Subscription{}, err
	}
	return *sub, nil
}
