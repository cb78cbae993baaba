package types

import (
	"github.com/shopspring/decimal"

	"merchantcore/apperror"
	"merchantcore/inputs"
	"merchantcore/secure"
)

// PaymentShape is the sealed pair of payment forms a gateway declares:
// a plain Payment or a SplitPayment with recipients.
type PaymentShape interface {
	isPaymentShape()
}

// Payment is one charge of a single payment method: the amounts, the
// currency, and the idempotence key deduplicating retries.
//
// TotalAmount is what the customer pays; BaseAmount is the platform's
// own share of it. Both are non-negative and BaseAmount never exceeds
// TotalAmount.
type Payment[M PaymentMethod] struct {
	Method         M
	Currency       Currency
	TotalAmount    decimal.Decimal
	BaseAmount     decimal.Decimal
	IdempotenceKey secure.IdempotenceKey
}

// NewPayment validates the amounts and key against the invariants above.
func NewPayment[M PaymentMethod](method M, in inputs.Payment) (Payment[M], error) {
	cur, err := NewCurrency(in.Currency)
	if err != nil {
		return Payment[M]{}, err
	}
	if in.TotalAmount.IsNegative() || in.BaseAmount.IsNegative() {
		return Payment[M]{}, apperror.InvalidInput("payment amounts must not be negative")
	}
	if in.BaseAmount.GreaterThan(in.TotalAmount) {
		return Payment[M]{}, apperror.ValidationFailed("base amount must not exceed total amount")
	}
	key, err := secure.NewIdempotenceKey(in.IdempotenceKey)
	if err != nil {
		return Payment[M]{}, err
	}
	return Payment[M]{
		Method:         method,
		Currency:       cur,
		TotalAmount:    in.TotalAmount,
		BaseAmount:     in.BaseAmount,
		IdempotenceKey: key,
	}, nil
}

// Total returns the total as Money.
func (p Payment[M]) Total() Money {
	return Money{Amount: p.TotalAmount, Currency: p.Currency}
}

func (Payment[M]) isPaymentShape() {}

// SplitPayment is a Payment optionally distributed across recipients.
// When recipients are present, the base amount plus all expanded
// allocations must not exceed the total.
type SplitPayment[M PaymentMethod] struct {
	Payment[M]
	Recipients *Recipients
}

// NewSplitPayment validates the payment and, when rec is non-empty, the
// distribution rule.
func NewSplitPayment[M PaymentMethod](method M, in inputs.Payment, rec inputs.Recipients) (SplitPayment[M], error) {
	payment, err := NewPayment(method, in)
	if err != nil {
		return SplitPayment[M]{}, err
	}
	sp := SplitPayment[M]{Payment: payment}
	if len(rec) > 0 {
		recipients, err := NewRecipients(rec)
		if err != nil {
			return SplitPayment[M]{}, err
		}
		allocated := recipients.CalculateTotal(payment.TotalAmount, payment.Currency)
		if payment.BaseAmount.Add(allocated).GreaterThan(payment.TotalAmount) {
			return SplitPayment[M]{}, apperror.ValidationFailed(
				"base amount plus recipient allocations exceed the total amount")
		}
		sp.Recipients = &recipients
	}
	return sp, nil
}

func (SplitPayment[M]) isPaymentShape() {}
