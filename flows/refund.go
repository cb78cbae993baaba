package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// RefundPayments returns captured funds to the customer.
//
// S declares the refund scope, parallel to capture: types.TotalRefund
// fixes a full refund with the original distribution, while
// types.PartialRefund permits a partial amount and redistribution.
//
// The adapter enforces that the cumulative refunded amount never
// exceeds the captured amount and that the currency matches the
// original; the core keeps no refund ledger.
type RefundPayments[S types.RefundScope] interface {
	CheckTransaction

	Refund(ctx context.Context, id secure.TransactionID, scope S) (types.Transaction, error)
}
