package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// ReversePayment unwinds a transaction through the network's reversal
// rails rather than a standalone refund. Unlike Void it applies to
// captured transactions as well, and unlike Refund it carries a
// network-level reason code.
//
// A nil reason reverses without a stated cause; adapters that require
// one return an unsupported error.
type ReversePayment interface {
	CheckTransaction

	Reverse(ctx context.Context, id secure.TransactionID, reason *types.ReversalReason) (types.Transaction, error)
}
