package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// CancelPayments voids a transaction before settlement, releasing
// reserved funds without charges or fees. Use refund for settled
// transactions.
type CancelPayments interface {
	CheckTransaction

	// Void cancels a pending authorization or a recent unsettled charge.
	// Idempotent: voiding an already voided transaction returns the same
	// voided record rather than failing.
	Void(ctx context.Context, id secure.TransactionID) (types.Transaction, error)
}
