package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// VerifyAuthorization checks that a payment method is live and chargeable
// without moving funds: a zero-value authorization that the adapter voids
// automatically. The returned transaction id refers to the voided
// verification record.
type VerifyAuthorization[M types.InternalPaymentMethod] interface {
	VerifyPaymentMethod(ctx context.Context, method M) (secure.TransactionID, error)
}
