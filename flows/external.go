package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// ExternalPayments starts payments that complete outside the gateway
// session: buy-now-pay-later redirects, cash vouchers, prepaid tokens.
// S is constrained to the sealed external sources.
//
// Initiate returns the pending transaction together with the data the
// caller must surface to the customer (redirect URL, voucher code).
// Completion happens out of band; callers poll Status or consume
// webhooks.
type ExternalPayments[S types.ExternalPaymentSource] interface {
	CheckTransaction

	Initiate(ctx context.Context, payment types.Payment[S]) (types.ExternalPayment, error)

	// PaymentData re-fetches the external data for a previously
	// initiated payment, for callers that lost the Initiate response.
	PaymentData(ctx context.Context, id secure.TransactionID) (types.ExternalPaymentData, error)
}
