package flows

import (
	"context"

	"merchantcore/types"
)

// ChargeOptions carries the optional charge qualifiers: who initiated
// the transaction and the credential-on-file usage marker.
type ChargeOptions struct {
	Initiator       *types.Initiator
	CredentialUsage *types.CredentialUsage
}

// ImmediatePayments is the one-step flow: authorization and capture in
// a single operation. For digital goods, low-value charges, and
// methods without a separate capture.
//
// Charge is idempotent under an equal idempotence key: retrying the
// same payment returns the original transaction; reusing the key with
// a different payload fails with Conflict.
type ImmediatePayments[P types.PaymentShape, I types.InstallmentScheme] interface {
	CheckTransaction

	Charge(ctx context.Context, payment P, plan I, opts ChargeOptions) (types.Transaction, error)
}
