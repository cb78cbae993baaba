package flows

import (
	"context"

	"github.com/shopspring/decimal"

	"merchantcore/secure"
	"merchantcore/types"
)

// DeferredPayments is the two-step flow: Authorize reserves funds,
// Capture debits them. For physical goods, delayed delivery, and risk
// review before capture.
//
//   - C declares the authorization-change model. ChangesNotSupported is
//     the default; ChangesByTotal enables EditAuthorization and
//     ChangesByDelta enables AdjustAuthorization. The models are
//     mutually exclusive by construction.
//   - S declares the capture scope. With types.CaptureAuthorized the
//     capture debits exactly the authorized amount; with
//     types.PartialCapture the call may name a smaller amount and a new
//     recipient distribution.
type DeferredPayments[
	P types.PaymentShape,
	I types.InstallmentScheme,
	C types.AuthorizationChanges,
	S types.CaptureScope,
] interface {
	CheckTransaction

	// AuthorizationModel names the change model the adapter supports.
	// The return type is what binds C to the implementing adapter.
	AuthorizationModel() C

	// Authorize reserves funds without capturing them. Idempotent under
	// an equal idempotence key.
	Authorize(ctx context.Context, payment P, plan I, opts ChargeOptions) (types.Transaction, error)

	// Capture debits previously authorized funds according to scope.
	Capture(ctx context.Context, id secure.TransactionID, scope S) (types.Transaction, error)
}

// EditAuthorization is the change capability for gateways that accept
// a new total amount (Stripe, Adyen, Braintree). Requires the
// ChangesByTotal model; an adapter on ChangesByDelta or
// ChangesNotSupported cannot satisfy this interface.
type EditAuthorization[
	P types.PaymentShape,
	I types.InstallmentScheme,
	S types.CaptureScope,
] interface {
	DeferredPayments[P, I, types.ChangesByTotal, S]

	// EditAuthorization replaces the authorized amount before capture.
	// The new total must differ from the current one.
	EditAuthorization(ctx context.Context, id secure.TransactionID, newTotal decimal.Decimal) (types.Transaction, error)
}

// AdjustAuthorization is the change capability for gateways that
// accept delta amounts (Checkout.com, Worldpay, Cybersource). Requires
// the ChangesByDelta model.
type AdjustAuthorization[
	P types.PaymentShape,
	I types.InstallmentScheme,
	S types.CaptureScope,
] interface {
	DeferredPayments[P, I, types.ChangesByDelta, S]

	// IncrementAuthorization raises the authorized amount by delta > 0.
	IncrementAuthorization(ctx context.Context, id secure.TransactionID, delta decimal.Decimal) (types.Transaction, error)

	// DecrementAuthorization releases delta > 0 of the reserved funds;
	// the delta must not exceed the currently authorized amount.
	DecrementAuthorization(ctx context.Context, id secure.TransactionID, delta decimal.Decimal) (types.Transaction, error)
}
