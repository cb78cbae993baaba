// Package gateway defines the root contract every adapter implements
// and the two universal pipeline steps, authorize and secure.
//
// The five type parameters are the adapter's variation points: the
// payment shape, the accepted input method, the installment dialect,
// the method produced by authorize, and the method produced by secure.
// Two adapters instantiating Gateway identically are substitutable for
// each other in every flow both implement.
package gateway

import (
	"context"

	"merchantcore/types"
)

// Gateway is the single contract every payment adapter implements.
//
//   - P fixes the payment shape: types.Payment or types.SplitPayment.
//   - M fixes the accepted input payment method.
//   - I fixes the installment dialect, or types.NoInstallments.
//   - A fixes the AuthorizeMethod result: types.StoredCredential when the
//     step creates a reusable token or mandate, otherwise M itself
//     (passthrough).
//   - S fixes the Secure result: types.SecuredPayment for gateways
//     performing 3-D Secure, otherwise A itself (passthrough).
//
// Both methods validate synchronously before any gateway interaction;
// a result carrying a RequiredAction means no funds moved.
type Gateway[
	P types.PaymentShape,
	M types.PaymentMethod,
	I types.InstallmentScheme,
	A types.AuthorizedPaymentMethod,
	S types.SecuredPaymentMethod,
] interface {
	// AuthorizeMethod prepares a payment method for future charges:
	//   - bank debits (SEPA/ACH/BACS): create a mandate; Verified may be
	//     false while micro-deposit confirmation is pending,
	//   - cards: produce a SetupIntent token,
	//   - everything else: passthrough with Verified true and empty
	//     metadata.
	//
	// The name leaves Authorize free for the two-step payment flow on
	// the same adapter.
	AuthorizeMethod(ctx context.Context, req AuthorizeRequest[M]) (AuthorizeResult[A], error)

	// Secure runs strong customer authentication:
	//   - customer-initiated card payments: 3-D Secure; a RequiredAction
	//     surfaces the challenge,
	//   - merchant-initiated and non-card: passthrough.
	Secure(ctx context.Context, req SecureRequest[A]) (SecureResult[S], error)
}

// AuthorizeRequest carries the method to authorize and, on a repeated
// call, the confirmation of a previously required customer action.
type AuthorizeRequest[M types.PaymentMethod] struct {
	PaymentMethod M
	Confirmation  *types.Confirmation
}

// AuthorizeResult is the AuthorizeMethod envelope. When Action is non-nil
// a customer action is required and the remaining fields are unset.
type AuthorizeResult[A types.AuthorizedPaymentMethod] struct {
	// Method is the authorized payment method for future charges.
	Method A

	// Verified reports whether the method is ready for use. Always true
	// for passthrough; false for bank accounts awaiting micro-deposits.
	Verified bool

	// Metadata carries gateway facts about the method (card.brand,
	// card.last4, mandate.id, ...).
	Metadata types.Metadata

	Action *types.RequiredAction
}

// RequiresAction reports whether the caller must complete a customer
// action and call AuthorizeMethod again with the confirmation.
func (r AuthorizeResult[A]) RequiresAction() bool { return r.Action != nil }

// SecureRequest carries the authorized method through the secure step.
type SecureRequest[A types.AuthorizedPaymentMethod] struct {
	PaymentMethod A

	// BrowserInfo enables risk-based 3-D Secure; nil forces a challenge
	// where the gateway requires one.
	BrowserInfo *types.BrowserInfo

	// Initiator decides whether authentication applies at all:
	// merchant-initiated payments pass through.
	Initiator types.Initiator

	Confirmation *types.Confirmation
}

// SecureResult is the Secure envelope.
type SecureResult[S types.SecuredPaymentMethod] struct {
	Method S
	Action *types.RequiredAction
}

// RequiresAction reports whether a 3-D Secure challenge must be
// completed before the payment can proceed.
func (r SecureResult[S]) RequiresAction() bool { return r.Action != nil }

// CredentialAuthorizer is implemented by gateways whose AuthorizeMethod
// produces a StoredCredential. It adds verification polling for
// mandates pending micro-deposit confirmation, and revocation.
type CredentialAuthorizer interface {
	// CheckStoredCredential polls the verification status of a
	// previously issued credential.
	CheckStoredCredential(ctx context.Context, credential types.StoredCredential) (AuthorizeResult[types.StoredCredential], error)

	// RevokeStoredCredential voids the mandate or token, making it
	// unusable for future charges. Idempotent.
	RevokeStoredCredential(ctx context.Context, credential types.StoredCredential) error
}
