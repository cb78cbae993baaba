package types

import "github.com/shopspring/decimal"

// AuthorizationChanges is the sealed family of authorization-change
// models for the two-step flow. A gateway declares exactly one member;
// the choice decides which change capability (edit by total vs adjust
// by delta) it can implement, and the marker method on the flow
// interface makes the other one unsatisfiable at compile time.
type AuthorizationChanges interface {
	isAuthorizationChanges()
}

// ChangesNotSupported is the default: no authorization changes.
type ChangesNotSupported struct{}

func (ChangesNotSupported) isAuthorizationChanges() {}

// ChangesByTotal marks gateways that accept the new total amount
// (Stripe, Adyen, Braintree, PayPal, Square).
type ChangesByTotal struct{}

func (ChangesByTotal) isAuthorizationChanges() {}

// ChangesByDelta marks gateways that accept incremental amounts
// (Checkout.com, Worldpay, Authorize.Net, Cybersource).
type ChangesByDelta struct{}

func (ChangesByDelta) isAuthorizationChanges() {}

// CaptureScope is the sealed pair of capture models. A gateway's
// DeferredPayments declares one member as the type of the capture
// argument, which fixes at compile time whether partial capture and
// recipient redistribution are expressible at all.
type CaptureScope interface {
	isCaptureScope()
}

// CaptureAuthorized means capture debits exactly the authorized amount
// with the authorized distribution; a partial capture cannot be stated.
type CaptureAuthorized struct{}

func (CaptureAuthorized) isCaptureScope() {}

// PartialCapture permits capturing less than the authorized amount and
// redistributing recipients. A nil Amount captures the full
// authorization; nil Recipients keeps the authorized distribution.
type PartialCapture struct {
	Amount     *decimal.Decimal
	Recipients *Recipients
}

func (PartialCapture) isCaptureScope() {}

// RefundScope is the sealed pair of refund models, parallel to capture.
type RefundScope interface {
	isRefundScope()
}

// TotalRefund means only a full refund of the captured amount, with no
// redistribution.
type TotalRefund struct{}

func (TotalRefund) isRefundScope() {}

// PartialRefund permits refunding part of the captured amount and
// redistributing the refund across recipients. Nil fields mean full
// amount and original distribution respectively.
type PartialRefund struct {
	Amount     *decimal.Decimal
	Recipients *Recipients
}

func (PartialRefund) isRefundScope() {}

// Initiator distinguishes customer-initiated from merchant-initiated
// transactions; the secure pipeline step performs 3-D Secure only for
// customer-initiated card payments.
type Initiator string

const (
	InitiatorCustomer Initiator = "customer"
	InitiatorMerchant Initiator = "merchant"
)

// CredentialUsage is the card-network credential-on-file framework
// marker for charges with reused credentials.
type CredentialUsage string

const (
	// CredentialFirstUse marks the initial transaction that stores the
	// credential.
	CredentialFirstUse CredentialUsage = "first_use"
	// CredentialOnFile marks a subsequent charge with a stored credential.
	CredentialOnFile CredentialUsage = "credential_on_file"
)
