// Package flows defines the optional capability contracts a gateway
// adapter opts into. Every flow embeds CheckTransaction, the one
// mandatory capability; everything else is implemented per adapter
// ability. Any two adapters implementing the same flow instantiation
// are substitutable for each other.
//
// Variation points (payment shape, installment dialect, authorization
// changes, capture and refund scope) are type parameters constrained to
// the sealed marker families in the types package. A marker becomes
// binding by appearing in a method signature: an adapter whose
// AuthorizationModel returns types.ChangesByTotal can never satisfy
// AdjustAuthorization, because that would need a second
// AuthorizationModel method returning types.ChangesByDelta.
//
// Every method suspends on the caller's context between argument
// validation and gateway interaction. On cancellation after a side
// effect may have started, the outcome is indeterminate; reconcile via
// CheckTransaction or RecoverTransactions with the same idempotence key.
package flows
