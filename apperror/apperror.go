// Package apperror defines the canonical error type shared by the core
// and every gateway adapter. Callers dispatch on Kind; adapters must map
// each gateway-specific failure into exactly one kind.
//
// Reason strings never carry sensitive values. Adapters building reasons
// from gateway responses are responsible for stripping card data before
// classification.
package apperror

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class. The set is closed.
type Kind string

const (
	// KindInvalidInput means validation failed at the boundary; no side effect happened.
	KindInvalidInput Kind = "invalid_input"

	// KindValidationFailed means a composite business rule failed
	// (e.g. base amount plus recipient allocations exceed the total).
	KindValidationFailed Kind = "validation_failed"

	// KindUnsupported means the adapter does not offer the requested capability
	// for this payment method, region, or state.
	KindUnsupported Kind = "unsupported"

	// KindPreconditionFailed means the transaction is not in a legal state
	// for the operation (e.g. refunding a declined transaction).
	KindPreconditionFailed Kind = "precondition_failed"

	// KindRequiresAction is surfaced through pipeline response envelopes;
	// it exists here for completeness of the closed set.
	KindRequiresAction Kind = "requires_action"

	// KindGatewayRejected means the remote side refused the operation.
	KindGatewayRejected Kind = "gateway_rejected"

	// KindGatewayTransient covers timeouts and 5xx-equivalent failures.
	KindGatewayTransient Kind = "gateway_transient"

	// KindConflict means an idempotence-key collision with a different payload.
	KindConflict Kind = "conflict"

	// KindInternal means a bug or an invariant violation.
	KindInternal Kind = "internal"
)

// RejectionCategory classifies a gateway refusal. Adapters must pick
// exactly one category for every gateway-specific decline code.
type RejectionCategory string

const (
	CategoryDeclined               RejectionCategory = "declined"
	CategoryFraud                  RejectionCategory = "fraud"
	CategoryRiskHold               RejectionCategory = "risk_hold"
	CategoryInsufficientFunds      RejectionCategory = "insufficient_funds"
	CategoryAuthenticationRequired RejectionCategory = "authentication_required"
	CategoryLimit                  RejectionCategory = "limit"
	CategoryNetwork                RejectionCategory = "network"
	CategoryUnknown                RejectionCategory = "unknown"
)

// Error is the single error type of the core.
type Error struct {
	Kind   Kind
	Reason string

	// Capability names the missing capability for KindUnsupported.
	Capability string

	// Code, Message and Category are set for KindGatewayRejected.
	Code     string
	Message  string
	Category RejectionCategory

	// Retryable is set for KindGatewayTransient.
	Retryable bool
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnsupported:
		return fmt.Sprintf("%s: %s", e.Kind, e.Capability)
	case KindGatewayRejected:
		return fmt.Sprintf("%s: %s (%s, category %s)", e.Kind, e.Message, e.Code, e.Category)
	case KindGatewayTransient:
		return fmt.Sprintf("%s: %s (retryable=%t)", e.Kind, e.Reason, e.Retryable)
	default:
		if e.Reason == "" {
			return string(e.Kind)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
}

// Is matches any *Error with the same Kind, so callers can use
// errors.Is(err, apperror.ErrConflict) against the kind sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is dispatch.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrValidationFailed   = &Error{Kind: KindValidationFailed}
	ErrUnsupported        = &Error{Kind: KindUnsupported}
	ErrPreconditionFailed = &Error{Kind: KindPreconditionFailed}
	ErrRequiresAction     = &Error{Kind: KindRequiresAction}
	ErrGatewayRejected    = &Error{Kind: KindGatewayRejected}
	ErrGatewayTransient   = &Error{Kind: KindGatewayTransient}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrInternal           = &Error{Kind: KindInternal}
)

// InvalidInput reports a boundary validation failure.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Reason: fmt.Sprintf(format, args...)}
}

// ValidationFailed reports a composite business-rule failure.
func ValidationFailed(format string, args ...any) *Error {
	return &Error{Kind: KindValidationFailed, Reason: fmt.Sprintf(format, args...)}
}

// Unsupported reports a capability the adapter does not offer.
func Unsupported(capability string) *Error {
	return &Error{Kind: KindUnsupported, Capability: capability}
}

// PreconditionFailed reports an operation attempted in an illegal transaction state.
func PreconditionFailed(format string, args ...any) *Error {
	return &Error{Kind: KindPreconditionFailed, Reason: fmt.Sprintf(format, args...)}
}

// GatewayRejected reports a refusal from the remote gateway.
func GatewayRejected(code, message string, category RejectionCategory) *Error {
	return &Error{Kind: KindGatewayRejected, Code: code, Message: message, Category: category}
}

// GatewayTransient reports a timeout or 5xx-equivalent failure.
func GatewayTransient(retryable bool, format string, args ...any) *Error {
	return &Error{Kind: KindGatewayTransient, Retryable: retryable, Reason: fmt.Sprintf(format, args...)}
}

// Conflict reports an idempotence-key collision with a different payload.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Reason: fmt.Sprintf(format, args...)}
}

// Internal reports a bug or invariant violation inside the core or an adapter.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Reason: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsRetryable reports whether err is a transient failure the caller
// may retry.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
