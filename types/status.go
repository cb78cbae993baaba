package types

import (
	"slices"

	"merchantcore/apperror"
)

// TransactionStatus is the closed set of transaction states.
type TransactionStatus string

const (
	StatusAuthorized TransactionStatus = "authorized"
	StatusCaptured   TransactionStatus = "captured"
	StatusPending    TransactionStatus = "pending"
	StatusDeclined   TransactionStatus = "declined"
	StatusFailed     TransactionStatus = "failed"
	StatusVoided     TransactionStatus = "voided"
	StatusRefunded   TransactionStatus = "refunded"
	StatusProcessing TransactionStatus = "processing"
)

var AvailableTransactionStatuses = []TransactionStatus{
	StatusAuthorized, StatusCaptured, StatusPending, StatusDeclined,
	StatusFailed, StatusVoided, StatusRefunded, StatusProcessing,
}

func NewTransactionStatus(raw string) (TransactionStatus, error) {
	if slices.Contains(AvailableTransactionStatuses, TransactionStatus(raw)) {
		return TransactionStatus(raw), nil
	}
	return "", apperror.InvalidInput("invalid transaction status")
}

// Operation names a flow operation for legality checks against a status.
type Operation string

const (
	OperationCheck               Operation = "check"
	OperationCapture             Operation = "capture"
	OperationVoid                Operation = "void"
	OperationEditAuthorization   Operation = "edit_authorization"
	OperationAdjustAuthorization Operation = "adjust_authorization"
	OperationRefund              Operation = "refund"
	OperationReverse             Operation = "reverse"
)

// Allows reports whether op is legal for a transaction in status s.
// Adapters return PreconditionFailed for disallowed combinations rather
// than forwarding the call to the gateway.
//
// Refund on an authorized (uncaptured) transaction and void on a
// pending transaction are gateway-dependent; Allows reports the
// permissive answer and the adapter narrows it.
func (s TransactionStatus) Allows(op Operation) bool {
	if op == OperationCheck {
		return true
	}
	switch s {
	case StatusAuthorized:
		return slices.Contains([]Operation{
			OperationCapture, OperationVoid, OperationEditAuthorization,
			OperationAdjustAuthorization, OperationRefund, OperationReverse,
		}, op)
	case StatusCaptured:
		return op == OperationRefund || op == OperationReverse
	case StatusPending, StatusProcessing:
		return op == OperationVoid
	default:
		return false
	}
}

// SubscriptionStatus is the closed set of subscription states.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPaused   SubscriptionStatus = "paused"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionExpired  SubscriptionStatus = "expired"
	SubscriptionPending  SubscriptionStatus = "pending"
)

var AvailableSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionActive, SubscriptionPaused, SubscriptionCanceled,
	SubscriptionPastDue, SubscriptionExpired, SubscriptionPending,
}

func NewSubscriptionStatus(raw string) (SubscriptionStatus, error) {
	if slices.Contains(AvailableSubscriptionStatuses, SubscriptionStatus(raw)) {
		return SubscriptionStatus(raw), nil
	}
	return "", apperror.InvalidInput("invalid subscription status")
}
