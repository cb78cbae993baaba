package types

import (
	"slices"

	"merchantcore/apperror"
	"merchantcore/secure"
)

// Transaction is the gateway's record of one payment operation. Only
// adapter code constructs and updates transactions; callers treat them
// as immutable snapshots.
type Transaction struct {
	ID               secure.TransactionID
	Status           TransactionStatus
	Amount           Money
	MethodDescriptor string
	Metadata         Metadata
}

// Equal reports value equality of two transaction snapshots. Voiding an
// already voided transaction must yield an Equal record.
func (t Transaction) Equal(other Transaction) bool {
	return t.ID.Value() == other.ID.Value() &&
		t.Status == other.Status &&
		t.Amount.Equal(other.Amount) &&
		t.MethodDescriptor == other.MethodDescriptor &&
		t.Metadata.Equal(other.Metadata)
}

// ReversalReason is the closed set of audit reasons for reversing a
// settled transaction.
type ReversalReason string

const (
	ReversalDuplicate       ReversalReason = "duplicate"
	ReversalFraudulent      ReversalReason = "fraudulent"
	ReversalCustomerRequest ReversalReason = "customer_request"
	ReversalProcessingError ReversalReason = "processing_error"
)

var AvailableReversalReasons = []ReversalReason{
	ReversalDuplicate, ReversalFraudulent, ReversalCustomerRequest, ReversalProcessingError,
}

func NewReversalReason(raw string) (ReversalReason, error) {
	if slices.Contains(AvailableReversalReasons, ReversalReason(raw)) {
		return ReversalReason(raw), nil
	}
	return "", apperror.InvalidInput("invalid reversal reason")
}
