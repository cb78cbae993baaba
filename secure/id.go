package secure

import (
	"log/slog"

	"merchantcore/apperror"
	"merchantcore/internal/sensitive"
)

// newID sanitizes and validates an identifier: trim, 1..=255 printable
// characters, no whitespace.
func newID(kind, raw string) (string, error) {
	v := trimCollapse(raw)
	if v == "" {
		return "", apperror.InvalidInput("%s must not be empty", kind)
	}
	if len([]rune(v)) > 255 {
		return "", apperror.InvalidInput("%s must be at most 255 characters", kind)
	}
	if !printableNoSpace(v) {
		return "", apperror.InvalidInput("%s must contain only printable non-whitespace characters", kind)
	}
	return v, nil
}

// TransactionID uniquely identifies a transaction at the gateway.
type TransactionID struct{ value string }

func NewTransactionID(raw string) (TransactionID, error) {
	v, err := newID("transaction id", raw)
	if err != nil {
		return TransactionID{}, err
	}
	return TransactionID{value: v}, nil
}

func (id TransactionID) Value() string        { return id.value }
func (id TransactionID) String() string       { return sensitive.MaskTail(id.value) }
func (id TransactionID) LogValue() slog.Value { return slog.StringValue(id.String()) }

// SubscriptionID uniquely identifies a subscription at the gateway.
type SubscriptionID struct{ value string }

func NewSubscriptionID(raw string) (SubscriptionID, error) {
	v, err := newID("subscription id", raw)
	if err != nil {
		return SubscriptionID{}, err
	}
	return SubscriptionID{value: v}, nil
}

func (id SubscriptionID) Value() string        { return id.value }
func (id SubscriptionID) String() string       { return sensitive.MaskTail(id.value) }
func (id SubscriptionID) LogValue() slog.Value { return slog.StringValue(id.String()) }

// CustomerID identifies a customer at the gateway. Required for
// bank-debit mandates, forbidden for self-contained card tokens.
type CustomerID struct{ value string }

func NewCustomerID(raw string) (CustomerID, error) {
	v, err := newID("customer id", raw)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{value: v}, nil
}

func (id CustomerID) Value() string        { return id.value }
func (id CustomerID) String() string       { return sensitive.MaskTail(id.value) }
func (id CustomerID) LogValue() slog.Value { return slog.StringValue(id.String()) }

// RecipientID identifies one recipient of a split payment.
type RecipientID struct{ value string }

func NewRecipientID(raw string) (RecipientID, error) {
	v, err := newID("recipient id", raw)
	if err != nil {
		return RecipientID{}, err
	}
	return RecipientID{value: v}, nil
}

func (id RecipientID) Value() string        { return id.value }
func (id RecipientID) String() string       { return sensitive.MaskTail(id.value) }
func (id RecipientID) LogValue() slog.Value { return slog.StringValue(id.String()) }

// InstallmentPlanID references a gateway-stored installment plan.
type InstallmentPlanID struct{ value string }

func NewInstallmentPlanID(raw string) (InstallmentPlanID, error) {
	v, err := newID("installment plan id", raw)
	if err != nil {
		return InstallmentPlanID{}, err
	}
	return InstallmentPlanID{value: v}, nil
}

func (id InstallmentPlanID) Value() string        { return id.value }
func (id InstallmentPlanID) String() string       { return sensitive.MaskTail(id.value) }
func (id InstallmentPlanID) LogValue() slog.Value { return slog.StringValue(id.String()) }

// IdempotenceKey is the caller-supplied opaque identifier that
// deduplicates retries: 1..=255 printable non-whitespace characters.
// Keys may embed customer references, so default formatting masks them.
type IdempotenceKey struct{ value string }

func NewIdempotenceKey(raw string) (IdempotenceKey, error) {
	v, err := newID("idempotence key", raw)
	if err != nil {
		return IdempotenceKey{}, err
	}
	return IdempotenceKey{value: v}, nil
}

func (k IdempotenceKey) Value() string        { return k.value }
func (k IdempotenceKey) String() string       { return sensitive.MaskTail(k.value) }
func (k IdempotenceKey) LogValue() slog.Value { return slog.StringValue(k.String()) }

// Equal reports value equality, the relation adapters use to detect
// retries of the same request.
func (k IdempotenceKey) Equal(other IdempotenceKey) bool { return k.value == other.value }
