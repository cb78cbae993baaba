package secure

import (
	"log/slog"

	"merchantcore/apperror"
	"merchantcore/internal/sensitive"
)

// newText sanitizes and validates a free-text semi-sensitive value:
// trim, collapse internal whitespace, 1..=255 characters, no control
// characters.
func newText(kind, raw string) (string, error) {
	v := trimCollapse(raw)
	if len([]rune(v)) < 1 || len([]rune(v)) > 255 {
		return "", apperror.InvalidInput("%s must be 1 to 255 characters", kind)
	}
	if !noControl(v) {
		return "", apperror.InvalidInput("%s must not contain control characters", kind)
	}
	return v, nil
}

// FullName is a person's full name as registered with their bank or
// provider.
type FullName struct{ value string }

func NewFullName(raw string) (FullName, error) {
	v, err := newText("full name", raw)
	if err != nil {
		return FullName{}, err
	}
	return FullName{value: v}, nil
}

func (n FullName) Value() string        { return n.value }
func (n FullName) String() string       { return sensitive.MaskTail(n.value) }
func (n FullName) LogValue() slog.Value { return slog.StringValue(n.String()) }

// CardHolderName is the name embossed on a payment card.
type CardHolderName struct{ value string }

func NewCardHolderName(raw string) (CardHolderName, error) {
	v, err := newText("card holder name", raw)
	if err != nil {
		return CardHolderName{}, err
	}
	return CardHolderName{value: v}, nil
}

func (n CardHolderName) Value() string        { return n.value }
func (n CardHolderName) String() string       { return sensitive.MaskTail(n.value) }
func (n CardHolderName) LogValue() slog.Value { return slog.StringValue(n.String()) }

// City is the city line of a postal address.
type City struct{ value string }

func NewCity(raw string) (City, error) {
	v, err := newText("city", raw)
	if err != nil {
		return City{}, err
	}
	return City{value: v}, nil
}

func (c City) Value() string        { return c.value }
func (c City) String() string       { return sensitive.MaskTail(c.value) }
func (c City) LogValue() slog.Value { return slog.StringValue(c.String()) }

// StreetAddress is a single street line of a postal address.
type StreetAddress struct{ value string }

func NewStreetAddress(raw string) (StreetAddress, error) {
	v, err := newText("street address", raw)
	if err != nil {
		return StreetAddress{}, err
	}
	return StreetAddress{value: v}, nil
}

func (s StreetAddress) Value() string        { return s.value }
func (s StreetAddress) String() string       { return sensitive.MaskTail(s.value) }
func (s StreetAddress) LogValue() slog.Value { return slog.StringValue(s.String()) }

// BankName identifies a bank in instant-transfer flows.
type BankName struct{ value string }

func NewBankName(raw string) (BankName, error) {
	v, err := newText("bank name", raw)
	if err != nil {
		return BankName{}, err
	}
	return BankName{value: v}, nil
}

func (b BankName) Value() string        { return b.value }
func (b BankName) String() string       { return sensitive.MaskTail(b.value) }
func (b BankName) LogValue() slog.Value { return slog.StringValue(b.String()) }

// ReasonForRefund is a merchant-supplied free-text refund note.
type ReasonForRefund struct{ value string }

func NewReasonForRefund(raw string) (ReasonForRefund, error) {
	v, err := newText("reason for refund", raw)
	if err != nil {
		return ReasonForRefund{}, err
	}
	return ReasonForRefund{value: v}, nil
}

func (r ReasonForRefund) Value() string        { return r.value }
func (r ReasonForRefund) String() string       { return sensitive.MaskTail(r.value) }
func (r ReasonForRefund) LogValue() slog.Value { return slog.StringValue(r.String()) }
