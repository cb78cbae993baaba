package secure

import (
	"log/slog"
	"strings"

	"merchantcore/apperror"
	"merchantcore/internal/sensitive"
)

// EmailAddress is a customer email used for notifications and BNPL
// credit assessment.
type EmailAddress struct{ value string }

func NewEmailAddress(raw string) (EmailAddress, error) {
	v := strings.TrimSpace(raw)
	if len(v) < 3 || len(v) > 254 {
		return EmailAddress{}, apperror.InvalidInput("email must be 3 to 254 characters")
	}
	at := strings.IndexByte(v, '@')
	if at <= 0 || at == len(v)-1 || strings.IndexByte(v[at+1:], '@') != -1 {
		return EmailAddress{}, apperror.InvalidInput("email must contain exactly one @ separating local part and domain")
	}
	if !strings.Contains(v[at+1:], ".") || !noControl(v) || strings.ContainsAny(v, " \t") {
		return EmailAddress{}, apperror.InvalidInput("email domain is malformed")
	}
	return EmailAddress{value: v}, nil
}

func (e EmailAddress) Value() string  { return e.value }
func (e EmailAddress) String() string { return sensitive.MaskTail(e.value) }
func (e EmailAddress) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// PhoneNumber is an E.164-shaped phone number: optional +, then 7 to 15
// digits. Spaces, dashes, dots and parentheses are stripped.
type PhoneNumber struct{ value string }

func NewPhoneNumber(raw string) (PhoneNumber, error) {
	v := stripRunes(raw, "-.()")
	plus := strings.HasPrefix(v, "+")
	digits := strings.TrimPrefix(v, "+")
	if len(digits) < 7 || len(digits) > 15 || !allDigits(digits) {
		return PhoneNumber{}, apperror.InvalidInput("phone number must be 7 to 15 digits")
	}
	if plus {
		v = "+" + digits
	} else {
		v = digits
	}
	return PhoneNumber{value: v}, nil
}

func (p PhoneNumber) Value() string        { return p.value }
func (p PhoneNumber) String() string       { return sensitive.MaskTail(p.value) }
func (p PhoneNumber) LogValue() slog.Value { return slog.StringValue(p.String()) }
