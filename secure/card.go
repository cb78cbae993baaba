package secure

import (
	"fmt"
	"log/slog"
	"time"

	"merchantcore/apperror"
	"merchantcore/internal/luhn"
	"merchantcore/internal/sensitive"
)

// timeNow is stubbed in tests to pin the expiry window.
var timeNow = time.Now

// PrimaryAccountNumber is the card number (PAN).
//
// Sanitization strips ASCII whitespace and dashes. Validation requires
// 12 to 19 digits passing the Luhn check. PCI DSS treats the PAN as
// sensitive authentication data: default formatting is the fixed mask,
// the raw digits are reachable only via Expose or UnsafeRaw, and the
// last four digits are available through the explicit Last4 accessor
// for the card.last4 metadata key.
type PrimaryAccountNumber struct {
	secret *sensitive.Secret
	last4  string
}

func NewPrimaryAccountNumber(raw string) (PrimaryAccountNumber, error) {
	v := stripRunes(raw, "-")
	if len(v) < 12 || len(v) > 19 {
		return PrimaryAccountNumber{}, apperror.InvalidInput("card number must be 12 to 19 digits")
	}
	if !allDigits(v) {
		return PrimaryAccountNumber{}, apperror.InvalidInput("card number must contain only digits")
	}
	if !luhn.Valid(v) {
		return PrimaryAccountNumber{}, apperror.InvalidInput("card number failed the Luhn check")
	}
	return PrimaryAccountNumber{secret: sensitive.New(v), last4: v[len(v)-4:]}, nil
}

// Last4 returns the last four digits. Explicitly sanctioned by PCI DSS
// for display and for the card.last4 gateway-metadata key.
func (p PrimaryAccountNumber) Last4() string { return p.last4 }

// Expose grants scoped access to the digits; the value must not escape f.
func (p PrimaryAccountNumber) Expose(f func(pan string) error) error { return p.secret.Expose(f) }

// UnsafeRaw returns the digits. The caller asserts the value goes only
// into another erase-on-release container or a request buffer that is
// cleared after use.
func (p PrimaryAccountNumber) UnsafeRaw() string { return p.secret.UnsafeRaw() }

// Wipe clears the backing storage. The value is unusable afterwards.
func (p PrimaryAccountNumber) Wipe() { p.secret.Wipe() }

func (p PrimaryAccountNumber) String() string       { return sensitive.Mask }
func (p PrimaryAccountNumber) GoString() string     { return sensitive.Mask }
func (p PrimaryAccountNumber) LogValue() slog.Value { return slog.StringValue(sensitive.Mask) }

// CVV is the card verification value: 3 or 4 digits.
type CVV struct {
	secret *sensitive.Secret
}

func NewCVV(raw string) (CVV, error) {
	v := stripRunes(raw, "")
	if len(v) < 3 || len(v) > 4 || !allDigits(v) {
		return CVV{}, apperror.InvalidInput("cvv must be 3 or 4 digits")
	}
	return CVV{secret: sensitive.New(v)}, nil
}

func (c CVV) Expose(f func(cvv string) error) error { return c.secret.Expose(f) }
func (c CVV) UnsafeRaw() string                     { return c.secret.UnsafeRaw() }
func (c CVV) Wipe()                                 { c.secret.Wipe() }
func (c CVV) String() string                        { return sensitive.Mask }
func (c CVV) GoString() string                      { return sensitive.Mask }
func (c CVV) LogValue() slog.Value                  { return slog.StringValue(sensitive.Mask) }

// CardExpiry is a card expiration month and year. The pair must be
// strictly after the current month and within roughly twenty years.
type CardExpiry struct {
	month int
	year  int
}

func NewCardExpiry(month, year int) (CardExpiry, error) {
	if month < 1 || month > 12 {
		return CardExpiry{}, apperror.InvalidInput("expiry month must be between 1 and 12")
	}
	now := timeNow().UTC()
	if year < now.Year() || year > now.Year()+20 {
		return CardExpiry{}, apperror.InvalidInput("expiry year must be between %d and %d", now.Year(), now.Year()+20)
	}
	if year == now.Year() && month <= int(now.Month()) {
		return CardExpiry{}, apperror.InvalidInput("card is expired")
	}
	return CardExpiry{month: month, year: year}, nil
}

// Month and Year feed the card.exp_month / card.exp_year metadata keys.
func (e CardExpiry) Month() int { return e.month }
func (e CardExpiry) Year() int  { return e.year }

// ExpiresBefore reports whether the expiry falls strictly before t's month.
func (e CardExpiry) ExpiresBefore(t time.Time) bool {
	return e.year < t.Year() || (e.year == t.Year() && e.month < int(t.Month()))
}

func (e CardExpiry) String() string       { return sensitive.Mask }
func (e CardExpiry) GoString() string     { return sensitive.Mask }
func (e CardExpiry) LogValue() slog.Value { return slog.StringValue(sensitive.Mask) }

// unsafeFormat is used by adapters through UnsafeMMYY.
func (e CardExpiry) unsafeFormat() string { return fmt.Sprintf("%02d/%02d", e.month, e.year%100) }

// UnsafeMMYY renders the expiry as MM/YY for gateway requests. The
// caller asserts the value is not logged or stored.
func (e CardExpiry) UnsafeMMYY() string { return e.unsafeFormat() }
