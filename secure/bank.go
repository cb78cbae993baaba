package secure

import (
	"log/slog"
	"strings"

	"merchantcore/apperror"
	"merchantcore/internal/sensitive"
)

// AccountNumber is a bank account number: 4..=34 alphanumeric
// characters after trimming.
type AccountNumber struct {
	secret *sensitive.Secret
}

func NewAccountNumber(raw string) (AccountNumber, error) {
	v := stripRunes(raw, "")
	if len(v) < 4 || len(v) > 34 || !allAlphanumeric(v) {
		return AccountNumber{}, apperror.InvalidInput("account number must be 4 to 34 alphanumeric characters")
	}
	return AccountNumber{secret: sensitive.New(v)}, nil
}

func (a AccountNumber) Expose(f func(n string) error) error { return a.secret.Expose(f) }
func (a AccountNumber) UnsafeRaw() string                   { return a.secret.UnsafeRaw() }
func (a AccountNumber) Wipe()                               { a.secret.Wipe() }
func (a AccountNumber) String() string                      { return sensitive.Mask }
func (a AccountNumber) GoString() string                    { return sensitive.Mask }
func (a AccountNumber) LogValue() slog.Value                { return slog.StringValue(sensitive.Mask) }

// RoutingNumber is a 9-digit ABA routing transit number.
type RoutingNumber struct {
	secret *sensitive.Secret
}

func NewRoutingNumber(raw string) (RoutingNumber, error) {
	v := stripRunes(raw, "-")
	if len(v) != 9 || !allDigits(v) {
		return RoutingNumber{}, apperror.InvalidInput("routing number must be exactly 9 digits")
	}
	if !abaChecksumValid(v) {
		return RoutingNumber{}, apperror.InvalidInput("routing number failed the ABA check")
	}
	return RoutingNumber{secret: sensitive.New(v)}, nil
}

// abaChecksumValid applies the ABA weight rule 3-7-1 over the 9 digits.
func abaChecksumValid(v string) bool {
	weights := [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(v[i]-'0') * weights[i]
	}
	return sum%10 == 0
}

func (r RoutingNumber) Expose(f func(n string) error) error { return r.secret.Expose(f) }
func (r RoutingNumber) UnsafeRaw() string                   { return r.secret.UnsafeRaw() }
func (r RoutingNumber) Wipe()                               { r.secret.Wipe() }
func (r RoutingNumber) String() string                      { return sensitive.Mask }
func (r RoutingNumber) GoString() string                    { return sensitive.Mask }
func (r RoutingNumber) LogValue() slog.Value                { return slog.StringValue(sensitive.Mask) }

// IBAN is an International Bank Account Number: two letters, two check
// digits, then up to 30 alphanumeric characters, validated mod-97.
type IBAN struct {
	secret *sensitive.Secret
}

func NewIBAN(raw string) (IBAN, error) {
	v := strings.ToUpper(stripRunes(raw, "-"))
	if len(v) < 15 || len(v) > 34 || !allAlphanumeric(v) {
		return IBAN{}, apperror.InvalidInput("iban must be 15 to 34 alphanumeric characters")
	}
	for i := 0; i < 2; i++ {
		if v[i] < 'A' || v[i] > 'Z' {
			return IBAN{}, apperror.InvalidInput("iban must start with a two-letter country code")
		}
	}
	if !ibanMod97Valid(v) {
		return IBAN{}, apperror.InvalidInput("iban failed the mod-97 check")
	}
	return IBAN{secret: sensitive.New(v)}, nil
}

// ibanMod97Valid rearranges the IBAN and computes the remainder
// incrementally to avoid big-integer arithmetic.
func ibanMod97Valid(v string) bool {
	rearranged := v[4:] + v[:4]
	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			n := int(c-'A') + 10
			rem = (rem*100 + n) % 97
		default:
			return false
		}
	}
	return rem == 1
}

func (i IBAN) Expose(f func(iban string) error) error { return i.secret.Expose(f) }
func (i IBAN) UnsafeRaw() string                      { return i.secret.UnsafeRaw() }
func (i IBAN) Wipe()                                  { i.secret.Wipe() }
func (i IBAN) String() string                         { return sensitive.Mask }
func (i IBAN) GoString() string                       { return sensitive.Mask }
func (i IBAN) LogValue() slog.Value                   { return slog.StringValue(sensitive.Mask) }

// BankCode is a BIC/SWIFT code: 8 or 11 alphanumeric characters.
type BankCode struct{ value string }

func NewBankCode(raw string) (BankCode, error) {
	v := strings.ToUpper(stripRunes(raw, ""))
	if (len(v) != 8 && len(v) != 11) || !allAlphanumeric(v) {
		return BankCode{}, apperror.InvalidInput("bank code must be 8 or 11 alphanumeric characters")
	}
	return BankCode{value: v}, nil
}

func (b BankCode) Value() string        { return b.value }
func (b BankCode) String() string       { return sensitive.MaskTail(b.value) }
func (b BankCode) LogValue() slog.Value { return slog.StringValue(b.String()) }

// NationalID is a national identification number (SSN, CPF, NRIC and
// similar). Dots, dashes and slashes are stripped before validation.
type NationalID struct {
	secret *sensitive.Secret
}

func NewNationalID(raw string) (NationalID, error) {
	v := stripRunes(raw, ".-/")
	if len(v) < 4 || len(v) > 32 || !allAlphanumeric(v) {
		return NationalID{}, apperror.InvalidInput("national id must be 4 to 32 alphanumeric characters")
	}
	return NationalID{secret: sensitive.New(v)}, nil
}

func (n NationalID) Expose(f func(id string) error) error { return n.secret.Expose(f) }
func (n NationalID) UnsafeRaw() string                    { return n.secret.UnsafeRaw() }
func (n NationalID) Wipe()                                { n.secret.Wipe() }
func (n NationalID) String() string                       { return sensitive.Mask }
func (n NationalID) GoString() string                     { return sensitive.Mask }
func (n NationalID) LogValue() slog.Value                 { return slog.StringValue(sensitive.Mask) }
