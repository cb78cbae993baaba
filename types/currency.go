// Package types defines the canonical data model of the payment core:
// money, transactions, payment methods, split-payment recipients,
// installment dialects, and the sealed marker families that the flow
// contracts are typed against.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"merchantcore/apperror"
)

// Currency is an ISO 4217 alphabetic currency code.
type Currency string

// Common currencies, predeclared for convenience. Any ISO 4217 code
// passes NewCurrency.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	BRL Currency = "BRL"
	MXN Currency = "MXN"
	AED Currency = "AED"
	SAR Currency = "SAR"
	INR Currency = "INR"
)

// NewCurrency validates raw against the ISO 4217 registry.
func NewCurrency(raw string) (Currency, error) {
	u, err := currency.ParseISO(strings.TrimSpace(raw))
	if err != nil {
		return "", apperror.InvalidInput("unknown ISO 4217 currency code")
	}
	return Currency(u.String()), nil
}

// MinorUnits returns the number of decimal places of the currency's
// minor unit (2 for USD, 0 for JPY). Unknown codes default to 2.
func (c Currency) MinorUnits() int32 {
	u, err := currency.ParseISO(string(c))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(u)
	return int32(scale)
}

func (c Currency) String() string { return string(c) }

// Money is an amount in a single currency. Amounts are fixed-precision
// decimals; there is no arithmetic across currencies.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney builds a non-negative Money value.
func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	if _, err := NewCurrency(string(cur)); err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, apperror.InvalidInput("amount must not be negative")
	}
	return Money{Amount: amount, Currency: cur}, nil
}

// Equal reports value equality: same currency and numerically equal amount.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// Add returns m + other. Mixing currencies is an error.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, apperror.ValidationFailed("cannot add %s to %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns m - other. Mixing currencies is an error.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, apperror.ValidationFailed("cannot subtract %s from %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// RoundToMinorUnits rounds the amount to the currency's minor-unit
// scale using banker's rounding.
func (m Money) RoundToMinorUnits() Money {
	return Money{Amount: m.Amount.RoundBank(m.Currency.MinorUnits()), Currency: m.Currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(m.Currency.MinorUnits()), m.Currency)
}
