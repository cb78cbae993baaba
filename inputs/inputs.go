// Package inputs holds the unvalidated boundary counterparts of the core
// data model. An input is a plain struct over caller-owned data with no
// invariants beyond structural well-formedness; the only supported
// transition is the validating constructor in the secure and types
// packages, after which the input must not be reused.
//
// No type in this package implements fmt.Stringer or slog.LogValuer: an
// input may carry raw card data, and the absence of formatting is what
// keeps it out of diagnostics.
package inputs

import "github.com/shopspring/decimal"

// CreditCard carries raw card data as entered by the customer.
type CreditCard struct {
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string // optional
	HolderName  string // optional
}

// SEPAAccount carries raw SEPA direct-debit data.
type SEPAAccount struct {
	IBAN           string
	HolderName     string
	Email          string
	BillingAddress Address
}

// BankAccount carries raw ACH/BACS direct-debit data.
type BankAccount struct {
	AccountNumber string
	RoutingNumber string
	HolderName    string
	AccountType   string // "checking" or "savings"
	HolderType    string // "individual" or "business"
}

// InstantBankAccount identifies an instant bank transfer source.
type InstantBankAccount struct {
	BankName string
	Country  string
}

// BNPL carries the customer data a buy-now-pay-later provider needs for
// credit assessment. Authentication happens in the provider's redirect
// flow, not here.
type BNPL struct {
	FullName       string
	Email          string
	BillingAddress Address
	HolderType     string // "individual" or "business"
	Phone          string // optional
}

// CashVoucher carries the customer data for voucher schemes such as
// Boleto or OXXO.
type CashVoucher struct {
	FullName       string
	NationalID     string  // optional (CPF/CNPJ for Boleto)
	BillingAddress Address // optional: zero value means absent
}

// Token is a raw single-use gateway token.
type Token struct {
	Value string
}

// VaultToken is a raw reference to a method stored in the gateway vault.
type VaultToken struct {
	Value string
}

// StoredCredential references a saved payment method. CustomerID is
// required for bank-debit mandates and must be empty for self-contained
// card tokens.
type StoredCredential struct {
	Token      string
	CustomerID string
}

// Address is the boundary form of a postal address.
type Address struct {
	Country    string
	City       string
	Line       string
	PostalCode string // optional
	Region     string // optional
}

// Payment carries the amounts and the idempotence key of a charge.
// The payment method travels separately as a typed value.
type Payment struct {
	Currency       string
	TotalAmount    decimal.Decimal
	BaseAmount     decimal.Decimal
	IdempotenceKey string
}

// DistributedValue allocates part of a split payment to one recipient.
// Exactly one of Amount and Percent must be set.
type DistributedValue struct {
	Amount  *decimal.Decimal
	Percent *decimal.Decimal
}

// Recipients maps recipient ids to their allocations.
type Recipients map[string]DistributedValue

// BrowserInfo carries the customer browser fingerprint used for
// risk-based 3-D Secure authentication.
type BrowserInfo struct {
	AcceptHeader   string
	UserAgent      string
	Language       string
	TimeZoneOffset int
	ScreenWidth    int
	ScreenHeight   int
	JavaEnabled    bool
}
