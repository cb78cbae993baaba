package types

import (
	"merchantcore/apperror"
	"merchantcore/inputs"
	"merchantcore/secure"
)

// PaymentMethod is the sealed set of payment instruments the core
// models. Each method carries only its canonical fields and declares
// which capability sets it belongs to through the marker interfaces
// below.
type PaymentMethod interface {
	isPaymentMethod()
	// Descriptor is the short method name used in Transaction records
	// and diagnostics ("card", "sepa_debit", ...).
	Descriptor() string
}

// InternalPaymentMethod is the subset of methods a gateway charges
// directly, without an external redirect flow.
type InternalPaymentMethod interface {
	PaymentMethod
	isInternalPaymentMethod()
}

// ExternalPaymentSource is the sealed subset usable with external
// payment flows: BNPL, CashVoucher, PaymentToken.
type ExternalPaymentSource interface {
	PaymentMethod
	isExternalPaymentSource()
}

// StorablePaymentMethod is the vaultable subset: raw card data and bank
// mandates. Only these may be passed to StoreCredentials.
type StorablePaymentMethod interface {
	PaymentMethod
	isStorablePaymentMethod()
}

// TokenizablePaymentMethod is the subset whose raw credentials can be
// exchanged for a single-use token.
type TokenizablePaymentMethod interface {
	PaymentMethod
	isTokenizablePaymentMethod()
}

// AuthorizedPaymentMethod is the set of methods that can result from
// the authorize pipeline step: a StoredCredential when the step creates
// a reusable token or mandate, or any original method on passthrough.
type AuthorizedPaymentMethod interface {
	PaymentMethod
	isAuthorizedPaymentMethod()
}

// SecuredPaymentMethod is the set of methods that can result from the
// secure pipeline step: a SecuredPayment carrying the 3-D Secure
// result, or any authorized method on passthrough.
type SecuredPaymentMethod interface {
	PaymentMethod
	isSecuredPaymentMethod()
}

// AccountType is the bank account class for direct debits.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
)

func NewAccountType(raw string) (AccountType, error) {
	switch AccountType(raw) {
	case AccountChecking, AccountSavings:
		return AccountType(raw), nil
	}
	return "", apperror.InvalidInput("account type must be checking or savings")
}

// AccountHolderType distinguishes personal and business accounts.
type AccountHolderType string

const (
	HolderIndividual AccountHolderType = "individual"
	HolderBusiness   AccountHolderType = "business"
)

func NewAccountHolderType(raw string) (AccountHolderType, error) {
	switch AccountHolderType(raw) {
	case HolderIndividual, HolderBusiness:
		return AccountHolderType(raw), nil
	}
	return "", apperror.InvalidInput("account holder type must be individual or business")
}

// CreditCard is a raw payment card: Luhn-valid PAN, a future expiry,
// and optionally the CVV and the holder name.
type CreditCard struct {
	number secure.PrimaryAccountNumber
	expiry secure.CardExpiry
	cvv    *secure.CVV
	holder *secure.CardHolderName
}

func NewCreditCard(in inputs.CreditCard) (CreditCard, error) {
	pan, err := secure.NewPrimaryAccountNumber(in.Number)
	if err != nil {
		return CreditCard{}, err
	}
	expiry, err := secure.NewCardExpiry(in.ExpiryMonth, in.ExpiryYear)
	if err != nil {
		return CreditCard{}, err
	}
	card := CreditCard{number: pan, expiry: expiry}
	if in.CVV != "" {
		cvv, err := secure.NewCVV(in.CVV)
		if err != nil {
			return CreditCard{}, err
		}
		card.cvv = &cvv
	}
	if in.HolderName != "" {
		holder, err := secure.NewCardHolderName(in.HolderName)
		if err != nil {
			return CreditCard{}, err
		}
		card.holder = &holder
	}
	return card, nil
}

func (c CreditCard) Number() secure.PrimaryAccountNumber { return c.number }
func (c CreditCard) Expiry() secure.CardExpiry           { return c.expiry }

func (c CreditCard) CVV() (secure.CVV, bool) {
	if c.cvv == nil {
		return secure.CVV{}, false
	}
	return *c.cvv, true
}

func (c CreditCard) Holder() (secure.CardHolderName, bool) {
	if c.holder == nil {
		return secure.CardHolderName{}, false
	}
	return *c.holder, true
}

// Wipe clears the PAN and CVV backing storage.
func (c CreditCard) Wipe() {
	c.number.Wipe()
	if c.cvv != nil {
		c.cvv.Wipe()
	}
}

func (CreditCard) Descriptor() string { return "card" }

// SEPAAccount is a SEPA direct-debit source. Billing address and email
// are required per PSD2 AML rules.
type SEPAAccount struct {
	iban    secure.IBAN
	holder  secure.FullName
	email   secure.EmailAddress
	billing secure.Address
}

func NewSEPAAccount(in inputs.SEPAAccount) (SEPAAccount, error) {
	iban, err := secure.NewIBAN(in.IBAN)
	if err != nil {
		return SEPAAccount{}, err
	}
	holder, err := secure.NewFullName(in.HolderName)
	if err != nil {
		return SEPAAccount{}, err
	}
	email, err := secure.NewEmailAddress(in.Email)
	if err != nil {
		return SEPAAccount{}, err
	}
	billing, err := secure.NewAddress(in.BillingAddress)
	if err != nil {
		return SEPAAccount{}, err
	}
	return SEPAAccount{iban: iban, holder: holder, email: email, billing: billing}, nil
}

func (a SEPAAccount) IBAN() secure.IBAN            { return a.iban }
func (a SEPAAccount) Holder() secure.FullName      { return a.holder }
func (a SEPAAccount) Email() secure.EmailAddress   { return a.email }
func (a SEPAAccount) BillingAddress() secure.Address { return a.billing }
func (a SEPAAccount) Wipe()                        { a.iban.Wipe() }
func (SEPAAccount) Descriptor() string             { return "sepa_debit" }

// BankAccount is a direct bank-debit source (ACH/BACS).
type BankAccount struct {
	accountNumber secure.AccountNumber
	routingNumber secure.RoutingNumber
	holder        secure.FullName
	accountType   AccountType
	holderType    AccountHolderType
}

func NewBankAccount(in inputs.BankAccount) (BankAccount, error) {
	accountNumber, err := secure.NewAccountNumber(in.AccountNumber)
	if err != nil {
		return BankAccount{}, err
	}
	routingNumber, err := secure.NewRoutingNumber(in.RoutingNumber)
	if err != nil {
		return BankAccount{}, err
	}
	holder, err := secure.NewFullName(in.HolderName)
	if err != nil {
		return BankAccount{}, err
	}
	accountType, err := NewAccountType(in.AccountType)
	if err != nil {
		return BankAccount{}, err
	}
	holderType, err := NewAccountHolderType(in.HolderType)
	if err != nil {
		return BankAccount{}, err
	}
	return BankAccount{
		accountNumber: accountNumber,
		routingNumber: routingNumber,
		holder:        holder,
		accountType:   accountType,
		holderType:    holderType,
	}, nil
}

func (a BankAccount) AccountNumber() secure.AccountNumber { return a.accountNumber }
func (a BankAccount) RoutingNumber() secure.RoutingNumber { return a.routingNumber }
func (a BankAccount) Holder() secure.FullName             { return a.holder }
func (a BankAccount) AccountType() AccountType            { return a.accountType }
func (a BankAccount) HolderType() AccountHolderType       { return a.holderType }

func (a BankAccount) Wipe() {
	a.accountNumber.Wipe()
	a.routingNumber.Wipe()
}

func (BankAccount) Descriptor() string { return "bank_debit" }

// InstantBankAccount selects a bank for an instant-transfer scheme
// (iDEAL, Pix and similar); customer authentication happens at the bank.
type InstantBankAccount struct {
	bank    secure.BankName
	country secure.CountryCode
}

func NewInstantBankAccount(in inputs.InstantBankAccount) (InstantBankAccount, error) {
	bank, err := secure.NewBankName(in.BankName)
	if err != nil {
		return InstantBankAccount{}, err
	}
	country, err := secure.NewCountryCode(in.Country)
	if err != nil {
		return InstantBankAccount{}, err
	}
	return InstantBankAccount{bank: bank, country: country}, nil
}

func (a InstantBankAccount) Bank() secure.BankName       { return a.bank }
func (a InstantBankAccount) Country() secure.CountryCode { return a.country }
func (InstantBankAccount) Descriptor() string            { return "instant_bank" }

// BNPL carries the customer data a buy-now-pay-later provider needs for
// credit assessment. Authentication happens in the provider's redirect
// flow.
type BNPL struct {
	fullName   secure.FullName
	email      secure.EmailAddress
	billing    secure.Address
	holderType AccountHolderType
	phone      *secure.PhoneNumber
}

func NewBNPL(in inputs.BNPL) (BNPL, error) {
	fullName, err := secure.NewFullName(in.FullName)
	if err != nil {
		return BNPL{}, err
	}
	email, err := secure.NewEmailAddress(in.Email)
	if err != nil {
		return BNPL{}, err
	}
	billing, err := secure.NewAddress(in.BillingAddress)
	if err != nil {
		return BNPL{}, err
	}
	holderType, err := NewAccountHolderType(in.HolderType)
	if err != nil {
		return BNPL{}, err
	}
	b := BNPL{fullName: fullName, email: email, billing: billing, holderType: holderType}
	if in.Phone != "" {
		phone, err := secure.NewPhoneNumber(in.Phone)
		if err != nil {
			return BNPL{}, err
		}
		b.phone = &phone
	}
	return b, nil
}

func (b BNPL) FullName() secure.FullName        { return b.fullName }
func (b BNPL) Email() secure.EmailAddress       { return b.email }
func (b BNPL) BillingAddress() secure.Address   { return b.billing }
func (b BNPL) HolderType() AccountHolderType    { return b.holderType }

func (b BNPL) Phone() (secure.PhoneNumber, bool) {
	if b.phone == nil {
		return secure.PhoneNumber{}, false
	}
	return *b.phone, true
}

func (BNPL) Descriptor() string { return "bnpl" }

// CashVoucher is a cash voucher scheme source (Boleto, OXXO).
type CashVoucher struct {
	fullName   secure.FullName
	nationalID *secure.NationalID
	billing    *secure.Address
}

func NewCashVoucher(in inputs.CashVoucher) (CashVoucher, error) {
	fullName, err := secure.NewFullName(in.FullName)
	if err != nil {
		return CashVoucher{}, err
	}
	v := CashVoucher{fullName: fullName}
	if in.NationalID != "" {
		nationalID, err := secure.NewNationalID(in.NationalID)
		if err != nil {
			return CashVoucher{}, err
		}
		v.nationalID = &nationalID
	}
	if in.BillingAddress != (inputs.Address{}) {
		billing, err := secure.NewAddress(in.BillingAddress)
		if err != nil {
			return CashVoucher{}, err
		}
		v.billing = &billing
	}
	return v, nil
}

func (v CashVoucher) FullName() secure.FullName { return v.fullName }

func (v CashVoucher) NationalID() (secure.NationalID, bool) {
	if v.nationalID == nil {
		return secure.NationalID{}, false
	}
	return *v.nationalID, true
}

func (v CashVoucher) BillingAddress() (secure.Address, bool) {
	if v.billing == nil {
		return secure.Address{}, false
	}
	return *v.billing, true
}

func (v CashVoucher) Wipe() {
	if v.nationalID != nil {
		v.nationalID.Wipe()
	}
}

func (CashVoucher) Descriptor() string { return "cash_voucher" }

// PaymentToken is a single-use gateway token standing in for raw
// credentials.
type PaymentToken struct {
	token secure.Token
}

func NewPaymentToken(in inputs.Token) (PaymentToken, error) {
	token, err := secure.NewToken(in.Value)
	if err != nil {
		return PaymentToken{}, err
	}
	return PaymentToken{token: token}, nil
}

func (t PaymentToken) Token() secure.Token { return t.token }
func (t PaymentToken) Wipe()               { t.token.Wipe() }
func (PaymentToken) Descriptor() string    { return "token" }

// VaultToken references a payment method stored in the gateway vault.
type VaultToken struct {
	token secure.Token
}

func NewVaultToken(in inputs.VaultToken) (VaultToken, error) {
	token, err := secure.NewToken(in.Value)
	if err != nil {
		return VaultToken{}, err
	}
	return VaultToken{token: token}, nil
}

func (t VaultToken) Token() secure.Token { return t.token }
func (t VaultToken) Wipe()               { t.token.Wipe() }
func (VaultToken) Descriptor() string    { return "vault_token" }

// StoredCredential is a saved payment method: a card SetupIntent result
// or a bank-debit mandate. The customer id is required for mandates and
// forbidden for self-contained card tokens.
type StoredCredential struct {
	token      secure.StoredCredentialToken
	customerID *secure.CustomerID
}

// NewCardCredential builds a self-contained card credential.
func NewCardCredential(rawToken string) (StoredCredential, error) {
	token, err := secure.NewStoredCredentialToken(rawToken)
	if err != nil {
		return StoredCredential{}, err
	}
	return StoredCredential{token: token}, nil
}

// NewMandateCredential builds a bank-debit mandate credential; the
// customer id is mandatory.
func NewMandateCredential(rawToken, rawCustomerID string) (StoredCredential, error) {
	token, err := secure.NewStoredCredentialToken(rawToken)
	if err != nil {
		return StoredCredential{}, err
	}
	customerID, err := secure.NewCustomerID(rawCustomerID)
	if err != nil {
		return StoredCredential{}, err
	}
	return StoredCredential{token: token, customerID: &customerID}, nil
}

// NewStoredCredential validates the boundary form: a customer id makes
// it a mandate, its absence a card token.
func NewStoredCredential(in inputs.StoredCredential) (StoredCredential, error) {
	if in.CustomerID == "" {
		return NewCardCredential(in.Token)
	}
	return NewMandateCredential(in.Token, in.CustomerID)
}

func (s StoredCredential) Token() secure.StoredCredentialToken { return s.token }

func (s StoredCredential) CustomerID() (secure.CustomerID, bool) {
	if s.customerID == nil {
		return secure.CustomerID{}, false
	}
	return *s.customerID, true
}

// IsMandate reports whether the credential is a bank-debit mandate.
func (s StoredCredential) IsMandate() bool { return s.customerID != nil }

func (s StoredCredential) Wipe()              { s.token.Wipe() }
func (StoredCredential) Descriptor() string   { return "stored_credential" }

// SecuredPayment is a payment method that passed 3-D Secure: the
// underlying authorized method plus the authentication evidence.
type SecuredPayment struct {
	method AuthorizedPaymentMethod
	eci    string
	cavv   secure.AuthorizationCode
}

// NewSecuredPayment wraps an authorized method with the 3DS result.
// ECI is the two-digit e-commerce indicator; CAVV is the cardholder
// authentication verification value.
func NewSecuredPayment(method AuthorizedPaymentMethod, eci string, cavv secure.AuthorizationCode) (SecuredPayment, error) {
	if len(eci) != 2 {
		return SecuredPayment{}, apperror.InvalidInput("eci must be exactly 2 characters")
	}
	return SecuredPayment{method: method, eci: eci, cavv: cavv}, nil
}

func (s SecuredPayment) Method() AuthorizedPaymentMethod { return s.method }
func (s SecuredPayment) ECI() string                     { return s.eci }
func (s SecuredPayment) CAVV() secure.AuthorizationCode  { return s.cavv }
func (s SecuredPayment) Wipe()                           { s.cavv.Wipe() }
func (SecuredPayment) Descriptor() string                { return "secured_payment" }

// Sealed-set membership. Every method is a PaymentMethod and an
// AuthorizedPaymentMethod (passthrough is always legal); the narrower
// sets are opted into per method.

func (CreditCard) isPaymentMethod()         {}
func (SEPAAccount) isPaymentMethod()        {}
func (BankAccount) isPaymentMethod()        {}
func (InstantBankAccount) isPaymentMethod() {}
func (BNPL) isPaymentMethod()               {}
func (CashVoucher) isPaymentMethod()        {}
func (PaymentToken) isPaymentMethod()       {}
func (VaultToken) isPaymentMethod()         {}
func (StoredCredential) isPaymentMethod()   {}
func (SecuredPayment) isPaymentMethod()     {}

func (CreditCard) isInternalPaymentMethod()         {}
func (SEPAAccount) isInternalPaymentMethod()        {}
func (BankAccount) isInternalPaymentMethod()        {}
func (InstantBankAccount) isInternalPaymentMethod() {}
func (PaymentToken) isInternalPaymentMethod()       {}
func (VaultToken) isInternalPaymentMethod()         {}
func (StoredCredential) isInternalPaymentMethod()   {}
func (SecuredPayment) isInternalPaymentMethod()     {}

func (BNPL) isExternalPaymentSource()         {}
func (CashVoucher) isExternalPaymentSource()  {}
func (PaymentToken) isExternalPaymentSource() {}

func (CreditCard) isStorablePaymentMethod()  {}
func (SEPAAccount) isStorablePaymentMethod() {}
func (BankAccount) isStorablePaymentMethod() {}

func (CreditCard) isTokenizablePaymentMethod()  {}
func (BankAccount) isTokenizablePaymentMethod() {}

func (CreditCard) isAuthorizedPaymentMethod()         {}
func (SEPAAccount) isAuthorizedPaymentMethod()        {}
func (BankAccount) isAuthorizedPaymentMethod()        {}
func (InstantBankAccount) isAuthorizedPaymentMethod() {}
func (BNPL) isAuthorizedPaymentMethod()               {}
func (CashVoucher) isAuthorizedPaymentMethod()        {}
func (PaymentToken) isAuthorizedPaymentMethod()       {}
func (VaultToken) isAuthorizedPaymentMethod()         {}
func (StoredCredential) isAuthorizedPaymentMethod()   {}

func (CreditCard) isSecuredPaymentMethod()         {}
func (SEPAAccount) isSecuredPaymentMethod()        {}
func (BankAccount) isSecuredPaymentMethod()        {}
func (InstantBankAccount) isSecuredPaymentMethod() {}
func (BNPL) isSecuredPaymentMethod()               {}
func (CashVoucher) isSecuredPaymentMethod()        {}
func (PaymentToken) isSecuredPaymentMethod()       {}
func (VaultToken) isSecuredPaymentMethod()         {}
func (StoredCredential) isSecuredPaymentMethod()   {}
func (SecuredPayment) isSecuredPaymentMethod()     {}
