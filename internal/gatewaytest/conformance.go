package gatewaytest

import (
	"merchantcore/flows"
	"merchantcore/gateway"
	"merchantcore/types"
)

// Capability conformance, checked at compile time.
//
// The negative side needs no assertion; the compiler enforces it:
//
//   - CardGateway declares AuthorizationModel() types.ChangesByTotal, so
//     flows.AdjustAuthorization can never match it: that instantiation
//     requires the ChangesByDelta variant of the same method, and one
//     type cannot carry both.
//   - BankGateway is the mirror image: no flows.EditAuthorization.
//   - VoucherGateway.Initiate takes types.Payment[types.CashVoucher];
//     handing it a card payment does not compile.
//   - flows.StoreCredentials[types.BNPL] is not a valid type at all:
//     BNPL does not implement the storable marker.
var (
	_ gateway.Gateway[
		types.SplitPayment[types.CreditCard], types.CreditCard,
		types.Installments, types.StoredCredential, types.SecuredPayment,
	] = (*CardGateway)(nil)

	_ flows.ImmediatePayments[types.SplitPayment[types.CreditCard], types.Installments]            = (*CardGateway)(nil)
	_ flows.EditAuthorization[types.SplitPayment[types.CreditCard], types.Installments, types.PartialCapture] = (*CardGateway)(nil)
	_ flows.CancelPayments                                                                         = (*CardGateway)(nil)
	_ flows.RefundPayments[types.PartialRefund]                                                    = (*CardGateway)(nil)
	_ flows.StoreCredentials[types.CreditCard]                                                     = (*CardGateway)(nil)
	_ flows.VerifyAuthorization[types.CreditCard]                                                  = (*CardGateway)(nil)
	_ flows.RecoverTransactions                                                                    = (*CardGateway)(nil)
	_ flows.TokenizePayments[types.CreditCard]                                                     = (*CardGateway)(nil)
	_ flows.ThreeDSecure[types.CreditCard]                                                         = (*CardGateway)(nil)
	_ flows.PauseSubscriptions[types.SplitPayment[types.CreditCard]]                               = (*CardGateway)(nil)
	_ flows.EditSubscriptionAmount[types.SplitPayment[types.CreditCard]]                           = (*CardGateway)(nil)
	_ flows.EditSubscriptionInterval[types.SplitPayment[types.CreditCard]]                         = (*CardGateway)(nil)
	_ flows.EditSubscriptionRecipients[types.CreditCard]                                           = (*CardGateway)(nil)

	_ gateway.Gateway[
		types.Payment[types.BankAccount], types.BankAccount,
		types.NoInstallments, types.StoredCredential, types.StoredCredential,
	] = (*BankGateway)(nil)

	_ flows.AdjustAuthorization[types.Payment[types.BankAccount], types.NoInstallments, types.CaptureAuthorized] = (*BankGateway)(nil)
	_ flows.ReversePayment                                                                                       = (*BankGateway)(nil)
	_ gateway.CredentialAuthorizer                                                                               = (*BankGateway)(nil)

	_ flows.ExternalPayments[types.CashVoucher] = (*VoucherGateway)(nil)
	_ flows.CancelPayments                      = (*VoucherGateway)(nil)
)
