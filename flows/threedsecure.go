package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// ThreeDSecure runs a strong-customer-authentication challenge for a
// payment method outside the regular pipeline. Authenticate returns
// the secured form carrying the authentication proof, or a challenge
// action when the customer must be involved first.
type ThreeDSecure[M types.AuthorizedPaymentMethod] interface {
	Authenticate(ctx context.Context, method M, info *types.BrowserInfo) (types.SecuredPayment, *types.RequiredAction, error)
}

// TokenizePayments exchanges raw credentials for a single-use gateway
// token. The raw value never reaches the gateway again; subsequent
// calls present the token instead.
type TokenizePayments[M types.TokenizablePaymentMethod] interface {
	Tokenize(ctx context.Context, method M) (secure.Token, error)
}
