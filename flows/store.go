package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// StoreCredentials vaults a payment method for later use. Only
// vaultable methods (cards, bank mandates) satisfy the constraint.
//
// Unstore is idempotent: revoking a token that is already revoked or
// was never issued succeeds.
type StoreCredentials[M types.StorablePaymentMethod] interface {
	Store(ctx context.Context, method M) (types.StoredCredential, error)

	Unstore(ctx context.Context, token secure.StoredCredentialToken) error
}
