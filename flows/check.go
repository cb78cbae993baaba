package flows

import (
	"context"

	"merchantcore/secure"
	"merchantcore/types"
)

// CheckTransaction is the mandatory base capability: transaction status
// lookup by id. It backs webhook verification, reconciliation, support
// lookups and completion polling for external flows.
type CheckTransaction interface {
	// Status retrieves the current transaction record. Read-only and
	// idempotent.
	Status(ctx context.Context, id secure.TransactionID) (types.Transaction, error)
}
