package flows

//go:generate mockgen -source recover.go -destination mock_recover.go -package flows

import (
	"context"
	"errors"

	"merchantcore/apperror"
	"merchantcore/secure"
	"merchantcore/types"
)

// ErrDone is returned by TransactionIterator.Next when the sequence is
// exhausted or the iterator has been closed.
var ErrDone = errors.New("transaction iterator done")

// TransactionIterator yields recovered transactions one at a time.
// It is finite, forward-only and not restartable.
//
// A non-ErrDone error from Next reports a failed page fetch; the
// iterator stays usable and the next call retries from the same
// position, unless the underlying cursor was invalidated, in which
// case every subsequent call keeps returning the same error.
// Close releases the cursor and is safe to call more than once.
type TransactionIterator interface {
	Next(ctx context.Context) (types.Transaction, error)
	Close() error
}

// RecoverTransactions looks up every transaction recorded under an
// idempotence key. For reconciling after a lost response: the caller
// replays the key and inspects what the gateway actually did.
// Cross-page deduplication is the caller's responsibility.
type RecoverTransactions interface {
	Transactions(ctx context.Context, key secure.IdempotenceKey) (TransactionIterator, error)
}

// drainRetries bounds consecutive retries of one failed page, so an
// invalidated cursor that keeps failing cannot spin forever.
const drainRetries = 3

// Drain consumes the iterator to the end, retrying a failed page while
// the error is marked retryable. It closes the iterator before
// returning. A non-retryable error, or a page that stays broken past
// the retry budget, aborts with the transactions collected so far.
func Drain(ctx context.Context, it TransactionIterator) ([]types.Transaction, error) {
	defer it.Close()

	var out []types.Transaction
	retries := 0
	for {
		tx, err := it.Next(ctx)
		switch {
		case err == nil:
			out = append(out, tx)
			retries = 0
		case errors.Is(err, ErrDone):
			return out, nil
		case apperror.IsRetryable(err) && retries < drainRetries:
			retries++
		default:
			return out, err
		}
	}
}
