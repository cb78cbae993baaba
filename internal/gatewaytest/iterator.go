package gatewaytest

import (
	"context"
	"sync"

	"merchantcore/flows"
	"merchantcore/types"
)

const recoverPageSize = 2

// memoryIterator walks a snapshot of transactions in pages. A page
// fault fails once at the page boundary and the next call retries, so
// a per-page error never terminates the sequence.
type memoryIterator struct {
	mu       sync.Mutex
	items    []types.Transaction
	pos      int
	pageSize int
	fault    func(page int) error
	faulted  map[int]struct{}
	closed   bool
}

func (it *memoryIterator) Next(ctx context.Context) (types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return types.Transaction{}, err
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	if it.closed || it.pos >= len(it.items) {
		return types.Transaction{}, flows.ErrDone
	}
	if it.pos%it.pageSize == 0 && it.fault != nil {
		page := it.pos / it.pageSize
		if _, done := it.faulted[page]; !done {
			if err := it.fault(page); err != nil {
				if it.faulted == nil {
					it.faulted = make(map[int]struct{})
				}
				it.faulted[page] = struct{}{}
				return types.Transaction{}, err
			}
		}
	}
	tx := it.items[it.pos]
	it.pos++
	return tx, nil
}

func (it *memoryIterator) Close() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.closed = true
	it.items = nil
	return nil
}
