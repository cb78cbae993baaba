// Package gatewaytest provides in-memory reference adapters used by
// the test suite. They honor the capability contracts without any
// network I/O; transaction state lives in process memory.
package gatewaytest

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"merchantcore/apperror"
	"merchantcore/secure"
	"merchantcore/types"
)

// record is the adapter-side view of one transaction: the caller
// snapshot plus the amounts the capability contracts reason about.
type record struct {
	tx          types.Transaction
	authorized  decimal.Decimal
	captured    decimal.Decimal
	refunded    decimal.Decimal
	key         string
	fingerprint string
	data        types.ExternalPaymentData
}

// store holds transactions for one adapter instance. All access goes
// through the mutex; adapters are safe for concurrent use.
type store struct {
	mu      sync.Mutex
	records map[string]*record
	byKey   map[string]string
	order   []string
}

func newStore() *store {
	return &store{
		records: make(map[string]*record),
		byKey:   make(map[string]string),
	}
}

func newTransactionID() secure.TransactionID {
	id, err := secure.NewTransactionID("tx-" + uuid.New().String())
	if err != nil {
		panic(err)
	}
	return id
}

// create registers a new transaction under the idempotence key.
// Replaying the key with an equal fingerprint returns the original
// record; a different fingerprint is a conflict.
func (s *store) create(key secure.IdempotenceKey, fingerprint string, build func(id secure.TransactionID) (*record, error)) (types.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byKey[key.Value()]; ok {
		rec := s.records[existing]
		if rec.fingerprint != fingerprint {
			return types.Transaction{}, apperror.Conflict("idempotence key reused with a different payload")
		}
		return rec.tx, nil
	}

	id := newTransactionID()
	rec, err := build(id)
	if err != nil {
		return types.Transaction{}, err
	}
	rec.key = key.Value()
	rec.fingerprint = fingerprint
	s.records[id.Value()] = rec
	s.byKey[key.Value()] = id.Value()
	s.order = append(s.order, id.Value())
	return rec.tx, nil
}

// add registers a transaction with no idempotence key (verifications).
func (s *store) add(rec *record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.tx.ID.Value()] = rec
	s.order = append(s.order, rec.tx.ID.Value())
}

func (s *store) get(id secure.TransactionID) (types.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Value()]
	if !ok {
		return types.Transaction{}, apperror.PreconditionFailed("transaction %s not found", id)
	}
	return rec.tx, nil
}

// update applies f to the record under the lock and returns the
// resulting snapshot.
func (s *store) update(id secure.TransactionID, f func(*record) error) (types.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Value()]
	if !ok {
		return types.Transaction{}, apperror.PreconditionFailed("transaction %s not found", id)
	}
	if err := f(rec); err != nil {
		return types.Transaction{}, err
	}
	return rec.tx, nil
}

// byIdempotenceKey snapshots every transaction recorded under the key,
// in creation order.
func (s *store) byIdempotenceKey(key secure.IdempotenceKey) []types.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.Transaction
	for _, id := range s.order {
		if rec := s.records[id]; rec.key == key.Value() {
			out = append(out, rec.tx)
		}
	}
	return out
}

func requireOperation(status types.TransactionStatus, op types.Operation) error {
	if !status.Allows(op) {
		return apperror.PreconditionFailed("%s is not allowed in status %s", op, status)
	}
	return nil
}

// paymentFingerprint canonically encodes the payload replayed under an
// idempotence key. Extra parts (recipients, plan, interval) join the
// base encoding so any payload change surfaces as a conflict.
func paymentFingerprint[M types.PaymentMethod](p types.Payment[M], extra ...string) string {
	base := fmt.Sprintf("%s|%s|%s|%s",
		p.Method.Descriptor(), p.Currency, p.TotalAmount.String(), p.BaseAmount.String())
	if len(extra) == 0 {
		return base
	}
	return base + "|" + strings.Join(extra, "|")
}

// recipientsFingerprint encodes a distribution order-independently:
// ids sorted, each with its allocation form and value.
func recipientsFingerprint(r *types.Recipients) string {
	if r == nil {
		return "rcp:none"
	}
	alloc := r.Allocations()
	ids := make([]string, 0, len(alloc))
	for id := range alloc {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("rcp:")
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		v := alloc[id]
		form := "amount"
		if v.IsPercent() {
			form = "percent"
		}
		fmt.Fprintf(&b, "%s=%s:%s", id, form, v.Value().String())
	}
	return b.String()
}

func planFingerprint(plan types.Installments) string {
	return fmt.Sprintf("plan:%s:%d:%s", plan.Kind(), plan.Count(), plan.PlanID().Value())
}
