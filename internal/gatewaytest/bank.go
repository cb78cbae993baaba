package gatewaytest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"merchantcore/apperror"
	"merchantcore/flows"
	"merchantcore/gateway"
	"merchantcore/secure"
	"merchantcore/types"
)

// BankGateway is the direct-debit reference adapter: plain payments,
// no installments, two-step flow with delta adjustments and
// authorized-amount capture, reversals, and mandate credentials that
// verify through micro-deposit polling.
type BankGateway struct {
	st *store

	mu       sync.Mutex
	mandates map[string]*mandate
}

type mandate struct {
	credential types.StoredCredential
	mandateID  string
	verified   bool
	revoked    bool
}

func NewBankGateway() *BankGateway {
	return &BankGateway{
		st:       newStore(),
		mandates: make(map[string]*mandate),
	}
}

func bankMetadata(mandateID string) types.Metadata {
	m := types.NewMetadata()
	_ = m.Set(types.MetaMandateID, mandateID)
	return m
}

func (g *BankGateway) Status(ctx context.Context, id secure.TransactionID) (types.Transaction, error) {
	return g.st.get(id)
}

// AuthorizationModel declares delta authorization adjustments.
func (g *BankGateway) AuthorizationModel() types.ChangesByDelta { return types.ChangesByDelta{} }

func (g *BankGateway) Authorize(ctx context.Context, p types.Payment[types.BankAccount], plan types.NoInstallments, opts flows.ChargeOptions) (types.Transaction, error) {
	return g.st.create(p.IdempotenceKey, paymentFingerprint(p), func(id secure.TransactionID) (*record, error) {
		return &record{
			tx: types.Transaction{
				ID:               id,
				Status:           types.StatusAuthorized,
				Amount:           types.Money{Amount: p.TotalAmount, Currency: p.Currency},
				MethodDescriptor: p.Method.Descriptor(),
				Metadata:         types.NewMetadata(),
			},
			authorized: p.TotalAmount,
		}, nil
	})
}

func (g *BankGateway) Capture(ctx context.Context, id secure.TransactionID, scope types.CaptureAuthorized) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if err := requireOperation(rec.tx.Status, types.OperationCapture); err != nil {
			return err
		}
		rec.captured = rec.authorized
		rec.tx.Status = types.StatusCaptured
		rec.tx.Amount = types.Money{Amount: rec.authorized, Currency: rec.tx.Amount.Currency}
		return nil
	})
}

func (g *BankGateway) IncrementAuthorization(ctx context.Context, id secure.TransactionID, delta decimal.Decimal) (types.Transaction, error) {
	return g.adjust(id, delta, false)
}

func (g *BankGateway) DecrementAuthorization(ctx context.Context, id secure.TransactionID, delta decimal.Decimal) (types.Transaction, error) {
	return g.adjust(id, delta, true)
}

func (g *BankGateway) adjust(id secure.TransactionID, delta decimal.Decimal, decrement bool) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if err := requireOperation(rec.tx.Status, types.OperationAdjustAuthorization); err != nil {
			return err
		}
		if !delta.IsPositive() {
			return apperror.InvalidInput("adjustment delta must be positive")
		}
		if decrement {
			if delta.GreaterThan(rec.authorized) {
				return apperror.PreconditionFailed("decrement exceeds the authorized amount")
			}
			rec.authorized = rec.authorized.Sub(delta)
		} else {
			rec.authorized = rec.authorized.Add(delta)
		}
		rec.tx.Amount = types.Money{Amount: rec.authorized, Currency: rec.tx.Amount.Currency}
		return nil
	})
}

// Reverse unwinds through the debit rails: an authorization reversal
// releases the reservation, a captured reversal returns the funds.
func (g *BankGateway) Reverse(ctx context.Context, id secure.TransactionID, reason *types.ReversalReason) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if err := requireOperation(rec.tx.Status, types.OperationReverse); err != nil {
			return err
		}
		if rec.tx.Status == types.StatusAuthorized {
			rec.tx.Status = types.StatusVoided
		} else {
			rec.tx.Status = types.StatusRefunded
		}
		if reason != nil {
			rec.tx.Metadata = rec.tx.Metadata.Clone()
			_ = rec.tx.Metadata.Set("reversal.reason", string(*reason))
		}
		return nil
	})
}

// AuthorizeMethod creates a direct-debit mandate. Verified starts
// false: micro-deposit confirmation is pending until the credential is
// polled through CheckStoredCredential.
func (g *BankGateway) AuthorizeMethod(ctx context.Context, req gateway.AuthorizeRequest[types.BankAccount]) (gateway.AuthorizeResult[types.StoredCredential], error) {
	rawToken := "mtk-" + uuid.New().String()
	mandateID := "mnd-" + uuid.New().String()
	cred, err := types.NewMandateCredential(rawToken, "cus-"+uuid.New().String())
	if err != nil {
		return gateway.AuthorizeResult[types.StoredCredential]{}, err
	}

	g.mu.Lock()
	g.mandates[rawToken] = &mandate{credential: cred, mandateID: mandateID}
	g.mu.Unlock()

	return gateway.AuthorizeResult[types.StoredCredential]{
		Method:   cred,
		Verified: false,
		Metadata: bankMetadata(mandateID),
	}, nil
}

// Secure is a passthrough: strong customer authentication does not
// apply to merchant-initiated direct debits.
func (g *BankGateway) Secure(ctx context.Context, req gateway.SecureRequest[types.StoredCredential]) (gateway.SecureResult[types.StoredCredential], error) {
	return gateway.SecureResult[types.StoredCredential]{Method: req.PaymentMethod}, nil
}

// CheckStoredCredential polls the mandate; the reference implementation
// confirms micro-deposits on the first poll.
func (g *BankGateway) CheckStoredCredential(ctx context.Context, credential types.StoredCredential) (gateway.AuthorizeResult[types.StoredCredential], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.mandates[credential.Token().UnsafeRaw()]
	if !ok || m.revoked {
		return gateway.AuthorizeResult[types.StoredCredential]{}, apperror.PreconditionFailed("unknown or revoked mandate")
	}
	m.verified = true
	return gateway.AuthorizeResult[types.StoredCredential]{
		Method:   m.credential,
		Verified: m.verified,
		Metadata: bankMetadata(m.mandateID),
	}, nil
}

// RevokeStoredCredential is idempotent; revoking an unknown or already
// revoked mandate succeeds.
func (g *BankGateway) RevokeStoredCredential(ctx context.Context, credential types.StoredCredential) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if m, ok := g.mandates[credential.Token().UnsafeRaw()]; ok {
		m.revoked = true
	}
	return nil
}
