package gatewaytest

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"merchantcore/apperror"
	"merchantcore/flows"
	"merchantcore/gateway"
	"merchantcore/secure"
	"merchantcore/types"
)

// CardGateway is the card reference adapter: split payments, base-region
// installments, one-step and two-step flows with edit-by-total changes,
// partial capture and refund, vaulting, tokenization and 3-D Secure.
type CardGateway struct {
	st *store

	mu              sync.Mutex
	vault           map[string]struct{}
	subs            map[string]*types.Subscription
	subByKey        map[string]string
	subFingerprints map[string]string

	// RecoverPageFault, when set, is consulted at every page boundary
	// during transaction recovery. A non-nil result fails that page once;
	// the next call retries it.
	RecoverPageFault func(page int) error

	// VerifyCurrency is the currency of zero-value verification
	// authorizations. Defaults to USD.
	VerifyCurrency types.Currency
}

func NewCardGateway() *CardGateway {
	return &CardGateway{
		st:              newStore(),
		vault:           make(map[string]struct{}),
		subs:            make(map[string]*types.Subscription),
		subByKey:        make(map[string]string),
		subFingerprints: make(map[string]string),
		VerifyCurrency:  types.USD,
	}
}

func cardMetadata(card types.CreditCard) types.Metadata {
	brand := "card"
	_ = card.Number().Expose(func(pan string) error {
		switch pan[0] {
		case '4':
			brand = "visa"
		case '5':
			brand = "mastercard"
		case '3':
			brand = "amex"
		}
		return nil
	})

	m := types.NewMetadata()
	_ = m.Set(types.MetaCardBrand, brand)
	_ = m.Set(types.MetaCardLast4, card.Number().Last4())
	_ = m.Set(types.MetaCardExpMonth, strconv.Itoa(card.Expiry().Month()))
	_ = m.Set(types.MetaCardExpYear, strconv.Itoa(card.Expiry().Year()))
	return m
}

func (g *CardGateway) Status(ctx context.Context, id secure.TransactionID) (types.Transaction, error) {
	return g.st.get(id)
}

func (g *CardGateway) Charge(ctx context.Context, p types.SplitPayment[types.CreditCard], plan types.Installments, opts flows.ChargeOptions) (types.Transaction, error) {
	fp := paymentFingerprint(p.Payment, recipientsFingerprint(p.Recipients), planFingerprint(plan))
	return g.st.create(p.IdempotenceKey, fp, func(id secure.TransactionID) (*record, error) {
		return &record{
			tx: types.Transaction{
				ID:               id,
				Status:           types.StatusCaptured,
				Amount:           types.Money{Amount: p.TotalAmount, Currency: p.Currency},
				MethodDescriptor: p.Method.Descriptor(),
				Metadata:         cardMetadata(p.Method),
			},
			authorized: p.TotalAmount,
			captured:   p.TotalAmount,
		}, nil
	})
}

// AuthorizationModel declares edit-by-total authorization changes.
func (g *CardGateway) AuthorizationModel() types.ChangesByTotal { return types.ChangesByTotal{} }

func (g *CardGateway) Authorize(ctx context.Context, p types.SplitPayment[types.CreditCard], plan types.Installments, opts flows.ChargeOptions) (types.Transaction, error) {
	fp := paymentFingerprint(p.Payment, recipientsFingerprint(p.Recipients), planFingerprint(plan))
	return g.st.create(p.IdempotenceKey, fp, func(id secure.TransactionID) (*record, error) {
		return &record{
			tx: types.Transaction{
				ID:               id,
				Status:           types.StatusAuthorized,
				Amount:           types.Money{Amount: p.TotalAmount, Currency: p.Currency},
				MethodDescriptor: p.Method.Descriptor(),
				Metadata:         cardMetadata(p.Method),
			},
			authorized: p.TotalAmount,
		}, nil
	})
}

func (g *CardGateway) Capture(ctx context.Context, id secure.TransactionID, scope types.PartialCapture) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if err := requireOperation(rec.tx.Status, types.OperationCapture); err != nil {
			return err
		}
		amount := rec.authorized
		if scope.Amount != nil {
			if !scope.Amount.IsPositive() {
				return apperror.InvalidInput("capture amount must be positive")
			}
			if scope.Amount.GreaterThan(rec.authorized) {
				return apperror.PreconditionFailed("capture amount exceeds the authorized amount")
			}
			amount = *scope.Amount
		}
		rec.captured = amount
		rec.tx.Status = types.StatusCaptured
		rec.tx.Amount = types.Money{Amount: amount, Currency: rec.tx.Amount.Currency}
		return nil
	})
}

func (g *CardGateway) EditAuthorization(ctx context.Context, id secure.TransactionID, newTotal decimal.Decimal) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if err := requireOperation(rec.tx.Status, types.OperationEditAuthorization); err != nil {
			return err
		}
		if !newTotal.IsPositive() {
			return apperror.InvalidInput("new total must be positive")
		}
		if newTotal.Equal(rec.authorized) {
			return apperror.InvalidInput("new total equals the current authorized amount")
		}
		rec.authorized = newTotal
		rec.tx.Amount = types.Money{Amount: newTotal, Currency: rec.tx.Amount.Currency}
		return nil
	})
}

func (g *CardGateway) Void(ctx context.Context, id secure.TransactionID) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if rec.tx.Status == types.StatusVoided {
			return nil
		}
		if err := requireOperation(rec.tx.Status, types.OperationVoid); err != nil {
			return err
		}
		rec.tx.Status = types.StatusVoided
		return nil
	})
}

func (g *CardGateway) Refund(ctx context.Context, id secure.TransactionID, scope types.PartialRefund) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if err := requireOperation(rec.tx.Status, types.OperationRefund); err != nil {
			return err
		}
		amount := rec.captured.Sub(rec.refunded)
		if scope.Amount != nil {
			if !scope.Amount.IsPositive() {
				return apperror.InvalidInput("refund amount must be positive")
			}
			amount = *scope.Amount
		}
		if !amount.IsPositive() {
			return apperror.PreconditionFailed("no captured funds to refund")
		}
		if rec.refunded.Add(amount).GreaterThan(rec.captured) {
			return apperror.PreconditionFailed("cumulative refunds exceed the captured amount")
		}
		rec.refunded = rec.refunded.Add(amount)
		if rec.refunded.Equal(rec.captured) {
			rec.tx.Status = types.StatusRefunded
		}
		return nil
	})
}

func (g *CardGateway) Store(ctx context.Context, method types.CreditCard) (types.StoredCredential, error) {
	raw := "cred-" + uuid.New().String()
	cred, err := types.NewCardCredential(raw)
	if err != nil {
		return types.StoredCredential{}, err
	}
	g.mu.Lock()
	g.vault[raw] = struct{}{}
	g.mu.Unlock()
	return cred, nil
}

func (g *CardGateway) Unstore(ctx context.Context, token secure.StoredCredentialToken) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.vault, token.UnsafeRaw())
	return nil
}

func (g *CardGateway) VerifyPaymentMethod(ctx context.Context, method types.CreditCard) (secure.TransactionID, error) {
	id := newTransactionID()
	g.st.add(&record{
		tx: types.Transaction{
			ID:               id,
			Status:           types.StatusVoided,
			Amount:           types.Money{Amount: decimal.Zero, Currency: g.VerifyCurrency},
			MethodDescriptor: method.Descriptor(),
			Metadata:         cardMetadata(method),
		},
	})
	return id, nil
}

func (g *CardGateway) Transactions(ctx context.Context, key secure.IdempotenceKey) (flows.TransactionIterator, error) {
	return &memoryIterator{
		items:    g.st.byIdempotenceKey(key),
		pageSize: recoverPageSize,
		fault:    g.RecoverPageFault,
	}, nil
}

func (g *CardGateway) Tokenize(ctx context.Context, method types.CreditCard) (secure.Token, error) {
	return secure.NewToken("tok-" + uuid.New().String())
}

func (g *CardGateway) Authenticate(ctx context.Context, method types.CreditCard, info *types.BrowserInfo) (types.SecuredPayment, *types.RequiredAction, error) {
	if info == nil {
		action := types.ChallengeAction([]byte("acs-challenge"))
		return types.SecuredPayment{}, &action, nil
	}
	return securedForm(method, "05")
}

func securedForm(method types.AuthorizedPaymentMethod, eci string) (types.SecuredPayment, *types.RequiredAction, error) {
	cavv, err := secure.NewAuthorizationCode(uuid.New().String())
	if err != nil {
		return types.SecuredPayment{}, nil, err
	}
	secured, err := types.NewSecuredPayment(method, eci, cavv)
	if err != nil {
		return types.SecuredPayment{}, nil, err
	}
	return secured, nil, nil
}

// AuthorizeMethod is the pipeline step: a SetupIntent exchanging the
// raw card for a reusable credential.
func (g *CardGateway) AuthorizeMethod(ctx context.Context, req gateway.AuthorizeRequest[types.CreditCard]) (gateway.AuthorizeResult[types.StoredCredential], error) {
	cred, err := g.Store(ctx, req.PaymentMethod)
	if err != nil {
		return gateway.AuthorizeResult[types.StoredCredential]{}, err
	}
	return gateway.AuthorizeResult[types.StoredCredential]{
		Method:   cred,
		Verified: true,
		Metadata: cardMetadata(req.PaymentMethod),
	}, nil
}

// Secure is the pipeline step: 3-D Secure for customer-initiated
// payments, passthrough for merchant-initiated ones.
func (g *CardGateway) Secure(ctx context.Context, req gateway.SecureRequest[types.StoredCredential]) (gateway.SecureResult[types.SecuredPayment], error) {
	if req.Initiator == types.InitiatorMerchant {
		secured, _, err := securedForm(req.PaymentMethod, "07")
		return gateway.SecureResult[types.SecuredPayment]{Method: secured}, err
	}
	if req.Confirmation == nil {
		action := types.ChallengeAction([]byte("acs-challenge"))
		return gateway.SecureResult[types.SecuredPayment]{Action: &action}, nil
	}
	secured, _, err := securedForm(req.PaymentMethod, "05")
	return gateway.SecureResult[types.SecuredPayment]{Method: secured}, err
}
