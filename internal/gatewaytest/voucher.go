package gatewaytest

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"merchantcore/apperror"
	"merchantcore/secure"
	"merchantcore/types"
)

// VoucherGateway is the external-completion reference adapter: it
// issues cash-voucher codes and waits for out-of-band settlement.
type VoucherGateway struct {
	st *store
}

func NewVoucherGateway() *VoucherGateway {
	return &VoucherGateway{st: newStore()}
}

func (g *VoucherGateway) Status(ctx context.Context, id secure.TransactionID) (types.Transaction, error) {
	return g.st.get(id)
}

func (g *VoucherGateway) Initiate(ctx context.Context, p types.Payment[types.CashVoucher]) (types.ExternalPayment, error) {
	code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	data := types.NewExternalPaymentData(map[string]string{
		types.ExternalVoucherCode: code,
	})

	tx, err := g.st.create(p.IdempotenceKey, paymentFingerprint(p), func(id secure.TransactionID) (*record, error) {
		return &record{
			tx: types.Transaction{
				ID:               id,
				Status:           types.StatusPending,
				Amount:           types.Money{Amount: p.TotalAmount, Currency: p.Currency},
				MethodDescriptor: p.Method.Descriptor(),
				Metadata:         types.NewMetadata(),
			},
			data: data,
		}, nil
	})
	if err != nil {
		return types.ExternalPayment{}, err
	}

	// A replayed key returns the originally issued data, not the fresh code.
	stored, err := g.PaymentData(ctx, tx.ID)
	if err != nil {
		return types.ExternalPayment{}, err
	}
	return types.ExternalPayment{Transaction: tx, Data: stored}, nil
}

func (g *VoucherGateway) PaymentData(ctx context.Context, id secure.TransactionID) (types.ExternalPaymentData, error) {
	g.st.mu.Lock()
	defer g.st.mu.Unlock()
	rec, ok := g.st.records[id.Value()]
	if !ok {
		return types.ExternalPaymentData{}, apperror.PreconditionFailed("transaction %s not found", id)
	}
	return rec.data, nil
}

// Settle marks a pending voucher as paid, standing in for the
// out-of-band settlement webhook.
func (g *VoucherGateway) Settle(id secure.TransactionID) (types.Transaction, error) {
	return g.st.update(id, func(rec *record) error {
		if rec.tx.Status != types.StatusPending {
			return apperror.PreconditionFailed("only a pending voucher can settle")
		}
		rec.tx.Status = types.StatusCaptured
		return nil
	})
}

// Void cancels an unpaid voucher. Idempotent like the card flow.
func (g *VoucherGateway) Void(ctx context.Context, id secure.TransactionID) (types.Transaction, error) {
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
