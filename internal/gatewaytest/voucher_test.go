package gatewaytest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantcore/inputs"
	"merchantcore/types"
)

func voucherPayment(t *testing.T, key, total string) types.Payment[types.CashVoucher] {
	t.Helper()
	voucher, err := types.NewCashVoucher(inputs.CashVoucher{FullName: "maria souza"})
	require.NoError(t, err)
	p, err := types.NewPayment(voucher, inputs.Payment{
		Currency:       "BRL",
		TotalAmount:    decimal.RequireFromString(total),
		BaseAmount:     decimal.RequireFromString(total),
		IdempotenceKey: key,
	})
	require.NoError(t, err)
	return p
}

func TestVoucherGateway_ExternalFlow(t *testing.T) {
	t.Parallel()

	g := NewVoucherGateway()
	ctx := context.Background()

	// given
	payment := voucherPayment(t, "voucher-001", "59.90")

	// when
	initiated, err := g.Initiate(ctx, payment)

	// then the transaction waits for out-of-band payment
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, initiated.Transaction.Status)
	assert.Equal(t, "59.90 BRL", initiated.Transaction.Amount.String())

	code, ok := initiated.Data.VoucherCode()
	require.True(t, ok)
	assert.NotEmpty(t, code)

	t.Run("should return the originally issued code on replay", func(t *testing.T) {
		// when
		replayed, err := g.Initiate(ctx, payment)

		// then
		require.NoError(t, err)
		assert.True(t, initiated.Transaction.Equal(replayed.Transaction))
		replayedCode, _ := replayed.Data.VoucherCode()
		assert.Equal(t, code, replayedCode)
	})

	t.Run("should expose the data by transaction id", func(t *testing.T) {
		data, err := g.PaymentData(ctx, initiated.Transaction.ID)
		require.NoError(t, err)
		got, _ := data.VoucherCode()
		assert.Equal(t, code, got)
	})

	t.Run("should settle once the customer pays", func(t *testing.T) {
		// when
		settled, err := g.Settle(initiated.Transaction.ID)

		// then
		require.NoError(t, err)
		assert.Equal(t, types.StatusCaptured, settled.Status)

		// and polling observes the settlement
		polled, err := g.Status(ctx, initiated.Transaction.ID)
		require.NoError(t, err)
		assert.Equal(t, types.StatusCaptured, polled.Status)

		// and settling twice fails
		_, err = g.Settle(initiated.Transaction.ID)
		assert.Error(t, err)
	})
}

func TestVoucherGateway_VoidUnpaid(t *testing.T) {
	t.Parallel()

	g := NewVoucherGateway()
	ctx := context.Background()

	// given
	initiated, err := g.Initiate(ctx, voucherPayment(t, "voucher-void", "59.90"))
	require.NoError(t, err)

	// when
	voided, err := g.Void(ctx, initiated.Transaction.ID)
	require.NoError(t, err)
	again, err := g.Void(ctx, initiated.Transaction.ID)
	require.NoError(t, err)

	// then
	assert.Equal(t, types.StatusVoided, voided.Status)
	assert.True(t, voided.Equal(again))
}
