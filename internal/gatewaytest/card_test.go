package gatewaytest

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"merchantcore/apperror"
	"merchantcore/flows"
	"merchantcore/inputs"
	"merchantcore/pkg/pointers"
	"merchantcore/types"
)

func testCard(t *testing.T) types.CreditCard {
	t.Helper()
	card, err := types.NewCreditCard(inputs.CreditCard{
		Number:      "4532 0151 1283 0366",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
		HolderName:  "john doe",
	})
	require.NoError(t, err)
	return card
}

func cardPayment(t *testing.T, key, total, base string) types.SplitPayment[types.CreditCard] {
	t.Helper()
	p, err := types.NewSplitPayment(testCard(t), inputs.Payment{
		Currency:       "USD",
		TotalAmount:    decimal.RequireFromString(total),
		BaseAmount:     decimal.RequireFromString(base),
		IdempotenceKey: key,
	}, nil)
	require.NoError(t, err)
	return p
}

func TestCardGateway_Charge(t *testing.T) {
	t.Parallel()

	g := NewCardGateway()
	ctx := context.Background()

	t.Run("should capture a valid card payment", func(t *testing.T) {
		// given
		payment := cardPayment(t, "pay-001", "100.00", "100.00")

		// when
		tx, err := g.Charge(ctx, payment, types.TotalPayment(), flows.ChargeOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, types.StatusCaptured, tx.Status)
		assert.Equal(t, "100.00 USD", tx.Amount.String())
		assert.Equal(t, "card", tx.MethodDescriptor)
		last4, _ := tx.Metadata.Get(types.MetaCardLast4)
		assert.Equal(t, "0366", last4)
		brand, _ := tx.Metadata.Get(types.MetaCardBrand)
		assert.Equal(t, "visa", brand)
	})

	t.Run("should replay an equal payload on the same key", func(t *testing.T) {
		// given
		payment := cardPayment(t, "pay-replay", "40.00", "40.00")
		first, err := g.Charge(ctx, payment, types.TotalPayment(), flows.ChargeOptions{})
		require.NoError(t, err)

		// when
		second, err := g.Charge(ctx, payment, types.TotalPayment(), flows.ChargeOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	})

	t.Run("should conflict on a different payload under the same key", func(t *testing.T) {
		// given
		_, err := g.Charge(ctx, cardPayment(t, "pay-conflict", "10.00", "10.00"), types.TotalPayment(), flows.ChargeOptions{})
		require.NoError(t, err)

		// when
		_, err = g.Charge(ctx, cardPayment(t, "pay-conflict", "11.00", "11.00"), types.TotalPayment(), flows.ChargeOptions{})

		// then
		assert.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("should conflict when recipients change under the same key", func(t *testing.T) {
		// given a charge with no distribution
		_, err := g.Charge(ctx, cardPayment(t, "pay-split-conflict", "100.00", "10.00"), types.TotalPayment(), flows.ChargeOptions{})
		require.NoError(t, err)

		// when the key replays with a recipient allocation
		split, err := types.NewSplitPayment(testCard(t), inputs.Payment{
			Currency:       "USD",
			TotalAmount:    decimal.RequireFromString("100.00"),
			BaseAmount:     decimal.RequireFromString("10.00"),
			IdempotenceKey: "pay-split-conflict",
		}, inputs.Recipients{
			"seller-1": {Amount: pointers.Ptr(decimal.RequireFromString("50.00"))},
		})
		require.NoError(t, err)
		_, err = g.Charge(ctx, split, types.TotalPayment(), flows.ChargeOptions{})

		// then
		assert.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("should conflict when the installment plan changes under the same key", func(t *testing.T) {
		// given
		_, err := g.Charge(ctx, cardPayment(t, "pay-plan-conflict", "90.00", "90.00"), types.TotalPayment(), flows.ChargeOptions{})
		require.NoError(t, err)

		// when the key replays split across three installments
		plan, err := types.NewFixedPlan(3)
		require.NoError(t, err)
		_, err = g.Charge(ctx, cardPayment(t, "pay-plan-conflict", "90.00", "90.00"), plan, flows.ChargeOptions{})

		// then
		assert.ErrorIs(t, err, apperror.ErrConflict)
	})
}

func TestCardGateway_DeferredFlow(t *testing.T) {
	t.Parallel()

	g := NewCardGateway()
	ctx := context.Background()

	// given an authorization of 80.00
	tx, err := g.Authorize(ctx, cardPayment(t, "pay-def-1", "80.00", "80.00"), types.TotalPayment(), flows.ChargeOptions{})
	require.NoError(t, err)
	require.Equal(t, types.StatusAuthorized, tx.Status)

	t.Run("should edit the authorized total", func(t *testing.T) {
		// when
		edited, err := g.EditAuthorization(ctx, tx.ID, decimal.RequireFromString("90.00"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "90.00 USD", edited.Amount.String())
		assert.Equal(t, types.StatusAuthorized, edited.Status)
	})

	t.Run("should reject an unchanged total", func(t *testing.T) {
		_, err := g.EditAuthorization(ctx, tx.ID, decimal.RequireFromString("90.00"))
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("should capture part of the authorization", func(t *testing.T) {
		// when
		captured, err := g.Capture(ctx, tx.ID, types.PartialCapture{
			Amount: pointers.Ptr(decimal.RequireFromString("60.00")),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, types.StatusCaptured, captured.Status)
		assert.Equal(t, "60.00 USD", captured.Amount.String())
	})

	t.Run("should refuse capturing a captured transaction", func(t *testing.T) {
		_, err := g.Capture(ctx, tx.ID, types.PartialCapture{})
		assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	})

	t.Run("should refund in parts up to the captured amount", func(t *testing.T) {
		// when
		first, err := g.Refund(ctx, tx.ID, types.PartialRefund{
			Amount: pointers.Ptr(decimal.RequireFromString("20.00")),
		})
		require.NoError(t, err)
		assert.Equal(t, types.StatusCaptured, first.Status)

		second, err := g.Refund(ctx, tx.ID, types.PartialRefund{})
		require.NoError(t, err)

		// then the remainder closes the transaction
		assert.Equal(t, types.StatusRefunded, second.Status)

		// and any further refund fails
		_, err = g.Refund(ctx, tx.ID, types.PartialRefund{
			Amount: pointers.Ptr(decimal.RequireFromString("0.01")),
		})
		assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	})
}

func TestCardGateway_VoidIdempotence(t *testing.T) {
	t.Parallel()

	g := NewCardGateway()
	ctx := context.Background()

	// given
	tx, err := g.Authorize(ctx, cardPayment(t, "pay-void-1", "30.00", "30.00"), types.TotalPayment(), flows.ChargeOptions{})
	require.NoError(t, err)

	// when
	first, err := g.Void(ctx, tx.ID)
	require.NoError(t, err)
	second, err := g.Void(ctx, tx.ID)
	require.NoError(t, err)

	// then
	assert.Equal(t, types.StatusVoided, first.Status)
	assert.True(t, first.Equal(second))
}

func TestCardGateway_RefundBeforeCapture(t *testing.T) {
	t.Parallel()

	g := NewCardGateway()
	ctx := context.Background()

	// given an authorization that was never captured
	tx, err := g.Authorize(ctx, cardPayment(t, "pay-early-refund", "30.00", "30.00"), types.TotalPayment(), flows.ChargeOptions{})
	require.NoError(t, err)

	// when a full refund is requested
	_, err = g.Refund(ctx, tx.ID, types.PartialRefund{})

	// then no funds move and the authorization stands
	assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	got, err := g.Status(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusAuthorized, got.Status)
}

func TestCardGateway_StoreAndUnstore(t *testing.T) {
	t.Parallel()

	g := NewCardGateway()
	ctx := context.Background()

	// given
	cred, err := g.Store(ctx, testCard(t))
	require.NoError(t, err)
	assert.False(t, cred.IsMandate())

	// when unstoring twice
	require.NoError(t, g.Unstore(ctx, cred.Token()))
	err = g.Unstore(ctx, cred.Token())

	// then the second removal also succeeds
	assert.NoError(t, err)
}

func TestCardGateway_Verify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should auto-void the zero-value authorization", func(t *testing.T) {
		// given
		g := NewCardGateway()

		// when
		id, err := g.VerifyPaymentMethod(ctx, testCard(t))

		// then
		require.NoError(t, err)
		tx, err := g.Status(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, types.StatusVoided, tx.Status)
		assert.True(t, tx.Amount.Amount.IsZero())
		assert.Equal(t, types.USD, tx.Amount.Currency)
	})

	t.Run("should verify in the configured currency", func(t *testing.T) {
		// given
		g := NewCardGateway()
		g.VerifyCurrency = types.EUR

		// when
		id, err := g.VerifyPaymentMethod(ctx, testCard(t))

		// then
		require.NoError(t, err)
		tx, err := g.Status(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, types.EUR, tx.Amount.Currency)
	})
}

func TestCardGateway_Recover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newLoadedGateway := func(t *testing.T, n int) (*CardGateway, []types.Transaction) {
		g := NewCardGateway()
		var want []types.Transaction
		for i := 0; i < n; i++ {
			tx, err := g.Charge(ctx, cardPayment(t, "pay-recover", "25.00", "25.00"), types.TotalPayment(), flows.ChargeOptions{})
			require.NoError(t, err)
			want = append(want, tx)
		}
		return g, want
	}

	t.Run("should yield every transaction under the key", func(t *testing.T) {
		// given a replayed charge recorded once
		g, want := newLoadedGateway(t, 3)
		payment := cardPayment(t, "pay-recover", "25.00", "25.00")

		it, err := g.Transactions(ctx, payment.IdempotenceKey)
		require.NoError(t, err)
		defer it.Close()

		// when
		var got []types.Transaction
		for {
			tx, err := it.Next(ctx)
			if err == flows.ErrDone {
				break
			}
			require.NoError(t, err)
			got = append(got, tx)
		}

		// then the replays deduplicated into one record
		require.Len(t, got, 1)
		assert.True(t, want[0].Equal(got[0]))
	})

	t.Run("should survive a page fault and resume", func(t *testing.T) {
		// given
		g, want := newLoadedGateway(t, 1)
		g.RecoverPageFault = func(page int) error {
			return apperror.GatewayTransient(true, "page %d fetch timed out", page)
		}

		payment := cardPayment(t, "pay-recover", "25.00", "25.00")
		it, err := g.Transactions(ctx, payment.IdempotenceKey)
		require.NoError(t, err)
		defer it.Close()

		// when the first pull hits the fault
		_, err = it.Next(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindGatewayTransient))

		// then the retry delivers the page and the sequence still ends
		tx, err := it.Next(ctx)
		require.NoError(t, err)
		assert.True(t, want[0].Equal(tx))

		_, err = it.Next(ctx)
		assert.ErrorIs(t, err, flows.ErrDone)
	})

	t.Run("should return done after close", func(t *testing.T) {
		g, _ := newLoadedGateway(t, 1)
		payment := cardPayment(t, "pay-recover", "25.00", "25.00")

		it, err := g.Transactions(ctx, payment.IdempotenceKey)
		require.NoError(t, err)
		require.NoError(t, it.Close())

		_, err = it.Next(ctx)
		assert.ErrorIs(t, err, flows.ErrDone)
	})
}

func TestCardGateway_ConcurrentCharges(t *testing.T) {
	t.Parallel()

	g := NewCardGateway()
	ctx := context.Background()

	// when forty goroutines charge under distinct keys
	group, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 40; i++ {
		key := fmt.Sprintf("pay-conc-%d", i)
		payment := cardPayment(t, key, "10.00", "10.00")
		group.Go(func() error {
			tx, err := g.Charge(gctx, payment, types.TotalPayment(), flows.ChargeOptions{})
			if err != nil {
				return err
			}
			if tx.Status != types.StatusCaptured {
				return fmt.Errorf("unexpected status %s", tx.Status)
			}
			return nil
		})
	}

	// then every charge lands
	require.NoError(t, group.Wait())
}
