package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantcore/apperror"
	"merchantcore/inputs"
	"merchantcore/pkg/pointers"
)

func validCardInput() inputs.CreditCard {
	return inputs.CreditCard{
		Number:      "4532 0151 1283 0366",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
		HolderName:  "john doe",
	}
}

func validPaymentInput() inputs.Payment {
	return inputs.Payment{
		Currency:       "USD",
		TotalAmount:    decimal.RequireFromString("100.00"),
		BaseAmount:     decimal.RequireFromString("100.00"),
		IdempotenceKey: "pay-001",
	}
}

func TestNewCreditCard(t *testing.T) {
	t.Parallel()

	t.Run("should construct from valid input", func(t *testing.T) {
		// when
		card, err := NewCreditCard(validCardInput())

		// then
		require.NoError(t, err)
		assert.Equal(t, "0366", card.Number().Last4())
		assert.Equal(t, 12, card.Expiry().Month())
		assert.Equal(t, 2030, card.Expiry().Year())
		cvv, ok := card.CVV()
		require.True(t, ok)
		assert.Equal(t, "123", cvv.UnsafeRaw())
		holder, ok := card.Holder()
		require.True(t, ok)
		assert.Equal(t, "john doe", holder.Value())
	})

	t.Run("should reject a bad check digit without side effects", func(t *testing.T) {
		// given
		in := validCardInput()
		in.Number = "4532 0151 1283 0367"

		// when
		_, err := NewCreditCard(in)

		// then
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("should treat cvv and holder as optional", func(t *testing.T) {
		// given
		in := validCardInput()
		in.CVV = ""
		in.HolderName = ""

		// when
		card, err := NewCreditCard(in)

		// then
		require.NoError(t, err)
		_, ok := card.CVV()
		assert.False(t, ok)
		_, ok = card.Holder()
		assert.False(t, ok)
	})
}

func TestNewPayment(t *testing.T) {
	t.Parallel()

	card, err := NewCreditCard(validCardInput())
	require.NoError(t, err)

	t.Run("should construct from valid input", func(t *testing.T) {
		// when
		payment, err := NewPayment(card, validPaymentInput())

		// then
		require.NoError(t, err)
		assert.Equal(t, USD, payment.Currency)
		assert.Equal(t, "100.00 USD", payment.Total().String())
		assert.Equal(t, "pay-001", payment.IdempotenceKey.Value())
	})

	t.Run("should reject base above total", func(t *testing.T) {
		// given
		in := validPaymentInput()
		in.BaseAmount = decimal.RequireFromString("100.01")

		// when
		_, err := NewPayment(card, in)

		// then
		assert.ErrorIs(t, err, apperror.ErrValidationFailed)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		in := validPaymentInput()
		in.TotalAmount = decimal.RequireFromString("-1")
		in.BaseAmount = decimal.RequireFromString("-1")

		_, err := NewPayment(card, in)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("should reject an unknown currency", func(t *testing.T) {
		in := validPaymentInput()
		in.Currency = "DOGE"

		_, err := NewPayment(card, in)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}

func TestNewSplitPayment(t *testing.T) {
	t.Parallel()

	card, err := NewCreditCard(validCardInput())
	require.NoError(t, err)

	t.Run("should accept allocations within the total", func(t *testing.T) {
		// given base 100 of total 200, recipients 50 + 10% = 70
		in := validPaymentInput()
		in.TotalAmount = decimal.RequireFromString("200.00")
		rec := inputs.Recipients{
			"merchant_a": {Amount: pointers.Ptr(decimal.RequireFromString("50.00"))},
			"merchant_b": {Percent: pointers.Ptr(decimal.RequireFromString("10.0"))},
		}

		// when
		sp, err := NewSplitPayment(card, in, rec)

		// then
		require.NoError(t, err)
		require.NotNil(t, sp.Recipients)
		assert.Equal(t, 2, sp.Recipients.Len())
	})

	t.Run("should reject allocations that break the total", func(t *testing.T) {
		// given base 100 of total 100 leaves nothing to distribute
		rec := inputs.Recipients{
			"merchant_a": {Amount: pointers.Ptr(decimal.RequireFromString("0.01"))},
		}

		// when
		_, err := NewSplitPayment(card, validPaymentInput(), rec)

		// then
		assert.ErrorIs(t, err, apperror.ErrValidationFailed)
	})

	t.Run("should allow absent recipients", func(t *testing.T) {
		// when
		sp, err := NewSplitPayment(card, validPaymentInput(), nil)

		// then
		require.NoError(t, err)
		assert.Nil(t, sp.Recipients)
	})
}
