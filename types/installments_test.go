package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantcore/apperror"
)

func TestFixedPlans(t *testing.T) {
	t.Parallel()

	t.Run("should accept counts between two and ninety-nine", func(t *testing.T) {
		for _, count := range []int{2, 12, 99} {
			plan, err := NewFixedPlan(count)
			require.NoError(t, err)
			assert.Equal(t, KindFixedPlan, plan.Kind())
			assert.Equal(t, count, plan.Count())
		}
	})

	t.Run("should reject a count of one with the canonical message", func(t *testing.T) {
		// when
		_, err := NewFixedPlanGCC(1, true)

		// then
		require.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.ErrorContains(t, err, "Installment count must be at least 2")
	})

	t.Run("should reject a count above ninety-nine", func(t *testing.T) {
		_, err := NewFixedPlan(100)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("should carry the shariah flag on gulf plans", func(t *testing.T) {
		plan, err := NewFixedPlanGCC(6, true)
		require.NoError(t, err)
		assert.True(t, plan.ShariahCompliant())
		assert.Equal(t, 6, plan.Count())
	})
}

func TestJapanPlans(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindRevolvingPlan, RevolvingPlanJP().Kind())
	assert.Equal(t, KindBonusPlan, BonusPlanJP().Kind())
	assert.Equal(t, KindTotalPayment, TotalPaymentJP().Kind())
}

func TestMexicoPlans(t *testing.T) {
	t.Parallel()

	t.Run("should expose the closed msi set", func(t *testing.T) {
		assert.Equal(t, 1, MexicoSingle.Months())
		assert.Equal(t, 3, MexicoThree.Months())
		assert.Equal(t, 6, MexicoSix.Months())
		assert.Equal(t, 9, MexicoNine.Months())
		assert.Equal(t, 12, MexicoTwelve.Months())
		assert.Equal(t, 18, MexicoEighteen.Months())
	})

	t.Run("should accept a stored plan id", func(t *testing.T) {
		// when
		plan, err := NewMexicoPlanID("plan-mx-552")

		// then
		require.NoError(t, err)
		id, ok := plan.PlanID()
		require.True(t, ok)
		assert.Equal(t, "plan-mx-552", id.Value())
	})

	t.Run("should reject an empty plan id", func(t *testing.T) {
		_, err := NewMexicoPlanID("")
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}

func TestStoredPlans(t *testing.T) {
	t.Parallel()

	// given
	plan, err := NewStoredPlan("plan-77")

	// then
	require.NoError(t, err)
	assert.Equal(t, KindStoredPlan, plan.Kind())
	assert.Equal(t, "plan-77", plan.PlanID().Value())

	_, err = NewStoredPlan("  ")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
