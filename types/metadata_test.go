package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantcore/apperror"
	"merchantcore/inputs"
)

func TestMetadata_Set(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "should accept a reserved key", key: MetaCardLast4, value: "0366"},
		{name: "should accept an adapter key", key: "acquirer.batch", value: "b-2911"},
		{name: "should reject an empty key", key: "", value: "x", wantErr: true},
		{name: "should reject a key above sixty-four characters", key: strings.Repeat("k", 65), value: "x", wantErr: true},
		{name: "should reject a key with spaces", key: "card last4", value: "x", wantErr: true},
		{name: "should reject an empty value", key: "k", value: "", wantErr: true},
		{name: "should reject a value above the limit", key: "k", value: strings.Repeat("v", 4097), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			m := NewMetadata()

			// when
			err := m.Set(tc.key, tc.value)

			// then
			if tc.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			v, ok := m.Get(tc.key)
			assert.True(t, ok)
			assert.Equal(t, tc.value, v)
		})
	}
}

func TestMetadata_CloneAndEqual(t *testing.T) {
	t.Parallel()

	// given
	m := NewMetadata()
	require.NoError(t, m.Set(MetaCardBrand, "visa"))
	require.NoError(t, m.Set(MetaCardLast4, "0366"))

	// when
	c := m.Clone()

	// then
	assert.True(t, m.Equal(c))
	require.NoError(t, c.Set(MetaCardBrand, "mastercard"))
	assert.False(t, m.Equal(c))
	v, _ := m.Get(MetaCardBrand)
	assert.Equal(t, "visa", v)
}

func TestNewStoredCredential(t *testing.T) {
	t.Parallel()

	t.Run("should build a card token without customer id", func(t *testing.T) {
		// when
		cred, err := NewStoredCredential(inputs.StoredCredential{Token: "cred-81a02c944b34d"})

		// then
		require.NoError(t, err)
		assert.False(t, cred.IsMandate())
		_, ok := cred.CustomerID()
		assert.False(t, ok)
	})

	t.Run("should build a mandate with customer id", func(t *testing.T) {
		// when
		cred, err := NewStoredCredential(inputs.StoredCredential{
			Token:      "mtk-81a02c944b34d",
			CustomerID: "cus-42",
		})

		// then
		require.NoError(t, err)
		assert.True(t, cred.IsMandate())
		id, ok := cred.CustomerID()
		require.True(t, ok)
		assert.Equal(t, "cus-42", id.Value())
	})

	t.Run("should reject a mandate without customer id", func(t *testing.T) {
		_, err := NewMandateCredential("mtk-81a02c944b34d", "")
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("should reject a short token", func(t *testing.T) {
		_, err := NewCardCredential("short")
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}
