package secure

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"merchantcore/internal/sensitive"
)

// No default rendering of a highly-sensitive container may contain any
// substring of length four or more of the raw value.
func TestHighlySensitiveFormattingLeaksNothing(t *testing.T) {
	t.Parallel()

	pan, err := NewPrimaryAccountNumber("4532015112830366")
	require.NoError(t, err)
	cvv, err := NewCVV("123")
	require.NoError(t, err)
	account, err := NewAccountNumber("000123456789")
	require.NoError(t, err)
	routing, err := NewRoutingNumber("021000021")
	require.NoError(t, err)
	iban, err := NewIBAN("DE89370400440532013000")
	require.NoError(t, err)
	token, err := NewToken("tok-f81a02c944b34de")
	require.NoError(t, err)
	stored, err := NewStoredCredentialToken("cred-81a02c944b34d")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		value any
		raw   string
	}{
		{name: "pan", value: pan, raw: "4532015112830366"},
		{name: "cvv", value: cvv, raw: "123"},
		{name: "account number", value: account, raw: "000123456789"},
		{name: "routing number", value: routing, raw: "021000021"},
		{name: "iban", value: iban, raw: "DE89370400440532013000"},
		{name: "token", value: token, raw: "tok-f81a02c944b34de"},
		{name: "stored credential token", value: stored, raw: "cred-81a02c944b34d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rendered := fmt.Sprintf("%v %s %#v %+v", tc.value, tc.value, tc.value, tc.value)
			for i := 0; i+4 <= len(tc.raw); i++ {
				require.NotContains(t, rendered, tc.raw[i:i+4])
			}
		})
	}
}

// PII keeps only the first and last character in its default rendering.
func TestSemiSensitiveFormattingMasksTail(t *testing.T) {
	t.Parallel()

	name, err := NewFullName("Karolin Meier")
	require.NoError(t, err)
	email, err := NewEmailAddress("karolin@example.com")
	require.NoError(t, err)
	phone, err := NewPhoneNumber("+4915123456789")
	require.NoError(t, err)

	require.Equal(t, "K***********r", name.String())
	require.True(t, strings.HasPrefix(email.String(), "k"))
	require.NotContains(t, email.String(), "arolin")
	require.NotContains(t, phone.String(), "151234")
}

// Wrapping in a struct must not expose the raw value either.
func TestContainingStructFormattingLeaksNothing(t *testing.T) {
	t.Parallel()

	pan, err := NewPrimaryAccountNumber("4532015112830366")
	require.NoError(t, err)

	wrapper := struct {
		Number PrimaryAccountNumber
		Note   string
	}{Number: pan, Note: "checkout"}

	rendered := fmt.Sprintf("%v %+v", wrapper, wrapper)
	require.NotContains(t, rendered, "4532")
	require.Contains(t, rendered, sensitive.Mask)
}
