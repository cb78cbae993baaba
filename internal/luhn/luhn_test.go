package luhn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		number   string
		expected bool
	}{
		{name: "should accept a valid visa number", number: "4532015112830366", expected: true},
		{name: "should accept a valid mastercard number", number: "5425233430109903", expected: true},
		{name: "should reject a flipped check digit", number: "4532015112830367", expected: false},
		{name: "should reject a transposed pair", number: "4532015112830636", expected: false},
		{name: "should reject non-digits", number: "4532a15112830366", expected: false},
		{name: "should reject the empty string", number: "", expected: false},
		{name: "should accept a single zero", number: "0", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Valid(tc.number))
		})
	}
}
