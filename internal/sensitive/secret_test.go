package sensitive

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_Wipe(t *testing.T) {
	t.Parallel()

	t.Run("should clear content and stay cleared", func(t *testing.T) {
		// given
		s := New("4532015112830366")
		require.Equal(t, 16, s.Len())

		// when
		s.Wipe()
		s.Wipe()

		// then
		assert.True(t, s.Wiped())
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, "", s.UnsafeRaw())
	})

	t.Run("should hand out a copy that survives a later wipe", func(t *testing.T) {
		// given
		s := New("tok-0123456789abcdef")

		// when
		var seen string
		err := s.Expose(func(raw string) error {
			seen = raw
			return nil
		})
		s.Wipe()

		// then
		require.NoError(t, err)
		assert.Equal(t, "tok-0123456789abcdef", seen)
		assert.Equal(t, "", s.UnsafeRaw())
	})

	t.Run("should expose empty content after wipe", func(t *testing.T) {
		// given
		s := New("secret-value-123")
		s.Wipe()

		// when
		var seen string
		err := s.Expose(func(raw string) error {
			seen = raw
			return nil
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "", seen)
	})
}

func TestWithWipe(t *testing.T) {
	t.Parallel()

	t.Run("should wipe after the callback returns", func(t *testing.T) {
		// given
		s := New("tok-0123456789abcdef")

		// when
		err := WithWipe(s, func(raw string) error {
			assert.Equal(t, "tok-0123456789abcdef", raw)
			return nil
		})

		// then
		require.NoError(t, err)
		assert.True(t, s.Wiped())
	})

	t.Run("should wipe when the callback fails", func(t *testing.T) {
		// given
		s := New("tok-0123456789abcdef")
		boom := errors.New("gateway down")

		// when
		err := WithWipe(s, func(string) error { return boom })

		// then
		assert.ErrorIs(t, err, boom)
		assert.True(t, s.Wiped())
	})

	t.Run("should wipe when the callback panics", func(t *testing.T) {
		// given
		s := New("tok-0123456789abcdef")

		// when
		assert.Panics(t, func() {
			_ = WithWipe(s, func(string) error { panic("boom") })
		})

		// then
		assert.True(t, s.Wiped())
	})
}

func TestSecret_Formatting(t *testing.T) {
	t.Parallel()

	// given
	s := New("4532015112830366")

	// then
	assert.Equal(t, Mask, s.String())
	assert.Equal(t, Mask, fmt.Sprintf("%v", s))
	assert.Equal(t, Mask, fmt.Sprintf("%#v", s))
	assert.NotContains(t, fmt.Sprintf("%s %v %#v", s, s, s), "4532")
}

func TestSecret_Equal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     *Secret
		expected bool
	}{
		{name: "should match equal content", a: New("same-value-12345"), b: New("same-value-12345"), expected: true},
		{name: "should reject different content", a: New("same-value-12345"), b: New("other-value-9999"), expected: false},
		{name: "should match two wiped secrets", a: &Secret{wiped: true}, b: &Secret{wiped: true}, expected: true},
		{name: "should reject wiped against live", a: &Secret{wiped: true}, b: New("live-value-00001"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
		})
	}
}

func TestMaskTail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "should keep first and last character", value: "KAROLIN", expected: "K*****N"},
		{name: "should mask short values fully", value: "ab", expected: Mask},
		{name: "should mask the empty string", value: "", expected: Mask},
		{name: "should handle multibyte runes", value: "łódź", expected: "ł**ź"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskTail(tc.value))
		})
	}
}
