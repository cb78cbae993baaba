// Package sensitive holds the byte-owning container behind every
// highly-sensitive value in the core.
//
// The container guarantees three things:
//
//   - default formatting never reveals content (fmt and slog both see the
//     fixed mask),
//   - raw access happens only through Expose or UnsafeRaw, both of which
//     place the leakage obligation on the caller,
//   - Wipe overwrites the backing storage, and WithWipe does so on every
//     exit path including panics.
//
// Go has no destructors, so release is an explicit contract: whoever owns
// the containing value calls Wipe (directly or via the owning type's own
// Wipe method) when the value goes out of use.
package sensitive

import (
	"crypto/subtle"
	"log/slog"
)

// Mask is the fixed rendering of every highly-sensitive value.
const Mask = "***"

// Secret owns a sensitive byte sequence.
type Secret struct {
	data  []byte
	wiped bool
}

// New copies s into a fresh container. The caller still owns s and should
// drop it as soon as possible.
func New(s string) *Secret {
	return &Secret{data: []byte(s)}
}

// Len returns the byte length of the content, or 0 after Wipe.
func (s *Secret) Len() int {
	if s == nil || s.wiped {
		return 0
	}
	return len(s.data)
}

// Wiped reports whether the backing storage has been cleared.
func (s *Secret) Wiped() bool {
	return s == nil || s.wiped
}

// Wipe overwrites the backing storage with zeros. Safe to call twice.
func (s *Secret) Wipe() {
	if s == nil || s.wiped {
		return
	}
	for i := range s.data {
		s.data[i] = 0
	}
	s.data = nil
	s.wiped = true
}

// Expose grants scoped access to the raw content. The string conversion
// copies the bytes, so the value handed to f is unaffected by a later
// Wipe; f must still not let it escape the callback.
func (s *Secret) Expose(f func(raw string) error) error {
	if s.Wiped() {
		return f("")
	}
	return f(string(s.data))
}

// UnsafeRaw returns the raw content. By calling it the caller asserts the
// value is handed only to another erase-on-release container or to an
// outgoing gateway request buffer that is cleared after use.
func (s *Secret) UnsafeRaw() string {
	if s.Wiped() {
		return ""
	}
	return string(s.data)
}

// Equal compares two secrets in constant time.
func (s *Secret) Equal(other *Secret) bool {
	if s.Wiped() || other.Wiped() {
		return s.Wiped() && other.Wiped()
	}
	return subtle.ConstantTimeCompare(s.data, other.data) == 1
}

// Clone copies the content into a new container with the same contract.
// This is the only sanctioned way to duplicate a sensitive value.
func (s *Secret) Clone() *Secret {
	if s.Wiped() {
		return &Secret{wiped: true}
	}
	d := make([]byte, len(s.data))
	copy(d, s.data)
	return &Secret{data: d}
}

// String implements fmt.Stringer with the fixed mask.
func (s *Secret) String() string { return Mask }

// GoString keeps %#v from reaching the fields.
func (s *Secret) GoString() string { return Mask }

// LogValue implements slog.LogValuer with the fixed mask.
func (s *Secret) LogValue() slog.Value { return slog.StringValue(Mask) }

// WithWipe runs f over the secret's content and wipes the secret on every
// exit path, normal or panicking. It is the scoped-acquisition helper for
// one-shot use of a sensitive value.
func WithWipe(s *Secret, f func(raw string) error) error {
	defer s.Wipe()
	return s.Expose(f)
}

// MaskTail renders a semi-sensitive value keeping the first and last
// character, e.g. "K******N". Values of length 2 or less mask fully.
func MaskTail(v string) string {
	r := []rune(v)
	if len(r) <= 2 {
		return Mask
	}
	masked := make([]rune, len(r))
	masked[0] = r[0]
	for i := 1; i < len(r)-1; i++ {
		masked[i] = '*'
	}
	masked[len(r)-1] = r[len(r)-1]
	return string(masked)
}
