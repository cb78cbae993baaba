package secure

import (
	"log/slog"
	"strings"

	"merchantcore/apperror"
	"merchantcore/internal/sensitive"
)

// newTokenValue validates a gateway token: trim, 16..=255 printable
// non-whitespace characters.
func newTokenValue(kind, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if len([]rune(v)) < 16 || len([]rune(v)) > 255 {
		return "", apperror.InvalidInput("%s must be 16 to 255 characters", kind)
	}
	if !printableNoSpace(v) {
		return "", apperror.InvalidInput("%s must contain only printable non-whitespace characters", kind)
	}
	return v, nil
}

// Token is a single-use gateway token exchanged for raw credentials.
// A token grants charge authority, so it carries the same protection
// as the credentials it replaces.
type Token struct {
	secret *sensitive.Secret
}

func NewToken(raw string) (Token, error) {
	v, err := newTokenValue("token", raw)
	if err != nil {
		return Token{}, err
	}
	return Token{secret: sensitive.New(v)}, nil
}

func (t Token) Expose(f func(token string) error) error { return t.secret.Expose(f) }
func (t Token) UnsafeRaw() string                       { return t.secret.UnsafeRaw() }
func (t Token) Wipe()                                   { t.secret.Wipe() }
func (t Token) Equal(other Token) bool                  { return t.secret.Equal(other.secret) }
func (t Token) String() string                          { return sensitive.Mask }
func (t Token) GoString() string                        { return sensitive.Mask }
func (t Token) LogValue() slog.Value                    { return slog.StringValue(sensitive.Mask) }

// StoredCredentialToken references a payment method saved in the
// gateway vault (mandate or SetupIntent result).
type StoredCredentialToken struct {
	secret *sensitive.Secret
}

func NewStoredCredentialToken(raw string) (StoredCredentialToken, error) {
	v, err := newTokenValue("stored credential token", raw)
	if err != nil {
		return StoredCredentialToken{}, err
	}
	return StoredCredentialToken{secret: sensitive.New(v)}, nil
}

func (t StoredCredentialToken) Expose(f func(token string) error) error { return t.secret.Expose(f) }
func (t StoredCredentialToken) UnsafeRaw() string                       { return t.secret.UnsafeRaw() }
func (t StoredCredentialToken) Wipe()                                   { t.secret.Wipe() }
func (t StoredCredentialToken) Equal(other StoredCredentialToken) bool {
	return t.secret.Equal(other.secret)
}
func (t StoredCredentialToken) String() string       { return sensitive.Mask }
func (t StoredCredentialToken) GoString() string     { return sensitive.Mask }
func (t StoredCredentialToken) LogValue() slog.Value { return slog.StringValue(sensitive.Mask) }

// AuthorizationCode is the issuer approval code returned with a
// successful authorization: 1..=64 printable non-whitespace characters.
type AuthorizationCode struct {
	secret *sensitive.Secret
}

func NewAuthorizationCode(raw string) (AuthorizationCode, error) {
	v := strings.TrimSpace(raw)
	if len(v) < 1 || len(v) > 64 || !printableNoSpace(v) {
		return AuthorizationCode{}, apperror.InvalidInput("authorization code must be 1 to 64 printable characters")
	}
	return AuthorizationCode{secret: sensitive.New(v)}, nil
}

func (a AuthorizationCode) Expose(f func(code string) error) error { return a.secret.Expose(f) }
func (a AuthorizationCode) UnsafeRaw() string                      { return a.secret.UnsafeRaw() }
func (a AuthorizationCode) Wipe()                                  { a.secret.Wipe() }
func (a AuthorizationCode) String() string                         { return sensitive.Mask }
func (a AuthorizationCode) GoString() string                       { return sensitive.Mask }
func (a AuthorizationCode) LogValue() slog.Value                   { return slog.StringValue(sensitive.Mask) }
