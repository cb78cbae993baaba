package types

import (
	"merchantcore/apperror"
	"merchantcore/inputs"
)

// RequiredActionKind discriminates the customer actions a gateway can
// demand before an operation completes.
type RequiredActionKind string

const (
	ActionRedirect     RequiredActionKind = "redirect"
	ActionDisplayData  RequiredActionKind = "display_data"
	ActionAwaitWebhook RequiredActionKind = "await_webhook"
	ActionChallenge3DS RequiredActionKind = "challenge_3ds"
)

// RequiredAction tells the caller what must happen out of band. A flow
// method that returns one has performed no funds movement.
type RequiredAction struct {
	kind        RequiredActionKind
	redirectURL string
	displayData map[string]string
	challenge   []byte
}

// RedirectAction sends the customer to the given URL.
func RedirectAction(url string) (RequiredAction, error) {
	if url == "" {
		return RequiredAction{}, apperror.InvalidInput("redirect url must not be empty")
	}
	return RequiredAction{kind: ActionRedirect, redirectURL: url}, nil
}

// DisplayDataAction shows the customer key-value data (e.g. a voucher
// barcode reference).
func DisplayDataAction(kv map[string]string) RequiredAction {
	data := make(map[string]string, len(kv))
	for k, v := range kv {
		data[k] = v
	}
	return RequiredAction{kind: ActionDisplayData, displayData: data}
}

// AwaitWebhookAction tells the caller completion arrives via webhook.
func AwaitWebhookAction() RequiredAction {
	return RequiredAction{kind: ActionAwaitWebhook}
}

// ChallengeAction carries an opaque 3-D Secure challenge payload.
func ChallengeAction(payload []byte) RequiredAction {
	p := make([]byte, len(payload))
	copy(p, payload)
	return RequiredAction{kind: ActionChallenge3DS, challenge: p}
}

func (a RequiredAction) Kind() RequiredActionKind { return a.kind }
func (a RequiredAction) RedirectURL() string      { return a.redirectURL }

func (a RequiredAction) DisplayData() map[string]string {
	data := make(map[string]string, len(a.displayData))
	for k, v := range a.displayData {
		data[k] = v
	}
	return data
}

func (a RequiredAction) ChallengePayload() []byte {
	p := make([]byte, len(a.challenge))
	copy(p, a.challenge)
	return p
}

// Confirmation is the opaque blob the caller returns after fulfilling a
// RequiredAction. The core never inspects it.
type Confirmation struct {
	payload []byte
}

func NewConfirmation(payload []byte) Confirmation {
	p := make([]byte, len(payload))
	copy(p, payload)
	return Confirmation{payload: p}
}

func (c Confirmation) Payload() []byte {
	p := make([]byte, len(c.payload))
	copy(p, c.payload)
	return p
}

// BrowserInfo is the customer browser fingerprint used for risk-based
// 3-D Secure authentication.
type BrowserInfo struct {
	AcceptHeader   string
	UserAgent      string
	Language       string
	TimeZoneOffset int
	ScreenWidth    int
	ScreenHeight   int
	JavaEnabled    bool
}

func NewBrowserInfo(in inputs.BrowserInfo) (BrowserInfo, error) {
	if in.UserAgent == "" {
		return BrowserInfo{}, apperror.InvalidInput("browser user agent must not be empty")
	}
	return BrowserInfo{
		AcceptHeader:   in.AcceptHeader,
		UserAgent:      in.UserAgent,
		Language:       in.Language,
		TimeZoneOffset: in.TimeZoneOffset,
		ScreenWidth:    in.ScreenWidth,
		ScreenHeight:   in.ScreenHeight,
		JavaEnabled:    in.JavaEnabled,
	}, nil
}

// Well-known ExternalPaymentData keys.
const (
	ExternalRedirectURL = "redirect_url"
	ExternalVoucherCode = "voucher_code"
)

// ExternalPaymentData is the opaque payload of an externally completed
// payment (redirect URL, voucher code). The core carries it end to end
// without interpretation beyond the well-known keys.
type ExternalPaymentData struct {
	values map[string]string
}

func NewExternalPaymentData(values map[string]string) ExternalPaymentData {
	kv := make(map[string]string, len(values))
	for k, v := range values {
		kv[k] = v
	}
	return ExternalPaymentData{values: kv}
}

func (d ExternalPaymentData) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d ExternalPaymentData) RedirectURL() (string, bool) { return d.Get(ExternalRedirectURL) }
func (d ExternalPaymentData) VoucherCode() (string, bool) { return d.Get(ExternalVoucherCode) }
func (d ExternalPaymentData) Len() int                    { return len(d.values) }

// ExternalPayment is an initiated external payment: the transaction
// record plus the data the customer needs to complete it out of band.
type ExternalPayment struct {
	Transaction Transaction
	Data        ExternalPaymentData
}
