package types

import (
	"sort"

	"merchantcore/apperror"
)

// Reserved gateway-metadata keys. Adapters populating these must use
// the exact names; everything else in the map is adapter-defined.
const (
	MetaCardBrand    = "card.brand"
	MetaCardLast4    = "card.last4"
	MetaCardExpMonth = "card.exp_month"
	MetaCardExpYear  = "card.exp_year"
	MetaMandateID    = "mandate.id"
	MetaNetworkTxID  = "network.tx_id"
)

// Metadata is the open map a gateway attaches to its responses: short
// ASCII keys (1..=64 characters) to short values (1..=4096 characters).
// Sensitive material must never be placed here; the reserved card keys
// carry only PCI-permitted fragments.
type Metadata struct {
	kv map[string]string
}

func NewMetadata() Metadata {
	return Metadata{kv: make(map[string]string)}
}

// Set stores the pair after validating both sides.
func (m *Metadata) Set(key, value string) error {
	if len(key) < 1 || len(key) > 64 || !asciiPrintable(key) {
		return apperror.InvalidInput("metadata key must be 1 to 64 printable ASCII characters")
	}
	if len(value) < 1 || len(value) > 4096 {
		return apperror.InvalidInput("metadata value must be 1 to 4096 characters")
	}
	if m.kv == nil {
		m.kv = make(map[string]string)
	}
	m.kv[key] = value
	return nil
}

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m.kv[key]
	return v, ok
}

func (m Metadata) Len() int { return len(m.kv) }

// Keys returns the keys in sorted order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m.kv))
	for k := range m.kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone copies the metadata so callers can hold it past the adapter call.
func (m Metadata) Clone() Metadata {
	c := NewMetadata()
	for k, v := range m.kv {
		c.kv[k] = v
	}
	return c
}

// Equal reports whether both maps hold the same pairs.
func (m Metadata) Equal(other Metadata) bool {
	if len(m.kv) != len(other.kv) {
		return false
	}
	for k, v := range m.kv {
		if ov, ok := other.kv[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func asciiPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
