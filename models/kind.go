// models/kind.go
package models

import (
	"strings"
	"unicode"
)

// Kind is one of the supported lookup services.
type Kind string

const (
	KindNone        Kind = ""
	KindNumber      Kind = "number"
	KindVehicle     Kind = "vehicle"
	KindPakistanSim Kind = "pak_sim"
	KindGST         Kind = "gst"
	KindPAN         Kind = "pan"
)

// Title returns the human-readable service name used in messages.
func (k Kind) Title() string {
	switch k {
	case KindNumber:
		return "Number Lookup"
	case KindVehicle:
		return "Vehicle Lookup"
	case KindPakistanSim:
		return "Pakistan SIM Lookup"
	case KindGST:
		return "GST Lookup"
	case KindPAN:
		return "PAN Lookup"
	}
	return "General Query"
}

// DigitsOnly reports whether raw input for this kind is a phone-like
// identifier that must be stripped to bare digits.
func (k Kind) DigitsOnly() bool {
	return k == KindNumber || k == KindPakistanSim
}

// Normalize converts raw user input into the form appended to the API URL:
// bare digits for phone-like kinds, trimmed pass-through for the rest.
func (k Kind) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if !k.DigitsOnly() {
		return raw
	}
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidInput reports whether the raw text is acceptable for this kind.
// Phone-like kinds require at least one digit; the rest accept any
// non-empty string.
func (k Kind) ValidInput(raw string) bool {
	return k.Normalize(raw) != ""
}
