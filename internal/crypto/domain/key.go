// Package domain defines the cipher wire format, key handling and cipher errors.
package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64KeyPrefix marks a configured key given as standard base64 rather than literal bytes.
const Base64KeyPrefix = "base64:"

// NormalizeKey maps an arbitrary-length key to exactly KeySize bytes.
//
// Shorter keys are right-padded with zero bytes, longer keys are truncated to
// their first KeySize bytes. The result never aliases key, so callers may Zero
// it without touching their own copy.
func NormalizeKey(key []byte) []byte {
	normalized := make([]byte, KeySize)
	copy(normalized, key)
	return normalized
}

// Zero overwrites key material in place once it is no longer needed.
func Zero(b []byte) {
	clear(b)
}

// ParseKeyString returns the key bytes held by a configuration value.
// A value starting with Base64KeyPrefix is decoded; any other value is used as-is.
// Returns ErrKeyNotConfigured for an empty value or an empty decoded key.
func ParseKeyString(s string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(s, Base64KeyPrefix)
	if !ok {
		if s == "" {
			return nil, ErrKeyNotConfigured
		}
		return []byte(s), nil
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	if len(key) == 0 {
		return nil, ErrKeyNotConfigured
	}
	return key, nil
}

// FormatKeyString encodes key in the form ParseKeyString reads back.
func FormatKeyString(key []byte) string {
	return Base64KeyPrefix + base64.StdEncoding.EncodeToString(key)
}
