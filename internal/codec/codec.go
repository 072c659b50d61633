// Package codec provides the reversible text-safe encoding used for
// persisted root values. Roots are stored as encoded text, never as raw
// numbers, so the on-disk document only ever carries printable strings.
package codec

import (
	"encoding/base64"
	"fmt"
)

// Codec reversibly maps arbitrary byte content to a printable string.
// Decode(Encode(s)) == s must hold for every input s, including the
// empty string and non-UTF-8 byte sequences.
type Codec interface {
	Encode(plain string) string
	Decode(encoded string) (string, error)
}

// Base64 implements Codec with the RFC 4648 standard alphabet, padded.
// It is stateless and safe for concurrent use.
type Base64 struct{}

// Encode returns the base64 form of plain.
func (Base64) Encode(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// Decode reverses Encode. Malformed input returns a format error.
func (Base64) Decode(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	return string(data), nil
}
