// Package record defines the polynomial record persisted by vieta and the
// Vieta identities derived from its roots.
package record

import (
	"fmt"

	"github.com/roach88/vieta/internal/codec"
)

// Form is the fixed descriptive string carried by every document.
const Form = "ax^2 + bx + c = 0"

// Polynomial holds the quadratic coefficients. C is nil until it has been
// derived from the roots; it serializes as JSON null while unset.
type Polynomial struct {
	A    int      `json:"a"`
	B    int      `json:"b"`
	C    *float64 `json:"c"`
	Form string   `json:"form"`
}

// EncodedRoots holds the two roots as text-safe encoded strings.
// The plain decimal text never appears in the persisted form.
type EncodedRoots struct {
	Alpha string `json:"alpha"`
	Beta  string `json:"beta"`
}

// Document is the full persisted shape of a polynomial record.
type Document struct {
	Polynomial Polynomial   `json:"polynomial"`
	Roots      EncodedRoots `json:"roots_base64"`
}

// New builds a fresh document for the given coefficients and root texts.
// The roots are encoded with enc and C is left unset.
func New(enc codec.Codec, a, b int, alpha, beta string) Document {
	return Document{
		Polynomial: Polynomial{
			A:    a,
			B:    b,
			Form: Form,
		},
		Roots: EncodedRoots{
			Alpha: enc.Encode(alpha),
			Beta:  enc.Encode(beta),
		},
	}
}

// DecodedRoots returns the plain-text root values stored in d.
func (d Document) DecodedRoots(dec codec.Codec) (alpha, beta string, err error) {
	alpha, err = dec.Decode(d.Roots.Alpha)
	if err != nil {
		return "", "", fmt.Errorf("decode alpha: %w", err)
	}
	beta, err = dec.Decode(d.Roots.Beta)
	if err != nil {
		return "", "", fmt.Errorf("decode beta: %w", err)
	}
	return alpha, beta, nil
}

// SetC populates the derived constant coefficient.
func (d *Document) SetC(c float64) {
	d.Polynomial.C = &c
}
