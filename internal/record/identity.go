package record

import (
	"fmt"
	"strconv"
)

// Identity captures the Vieta checks evaluated from the decoded roots.
//
// For a*x^2 + b*x + c = 0 with roots alpha and beta:
//
//	alpha + beta = -b/a
//	alpha * beta = c/a
//
// RootSum and ExpectedSum are reported side by side rather than asserted
// equal: the inputs are taken at face value, and coefficients that do not
// actually match the supplied roots are surfaced as-is.
type Identity struct {
	Alpha       float64
	Beta        float64
	RootSum     float64 // alpha + beta
	ExpectedSum float64 // -b/a
	RootProduct float64 // alpha * beta, equals c/a when the inputs are consistent
	C           float64 // a * alpha * beta
}

// Derive parses the decoded root texts as floating-point numbers and
// evaluates the identities for the given coefficients.
func Derive(a, b int, alphaText, betaText string) (Identity, error) {
	alpha, err := strconv.ParseFloat(alphaText, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("parse alpha %q: %w", alphaText, err)
	}
	beta, err := strconv.ParseFloat(betaText, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("parse beta %q: %w", betaText, err)
	}

	return Identity{
		Alpha:       alpha,
		Beta:        beta,
		RootSum:     alpha + beta,
		ExpectedSum: -float64(b) / float64(a),
		RootProduct: alpha * beta,
		C:           float64(a) * alpha * beta,
	}, nil
}
