// Package weight holds the fixed power-law curve applied to edge weights.
package weight

import (
	"errors"
	"fmt"
	"math"
)

// Exponent is the power applied to every weight. It is not configurable.
const Exponent = 0.618

// ErrOutOfDomain is returned for weights outside the domain of the transform.
var ErrOutOfDomain = errors.New("weight outside transform domain")

// Transform returns w^Exponent.
// Negative and NaN weights have no real result and are rejected.
func Transform(w float64) (float64, error) {
	if math.IsNaN(w) || w < 0 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfDomain, w)
	}
	return math.Pow(w, Exponent), nil
}
