// Package interp provides exact-fit Lagrange polynomial interpolation
// through a small set of distinct nodes.
package interp

import (
	"errors"
	"fmt"
)

var ErrDuplicateNode = errors.New("interp: duplicate interpolation node")

// Polynomial is the degree n-1 Lagrange interpolant through n points.
type Polynomial struct {
	xs []float64
	ys []float64
}

// NewPolynomial fits the unique polynomial of degree len(xs)-1 through
// the given points. The xs must be pairwise distinct.
func NewPolynomial(xs, ys []float64) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: %d nodes but %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interp: need at least 2 points, got %d", len(xs))
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] == xs[j] {
				return nil, fmt.Errorf("%w: x=%g", ErrDuplicateNode, xs[i])
			}
		}
	}

	p := &Polynomial{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(p.xs, xs)
	copy(p.ys, ys)
	return p, nil
}

// Eval evaluates the interpolant at q using the Lagrange basis form.
func (p *Polynomial) Eval(q float64) float64 {
	sum := 0.0
	for i := range p.xs {
		li := 1.0
		for j := range p.xs {
			if j != i {
				li *= (q - p.xs[j]) / (p.xs[i] - p.xs[j])
			}
		}
		sum += p.ys[i] * li
	}
	return sum
}
