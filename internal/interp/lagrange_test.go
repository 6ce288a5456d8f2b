package interp

import (
	"errors"
	"math"
	"testing"
)

func TestPolynomialReproducesQuadratic(t *testing.T) {
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }

	p, err := NewPolynomial([]float64{-1, 0.5, 2}, []float64{f(-1), f(0.5), f(2)})
	if err != nil {
		t.Fatalf("NewPolynomial failed: %v", err)
	}

	// A 3-point fit is exact for quadratics, including extrapolation.
	for _, x := range []float64{-2, -0.3, 0, 1, 1.7, 3} {
		if got := p.Eval(x); math.Abs(got-f(x)) > 1e-12 {
			t.Errorf("Eval(%g) = %g, want %g", x, got, f(x))
		}
	}
}

func TestPolynomialPassesThroughNodes(t *testing.T) {
	xs := []float64{0.026, 0.027, 0.028}
	ys := []float64{1.8704, 1.9845, 2.1004}

	p, err := NewPolynomial(xs, ys)
	if err != nil {
		t.Fatalf("NewPolynomial failed: %v", err)
	}

	for i, x := range xs {
		if got := p.Eval(x); math.Abs(got-ys[i]) > 1e-12 {
			t.Errorf("node %d: Eval(%g) = %g, want %g", i, x, got, ys[i])
		}
	}
}

func TestPolynomialLinear(t *testing.T) {
	p, err := NewPolynomial([]float64{0, 1}, []float64{5, 7})
	if err != nil {
		t.Fatalf("NewPolynomial failed: %v", err)
	}
	if got := p.Eval(0.5); math.Abs(got-6) > 1e-12 {
		t.Errorf("Eval(0.5) = %g, want 6", got)
	}
}

func TestNewPolynomialErrors(t *testing.T) {
	if _, err := NewPolynomial([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := NewPolynomial([]float64{1}, []float64{1}); err == nil {
		t.Error("expected error for fewer than two points")
	}
	if _, err := NewPolynomial([]float64{1, 1, 2}, []float64{0, 0, 0}); !errors.Is(err, ErrDuplicateNode) {
		t.Error("expected ErrDuplicateNode for repeated abscissa")
	}
}

func TestNewPolynomialCopiesInputs(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}

	p, err := NewPolynomial(xs, ys)
	if err != nil {
		t.Fatalf("NewPolynomial failed: %v", err)
	}

	before := p.Eval(1.5)
	xs[0] = 99
	ys[0] = 99
	if after := p.Eval(1.5); after != before {
		t.Error("polynomial should not alias caller slices")
	}
}
