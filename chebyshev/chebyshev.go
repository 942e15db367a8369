// Package chebyshev - evaluation of truncated Chebyshev series on [-1, 1].
package chebyshev

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-iou/tensors"
)

// Eval evaluates the Chebyshev series c[0]*T_0(x) + c[1]*T_1(x) + ... at x
// using the Clenshaw recurrence. An empty coefficient slice evaluates to 0.
//
// x is not range checked; values outside [-1, 1] evaluate the analytic
// continuation of the series.
func Eval(coefs []float64, x float64) float64 {
	switch len(coefs) {
	case 0:
		return 0
	case 1:
		return coefs[0]
	case 2:
		return coefs[0] + coefs[1]*x
	}

	x2 := 2 * x
	c0 := coefs[len(coefs)-2]
	c1 := coefs[len(coefs)-1]
	for i := len(coefs) - 3; i >= 0; i-- {
		c0, c1 = coefs[i]-c1, c0+c1*x2
	}
	return c0 + c1*x
}

// Grid returns n evenly spaced sample points spanning [-1, 1], endpoints
// included. n must be at least 2.
func Grid(n int) []float64 {
	return floats.Span(make([]float64, n), -1, 1)
}

// Values evaluates a batch of series over a shared sample grid.
//
// coefs is an (N, K) table holding one series of K coefficients per row.
// Every row is evaluated at the same `samples` points evenly spanning
// [-1, 1], giving an (N, samples) result. Rows are independent; mapping a
// sample index to an angle or arc position is the caller's business.
func Values(coefs *tensor.Dense, samples int) (*tensor.Dense, error) {
	data, n, k, err := tensors.Float64Matrix(coefs, "coefficients")
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, errors.New("coefficient rows must hold at least one term")
	}
	if samples < 2 {
		return nil, errors.Errorf("need at least 2 samples to span [-1, 1], given %d", samples)
	}

	grid := Grid(samples)
	out := make([]float64, n*samples)
	for i := 0; i < n; i++ {
		row := data[i*k : (i+1)*k]
		for j, x := range grid {
			out[i*samples+j] = Eval(row, x)
		}
	}

	return tensor.New(tensor.WithShape(n, samples), tensor.WithBacking(out)), nil
}
