package boxes

import (
	"math"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-iou/tensors"
)

// ToBox converts an origin/size box to corner form under the inclusive pixel
// convention: a box of width w starting at x ends at column x+w-1. Negative
// sizes clamp to zero, collapsing the box onto its origin.
func (b XYWH) ToBox() Box {
	w := math.Max(b.W-1, 0)
	h := math.Max(b.H-1, 0)
	return Box{X1: b.X, Y1: b.Y, X2: b.X + w, Y2: b.Y + h}
}

// ToXYWH converts a corner box to origin/size form under the inclusive pixel
// convention: a box spanning columns x1..x2 is x2-x1+1 wide.
func (b Box) ToXYWH() XYWH {
	return XYWH{X: b.X1, Y: b.Y1, W: b.X2 - b.X1 + 1, H: b.Y2 - b.Y1 + 1}
}

// Clip saturates the corners into an image of the given size. Coordinates are
// clamped to [0, width-1] and [0, height-1], the valid inclusive pixel range.
func (b Box) Clip(width, height float64) Box {
	return Box{
		X1: clamp(b.X1, 0, width-1),
		Y1: clamp(b.Y1, 0, height-1),
		X2: clamp(b.X2, 0, width-1),
		Y2: clamp(b.Y2, 0, height-1),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// XYWHToXYXY converts an (N, K>=4) table of (x, y, w, h, ...) rows into an
// (N, 4) table of corner boxes. Columns past the fourth are ignored. The
// input is left untouched.
func XYWHToXYXY(t *tensor.Dense) (*tensor.Dense, error) {
	data, n, k, err := boxTable(t, "xywh")
	if err != nil {
		return nil, err
	}

	out := make([]float64, n*4)
	for i := 0; i < n; i++ {
		box := XYWH{
			X: data[i*k],
			Y: data[i*k+1],
			W: data[i*k+2],
			H: data[i*k+3],
		}.ToBox()
		out[i*4] = box.X1
		out[i*4+1] = box.Y1
		out[i*4+2] = box.X2
		out[i*4+3] = box.Y2
	}

	return tensor.New(tensor.WithShape(n, 4), tensor.WithBacking(out)), nil
}

// XYXYToXYWH converts an (N, K>=4) table of corner boxes into an (N, 4) table
// of (x, y, w, h) rows. Columns past the fourth are ignored. The input is
// left untouched.
func XYXYToXYWH(t *tensor.Dense) (*tensor.Dense, error) {
	data, n, k, err := boxTable(t, "xyxy")
	if err != nil {
		return nil, err
	}

	out := make([]float64, n*4)
	for i := 0; i < n; i++ {
		box := Box{
			X1: data[i*k],
			Y1: data[i*k+1],
			X2: data[i*k+2],
			Y2: data[i*k+3],
		}.ToXYWH()
		out[i*4] = box.X
		out[i*4+1] = box.Y
		out[i*4+2] = box.W
		out[i*4+3] = box.H
	}

	return tensor.New(tensor.WithShape(n, 4), tensor.WithBacking(out)), nil
}

// Clip saturates every corner box of an (N, K>=4) table into an image of the
// given size and returns the clipped boxes as a new (N, 4) table. Columns
// past the fourth are ignored.
func Clip(t *tensor.Dense, width, height float64) (*tensor.Dense, error) {
	data, n, k, err := boxTable(t, "xyxy")
	if err != nil {
		return nil, err
	}

	out := make([]float64, n*4)
	for i := 0; i < n; i++ {
		box := Box{
			X1: data[i*k],
			Y1: data[i*k+1],
			X2: data[i*k+2],
			Y2: data[i*k+3],
		}.Clip(width, height)
		out[i*4] = box.X1
		out[i*4+1] = box.Y1
		out[i*4+2] = box.X2
		out[i*4+3] = box.Y2
	}

	return tensor.New(tensor.WithShape(n, 4), tensor.WithBacking(out)), nil
}

// boxTable validates a 2-D Float64 box table with at least 4 columns.
func boxTable(t *tensor.Dense, name string) ([]float64, int, int, error) {
	data, n, k, err := tensors.Float64Matrix(t, name)
	if err != nil {
		return nil, 0, 0, err
	}
	if k < 4 {
		return nil, 0, 0, errors.Errorf("%s: box tables need at least 4 columns, given shape %v", name, t.Shape())
	}
	return data, n, k, nil
}
