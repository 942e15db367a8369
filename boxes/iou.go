package boxes

import (
	"math"

	"gorgonia.org/tensor"
)

// IOU computes the pairwise Intersection-over-Union matrix between two box
// tables.
//
// a is an (N, K>=4) table and b an (M, K'>=4) table of corner boxes; the
// first four columns of each row are (xmin, ymin, xmax, ymax) and any extra
// columns (scores, classes) are ignored. The result is an (N, M) Float64
// tensor where entry (i, j) is the IoU of a's row i against b's row j.
//
// offset widens every side length by a constant before multiplying, so areas
// and intersections agree on one pixel convention: pass 0 for continuous
// corner coordinates and 1 when corners are inclusive pixel indices. The
// overlap test itself stays strict (top-left < bottom-right on both axes)
// regardless of offset, so boxes that merely share an edge score 0 instead
// of picking up a phantom one-pixel intersection.
//
// There is no guard on the denominator: two zero-area boxes at offset 0
// yield 0/0 = NaN in their cell, matching what callers calibrated against.
func IOU(a, b *tensor.Dense, offset float64) (*tensor.Dense, error) {
	da, n, ka, err := boxTable(a, "bboxA")
	if err != nil {
		return nil, err
	}
	db, m, kb, err := boxTable(b, "bboxB")
	if err != nil {
		return nil, err
	}

	areaA := make([]float64, n)
	for i := range areaA {
		row := da[i*ka:]
		areaA[i] = (row[2] - row[0] + offset) * (row[3] - row[1] + offset)
	}
	areaB := make([]float64, m)
	for j := range areaB {
		row := db[j*kb:]
		areaB[j] = (row[2] - row[0] + offset) * (row[3] - row[1] + offset)
	}

	out := make([]float64, n*m)
	for i := 0; i < n; i++ {
		ra := da[i*ka:]
		for j := 0; j < m; j++ {
			rb := db[j*kb:]

			tlx := math.Max(ra[0], rb[0])
			tly := math.Max(ra[1], rb[1])
			brx := math.Min(ra[2], rb[2])
			bry := math.Min(ra[3], rb[3])

			var inter float64
			if tlx < brx && tly < bry {
				inter = (brx - tlx + offset) * (bry - tly + offset)
			}

			out[i*m+j] = inter / (areaA[i] + areaB[j] - inter)
		}
	}

	return tensor.New(tensor.WithShape(n, m), tensor.WithBacking(out)), nil
}
