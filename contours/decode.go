// Package contours - reconstruction of object outlines from radial Chebyshev
// codes.
//
// A contour is stored as a short Chebyshev series that parameterizes radius
// as a function of angle around the object center, scaled so the
// coefficients stay box-size independent. Decoding walks 360 angles in
// descending order (359 down to 0 degrees), evaluates the series on the
// matching [-1, 1] grid, scales by the diagonal of the object's bounding box
// and converts to Cartesian points around the center. Every decoded point is
// clipped into the bounding box, so a reconstructed polygon never spills
// outside the box it belongs to.
package contours

import (
	"math"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-iou/chebyshev"
	"github.com/nvr-ai/go-iou/tensors"
)

// SampleCount is the number of points a decoded contour carries, one per
// integer degree.
const SampleCount = 360

// Decode reconstructs contour polygons from coefficient rows.
//
// Arguments:
//   - coefs: (N, K) table, one Chebyshev series per row. K is the series
//     length, typically 2*degree+2.
//   - bboxes: (N, K'>=4) table of corner boxes (xmin, ymin, xmax, ymax);
//     columns past the fourth are ignored.
//   - centers: (N, K''>=2) table of object centers (x, y); columns past the
//     second are ignored.
//
// Returns:
//   - An (N, 360, 2) Float64 tensor, one polygon per row. Vertex j sits at
//     angle 359-j degrees; radii are the series values scaled by the box
//     diagonal. Every vertex is clipped into its row's box, so x lies in
//     [xmin, xmax] and y in [ymin, ymax]. A box with inverted corners
//     collapses its polygon onto the max corner, matching the saturating
//     clip.
//   - An error when any table is malformed or the row counts disagree.
func Decode(coefs, bboxes, centers *tensor.Dense) (*tensor.Dense, error) {
	bData, bn, bk, err := tensors.Float64Matrix(bboxes, "bboxes")
	if err != nil {
		return nil, err
	}
	if bk < 4 {
		return nil, errors.Errorf("bboxes: box tables need at least 4 columns, given shape %v", bboxes.Shape())
	}
	cData, cn, ck, err := tensors.Float64Matrix(centers, "centers")
	if err != nil {
		return nil, err
	}
	if ck < 2 {
		return nil, errors.Errorf("centers: center tables need at least 2 columns, given shape %v", centers.Shape())
	}

	radii, err := chebyshev.Values(coefs, SampleCount)
	if err != nil {
		return nil, err
	}
	n := radii.Shape()[0]
	if bn != n || cn != n {
		return nil, errors.Errorf("row counts disagree: %d coefficient rows, %d boxes, %d centers", n, bn, cn)
	}
	rData := radii.Float64s()

	// The angle walk is the same for every row: 359, 358, ..., 0 degrees.
	cosines := make([]float64, SampleCount)
	sines := make([]float64, SampleCount)
	for j := range cosines {
		theta := float64(SampleCount-1-j) * (math.Pi / 180)
		cosines[j] = math.Cos(theta)
		sines[j] = math.Sin(theta)
	}

	out := make([]float64, n*SampleCount*2)
	for i := 0; i < n; i++ {
		x1, y1 := bData[i*bk], bData[i*bk+1]
		x2, y2 := bData[i*bk+2], bData[i*bk+3]
		w := math.Abs(x2 - x1)
		h := math.Abs(y2 - y1)
		relLen := math.Sqrt(w*w + h*h)
		cx, cy := cData[i*ck], cData[i*ck+1]

		base := i * SampleCount * 2
		for j := 0; j < SampleCount; j++ {
			r := rData[i*SampleCount+j] * relLen
			out[base+j*2] = clamp(cx+r*cosines[j], x1, x2)
			out[base+j*2+1] = clamp(cy+r*sines[j], y1, y2)
		}
	}

	return tensor.New(tensor.WithShape(n, SampleCount, 2), tensor.WithBacking(out)), nil
}

// clamp saturates v into [lo, hi]. When lo > hi the upper bound wins.
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
