// Package boxes - axis-aligned bounding box math for detection pipelines.
//
// Two pixel conventions live side by side here and they do not agree:
//
//   - IOU and PairIoU take an offset argument. Pass 0 when corners are
//     continuous coordinates and 1 when they are inclusive pixel indices, so
//     that a box spanning columns 3..7 counts 5 pixels wide.
//   - The XYWH conversions and Clip always treat corners as inclusive pixel
//     indices: width w starting at x ends at x+w-1, and clipping saturates at
//     width-1 and height-1.
//
// Downstream consumers are calibrated against exactly this pairing, so the
// mismatch is load-bearing. Pick the offset per call site rather than trying
// to make the two halves consistent.
package boxes

import "math"

// Box is an axis-aligned bounding box in corner (xmin, ymin, xmax, ymax) form.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// XYWH is an axis-aligned bounding box in origin and size (x, y, w, h) form.
type XYWH struct {
	X, Y, W, H float64
}

// Area returns the box area with corners treated as exclusive. Inverted
// corners give a signed, possibly negative, result.
func (b Box) Area() float64 {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// AreaOffset returns the box area with the side lengths widened by offset.
// An offset of 1 counts inclusive pixel indices.
func (b Box) AreaOffset(offset float64) float64 {
	return (b.X2 - b.X1 + offset) * (b.Y2 - b.Y1 + offset)
}

// Diagonal returns the corner-to-corner length of the box.
func (b Box) Diagonal() float64 {
	w := math.Abs(b.X2 - b.X1)
	h := math.Abs(b.Y2 - b.Y1)
	return math.Sqrt(w*w + h*h)
}

// Center returns the midpoint of the box.
func (b Box) Center() (x, y float64) {
	return (b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2
}

// PairIoU computes the Intersection-over-Union of two boxes.
//
// The intersection corners are the elementwise max of the top-left corners
// and min of the bottom-right corners. The overlap must be strictly positive
// on both axes before offset widening is applied; a shared edge therefore
// scores 0 even with offset 1. Union follows inclusion-exclusion:
//
//	Union(A, B) = Area(A) + Area(B) - Intersection(A, B)
//
// Two zero-area boxes produce 0/0 = NaN rather than an arbitrary substitute;
// callers that feed degenerate boxes are expected to screen them out first.
func PairIoU(a, b Box, offset float64) float64 {
	ix1 := math.Max(a.X1, b.X1)
	iy1 := math.Max(a.Y1, b.Y1)
	ix2 := math.Min(a.X2, b.X2)
	iy2 := math.Min(a.Y2, b.Y2)

	var inter float64
	if ix1 < ix2 && iy1 < iy2 {
		inter = (ix2 - ix1 + offset) * (iy2 - iy1 + offset)
	}

	return inter / (a.AreaOffset(offset) + b.AreaOffset(offset) - inter)
}
