// Package polygons - convex-hull overlap metrics between point sets.
//
// The IOU computed here is not the exact polygon IOU. Both operands are
// replaced by their convex hulls, and the union term is approximated by the
// area of the convex hull of the pooled vertices of both polygons, which for
// disjoint or concave shapes overstates the union and so understates the
// IOU. Downstream consumers are calibrated against exactly these values;
// keep the approximation.
package polygons

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-iou/boxes"
	"github.com/nvr-ai/go-iou/tensors"
)

// Polygon is an ordered vertex list. It does not need to be convex, closed
// or even non-degenerate; operations that require convexity take the hull
// first.
type Polygon []geom.Point

// Area returns the area enclosed by the vertex ring, 0 for fewer than three
// vertices. Winding order does not matter; the result is never negative.
func Area(p Polygon) float64 {
	if len(p) < 3 {
		return 0
	}
	return math.Abs(geom.Polygon{[]geom.Point(p)}.Area())
}

// Bounds returns the axis-aligned bounding box of the vertices. The zero Box
// is returned for an empty polygon.
func Bounds(p Polygon) boxes.Box {
	if len(p) == 0 {
		return boxes.Box{}
	}
	b := geom.Polygon{[]geom.Point(p)}.Bounds()
	return boxes.Box{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X, Y2: b.Max.Y}
}

// ConvexHull returns the convex hull of the vertices in counter-clockwise
// order with collinear boundary points dropped, using the monotone chain
// construction. Degenerate inputs (all vertices collinear or coincident)
// return the surviving one or two distinct points.
func ConvexHull(pts []geom.Point) []geom.Point {
	p := make([]geom.Point, len(pts))
	copy(p, pts)

	sort.Slice(p, func(i, j int) bool {
		if p[i].X != p[j].X {
			return p[i].X < p[j].X
		}
		return p[i].Y < p[j].Y
	})
	p = dedupe(p)

	if len(p) <= 2 {
		return p
	}

	lower := make([]geom.Point, 0, len(p))
	for _, pt := range p {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}

	upper := make([]geom.Point, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		pt := p[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	// The last point of each chain is the first point of the other.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// dedupe removes consecutive duplicates from a sorted point list.
func dedupe(p []geom.Point) []geom.Point {
	out := p[:0]
	for i, pt := range p {
		if i == 0 || pt != p[i-1] {
			out = append(out, pt)
		}
	}
	return out
}

// cross is the z component of (a-o) x (b-o): positive when o->a->b turns
// counter-clockwise.
func cross(o, a, b geom.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// FromTensor splits an (N, P, 2) vertex tensor into N polygons of P points.
func FromTensor(t *tensor.Dense) ([]Polygon, error) {
	data, n, p, q, err := tensors.Float64Cube(t, "polygons")
	if err != nil {
		return nil, err
	}
	if q != 2 {
		return nil, errors.Errorf("polygons: vertices must be (x, y) pairs, given shape %v", t.Shape())
	}

	out := make([]Polygon, n)
	for i := 0; i < n; i++ {
		poly := make(Polygon, p)
		base := i * p * 2
		for j := 0; j < p; j++ {
			poly[j] = geom.Point{X: data[base+j*2], Y: data[base+j*2+1]}
		}
		out[i] = poly
	}
	return out, nil
}

// FromXY zips matching (M, P) x and y coordinate tables into M polygons of P
// points each, the layout ground-truth contours usually arrive in.
func FromXY(xs, ys *tensor.Dense) ([]Polygon, error) {
	dx, m, p, err := tensors.Float64Matrix(xs, "xs")
	if err != nil {
		return nil, err
	}
	dy, m2, p2, err := tensors.Float64Matrix(ys, "ys")
	if err != nil {
		return nil, err
	}
	if m != m2 || p != p2 {
		return nil, errors.Errorf("coordinate tables disagree: xs is %v, ys is %v", xs.Shape(), ys.Shape())
	}

	out := make([]Polygon, m)
	for i := 0; i < m; i++ {
		poly := make(Polygon, p)
		for j := 0; j < p; j++ {
			poly[j] = geom.Point{X: dx[i*p+j], Y: dy[i*p+j]}
		}
		out[i] = poly
	}
	return out, nil
}
