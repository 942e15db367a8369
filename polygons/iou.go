package polygons

import (
	"log"
	"math"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// IOU computes the pairwise Intersection-over-Union matrix between two
// polygon collections.
//
// as is a collection of N polygons and bs a collection of M; the two sides
// need not share a vertex count. The result is an (N, M) Float64 tensor where
// entry (i, j) scores as[i] against bs[j]:
//
//	intersection = area of the geometric intersection of the two convex hulls
//	union        = area of the convex hull of the pooled vertices of both
//	iou          = intersection / union, or exactly 0 when either area is 0
//
// The zero rule covers degenerate hulls (fewer than three usable vertices)
// and disjoint pairs alike, so no cell ever divides by zero. See the package
// comment for why the pooled-hull union is an approximation.
//
// A pair whose intersection the geometry library cannot compute is logged and
// scored 0; it never fails the rest of the matrix.
func IOU(as, bs []Polygon) (*tensor.Dense, error) {
	n, m := len(as), len(bs)
	if n == 0 || m == 0 {
		return nil, errors.Errorf("polygons: need at least one polygon per side, given %d and %d", n, m)
	}

	hullsA := make([][]geom.Point, n)
	for i, p := range as {
		hullsA[i] = ConvexHull(p)
	}
	hullsB := make([][]geom.Point, m)
	for j, p := range bs {
		hullsB[j] = ConvexHull(p)
	}

	out := make([]float64, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out[i*m+j] = hullIOU(hullsA[i], hullsB[j])
		}
	}

	return tensor.New(tensor.WithShape(n, m), tensor.WithBacking(out)), nil
}

// hullIOU scores a single hull pair under the intersection-over-pooled-hull
// rule. Either operand degenerating to a point or segment yields 0.
func hullIOU(ha, hb []geom.Point) float64 {
	if len(ha) < 3 || len(hb) < 3 {
		return 0
	}

	inter := intersectionArea(ha, hb)
	if inter == 0 {
		return 0
	}

	pooled := make([]geom.Point, 0, len(ha)+len(hb))
	pooled = append(append(pooled, ha...), hb...)
	union := Area(ConvexHull(pooled))
	if union == 0 {
		return 0
	}

	return inter / union
}

// intersectionArea returns the area of the geometric intersection of two
// hulls. An empty intersection is 0. The clipper can fail on pathological
// input (coincident edges at the limit of float precision); such a pair is
// logged and counted as no overlap rather than failing the caller.
func intersectionArea(ha, hb []geom.Point) (area float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("polygons: hull intersection failed, scoring pair as 0: %v", r)
			area = 0
		}
	}()

	inter := geom.Polygon{ha}.Intersection(geom.Polygon{hb})
	if inter == nil {
		return 0
	}
	return math.Abs(inter.Area())
}
