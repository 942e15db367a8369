package contours

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-iou/polygons"
)

// IOU scores two coefficient-encoded contour sets against each other.
//
// Both sides are decoded with Decode and the reconstructed polygons are
// handed to polygons.IOU, so the result is the (N, M) hull-based overlap
// matrix of the decoded shapes. Side A tables must share N rows and side B
// tables M rows.
func IOU(coefsA, coefsB, boxesA, boxesB, centersA, centersB *tensor.Dense) (*tensor.Dense, error) {
	pa, err := Decode(coefsA, boxesA, centersA)
	if err != nil {
		return nil, errors.Wrap(err, "decoding side A")
	}
	pb, err := Decode(coefsB, boxesB, centersB)
	if err != nil {
		return nil, errors.Wrap(err, "decoding side B")
	}

	as, err := polygons.FromTensor(pa)
	if err != nil {
		return nil, err
	}
	bs, err := polygons.FromTensor(pb)
	if err != nil {
		return nil, err
	}
	return polygons.IOU(as, bs)
}

// PointsIOU scores coefficient-encoded predictions against ground-truth
// contours given directly as points.
//
// The predictions (coefs, bboxes, centers — N rows each) are decoded with
// Decode. The ground truth arrives in split-coordinate form: gtXs and gtYs
// are matching (M, 360) tables, row i pairing into the 360 vertices of
// ground-truth polygon i. The result is the (N, M) overlap matrix from
// polygons.IOU.
func PointsIOU(coefs, bboxes, centers, gtXs, gtYs *tensor.Dense) (*tensor.Dense, error) {
	decoded, err := Decode(coefs, bboxes, centers)
	if err != nil {
		return nil, errors.Wrap(err, "decoding predictions")
	}
	preds, err := polygons.FromTensor(decoded)
	if err != nil {
		return nil, err
	}

	gts, err := polygons.FromXY(gtXs, gtYs)
	if err != nil {
		return nil, err
	}
	if len(gts) > 0 && len(gts[0]) != SampleCount {
		return nil, errors.Errorf("ground-truth contours must carry %d points per row, given %d", SampleCount, len(gts[0]))
	}

	return polygons.IOU(preds, gts)
}
