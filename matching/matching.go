// Package matching - one-to-one assignment between detection sets scored by
// an IOU matrix.
//
// Evaluation pipelines build an (N, M) overlap matrix with boxes.IOU,
// polygons.IOU or contours.IOU, pair the two sets with Assign and summarize
// the pairing with Metrics.
package matching

import (
	"math"

	hg "github.com/charles-haynes/munkres"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-iou/tensors"
)

// Match pairs row A of the score matrix with column B.
type Match struct {
	A, B int
	// IOU is the overlap score the pair was matched at.
	IOU float64
}

// Assign computes the optimal one-to-one assignment over an (N, M) IOU
// matrix.
//
// The Hungarian algorithm runs on the negated scores, so the assignment
// maximizes total IOU rather than settling for the greedy row-by-row
// pairing. Pairs scoring 0, or below minIOU, are dropped afterwards; rows
// and columns they would have covered are simply absent from the result.
//
// Arguments:
// - iou: (N, M) Float64 score matrix, higher is better. NaN entries are
//   rejected; filter degenerate boxes before scoring.
// - minIOU: minimum score for a pair to count as matched.
//
// Returns:
// - The surviving matches in row order.
// - An error if the matrix is malformed or the solver rejects it.
func Assign(iou *tensor.Dense, minIOU float64) ([]Match, error) {
	data, n, m, err := tensors.Float64Matrix(iou, "iou")
	if err != nil {
		return nil, err
	}
	if n == 0 || m == 0 {
		return nil, errors.Errorf("iou: empty score matrix, given shape %v", iou.Shape())
	}

	cost := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, m)
		for j := 0; j < m; j++ {
			v := data[i*m+j]
			if math.IsNaN(v) {
				return nil, errors.Errorf("iou: NaN score at row %d column %d", i, j)
			}
			row[j] = -v
		}
		cost[i] = row
	}

	ha, err := hg.NewHungarianAlgorithm(cost)
	if err != nil {
		return nil, errors.Wrap(err, "building assignment solver")
	}

	matches := make([]Match, 0, n)
	for i, j := range ha.Execute() {
		// Rectangular matrices are padded internally; padding shows up as
		// -1 or an out-of-range index.
		if i >= n || j < 0 || j >= m {
			continue
		}
		v := data[i*m+j]
		if v <= 0 || v < minIOU {
			continue
		}
		matches = append(matches, Match{A: i, B: j, IOU: v})
	}
	return matches, nil
}

// Metrics summarizes an assignment as detection precision, recall and F1.
//
// numTruth and numPred are the sizes of the two sets the score matrix was
// built from, rows and columns respectively when the matrix came from
// IOU(groundTruth, predictions). All three values are 0 when nothing
// matched or either set is empty.
func Metrics(matches []Match, numTruth, numPred int) (precision, recall, f1 float64) {
	if len(matches) == 0 || numTruth <= 0 || numPred <= 0 {
		return 0, 0, 0
	}
	matched := float64(len(matches))
	precision = matched / float64(numPred)
	recall = matched / float64(numTruth)
	f1 = 2 * precision * recall / (precision + recall)
	return precision, recall, f1
}
