package postprocess

import (
	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-iou/boxes"
)

// rowSize is the flat detection row layout [x1, y1, x2, y2, score, class].
const rowSize = 6

// DecodeRows parses flat row-major detection output into results, dropping
// rows below the configured score threshold.
//
// Arguments:
//   - output: row-major [x1, y1, x2, y2, score, class] rows.
//   - cfg: only ScoreThreshold is consulted.
//
// Returns:
//   - The decoded detections in row order, or nil if the output length is
//     not a multiple of the row size.
func DecodeRows(output []float32, cfg Config) []Result {
	if len(output)%rowSize != 0 {
		return nil
	}

	numRows := len(output) / rowSize
	results := make([]Result, 0, numRows)

	for i := 0; i < numRows; i++ {
		offset := i * rowSize
		score := output[offset+4]
		if score < cfg.ScoreThreshold {
			continue
		}
		results = append(results, Result{
			Box: boxes.Box{
				X1: float64(output[offset+0]),
				Y1: float64(output[offset+1]),
				X2: float64(output[offset+2]),
				Y2: float64(output[offset+3]),
			},
			Score: score,
			Class: int(output[offset+5]),
		})
	}

	return results
}

// DecodeLogitRows is DecodeRows for heads that emit raw logits in the score
// column: a sigmoid maps the logit to a probability before thresholding, and
// the decoded Score carries the probability.
func DecodeLogitRows(output []float32, cfg Config) []Result {
	if len(output)%rowSize != 0 {
		return nil
	}

	numRows := len(output) / rowSize
	results := make([]Result, 0, numRows)

	for i := 0; i < numRows; i++ {
		offset := i * rowSize
		score := sigmoid(output[offset+4])
		if score < cfg.ScoreThreshold {
			continue
		}
		results = append(results, Result{
			Box: boxes.Box{
				X1: float64(output[offset+0]),
				Y1: float64(output[offset+1]),
				X2: float64(output[offset+2]),
				Y2: float64(output[offset+3]),
			},
			Score: score,
			Class: int(output[offset+5]),
		})
	}

	return results
}

func sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}
