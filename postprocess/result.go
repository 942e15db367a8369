// Package postprocess - score filtering and duplicate suppression for
// detection outputs.
package postprocess

import "github.com/nvr-ai/go-iou/boxes"

// Result represents a single detection.
type Result struct {
	// The bounding box of the detection in corner form.
	Box boxes.Box
	// The confidence score of the detection.
	Score float32
	// The predicted class index of the detection.
	Class int
}
