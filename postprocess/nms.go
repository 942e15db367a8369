package postprocess

import (
	"sort"

	"github.com/nvr-ai/go-iou/boxes"
)

// Default thresholds for detection pipelines that have not been tuned.
const (
	DefaultScoreThreshold float32 = 0.25
	DefaultIoUThreshold   float32 = 0.45
)

// Config defines parameters for decoding and Non-Maximum Suppression.
type Config struct {
	ScoreThreshold float32 // Minimum confidence for a detection to be kept.
	IoUThreshold   float32 // Overlap above which the weaker detection is suppressed.
	ClassAware     bool    // If true, suppress only within the same class.
	MaxResults     int     // Cap on returned detections. 0 means no cap.
}

// NMS filters overlapping detections using greedy Non-Maximum Suppression.
//
// Arguments:
//   - detections: detections in any order. NMS sorts a copy by descending
//     score and leaves the input untouched.
//   - cfg: suppression parameters. ScoreThreshold is not consulted here;
//     filter scores at decode time.
//
// Returns:
//   - The surviving detections, highest score first. If no detections are
//     provided, returns nil.
func NMS(detections []Result, cfg Config) []Result {
	n := len(detections)
	if n == 0 {
		return nil
	}

	sorted := make([]Result, n)
	copy(sorted, detections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	filtered := make([]Result, 0, n)
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}

		anchor := sorted[i]
		filtered = append(filtered, anchor)
		used[i] = true
		if cfg.MaxResults > 0 && len(filtered) == cfg.MaxResults {
			break
		}

		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			if cfg.ClassAware && anchor.Class != sorted[j].Class {
				continue
			}
			if float32(boxes.PairIoU(anchor.Box, sorted[j].Box, 0)) > cfg.IoUThreshold {
				used[j] = true
			}
		}
	}

	return filtered
}
