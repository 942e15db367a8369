package boxes

import (
	"math/rand"
	"testing"

	"gorgonia.org/tensor"
)

// Benchmark cases covering the IoU paths exercised by suppression and
// matching workloads.

// BenchmarkPairIoU_NonOverlapping measures the early-out path.
func BenchmarkPairIoU_NonOverlapping(b *testing.B) {
	r1 := Box{0, 0, 100, 100}
	r2 := Box{200, 200, 300, 300}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = PairIoU(r1, r2, 0)
	}
}

// BenchmarkPairIoU_PartialOverlap measures the full calculation path.
func BenchmarkPairIoU_PartialOverlap(b *testing.B) {
	r1 := Box{0, 0, 100, 100}
	r2 := Box{50, 50, 150, 150}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = PairIoU(r1, r2, 0)
	}
}

// BenchmarkPairIoU_RandomPairs simulates a varied detection workload.
func BenchmarkPairIoU_RandomPairs(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	pairs := make([]struct{ r1, r2 Box }, 1000)
	for i := range pairs {
		x1, y1 := float64(rng.Intn(1920)), float64(rng.Intn(1080))
		w1, h1 := float64(rng.Intn(300)+20), float64(rng.Intn(300)+20)
		x2, y2 := float64(rng.Intn(1920)), float64(rng.Intn(1080))
		w2, h2 := float64(rng.Intn(300)+20), float64(rng.Intn(300)+20)

		pairs[i].r1 = Box{X1: x1, Y1: y1, X2: x1 + w1, Y2: y1 + h1}
		pairs[i].r2 = Box{X1: x2, Y1: y2, X2: x2 + w2, Y2: y2 + h2}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		pair := pairs[i%len(pairs)]
		_ = PairIoU(pair.r1, pair.r2, 0)
	}
}

// BenchmarkIOU_Batch measures the pairwise matrix at a typical NMS scale:
// 100 detections against 100 detections.
func BenchmarkIOU_Batch(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	backing := func(n int) []float64 {
		out := make([]float64, n*4)
		for i := 0; i < n; i++ {
			x, y := float64(rng.Intn(1920)), float64(rng.Intn(1080))
			w, h := float64(rng.Intn(300)+20), float64(rng.Intn(300)+20)
			out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = x, y, x+w, y+h
		}
		return out
	}

	a := tensor.New(tensor.WithShape(100, 4), tensor.WithBacking(backing(100)))
	c := tensor.New(tensor.WithShape(100, 4), tensor.WithBacking(backing(100)))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := IOU(a, c, 0); err != nil {
			b.Fatal(err)
		}
	}
}
