package boxes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestXYWHToBox(t *testing.T) {
	tests := []struct {
		name     string
		in       XYWH
		expected Box
	}{
		{
			name:     "Ten pixels wide ends at index nine",
			in:       XYWH{0, 0, 10, 10},
			expected: Box{0, 0, 9, 9},
		},
		{
			name:     "Single pixel",
			in:       XYWH{4, 7, 1, 1},
			expected: Box{4, 7, 4, 7},
		},
		{
			name:     "Zero size collapses onto origin",
			in:       XYWH{5, 5, 0, 0},
			expected: Box{5, 5, 5, 5},
		},
		{
			name:     "Negative size clamps to zero",
			in:       XYWH{5, 5, -3, -8},
			expected: Box{5, 5, 5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ToBox(); got != tt.expected {
				t.Errorf("ToBox() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestBoxToXYWH(t *testing.T) {
	tests := []struct {
		name     string
		in       Box
		expected XYWH
	}{
		{
			name:     "Index nine means ten pixels wide",
			in:       Box{0, 0, 9, 9},
			expected: XYWH{0, 0, 10, 10},
		},
		{
			name:     "Single pixel",
			in:       Box{4, 7, 4, 7},
			expected: XYWH{4, 7, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ToXYWH(); got != tt.expected {
				t.Errorf("ToXYWH() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

// TestConversionRoundTrip checks that the two conversions invert each other
// for boxes at least one pixel wide and tall.
func TestConversionRoundTrip(t *testing.T) {
	boxes := []XYWH{
		{0, 0, 10, 10},
		{3, 9, 1, 1},
		{100, 250, 640, 480},
	}

	for _, b := range boxes {
		if got := b.ToBox().ToXYWH(); got != b {
			t.Errorf("round trip of %+v gave %+v", b, got)
		}
	}
}

func TestBoxClip(t *testing.T) {
	tests := []struct {
		name     string
		in       Box
		expected Box
	}{
		{
			name:     "Spilling corners saturate",
			in:       Box{-5, -5, 700, 500},
			expected: Box{0, 0, 639, 479},
		},
		{
			name:     "Interior box untouched",
			in:       Box{10, 20, 200, 100},
			expected: Box{10, 20, 200, 100},
		},
		{
			name:     "Fully outside collapses onto the border",
			in:       Box{700, 500, 900, 600},
			expected: Box{639, 479, 639, 479},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clip(640, 480); got != tt.expected {
				t.Errorf("Clip(640, 480) = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestXYWHToXYXYBatch(t *testing.T) {
	in := tensor.New(
		tensor.WithShape(2, 4),
		tensor.WithBacking([]float64{
			0, 0, 10, 10,
			5, 5, 0, 3,
		}),
	)

	out, err := XYWHToXYXY(in)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, []int(out.Shape()))
	assert.Equal(t, []float64{
		0, 0, 9, 9,
		5, 5, 5, 7,
	}, out.Float64s())
}

func TestXYXYToXYWHBatch(t *testing.T) {
	in := tensor.New(
		tensor.WithShape(2, 4),
		tensor.WithBacking([]float64{
			0, 0, 9, 9,
			4, 7, 4, 7,
		}),
	)

	out, err := XYXYToXYWH(in)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, []int(out.Shape()))
	assert.Equal(t, []float64{
		0, 0, 10, 10,
		4, 7, 1, 1,
	}, out.Float64s())
}

// TestBatchExtraColumnsIgnored feeds detector-style rows carrying score and
// class columns; conversions must read only the first four.
func TestBatchExtraColumnsIgnored(t *testing.T) {
	in := tensor.New(
		tensor.WithShape(1, 6),
		tensor.WithBacking([]float64{0, 0, 10, 10, 0.9, 3}),
	)

	out, err := XYWHToXYXY(in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, []int(out.Shape()))
	assert.Equal(t, []float64{0, 0, 9, 9}, out.Float64s())
}

func TestClipBatch(t *testing.T) {
	backing := []float64{
		-5, -5, 700, 500,
		10, 20, 200, 100,
	}
	in := tensor.New(tensor.WithShape(2, 4), tensor.WithBacking(backing))

	out, err := Clip(in, 640, 480)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, []int(out.Shape()))
	assert.Equal(t, []float64{
		0, 0, 639, 479,
		10, 20, 200, 100,
	}, out.Float64s())

	// The input table must be left as given.
	assert.Equal(t, []float64{
		-5, -5, 700, 500,
		10, 20, 200, 100,
	}, in.Float64s())
}

func TestBatchValidation(t *testing.T) {
	tests := []struct {
		name string
		in   *tensor.Dense
	}{
		{
			name: "Nil tensor",
			in:   nil,
		},
		{
			name: "Too few columns",
			in: tensor.New(
				tensor.WithShape(2, 3),
				tensor.WithBacking(make([]float64, 6)),
			),
		},
		{
			name: "Rank one",
			in: tensor.New(
				tensor.WithShape(4),
				tensor.WithBacking(make([]float64, 4)),
			),
		},
		{
			name: "Float32 dtype",
			in: tensor.New(
				tensor.WithShape(1, 4),
				tensor.WithBacking(make([]float32, 4)),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := XYWHToXYXY(tt.in); err == nil {
				t.Error("XYWHToXYXY() accepted invalid input")
			}
			if _, err := XYXYToXYWH(tt.in); err == nil {
				t.Error("XYXYToXYWH() accepted invalid input")
			}
			if _, err := Clip(tt.in, 640, 480); err == nil {
				t.Error("Clip() accepted invalid input")
			}
		})
	}
}
