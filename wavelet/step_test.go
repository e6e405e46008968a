package wavelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantStep(t *testing.T) {
	const w, h, levels = 16, 16, 3
	const base = 32.0

	tests := []struct {
		name string
		x, y int
		want float64
	}{
		{"finest HL", 12, 0, 32},
		{"finest HH", 15, 15, 32},
		{"level 1 LH", 0, 6, 16},
		{"coarsest detail", 3, 3, 8},
		{"LL", 0, 0, 4},
		{"LL corner", 1, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuantStep(tt.x, tt.y, w, h, levels, base)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuantStepFloor(t *testing.T) {
	assert.Equal(t, 1.0, QuantStep(0, 0, 64, 64, 6, 2))
	assert.Equal(t, 1.0, QuantStep(63, 63, 64, 64, 6, 0.5))
}

// Samples outside every transformed region fall back to the LL step
func TestQuantStepOddEdge(t *testing.T) {
	assert.Equal(t, 4.0, QuantStep(4, 0, 5, 4, 2, 16))
}

func TestStepMapMatchesQuantStep(t *testing.T) {
	const w, h = 13, 11
	levels := Levels(w, h)
	steps := StepMap(w, h, levels, 20)

	assert.Len(t, steps, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, QuantStep(x, y, w, h, levels, 20), steps[y*w+x], "at %d,%d", x, y)
		}
	}
}
