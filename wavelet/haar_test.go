package wavelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillBlock(fn func(i, j int) float64) [8][8]float64 {
	var b [8][8]float64
	for i := range b {
		for j := range b[i] {
			b[i][j] = fn(i, j)
		}
	}
	return b
}

// A constant block concentrates all energy in [0][0] = 8A
func TestForward8x8Constant(t *testing.T) {
	const val = 10.0
	dst := Forward8x8(fillBlock(func(int, int) float64 { return val }))

	assert.InDelta(t, 8*val, dst[0][0], 1e-9)
	for i := range dst {
		for j := range dst[i] {
			if i == 0 && j == 0 {
				continue
			}
			assert.InDelta(t, 0.0, dst[i][j], 1e-9, "non-zero detail coefficient at %d,%d", i, j)
		}
	}
}

func TestBlockRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fill func(i, j int) float64
	}{
		{"gradient", func(i, j int) float64 { return float64(i + j) }},
		{"mixed", func(i, j int) float64 { return float64((i*17 + j*31 + 13) % 256) }},
		{"signed", func(i, j int) float64 { return float64((i*3+j*5+7)%256) - 128 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fillBlock(tt.fill)
			recovered := Inverse8x8(Forward8x8(src))
			for i := range src {
				for j := range src[i] {
					assert.InDelta(t, src[i][j], recovered[i][j], 1e-9, "mismatch at %d,%d", i, j)
				}
			}
		})
	}
}

func TestBlockEnergyConservation(t *testing.T) {
	src := fillBlock(func(i, j int) float64 { return float64((i*3+j*5+7)%256) - 128 })
	dst := Forward8x8(src)

	var eSrc, eDst float64
	for i := range src {
		for j := range src[i] {
			eSrc += src[i][j] * src[i][j]
			eDst += dst[i][j] * dst[i][j]
		}
	}
	assert.InDelta(t, eSrc, eDst, 1e-6)
}
