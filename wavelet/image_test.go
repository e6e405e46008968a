package wavelet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{1, 1, 0},
		{2, 2, 1},
		{7, 8, 2},
		{8, 8, 3},
		{13, 11, 3},
		{64, 64, 6},
		{1024, 768, 6},
		{1, 512, 0},
	}

	for _, tt := range tests {
		got := Levels(tt.w, tt.h)
		assert.Equal(t, tt.want, got, "Levels(%d, %d)", tt.w, tt.h)
	}
}

func TestLayout(t *testing.T) {
	layout := Layout(13, 11, 3)
	require.Len(t, layout, 3)
	assert.Equal(t, Extent{W: 12, H: 10}, layout[0])
	assert.Equal(t, Extent{W: 6, H: 4}, layout[1])
	assert.Equal(t, Extent{W: 2, H: 2}, layout[2])

	// Stops once the region collapses below 2x2
	assert.Len(t, Layout(4, 4, 5), 2)
}

func TestImageRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		levels        int
	}{
		{"8x8 full", 8, 8, 3},
		{"odd 13x11", 13, 11, Levels(13, 11)},
		{"odd 7x8", 7, 8, Levels(7, 8)},
		{"64x48 one level", 64, 48, 1},
		{"64x48 max", 64, 48, Levels(64, 48)},
		{"zero levels", 5, 5, 0},
		{"more levels than fit", 16, 16, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.width * tt.height
			orig := make([]float64, n)
			for i := range orig {
				orig[i] = float64((i*37+11)%256) - 100
			}
			data := append([]float64(nil), orig...)

			ForwardImage(data, tt.width, tt.height, tt.levels)
			InverseImage(data, tt.width, tt.height, tt.levels)

			for i := range orig {
				if math.Abs(data[i]-orig[i]) > 1e-9 {
					t.Fatalf("mismatch at %d: got %v want %v", i, data[i], orig[i])
				}
			}
		})
	}
}

func TestImageEnergyConservation(t *testing.T) {
	const w, h = 32, 24
	data := make([]float64, w*h)
	for i := range data {
		data[i] = float64((i*13)%200) - 50
	}

	var before float64
	for _, v := range data {
		before += v * v
	}

	ForwardImage(data, w, h, Levels(w, h))

	var after float64
	for _, v := range data {
		after += v * v
	}
	assert.InDelta(t, before, after, 1e-6)
}

// Odd trailing columns/rows are outside every transformed region
func TestImageOddEdgeUntouched(t *testing.T) {
	const w, h = 5, 3
	data := make([]float64, w*h)
	for i := range data {
		data[i] = float64(i)
	}

	ForwardImage(data, w, h, Levels(w, h))

	for y := 0; y < h; y++ {
		assert.Equal(t, float64(y*w+w-1), data[y*w+w-1], "last column row %d", y)
	}
	for x := 0; x < w; x++ {
		assert.Equal(t, float64((h-1)*w+x), data[(h-1)*w+x], "last row col %d", x)
	}
}
