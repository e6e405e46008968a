package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thundermage117/codec/pixel"
)

func TestArtifactMap(t *testing.T) {
	a, err := pixel.Wrap([]float64{10, 20, 30, 40}, 2, 2, 1)
	require.NoError(t, err)
	b, err := pixel.Wrap([]float64{12, 20, 0, 140}, 2, 2, 1)
	require.NoError(t, err)

	out, err := ArtifactMap(a, b, DefaultGain)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 0, 150, 255}, out.Data)

	_, err = ArtifactMap(a, pixel.MustNew(2, 2, 3), DefaultGain)
	assert.ErrorIs(t, err, pixel.ErrShapeMismatch)
}

func TestEdgeDistortionMap(t *testing.T) {
	orig := pixel.MustNew(5, 5, 3)
	recon := orig.Clone()
	recon.Set(2, 1, 0, 10) // vertical neighbour of (2,2)

	out, err := EdgeDistortionMap(orig, recon)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Channels())

	// At (2,2): gy = 0 - 10, gradient 10, so |0-10|*4 = 40
	assert.Equal(t, 40.0, out.At(2, 2, 0))
	// Borders are never written
	for x := 0; x < 5; x++ {
		assert.Equal(t, 0.0, out.At(x, 0, 0))
		assert.Equal(t, 0.0, out.At(x, 4, 0))
	}

	_, err = EdgeDistortionMap(orig, pixel.MustNew(4, 5, 3))
	assert.ErrorIs(t, err, pixel.ErrShapeMismatch)
}

func TestBlockingMap(t *testing.T) {
	// Left 8 columns are 100, the rest 110
	img := pixel.MustNew(16, 9, 1)
	for y := 0; y < 9; y++ {
		for x := 0; x < 16; x++ {
			v := 100.0
			if x >= 8 {
				v = 110
			}
			img.Set(x, y, 0, v)
		}
	}

	out, err := BlockingMap(img)
	require.NoError(t, err)

	assert.Equal(t, 80.0, out.At(8, 3, 0))
	assert.Equal(t, 0.0, out.At(7, 3, 0))
	assert.Equal(t, 0.0, out.At(0, 0, 0))
	// Horizontal boundary at y=8 has no vertical step
	assert.Equal(t, 0.0, out.At(3, 8, 0))
	// Corner at (8,8) sees the horizontal step only
	assert.Equal(t, 80.0, out.At(8, 8, 0))
}

func TestBlockingMapSaturates(t *testing.T) {
	img := pixel.MustNew(9, 1, 1)
	img.Set(8, 0, 0, 255)

	out, err := BlockingMap(img)
	require.NoError(t, err)
	assert.Equal(t, 255.0, out.At(8, 0, 0))
}
