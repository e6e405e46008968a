package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thundermage117/codec/pixel"
)

func uniformChannel(width, height int, value float64) *pixel.Image {
	img := pixel.MustNew(width, height, 1)
	img.Fill(value)
	return img
}

// gradientChannel holds i%200+28, all in [28, 227]
func gradientChannel(width, height int) *pixel.Image {
	img := pixel.MustNew(width, height, 1)
	for i := range img.Data {
		img.Data[i] = float64(i%200 + 28)
	}
	return img
}

func TestInspectBlockQuantTableMinValue(t *testing.T) {
	c := mustCodec(t, dctConfig(50))
	d := c.InspectBlock(uniformChannel(16, 16, 128), 0, 0, false)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.GreaterOrEqual(t, d.QuantTable[i][j], 1.0)
		}
	}
}

func TestInspectBlockLumaVsChromaTable(t *testing.T) {
	c := mustCodec(t, dctConfig(50))
	channel := uniformChannel(8, 8, 128)

	luma := c.InspectBlock(channel, 0, 0, false)
	chromaDebug := c.InspectBlock(channel, 0, 0, true)
	assert.NotEqual(t, luma.QuantTable, chromaDebug.QuantTable)
}

func TestInspectBlockDCDominatesForUniform(t *testing.T) {
	cfg := dctConfig(50)
	cfg.Quantize = false
	d := mustCodec(t, cfg).InspectBlock(uniformChannel(8, 8, 200), 0, 0, false)

	// (200-128)*8
	assert.InDelta(t, 576.0, d.Coefficients[0][0], 1e-6)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i != 0 || j != 0 {
				assert.InDelta(t, 0.0, d.Coefficients[i][j], 1e-6, "AC coefficient [%d][%d]", i, j)
			}
		}
	}
	// Without quantization the indices are the raw coefficients
	assert.Equal(t, d.Coefficients, d.Quantized)
}

func TestInspectBlockQuantizationRelationship(t *testing.T) {
	d := mustCodec(t, dctConfig(75)).InspectBlock(gradientChannel(8, 8), 0, 0, false)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := math.Round(d.Coefficients[i][j] / d.QuantTable[i][j])
			assert.Equal(t, want, d.Quantized[i][j], "at [%d][%d]", i, j)
			assert.Equal(t, math.Round(d.Quantized[i][j]), d.Quantized[i][j])
		}
	}
}

func TestInspectBlockOriginalPixelsMatch(t *testing.T) {
	channel := gradientChannel(16, 16)
	d := mustCodec(t, dctConfig(80)).InspectBlock(channel, 1, 1, false)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, channel.At(8+j, 8+i, 0), d.Original[i][j], "row %d col %d", i, j)
		}
	}
}

func TestInspectBlockZeroPadsPastEdge(t *testing.T) {
	channel := uniformChannel(13, 11, 50)
	d := mustCodec(t, dctConfig(80)).InspectBlock(channel, 1, 1, false)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := 0.0
			if 8+j < 13 && 8+i < 11 {
				want = 50
			}
			assert.Equal(t, want, d.Original[i][j], "row %d col %d", i, j)
		}
	}
}

func TestInspectBlockHigherQualityLowerQuantTable(t *testing.T) {
	channel := uniformChannel(8, 8, 128)
	low := mustCodec(t, dctConfig(10)).InspectBlock(channel, 0, 0, false)
	high := mustCodec(t, dctConfig(90)).InspectBlock(channel, 0, 0, false)

	var lowSum, highSum float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			lowSum += low.QuantTable[i][j]
			highSum += high.QuantTable[i][j]
		}
	}
	assert.Greater(t, lowSum, highSum)
}

// The reconstruction shown by InspectBlock is the one Process produces
func TestInspectBlockMatchesPlanePath(t *testing.T) {
	channel := gradientChannel(16, 16)
	c := mustCodec(t, dctConfig(40))

	out, _ := c.processPlaneDCT(channel, &c.chroma)
	d := c.InspectBlock(channel, 1, 0, true)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, out.At(8+j, i, 0), d.Reconstructed[i][j], "row %d col %d", i, j)
		}
	}
}

// The wavelet path has no block structure; inspection yields an all-zero
// snapshot instead of an error.
func TestInspectBlockWaveletReturnsZeroSnapshot(t *testing.T) {
	cfg := dctConfig(50)
	cfg.Transform = TransformDWT
	d := mustCodec(t, cfg).InspectBlock(gradientChannel(16, 16), 0, 0, false)

	assert.Equal(t, BlockDebugData{}, d)
}

func TestInspectHaarBlock(t *testing.T) {
	t.Run("unquantized round trip", func(t *testing.T) {
		cfg := dctConfig(50)
		cfg.Quantize = false
		d := mustCodec(t, cfg).InspectHaarBlock(gradientChannel(16, 16), 1, 1)

		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				assert.InDelta(t, d.Original[i][j], d.Reconstructed[i][j], 1e-9)
				assert.Equal(t, d.Coefficients[i][j], d.Quantized[i][j])
			}
		}
	})

	t.Run("constant block", func(t *testing.T) {
		c := mustCodec(t, dctConfig(50))
		d := c.InspectHaarBlock(uniformChannel(8, 8, 100), 0, 0)

		// Base step 32: LL gets 32/8, finest details 32
		assert.Equal(t, 4.0, d.QuantTable[0][0])
		assert.Equal(t, 8.0, d.QuantTable[0][1])
		assert.Equal(t, 8.0, d.QuantTable[1][1])
		assert.Equal(t, 16.0, d.QuantTable[0][2])
		assert.Equal(t, 32.0, d.QuantTable[7][7])
		assert.Equal(t, 32.0, d.QuantTable[0][4])

		assert.InDelta(t, 800, d.Coefficients[0][0], 1e-9)
		assert.InDelta(t, 200, d.Quantized[0][0], 1e-9)
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				assert.InDelta(t, 100, d.Reconstructed[i][j], 1e-9)
			}
		}
	})

	t.Run("ignores configured transform", func(t *testing.T) {
		cfg := dctConfig(50)
		cfg.Transform = TransformDWT
		d := mustCodec(t, cfg).InspectHaarBlock(uniformChannel(8, 8, 100), 0, 0)
		assert.InDelta(t, 800, d.Coefficients[0][0], 1e-9)
	})

	t.Run("nil plane", func(t *testing.T) {
		d := mustCodec(t, dctConfig(50)).InspectHaarBlock(nil, 0, 0)
		assert.Equal(t, BlockDebugData{}, d)
	})
}
