package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thundermage117/codec/pixel"
)

func TestToYCrCbPureRed(t *testing.T) {
	bgr := pixel.MustNew(1, 1, 3)
	bgr.Set(0, 0, ChannelR, 255)

	ycrcb, err := ToYCrCb(bgr)
	require.NoError(t, err)

	// Y = 0.299*255, Cr = (255-Y)*0.713+128, Cb = (0-Y)*0.564+128
	y := 0.299 * 255
	assert.InDelta(t, y, ycrcb.At(0, 0, ChannelY), 1e-9)
	assert.InDelta(t, (255-y)*0.713+128, ycrcb.At(0, 0, ChannelCr), 1e-9)
	assert.InDelta(t, (0-y)*0.564+128, ycrcb.At(0, 0, ChannelCb), 1e-9)
}

func TestForwardIsUnclamped(t *testing.T) {
	// Out-of-gamut chroma stays out of range: only the inverse clamps
	_, cr, _ := Forward(0, 0, 255)
	assert.Greater(t, cr, 255.0)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		b, g, r float64
	}{
		{"black", 0, 0, 0},
		{"white", 255, 255, 255},
		{"gray", 128, 128, 128},
		{"arbitrary", 100, 50, 200},
		{"green heavy", 10, 250, 100},
		{"blue", 255, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bgr := pixel.MustNew(1, 1, 3)
			bgr.Set(0, 0, ChannelB, tt.b)
			bgr.Set(0, 0, ChannelG, tt.g)
			bgr.Set(0, 0, ChannelR, tt.r)

			ycrcb, err := ToYCrCb(bgr)
			require.NoError(t, err)
			back, err := ToBGR(ycrcb)
			require.NoError(t, err)

			require.True(t, back.SameShape(bgr))
			for c := 0; c < 3; c++ {
				assert.InDelta(t, bgr.At(0, 0, c), back.At(0, 0, c), 1.0, "channel %d", c)
			}
		})
	}
}

func TestToBGRClamps(t *testing.T) {
	ycrcb := pixel.MustNew(2, 1, 3)
	copy(ycrcb.Data, []float64{
		250, 255, 255, // very bright with saturated chroma
		5, 0, 0, // very dark with negative chroma offsets
	})

	bgr, err := ToBGR(ycrcb)
	require.NoError(t, err)
	for i, v := range bgr.Data {
		assert.GreaterOrEqual(t, v, 0.0, "sample %d", i)
		assert.LessOrEqual(t, v, 255.0, "sample %d", i)
	}
}

func TestChannelCount(t *testing.T) {
	_, err := ToYCrCb(pixel.MustNew(2, 2, 1))
	assert.ErrorIs(t, err, ErrChannelCount)

	_, err = ToBGR(nil)
	assert.ErrorIs(t, err, ErrChannelCount)
}

func TestSplitMerge(t *testing.T) {
	img := pixel.MustNew(4, 3, 3)
	for i := range img.Data {
		img.Data[i] = float64(i % 251)
	}

	y, cr, cb, err := Split(img)
	require.NoError(t, err)
	assert.Equal(t, img.At(3, 2, ChannelCr), cr.At(3, 2, 0))

	merged, err := Merge(y, cr, cb)
	require.NoError(t, err)
	assert.Equal(t, img.Data, merged.Data)

	_, err = Merge(y, cr, pixel.MustNew(3, 3, 1))
	assert.ErrorIs(t, err, pixel.ErrShapeMismatch)
}
