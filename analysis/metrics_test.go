package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thundermage117/codec/pixel"
)

func gradientImage(w, h, c int) *pixel.Image {
	img := pixel.MustNew(w, h, c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				img.Set(x, y, ch, float64((x*4+y*2+ch*40)%256))
			}
		}
	}
	return img
}

func TestPSNRIdentical(t *testing.T) {
	img := gradientImage(16, 16, 3)
	assert.GreaterOrEqual(t, PSNR(img, img.Clone()), 99.0)
	assert.Equal(t, PerfectPSNR, PSNR(img, img))
}

func TestPSNRKnownError(t *testing.T) {
	a := pixel.MustNew(4, 4, 1)
	b := pixel.MustNew(4, 4, 1)
	b.Fill(1) // MSE = 1

	want := 10 * math.Log10(255*255)
	assert.InDelta(t, want, PSNR(a, b), 1e-9)

	mse, err := MSE(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mse)
}

func TestPSNRMismatch(t *testing.T) {
	assert.Equal(t, 0.0, PSNR(pixel.MustNew(4, 4, 1), pixel.MustNew(4, 5, 1)))
	assert.Equal(t, 0.0, PSNR(pixel.MustNew(4, 4, 1), pixel.MustNew(4, 4, 3)))

	_, err := MSE(pixel.MustNew(2, 2, 1), nil)
	assert.ErrorIs(t, err, pixel.ErrShapeMismatch)
}

func TestPSNRDecreasesWithNoise(t *testing.T) {
	img := gradientImage(32, 32, 1)
	prev := PSNR(img, img)
	for _, amp := range []float64{1, 4, 16} {
		noisy := img.Clone()
		for i := range noisy.Data {
			if i%2 == 0 {
				noisy.Data[i] += amp
			} else {
				noisy.Data[i] -= amp
			}
		}
		p := PSNR(img, noisy)
		t.Logf("amplitude %v: PSNR %.2f dB", amp, p)
		assert.Less(t, p, prev)
		prev = p
	}
}

func TestSSIM(t *testing.T) {
	img := gradientImage(33, 17, 1)

	t.Run("identical", func(t *testing.T) {
		assert.Equal(t, 1.0, SSIM(img, img.Clone()))
	})

	t.Run("mismatch", func(t *testing.T) {
		assert.Equal(t, 0.0, SSIM(img, pixel.MustNew(17, 33, 1)))
	})

	t.Run("degraded", func(t *testing.T) {
		noisy := img.Clone()
		for i := range noisy.Data {
			noisy.Data[i] += float64((i*7)%21) - 10
		}
		s := SSIM(img, noisy)
		t.Logf("SSIM of noisy copy: %.4f", s)
		assert.Less(t, s, 1.0)
		assert.Greater(t, s, 0.0)
	})

	t.Run("multi-channel uses channel 0", func(t *testing.T) {
		a := gradientImage(16, 16, 3)
		b := a.Clone()
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				b.Set(x, y, 2, 0)
			}
		}
		assert.Equal(t, 1.0, SSIM(a, b))
	})
}

func TestComputeMetrics(t *testing.T) {
	orig := gradientImage(24, 16, 3)

	m, err := ComputeMetrics(orig, orig.Clone())
	require.NoError(t, err)
	assert.Equal(t, PerfectPSNR, m.PSNRY)
	assert.Equal(t, PerfectPSNR, m.PSNRCr)
	assert.Equal(t, PerfectPSNR, m.PSNRCb)
	assert.Equal(t, 1.0, m.SSIMY)
	assert.Equal(t, 1.0, m.SSIMCr)
	assert.Equal(t, 1.0, m.SSIMCb)
	require.NotNil(t, m.ArtifactMap)
	assert.True(t, m.ArtifactMap.SameShape(orig))

	_, err = ComputeMetrics(orig, gradientImage(16, 16, 3))
	assert.ErrorIs(t, err, pixel.ErrShapeMismatch)
}
