package analysis

import (
	"math"

	"github.com/thundermage117/codec/pixel"
)

// DefaultGain is the artifact map amplification used by ComputeMetrics
const DefaultGain = 5.0

const (
	edgeGain     = 4.0
	blockingGain = 8.0
	blockSize    = 8
)

// ArtifactMap returns min(255, |a-b|*gain) per sample, same shape as the inputs.
// Unlike PSNR and SSIM, which report 0 for mismatched inputs, a shape
// mismatch here is an error: there is no meaningful map to return.
func ArtifactMap(a, b *pixel.Image, gain float64) (*pixel.Image, error) {
	if !a.SameShape(b) {
		return nil, pixel.ErrShapeMismatch
	}

	out, err := pixel.New(a.Width(), a.Height(), a.Channels())
	if err != nil {
		return nil, err
	}
	for i, v := range a.Data {
		out.Data[i] = math.Min(255, math.Abs(v-b.Data[i])*gain)
	}
	return out, nil
}

// EdgeDistortionMap compares central-difference gradient magnitudes of
// channel 0 and returns a single-channel map of min(255, |gO-gR|*4).
// Border pixels are 0.
func EdgeDistortionMap(original, reconstructed *pixel.Image) (*pixel.Image, error) {
	if original == nil || reconstructed == nil ||
		original.Width() != reconstructed.Width() || original.Height() != reconstructed.Height() {
		return nil, pixel.ErrShapeMismatch
	}

	w, h := original.Width(), original.Height()
	out, err := pixel.New(w, h, 1)
	if err != nil {
		return nil, err
	}

	grad := func(m *pixel.Image, x, y int) float64 {
		gx := m.At(x+1, y, 0) - m.At(x-1, y, 0)
		gy := m.At(x, y+1, 0) - m.At(x, y-1, 0)
		return math.Sqrt(gx*gx + gy*gy)
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			d := math.Abs(grad(original, x, y)-grad(reconstructed, x, y)) * edgeGain
			out.Data[y*w+x] = math.Min(255, d)
		}
	}
	return out, nil
}

// BlockingMap scores discontinuities across 8x8 block boundaries of
// channel 0 and returns a single-channel map of min(255, score*8).
func BlockingMap(img *pixel.Image) (*pixel.Image, error) {
	if img == nil {
		return nil, pixel.ErrInvalidDimensions
	}

	w, h := img.Width(), img.Height()
	out, err := pixel.New(w, h, 1)
	if err != nil {
		return nil, err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var score float64
			if x%blockSize == 0 && x > 0 {
				score += math.Abs(img.At(x, y, 0) - img.At(x-1, y, 0))
			}
			if y%blockSize == 0 && y > 0 {
				score += math.Abs(img.At(x, y, 0) - img.At(x, y-1, 0))
			}
			out.Data[y*w+x] = math.Min(255, score*blockingGain)
		}
	}
	return out, nil
}
