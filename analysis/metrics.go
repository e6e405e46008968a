// Package analysis measures reconstruction fidelity and renders diagnostic
// maps of coding artifacts.
package analysis

import (
	"fmt"
	"math"

	"github.com/thundermage117/codec/colorspace"
	"github.com/thundermage117/codec/pixel"
)

const (
	// PerfectPSNR is reported when the images are identical
	PerfectPSNR = 100.0

	// perfectMSE is the MSE at or below which PSNR reports PerfectPSNR
	perfectMSE = 1e-10

	peak = 255.0
)

// MSE returns the mean squared error over all samples.
// It returns an error if the shapes differ.
func MSE(a, b *pixel.Image) (float64, error) {
	if !a.SameShape(b) {
		return 0, pixel.ErrShapeMismatch
	}

	var sum float64
	for i, v := range a.Data {
		d := v - b.Data[i]
		sum += d * d
	}
	return sum / float64(len(a.Data)), nil
}

// PSNR returns the peak signal-to-noise ratio in dB for 8-bit data.
// It returns 0 if the shapes differ and PerfectPSNR if the images match.
func PSNR(a, b *pixel.Image) float64 {
	mse, err := MSE(a, b)
	if err != nil {
		return 0
	}
	if mse <= perfectMSE {
		return PerfectPSNR
	}
	return 10.0 * math.Log10(peak*peak/mse)
}

// Metrics holds per-plane fidelity figures and the artifact map
type Metrics struct {
	PSNRY  float64
	PSNRCr float64
	PSNRCb float64

	SSIMY  float64
	SSIMCr float64
	SSIMCb float64

	// ArtifactMap is the amplified absolute difference of the B,G,R images
	ArtifactMap *pixel.Image
}

// ComputeMetrics converts both B,G,R images to Y,Cr,Cb and measures each
// plane. The artifact map uses DefaultGain.
func ComputeMetrics(original, reconstructed *pixel.Image) (*Metrics, error) {
	if !original.SameShape(reconstructed) {
		return nil, fmt.Errorf("compute metrics: %w", pixel.ErrShapeMismatch)
	}

	// 1. Convert both images and split planes
	origYCrCb, err := colorspace.ToYCrCb(original)
	if err != nil {
		return nil, fmt.Errorf("compute metrics: %w", err)
	}
	reconYCrCb, err := colorspace.ToYCrCb(reconstructed)
	if err != nil {
		return nil, fmt.Errorf("compute metrics: %w", err)
	}
	oy, ocr, ocb, err := colorspace.Split(origYCrCb)
	if err != nil {
		return nil, err
	}
	ry, rcr, rcb, err := colorspace.Split(reconYCrCb)
	if err != nil {
		return nil, err
	}

	// 2. Per-plane PSNR and SSIM
	m := &Metrics{
		PSNRY:  PSNR(oy, ry),
		PSNRCr: PSNR(ocr, rcr),
		PSNRCb: PSNR(ocb, rcb),
		SSIMY:  SSIM(oy, ry),
		SSIMCr: SSIM(ocr, rcr),
		SSIMCb: SSIM(ocb, rcb),
	}

	// 3. Artifact map on the B,G,R images
	m.ArtifactMap, err = ArtifactMap(original, reconstructed, DefaultGain)
	if err != nil {
		return nil, err
	}
	return m, nil
}
