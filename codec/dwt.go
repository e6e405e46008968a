package codec

import (
	"github.com/thundermage117/codec/pixel"
	"github.com/thundermage117/codec/quant"
	"github.com/thundermage117/codec/wavelet"
)

// processPlaneDWT decomposes the whole plane, quantizes each coefficient
// with its subband step and reconstructs. There is no level shift.
func (c *Codec) processPlaneDWT(plane *pixel.Image) (*pixel.Image, []float64) {
	out := plane.Clone()
	w, h := plane.Width(), plane.Height()
	levels := wavelet.Levels(w, h)

	wavelet.ForwardImage(out.Data, w, h, levels)

	indices := make([]float64, len(out.Data))
	if c.cfg.Quantize {
		steps := wavelet.StepMap(w, h, levels, c.dwtStep)
		for i, v := range out.Data {
			idx := quant.Quantize(v, steps[i])
			indices[i] = idx
			out.Data[i] = quant.Dequantize(idx, steps[i])
		}
	} else {
		copy(indices, out.Data)
	}

	wavelet.InverseImage(out.Data, w, h, levels)
	return out, indices
}
