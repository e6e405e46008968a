package codec

import (
	"github.com/thundermage117/codec/dct"
	"github.com/thundermage117/codec/pixel"
	"github.com/thundermage117/codec/quant"
	"github.com/thundermage117/codec/wavelet"
)

// haarBlockLevels is the depth of the 8x8 block Haar decomposition
const haarBlockLevels = 3

// BlockDebugData is a snapshot of every stage of one 8x8 block
type BlockDebugData struct {
	// Original holds the raw samples (zero past the plane edge)
	Original [8][8]float64
	// Coefficients holds the DCT of the level-shifted block
	Coefficients [8][8]float64
	// QuantTable is the luma or chroma table for the block
	QuantTable [8][8]float64
	// Quantized holds round(c/q), or the raw coefficients when quantization is off
	Quantized [8][8]float64
	// Reconstructed holds the decoded samples
	Reconstructed [8][8]float64
}

// InspectBlock runs the block pipeline on the 8x8 region at (8*bx, 8*by)
// of channel 0 of plane and returns every intermediate grid.
//
// The full-image wavelet path has no block structure, so with TransformDWT
// the result is an all-zero snapshot rather than an error.
func (c *Codec) InspectBlock(plane *pixel.Image, bx, by int, isChroma bool) BlockDebugData {
	var d BlockDebugData
	if c.cfg.Transform == TransformDWT || plane == nil {
		return d
	}

	table := &c.luma
	if isChroma {
		table = &c.chroma
	}
	d.QuantTable = table.Grid()

	// 1. Extract the block, zero-padded past the edge
	block := extractBlock(plane, bx, by)
	d.Original = block

	// 2. Forward transform
	coeffs := dct.Forward(dct.Shift(block, -levelShift))
	d.Coefficients = coeffs

	// 3. Quantization
	for u := 0; u < dct.Size; u++ {
		for v := 0; v < dct.Size; v++ {
			if c.cfg.Quantize {
				idx := quant.Quantize(coeffs[u][v], d.QuantTable[u][v])
				d.Quantized[u][v] = idx
				coeffs[u][v] = quant.Dequantize(idx, d.QuantTable[u][v])
			} else {
				d.Quantized[u][v] = coeffs[u][v]
			}
		}
	}

	// 4. Reconstruction
	d.Reconstructed = dct.Shift(dct.Inverse(coeffs), levelShift)
	return d
}

// InspectHaarBlock is InspectBlock with the three-level 8x8 block Haar
// transform in place of the DCT, whatever the configured transform.
// QuantTable holds the subband step of each coefficient, derived from
// the wavelet base step; there is no level shift.
func (c *Codec) InspectHaarBlock(plane *pixel.Image, bx, by int) BlockDebugData {
	var d BlockDebugData
	if plane == nil {
		return d
	}

	block := extractBlock(plane, bx, by)
	d.Original = block

	coeffs := wavelet.Forward8x8(block)
	d.Coefficients = coeffs

	for i := 0; i < dct.Size; i++ {
		for j := 0; j < dct.Size; j++ {
			step := wavelet.QuantStep(j, i, dct.Size, dct.Size, haarBlockLevels, c.dwtStep)
			d.QuantTable[i][j] = step
			if c.cfg.Quantize {
				idx := quant.Quantize(coeffs[i][j], step)
				d.Quantized[i][j] = idx
				coeffs[i][j] = quant.Dequantize(idx, step)
			} else {
				d.Quantized[i][j] = coeffs[i][j]
			}
		}
	}

	d.Reconstructed = wavelet.Inverse8x8(coeffs)
	return d
}

// extractBlock copies the 8x8 block at (8*bx, 8*by) of channel 0,
// zero-padded past the plane edge
func extractBlock(plane *pixel.Image, bx, by int) dct.Block {
	x0, y0 := bx*dct.Size, by*dct.Size
	var block dct.Block
	for i := 0; i < dct.Size; i++ {
		for j := 0; j < dct.Size; j++ {
			x, y := x0+j, y0+i
			if x >= 0 && y >= 0 && x < plane.Width() && y < plane.Height() {
				block[i][j] = plane.At(x, y, 0)
			}
		}
	}
	return block
}
