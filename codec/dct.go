package codec

import (
	"github.com/thundermage117/codec/dct"
	"github.com/thundermage117/codec/pixel"
	"github.com/thundermage117/codec/quant"
)

// levelShift centres 8-bit samples on zero before the DCT
const levelShift = 128.0

// processPlaneDCT codes every complete 8x8 block of the plane.
// Samples of partial blocks at the right and bottom edges are copied unchanged.
// It returns the reconstruction and the coded indices in block order.
func (c *Codec) processPlaneDCT(plane *pixel.Image, table *quant.Table) (*pixel.Image, []float64) {
	out := plane.Clone()
	w, h := plane.Width(), plane.Height()
	blocksX, blocksY := w/dct.Size, h/dct.Size
	indices := make([]float64, 0, blocksX*blocksY*64)

	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			x0, y0 := bx*dct.Size, by*dct.Size

			var block dct.Block
			for i := 0; i < dct.Size; i++ {
				row := plane.Data[(y0+i)*w+x0:]
				for j := 0; j < dct.Size; j++ {
					block[i][j] = row[j]
				}
			}

			coeffs := dct.Forward(dct.Shift(block, -levelShift))
			for u := 0; u < dct.Size; u++ {
				for v := 0; v < dct.Size; v++ {
					if c.cfg.Quantize {
						q := table.At(u, v)
						idx := quant.Quantize(coeffs[u][v], q)
						indices = append(indices, idx)
						coeffs[u][v] = quant.Dequantize(idx, q)
					} else {
						indices = append(indices, coeffs[u][v])
					}
				}
			}

			recon := dct.Shift(dct.Inverse(coeffs), levelShift)
			for i := 0; i < dct.Size; i++ {
				row := out.Data[(y0+i)*w+x0:]
				for j := 0; j < dct.Size; j++ {
					row[j] = recon[i][j]
				}
			}
		}
	}
	return out, indices
}
