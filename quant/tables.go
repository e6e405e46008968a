// Package quant provides JPEG-style quantization tables, scalar
// quantization and rate estimates for transform coefficients.
package quant

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuality is returned when a quality factor is outside (0, 100]
var ErrInvalidQuality = errors.New("quality must be in range (0, 100]")

// Table is an 8x8 quantization table in row-major order
type Table [64]float64

// LumaBase is the standard JPEG luminance quantization table
var LumaBase = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// ChromaBase is the standard JPEG chrominance quantization table
var ChromaBase = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// ValidateQuality checks that quality is in (0, 100]
func ValidateQuality(quality float64) error {
	if math.IsNaN(quality) || quality <= 0 || quality > 100 {
		return fmt.Errorf("%w: got %v", ErrInvalidQuality, quality)
	}
	return nil
}

// Scale converts a quality factor to a table multiplier.
// Quality 50 leaves the base tables unchanged; lower values grow the steps,
// higher values shrink them.
func Scale(quality float64) float64 {
	var s float64
	if quality < 50 {
		s = 5000.0 / quality
	} else {
		s = 200.0 - 2.0*quality
	}
	return s / 100.0
}

// NewTable scales a base table by quality. Every entry is at least 1.
func NewTable(base [64]int, quality float64) Table {
	var t Table
	scale := Scale(quality)
	for i, v := range base {
		t[i] = math.Max(1.0, math.Round(float64(v)*scale))
	}
	return t
}

// Tables returns the luma and chroma tables for quality
func Tables(quality float64) (luma, chroma Table) {
	return NewTable(LumaBase, quality), NewTable(ChromaBase, quality)
}

// At returns the entry at row u, column v
func (t *Table) At(u, v int) float64 {
	return t[u*8+v]
}

// Grid returns the table as an 8x8 grid
func (t *Table) Grid() [8][8]float64 {
	var g [8][8]float64
	for i := 0; i < 64; i++ {
		g[i/8][i%8] = t[i]
	}
	return g
}

// Sum returns the sum of all entries
func (t *Table) Sum() float64 {
	var s float64
	for _, v := range t {
		s += v
	}
	return s
}

// Quantize returns the quantization index round(coeff/step)
func Quantize(coeff, step float64) float64 {
	return math.Round(coeff / step)
}

// Dequantize returns the reconstruction idx*step
func Dequantize(idx, step float64) float64 {
	return idx * step
}

// DWTBaseStep returns the finest-band quantization step used by the
// wavelet path for quality.
func DWTBaseStep(quality float64) float64 {
	return 32.0 * Scale(quality)
}
