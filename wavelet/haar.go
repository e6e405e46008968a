// Package wavelet implements the orthonormal Haar wavelet transform in two
// forms: a fixed three-level decomposition of an 8x8 block and a multi-level
// decomposition of a whole image plane.
package wavelet

import "math"

// invSqrt2 is 1/sqrt(2), the Haar analysis/synthesis gain
const invSqrt2 = 1.0 / math.Sqrt2

// forward1D performs one level of the 1D Haar transform in-place.
// Averages land in [0, n/2) and details in [n/2, n). n must be even.
func forward1D(data, tmp []float64) {
	n := len(data)
	half := n / 2
	for k := 0; k < half; k++ {
		a, b := data[2*k], data[2*k+1]
		tmp[k] = (a + b) * invSqrt2
		tmp[k+half] = (a - b) * invSqrt2
	}
	copy(data, tmp[:n])
}

// inverse1D undoes forward1D in-place.
func inverse1D(data, tmp []float64) {
	n := len(data)
	half := n / 2
	for k := 0; k < half; k++ {
		avg, det := data[k], data[k+half]
		tmp[2*k] = (avg + det) * invSqrt2
		tmp[2*k+1] = (avg - det) * invSqrt2
	}
	copy(data, tmp[:n])
}

// Forward8x8 applies a 3-level 2D Haar decomposition to an 8x8 block.
// Each level transforms rows then columns of the current LL quadrant (8, 4, 2).
//
// Coefficient layout:
//
//	[0][0]                   LL3
//	[0][1], [1][0], [1][1]   level 3 details
//	[0..1][2..3], ...        level 2 details
//	[0..3][4..7], ...        level 1 details
func Forward8x8(src [8][8]float64) [8][8]float64 {
	dst := src
	var col, tmp [8]float64

	for size := 8; size >= 2; size /= 2 {
		for i := 0; i < size; i++ {
			forward1D(dst[i][:size], tmp[:])
		}
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				col[i] = dst[i][j]
			}
			forward1D(col[:size], tmp[:])
			for i := 0; i < size; i++ {
				dst[i][j] = col[i]
			}
		}
	}
	return dst
}

// Inverse8x8 reverses Forward8x8, starting from the coarsest level and
// undoing columns before rows.
func Inverse8x8(src [8][8]float64) [8][8]float64 {
	dst := src
	var col, tmp [8]float64

	for size := 2; size <= 8; size *= 2 {
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				col[i] = dst[i][j]
			}
			inverse1D(col[:size], tmp[:])
			for i := 0; i < size; i++ {
				dst[i][j] = col[i]
			}
		}
		for i := 0; i < size; i++ {
			inverse1D(dst[i][:size], tmp[:])
		}
	}
	return dst
}
