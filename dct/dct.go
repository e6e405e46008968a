// Package dct implements the 8x8 two-dimensional DCT-II used by the block
// codec path.
package dct

import "math"

// Size is the block edge length
const Size = 8

// Block is an 8x8 grid of samples or coefficients, indexed [row][col]
type Block [Size][Size]float64

// cosTable[k][n] = cos((2n+1)*k*pi/16)
var cosTable = func() (t [Size][Size]float64) {
	for k := 0; k < Size; k++ {
		for n := 0; n < Size; n++ {
			t[k][n] = math.Cos(float64((2*n+1)*k) * math.Pi / 16.0)
		}
	}
	return
}()

// scale returns C(k): 1/sqrt(2) for the DC basis, 1 otherwise
func scale(k int) float64 {
	if k == 0 {
		return 1.0 / math.Sqrt2
	}
	return 1.0
}

// Forward performs the forward DCT-II on an 8x8 block
// F(u,v) = 1/4 * C(u) * C(v) * sum_x sum_y f(x,y) * cos((2x+1)u*pi/16) * cos((2y+1)v*pi/16)
// A constant block of value A maps to F(0,0) = 8A with all AC terms zero.
func Forward(src Block) Block {
	var dst Block
	for u := 0; u < Size; u++ {
		for v := 0; v < Size; v++ {
			var sum float64
			for x := 0; x < Size; x++ {
				cu := cosTable[u][x]
				for y := 0; y < Size; y++ {
					sum += src[x][y] * cu * cosTable[v][y]
				}
			}
			dst[u][v] = 0.25 * scale(u) * scale(v) * sum
		}
	}
	return dst
}

// Inverse performs the inverse DCT (DCT-III) on an 8x8 coefficient block.
// The basis is orthonormal, so Inverse(Forward(b)) reproduces b to
// floating-point precision.
func Inverse(src Block) Block {
	var dst Block
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			var sum float64
			for u := 0; u < Size; u++ {
				cu := scale(u) * cosTable[u][x]
				for v := 0; v < Size; v++ {
					sum += cu * scale(v) * src[u][v] * cosTable[v][y]
				}
			}
			dst[x][y] = 0.25 * sum
		}
	}
	return dst
}

// Shift adds delta to every sample and returns the result.
// The codec uses Shift(b, -128) before Forward and Shift(b, 128) after Inverse.
func Shift(b Block, delta float64) Block {
	for i := range b {
		for j := range b[i] {
			b[i][j] += delta
		}
	}
	return b
}
