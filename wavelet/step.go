package wavelet

import "math"

// QuantStep returns the quantization step for the coefficient at (x, y) of
// a plane decomposed with the given number of levels.
//
// A coefficient in the detail band of level lev (0 = finest) gets
// max(1, baseStep/2^lev). The final LL approximation gets
// max(1, baseStep/2^levels). Levels are searched coarsest first so the
// innermost enclosing region wins.
func QuantStep(x, y, width, height, levels int, baseStep float64) float64 {
	return stepFor(x, y, Layout(width, height, levels), levels, baseStep)
}

func stepFor(x, y int, layout []Extent, levels int, baseStep float64) float64 {
	for lev := len(layout) - 1; lev >= 0; lev-- {
		e := layout[lev]
		inRegion := x < e.W && y < e.H
		inLL := x < e.W/2 && y < e.H/2
		if inRegion && !inLL {
			return math.Max(1.0, baseStep/float64(int(1)<<lev))
		}
	}
	return math.Max(1.0, baseStep/float64(int(1)<<levels))
}

// StepMap returns the quantization step of every sample of a width*height
// plane in row-major order.
func StepMap(width, height, levels int, baseStep float64) []float64 {
	layout := Layout(width, height, levels)
	steps := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			steps[y*width+x] = stepFor(x, y, layout, levels, baseStep)
		}
	}
	return steps
}
