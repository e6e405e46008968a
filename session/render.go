package session

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/gift"
)

// RenderBlock draws an 8x8 grid as a diverging heat map magnified by scale.
// Zero is white, the largest positive magnitude red and the largest
// negative magnitude blue.
func RenderBlock(grid [8][8]float64, scale int) *image.RGBA {
	scale = max(1, scale)

	var peak float64
	for _, row := range grid {
		for _, v := range row {
			peak = math.Max(peak, math.Abs(v))
		}
	}

	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y, row := range grid {
		for x, v := range row {
			src.SetRGBA(x, y, heat(v, peak))
		}
	}

	g := gift.New(gift.Resize(8*scale, 8*scale, gift.NearestNeighborResampling))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

func heat(v, peak float64) color.RGBA {
	t := 0.0
	if peak > 0 {
		t = v / peak
	}
	r, g, b := 1.0, 1.0-math.Abs(t), 1.0
	if t > 0 {
		b = 1 - t
	} else {
		r = 1 + t
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}
