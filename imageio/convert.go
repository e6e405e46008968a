// Package imageio converts between image.Image and pixel.Image and reads
// and writes image files.
package imageio

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/pkg/errors"

	"github.com/thundermage117/codec/pixel"
)

// ErrUnsupportedChannels is returned when rendering an image that is neither
// single-channel nor B,G,R
var ErrUnsupportedChannels = errors.New("imageio: need 1 or 3 channels")

// FromImage converts any image to a 3-channel B,G,R pixel.Image with
// samples in [0, 255]. Alpha is ignored.
func FromImage(src image.Image) (*pixel.Image, error) {
	b := src.Bounds()
	out, err := pixel.New(b.Dx(), b.Dy(), 3)
	if err != nil {
		return nil, errors.Wrapf(err, "image bounds %v", b)
	}

	rgba, ok := src.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(b)
		draw.Draw(rgba, b, src, b.Min, draw.Src)
	}

	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			i := (y*w + x) * 3
			out.Data[i+0] = float64(p[2]) // B
			out.Data[i+1] = float64(p[1]) // G
			out.Data[i+2] = float64(p[0]) // R
		}
	}
	return out, nil
}

// ToRGBA renders a single-channel image as gray or a B,G,R image as colour.
// Samples are clamped to [0, 255] and rounded.
func ToRGBA(m *pixel.Image) (*image.RGBA, error) {
	if m == nil {
		return nil, ErrUnsupportedChannels
	}
	ch := m.Channels()
	if ch != 1 && ch != 3 {
		return nil, errors.Wrapf(ErrUnsupportedChannels, "got %d", ch)
	}

	w, h := m.Width(), m.Height()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.RGBA
			if ch == 1 {
				v := to8(m.At(x, y, 0))
				c = color.RGBA{R: v, G: v, B: v, A: 255}
			} else {
				c = color.RGBA{
					R: to8(m.At(x, y, 2)),
					G: to8(m.At(x, y, 1)),
					B: to8(m.At(x, y, 0)),
					A: 255,
				}
			}
			dst.SetRGBA(x, y, c)
		}
	}
	return dst, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(max(0, min(255, v))))
}
