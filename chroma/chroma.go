// Package chroma implements chroma subsampling of single-channel planes.
package chroma

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thundermage117/codec/pixel"
)

// ErrInvalidMode is returned for an unrecognised subsampling mode
var ErrInvalidMode = errors.New("chroma: invalid subsampling mode")

// Mode is a chroma subsampling scheme
type Mode int

const (
	// Mode444 keeps chroma at full resolution
	Mode444 Mode = 444
	// Mode422 halves chroma horizontally
	Mode422 Mode = 422
	// Mode420 halves chroma horizontally and vertically
	Mode420 Mode = 420
)

// Factors returns the horizontal and vertical subsampling factors
func (m Mode) Factors() (sx, sy int) {
	switch m {
	case Mode422:
		return 2, 1
	case Mode420:
		return 2, 2
	default:
		return 1, 1
	}
}

// Valid reports whether m is one of the defined modes
func (m Mode) Valid() bool {
	return m == Mode444 || m == Mode422 || m == Mode420
}

// String returns "4:4:4", "4:2:2" or "4:2:0"
func (m Mode) String() string {
	switch m {
	case Mode444:
		return "4:4:4"
	case Mode422:
		return "4:2:2"
	case Mode420:
		return "4:2:0"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts 444, 422, 420 and their "4:4:4" style spellings
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.TrimSpace(s), ":", "") {
	case "444":
		return Mode444, nil
	case "422":
		return Mode422, nil
	case "420":
		return Mode420, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// FromInt maps an integer mode code to a Mode. Unknown codes fall back to 4:4:4.
func FromInt(code int) Mode {
	switch code {
	case 422:
		return Mode422
	case 420:
		return Mode420
	default:
		return Mode444
	}
}

// Downsample averages each sx-by-sy neighbourhood of a single-channel plane.
// The output is ceil(w/sx) by ceil(h/sy); neighbourhoods cut by the edge
// average only the samples that exist. Mode444 returns a copy.
func Downsample(plane *pixel.Image, mode Mode) (*pixel.Image, error) {
	if plane == nil || plane.Channels() != 1 {
		return nil, pixel.ErrShapeMismatch
	}
	if mode == Mode444 {
		return plane.Clone(), nil
	}

	sx, sy := mode.Factors()
	w, h := plane.Width(), plane.Height()
	newW := (w + sx - 1) / sx
	newH := (h + sy - 1) / sy

	out, err := pixel.New(newW, newH, 1)
	if err != nil {
		return nil, err
	}

	for y := 0; y < newH; y++ {
		for x := 0; x < newW; x++ {
			var sum float64
			count := 0
			startX, startY := x*sx, y*sy
			for dy := 0; dy < sy && startY+dy < h; dy++ {
				for dx := 0; dx < sx && startX+dx < w; dx++ {
					sum += plane.Data[(startY+dy)*w+startX+dx]
					count++
				}
			}
			out.Data[y*newW+x] = sum / float64(count)
		}
	}
	return out, nil
}

// Upsample expands a subsampled plane back to width x height by nearest
// neighbour replication. Mode444 returns a copy.
func Upsample(plane *pixel.Image, mode Mode, width, height int) (*pixel.Image, error) {
	if plane == nil || plane.Channels() != 1 {
		return nil, pixel.ErrShapeMismatch
	}
	if mode == Mode444 {
		return plane.Clone(), nil
	}

	out, err := pixel.New(width, height, 1)
	if err != nil {
		return nil, err
	}

	sx, sy := mode.Factors()
	srcW, srcH := plane.Width(), plane.Height()
	for y := 0; y < height; y++ {
		syy := min(y/sy, srcH-1)
		for x := 0; x < width; x++ {
			sxx := min(x/sx, srcW-1)
			out.Data[y*width+x] = plane.Data[syy*srcW+sxx]
		}
	}
	return out, nil
}

// BlockCoords maps 8x8 block coordinates in the full-resolution plane to
// the block covering the same area in the subsampled plane.
func BlockCoords(bx, by int, mode Mode) (int, int) {
	sx, sy := mode.Factors()
	return bx / sx, by / sy
}
