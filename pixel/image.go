// Package pixel provides the sample buffer shared by every stage of the codec
// pipeline.
package pixel

import "errors"

var (
	// ErrInvalidDimensions is returned when width, height or channels is not positive
	ErrInvalidDimensions = errors.New("pixel: invalid image dimensions")

	// ErrShapeMismatch is returned when two images that must agree in shape do not
	ErrShapeMismatch = errors.New("pixel: image shape mismatch")

	// ErrChannelOutOfRange is returned when a channel index is outside [0, channels)
	ErrChannelOutOfRange = errors.New("pixel: channel out of range")
)

// Image is a rectangular buffer of real-valued samples.
// Layout is row-major and interleaved by channel:
// index = (y*width + x)*channels + c
type Image struct {
	width    int
	height   int
	channels int

	// Data holds width*height*channels samples
	Data []float64
}

// New allocates a zero-filled image
func New(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Image{
		width:    width,
		height:   height,
		channels: channels,
		Data:     make([]float64, width*height*channels),
	}, nil
}

// MustNew is like New but panics on invalid dimensions.
// Intended for tests and for callers whose dimensions are already validated.
func MustNew(width, height, channels int) *Image {
	img, err := New(width, height, channels)
	if err != nil {
		panic(err)
	}
	return img
}

// Wrap builds an image around an existing sample slice without copying it.
// len(data) must equal width*height*channels.
func Wrap(data []float64, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height*channels {
		return nil, ErrShapeMismatch
	}
	return &Image{width: width, height: height, channels: channels, Data: data}, nil
}

// Width returns the image width in pixels
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels
func (m *Image) Height() int { return m.height }

// Channels returns the number of interleaved channels
func (m *Image) Channels() int { return m.channels }

// Len returns the total number of samples
func (m *Image) Len() int { return len(m.Data) }

// Index returns the offset of sample (x, y, c) in Data
func (m *Image) Index(x, y, c int) int {
	return (y*m.width+x)*m.channels + c
}

// At returns the sample at (x, y, c)
func (m *Image) At(x, y, c int) float64 {
	return m.Data[m.Index(x, y, c)]
}

// Set stores v at (x, y, c)
func (m *Image) Set(x, y, c int, v float64) {
	m.Data[m.Index(x, y, c)] = v
}

// SameShape reports whether o has the same width, height and channel count
func (m *Image) SameShape(o *Image) bool {
	if m == nil || o == nil {
		return false
	}
	return m.width == o.width && m.height == o.height && m.channels == o.channels
}

// Clone returns a deep copy
func (m *Image) Clone() *Image {
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return &Image{width: m.width, height: m.height, channels: m.channels, Data: data}
}

// Fill sets every sample to v
func (m *Image) Fill(v float64) {
	for i := range m.Data {
		m.Data[i] = v
	}
}

// Clamp returns a copy with every sample limited to [lo, hi]
func (m *Image) Clamp(lo, hi float64) *Image {
	out := m.Clone()
	for i, v := range out.Data {
		out.Data[i] = min(max(v, lo), hi)
	}
	return out
}
