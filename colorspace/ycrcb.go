// Package colorspace converts between the interleaved B,G,R sample order used
// by the pipeline and the Y,Cr,Cb luma/chroma encoding.
package colorspace

import (
	"errors"

	"github.com/thundermage117/codec/pixel"
)

// ErrChannelCount is returned when an image has fewer than three channels
var ErrChannelCount = errors.New("colorspace: image needs at least 3 channels")

// Channel offsets in a converted image
const (
	ChannelY  = 0
	ChannelCr = 1
	ChannelCb = 2
)

// Channel offsets in a B,G,R image
const (
	ChannelB = 0
	ChannelG = 1
	ChannelR = 2
)

// Forward converts one B,G,R sample triple to Y,Cr,Cb.
// The forward direction is exact: no clamping.
func Forward(b, g, r float64) (y, cr, cb float64) {
	y = 0.299*r + 0.587*g + 0.114*b
	cr = (r-y)*0.713 + 128
	cb = (b-y)*0.564 + 128
	return
}

// Inverse converts one Y,Cr,Cb triple back to B,G,R, clamping each output to [0,255]
func Inverse(y, cr, cb float64) (b, g, r float64) {
	r = clamp8(y + 1.402*(cr-128))
	g = clamp8(y - 0.344136*(cb-128) - 0.714136*(cr-128))
	b = clamp8(y + 1.772*(cb-128))
	return
}

// ToYCrCb converts a B,G,R image to a 3-channel Y,Cr,Cb image.
// Channels beyond the third are ignored.
func ToYCrCb(src *pixel.Image) (*pixel.Image, error) {
	if src == nil || src.Channels() < 3 {
		return nil, ErrChannelCount
	}

	out, err := pixel.New(src.Width(), src.Height(), 3)
	if err != nil {
		return nil, err
	}

	stride := src.Channels()
	numPixels := src.Width() * src.Height()
	for i := 0; i < numPixels; i++ {
		in := src.Data[i*stride:]
		y, cr, cb := Forward(in[ChannelB], in[ChannelG], in[ChannelR])
		out.Data[i*3+ChannelY] = y
		out.Data[i*3+ChannelCr] = cr
		out.Data[i*3+ChannelCb] = cb
	}
	return out, nil
}

// ToBGR converts a Y,Cr,Cb image back to B,G,R with every sample clamped to [0,255]
func ToBGR(src *pixel.Image) (*pixel.Image, error) {
	if src == nil || src.Channels() < 3 {
		return nil, ErrChannelCount
	}

	out, err := pixel.New(src.Width(), src.Height(), 3)
	if err != nil {
		return nil, err
	}

	stride := src.Channels()
	numPixels := src.Width() * src.Height()
	for i := 0; i < numPixels; i++ {
		in := src.Data[i*stride:]
		b, g, r := Inverse(in[ChannelY], in[ChannelCr], in[ChannelCb])
		out.Data[i*3+ChannelB] = b
		out.Data[i*3+ChannelG] = g
		out.Data[i*3+ChannelR] = r
	}
	return out, nil
}

func clamp8(v float64) float64 {
	return max(0, min(255, v))
}
