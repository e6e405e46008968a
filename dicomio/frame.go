// Package dicomio moves frames between DICOM pixel data and pixel.Image.
//
// Only native 8-bit data is handled: MONOCHROME1, MONOCHROME2, RGB
// (interleaved or planar) and YBR_FULL.
package dicomio

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/thundermage117/codec/colorspace"
	"github.com/thundermage117/codec/pixel"
)

// Photometric interpretations handled by ReadFrame
const (
	PhotometricMonochrome1 = "MONOCHROME1"
	PhotometricMonochrome2 = "MONOCHROME2"
	PhotometricRGB         = "RGB"
	PhotometricYBRFull     = "YBR_FULL"
)

var (
	// ErrUnsupportedBitDepth is returned for anything but 8 bits allocated
	ErrUnsupportedBitDepth = errors.New("dicomio: only 8-bit pixel data is supported")

	// ErrUnsupportedPhotometric is returned for an unhandled photometric interpretation
	ErrUnsupportedPhotometric = errors.New("dicomio: unsupported photometric interpretation")

	// ErrEncapsulated is returned for compressed pixel data
	ErrEncapsulated = errors.New("dicomio: encapsulated pixel data must be decoded first")

	// ErrFrameOutOfRange is returned for a frame index past the last frame
	ErrFrameOutOfRange = errors.New("dicomio: frame index out of range")

	// ErrFrameSize is returned when a frame is shorter than its frame info requires
	ErrFrameSize = errors.New("dicomio: frame data too short")
)

// frameLayout is the geometry and sample interpretation of one native frame
type frameLayout struct {
	width, height int
	samples       int
	bitsAllocated int
	photometric   string
	planar        bool
}

// ReadFrame converts one frame to a 3-channel B,G,R image.
// Monochrome frames are replicated to all three channels; MONOCHROME1 is
// inverted so that higher values are brighter.
func ReadFrame(pd imagetypes.PixelData, frame int) (*pixel.Image, error) {
	// 1. Validate frame info
	frameInfo := pd.GetFrameInfo()
	if frameInfo == nil {
		return nil, fmt.Errorf("failed to get frame info from pixel data")
	}
	if pd.IsEncapsulated() {
		return nil, ErrEncapsulated
	}
	if frame < 0 || frame >= pd.FrameCount() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameOutOfRange, frame, pd.FrameCount())
	}

	layout := frameLayout{
		width:         int(frameInfo.Width),
		height:        int(frameInfo.Height),
		samples:       int(frameInfo.SamplesPerPixel),
		bitsAllocated: int(frameInfo.BitsAllocated),
		photometric:   string(frameInfo.PhotometricInterpretation),
		planar:        int(frameInfo.PlanarConfiguration) == 1,
	}

	// 2. Fetch frame data
	data, err := pd.GetFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to get frame %d: %w", frame, err)
	}

	// 3. Convert to B,G,R
	out, err := decodeFrame(data, layout)
	if err != nil {
		return nil, err
	}

	slog.Debug("dicomio: read frame",
		slog.Int("frame", frame),
		slog.Int("width", layout.width),
		slog.Int("height", layout.height),
		slog.String("photometric", layout.photometric))

	return out, nil
}

// decodeFrame converts native 8-bit frame bytes to a B,G,R image
func decodeFrame(data []byte, layout frameLayout) (*pixel.Image, error) {
	if layout.bitsAllocated != 8 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, layout.bitsAllocated)
	}

	numPixels := layout.width * layout.height
	samples := layout.samples
	photometric := layout.photometric
	if len(data) < numPixels*samples {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrFrameSize, len(data), numPixels*samples)
	}

	out, err := pixel.New(layout.width, layout.height, 3)
	if err != nil {
		return nil, err
	}

	switch {
	case samples == 1 && (photometric == PhotometricMonochrome1 || photometric == PhotometricMonochrome2):
		invert := photometric == PhotometricMonochrome1
		for i := 0; i < numPixels; i++ {
			v := float64(data[i])
			if invert {
				v = 255 - v
			}
			out.Data[i*3+0] = v
			out.Data[i*3+1] = v
			out.Data[i*3+2] = v
		}

	case samples == 3 && (photometric == PhotometricRGB || photometric == PhotometricYBRFull):
		for i := 0; i < numPixels; i++ {
			var s0, s1, s2 float64
			if layout.planar {
				s0 = float64(data[i])
				s1 = float64(data[numPixels+i])
				s2 = float64(data[2*numPixels+i])
			} else {
				s0 = float64(data[i*3+0])
				s1 = float64(data[i*3+1])
				s2 = float64(data[i*3+2])
			}

			r, g, b := s0, s1, s2
			if photometric == PhotometricYBRFull {
				// Sample order is Y, Cb, Cr
				b, g, r = colorspace.Inverse(s0, s2, s1)
			}
			out.Data[i*3+colorspace.ChannelB] = b
			out.Data[i*3+colorspace.ChannelG] = g
			out.Data[i*3+colorspace.ChannelR] = r
		}

	default:
		return nil, fmt.Errorf("%w: %s with %d samples", ErrUnsupportedPhotometric, photometric, samples)
	}
	return out, nil
}

// AppendFrame writes a 3-channel B,G,R image as an 8-bit interleaved RGB
// frame. Samples are clamped to [0, 255] and rounded. If dst carries frame
// info, its width and height must match the image.
func AppendFrame(dst imagetypes.PixelData, img *pixel.Image) error {
	if img == nil || img.Channels() != 3 {
		return fmt.Errorf("append frame: %w", pixel.ErrShapeMismatch)
	}
	if info := dst.GetFrameInfo(); info != nil {
		if int(info.Width) != img.Width() || int(info.Height) != img.Height() {
			return fmt.Errorf("append frame: image %dx%d, frame info %dx%d: %w",
				img.Width(), img.Height(), int(info.Width), int(info.Height), pixel.ErrShapeMismatch)
		}
	}

	src := img.Clamp(0, 255)
	numPixels := img.Width() * img.Height()
	frame := make([]byte, numPixels*3)
	for i := 0; i < numPixels; i++ {
		frame[i*3+0] = byte(math.Round(src.Data[i*3+colorspace.ChannelR]))
		frame[i*3+1] = byte(math.Round(src.Data[i*3+colorspace.ChannelG]))
		frame[i*3+2] = byte(math.Round(src.Data[i*3+colorspace.ChannelB]))
	}

	if err := dst.AddFrame(frame); err != nil {
		return fmt.Errorf("failed to add frame: %w", err)
	}
	return nil
}
