package dicomio

import (
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

// Ensure PixelData implements imagetypes.PixelData
var _ imagetypes.PixelData = (*PixelData)(nil)

// PixelData is an in-memory, native (unencapsulated) frame store
type PixelData struct {
	frames    [][]byte
	frameInfo *imagetypes.FrameInfo
}

// NewPixelData creates an empty PixelData with the given frame info
func NewPixelData(frameInfo *imagetypes.FrameInfo) *PixelData {
	return &PixelData{
		frames:    make([][]byte, 0),
		frameInfo: frameInfo,
	}
}

// RGBFrameInfo describes 8-bit interleaved RGB frames of the given size
func RGBFrameInfo(width, height int) *imagetypes.FrameInfo {
	return &imagetypes.FrameInfo{
		Width:                     uint16(width),
		Height:                    uint16(height),
		BitsAllocated:             8,
		BitsStored:                8,
		HighBit:                   7,
		SamplesPerPixel:           3,
		PixelRepresentation:       0,
		PlanarConfiguration:       0,
		PhotometricInterpretation: PhotometricRGB,
	}
}

// GetFrame returns the pixel data for the specified frame (0-indexed)
func (p *PixelData) GetFrame(frameIndex int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(p.frames) {
		return nil, ErrFrameOutOfRange
	}
	return p.frames[frameIndex], nil
}

// AddFrame appends a new frame to the pixel data
func (p *PixelData) AddFrame(frameData []byte) error {
	p.frames = append(p.frames, frameData)
	return nil
}

// FrameCount returns the number of frames
func (p *PixelData) FrameCount() int {
	return len(p.frames)
}

// GetFrameInfo returns frame metadata
func (p *PixelData) GetFrameInfo() *imagetypes.FrameInfo {
	return p.frameInfo
}

// IsEncapsulated is always false: frames are stored uncompressed
func (p *PixelData) IsEncapsulated() bool {
	return false
}
