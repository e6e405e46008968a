package dicomio

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	"github.com/cocosip/go-dicom/pkg/dicom/tag"
	"github.com/cocosip/go-dicom/pkg/imaging"

	"github.com/thundermage117/codec/pixel"
)

// ReadFile parses a DICOM file and converts one frame of its native pixel
// data to a B,G,R image, with the same support matrix as ReadFrame.
// Compressed transfer syntaxes are rejected with ErrEncapsulated.
func ReadFile(path string, frame int) (*pixel.Image, error) {
	// 1. Parse dataset
	res, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	ds := res.Dataset

	// 2. Locate pixel data
	pd, err := imaging.CreatePixelData(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to create pixel data: %w", err)
	}
	if pd.IsEncapsulated() {
		return nil, ErrEncapsulated
	}
	if frame < 0 || frame >= pd.FrameCount() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameOutOfRange, frame, pd.FrameCount())
	}

	photometric, _ := ds.GetString(tag.PhotometricInterpretation)
	info := pd.Info
	layout := frameLayout{
		width:         int(info.Width),
		height:        int(info.Height),
		samples:       int(info.SamplesPerPixel),
		bitsAllocated: int(info.BitsAllocated),
		photometric:   strings.TrimSpace(photometric),
		planar:        ds.TryGetUInt16(tag.PlanarConfiguration, 0) == 1,
	}

	// 3. Convert
	data, err := pd.GetFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to get frame %d: %w", frame, err)
	}
	out, err := decodeFrame(data, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("dicomio: read file",
		slog.String("path", path),
		slog.Int("frame", frame),
		slog.Int("frames", pd.FrameCount()),
		slog.String("photometric", layout.photometric))

	return out, nil
}
