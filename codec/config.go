package codec

import (
	"fmt"
	"strings"

	"github.com/thundermage117/codec/chroma"
	"github.com/thundermage117/codec/quant"
)

// TransformKind selects the transform applied to each plane
type TransformKind int

const (
	// TransformDCT is the 8x8 block DCT path
	TransformDCT TransformKind = iota
	// TransformDWT is the full-image multi-level Haar wavelet path
	TransformDWT
)

// String returns "dct" or "dwt"
func (k TransformKind) String() string {
	switch k {
	case TransformDCT:
		return "dct"
	case TransformDWT:
		return "dwt"
	default:
		return fmt.Sprintf("TransformKind(%d)", int(k))
	}
}

// Valid reports whether k is a defined transform kind
func (k TransformKind) Valid() bool {
	return k == TransformDCT || k == TransformDWT
}

// ParseTransform accepts "dct", "dwt" and "wavelet" (case-insensitive)
func ParseTransform(s string) (TransformKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dct", "block":
		return TransformDCT, nil
	case "dwt", "wavelet", "haar":
		return TransformDWT, nil
	}
	return 0, fmt.Errorf("%w: transform %q", ErrInvalidParameter, s)
}

// Config is the immutable configuration of a Codec
type Config struct {
	// Quality factor in (0, 100], higher is better
	Quality float64

	// Quantize enables coefficient quantization.
	// When false the pipeline is a pure transform round trip.
	Quantize bool

	// Chroma is the chroma subsampling mode
	Chroma chroma.Mode

	// Transform selects block DCT or full-image DWT
	Transform TransformKind

	// Parallel processes the three planes concurrently.
	// The output is identical to serial processing.
	Parallel bool
}

// DefaultConfig returns quality 75, quantization on, 4:4:4, DCT
func DefaultConfig() Config {
	return Config{
		Quality:   75,
		Quantize:  true,
		Chroma:    chroma.Mode444,
		Transform: TransformDCT,
	}
}

// Validate checks every field without modifying the config
func (c Config) Validate() error {
	if err := quant.ValidateQuality(c.Quality); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuality, c.Quality)
	}
	if !c.Chroma.Valid() {
		return fmt.Errorf("%w: chroma mode %d", ErrInvalidParameter, int(c.Chroma))
	}
	if !c.Transform.Valid() {
		return fmt.Errorf("%w: transform %d", ErrInvalidParameter, int(c.Transform))
	}
	return nil
}

// String formats the config for logs and CLI output
func (c Config) String() string {
	q := "on"
	if !c.Quantize {
		q = "off"
	}
	return fmt.Sprintf("%s q=%g chroma=%s quant=%s", c.Transform, c.Quality, c.Chroma, q)
}
