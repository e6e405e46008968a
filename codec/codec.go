// Package codec implements the lossy transform codec: color conversion,
// optional chroma subsampling, per-plane block DCT or full-image Haar DWT
// with quantization, and reconstruction.
//
// A Codec is immutable after New and safe for concurrent use.
package codec

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thundermage117/codec/chroma"
	"github.com/thundermage117/codec/colorspace"
	"github.com/thundermage117/codec/pixel"
	"github.com/thundermage117/codec/quant"
)

// PlaneNames are the component names in processing order
var PlaneNames = [3]string{"Y", "Cr", "Cb"}

// Codec transforms, quantizes and reconstructs images
type Codec struct {
	cfg     Config
	luma    quant.Table
	chroma  quant.Table
	dwtStep float64
}

// New validates cfg and builds the quantization tables
func New(cfg Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	luma, chromaTable := quant.Tables(cfg.Quality)
	return &Codec{
		cfg:     cfg,
		luma:    luma,
		chroma:  chromaTable,
		dwtStep: quant.DWTBaseStep(cfg.Quality),
	}, nil
}

// NewFromParameters normalizes p and builds a Codec from it
func NewFromParameters(p *Parameters) (*Codec, error) {
	if p == nil {
		p = NewParameters()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return New(p.Config())
}

// Config returns the codec configuration
func (c *Codec) Config() Config { return c.cfg }

// LumaTable returns the luma quantization table
func (c *Codec) LumaTable() quant.Table { return c.luma }

// ChromaTable returns the chroma quantization table
func (c *Codec) ChromaTable() quant.Table { return c.chroma }

// DWTBaseStep returns the finest-band step used by the wavelet path
func (c *Codec) DWTBaseStep() float64 { return c.dwtStep }

// PlaneStats describes the coefficients produced for one plane
type PlaneStats struct {
	Name string

	// Width and Height of the plane as coded (after subsampling)
	Width  int
	Height int

	// Coefficients is the number of transform coefficients counted
	Coefficients int

	// EstimatedBits is the heuristic rate of the quantization indices
	EstimatedBits float64

	// MeasuredBytes is the zstd-compressed size of the quantization indices
	MeasuredBytes int

	// ZeroFraction is the share of indices that quantized to zero
	ZeroFraction float64
}

// Result is a reconstructed image plus rate figures
type Result struct {
	Image  *pixel.Image
	Planes [3]PlaneStats

	// EstimatedBits is the sum over planes
	EstimatedBits float64

	// MeasuredBytes is the sum over planes
	MeasuredBytes int

	// BitsPerPixel is EstimatedBits divided by the pixel count
	BitsPerPixel float64
}

// Process runs the full pipeline and returns the reconstructed B,G,R image.
// The input must be a 3-channel B,G,R image; it is not modified.
func (c *Codec) Process(img *pixel.Image) (*pixel.Image, error) {
	res, err := c.ProcessWithStats(img)
	if err != nil {
		return nil, err
	}
	return res.Image, nil
}

// ProcessWithStats is Process plus per-plane rate statistics
func (c *Codec) ProcessWithStats(img *pixel.Image) (*Result, error) {
	if img == nil || img.Channels() != 3 {
		return nil, ErrInvalidImage
	}
	start := time.Now()
	width, height := img.Width(), img.Height()

	// 1. Color conversion
	ycrcb, err := colorspace.ToYCrCb(img)
	if err != nil {
		return nil, fmt.Errorf("color conversion failed: %w", err)
	}
	y, cr, cb, err := colorspace.Split(ycrcb)
	if err != nil {
		return nil, err
	}
	planes := [3]*pixel.Image{y, cr, cb}

	// 2. Per-plane transform, quantization and reconstruction
	var out [3]*pixel.Image
	var stats [3]PlaneStats
	run := func(i int) error {
		p, st, err := c.processComponent(planes[i], i != 0, width, height)
		if err != nil {
			return fmt.Errorf("plane %s: %w", PlaneNames[i], err)
		}
		st.Name = PlaneNames[i]
		out[i], stats[i] = p, st
		return nil
	}

	if c.cfg.Parallel {
		var g errgroup.Group
		for i := range planes {
			g.Go(func() error { return run(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range planes {
			if err := run(i); err != nil {
				return nil, err
			}
		}
	}

	// 3. Reassemble and convert back
	merged, err := colorspace.Merge(out[0], out[1], out[2])
	if err != nil {
		return nil, err
	}
	bgr, err := colorspace.ToBGR(merged)
	if err != nil {
		return nil, fmt.Errorf("color conversion failed: %w", err)
	}

	res := &Result{Image: bgr, Planes: stats}
	for _, st := range stats {
		res.EstimatedBits += st.EstimatedBits
		res.MeasuredBytes += st.MeasuredBytes
	}
	res.BitsPerPixel = res.EstimatedBits / float64(width*height)

	slog.Debug("codec: processed image",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("config", c.cfg.String()),
		slog.Float64("bpp", res.BitsPerPixel),
		slog.Duration("elapsed", time.Since(start)))

	return res, nil
}

// processComponent subsamples a chroma plane when configured, codes it and
// restores full resolution.
func (c *Codec) processComponent(plane *pixel.Image, isChroma bool, width, height int) (*pixel.Image, PlaneStats, error) {
	if !isChroma || c.cfg.Chroma == chroma.Mode444 {
		return c.processPlane(plane, isChroma)
	}

	small, err := chroma.Downsample(plane, c.cfg.Chroma)
	if err != nil {
		return nil, PlaneStats{}, err
	}
	coded, st, err := c.processPlane(small, isChroma)
	if err != nil {
		return nil, PlaneStats{}, err
	}
	full, err := chroma.Upsample(coded, c.cfg.Chroma, width, height)
	if err != nil {
		return nil, PlaneStats{}, err
	}
	return full, st, nil
}

// processPlane codes one single-channel plane with the configured transform
func (c *Codec) processPlane(plane *pixel.Image, isChroma bool) (*pixel.Image, PlaneStats, error) {
	var (
		out     *pixel.Image
		indices []float64
	)
	switch c.cfg.Transform {
	case TransformDWT:
		out, indices = c.processPlaneDWT(plane)
	default:
		table := &c.luma
		if isChroma {
			table = &c.chroma
		}
		out, indices = c.processPlaneDCT(plane, table)
	}

	st, err := planeStats(indices)
	if err != nil {
		return nil, PlaneStats{}, err
	}
	st.Width, st.Height = plane.Width(), plane.Height()
	return out, st, nil
}

func planeStats(indices []float64) (PlaneStats, error) {
	measured, err := quant.MeasureRate(indices)
	if err != nil {
		return PlaneStats{}, fmt.Errorf("rate measurement failed: %w", err)
	}

	zeros := 0
	for _, v := range indices {
		if v > -0.5 && v < 0.5 {
			zeros++
		}
	}

	st := PlaneStats{
		Coefficients:  len(indices),
		EstimatedBits: quant.EstimateBits(indices),
		MeasuredBytes: measured,
	}
	if len(indices) > 0 {
		st.ZeroFraction = float64(zeros) / float64(len(indices))
	}
	return st, nil
}
