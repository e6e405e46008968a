// Package reference runs production codecs over the same input so their
// reconstructions can be measured with the analysis package.
package reference

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"log/slog"
	"time"

	gen2brain "github.com/gen2brain/webp"
	xwebp "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/thundermage117/codec/analysis"
	"github.com/thundermage117/codec/codec"
	"github.com/thundermage117/codec/imageio"
	"github.com/thundermage117/codec/pixel"
)

var (
	// ErrUnknownKind is returned for an unrecognised baseline kind
	ErrUnknownKind = errors.New("reference: unknown baseline kind")

	// ErrInvalidQuality is returned for a quality outside [1, 100]
	ErrInvalidQuality = errors.New("reference: quality must be in [1, 100]")
)

// Kind selects a baseline codec
type Kind int

const (
	// KindJPEG is baseline JPEG from image/jpeg
	KindJPEG Kind = iota
	// KindWebP is lossy WebP
	KindWebP
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindWebP:
		return "webp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds lists every baseline in display order
func Kinds() []Kind {
	return []Kind{KindJPEG, KindWebP}
}

// Baseline is one encode/decode round through a real codec
type Baseline struct {
	Kind    Kind
	Quality int

	// Image is the decoded B,G,R reconstruction
	Image *pixel.Image

	// Bytes is the encoded size
	Bytes int
}

// BitsPerPixel returns the encoded size per source pixel
func (b *Baseline) BitsPerPixel() float64 {
	return bitsPerPixel(b.Bytes, b.Image)
}

// Reconstruct encodes img with the given codec and decodes it again
func Reconstruct(kind Kind, img *pixel.Image, quality int) (*Baseline, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	rgba, err := imageio.ToRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}

	start := time.Now()
	var buf bytes.Buffer

	switch kind {
	case KindJPEG:
		if err := jpeg.Encode(&buf, rgba, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("jpeg encode: %w", err)
		}
	case KindWebP:
		if err := gen2brain.Encode(&buf, rgba, gen2brain.Options{Quality: quality, Lossless: false}); err != nil {
			return nil, fmt.Errorf("webp encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	size := buf.Len()

	var decoded *pixel.Image
	switch kind {
	case KindJPEG:
		m, err := jpeg.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("jpeg decode: %w", err)
		}
		decoded, err = imageio.FromImage(m)
		if err != nil {
			return nil, err
		}
	case KindWebP:
		m, err := xwebp.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("webp decode: %w", err)
		}
		decoded, err = imageio.FromImage(m)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("reference: reconstructed",
		slog.String("kind", kind.String()),
		slog.Int("quality", quality),
		slog.Int("bytes", size),
		slog.Duration("elapsed", time.Since(start)))

	return &Baseline{
		Kind:    kind,
		Quality: quality,
		Image:   decoded,
		Bytes:   size,
	}, nil
}

// Row is one line of a comparison
type Row struct {
	Name string

	// Bytes is the encoded size; for our codec, the zstd-compressed
	// quantization indices
	Bytes        int
	BitsPerPixel float64
	Metrics      *analysis.Metrics
}

// Compare runs our codec with cfg and every baseline at quality, then
// measures each reconstruction against img. Rows come back in a fixed
// order: our codec first, then Kinds().
func Compare(img *pixel.Image, cfg codec.Config, quality int) ([]Row, error) {
	c, err := codec.New(cfg)
	if err != nil {
		return nil, err
	}

	kinds := Kinds()
	rows := make([]Row, 1+len(kinds))

	var g errgroup.Group

	g.Go(func() error {
		res, err := c.ProcessWithStats(img)
		if err != nil {
			return err
		}
		m, err := analysis.ComputeMetrics(img, res.Image)
		if err != nil {
			return err
		}
		rows[0] = Row{
			Name:         "codec " + cfg.String(),
			Bytes:        res.MeasuredBytes,
			BitsPerPixel: bitsPerPixel(res.MeasuredBytes, img),
			Metrics:      m,
		}
		return nil
	})

	for i, kind := range kinds {
		g.Go(func() error {
			b, err := Reconstruct(kind, img, quality)
			if err != nil {
				return err
			}
			m, err := analysis.ComputeMetrics(img, b.Image)
			if err != nil {
				return err
			}
			rows[i+1] = Row{
				Name:         fmt.Sprintf("%s q=%d", kind, quality),
				Bytes:        b.Bytes,
				BitsPerPixel: b.BitsPerPixel(),
				Metrics:      m,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func bitsPerPixel(n int, img *pixel.Image) float64 {
	if img == nil || img.Width()*img.Height() == 0 {
		return 0
	}
	return float64(n*8) / float64(img.Width()*img.Height())
}
