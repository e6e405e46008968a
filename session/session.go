// Package session keeps an image and its latest reconstruction together so
// that views, metrics and block inspection can be requested repeatedly
// while the codec configuration changes.
//
// A Session is not safe for concurrent use. Manager is.
package session

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/thundermage117/codec/analysis"
	"github.com/thundermage117/codec/chroma"
	"github.com/thundermage117/codec/codec"
	"github.com/thundermage117/codec/colorspace"
	"github.com/thundermage117/codec/imageio"
	"github.com/thundermage117/codec/pixel"
)

var (
	// ErrClosed is returned by every method of a closed session
	ErrClosed = errors.New("session: closed")

	// ErrNotProcessed is returned when a view needs a reconstruction and Update has not run
	ErrNotProcessed = errors.New("session: image not processed yet")

	// ErrInvalidView is returned for an unknown view mode
	ErrInvalidView = errors.New("session: invalid view mode")

	// ErrNotFound is returned by Manager for an unknown session id
	ErrNotFound = errors.New("session: not found")
)

// Session holds an original B,G,R image, its cached Y,Cr,Cb form and the
// most recent reconstruction.
type Session struct {
	original       *pixel.Image
	originalYCrCb  *pixel.Image
	processedYCrCb *pixel.Image
	processedBGR   *pixel.Image

	cfg     codec.Config
	metrics *analysis.Metrics
	result  *codec.Result

	useTint      bool
	artifactGain float64
	closed       bool
}

// New creates a session for a 3-channel B,G,R image. The image is copied.
func New(img *pixel.Image) (*Session, error) {
	if img == nil || img.Channels() != 3 {
		return nil, codec.ErrInvalidImage
	}

	original := img.Clone()
	ycrcb, err := colorspace.ToYCrCb(original)
	if err != nil {
		return nil, err
	}

	return &Session{
		original:      original,
		originalYCrCb: ycrcb,
		useTint:       true,
		artifactGain:  analysis.DefaultGain,
	}, nil
}

// Update builds a codec for cfg, reprocesses the original and refreshes the metrics.
// The quality is clamped to at least 1.
func (s *Session) Update(cfg codec.Config) error {
	if s.closed {
		return ErrClosed
	}
	cfg.Quality = max(1, cfg.Quality)

	c, err := codec.New(cfg)
	if err != nil {
		return err
	}
	res, err := c.ProcessWithStats(s.original)
	if err != nil {
		return fmt.Errorf("session update: %w", err)
	}
	metrics, err := analysis.ComputeMetrics(s.original, res.Image)
	if err != nil {
		return fmt.Errorf("session update: %w", err)
	}
	processed, err := colorspace.ToYCrCb(res.Image)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.result = res
	s.metrics = metrics
	s.processedBGR = res.Image
	s.processedYCrCb = processed

	slog.Debug("session: updated",
		slog.String("config", cfg.String()),
		slog.Float64("psnr_y", metrics.PSNRY),
		slog.Float64("ssim_y", metrics.SSIMY))
	return nil
}

// Close releases the cached images. Later calls return ErrClosed.
func (s *Session) Close() {
	*s = Session{closed: true}
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool { return s.closed }

// Original returns the session's copy of the input image
func (s *Session) Original() *pixel.Image { return s.original }

// Config returns the configuration of the last Update
func (s *Session) Config() codec.Config { return s.cfg }

// Metrics returns the metrics of the last Update
func (s *Session) Metrics() (*analysis.Metrics, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.metrics == nil {
		return nil, ErrNotProcessed
	}
	return s.metrics, nil
}

// Result returns the codec result of the last Update
func (s *Session) Result() (*codec.Result, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.result == nil {
		return nil, ErrNotProcessed
	}
	return s.result, nil
}

// SetTint switches Cr and Cb views between tinted and grayscale rendering
func (s *Session) SetTint(enable bool) {
	s.useTint = enable
}

// SetArtifactGain sets the artifact view amplification. Non-positive values are ignored.
func (s *Session) SetArtifactGain(gain float64) {
	if gain > 0 {
		s.artifactGain = gain
	}
}

// ArtifactGain returns the current artifact view amplification
func (s *Session) ArtifactGain() float64 { return s.artifactGain }

// View renders the reconstruction in the given mode.
// RGB, artifact and plane views are 3-channel B,G,R; edge distortion and
// blocking views are single-channel.
func (s *Session) View(mode ViewMode) (*pixel.Image, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.processedYCrCb == nil {
		return nil, ErrNotProcessed
	}

	switch mode {
	case ViewRGB:
		return s.processedBGR.Clone(), nil
	case ViewArtifacts:
		return analysis.ArtifactMap(s.original, s.processedBGR, s.artifactGain)
	case ViewEdgeDistortion:
		return analysis.EdgeDistortionMap(s.original, s.processedBGR)
	case ViewBlocking:
		return analysis.BlockingMap(s.processedBGR)
	case ViewY, ViewCr, ViewCb:
		return s.planeView(mode)
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidView, int(mode))
}

// planeView renders one Y,Cr,Cb plane as B,G,R.
// With tint on, Cr drives red and Cb drives blue over a neutral 128.
func (s *Session) planeView(mode ViewMode) (*pixel.Image, error) {
	offset := colorspace.ChannelY
	switch mode {
	case ViewCr:
		offset = colorspace.ChannelCr
	case ViewCb:
		offset = colorspace.ChannelCb
	}

	plane, err := s.processedYCrCb.Plane(offset)
	if err != nil {
		return nil, err
	}

	out, err := pixel.New(plane.Width(), plane.Height(), 3)
	if err != nil {
		return nil, err
	}
	for i, v := range plane.Data {
		b, g, r := v, v, v
		switch {
		case mode == ViewCr && s.useTint:
			b, g = 128, 128
		case mode == ViewCb && s.useTint:
			g, r = 128, 128
		}
		out.Data[i*3+colorspace.ChannelB] = b
		out.Data[i*3+colorspace.ChannelG] = g
		out.Data[i*3+colorspace.ChannelR] = r
	}
	return out, nil
}

// RenderRGBA renders a view as an opaque RGBA image
func (s *Session) RenderRGBA(mode ViewMode) (*image.RGBA, error) {
	v, err := s.View(mode)
	if err != nil {
		return nil, err
	}
	return imageio.ToRGBA(v)
}

// InspectBlock runs block inspection on one plane of the original image.
// plane is colorspace.ChannelY, ChannelCr or ChannelCb. For chroma planes
// with subsampling, the plane is downsampled and (bx, by) remapped to the
// block covering the same area.
func (s *Session) InspectBlock(bx, by, plane int, cfg codec.Config) (codec.BlockDebugData, error) {
	c, channel, bx, by, err := s.inspectTarget(bx, by, plane, cfg)
	if err != nil {
		return codec.BlockDebugData{}, err
	}
	return c.InspectBlock(channel, bx, by, plane != colorspace.ChannelY), nil
}

// InspectHaarBlock is InspectBlock using the 8x8 block Haar transform
func (s *Session) InspectHaarBlock(bx, by, plane int, cfg codec.Config) (codec.BlockDebugData, error) {
	c, channel, bx, by, err := s.inspectTarget(bx, by, plane, cfg)
	if err != nil {
		return codec.BlockDebugData{}, err
	}
	return c.InspectHaarBlock(channel, bx, by), nil
}

// inspectTarget builds the codec and selects the (possibly subsampled)
// plane and block coordinates to inspect
func (s *Session) inspectTarget(bx, by, plane int, cfg codec.Config) (*codec.Codec, *pixel.Image, int, int, error) {
	if s.closed {
		return nil, nil, 0, 0, ErrClosed
	}
	cfg.Quality = max(1, cfg.Quality)

	channel, err := s.originalYCrCb.Plane(plane)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	c, err := codec.New(cfg)
	if err != nil {
		return nil, nil, 0, 0, err
	}

	if plane != colorspace.ChannelY && cfg.Chroma != chroma.Mode444 {
		channel, err = chroma.Downsample(channel, cfg.Chroma)
		if err != nil {
			return nil, nil, 0, 0, err
		}
		bx, by = chroma.BlockCoords(bx, by, cfg.Chroma)
	}
	return c, channel, bx, by, nil
}
