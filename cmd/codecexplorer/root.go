package main

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thundermage117/codec/chroma"
	"github.com/thundermage117/codec/codec"
	"github.com/thundermage117/codec/dicomio"
	"github.com/thundermage117/codec/imageio"
	"github.com/thundermage117/codec/pixel"
)

// codecFlags are the codec settings shared by every command that runs the codec
type codecFlags struct {
	quality   float64
	chroma    string
	transform string
	noQuant   bool
	preset    string
	parallel  bool
	maxDim    int
	frame     int
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "codecexplorer",
		Short:        "Explore a teaching image codec: DCT/DWT, quantization, chroma subsampling",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages to stderr")

	root.AddCommand(
		newProcessCmd(),
		newInspectCmd(),
		newViewCmd(),
		newCompareCmd(),
		newPresetsCmd(),
		newInfoCmd(),
	)
	return root
}

func (f *codecFlags) register(cmd *cobra.Command) {
	def := codec.DefaultConfig()
	fs := cmd.Flags()
	fs.Float64VarP(&f.quality, "quality", "q", def.Quality, "quality in (0, 100]")
	fs.StringVar(&f.chroma, "chroma", def.Chroma.String(), "chroma subsampling: 444, 422 or 420")
	fs.StringVar(&f.transform, "transform", def.Transform.String(), "transform: dct or dwt")
	fs.BoolVar(&f.noQuant, "no-quant", false, "disable quantization")
	fs.StringVar(&f.preset, "preset", "", "start from a named preset; explicit flags override it")
	fs.BoolVar(&f.parallel, "parallel", false, "process planes concurrently")
	fs.IntVar(&f.maxDim, "max-dim", 0, "downscale inputs so neither side exceeds this (0 keeps size)")
	fs.IntVar(&f.frame, "frame", 0, "frame index for DICOM (.dcm) inputs")
}

// config builds a codec configuration from the preset (if any) and every
// flag the user set explicitly
func (f *codecFlags) config(cmd *cobra.Command) (codec.Config, error) {
	// 1. Base configuration
	cfg := codec.DefaultConfig()
	if f.preset != "" {
		p, err := codec.LookupPreset(f.preset)
		if err != nil {
			return codec.Config{}, err
		}
		cfg = p.Config
	}

	// 2. Explicit overrides
	fs := cmd.Flags()
	if f.preset == "" || fs.Changed("quality") {
		cfg.Quality = f.quality
	}
	if f.preset == "" || fs.Changed("chroma") {
		mode, err := chroma.ParseMode(f.chroma)
		if err != nil {
			return codec.Config{}, err
		}
		cfg.Chroma = mode
	}
	if f.preset == "" || fs.Changed("transform") {
		kind, err := codec.ParseTransform(f.transform)
		if err != nil {
			return codec.Config{}, err
		}
		cfg.Transform = kind
	}
	if fs.Changed("no-quant") {
		cfg.Quantize = !f.noQuant
	}
	if fs.Changed("parallel") {
		cfg.Parallel = f.parallel
	}

	// 3. Validate
	if err := cfg.Validate(); err != nil {
		return codec.Config{}, err
	}
	return cfg, nil
}

// load reads an image or DICOM file, applying --max-dim
func (f *codecFlags) load(path string) (*pixel.Image, error) {
	var src image.Image
	if strings.EqualFold(filepath.Ext(path), ".dcm") {
		m, err := dicomio.ReadFile(path, f.frame)
		if err != nil {
			return nil, err
		}
		if f.maxDim <= 0 {
			return m, nil
		}
		if src, err = imageio.ToRGBA(m); err != nil {
			return nil, err
		}
	} else {
		var err error
		if src, err = imageio.LoadImage(path); err != nil {
			return nil, err
		}
	}
	if f.maxDim > 0 {
		src = imageio.Fit(src, f.maxDim)
	}
	img, err := imageio.FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	slog.Debug("loaded input",
		slog.String("path", path),
		slog.Int("width", img.Width()),
		slog.Int("height", img.Height()))
	return img, nil
}
