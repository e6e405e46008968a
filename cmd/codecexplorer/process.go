package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/thundermage117/codec/analysis"
	"github.com/thundermage117/codec/codec"
	"github.com/thundermage117/codec/imageio"
)

func newProcessCmd() *cobra.Command {
	var flags codecFlags

	cmd := &cobra.Command{
		Use:   "process IN OUT",
		Short: "Run the codec over an image, print metrics and rate, save the reconstruction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			img, err := flags.load(args[0])
			if err != nil {
				return err
			}

			c, err := codec.New(cfg)
			if err != nil {
				return err
			}
			res, err := c.ProcessWithStats(img)
			if err != nil {
				return err
			}
			m, err := analysis.ComputeMetrics(img, res.Image)
			if err != nil {
				return err
			}

			if err := imageio.Save(args[1], res.Image); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config: %s\n", cfg)
			fmt.Fprintf(out, "size:   %dx%d\n", img.Width(), img.Height())
			printMetrics(out, m)
			printRate(out, res)
			fmt.Fprintf(out, "wrote %s\n", args[1])
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func printMetrics(w io.Writer, m *analysis.Metrics) {
	fmt.Fprintf(w, "PSNR   Y %6.2f  Cr %6.2f  Cb %6.2f dB\n", m.PSNRY, m.PSNRCr, m.PSNRCb)
	fmt.Fprintf(w, "SSIM   Y %6.4f  Cr %6.4f  Cb %6.4f\n", m.SSIMY, m.SSIMCr, m.SSIMCb)
}

func printRate(w io.Writer, res *codec.Result) {
	planes := res.Planes[:]
	coeffs := lo.SumBy(planes, func(p codec.PlaneStats) int { return p.Coefficients })
	for _, p := range planes {
		fmt.Fprintf(w, "plane %-2s %4dx%-4d zeros %5.1f%%  est %9.0f bits  zstd %7d bytes\n",
			p.Name, p.Width, p.Height, p.ZeroFraction*100, p.EstimatedBits, p.MeasuredBytes)
	}
	fmt.Fprintf(w, "total: %d coefficients, est %.0f bits (%.3f bpp), zstd %d bytes\n",
		coeffs, res.EstimatedBits, res.BitsPerPixel, res.MeasuredBytes)
}
