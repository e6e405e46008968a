package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thundermage117/codec/reference"
)

func newCompareCmd() *cobra.Command {
	var (
		flags      codecFlags
		refQuality int
	)

	cmd := &cobra.Command{
		Use:   "compare IN",
		Short: "Compare the codec against JPEG and WebP at a matching quality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			img, err := flags.load(args[0])
			if err != nil {
				return err
			}

			q := refQuality
			if q == 0 {
				q = int(cfg.Quality + 0.5)
			}
			rows, err := reference.Compare(img, cfg, q)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBYTES\tBPP\tPSNR Y\tPSNR Cr\tPSNR Cb\tSSIM Y")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.2f\t%.2f\t%.2f\t%.4f\n",
					r.Name, r.Bytes, r.BitsPerPixel,
					r.Metrics.PSNRY, r.Metrics.PSNRCr, r.Metrics.PSNRCb, r.Metrics.SSIMY)
			}
			return tw.Flush()
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&refQuality, "ref-quality", 0, "quality for the reference codecs (default: --quality rounded)")
	return cmd
}
