package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/thundermage117/codec/codec"
	"github.com/thundermage117/codec/imageio"
	"github.com/thundermage117/codec/session"
)

func newInspectCmd() *cobra.Command {
	var (
		flags   codecFlags
		bx, by  int
		plane   string
		heatmap string
		scale   int
		haar    bool
	)

	cmd := &cobra.Command{
		Use:   "inspect IN",
		Short: "Print the five 8x8 stages of one block: original, coefficients, table, quantized, reconstructed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			offset, err := parsePlane(plane)
			if err != nil {
				return err
			}
			img, err := flags.load(args[0])
			if err != nil {
				return err
			}

			s, err := session.New(img)
			if err != nil {
				return err
			}
			defer s.Close()

			inspect, kind := s.InspectBlock, "dct"
			if haar {
				inspect, kind = s.InspectHaarBlock, "haar"
			}
			d, err := inspect(bx, by, offset, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s block (%d,%d) plane %s, %s\n", kind, bx, by, codec.PlaneNames[offset], cfg)
			printGrid(out, "original", d.Original)
			printGrid(out, "coefficients", d.Coefficients)
			printGrid(out, "quant table", d.QuantTable)
			printGrid(out, "quantized", d.Quantized)
			printGrid(out, "reconstructed", d.Reconstructed)

			if heatmap != "" {
				rgba := session.RenderBlock(d.Coefficients, scale)
				m, err := imageio.FromImage(rgba)
				if err != nil {
					return err
				}
				if err := imageio.Save(heatmap, m); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", heatmap)
			}
			return nil
		},
	}
	flags.register(cmd)
	fs := cmd.Flags()
	fs.IntVar(&bx, "bx", 0, "block column")
	fs.IntVar(&by, "by", 0, "block row")
	fs.StringVar(&plane, "plane", "y", "plane: y, cr or cb")
	fs.StringVar(&heatmap, "heatmap", "", "also save a coefficient heat map to this file")
	fs.IntVar(&scale, "scale", 32, "heat map pixels per coefficient")
	fs.BoolVar(&haar, "haar", false, "use the three-level 8x8 block Haar transform instead of the DCT")
	return cmd
}

// parsePlane maps y, cr or cb to a plane offset
func parsePlane(s string) (int, error) {
	names := lo.Map(codec.PlaneNames[:], func(n string, _ int) string { return strings.ToLower(n) })
	idx := lo.IndexOf(names, strings.ToLower(strings.TrimSpace(s)))
	if idx < 0 {
		return 0, fmt.Errorf("unknown plane %q (want %s)", s, strings.Join(names, ", "))
	}
	return idx, nil
}

func printGrid(w io.Writer, title string, g [8][8]float64) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, row := range g {
		cells := lo.Map(row[:], func(v float64, _ int) string { return fmt.Sprintf("%8.2f", v) })
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}
