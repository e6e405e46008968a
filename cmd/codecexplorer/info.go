package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/thundermage117/codec/codec"
	"github.com/thundermage117/codec/quant"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print platform details and codec defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
			fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "NumCPU: %d\n", runtime.NumCPU())
			fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))

			switch runtime.GOARCH {
			case "arm64":
				printARM64Features(out)
			case "amd64":
				printAMD64Features(out)
			}

			def := codec.DefaultConfig()
			luma, chroma := quant.Tables(def.Quality)
			fmt.Fprintf(out, "\ndefault config: %s\n", def)
			fmt.Fprintf(out, "  luma table sum:   %.0f\n", luma.Sum())
			fmt.Fprintf(out, "  chroma table sum: %.0f\n", chroma.Sum())
			fmt.Fprintf(out, "  DWT base step:    %.2f\n", quant.DWTBaseStep(def.Quality))
			return nil
		},
	}
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:    %v\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
