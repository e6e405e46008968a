package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thundermage117/codec/imageio"
	"github.com/thundermage117/codec/session"
)

func newViewCmd() *cobra.Command {
	var (
		flags  codecFlags
		mode   string
		gain   float64
		noTint bool
	)

	modeNames := lo.Map(session.ViewModes(), func(m session.ViewMode, _ int) string { return m.String() })

	cmd := &cobra.Command{
		Use:   "view IN OUT",
		Short: "Render one analysis view of the reconstruction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			vm, err := session.ParseViewMode(mode)
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

			s.SetArtifactGain(gain)
			s.SetTint(!noTint)
			if err := s.Update(cfg); err != nil {
				return err
			}

			v, err := s.View(vm)
			if err != nil {
				return err
			}
			if err := imageio.Save(args[1], v); err != nil {
				return err
			}

			m, err := s.Metrics()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s view, %s\n", cases.Title(language.English).String(vm.String()), cfg)
			printMetrics(out, m)
			fmt.Fprintf(out, "wrote %s\n", args[1])
			return nil
		},
	}
	flags.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&mode, "mode", session.ViewArtifacts.String(), "view: "+strings.Join(modeNames, ", "))
	fs.Float64Var(&gain, "gain", 5, "artifact view amplification")
	fs.BoolVar(&noTint, "no-tint", false, "render chroma planes as gray")
	return cmd
}
