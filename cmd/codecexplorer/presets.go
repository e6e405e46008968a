package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thundermage117/codec/codec"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List named codec presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCONFIG\tDESCRIPTION")
			for _, p := range codec.Presets() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Config, p.Description)
			}
			return tw.Flush()
		},
	}
}
