package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the layout for configuration errors",
		Long:  `Builds every block, loop, hover, presence and the scene, and reports the first invalid value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadStage()
			if err != nil {
				return err
			}
			nodes := 0
			for _, r := range s.Reveals() {
				nodes += len(r.Schedule().Nodes())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "layout is valid: %d blocks, %d nodes\n", len(s.Reveals()), nodes)
			return nil
		},
	}
}
