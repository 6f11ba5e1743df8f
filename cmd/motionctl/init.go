package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shreyas4546/motion"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var (
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in layout to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
			if err := motion.WriteLayout(motion.DefaultLayout(), output); err != nil {
				return fmt.Errorf("failed to write layout: %w", err)
			}
			opts.logger.Debug("layout written", "path", output)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "layout.yaml", "Output path")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
