package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shreyas4546/motion/internal/sheet"
)

func newSheetCmd(opts *globalOptions) *cobra.Command {
	var (
		block  string
		output string
		so     sheet.Options
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Render a PNG contact sheet of one block",
		Long: `Samples one block at regular intervals after its trigger fires and lays the
frames out in a grid.

  motionctl sheet --block headline-accent --frames 12 --step 0.1 -o accent.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadStage()
			if err != nil {
				return err
			}
			r, err := findReveal(s, block)
			if err != nil {
				return err
			}
			opts.logger.Debug("rendering sheet", "block", block, "frames", so.Frames, "step", so.Step)
			if err := sheet.Save(cmd.Context(), r.Schedule(), so, output); err != nil {
				return fmt.Errorf("failed to render sheet: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&block, "block", "headline", "Block to render")
	f.StringVarP(&output, "output", "o", "sheet.png", "Output PNG path")
	f.IntVar(&so.Frames, "frames", 12, "Number of frames")
	f.Float64Var(&so.Step, "step", 0.1, "Seconds between frames")
	f.Float64Var(&so.Start, "start", 0, "Time of the first frame, from the trigger")
	f.IntVar(&so.Columns, "columns", 4, "Frames per row")
	f.IntVar(&so.CellWidth, "cell-width", 360, "Frame width in pixels")
	f.IntVar(&so.CellHeight, "cell-height", 120, "Frame height in pixels")
	return cmd
}
