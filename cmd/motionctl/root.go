package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shreyas4546/motion"
	"github.com/shreyas4546/motion/internal/logging"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	layoutPath string
	verbose    bool
	logger     *slog.Logger
}

// loadLayout returns the layout named by --layout, or the built-in one.
func (g *globalOptions) loadLayout() (motion.Layout, error) {
	if g.layoutPath == "" {
		g.logger.Debug("using built-in layout")
		return motion.DefaultLayout(), nil
	}
	l, err := motion.ReadLayout(g.layoutPath)
	if err != nil {
		return motion.Layout{}, fmt.Errorf("failed to load layout: %w", err)
	}
	g.logger.Debug("layout loaded", "path", g.layoutPath, "text", len(l.Text), "cascades", len(l.Cascades))
	return l, nil
}

// loadStage loads and builds the layout.
func (g *globalOptions) loadStage() (*motion.Stage, error) {
	l, err := g.loadLayout()
	if err != nil {
		return nil, err
	}
	s, err := l.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	s.SetDebugMode(g.verbose)
	for _, r := range s.Reveals() {
		g.logger.Debug("block built", "block", r.Name(), "nodes", len(r.Schedule().Nodes()), "span", r.Schedule().Span())
	}
	return s, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: logging.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "motionctl",
		Short: "motionctl inspects landing page animation timing",
		Long: `motionctl loads a motion layout (or the built-in one), prints the computed
stagger delays, samples frames at a given time, and renders contact sheets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.New(logging.Level(opts.verbose))
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.layoutPath, "layout", "", "YAML layout file (default: built-in layout)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newDelaysCmd(opts),
		newSampleCmd(opts),
		newSheetCmd(opts),
		newInitCmd(opts),
		newValidateCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(slog.LevelInfo).Error("motionctl failed", "error", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
