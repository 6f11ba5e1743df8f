package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shreyas4546/motion"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	idStyle     = lipgloss.NewStyle().Width(22)
	numStyle    = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
)

func newDelaysCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delays [block...]",
		Short: "Print the computed delay of every node",
		Long: `Prints, per block, each node's effective delay after the trigger, its
duration, and the time at which it settles. With no arguments every block
is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadStage()
			if err != nil {
				return err
			}
			reveals, err := selectReveals(s, args)
			if err != nil {
				return err
			}
			for i, r := range reveals {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				writeDelays(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

// selectReveals returns the named reveals, or all of them when names is
// empty. The scene's badge entrances are reachable as "scene".
func selectReveals(s *motion.Stage, names []string) ([]*motion.Reveal, error) {
	if len(names) == 0 {
		all := append([]*motion.Reveal(nil), s.Reveals()...)
		if sc := s.Scene(); sc != nil {
			all = append(all, sc.Entrances())
		}
		return all, nil
	}
	out := make([]*motion.Reveal, 0, len(names))
	for _, name := range names {
		r, err := findReveal(s, name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func findReveal(s *motion.Stage, name string) (*motion.Reveal, error) {
	if r := s.Reveal(name); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("no block named %q", name)
}

func writeDelays(w io.Writer, r *motion.Reveal) {
	sched := r.Schedule()
	trig := r.Trigger()
	fmt.Fprintln(w, titleStyle.Render(r.Name())+" "+
		mutedStyle.Render(fmt.Sprintf("(%s@%.2f, span %.3fs)", trig.Mode(), trig.Threshold(), sched.Span())))

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(idStyle.Render("node")),
		headerStyle.Render(numStyle.Render("delay")),
		headerStyle.Render(numStyle.Render("duration")),
		headerStyle.Render(numStyle.Render("settles")),
	))
	for _, n := range sched.Nodes() {
		d, _ := sched.Delay(n.ID)
		label := strings.Repeat("  ", n.Depth()) + n.ID
		if g, ok := n.UserData.(motion.Glyph); ok {
			label += " " + mutedStyle.Render(fmt.Sprintf("%q", g.Text))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(label),
			numStyle.Render(fmt.Sprintf("%.3f", d)),
			numStyle.Render(fmt.Sprintf("%.3f", n.Duration)),
			numStyle.Render(fmt.Sprintf("%.3f", d+n.Duration)),
		))
	}
}
