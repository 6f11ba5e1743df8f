package motion

import (
	"fmt"
	"log"
	"os"
)

// debugMaxNodes is the tree size past which a schedule is reported as large.
// Headlines are usually well under 100 characters.
const debugMaxNodes = 256

// debugLogSchedule prints a reveal's size and span to stderr.
func debugLogSchedule(r *Reveal) {
	sched := r.Schedule()
	_, _ = fmt.Fprintf(os.Stderr,
		"[motion] block %q: %d nodes | span: %.3fs | trigger: %s@%.2f\n",
		r.Name(), len(sched.Nodes()), sched.Span(), r.Trigger().Mode(), r.Trigger().Threshold())
	if n := len(sched.Nodes()); n > debugMaxNodes {
		_, _ = fmt.Fprintf(os.Stderr, "[motion] warning: block %q has %d nodes (threshold %d)\n",
			r.Name(), n, debugMaxNodes)
	}
}

// debugLogTrigger prints one trigger transition to stderr.
func debugLogTrigger(ev TriggerEvent) {
	_, _ = fmt.Fprintf(os.Stderr, "[motion] t=%.3fs block %q %s (ratio %.2f)\n",
		ev.Time, ev.Block, ev.Type, ev.Ratio)
}

// logUnknownBlock reports a visibility update for a block nobody registered.
// This is a wiring mistake in the host page, not a frame-time failure.
func logUnknownBlock(block string) {
	log.Printf("motion: no block named %q", block)
}
