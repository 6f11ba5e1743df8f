package motion

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Block   string  `json:"block,omitempty"`
	Name    string  `json:"name,omitempty"`
	Ratio   float64 `json:"ratio,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
	Time    float64 `json:"time,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	On      bool    `json:"on,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	FPS   float64      `json:"fps,omitempty"`
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays clock, visibility, and hover input against a Stage
// and captures labelled frames. It makes scroll-and-wait scenarios
// reproducible without a window.
//
// Supported actions: "advance" (seconds), "wait" (frames at fps), "tick"
// (absolute time), "visible" (block, ratio), "fire" (block), "hover",
// "press" and "present" (name, on), and "snapshot" (label).
type ScriptRunner struct {
	steps  []scriptStep
	fps    float64
	cursor int
	frames map[string]Frame
	done   bool
}

// LoadScript parses a JSON script and returns a runner ready to be stepped
// against a Stage.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "advance", "wait", "tick", "visible", "fire", "hover", "press", "present", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	if sc.FPS <= 0 {
		sc.FPS = 60
	}
	return &ScriptRunner{steps: sc.Steps, fps: sc.FPS, frames: make(map[string]Frame)}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Frames returns the captured frames by label.
func (r *ScriptRunner) Frames() map[string]Frame {
	return r.frames
}

// Step executes the next action against s. It returns false once the script
// is exhausted.
func (r *ScriptRunner) Step(s *Stage) bool {
	if r.done {
		return false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return false
	}
	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "advance":
		s.Tick(s.Now() + st.Seconds)
	case "wait":
		for i := 0; i < st.Frames; i++ {
			s.Tick(s.Now() + 1/r.fps)
		}
	case "tick":
		s.Tick(st.Time)
	case "visible":
		s.Observe(st.Block, st.Ratio)
	case "fire":
		s.Fire(st.Block)
	case "hover":
		s.Hover(st.Name, st.On)
	case "press":
		s.Press(st.Name, st.On)
	case "present":
		s.Present(st.Name, st.On)
	case "snapshot":
		r.frames[st.Label] = s.Frame()
	}

	if r.cursor >= len(r.steps) {
		r.done = true
	}
	return true
}

// Run executes every remaining step and returns the captured frames.
func (r *ScriptRunner) Run(s *Stage) map[string]Frame {
	for r.Step(s) {
	}
	return r.frames
}
