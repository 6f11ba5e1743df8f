package motion

import (
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// TriggerMode selects once-only or repeatable visibility semantics.
type TriggerMode uint8

const (
	OnceWhenVisible TriggerMode = iota // fire on first visibility, then latch
	WhileVisible                       // fire on every entry, report every exit
)

// String returns the config name of m.
func (m TriggerMode) String() string {
	switch m {
	case OnceWhenVisible:
		return "once"
	case WhileVisible:
		return "while-visible"
	default:
		return "unknown"
	}
}

// ParseTriggerMode resolves a config name. The empty string means OnceWhenVisible.
func ParseTriggerMode(name string) (TriggerMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "once", "once-when-visible":
		return OnceWhenVisible, nil
	case "while-visible", "repeat":
		return WhileVisible, nil
	}
	return OnceWhenVisible, configError("trigger mode", "unknown mode %q", name)
}

// MarshalYAML writes the mode by name.
func (m TriggerMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML reads a mode name.
func (m *TriggerMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTriggerMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// TriggerEventType identifies a visibility transition.
type TriggerEventType uint8

const (
	TriggerEnter TriggerEventType = iota // ratio crossed the threshold upward
	TriggerLeave                         // ratio dropped below the threshold
)

// String returns "enter" or "leave".
func (t TriggerEventType) String() string {
	if t == TriggerLeave {
		return "leave"
	}
	return "enter"
}

// TriggerConfig describes how a block reacts to viewport visibility.
type TriggerConfig struct {
	Mode TriggerMode `yaml:"mode"`
	// Threshold is the fraction of the element that must be on screen.
	Threshold float64 `yaml:"threshold"`
}

// Trigger turns a stream of intersection ratios into enter/leave events.
type Trigger struct {
	mode      TriggerMode
	threshold float64
	armed     bool
	visible   bool
}

// NewTrigger validates cfg. A threshold outside [0, 1] fails with a
// *ConfigurationError.
func NewTrigger(cfg TriggerConfig) (*Trigger, error) {
	if !finite(cfg.Threshold) || cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, configError("trigger threshold", "must be within [0, 1], got %v", cfg.Threshold)
	}
	if cfg.Mode != OnceWhenVisible && cfg.Mode != WhileVisible {
		return nil, configError("trigger mode", "unknown mode %d", cfg.Mode)
	}
	return &Trigger{mode: cfg.Mode, threshold: cfg.Threshold}, nil
}

// Update feeds the latest intersection ratio and reports the transition it
// caused, if any.
//
// Under OnceWhenVisible the first ratio at or above the threshold yields
// TriggerEnter and arms the trigger; every later update is ignored. Under
// WhileVisible each upward crossing yields TriggerEnter and each downward
// crossing yields TriggerLeave.
func (t *Trigger) Update(ratio float64) (TriggerEventType, bool) {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	ratio = clamp01(ratio)
	above := ratio >= t.threshold

	if t.mode == OnceWhenVisible {
		if t.armed || !above {
			return TriggerEnter, false
		}
		t.armed = true
		t.visible = true
		return TriggerEnter, true
	}

	switch {
	case above && !t.visible:
		t.visible = true
		return TriggerEnter, true
	case !above && t.visible:
		t.visible = false
		return TriggerLeave, true
	}
	return TriggerEnter, false
}

// Force fires the trigger as if the element became fully visible. Used for
// content that animates on mount rather than on scroll.
func (t *Trigger) Force() (TriggerEventType, bool) {
	return t.Update(1)
}

// Mode returns the trigger mode.
func (t *Trigger) Mode() TriggerMode { return t.mode }

// Threshold returns the visibility threshold.
func (t *Trigger) Threshold() float64 { return t.threshold }

// Armed reports whether a OnceWhenVisible trigger has fired and latched.
func (t *Trigger) Armed() bool { return t.armed }

// Visible reports whether the last update was at or above the threshold (for
// a latched once-trigger, whether it ever was).
func (t *Trigger) Visible() bool { return t.visible }
