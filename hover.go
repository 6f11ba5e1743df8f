package motion

import "github.com/charmbracelet/harmonica"

// HoverConfig describes a pointer-hover lift, like a call-to-action button
// growing slightly and rising a pixel, and an optional press squash.
type HoverConfig struct {
	Name string `yaml:"name"`
	// Lift is the appearance while hovered.
	Lift Props `yaml:"lift"`
	// Press is the appearance while pressed. Zero disables pressing.
	Press Props `yaml:"press,omitempty"`
	// Frequency is the spring's angular frequency; higher is snappier.
	Frequency float64 `yaml:"frequency"`
	// Damping is the damping ratio; 1 is critically damped.
	Damping float64 `yaml:"damping"`
}

// Hover springs between Rest and Lift as the pointer enters and leaves, and
// from there towards Press while the button is held. Both targets share one
// spring configuration. Unlike reveals it integrates state frame to frame;
// call Step once per tick.
type Hover struct {
	cfg      HoverConfig
	spring   harmonica.Spring
	springDt float64
	pos      float64
	vel      float64
	target   float64

	pressPos    float64
	pressVel    float64
	pressTarget float64
}

// NewHover validates cfg. Zero frequency and damping default to 6 and 1.
func NewHover(cfg HoverConfig) (*Hover, error) {
	if cfg.Frequency == 0 {
		cfg.Frequency = 6
	}
	if cfg.Damping == 0 {
		cfg.Damping = 1
	}
	if !finite(cfg.Frequency) || cfg.Frequency < 0 {
		return nil, configError("hover frequency", "must be a positive number, got %v", cfg.Frequency)
	}
	if !finite(cfg.Damping) || cfg.Damping < 0 {
		return nil, configError("hover damping", "must be a non-negative number, got %v", cfg.Damping)
	}
	return &Hover{cfg: cfg}, nil
}

// Name returns the hover name.
func (h *Hover) Name() string { return h.cfg.Name }

// Set changes the hover target.
func (h *Hover) Set(hovered bool) {
	if hovered {
		h.target = 1
	} else {
		h.target = 0
	}
}

// Hovered reports the current target.
func (h *Hover) Hovered() bool { return h.target == 1 }

// SetPressed changes the press target. It is a no-op when the config has no
// Press appearance.
func (h *Hover) SetPressed(pressed bool) {
	if h.cfg.Press == (Props{}) {
		return
	}
	if pressed {
		h.pressTarget = 1
	} else {
		h.pressTarget = 0
	}
}

// Pressed reports the current press target.
func (h *Hover) Pressed() bool { return h.pressTarget == 1 }

// Step advances the spring by dt seconds. Non-positive dt is ignored.
func (h *Hover) Step(dt float64) {
	if !finite(dt) || dt <= 0 {
		return
	}
	if dt != h.springDt {
		h.spring = harmonica.NewSpring(dt, h.cfg.Frequency, h.cfg.Damping)
		h.springDt = dt
	}
	h.pos, h.vel = h.spring.Update(h.pos, h.vel, h.target)
	h.pressPos, h.pressVel = h.spring.Update(h.pressPos, h.pressVel, h.pressTarget)
}

// Progress returns the spring position, 0 at rest and 1 fully lifted.
func (h *Hover) Progress() float64 { return h.pos }

// PressProgress returns the press spring position, 0 released and 1 fully
// pressed.
func (h *Hover) PressProgress() float64 { return h.pressPos }

// Props returns the current appearance: the hover blend, then the press
// blend on top of it.
func (h *Hover) Props() Props {
	p := Rest.Lerp(h.cfg.Lift, h.pos)
	if h.pressPos == 0 {
		return p
	}
	return p.Lerp(h.cfg.Press, h.pressPos)
}
