package motion

// PresenceConfig describes content that animates in when shown and back out
// before it is removed, such as the mobile navigation menu.
type PresenceConfig struct {
	Name string `yaml:"name"`
	// Hidden is the appearance while absent. The shown appearance is Rest.
	// A zero value means transparent at full scale.
	Hidden   Props   `yaml:"hidden,omitempty"`
	Duration float64 `yaml:"duration"`
	Easing   Easing  `yaml:"easing"`
}

// PresenceSnapshot is a presence's state for one frame.
type PresenceSnapshot struct {
	Shown bool  `yaml:"shown"`
	State State `yaml:"state"`
	// Extent runs from 0 (absent) to 1 (fully shown). Painters scale the
	// content's natural height by it.
	Extent float64 `yaml:"extent"`
	Props  Props   `yaml:"props"`
}

// Presence toggles between absent and shown. Each toggle starts a transition
// from wherever the previous one had reached, so closing a half-open menu
// retracts it from half height. Between toggles sampling is pure in time.
//
// State reads Pending while absent, Animating during either transition, and
// Settled once fully shown.
type Presence struct {
	cfg     PresenceConfig
	shown   bool
	toggled bool
	start   float64
	from    float64
}

// NewPresence validates cfg. The presence starts absent.
func NewPresence(cfg PresenceConfig) (*Presence, error) {
	if cfg.Name == "" {
		return nil, configError("presence name", "must not be empty")
	}
	if !finite(cfg.Duration) || cfg.Duration < 0 {
		return nil, configError("presence duration", "must be a non-negative number, got %v", cfg.Duration)
	}
	if cfg.Hidden == (Props{}) {
		cfg.Hidden = Props{Scale: 1}
	}
	return &Presence{cfg: cfg}, nil
}

// Name returns the presence name.
func (p *Presence) Name() string { return p.cfg.Name }

// Shown reports the current target.
func (p *Presence) Shown() bool { return p.shown }

// Set shows or hides the content at clock time now. It reports whether the
// target changed.
func (p *Presence) Set(shown bool, now float64) bool {
	if shown == p.shown || !finite(now) {
		return false
	}
	p.from = p.Extent(now)
	p.start = now
	p.shown = shown
	p.toggled = true
	return true
}

func (p *Presence) target() float64 {
	if p.shown {
		return 1
	}
	return 0
}

// elapsed returns the normalized progress of the current transition and
// whether it has finished.
func (p *Presence) elapsed(now float64) (float64, bool) {
	if !p.toggled {
		return 1, true
	}
	t := now - p.start
	if !finite(t) || t < 0 {
		return 0, false
	}
	if t >= p.cfg.Duration {
		return 1, true
	}
	return t / p.cfg.Duration, false
}

// Extent returns how far the content is shown at now, in [0, 1].
func (p *Presence) Extent(now float64) float64 {
	k, _ := p.elapsed(now)
	if k >= 1 {
		return p.target()
	}
	return clamp01(lerp(p.from, p.target(), p.cfg.Easing.Progress(k)))
}

// State returns the lifecycle state at now.
func (p *Presence) State(now float64) State {
	_, done := p.elapsed(now)
	switch {
	case !done:
		return StateAnimating
	case p.shown:
		return StateSettled
	default:
		return StatePending
	}
}

// Present reports whether the content should be drawn at now. Hidden
// content stays present until its exit transition finishes.
func (p *Presence) Present(now float64) bool {
	return p.shown || p.State(now) != StatePending
}

// Props returns the appearance at now.
func (p *Presence) Props(now float64) Props {
	return p.cfg.Hidden.Lerp(Rest, p.Extent(now))
}

// Snapshot returns the state for one frame.
func (p *Presence) Snapshot(now float64) PresenceSnapshot {
	e := p.Extent(now)
	return PresenceSnapshot{
		Shown:  p.shown,
		State:  p.State(now),
		Extent: e,
		Props:  p.cfg.Hidden.Lerp(Rest, e),
	}
}
