package motion

import (
	"fmt"
	"math"
)

// Panel is a flat sheet of the stacked-paper motif. All fields are static.
type Panel struct {
	Name     string  `yaml:"name"`
	Position Vec3    `yaml:"position"`
	Rotation Vec3    `yaml:"rotation"`
	Tint     Color   `yaml:"tint"`
	Scale    float64 `yaml:"scale"`
}

// FloatConfig gives every panel a gentle bob and wobble. Speed 1 completes a
// cycle every 8π seconds; each panel is phase-shifted by its index so the
// sheets never move together.
type FloatConfig struct {
	Speed             float64    `yaml:"speed"`
	RotationIntensity float64    `yaml:"rotationIntensity"`
	FloatIntensity    float64    `yaml:"floatIntensity"`
	Range             [2]float64 `yaml:"range"`
}

// BadgeConfig describes a floating label layered above the panels.
type BadgeConfig struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	// Base is the resting vertical offset the float oscillates around.
	Base  float64          `yaml:"base"`
	Float OscillatorConfig `yaml:"float"`
	// Pulse optionally breathes the badge opacity.
	Pulse    *TrackConfig `yaml:"pulse,omitempty"`
	Duration float64      `yaml:"duration"`
	Easing   Easing       `yaml:"easing"`
	Rise     float64      `yaml:"rise"`
}

// SpotLight, PointLight, Lighting and CameraConfig are passed to the
// rasterizer unchanged.
type SpotLight struct {
	Position  Vec3    `yaml:"position"`
	Angle     float64 `yaml:"angle"`
	Penumbra  float64 `yaml:"penumbra"`
	Intensity float64 `yaml:"intensity"`
	Color     Color   `yaml:"color"`
}

type PointLight struct {
	Position  Vec3    `yaml:"position"`
	Intensity float64 `yaml:"intensity"`
	Color     Color   `yaml:"color"`
}

type Lighting struct {
	Ambient       float64      `yaml:"ambient"`
	Key           SpotLight    `yaml:"key"`
	Fill          []PointLight `yaml:"fill"`
	ShadowOpacity float64      `yaml:"shadowOpacity"`
	ShadowBlur    float64      `yaml:"shadowBlur"`
}

type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	FOV      float64 `yaml:"fov"`
}

// SceneConfig declares the decorative 3D composition.
type SceneConfig struct {
	Panels []Panel `yaml:"panels"`
	// GroupRotation is the static base rotation of the panel group.
	GroupRotation Vec3 `yaml:"groupRotation"`
	// GroupSway drives the slow yaw of the whole group.
	GroupSway    OscillatorConfig `yaml:"groupSway"`
	Float        FloatConfig      `yaml:"float"`
	Badges       []BadgeConfig    `yaml:"badges"`
	BadgeDelay   float64          `yaml:"badgeDelay"`
	BadgeStagger StaggerPolicy    `yaml:"badgeStagger"`
	Trigger      TriggerConfig    `yaml:"trigger"`
	Lighting     Lighting         `yaml:"lighting"`
	Camera       CameraConfig     `yaml:"camera"`
}

// PanelSnapshot is a panel's transform for one frame.
type PanelSnapshot struct {
	Name     string  `yaml:"name"`
	Position Vec3    `yaml:"position"`
	Rotation Vec3    `yaml:"rotation"`
	Tint     Color   `yaml:"tint"`
	Scale    float64 `yaml:"scale"`
}

// BadgeSnapshot is a badge's entrance state and float offset for one frame.
type BadgeSnapshot struct {
	Name    string  `yaml:"name"`
	Label   string  `yaml:"label"`
	OffsetY float64 `yaml:"offsetY"`
	State   State   `yaml:"state"`
	Props   Props   `yaml:"props"`
}

// SceneSnapshot is everything the rasterizer needs for one frame.
type SceneSnapshot struct {
	// GroupRotationY is the sway offset added to GroupRotation.Y.
	GroupRotationY float64         `yaml:"groupRotationY"`
	GroupRotation  Vec3            `yaml:"groupRotation"`
	Panels         []PanelSnapshot `yaml:"panels"`
	BadgeOffsets   []float64       `yaml:"badgeOffsets"`
	Badges         []BadgeSnapshot `yaml:"badges"`
}

type panelFloat struct {
	bob    Oscillator // position Y
	tiltX  Oscillator
	tiltYZ Oscillator
}

type badge struct {
	cfg   BadgeConfig
	float Oscillator
	pulse Track
}

// Scene composes the panel stack, its sway, and the overlay badges.
type Scene struct {
	cfg     SceneConfig
	sway    Oscillator
	floats  []panelFloat
	badges  []badge
	entries *Reveal
}

// NewScene validates cfg and builds the composition. Two badges floating
// with the same period and phase are rejected since they would move in
// lockstep.
func NewScene(cfg SceneConfig) (*Scene, error) {
	sway, err := NewOscillator(cfg.GroupSway)
	if err != nil {
		return nil, fmt.Errorf("group sway: %w", err)
	}
	s := &Scene{cfg: cfg, sway: sway}

	if cfg.Float.Speed != 0 {
		if !finite(cfg.Float.Speed) || cfg.Float.Speed < 0 {
			return nil, configError("float speed", "must be a non-negative number, got %v", cfg.Float.Speed)
		}
		period := 8 * math.Pi / cfg.Float.Speed
		f := cfg.Float
		for i := range cfg.Panels {
			phase := period * float64(i) / float64(len(cfg.Panels))
			pf, err := newPanelFloat(f, period, phase)
			if err != nil {
				return nil, fmt.Errorf("panel %q float: %w", cfg.Panels[i].Name, err)
			}
			s.floats = append(s.floats, pf)
		}
	}

	root := NewGroup("badges")
	for i, bc := range cfg.Badges {
		osc, err := NewOscillator(bc.Float)
		if err != nil {
			return nil, fmt.Errorf("badge %q float: %w", bc.Name, err)
		}
		for _, prev := range s.badges {
			if lockstep(prev.float, osc) {
				return nil, configError("badge float", "badges %q and %q move in lockstep", prev.cfg.Name, bc.Name)
			}
		}
		b := badge{cfg: bc, float: osc}
		if bc.Pulse != nil {
			if b.pulse, err = NewTrack(*bc.Pulse); err != nil {
				return nil, fmt.Errorf("badge %q pulse: %w", bc.Name, err)
			}
		}
		s.badges = append(s.badges, b)
		id := bc.Name
		if id == "" {
			id = fmt.Sprintf("badge%d", i)
		}
		root.AddChild(NewNode(id, bc.Duration, bc.Easing, FadeUp(bc.Rise, 0)))
	}
	s.entries, err = NewReveal("badges", root, RevealConfig{
		Delay:   cfg.BadgeDelay,
		Levels:  []StaggerPolicy{cfg.BadgeStagger},
		Trigger: cfg.Trigger,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// lockstepTolerance is how close two phases, modulo the period, must be for
// two badges to count as moving together.
const lockstepTolerance = 1e-9

// lockstep reports whether a and b trace the same motion: equal periods and
// phases that differ by a whole number of periods.
func lockstep(a, b Oscillator) bool {
	if math.Abs(a.period-b.period) > lockstepTolerance {
		return false
	}
	return math.Abs(math.Remainder(a.phase-b.phase, a.period)) < lockstepTolerance
}

// newPanelFloat builds the bob and wobble of one panel. Rotation follows
// cos/sin/sin on X/Y/Z with amplitudes 1/8, 1/8, 1/20 of the intensity; the
// quarter-period shift turns the X sine into a cosine.
func newPanelFloat(f FloatConfig, period, phase float64) (panelFloat, error) {
	var pf panelFloat
	var err error
	if pf.bob, err = NewOscillator(OscillatorConfig{
		Period:    period,
		Amplitude: f.FloatIntensity * (f.Range[1] - f.Range[0]) / 2,
		Phase:     phase,
	}); err != nil {
		return pf, err
	}
	if pf.tiltX, err = NewOscillator(OscillatorConfig{
		Period:    period,
		Amplitude: f.RotationIntensity / 8,
		Phase:     phase + period/4,
	}); err != nil {
		return pf, err
	}
	pf.tiltYZ, err = NewOscillator(OscillatorConfig{
		Period: period,
		Phase:  phase,
		Axes:   Vec3{0, f.RotationIntensity / 8, f.RotationIntensity / 20},
	})
	return pf, err
}

// center returns the midpoint of the float range, the height the bob
// oscillates around.
func (f FloatConfig) center() float64 {
	return f.FloatIntensity * (f.Range[0] + f.Range[1]) / 2
}

// Observe forwards the section's visibility to the badge entrances.
func (s *Scene) Observe(ratio, now float64) (TriggerEventType, bool) {
	return s.entries.Observe(ratio, now)
}

// Fire starts the badge entrances at now.
func (s *Scene) Fire(now float64) bool {
	return s.entries.Fire(now)
}

// Entrances returns the reveal driving the badge entrances.
func (s *Scene) Entrances() *Reveal { return s.entries }

// Lighting returns the static lighting configuration unchanged.
func (s *Scene) Lighting() Lighting { return s.cfg.Lighting }

// Camera returns the static camera configuration unchanged.
func (s *Scene) Camera() CameraConfig { return s.cfg.Camera }

// GroupRotationY returns the sway offset at clock time now.
func (s *Scene) GroupRotationY(now float64) float64 {
	return s.sway.Evaluate(now)
}

// Snapshot samples the composition at clock time now. The sway and floats
// run continuously; only the badge entrances wait on the trigger.
func (s *Scene) Snapshot(now float64) SceneSnapshot {
	snap := SceneSnapshot{
		GroupRotationY: s.sway.Evaluate(now),
		GroupRotation:  s.cfg.GroupRotation,
		Panels:         make([]PanelSnapshot, len(s.cfg.Panels)),
		BadgeOffsets:   make([]float64, len(s.badges)),
		Badges:         make([]BadgeSnapshot, len(s.badges)),
	}
	for i, p := range s.cfg.Panels {
		ps := PanelSnapshot{Name: p.Name, Position: p.Position, Rotation: p.Rotation, Tint: p.Tint, Scale: p.Scale}
		if ps.Scale == 0 {
			ps.Scale = 1
		}
		if i < len(s.floats) {
			f := s.floats[i]
			ps.Position.Y += s.cfg.Float.center() + f.bob.Evaluate(now)
			ps.Rotation = ps.Rotation.Add(f.tiltYZ.EvaluateVec(now))
			ps.Rotation.X += f.tiltX.Evaluate(now)
		}
		snap.Panels[i] = ps
	}
	nodes := s.entries.Schedule().Root().Children()
	for i, b := range s.badges {
		id := nodes[i].ID
		offset := b.cfg.Base + b.float.Evaluate(now)
		props := s.entries.Sample(id, now)
		if b.pulse != nil {
			props.Opacity *= b.pulse.Value(now)
		}
		snap.BadgeOffsets[i] = offset
		snap.Badges[i] = BadgeSnapshot{
			Name:    b.cfg.Name,
			Label:   b.cfg.Label,
			OffsetY: offset,
			State:   s.entries.State(id, now),
			Props:   props,
		}
	}
	return snap
}
