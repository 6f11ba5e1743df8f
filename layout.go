package motion

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayoutVersion is written by WriteLayout and accepted by ParseLayout.
const LayoutVersion = "1"

// Layout is the full timing configuration of a page. All values are static
// constants in the reference page, kept in data so they can be retuned
// without touching the engine.
type Layout struct {
	Version   string           `yaml:"version"`
	Text      []TextConfig     `yaml:"text"`
	Cascades  []CascadeConfig  `yaml:"cascades"`
	Ambient   []LoopConfig     `yaml:"ambient"`
	Scene     *SceneConfig     `yaml:"scene,omitempty"`
	Hovers    []HoverConfig    `yaml:"hovers,omitempty"`
	Presences []PresenceConfig `yaml:"presences,omitempty"`
}

// ParseLayout decodes a YAML layout.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if l.Version != "" && l.Version != LayoutVersion {
		return Layout{}, fmt.Errorf("parse layout: unsupported version %q", l.Version)
	}
	return l, nil
}

// ReadLayout reads a layout from a YAML file.
func ReadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return ParseLayout(data)
}

// WriteLayout writes a layout to a YAML file.
func WriteLayout(l Layout, path string) error {
	if l.Version == "" {
		l.Version = LayoutVersion
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build validates the layout and returns a Stage holding every section.
func (l Layout) Build() (*Stage, error) {
	s := NewStage()
	for _, tc := range l.Text {
		r, err := NewTextReveal(tc)
		if err != nil {
			return nil, fmt.Errorf("text %q: %w", tc.Name, err)
		}
		if err := s.AddReveal(r); err != nil {
			return nil, err
		}
	}
	for _, cc := range l.Cascades {
		r, err := NewCascade(cc)
		if err != nil {
			return nil, fmt.Errorf("cascade %q: %w", cc.Name, err)
		}
		if err := s.AddReveal(r); err != nil {
			return nil, err
		}
		if cc.Margin != 0 {
			s.SetMargin(cc.Name, cc.Margin)
		}
	}
	for _, lc := range l.Ambient {
		loop, err := NewLoop(lc)
		if err != nil {
			return nil, fmt.Errorf("ambient %q: %w", lc.Name, err)
		}
		s.AddLoop(loop)
	}
	if l.Scene != nil {
		sc, err := NewScene(*l.Scene)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		s.SetScene(sc)
	}
	for _, hc := range l.Hovers {
		h, err := NewHover(hc)
		if err != nil {
			return nil, fmt.Errorf("hover %q: %w", hc.Name, err)
		}
		s.AddHover(h)
	}
	for _, pc := range l.Presences {
		p, err := NewPresence(pc)
		if err != nil {
			return nil, fmt.Errorf("presence %q: %w", pc.Name, err)
		}
		if err := s.AddPresence(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MarshalYAML writes the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) MarshalYAML() (any, error) {
	s := fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	if c.A != 1 {
		s += fmt.Sprintf("%02x", to8(c.A))
	}
	return s, nil
}

// UnmarshalYAML reads a #rrggbb or #rrggbbaa color.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, configError("color", "malformed %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, configError("color", "malformed %q", s)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}

// DefaultLayout returns the timing of the reference landing page.
func DefaultLayout() Layout {
	mount := TriggerConfig{Mode: OnceWhenVisible}
	return Layout{
		Version: LayoutVersion,
		Text: []TextConfig{
			{
				Name:         "headline",
				Text:         "Turn Print Work",
				Delay:        0.2,
				WordInterval: 0.15,
				CharInterval: 0.04,
				Duration:     0.8,
				Easing:       EaseOut,
				Rise:         40,
				Blur:         10,
				Trigger:      mount,
			},
			{
				Name:         "headline-accent",
				Text:         "Into Profit.",
				Delay:        0.8,
				WordInterval: 0.15,
				CharInterval: 0.04,
				Duration:     0.8,
				Easing:       EaseOut,
				Rise:         40,
				Blur:         10,
				Trigger:      mount,
			},
		},
		Cascades: []CascadeConfig{
			{
				Name:     "hero-copy",
				Items:    []string{"studio-pill", "subcopy", "actions"},
				Interval: 0.1,
				Duration: 0.8,
				Easing:   EaseOut,
				Rise:     40,
				Trigger:  mount,
			},
			{
				Name:     "trust-logos",
				Items:    []string{"logo-0", "logo-1", "logo-2", "logo-3"},
				Delay:    1,
				Duration: 1,
				Easing:   EaseOutCubic,
				Trigger:  mount,
			},
			{
				Name:     "scroll-hint",
				Items:    []string{"hint"},
				Delay:    1.5,
				Duration: 2,
				Easing:   EaseOutCubic,
				Trigger:  mount,
			},
			{
				Name:     "features",
				Items:    []string{"upload", "pricing", "delivery"},
				Interval: 0.2,
				Duration: 0.6,
				Easing:   EaseOutCubic,
				Rise:     20,
				Margin:   50,
				Trigger:  TriggerConfig{Mode: OnceWhenVisible, Threshold: 0.1},
			},
		},
		Ambient: []LoopConfig{
			{Name: "glow-warm", Channels: map[string]TrackConfig{
				"scale":   {Keyframes: []float64{1, 1.2, 1}, Duration: 15, Easing: EaseInOut},
				"opacity": {Keyframes: []float64{0.3, 0.5, 0.3}, Duration: 15, Easing: EaseInOut},
			}},
			{Name: "glow-cool", Channels: map[string]TrackConfig{
				"scale":   {Keyframes: []float64{1.1, 1, 1.1}, Duration: 20, Easing: EaseInOut},
				"opacity": {Keyframes: []float64{0.2, 0.4, 0.2}, Duration: 20, Easing: EaseInOut},
			}},
			{Name: "sheet-back", Channels: map[string]TrackConfig{
				"rotation": {Base: deg(5), Wave: &OscillatorConfig{Period: 6, Amplitude: deg(1), Phase: 1.5}},
				"offsetY":  {Base: 5, Wave: &OscillatorConfig{Period: 6, Amplitude: 5, Phase: 1.5}},
			}},
			{Name: "sheet-middle", Channels: map[string]TrackConfig{
				"rotation": {Base: deg(-4), Wave: &OscillatorConfig{Period: 7, Amplitude: deg(1), Phase: 1.25}},
				"offsetY":  {Base: 10, Wave: &OscillatorConfig{Period: 7, Amplitude: 5, Phase: 4.75}},
			}},
			{Name: "sheet-front", Channels: map[string]TrackConfig{
				"offsetY": {Base: 5, Wave: &OscillatorConfig{Period: 5, Amplitude: 5, Phase: 3.75}},
			}},
			{Name: "scroll-hint-bob", Channels: map[string]TrackConfig{
				"offsetY": {Keyframes: []float64{0, 10, 0}, Duration: 2, Delay: 1.5, Easing: EaseInOut},
			}},
		},
		Scene: &SceneConfig{
			Panels: []Panel{
				{Name: "back", Position: Vec3{-0.8, 0.4, -0.6}, Rotation: Vec3{0, 0, -0.1}, Tint: mustHex("#f1f5f9"), Scale: 1},
				{Name: "middle", Position: Vec3{0.6, -0.3, -0.3}, Rotation: Vec3{0, 0, 0.05}, Tint: mustHex("#f8fafc"), Scale: 1},
				{Name: "front", Position: Vec3{0, 0, 0.2}, Tint: mustHex("#ffffff"), Scale: 1},
			},
			GroupRotation: Vec3{0, -0.3, 0},
			GroupSway:     OscillatorConfig{Period: 2 * math.Pi / 0.15, Amplitude: 0.08},
			Float: FloatConfig{
				Speed:             2,
				RotationIntensity: 0.2,
				FloatIntensity:    0.5,
				Range:             [2]float64{-0.05, 0.05},
			},
			Badges: []BadgeConfig{
				{
					Name:     "print-ready",
					Label:    "Print Ready",
					Base:     -10,
					Float:    OscillatorConfig{Period: 4, Amplitude: 10, Phase: 3},
					Pulse:    &TrackConfig{Keyframes: []float64{0.5, 1, 0.5}, Duration: 4, Easing: EaseInOut},
					Duration: 0.6,
					Easing:   EaseOut,
					Rise:     12,
				},
				{
					Name:     "instant-quote",
					Label:    "Instant Quote",
					Base:     10,
					Float:    OscillatorConfig{Period: 5, Amplitude: 10, Phase: 0.25},
					Duration: 0.6,
					Easing:   EaseOut,
					Rise:     12,
				},
			},
			BadgeDelay:   0.6,
			BadgeStagger: StaggerPolicy{ChildInterval: 0.3},
			Trigger:      TriggerConfig{Mode: OnceWhenVisible, Threshold: 0.2},
			Lighting: Lighting{
				Ambient: 0.4,
				Key: SpotLight{
					Position:  Vec3{10, 15, 10},
					Angle:     0.25,
					Penumbra:  1,
					Intensity: 1,
					Color:     mustHex("#fff7ed"),
				},
				Fill: []PointLight{
					{Position: Vec3{-10, 5, -10}, Intensity: 0.8, Color: mustHex("#e0e7ff")},
					{Position: Vec3{5, -5, -5}, Intensity: 0.3, Color: mustHex("#fefce8")},
				},
				ShadowOpacity: 0.2,
				ShadowBlur:    4,
			},
			Camera: CameraConfig{Position: Vec3{0, 0, 10}, FOV: 35},
		},
		Hovers: []HoverConfig{
			{
				Name:      "cta",
				Lift:      Props{Opacity: 1, OffsetY: -1, Scale: 1.02},
				Press:     Props{Opacity: 1, OffsetY: -1, Scale: 0.98},
				Frequency: 8,
				Damping:   1,
			},
		},
		Presences: []PresenceConfig{
			{Name: "mobile-menu", Duration: 0.3, Easing: EaseInOut},
		},
	}
}
