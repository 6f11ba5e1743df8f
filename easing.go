package motion

import (
	"math"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Easing selects the interpolation curve of a node's entrance.
type Easing uint8

const (
	EaseOut      Easing = iota // fast start, long soft landing (cubic-bezier 0.22, 1, 0.36, 1)
	EaseLinear                 // constant rate
	EaseInOut                  // symmetric sine ease
	EaseIn                     // slow start
	EaseOutCubic               // gentler variant of EaseOut
	EaseOutBack                // slight overshoot before settling
	EaseSpring                 // critically damped spring, no overshoot
)

var easingNames = [...]string{
	EaseOut:      "ease-out",
	EaseLinear:   "linear",
	EaseInOut:    "ease-in-out",
	EaseIn:       "ease-in",
	EaseOutCubic: "out-cubic",
	EaseOutBack:  "out-back",
	EaseSpring:   "spring",
}

// springStiffness is the natural frequency of EaseSpring in units of
// 1/duration. At the end of the duration the residual is (1+ω)e^-ω ≈ 5e-4.
const springStiffness = 10.0

// springEase is a closed-form critically damped response, so the value at any
// time depends only on the time elapsed since the node started animating.
func springEase(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	x := float64(t/d) * springStiffness
	return b + c*float32(1-(1+x)*math.Exp(-x))
}

// Func returns the gween easing function for e.
func (e Easing) Func() ease.TweenFunc {
	switch e {
	case EaseLinear:
		return ease.Linear
	case EaseInOut:
		return ease.InOutSine
	case EaseIn:
		return ease.InCubic
	case EaseOutCubic:
		return ease.OutCubic
	case EaseOutBack:
		return ease.OutBack
	case EaseSpring:
		return springEase
	default:
		// cubic-bezier(0.22, 1, 0.36, 1) is the quintic ease-out.
		return ease.OutQuint
	}
}

// Progress maps linear progress p in [0, 1] to eased progress. Values outside
// [0, 1] are clamped first.
func (e Easing) Progress(p float64) float64 {
	p = clamp01(p)
	if p == 1 {
		return 1
	}
	return float64(e.Func()(float32(p), 0, 1, 1))
}

// String returns the config name of e.
func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return "unknown"
}

// ParseEasing resolves a config name. The empty string means EaseOut.
func ParseEasing(name string) (Easing, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return EaseOut, nil
	}
	for i, s := range easingNames {
		if s == n {
			return Easing(i), nil
		}
	}
	return EaseOut, configError("easing", "unknown easing %q", name)
}

// MarshalYAML writes the easing by name.
func (e Easing) MarshalYAML() (any, error) {
	return e.String(), nil
}

// UnmarshalYAML reads an easing name.
func (e *Easing) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseEasing(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
