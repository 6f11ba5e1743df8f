package motion

import (
	"math"
	"sort"
	"strings"
)

// Waveform maps a position within one cycle to a unit value in [-1, 1]. The
// cycle argument is unbounded; implementations must treat it modulo 1.
// A cycle of 0.25 is the waveform's positive peak.
type Waveform func(cycle float64) float64

// Sine is the default waveform.
func Sine(cycle float64) float64 {
	return math.Sin(2 * math.Pi * cycle)
}

// Triangle is a linear ramp with the same peaks and zero crossings as Sine.
func Triangle(cycle float64) float64 {
	c := cycle - math.Floor(cycle)
	switch {
	case c < 0.25:
		return 4 * c
	case c < 0.75:
		return 2 - 4*c
	default:
		return 4*c - 4
	}
}

var waveforms = map[string]Waveform{
	"sine":     Sine,
	"triangle": Triangle,
}

// RegisterWaveform makes fn available to configs under name. Registering an
// existing name replaces it. Not safe for concurrent use with NewOscillator.
func RegisterWaveform(name string, fn Waveform) {
	if fn == nil {
		panic("motion: cannot register nil waveform")
	}
	waveforms[strings.ToLower(name)] = fn
}

// Waveforms returns the registered waveform names, sorted.
func Waveforms() []string {
	names := make([]string, 0, len(waveforms))
	for name := range waveforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OscillatorConfig describes a perpetual periodic motion.
type OscillatorConfig struct {
	// Period is the length of one full cycle in seconds. Must be > 0.
	Period float64 `yaml:"period"`
	// Amplitude scales the scalar output of Evaluate.
	Amplitude float64 `yaml:"amplitude"`
	// Axes is the per-axis amplitude used by EvaluateVec. When zero,
	// Amplitude is used on every axis.
	Axes Vec3 `yaml:"axes,omitempty"`
	// Phase is added to the elapsed time before evaluation, in seconds.
	Phase float64 `yaml:"phase,omitempty"`
	// Waveform names a registered waveform; empty means "sine".
	Waveform string `yaml:"waveform,omitempty"`
}

// Oscillator is a pure function of elapsed time. It holds no clock and no
// accumulated state, so the same t always yields the same offset.
type Oscillator struct {
	period    float64
	amplitude float64
	axes      Vec3
	phase     float64
	wave      Waveform
}

// NewOscillator validates cfg and returns an Oscillator. A non-positive or
// non-finite period fails with a *ConfigurationError.
func NewOscillator(cfg OscillatorConfig) (Oscillator, error) {
	if !finite(cfg.Period) || cfg.Period <= 0 {
		return Oscillator{}, configError("oscillator period", "must be a positive number, got %v", cfg.Period)
	}
	if !finite(cfg.Amplitude) || !finite(cfg.Phase) {
		return Oscillator{}, configError("oscillator", "amplitude and phase must be finite")
	}
	name := strings.ToLower(cfg.Waveform)
	if name == "" {
		name = "sine"
	}
	wave, ok := waveforms[name]
	if !ok {
		return Oscillator{}, configError("oscillator waveform", "unknown waveform %q", cfg.Waveform)
	}
	axes := cfg.Axes
	if axes.IsZero() {
		axes = Vec3{cfg.Amplitude, cfg.Amplitude, cfg.Amplitude}
	}
	return Oscillator{
		period:    cfg.Period,
		amplitude: cfg.Amplitude,
		axes:      axes,
		phase:     cfg.Phase,
		wave:      wave,
	}, nil
}

// Period returns the cycle length in seconds.
func (o Oscillator) Period() float64 { return o.period }

// Amplitude returns the scalar amplitude.
func (o Oscillator) Amplitude() float64 { return o.amplitude }

// Phase returns the phase offset in seconds.
func (o Oscillator) Phase() float64 { return o.phase }

// unit evaluates the waveform at t. A zero Oscillator evaluates to 0.
func (o Oscillator) unit(t float64) float64 {
	if o.wave == nil || !finite(t) {
		return 0
	}
	return o.wave((t + o.phase) / o.period)
}

// Evaluate returns amplitude * waveform((t + phase) / period).
func (o Oscillator) Evaluate(t float64) float64 {
	return o.amplitude * o.unit(t)
}

// EvaluateVec returns the per-axis offset at t.
func (o Oscillator) EvaluateVec(t float64) Vec3 {
	return o.axes.Scale(o.unit(t))
}
