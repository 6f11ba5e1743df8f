package motion

import (
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween"
)

// Track is a perpetual scalar motion: a pure function of clock time.
type Track interface {
	Value(t float64) float64
}

// Wave is Base plus an Oscillator offset.
type Wave struct {
	Base float64
	Osc  Oscillator
}

// Value returns Base + Osc.Evaluate(t).
func (w Wave) Value(t float64) float64 {
	return w.Base + w.Osc.Evaluate(t)
}

// Keyframes loops through Values over Duration seconds forever, easing each
// segment. Before Delay has elapsed it holds the first value. A loop like
// [1, 1.2, 1] breathes out and back once per Duration.
type Keyframes struct {
	Values   []float64
	Duration float64
	Delay    float64
	Easing   Easing
}

// Value evaluates the loop at t. Each segment is a fresh gween tween set to
// the local time, so no tween state survives between calls.
func (k Keyframes) Value(t float64) float64 {
	switch len(k.Values) {
	case 0:
		return 0
	case 1:
		return k.Values[0]
	}
	if !finite(t) || t < k.Delay || k.Duration <= 0 {
		return k.Values[0]
	}
	u := math.Mod(t-k.Delay, k.Duration)
	segs := len(k.Values) - 1
	segDur := k.Duration / float64(segs)
	i := int(u / segDur)
	if i >= segs {
		i = segs - 1
	}
	local := u - float64(i)*segDur
	tw := gween.New(float32(k.Values[i]), float32(k.Values[i+1]), float32(segDur), k.Easing.Func())
	v, _ := tw.Set(float32(local))
	return float64(v)
}

// Channel names a property a Track drives.
type Channel uint8

const (
	ChannelOpacity Channel = iota
	ChannelOffsetY
	ChannelBlur
	ChannelRotation
	ChannelScale
)

var channelNames = [...]string{
	ChannelOpacity:  "opacity",
	ChannelOffsetY:  "offsetY",
	ChannelBlur:     "blur",
	ChannelRotation: "rotation",
	ChannelScale:    "scale",
}

// String returns the config name of c.
func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

// ParseChannel resolves a config name, case-insensitively.
func ParseChannel(name string) (Channel, error) {
	for i, s := range channelNames {
		if strings.EqualFold(s, name) {
			return Channel(i), nil
		}
	}
	return 0, configError("channel", "unknown channel %q", name)
}

func (p *Props) set(c Channel, v float64) {
	switch c {
	case ChannelOpacity:
		p.Opacity = v
	case ChannelOffsetY:
		p.OffsetY = v
	case ChannelBlur:
		p.BlurRadius = v
	case ChannelRotation:
		p.Rotation = v
	case ChannelScale:
		p.Scale = v
	}
}

// TrackConfig declares a Track. Exactly one of Wave or Keyframes must be set.
type TrackConfig struct {
	Base      float64           `yaml:"base,omitempty"`
	Wave      *OscillatorConfig `yaml:"wave,omitempty"`
	Keyframes []float64         `yaml:"keyframes,omitempty"`
	Duration  float64           `yaml:"duration,omitempty"`
	Delay     float64           `yaml:"delay,omitempty"`
	Easing    Easing            `yaml:"easing,omitempty"`
}

// NewTrack validates cfg and builds the Track it describes.
func NewTrack(cfg TrackConfig) (Track, error) {
	switch {
	case cfg.Wave != nil && len(cfg.Keyframes) > 0:
		return nil, configError("track", "wave and keyframes are mutually exclusive")
	case cfg.Wave != nil:
		osc, err := NewOscillator(*cfg.Wave)
		if err != nil {
			return nil, err
		}
		return Wave{Base: cfg.Base, Osc: osc}, nil
	case len(cfg.Keyframes) > 0:
		if !finite(cfg.Duration) || cfg.Duration <= 0 {
			return nil, configError("keyframes duration", "must be a positive number, got %v", cfg.Duration)
		}
		if !finite(cfg.Delay) || cfg.Delay < 0 {
			return nil, configError("keyframes delay", "must be a non-negative number, got %v", cfg.Delay)
		}
		values := append([]float64(nil), cfg.Keyframes...)
		return Keyframes{Values: values, Duration: cfg.Duration, Delay: cfg.Delay, Easing: cfg.Easing}, nil
	}
	return nil, configError("track", "needs a wave or keyframes")
}

// LoopConfig declares an ambient element and the channels it animates.
type LoopConfig struct {
	Name     string                 `yaml:"name"`
	Channels map[string]TrackConfig `yaml:"channels"`
}

type channelTrack struct {
	channel Channel
	track   Track
}

// Loop is an ambient element that moves forever: background glows, floating
// sheets, the scroll hint. Channels without a track stay at Rest.
type Loop struct {
	name   string
	tracks []channelTrack
}

// NewLoop builds a Loop from cfg.
func NewLoop(cfg LoopConfig) (*Loop, error) {
	l := &Loop{name: cfg.Name}
	for name, tc := range cfg.Channels {
		ch, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		tr, err := NewTrack(tc)
		if err != nil {
			return nil, err
		}
		l.tracks = append(l.tracks, channelTrack{channel: ch, track: tr})
	}
	// Map iteration order is random; keep sampling order stable.
	sort.Slice(l.tracks, func(i, j int) bool { return l.tracks[i].channel < l.tracks[j].channel })
	return l, nil
}

// Name returns the loop name.
func (l *Loop) Name() string { return l.name }

// Drive sets (or replaces) the track for a channel.
func (l *Loop) Drive(c Channel, tr Track) {
	for i := range l.tracks {
		if l.tracks[i].channel == c {
			l.tracks[i].track = tr
			return
		}
	}
	l.tracks = append(l.tracks, channelTrack{channel: c, track: tr})
	sort.Slice(l.tracks, func(i, j int) bool { return l.tracks[i].channel < l.tracks[j].channel })
}

// Sample returns the loop's properties at clock time t.
func (l *Loop) Sample(t float64) Props {
	p := Rest
	for _, ct := range l.tracks {
		p.set(ct.channel, ct.track.Value(t))
	}
	return p
}
