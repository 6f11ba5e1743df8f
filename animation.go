package motion

// Props is the set of visual properties a painter reads for one element in
// one frame.
type Props struct {
	Opacity    float64 `yaml:"opacity"`
	OffsetY    float64 `yaml:"offsetY"`
	BlurRadius float64 `yaml:"blur"`
	Rotation   float64 `yaml:"rotation"`
	Scale      float64 `yaml:"scale"`
}

// Rest is the resting appearance: fully opaque, unscaled, in place.
var Rest = Props{Opacity: 1, Scale: 1}

// Lerp interpolates every field from p towards to by t. t is not clamped so
// overshooting curves such as EaseOutBack carry through.
func (p Props) Lerp(to Props, t float64) Props {
	return Props{
		Opacity:    lerp(p.Opacity, to.Opacity, t),
		OffsetY:    lerp(p.OffsetY, to.OffsetY, t),
		BlurRadius: lerp(p.BlurRadius, to.BlurRadius, t),
		Rotation:   lerp(p.Rotation, to.Rotation, t),
		Scale:      lerp(p.Scale, to.Scale, t),
	}
}

// PropertySet is the start and target appearance of a node's entrance.
type PropertySet struct {
	From Props `yaml:"from"`
	To   Props `yaml:"to"`
}

// Still returns a PropertySet that never changes appearance. Grouping nodes
// (sentences, words, grids) use it.
func Still() PropertySet {
	return PropertySet{From: Rest, To: Rest}
}

// FadeUp returns the standard reveal: transparent, rise pixels lower and
// blurred by blur, settling to Rest.
func FadeUp(rise, blur float64) PropertySet {
	return PropertySet{
		From: Props{Opacity: 0, OffsetY: rise, BlurRadius: blur, Scale: 1},
		To:   Rest,
	}
}

// At returns the appearance at eased progress t (0 = From, 1 = To).
func (ps PropertySet) At(t float64) Props {
	switch t {
	case 0:
		return ps.From
	case 1:
		return ps.To
	}
	return ps.From.Lerp(ps.To, t)
}

// NodeSnapshot is one node's lifecycle state and properties for a frame.
type NodeSnapshot struct {
	ID    string `yaml:"id"`
	State State  `yaml:"state"`
	Props Props  `yaml:"props"`
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
