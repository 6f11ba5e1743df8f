package motion

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default panel tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for screen-space offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for scene positions, Euler rotations (radians), and
// per-axis oscillator amplitudes.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Area returns Width*Height, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Inset shrinks the rectangle by m on every side. A negative m grows it, which
// mirrors a negative viewport margin ("-50px") shrinking the effective viewport
// when passed a positive value.
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, Width: r.Width - 2*m, Height: r.Height - 2*m}
}

// VisibleRatio returns the fraction of box that lies inside viewport, in [0, 1].
// A box with zero area is fully visible when its origin is inside the viewport.
func VisibleRatio(box, viewport Rect) float64 {
	area := box.Area()
	if area == 0 {
		if viewport.Contains(box.X, box.Y) {
			return 1
		}
		return 0
	}
	w := math.Min(box.X+box.Width, viewport.X+viewport.Width) - math.Max(box.X, viewport.X)
	h := math.Min(box.Y+box.Height, viewport.Y+viewport.Height) - math.Max(box.Y, viewport.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return clamp01(w * h / area)
}

// State is the lifecycle phase of an animation node.
type State uint8

const (
	StatePending   State = iota // waiting on the trigger or its effective delay
	StateAnimating              // interpolating from From to To
	StateSettled                // holding the target values
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAnimating:
		return "animating"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so snapshots dump readable states.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
