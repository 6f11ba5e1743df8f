package motion

import (
	"errors"
	"math"
	"testing"
)

func TestHoverSpringsToLift(t *testing.T) {
	h, err := NewHover(HoverConfig{Name: "cta", Lift: Props{Opacity: 1, OffsetY: -1, Scale: 1.02}})
	if err != nil {
		t.Fatal(err)
	}
	if h.Props() != Rest {
		t.Errorf("initial = %+v, want Rest", h.Props())
	}
	h.Set(true)
	if !h.Hovered() {
		t.Error("Hovered = false after Set(true)")
	}
	for i := 0; i < 120; i++ {
		h.Step(1.0 / 60)
	}
	if math.Abs(h.Progress()-1) > 0.01 {
		t.Errorf("progress after 2s = %v, want ~1", h.Progress())
	}
	p := h.Props()
	if math.Abs(p.Scale-1.02) > 0.001 || math.Abs(p.OffsetY+1) > 0.02 {
		t.Errorf("props = %+v, want ~lift", p)
	}

	h.Set(false)
	for i := 0; i < 120; i++ {
		h.Step(1.0 / 60)
	}
	if math.Abs(h.Progress()) > 0.01 {
		t.Errorf("progress after release = %v, want ~0", h.Progress())
	}
}

func TestHoverIgnoresNonPositiveStep(t *testing.T) {
	h, _ := NewHover(HoverConfig{Name: "cta", Lift: Props{Opacity: 1, Scale: 2}})
	h.Set(true)
	h.Step(0)
	h.Step(-1)
	h.Step(math.NaN())
	if h.Progress() != 0 {
		t.Errorf("progress = %v, want 0", h.Progress())
	}
}

func TestHoverValidation(t *testing.T) {
	if _, err := NewHover(HoverConfig{Frequency: -1}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("negative frequency: err = %v", err)
	}
	if _, err := NewHover(HoverConfig{Damping: math.Inf(1)}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("infinite damping: err = %v", err)
	}
}

func TestHoverPressBlendsOverLift(t *testing.T) {
	h, err := NewHover(HoverConfig{
		Name:  "cta",
		Lift:  Props{Opacity: 1, OffsetY: -1, Scale: 1.02},
		Press: Props{Opacity: 1, OffsetY: -1, Scale: 0.98},
	})
	if err != nil {
		t.Fatal(err)
	}
	h.Set(true)
	h.SetPressed(true)
	if !h.Pressed() {
		t.Error("Pressed = false after SetPressed(true)")
	}
	for i := 0; i < 120; i++ {
		h.Step(1.0 / 60)
	}
	p := h.Props()
	if math.Abs(p.Scale-0.98) > 0.001 || math.Abs(p.OffsetY+1) > 0.02 {
		t.Errorf("pressed props = %+v, want ~press", p)
	}

	h.SetPressed(false)
	for i := 0; i < 120; i++ {
		h.Step(1.0 / 60)
	}
	if math.Abs(h.PressProgress()) > 0.01 {
		t.Errorf("press progress after release = %v, want ~0", h.PressProgress())
	}
	if p := h.Props(); math.Abs(p.Scale-1.02) > 0.001 {
		t.Errorf("released props = %+v, want back at lift", p)
	}
}

func TestHoverPressWithoutTarget(t *testing.T) {
	h, _ := NewHover(HoverConfig{Name: "cta", Lift: Props{Opacity: 1, Scale: 1.02}})
	h.SetPressed(true)
	h.Step(1.0 / 60)
	if h.Pressed() || h.PressProgress() != 0 {
		t.Errorf("press without target: pressed = %v, progress = %v", h.Pressed(), h.PressProgress())
	}
}
