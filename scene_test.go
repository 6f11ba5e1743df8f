package motion

import (
	"errors"
	"math"
	"testing"
)

func newDefaultScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(*DefaultLayout().Scene)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSceneSway(t *testing.T) {
	s := newDefaultScene(t)
	period := 2 * math.Pi / 0.15
	if got := s.GroupRotationY(0); math.Abs(got) > 1e-12 {
		t.Errorf("sway(0) = %v, want 0", got)
	}
	if got := s.GroupRotationY(period / 4); math.Abs(got-0.08) > 1e-9 {
		t.Errorf("sway(P/4) = %v, want 0.08", got)
	}
	snap := s.Snapshot(period / 4)
	if math.Abs(snap.GroupRotationY-0.08) > 1e-9 {
		t.Errorf("snapshot sway = %v", snap.GroupRotationY)
	}
	if snap.GroupRotation.Y != -0.3 {
		t.Errorf("base rotation = %v, want -0.3", snap.GroupRotation.Y)
	}
}

func TestScenePanelsFloat(t *testing.T) {
	s := newDefaultScene(t)
	period := 8 * math.Pi / 2
	a := s.Snapshot(1.3)
	b := s.Snapshot(1.3 + period)
	for i := range a.Panels {
		if math.Abs(a.Panels[i].Position.Y-b.Panels[i].Position.Y) > 1e-9 {
			t.Errorf("panel %d float not periodic", i)
		}
	}
	// Panels are phase-shifted, so they never share an offset at the same time.
	if a.Panels[0].Position.Y-0.4 == a.Panels[2].Position.Y-0 {
		t.Error("panels 0 and 2 move in lockstep")
	}
	if a.Panels[0].Tint != mustHex("#f1f5f9") {
		t.Errorf("tint = %+v", a.Panels[0].Tint)
	}
}

func TestSceneBadgesWaitForTrigger(t *testing.T) {
	s := newDefaultScene(t)
	snap := s.Snapshot(10)
	for _, b := range snap.Badges {
		if b.State != StatePending || b.Props.Opacity != 0 {
			t.Errorf("badge %s before trigger = %s %+v", b.Name, b.State, b.Props)
		}
	}
	// The float runs regardless of the entrance.
	if len(snap.BadgeOffsets) != 2 || snap.BadgeOffsets[0] == -10 && snap.BadgeOffsets[1] == 10 {
		t.Errorf("offsets = %v", snap.BadgeOffsets)
	}

	if _, ok := s.Observe(0.5, 0); !ok {
		t.Fatal("expected enter at ratio 0.5")
	}
	snap = s.Snapshot(0.7)
	if snap.Badges[0].State != StateAnimating || snap.Badges[1].State != StatePending {
		t.Errorf("at 0.7: %s, %s", snap.Badges[0].State, snap.Badges[1].State)
	}
	snap = s.Snapshot(2)
	if snap.Badges[1].State != StateSettled {
		t.Errorf("at 2: %s", snap.Badges[1].State)
	}
	if math.Abs(snap.Badges[0].Props.Opacity-1) > 1e-5 {
		t.Errorf("pulsed opacity at 2 = %v, want 1", snap.Badges[0].Props.Opacity)
	}
	if math.Abs(snap.Badges[0].OffsetY) > 1e-9 {
		t.Errorf("print-ready offset at 2 = %v, want 0", snap.Badges[0].OffsetY)
	}
}

func TestSceneBadgeLockstep(t *testing.T) {
	cfg := *DefaultLayout().Scene
	cfg.Badges = append([]BadgeConfig(nil), cfg.Badges...)
	cfg.Badges[1].Float = cfg.Badges[0].Float
	_, err := NewScene(cfg)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}

	cfg.Badges[1].Float.Phase += cfg.Badges[1].Float.Period
	if _, err := NewScene(cfg); err == nil {
		t.Error("a whole-period phase shift is still lockstep")
	}
}

func TestSceneBadgeLockstepInexactPhase(t *testing.T) {
	cfg := *DefaultLayout().Scene
	cfg.Badges = append([]BadgeConfig(nil), cfg.Badges...)
	cfg.Badges[0].Float = OscillatorConfig{Period: 4, Amplitude: 0.1, Phase: 0.1}
	cfg.Badges[1].Float = OscillatorConfig{Period: 4, Amplitude: 0.1, Phase: 4.1}
	if _, err := NewScene(cfg); !errors.Is(err, ErrConfiguration) {
		t.Errorf("phases 0.1 and 4.1: err = %v, want configuration error", err)
	}

	cfg.Badges[1].Float.Phase = 2.1
	if _, err := NewScene(cfg); err != nil {
		t.Errorf("half-period offset rejected: %v", err)
	}
}

func TestSceneInvalidSway(t *testing.T) {
	cfg := *DefaultLayout().Scene
	cfg.GroupSway.Period = 0
	_, err := NewScene(cfg)
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Errorf("err = %v, want *ConfigurationError", err)
	}
}

func TestSceneStaticPassthrough(t *testing.T) {
	s := newDefaultScene(t)
	l := s.Lighting()
	if l.Ambient != 0.4 || len(l.Fill) != 2 || l.Key.Angle != 0.25 || l.ShadowOpacity != 0.2 {
		t.Errorf("lighting = %+v", l)
	}
	if c := s.Camera(); c.FOV != 35 || c.Position.Z != 10 {
		t.Errorf("camera = %+v", c)
	}
}
