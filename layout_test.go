package motion

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultLayoutBuilds(t *testing.T) {
	s, err := DefaultLayout().Build()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"headline", "headline-accent", "hero-copy", "trust-logos", "scroll-hint", "features"} {
		if s.Reveal(name) == nil {
			t.Errorf("missing block %q", name)
		}
	}
	if s.Scene() == nil {
		t.Error("missing scene")
	}
	d, _ := s.Reveal("headline-accent").Schedule().Delay("w1/c1")
	if math.Abs(d-0.99) > 1e-9 {
		t.Errorf("accent w1/c1 delay = %v, want 0.99", d)
	}
	if d, ok := s.Reveal("scroll-hint").Schedule().Delay("hint"); !ok || d != 1.5 {
		t.Errorf("scroll-hint delay = %v, %v, want 1.5", d, ok)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	want := DefaultLayout()
	if err := WriteLayout(want, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLayout(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != LayoutVersion {
		t.Errorf("Version = %q", got.Version)
	}
	if len(got.Text) != 2 || got.Text[1].Text != "Into Profit." || got.Text[1].CharInterval != 0.04 {
		t.Errorf("text = %+v", got.Text)
	}
	if got.Cascades[3].Trigger.Threshold != 0.1 || got.Cascades[3].Margin != 50 {
		t.Errorf("features = %+v", got.Cascades[3])
	}
	if got.Cascades[1].Easing != EaseOutCubic {
		t.Errorf("trust-logos easing = %s", got.Cascades[1].Easing)
	}
	if got.Scene == nil || got.Scene.Lighting.Key.Color != want.Scene.Lighting.Key.Color {
		t.Errorf("scene lighting lost in round trip")
	}
	if got.Ambient[0].Channels["scale"].Keyframes[1] != 1.2 {
		t.Errorf("glow keyframes = %+v", got.Ambient[0].Channels["scale"])
	}
	if got.Hovers[0].Press.Scale != 0.98 {
		t.Errorf("cta press = %+v", got.Hovers[0].Press)
	}
	if len(got.Presences) != 1 || got.Presences[0].Name != "mobile-menu" || got.Presences[0].Easing != EaseInOut {
		t.Errorf("presences = %+v", got.Presences)
	}
	if _, err := got.Build(); err != nil {
		t.Errorf("round-tripped layout does not build: %v", err)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	if _, err := ParseLayout([]byte("version: \"9\"\n")); err == nil {
		t.Error("expected unsupported version error")
	}
	if _, err := ParseLayout([]byte("text:\n  - name: x\n    easing: wobble\n")); err == nil {
		t.Error("expected unknown easing error")
	}
	if _, err := ReadLayout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected missing file error")
	}
}

func TestLayoutBuildReportsBlock(t *testing.T) {
	l := Layout{Cascades: []CascadeConfig{{
		Name:    "cards",
		Items:   []string{"a"},
		Trigger: TriggerConfig{Threshold: 2},
	}}}
	_, err := l.Build()
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#fff")
	if err != nil || c != ColorWhite {
		t.Errorf("#fff = %+v, %v", c, err)
	}
	c, err = ParseHexColor("#00000080")
	if err != nil || c.A < 0.5 || c.A > 0.51 {
		t.Errorf("#00000080 = %+v, %v", c, err)
	}
	for _, bad := range []string{"", "#12", "#gggggg"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", bad)
		}
	}
}
