package motion

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameUpdateAdvancesClock(t *testing.T) {
	s, err := DefaultLayout().Build()
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	g := newGame(s, RunConfig{
		Width: 640, Height: 360,
		MountFire: true,
		OnUpdate: func(*Stage) error {
			calls++
			return nil
		},
	})
	tps := ebiten.TPS()
	for i := 0; i < tps; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if calls != tps {
		t.Errorf("OnUpdate calls = %d, want %d", calls, tps)
	}
	if s.Now() != 1 {
		t.Errorf("Now = %v after one second of ticks, want 1", s.Now())
	}
	if !s.Reveal("headline").Live() {
		t.Error("MountFire should start every block")
	}
	if _, ok := s.Reveal("headline").Elapsed(s.Now()); !ok {
		t.Error("headline should be live")
	}
	w, h := g.Layout(1920, 1080)
	if w != 640 || h != 360 {
		t.Errorf("Layout = %d x %d, want 640 x 360", w, h)
	}
}

func TestGameUpdateStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	g := newGame(NewStage(), RunConfig{OnUpdate: func(*Stage) error { return stop }})
	if err := g.Update(); !errors.Is(err, stop) {
		t.Errorf("Update = %v, want stop", err)
	}
}

func TestPainterFunc(t *testing.T) {
	var got Frame
	p := PainterFunc(func(_ *ebiten.Image, f Frame) { got = f })
	p.Paint(nil, Frame{Time: 3})
	if got.Time != 3 {
		t.Errorf("Time = %v, want 3", got.Time)
	}
}
