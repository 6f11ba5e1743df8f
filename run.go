package motion

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter renders a sampled Frame. It is the only place pixels are produced;
// the engine itself never draws.
type Painter interface {
	Paint(screen *ebiten.Image, frame Frame)
}

// PainterFunc adapts an ordinary function to the Painter interface.
type PainterFunc func(screen *ebiten.Image, frame Frame)

// Paint calls f(screen, frame).
func (f PainterFunc) Paint(screen *ebiten.Image, frame Frame) {
	f(screen, frame)
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	Painter    Painter
	// OnUpdate runs once per tick after the clock advanced, before the frame
	// is painted. Feed visibility and hover state to the stage here.
	OnUpdate func(s *Stage) error
	// MountFire fires every block on the first tick, as a page does when it
	// loads. Blocks that wait for scrolling should be observed in OnUpdate.
	MountFire bool
	// ShowFPS draws the frame rate and stage clock over the painted frame.
	ShowFPS bool
}

// Run opens a window and drives stage from Ebitengine's game loop until the
// window closes or OnUpdate returns an error.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 1280
	}
	if cfg.Height == 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(newGame(stage, cfg))
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage   *Stage
	cfg     RunConfig
	ticks   int64
	mounted bool
	fps     *fpsOverlay
}

func newGame(stage *Stage, cfg RunConfig) *game {
	return &game{stage: stage, cfg: cfg}
}

// Update advances the clock by one tick. Elapsed time is derived from the
// tick count so it never accumulates rounding error.
func (g *game) Update() error {
	g.ticks++
	g.stage.Tick(float64(g.ticks) / float64(ebiten.TPS()))
	if g.cfg.MountFire && !g.mounted {
		g.stage.FireAll()
		g.mounted = true
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(g.stage)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.cfg.ClearColor
	if c.A > 0 {
		screen.Fill(color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)})
	}
	if g.cfg.Painter != nil {
		g.cfg.Painter.Paint(screen, g.stage.Frame())
	}
	if g.cfg.ShowFPS {
		if g.fps == nil {
			g.fps = newFPSOverlay()
		}
		g.fps.draw(screen, g.stage.Now())
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
