package motion

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints the frame rate and stage clock in the top-left corner.
// The text is refreshed every ~0.5 seconds of stage time.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	label      string
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nt: 123.45s"
	return &fpsOverlay{img: ebiten.NewImage(120, 48), lastUpdate: -1}
}

func (o *fpsOverlay) draw(screen *ebiten.Image, now float64) {
	if o.lastUpdate < 0 || now-o.lastUpdate >= 0.5 || now < o.lastUpdate {
		o.lastUpdate = now
		o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nt: %.2fs", ebiten.ActualFPS(), ebiten.ActualTPS(), now)
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.label)
	}
	screen.DrawImage(o.img, nil)
}
