// Package sheet renders contact sheets: a grid of frames of one reveal
// sampled at regular intervals, for reviewing timing without a window.
package sheet

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"github.com/shreyas4546/motion"
)

// Options controls the sheet geometry and sampling.
type Options struct {
	Frames     int     // number of cells
	Step       float64 // seconds between cells
	Start      float64 // time of the first cell, measured from the trigger
	Columns    int
	CellWidth  int
	CellHeight int
	FontSize   float64
}

func (o Options) withDefaults() Options {
	if o.Frames <= 0 {
		o.Frames = 12
	}
	if o.Step <= 0 {
		o.Step = 0.1
	}
	if o.Columns <= 0 {
		o.Columns = 4
	}
	if o.CellWidth <= 0 {
		o.CellWidth = 360
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 120
	}
	if o.FontSize <= 0 {
		o.FontSize = 24
	}
	return o
}

const pad = 10.0

// Times returns the sample time of every cell.
func (o Options) Times() []float64 {
	o = o.withDefaults()
	ts := make([]float64, o.Frames)
	for i := range ts {
		ts[i] = o.Start + float64(i)*o.Step
	}
	return ts
}

// Render draws sched at each of the sheet's times. Cells are rendered in
// parallel; each worker owns its own font face since faces cache glyphs.
func Render(ctx context.Context, sched *motion.Schedule, opts Options) (image.Image, error) {
	o := opts.withDefaults()
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	times := o.Times()
	cells := make([]image.Image, len(times))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, t := range times {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			face := truetype.NewFace(ttf, &truetype.Options{
				Size:    o.FontSize,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			defer face.Close()
			cells[i] = drawCell(face, sched, t, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := (len(cells) + o.Columns - 1) / o.Columns
	dc := gg.NewContext(o.Columns*o.CellWidth, rows*o.CellHeight)
	dc.SetColor(color.White)
	dc.Clear()
	for i, cell := range cells {
		x := (i % o.Columns) * o.CellWidth
		y := (i / o.Columns) * o.CellHeight
		dc.DrawImage(cell, x, y)
	}
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	for c := 1; c < o.Columns; c++ {
		x := float64(c * o.CellWidth)
		dc.DrawLine(x, 0, x, float64(dc.Height()))
	}
	for r := 1; r < rows; r++ {
		y := float64(r * o.CellHeight)
		dc.DrawLine(0, y, float64(dc.Width()), y)
	}
	dc.Stroke()
	return dc.Image(), nil
}

// Save renders the sheet and writes it to path as PNG.
func Save(ctx context.Context, sched *motion.Schedule, opts Options, path string) error {
	img, err := Render(ctx, sched, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

// drawCell paints the leaves of sched at time t in reading order. Glyph
// nodes draw their text; other leaves draw their id. Opacity maps to alpha
// and OffsetY shifts the baseline; blur is shown as a grey halo.
func drawCell(face font.Face, sched *motion.Schedule, t float64, o Options) image.Image {
	dc := gg.NewContext(o.CellWidth, o.CellHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)

	baseline := float64(o.CellHeight) * 0.55
	spaceW, _ := dc.MeasureString(" ")
	x := pad
	lastWord := -1
	for _, snap := range sched.Snapshot(t) {
		n, ok := sched.Node(snap.ID)
		if !ok || n.NumChildren() > 0 {
			continue
		}
		label := n.ID
		if g, ok := n.UserData.(motion.Glyph); ok {
			label = g.Text
			if lastWord >= 0 && g.Word != lastWord {
				x += spaceW
			}
			lastWord = g.Word
		}
		w, _ := dc.MeasureString(label)
		y := baseline + snap.Props.OffsetY*o.FontSize/40
		alpha := math.Max(0, math.Min(1, snap.Props.Opacity))
		if blur := snap.Props.BlurRadius; blur > 0.5 {
			dc.SetRGBA(0.5, 0.5, 0.5, alpha*0.3)
			r := math.Min(blur, 4)
			dc.DrawString(label, x-r, y)
			dc.DrawString(label, x+r, y)
		}
		dc.SetRGBA(0.1, 0.1, 0.12, alpha)
		dc.DrawString(label, x, y)
		x += w
		if _, glyph := n.UserData.(motion.Glyph); !glyph {
			x += spaceW * 2
		}
	}

	dc.SetRGB(0.45, 0.45, 0.5)
	dc.DrawString(fmt.Sprintf("t=%.2fs", t), pad, float64(o.CellHeight)-pad)
	return dc.Image()
}
