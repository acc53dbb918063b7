package export

import (
	"io"

	"github.com/gogpu/gg"

	"blueprints/internal/render"
)

// ggTarget replays drawing commands onto a gg raster context.
type ggTarget struct {
	dc *gg.Context
}

var _ render.Target = ggTarget{}

func (t ggTarget) Clear() {
	t.dc.ClearWithColor(gg.White)
	t.dc.ClearPath()
}

func (t ggTarget) BeginPath()          { t.dc.ClearPath() }
func (t ggTarget) MoveTo(x, y float64) { t.dc.MoveTo(x, y) }
func (t ggTarget) LineTo(x, y float64) { t.dc.LineTo(x, y) }
func (t ggTarget) ClosePath()          { t.dc.ClosePath() }

func (t ggTarget) Stroke() error {
	t.dc.SetRGB(0, 0, 0)
	t.dc.SetLineWidth(1)
	return t.dc.Stroke()
}

// PNG rasterizes cmds on a width×height white surface and encodes it to w.
func PNG(w io.Writer, cmds []render.Command, width, height int) error {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()
	if err := render.Replay(cmds, ggTarget{dc: dc}); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
