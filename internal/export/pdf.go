package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"blueprints/internal/render"
)

const (
	pdfMargin = 15.0  // mm
	pdfSide   = 180.0 // mm, printed width of the surface
)

// pdfTarget replays drawing commands onto a PDF page. The surface is
// printed as a framed square below the title.
type pdfTarget struct {
	pdf    *gofpdf.Fpdf
	scale  float64
	ox, oy float64
	w, h   float64
}

var _ render.Target = (*pdfTarget)(nil)

func (t *pdfTarget) Clear() {
	t.pdf.SetDrawColor(200, 200, 200)
	t.pdf.SetLineWidth(0.2)
	t.pdf.Rect(t.ox, t.oy, t.w*t.scale, t.h*t.scale, "D")
}

func (t *pdfTarget) BeginPath() {}

func (t *pdfTarget) MoveTo(x, y float64) { t.pdf.MoveTo(t.ox+x*t.scale, t.oy+y*t.scale) }
func (t *pdfTarget) LineTo(x, y float64) { t.pdf.LineTo(t.ox+x*t.scale, t.oy+y*t.scale) }
func (t *pdfTarget) ClosePath()          { t.pdf.ClosePath() }

func (t *pdfTarget) Stroke() error {
	t.pdf.SetDrawColor(0, 0, 0)
	t.pdf.SetLineWidth(0.5)
	t.pdf.DrawPath("D")
	return t.pdf.Error()
}

// PDF writes a one-page A4 document titled title with cmds drawn on a
// width×height surface.
func PDF(w io.Writer, title string, cmds []render.Command, width, height int) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle(title, true)
	p.SetCreator("blueprints", true)
	p.AddPage()
	p.SetFont("Helvetica", "B", 14)
	p.Text(pdfMargin, pdfMargin, title)

	t := &pdfTarget{
		pdf:   p,
		scale: pdfSide / float64(max(width, height)),
		ox:    pdfMargin,
		oy:    pdfMargin + 8,
		w:     float64(width),
		h:     float64(height),
	}
	if err := render.Replay(cmds, t); err != nil {
		return err
	}
	return p.Output(w)
}
