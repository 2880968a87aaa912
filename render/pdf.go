package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/scene"
)

// pdfPen adapts a PDF document to the pen interface.
type pdfPen struct {
	doc *gofpdf.Fpdf
}

func (pp pdfPen) MoveTo(p smear.Vector) {
	pp.doc.MoveTo(p.X, p.Y)
}

func (pp pdfPen) QuadTo(c, p smear.Vector) {
	pp.doc.CurveTo(c.X, c.Y, p.X, p.Y)
}

func (pp pdfPen) ClosePath() {
	pp.doc.ClosePath()
}

// PDF writes frames as a PDF document, one page per frame. Coordinates are
// taken as points.
func PDF(w io.Writer, opts Options, frames ...scene.Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("render: no frames for PDF")
	}
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(opts.Width), Ht: float64(opts.Height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	pen := pdfPen{doc: doc}
	for _, f := range frames {
		doc.AddPage()
		bg := opts.Background
		doc.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		doc.Rect(0, 0, float64(opts.Width), float64(opts.Height), "F")
		for _, l := range f.Layers {
			doc.SetFillColor(int(l.Color.R), int(l.Color.G), int(l.Color.B))
			doc.SetAlpha(float64(l.Color.A)/255, "Normal")
			walk(l.Path, pen)
			doc.DrawPath("F")
		}
		doc.SetAlpha(1, "Normal")
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render: writing PDF: %w", err)
	}
	tracer().Debugf("render: PDF with %d pages", len(frames))
	return nil
}
