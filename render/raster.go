package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/scene"
	"golang.org/x/image/vector"
)

// rasterPen adapts a vector.Rasterizer to the pen interface.
type rasterPen struct {
	z     *vector.Rasterizer
	scale float32
}

func (rp rasterPen) xy(p smear.Vector) (float32, float32) {
	return float32(p.X) * rp.scale, float32(p.Y) * rp.scale
}

func (rp rasterPen) MoveTo(p smear.Vector) {
	rp.z.MoveTo(rp.xy(p))
}

func (rp rasterPen) QuadTo(c, p smear.Vector) {
	cx, cy := rp.xy(c)
	x, y := rp.xy(p)
	rp.z.QuadTo(cx, cy, x, y)
}

func (rp rasterPen) ClosePath() {
	rp.z.ClosePath()
}

// Raster draws a frame into a new image of Width·Scale × Height·Scale pixels.
func Raster(f scene.Frame, opts Options) *image.RGBA {
	s := opts.scale()
	w, h := int(float64(opts.Width)*s), int(float64(opts.Height)*s)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	RasterInto(img, f, opts)
	return img
}

// RasterInto draws a frame into an existing image, e.g., a frame buffer
// which is re-used from tick to tick.
func RasterInto(img draw.Image, f scene.Frame, opts Options) {
	b := img.Bounds()
	draw.Draw(img, b, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	rp := rasterPen{z: z, scale: float32(opts.scale())}
	for _, l := range f.Layers {
		z.Reset(b.Dx(), b.Dy())
		z.DrawOp = draw.Over
		walk(l.Path, rp)
		z.Draw(img, b, image.NewUniform(l.Color), image.Point{})
	}
}

// PNG encodes a rasterized frame.
func PNG(w io.Writer, f scene.Frame, opts Options) error {
	if err := png.Encode(w, Raster(f, opts)); err != nil {
		return fmt.Errorf("render: encoding PNG: %w", err)
	}
	return nil
}
