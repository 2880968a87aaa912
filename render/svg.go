package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/scene"
	"github.com/npillmayer/smear/stroke"
)

const crinkleID = "crinkle"

// SVG writes a frame as a standalone SVG document. The background rectangle
// extends beyond the view box by the crinkle amplitude, so that displaced
// edges never uncover the canvas.
func SVG(w io.Writer, f scene.Frame, opts Options) error {
	bw := bufio.NewWriter(w)
	num := func(x float64) string { return strconv.FormatFloat(smear.Zap(x), 'g', -1, 64) }
	width, height := float64(opts.Width), float64(opts.Height)
	amp := opts.CrinkleAmplitude
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"`,
		opts.Width, opts.Height, opts.Width, opts.Height)
	if amp > 0 {
		fmt.Fprintf(bw, ` filter="url(#%s)"`, crinkleID)
	}
	bw.WriteString(" style=\"overflow: visible\">\n")
	if amp > 0 {
		fmt.Fprintf(bw, `<filter id="%s" color-interpolation-filters="linearRGB" filterUnits="objectBoundingBox" primitiveUnits="userSpaceOnUse">`+"\n", crinkleID)
		fmt.Fprintf(bw, `<feTurbulence type="fractalNoise" baseFrequency="%s" numOctaves="1" stitchTiles="stitch" seed="%d" result="turbulence"/>`+"\n",
			num(opts.CrinkleFrequency), f.Tick)
		fmt.Fprintf(bw, `<feDisplacementMap in="SourceGraphic" in2="turbulence" scale="%s" result="displacementMap"/>`+"\n",
			num(amp))
		bw.WriteString("</filter>\n")
	}
	fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(-amp), num(-amp), num(width+2*amp), num(height+2*amp), stroke.Hex(opts.Background))
	for _, l := range f.Layers {
		fmt.Fprintf(bw, `<path d="%s" fill="%s"`, l.Data(), stroke.Hex(l.Color))
		if l.Color.A < 0xff {
			fmt.Fprintf(bw, ` fill-opacity="%s"`, num(float64(l.Color.A)/255))
		}
		bw.WriteString("/>\n")
	}
	bw.WriteString("</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: writing SVG: %w", err)
	}
	tracer().Debugf("render: SVG frame %d with %d layers", f.Tick, len(f.Layers))
	return nil
}
