package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/outline"
	"github.com/npillmayer/smear/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ops []string
	pts []smear.Vector
}

func (r *recorder) MoveTo(p smear.Vector) {
	r.ops = append(r.ops, "M")
	r.pts = append(r.pts, p)
}

func (r *recorder) QuadTo(c, p smear.Vector) {
	r.ops = append(r.ops, "Q")
	r.pts = append(r.pts, c, p)
}

func (r *recorder) ClosePath() {
	r.ops = append(r.ops, "Z")
}

func square() outline.Path {
	return outline.Smooth([]smear.Vector{
		smear.V(20, 20), smear.V(100, 20), smear.V(100, 100), smear.V(20, 100), smear.V(20, 20),
	}, true, 2)
}

func testFrame() scene.Frame {
	red := color.NRGBA{R: 0xff, A: 0xff}
	return scene.Frame{
		Tick:   3,
		Layers: []scene.Layer{{ID: uuid.New(), Path: square(), Color: red}},
	}
}

func TestWalkReflectsControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := outline.Smooth([]smear.Vector{
		smear.V(0, 0), smear.V(2, 0), smear.V(2, 2), smear.V(0, 2),
	}, true, 2)
	r := &recorder{}
	walk(p, r)
	assert.Equal(t, []string{"M", "Q", "Q", "Z"}, r.ops)
	// M (0,0) Q (2,0) (2,1) T (1,2): reflected control is (2,2)
	require.Len(t, r.pts, 5)
	assert.Equal(t, smear.V(2, 1), r.pts[2])
	assert.Equal(t, smear.V(2, 2), r.pts[3])
	assert.Equal(t, smear.V(1, 2), r.pts[4])
}

func TestWalkSmoothAfterMove(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := outline.Path{Cmds: []outline.Cmd{
		{Op: outline.MoveTo, Pts: []smear.Vector{smear.V(1, 1)}},
		{Op: outline.SmoothQuad, Pts: []smear.Vector{smear.V(3, 1)}},
	}}
	r := &recorder{}
	walk(p, r)
	require.Len(t, r.pts, 3)
	assert.Equal(t, smear.V(1, 1), r.pts[1], "control falls back to the current point")
}

func TestSVG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	err := SVG(&buf, testFrame(), DefaultOptions(200, 150))
	require.NoError(t, err)
	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `seed="3"`)
	assert.Contains(t, svg, `baseFrequency="0.1"`)
	assert.Contains(t, svg, `<rect x="-5" y="-5" width="210" height="160"`)
	assert.Contains(t, svg, `<path d="M 20.00 20.00 Q`)
	assert.Contains(t, svg, `fill="#ff0000"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestSVGWithoutCrinkle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions(10, 10)
	opts.CrinkleAmplitude = 0
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, scene.Frame{}, opts))
	assert.NotContains(t, buf.String(), "feTurbulence")
	assert.NotContains(t, buf.String(), "<path")
	assert.Contains(t, buf.String(), `<rect x="0" y="0" width="10" height="10"`)
}

func TestRaster(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions(200, 150)
	img := Raster(testFrame(), opts)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
	bg := color.RGBAModel.Convert(opts.Background)
	assert.Equal(t, bg, img.At(180, 130))
	assert.NotEqual(t, bg, img.At(60, 60))
	r, _, _, _ := img.At(60, 60).RGBA()
	assert.Greater(t, r, uint32(0xf000))
}

func TestRasterScaled(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions(100, 100)
	opts.Scale = 2
	img := Raster(testFrame(), opts)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.NotEqual(t, color.RGBAModel.Convert(opts.Background), img.At(120, 120))
}

func TestPNG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, testFrame(), DefaultOptions(50, 50)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestPDF(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	opts := DefaultOptions(200, 150)
	require.NoError(t, PDF(&buf, opts, testFrame(), scene.Frame{Tick: 4}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Error(t, PDF(&buf, opts))
}
