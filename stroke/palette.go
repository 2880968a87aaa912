package stroke

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrBadColor indicates a color specification which could not be parsed.
	ErrBadColor = errors.New("invalid color")
	// ErrEmptyPalette indicates a palette without any colors.
	ErrEmptyPalette = errors.New("palette has no colors")
)

// Background is the default canvas color.
const Background = "hsl(236, 47%, 35%)"

// DefaultColors are the color specifications of the default palette.
var DefaultColors = []string{
	"hsl(331, 70%, 65%)",
	"hsl(32, 80%, 58%)",
	"hsl(145, 60%, 58%)",
	"hsl(202, 67%, 60%)",
	"hsl(258, 53%, 55%)",
}

// Palette is a fixed list of stroke colors.
type Palette []color.NRGBA

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultColors...)
	if err != nil {
		panic(err) // default colors are constant
	}
	return p
}

// ParsePalette parses a list of color specifications.
func ParsePalette(specs ...string) (Palette, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, 0, len(specs))
	for _, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// ParseColor parses a CSS color of the form "hsl(h, s%, l%)" or "#rrggbb".
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.TrimSpace(strings.ToLower(spec))
	var c colorful.Color
	switch {
	case strings.HasPrefix(s, "#"):
		var err error
		if c, err = colorful.Hex(s); err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, spec, err)
		}
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		args := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "hsl("), ")"), ",")
		if len(args) != 3 {
			return color.NRGBA{}, fmt.Errorf("%w %q: need 3 components", ErrBadColor, spec)
		}
		var v [3]float64
		for i, a := range args {
			f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(a), "%"), 64)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, spec, err)
			}
			v[i] = f
		}
		c = colorful.Hsl(v[0], v[1]/100, v[2]/100)
	default:
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrBadColor, spec)
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats a color as "#rrggbb".
func Hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ColorPolicy selects how a Generator assigns colors to strokes.
type ColorPolicy int

const (
	// RandomColor picks a palette color uniformly at random.
	RandomColor ColorPolicy = iota
	// RoundRobin cycles through the palette.
	RoundRobin
)
