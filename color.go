package motion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// ErrInvalidColor is returned by ParseColor for unsupported input.
var ErrInvalidColor = errors.New("motion: invalid color")

// ParseColor parses a CSS color: hex forms, rgb(), hsl(), hwb(), oklab(),
// oklch() and every named color. Channels outside the sRGB gamut are
// clamped.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	p, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	c := colorful.Color{R: p.R, G: p.G, B: p.B}.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(p.A)}, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Mix blends c toward other in the OkLch space at t in [0, 1]. Alpha is
// interpolated linearly.
func (c Color) Mix(other Color, t float64) Color {
	m := c.toColorful().BlendOkLch(other.toColorful(), t)
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(c.A, other.A, t)}
}

// OkLch returns the color's lightness, chroma and hue in the OkLch space.
func (c Color) OkLch() (l, ch, h float64) {
	return c.toColorful().OkLch()
}

// CSS formats the color as a CSS oklch() value with an explicit alpha.
func (c Color) CSS() string {
	l, ch, h := c.OkLch()
	if ch < 1e-4 {
		ch, h = 0, 0
	}
	return "oklch(" + formatFloat(l*100, 2) + "% " + formatFloat(ch, 4) + " " +
		formatFloat(h, 2) + " / " + formatFloat(c.A, 3) + ")"
}

// CSSRGBA formats the color as a CSS rgba() value.
func (c Color) CSSRGBA() string {
	r, g, b := c.toColorful().Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatFloat(c.A, 3))
}

// mixColor blends two CSS color strings and returns the oklch() result.
// The endpoints are returned verbatim. An unparsable side degrades to a
// step at t = 0.5.
func mixColor(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, errA := ParseColor(from)
	b, errB := ParseColor(to)
	if err := errors.Join(errA, errB); err != nil {
		Logger().Debug("color mix falls back to step", "from", from, "to", to, "error", err)
		if t < 0.5 {
			return from
		}
		return to
	}
	return a.Mix(b, t).CSS()
}

// colorAlpha returns the alpha of a CSS color string. Unparsable input counts
// as opaque so it is never treated as invisible.
func colorAlpha(s string) float64 {
	c, err := ParseColor(s)
	if err != nil {
		return 1
	}
	return c.A
}

// formatFloat prints v rounded to prec decimals without trailing zeros.
func formatFloat(v float64, prec int) string {
	p := math.Pow(10, float64(prec))
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
