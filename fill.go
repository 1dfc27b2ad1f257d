package motion

import (
	"slices"
	"sort"
	"strings"
)

// FillType tags the kind of a FillLayer.
type FillType string

const (
	FillSolid          FillType = "solid"
	FillLinearGradient FillType = "linear-gradient"
	FillRadialGradient FillType = "radial-gradient"
	FillConicGradient  FillType = "conic-gradient"
	FillImage          FillType = "image"
)

// ColorPoint is one gradient stop. Position is a percentage along the
// gradient line.
type ColorPoint struct {
	ID       string  `yaml:"id"`
	Value    string  `yaml:"value"`
	Position float64 `yaml:"position"`
}

// FillLayer is one background contribution. A single flat struct carries
// every kind; Type selects which fields are meaningful:
//
//   - solid: Value
//   - linear-gradient: Colors, Angle, Start, End
//   - radial-gradient: Colors, Angle, Center, Diameter
//   - conic-gradient: Colors, Angle, Center
//   - image: Src, Behavior, BackgroundSize, Opacity, Rotation
//
// ID is stable across keyframes and is what interpolation matches on.
type FillLayer struct {
	ID        string   `yaml:"id"`
	Type      FillType `yaml:"type"`
	BlendMode string   `yaml:"blendMode,omitempty"`

	Value string `yaml:"value,omitempty"`

	Colors   []ColorPoint `yaml:"colors,omitempty"`
	Angle    float64      `yaml:"angle,omitempty"`
	Start    Point        `yaml:"start,omitempty"`
	End      Point        `yaml:"end,omitempty"`
	Center   Point        `yaml:"center,omitempty"`
	Diameter float64      `yaml:"diameter,omitempty"`

	Src            string  `yaml:"src,omitempty"`
	Behavior       string  `yaml:"behavior,omitempty"`
	BackgroundSize float64 `yaml:"backgroundSize,omitempty"`
	Opacity        float64 `yaml:"opacity,omitempty"`
	Rotation       float64 `yaml:"rotation,omitempty"`
}

// interpolateFills matches layers of from and to by ID. Layers present on one
// side only are passed through untouched; the result lists from's order
// first, then layers that only exist in to.
func interpolateFills(from, to []FillLayer, t float64) []FillLayer {
	toByID := make(map[string]int, len(to))
	for i, l := range to {
		if _, ok := toByID[l.ID]; !ok {
			toByID[l.ID] = i
		}
	}
	fromIDs := make(map[string]struct{}, len(from))
	out := make([]FillLayer, 0, len(from)+len(to))
	for _, l := range from {
		if _, dup := fromIDs[l.ID]; dup {
			continue
		}
		fromIDs[l.ID] = struct{}{}
		if j, ok := toByID[l.ID]; ok {
			out = append(out, interpolateLayer(l, to[j], t))
			continue
		}
		out = append(out, cloneLayer(l))
	}
	for _, l := range to {
		if _, ok := fromIDs[l.ID]; ok {
			continue
		}
		fromIDs[l.ID] = struct{}{}
		out = append(out, cloneLayer(l))
	}
	return out
}

// cloneLayer copies l so the result shares no stops with the keyframe.
func cloneLayer(l FillLayer) FillLayer {
	l.Colors = slices.Clone(l.Colors)
	return l
}

// cloneLayers copies a whole stack.
func cloneLayers(layers []FillLayer) []FillLayer {
	if layers == nil {
		return nil
	}
	out := make([]FillLayer, len(layers))
	for i, l := range layers {
		out[i] = cloneLayer(l)
	}
	return out
}

// interpolateLayer blends two layers sharing an ID. Layers of different
// kinds cannot be blended and keep the start layer.
func interpolateLayer(from, to FillLayer, t float64) FillLayer {
	out := cloneLayer(from)
	if from.Type != to.Type {
		return out
	}
	switch from.Type {
	case FillSolid:
		out.Value = mixColor(from.Value, to.Value, t)
	case FillLinearGradient:
		out.Colors = interpolateStops(from.Colors, to.Colors, t)
		out.Angle = lerp(from.Angle, to.Angle, t)
		out.Start = from.Start.Lerp(to.Start, t)
		out.End = from.End.Lerp(to.End, t)
	case FillRadialGradient:
		out.Colors = interpolateStops(from.Colors, to.Colors, t)
		out.Angle = lerp(from.Angle, to.Angle, t)
		out.Center = from.Center.Lerp(to.Center, t)
		out.Diameter = lerp(from.Diameter, to.Diameter, t)
	case FillConicGradient:
		out.Colors = interpolateStops(from.Colors, to.Colors, t)
		out.Angle = lerp(from.Angle, to.Angle, t)
		out.Center = from.Center.Lerp(to.Center, t)
	case FillImage:
		out.Opacity = lerp(from.Opacity, to.Opacity, t)
		out.BackgroundSize = lerp(from.BackgroundSize, to.BackgroundSize, t)
	}
	return out
}

// interpolateStops matches gradient stops by ID and returns them sorted by
// their resulting position.
func interpolateStops(from, to []ColorPoint, t float64) []ColorPoint {
	toByID := make(map[string]ColorPoint, len(to))
	for _, s := range to {
		toByID[s.ID] = s
	}
	seen := make(map[string]struct{}, len(from))
	out := make([]ColorPoint, 0, len(from)+len(to))
	for _, s := range from {
		seen[s.ID] = struct{}{}
		e, ok := toByID[s.ID]
		if !ok {
			out = append(out, s)
			continue
		}
		out = append(out, ColorPoint{
			ID:       s.ID,
			Value:    mixColor(s.Value, e.Value, t),
			Position: lerp(s.Position, e.Position, t),
		})
	}
	for _, s := range to {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// CSS returns the CSS background value for the layer.
func (l FillLayer) CSS() string {
	switch l.Type {
	case FillLinearGradient:
		return "linear-gradient(" + formatFloat(l.Angle, 4) + "deg, " + stopsCSS(l.Colors) + ")"
	case FillRadialGradient:
		return "radial-gradient(circle " + formatFloat(l.Diameter*100, 4) + " at " +
			centerCSS(l.Center) + ", " + stopsCSS(l.Colors) + ")"
	case FillConicGradient:
		stops := l.Colors
		// Close the wheel so the seam does not jump.
		if n := len(stops); n > 1 && stops[n-1].Position < 100 {
			stops = append(stops[:n:n], ColorPoint{Value: stops[0].Value, Position: 100})
		}
		return "conic-gradient(from " + formatFloat(l.Angle+90, 4) + "deg at " +
			centerCSS(l.Center) + ", " + stopsCSS(stops) + ")"
	case FillImage:
		if l.Src != "" {
			return "url(" + l.Src + ")"
		}
	case FillSolid:
		return l.Value
	}
	return "transparent"
}

func stopsCSS(stops []ColorPoint) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = s.Value + " " + formatFloat(s.Position, 4) + "%"
	}
	return strings.Join(parts, ", ")
}

func centerCSS(c Point) string {
	return formatFloat(c[0]*100, 4) + "% " + formatFloat(c[1]*100, 4) + "%"
}

// FillsVisible reports whether any layer would paint something: a color with
// non-zero alpha, or an image with non-zero opacity.
func FillsVisible(fills []FillLayer) bool {
	for _, f := range fills {
		switch f.Type {
		case FillSolid:
			if colorAlpha(f.Value) != 0 {
				return true
			}
		case FillLinearGradient, FillRadialGradient, FillConicGradient:
			for _, c := range f.Colors {
				if colorAlpha(c.Value) != 0 {
					return true
				}
			}
		case FillImage:
			if f.Opacity != 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}
