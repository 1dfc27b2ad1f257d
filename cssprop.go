package motion

import "strings"

// cssProperties maps logical style keys to the physical CSS property that
// renders them. Several keys can share one property.
var cssProperties = map[string]string{
	"width":         "width",
	"height":        "height",
	"top":           "top",
	"left":          "left",
	"scale":         "transform",
	"angle":         "transform",
	"opacity":       "opacity",
	"radius":        "border-radius",
	"strokeWidth":   "border-width",
	"strokeFill":    "border-color",
	"fill":          "background",
	"blur":          "filter",
	"backdropBlur":  "backdrop-filter",
	"letterSpacing": "letter-spacing",
	"wordSpacing":   "word-spacing",
	"color":         "color",
}

var styleKeys = map[string][]string{
	"transform":       {"angle", "scale"},
	"border-radius":   {"radius"},
	"border-width":    {"strokeWidth"},
	"border-color":    {"strokeFill"},
	"background":      {"fill"},
	"filter":          {"blur"},
	"backdrop-filter": {"backdropBlur"},
	"letter-spacing":  {"letterSpacing"},
	"word-spacing":    {"wordSpacing"},
}

// CSSProperty returns the CSS property that renders a style key. Unknown
// keys map to themselves.
func CSSProperty(key string) string {
	if p, ok := cssProperties[key]; ok {
		return p
	}
	return key
}

// StyleKeys returns the style keys rendered by a CSS property, in match
// order. Longhands such as border-top-left-radius are folded into their
// shorthand first; unknown properties map to themselves.
func StyleKeys(cssProp string) []string {
	cssProp = normalizeCSSProperty(cssProp)
	if keys, ok := styleKeys[cssProp]; ok {
		return keys
	}
	return []string{cssProp}
}

func normalizeCSSProperty(p string) string {
	if !strings.HasPrefix(p, "border-") {
		return p
	}
	switch {
	case strings.HasSuffix(p, "-radius"):
		return "border-radius"
	case strings.HasSuffix(p, "-width"):
		return "border-width"
	}
	return p
}
