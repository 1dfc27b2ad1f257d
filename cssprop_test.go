package motion

import (
	"reflect"
	"testing"
)

func TestCSSProperty(t *testing.T) {
	tests := map[string]string{
		"angle":        "transform",
		"scale":        "transform",
		"fill":         "background",
		"backdropBlur": "backdrop-filter",
		"strokeWidth":  "border-width",
		"custom-thing": "custom-thing",
	}
	for key, want := range tests {
		if got := CSSProperty(key); got != want {
			t.Errorf("CSSProperty(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestStyleKeys(t *testing.T) {
	tests := []struct {
		prop string
		want []string
	}{
		{"transform", []string{"angle", "scale"}},
		{"backdrop-filter", []string{"backdropBlur"}},
		{"border-radius", []string{"radius"}},
		{"border-top-left-radius", []string{"radius"}},
		{"border-left-width", []string{"strokeWidth"}},
		{"border-color", []string{"strokeFill"}},
		{"border-style", []string{"border-style"}},
		{"width", []string{"width"}},
	}
	for _, tt := range tests {
		if got := StyleKeys(tt.prop); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("StyleKeys(%q) = %v, want %v", tt.prop, got, tt.want)
		}
	}
}

func TestStyleKeysRoundTrip(t *testing.T) {
	for key := range cssProperties {
		found := false
		for _, k := range StyleKeys(CSSProperty(key)) {
			if k == key {
				found = true
			}
		}
		if !found {
			t.Errorf("%q does not map back from %q", key, CSSProperty(key))
		}
	}
}
