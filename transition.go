package motion

import (
	"math"
	"strconv"
	"strings"
)

// minTransitionDuration keeps a zero duration transition from being dropped
// by the renderer, which would swallow its end signal.
const minTransitionDuration = 0.01

// TransitionString builds the CSS transition shorthand for the requested
// keys of props: one "<property> <duration>ms <timing> <delay>ms" descriptor
// per physical property, joined with ", ". Keys sharing a property (angle and
// scale both drive transform) collapse onto the first requested one. It
// returns "none" when nothing transitions.
func TransitionString(props StateProps, keys []string) string {
	if len(props) == 0 {
		return "none"
	}
	var b strings.Builder
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		p, ok := props[key]
		if !ok || p.Transition == nil {
			continue
		}
		css := CSSProperty(key)
		if _, dup := seen[css]; dup {
			continue
		}
		seen[css] = struct{}{}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		t := p.Transition
		b.WriteString(css)
		b.WriteByte(' ')
		b.WriteString(formatMillis(math.Max(t.Duration, minTransitionDuration)))
		b.WriteByte(' ')
		b.WriteString(t.Timing)
		b.WriteByte(' ')
		b.WriteString(formatMillis(t.Delay))
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

func formatMillis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "ms"
}
