package motion

// Compose resolves one style key by precedence: the interaction override in
// state, then the animated value, then static. animate may be nil when the
// item has no keyframes for the key; it receives static as its fallback.
//
//	w := motion.Compose(st, "width", func(v float64) float64 {
//	    return anim.Dimensions(motion.DimensionsValue{Width: v}, pos).Width
//	}, area.Width)
func Compose[T any](state ItemState, key string, animate func(T) T, static T) T {
	if v, ok := state.Styles[key]; ok {
		if t, ok := styleValue[T](v); ok {
			return t
		}
	}
	if animate != nil {
		return animate(static)
	}
	return static
}

// styleValue converts a decoded override to T. Numbers decoded from YAML or
// JSON may arrive as any numeric kind.
func styleValue[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	if p, ok := any(&zero).(*float64); ok {
		if f, ok := toFloat(v); ok {
			*p = f
			return zero, true
		}
	}
	return zero, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
