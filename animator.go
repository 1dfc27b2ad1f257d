package motion

// sample is one keyframe of a typed track.
type sample[T any] struct {
	position float64
	value    T
}

// track is a position-sorted list of samples for one property group.
type track[T any] []sample[T]

func comparePosition[T any](pos float64, s sample[T]) float64 {
	return pos - s.position
}

func (tr track[T]) insert(position float64, v T) track[T] {
	return insertSorted(tr, sample[T]{position, v}, func(a, b sample[T]) float64 {
		return a.position - b.position
	})
}

// interpolate resolves the track at pos. With no samples it returns fallback,
// with one sample that sample's value, otherwise blend applied to the
// bracketing pair.
func (tr track[T]) interpolate(fallback T, pos float64, blend func(start, end sample[T], pos float64) T) T {
	switch len(tr) {
	case 0:
		return fallback
	case 1:
		return tr[0].value
	}
	start, end := tr.startEnd(pos)
	return blend(start, end, pos)
}

// startEnd returns the keyframes bracketing pos.
func (tr track[T]) startEnd(pos float64) (sample[T], sample[T]) {
	index := binSearchInsertAt(tr, pos, comparePosition[T])
	s, e := bracket(index, len(tr))
	return tr[s], tr[e]
}

// rangeOf maps pos between two samples onto [from, to], clamped.
func rangeOf[T any](start, end sample[T], pos, from, to float64) float64 {
	return RangeMap(pos, start.position, end.position, from, to, true)
}

// progress returns the clamped blend factor of pos between two samples.
func progress[T any](start, end sample[T], pos float64) float64 {
	return RangeMap(pos, start.position, end.position, 0, 1, true)
}

// Animator interpolates an item's property values across scroll position
// from sparse keyframes. Tracks are sorted once at construction; every
// getter is a pure function of its arguments.
type Animator struct {
	dimensions    track[DimensionsValue]
	position      track[PositionValue]
	rotation      track[RotationValue]
	radius        track[RadiusValue]
	borderWidth   track[BorderWidthValue]
	opacity       track[OpacityValue]
	scale         track[ScaleValue]
	blur          track[BlurValue]
	backdropBlur  track[BackdropBlurValue]
	textColor     track[TextColorValue]
	letterSpacing track[LetterSpacingValue]
	wordSpacing   track[WordSpacingValue]
	fill          track[FillValue]
	borderFill    track[BorderFillValue]
	fxParams      track[FXParamsValue]
}

// NewAnimator sorts data into per-group tracks. Entries with a nil value are
// ignored.
func NewAnimator(data []AnimationData) *Animator {
	a := &Animator{}
	for _, d := range data {
		a.add(d.Position, d.Value)
	}
	return a
}

func (a *Animator) add(pos float64, value KeyframeValue) {
	switch v := value.(type) {
	case DimensionsValue:
		a.dimensions = a.dimensions.insert(pos, v)
	case PositionValue:
		a.position = a.position.insert(pos, v)
	case RotationValue:
		a.rotation = a.rotation.insert(pos, v)
	case RadiusValue:
		a.radius = a.radius.insert(pos, v)
	case BorderWidthValue:
		a.borderWidth = a.borderWidth.insert(pos, v)
	case OpacityValue:
		a.opacity = a.opacity.insert(pos, v)
	case ScaleValue:
		a.scale = a.scale.insert(pos, v)
	case BlurValue:
		a.blur = a.blur.insert(pos, v)
	case BackdropBlurValue:
		a.backdropBlur = a.backdropBlur.insert(pos, v)
	case TextColorValue:
		a.textColor = a.textColor.insert(pos, v)
	case LetterSpacingValue:
		a.letterSpacing = a.letterSpacing.insert(pos, v)
	case WordSpacingValue:
		a.wordSpacing = a.wordSpacing.insert(pos, v)
	case FillValue:
		a.fill = a.fill.insert(pos, v)
	case BorderFillValue:
		a.borderFill = a.borderFill.insert(pos, v)
	case FXParamsValue:
		a.fxParams = a.fxParams.insert(pos, v)
	case nil:
	default:
		Logger().Warn("animator: unsupported keyframe value", "group", value.Group())
	}
}

// Len returns the number of keyframes in group.
func (a *Animator) Len(group PropertyGroup) int {
	switch group {
	case GroupDimensions:
		return len(a.dimensions)
	case GroupPosition:
		return len(a.position)
	case GroupRotation:
		return len(a.rotation)
	case GroupBorderRadius:
		return len(a.radius)
	case GroupBorderWidth:
		return len(a.borderWidth)
	case GroupOpacity:
		return len(a.opacity)
	case GroupScale:
		return len(a.scale)
	case GroupBlur:
		return len(a.blur)
	case GroupBackdropBlur:
		return len(a.backdropBlur)
	case GroupTextColor:
		return len(a.textColor)
	case GroupLetterSpacing:
		return len(a.letterSpacing)
	case GroupWordSpacing:
		return len(a.wordSpacing)
	case GroupFill:
		return len(a.fill)
	case GroupBorderFill:
		return len(a.borderFill)
	case GroupFXParams:
		return len(a.fxParams)
	}
	return 0
}

// Dimensions returns the item size at pos.
func (a *Animator) Dimensions(v DimensionsValue, pos float64) DimensionsValue {
	return a.dimensions.interpolate(v, pos, func(s, e sample[DimensionsValue], pos float64) DimensionsValue {
		return DimensionsValue{
			Width:  rangeOf(s, e, pos, s.value.Width, e.value.Width),
			Height: rangeOf(s, e, pos, s.value.Height, e.value.Height),
		}
	})
}

// Position returns the item offset at pos.
func (a *Animator) Position(v PositionValue, pos float64) PositionValue {
	return a.position.interpolate(v, pos, func(s, e sample[PositionValue], pos float64) PositionValue {
		return PositionValue{
			Left: rangeOf(s, e, pos, s.value.Left, e.value.Left),
			Top:  rangeOf(s, e, pos, s.value.Top, e.value.Top),
		}
	})
}

// Rotation returns the item angle at pos.
func (a *Animator) Rotation(v RotationValue, pos float64) RotationValue {
	return a.rotation.interpolate(v, pos, func(s, e sample[RotationValue], pos float64) RotationValue {
		return RotationValue{Angle: rangeOf(s, e, pos, s.value.Angle, e.value.Angle)}
	})
}

// Radius returns the corner radius at pos.
func (a *Animator) Radius(v RadiusValue, pos float64) RadiusValue {
	return a.radius.interpolate(v, pos, func(s, e sample[RadiusValue], pos float64) RadiusValue {
		return RadiusValue{Radius: rangeOf(s, e, pos, s.value.Radius, e.value.Radius)}
	})
}

// BorderWidth returns the stroke width at pos.
func (a *Animator) BorderWidth(v BorderWidthValue, pos float64) BorderWidthValue {
	return a.borderWidth.interpolate(v, pos, func(s, e sample[BorderWidthValue], pos float64) BorderWidthValue {
		return BorderWidthValue{BorderWidth: rangeOf(s, e, pos, s.value.BorderWidth, e.value.BorderWidth)}
	})
}

// Opacity returns the item opacity at pos.
func (a *Animator) Opacity(v OpacityValue, pos float64) OpacityValue {
	return a.opacity.interpolate(v, pos, func(s, e sample[OpacityValue], pos float64) OpacityValue {
		return OpacityValue{Opacity: rangeOf(s, e, pos, s.value.Opacity, e.value.Opacity)}
	})
}

// Scale returns the item scale at pos.
func (a *Animator) Scale(v ScaleValue, pos float64) ScaleValue {
	return a.scale.interpolate(v, pos, func(s, e sample[ScaleValue], pos float64) ScaleValue {
		return ScaleValue{Scale: rangeOf(s, e, pos, s.value.Scale, e.value.Scale)}
	})
}

// Blur returns the item blur at pos.
func (a *Animator) Blur(v BlurValue, pos float64) BlurValue {
	return a.blur.interpolate(v, pos, func(s, e sample[BlurValue], pos float64) BlurValue {
		return BlurValue{Blur: rangeOf(s, e, pos, s.value.Blur, e.value.Blur)}
	})
}

// BackdropBlur returns the backdrop blur at pos.
func (a *Animator) BackdropBlur(v BackdropBlurValue, pos float64) BackdropBlurValue {
	return a.backdropBlur.interpolate(v, pos, func(s, e sample[BackdropBlurValue], pos float64) BackdropBlurValue {
		return BackdropBlurValue{BackdropBlur: rangeOf(s, e, pos, s.value.BackdropBlur, e.value.BackdropBlur)}
	})
}

// TextColor returns the text color at pos, mixed in OkLch.
func (a *Animator) TextColor(v TextColorValue, pos float64) TextColorValue {
	return a.textColor.interpolate(v, pos, func(s, e sample[TextColorValue], pos float64) TextColorValue {
		return TextColorValue{Color: mixColor(s.value.Color, e.value.Color, progress(s, e, pos))}
	})
}

// LetterSpacing returns the letter spacing at pos.
func (a *Animator) LetterSpacing(v LetterSpacingValue, pos float64) LetterSpacingValue {
	return a.letterSpacing.interpolate(v, pos, func(s, e sample[LetterSpacingValue], pos float64) LetterSpacingValue {
		return LetterSpacingValue{LetterSpacing: rangeOf(s, e, pos, s.value.LetterSpacing, e.value.LetterSpacing)}
	})
}

// WordSpacing returns the word spacing at pos.
func (a *Animator) WordSpacing(v WordSpacingValue, pos float64) WordSpacingValue {
	return a.wordSpacing.interpolate(v, pos, func(s, e sample[WordSpacingValue], pos float64) WordSpacingValue {
		return WordSpacingValue{WordSpacing: rangeOf(s, e, pos, s.value.WordSpacing, e.value.WordSpacing)}
	})
}

// Fill returns the background layers at pos. The result is a fresh copy.
func (a *Animator) Fill(v FillValue, pos float64) FillValue {
	if len(a.fill) == 1 {
		return cloneLayers(a.fill[0].value)
	}
	return a.fill.interpolate(v, pos, func(s, e sample[FillValue], pos float64) FillValue {
		return interpolateFills(s.value, e.value, progress(s, e, pos))
	})
}

// BorderFill returns the stroke layers at pos. The result is a fresh copy.
func (a *Animator) BorderFill(v BorderFillValue, pos float64) BorderFillValue {
	if len(a.borderFill) == 1 {
		return cloneLayers(a.borderFill[0].value)
	}
	return a.borderFill.interpolate(v, pos, func(s, e sample[BorderFillValue], pos float64) BorderFillValue {
		return interpolateFills(s.value, e.value, progress(s, e, pos))
	})
}

// FXParams returns shader parameters at pos. Only the keys of v are
// resolved; a keyframe missing a key falls back to v's value for it.
func (a *Animator) FXParams(v FXParamsValue, pos float64) FXParamsValue {
	switch len(a.fxParams) {
	case 0:
		return v
	case 1:
		kf := a.fxParams[0].value
		out := make(FXParamsValue, len(v))
		for key, fallback := range v {
			out[key] = paramOr(kf, key, fallback)
		}
		return out
	}
	s, e := a.fxParams.startEnd(pos)
	out := make(FXParamsValue, len(v))
	for key, fallback := range v {
		out[key] = rangeOf(s, e, pos, paramOr(s.value, key, fallback), paramOr(e.value, key, fallback))
	}
	return out
}

func paramOr(m FXParamsValue, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
