package motion

// KeyframeValue is the value carried by a keyframe. Each implementation
// belongs to exactly one PropertyGroup.
type KeyframeValue interface {
	Group() PropertyGroup
}

// DimensionsValue is the item box size.
type DimensionsValue struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PositionValue is the item offset inside its section.
type PositionValue struct {
	Left float64 `yaml:"left"`
	Top  float64 `yaml:"top"`
}

// RotationValue is the item rotation in degrees.
type RotationValue struct {
	Angle float64 `yaml:"angle"`
}

// RadiusValue is the corner radius.
type RadiusValue struct {
	Radius float64 `yaml:"radius"`
}

// BorderWidthValue is the stroke width.
type BorderWidthValue struct {
	BorderWidth float64 `yaml:"borderWidth"`
}

// OpacityValue is the item opacity in [0, 1].
type OpacityValue struct {
	Opacity float64 `yaml:"opacity"`
}

// ScaleValue is the uniform item scale.
type ScaleValue struct {
	Scale float64 `yaml:"scale"`
}

// BlurValue is the item blur radius.
type BlurValue struct {
	Blur float64 `yaml:"blur"`
}

// BackdropBlurValue is the blur applied behind the item.
type BackdropBlurValue struct {
	BackdropBlur float64 `yaml:"backdropBlur"`
}

// TextColorValue is a CSS color string for rich text.
type TextColorValue struct {
	Color string `yaml:"color"`
}

// LetterSpacingValue is the rich text letter spacing.
type LetterSpacingValue struct {
	LetterSpacing float64 `yaml:"letterSpacing"`
}

// WordSpacingValue is the rich text word spacing.
type WordSpacingValue struct {
	WordSpacing float64 `yaml:"wordSpacing"`
}

// FillValue is the ordered list of background layers.
type FillValue []FillLayer

// BorderFillValue is the ordered list of stroke layers.
type BorderFillValue []FillLayer

// FXParamsValue holds named shader parameters.
type FXParamsValue map[string]float64

func (DimensionsValue) Group() PropertyGroup    { return GroupDimensions }
func (PositionValue) Group() PropertyGroup      { return GroupPosition }
func (RotationValue) Group() PropertyGroup      { return GroupRotation }
func (RadiusValue) Group() PropertyGroup        { return GroupBorderRadius }
func (BorderWidthValue) Group() PropertyGroup   { return GroupBorderWidth }
func (OpacityValue) Group() PropertyGroup       { return GroupOpacity }
func (ScaleValue) Group() PropertyGroup         { return GroupScale }
func (BlurValue) Group() PropertyGroup          { return GroupBlur }
func (BackdropBlurValue) Group() PropertyGroup  { return GroupBackdropBlur }
func (TextColorValue) Group() PropertyGroup     { return GroupTextColor }
func (LetterSpacingValue) Group() PropertyGroup { return GroupLetterSpacing }
func (WordSpacingValue) Group() PropertyGroup   { return GroupWordSpacing }
func (FillValue) Group() PropertyGroup          { return GroupFill }
func (BorderFillValue) Group() PropertyGroup    { return GroupBorderFill }
func (FXParamsValue) Group() PropertyGroup      { return GroupFXParams }

// Keyframe is a (position, value) sample for one property group of one item
// on one layout. Position is a scroll distance in the same unit as the
// article width.
type Keyframe struct {
	ID       string
	ItemID   string
	LayoutID string
	Position float64
	Value    KeyframeValue
}

// Type reports the property group of the keyframe's value.
func (k Keyframe) Type() PropertyGroup {
	if k.Value == nil {
		return ""
	}
	return k.Value.Group()
}

// AnimationData is the position and value of one keyframe, stripped of its
// identity. It is the Animator's input.
type AnimationData struct {
	Position float64
	Value    KeyframeValue
}

// Keyframes indexes an article's keyframes by item.
type Keyframes struct {
	byItem map[string][]Keyframe
}

// NewKeyframes groups keyframes by item, keeping their input order.
func NewKeyframes(keyframes []Keyframe) *Keyframes {
	k := &Keyframes{byItem: make(map[string][]Keyframe)}
	for _, kf := range keyframes {
		k.byItem[kf.ItemID] = append(k.byItem[kf.ItemID], kf)
	}
	return k
}

// ItemKeyframes returns the keyframes recorded for itemID on every layout.
func (k *Keyframes) ItemKeyframes(itemID string) []Keyframe {
	return k.byItem[itemID]
}

// Animator builds an Animator from the keyframes of itemID on layoutID.
// It returns nil when the item has no keyframes on that layout, in which
// case callers should use the static parameters directly.
func (k *Keyframes) Animator(itemID, layoutID string) *Animator {
	var data []AnimationData
	for _, kf := range k.byItem[itemID] {
		if kf.LayoutID != layoutID || kf.Value == nil {
			continue
		}
		data = append(data, AnimationData{Position: kf.Position, Value: kf.Value})
	}
	if len(data) == 0 {
		return nil
	}
	return NewAnimator(data)
}
