package motion

// Point is a 2D coordinate pair. Gradient anchors use fractions of the
// item box, so [0.5, 0.5] is the center.
type Point [2]float64

// Lerp returns the point linearly interpolated between p and q at t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{lerp(p[0], q[0], t), lerp(p[1], q[1], t)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PropertyGroup names one animatable group of item properties. A keyframe
// always belongs to exactly one group.
type PropertyGroup string

const (
	GroupDimensions    PropertyGroup = "dimensions"
	GroupPosition      PropertyGroup = "position"
	GroupRotation      PropertyGroup = "rotation"
	GroupBorderRadius  PropertyGroup = "border-radius"
	GroupBorderWidth   PropertyGroup = "border-width"
	GroupOpacity       PropertyGroup = "opacity"
	GroupScale         PropertyGroup = "scale"
	GroupTextColor     PropertyGroup = "text-color"
	GroupLetterSpacing PropertyGroup = "letter-spacing"
	GroupWordSpacing   PropertyGroup = "word-spacing"
	GroupBlur          PropertyGroup = "blur"
	GroupBackdropBlur  PropertyGroup = "backdrop-blur"
	GroupFXParams      PropertyGroup = "fx-params"
	GroupBorderFill    PropertyGroup = "border-fill"
	GroupFill          PropertyGroup = "fill"
)

// PropertyGroups lists every group in a stable order.
var PropertyGroups = []PropertyGroup{
	GroupDimensions, GroupPosition, GroupRotation, GroupBorderRadius,
	GroupBorderWidth, GroupOpacity, GroupScale, GroupTextColor,
	GroupLetterSpacing, GroupWordSpacing, GroupBlur, GroupBackdropBlur,
	GroupFXParams, GroupBorderFill, GroupFill,
}

// TriggerType identifies the pointer event an item trigger reacts to.
type TriggerType string

const (
	TriggerClick    TriggerType = "click"     // press then release over the item
	TriggerHoverIn  TriggerType = "hover-in"  // pointer enters the item
	TriggerHoverOut TriggerType = "hover-out" // pointer leaves the item
)

// Direction tells whether a transition runs toward the interaction's active
// state (in) or back toward its start state (out).
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// ActionType is a side effect dispatched to an item when a state is entered.
type ActionType string

const (
	ActionPlay  ActionType = "play"
	ActionPause ActionType = "pause"
)

// ItemType distinguishes article item kinds. Only group and compound items
// carry children; the engine treats every other kind the same way.
type ItemType string

const (
	ItemRectangle    ItemType = "rectangle"
	ItemImage        ItemType = "image"
	ItemVideo        ItemType = "video"
	ItemRichText     ItemType = "richtext"
	ItemVimeoEmbed   ItemType = "vimeo-embed"
	ItemYoutubeEmbed ItemType = "youtube-embed"
	ItemCustom       ItemType = "custom"
	ItemGroup        ItemType = "group"
	ItemCodeEmbed    ItemType = "code-embed"
	ItemCompound     ItemType = "compound"
	ItemComponent    ItemType = "component"
)

// HasChildren reports whether items of this type nest other items.
func (t ItemType) HasChildren() bool {
	return t == ItemGroup || t == ItemCompound
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
