package motion

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadArticle decodes an article from YAML.
func LoadArticle(data []byte) (Article, error) {
	var a Article
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Article{}, fmt.Errorf("load article: %w", err)
	}
	return a, nil
}

// LoadKeyframes decodes a YAML list of keyframes. Keyframes without an ID
// are given a random one.
func LoadKeyframes(data []byte) ([]Keyframe, error) {
	var kfs []Keyframe
	if err := yaml.Unmarshal(data, &kfs); err != nil {
		return nil, fmt.Errorf("load keyframes: %w", err)
	}
	return kfs, nil
}

// keyframeDoc is the encoded shape of a Keyframe: the value is decoded once
// the type tag is known.
type keyframeDoc struct {
	ID       string        `yaml:"id"`
	ItemID   string        `yaml:"itemId"`
	LayoutID string        `yaml:"layoutId"`
	Type     PropertyGroup `yaml:"type"`
	Position float64       `yaml:"position"`
	Value    yaml.Node     `yaml:"value"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Keyframe) UnmarshalYAML(node *yaml.Node) error {
	var doc keyframeDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	value, err := decodeKeyframeValue(doc.Type, &doc.Value)
	if err != nil {
		return fmt.Errorf("keyframe %q (line %d): %w", doc.ID, node.Line, err)
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	*k = Keyframe{
		ID:       doc.ID,
		ItemID:   doc.ItemID,
		LayoutID: doc.LayoutID,
		Position: doc.Position,
		Value:    value,
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (k Keyframe) MarshalYAML() (any, error) {
	return struct {
		ID       string        `yaml:"id"`
		ItemID   string        `yaml:"itemId"`
		LayoutID string        `yaml:"layoutId"`
		Type     PropertyGroup `yaml:"type"`
		Position float64       `yaml:"position"`
		Value    KeyframeValue `yaml:"value"`
	}{k.ID, k.ItemID, k.LayoutID, k.Type(), k.Position, k.Value}, nil
}

func decodeKeyframeValue(group PropertyGroup, node *yaml.Node) (KeyframeValue, error) {
	if node.Kind == 0 {
		return nil, fmt.Errorf("missing %s value", group)
	}
	switch group {
	case GroupDimensions:
		return decodeAs[DimensionsValue](node)
	case GroupPosition:
		return decodeAs[PositionValue](node)
	case GroupRotation:
		return decodeAs[RotationValue](node)
	case GroupBorderRadius:
		return decodeAs[RadiusValue](node)
	case GroupBorderWidth:
		return decodeAs[BorderWidthValue](node)
	case GroupOpacity:
		return decodeAs[OpacityValue](node)
	case GroupScale:
		return decodeAs[ScaleValue](node)
	case GroupBlur:
		return decodeAs[BlurValue](node)
	case GroupBackdropBlur:
		return decodeAs[BackdropBlurValue](node)
	case GroupTextColor:
		return decodeAs[TextColorValue](node)
	case GroupLetterSpacing:
		return decodeAs[LetterSpacingValue](node)
	case GroupWordSpacing:
		return decodeAs[WordSpacingValue](node)
	case GroupFill:
		return decodeAs[FillValue](node)
	case GroupBorderFill:
		return decodeAs[BorderFillValue](node)
	case GroupFXParams:
		return decodeAs[FXParamsValue](node)
	}
	return nil, fmt.Errorf("unknown property group %q", group)
}

func decodeAs[T KeyframeValue](node *yaml.Node) (KeyframeValue, error) {
	var v T
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
