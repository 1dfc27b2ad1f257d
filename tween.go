package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing returns the tween function for a CSS timing function name.
// cubic-bezier() and step timings fall back to linear.
func Easing(timing string) ease.TweenFunc {
	switch timing {
	case "ease":
		return ease.InOutQuad
	case "ease-in":
		return ease.InCubic
	case "ease-out":
		return ease.OutCubic
	case "ease-in-out":
		return ease.InOutCubic
	}
	return ease.Linear
}

// propertyTween runs one physical CSS property: a delay followed by an eased
// 0..1 progress tween.
type propertyTween struct {
	property string
	seq      *gween.Sequence
	progress float32
	done     bool
}

// TransitionGroup plays an item's CSS transition without a browser. Each
// physical property advances on its own timing and reports its end to the
// controller, the same signal a renderer would deliver. Call Update(dt) each
// frame; there is no global manager.
//
// A group started before a newer transition on the same item stops without
// signaling.
type TransitionGroup struct {
	ctrl       *ItemController
	generation int
	props      []*propertyTween
	Done       bool
}

// Play starts headless playback of the item's current transition for keys.
func (c *ItemController) Play(keys []string) *TransitionGroup {
	g := &TransitionGroup{ctrl: c, generation: c.generation}
	props := c.registry.StatePropsForItem(c.itemID)
	byProp := make(map[string]*propertyTween)
	for _, key := range keys {
		p, ok := props[key]
		if !ok || p.Transition == nil {
			continue
		}
		css := CSSProperty(key)
		if _, ok := byProp[css]; ok {
			continue
		}
		t := p.Transition
		duration := float32(max(t.Duration, minTransitionDuration) / 1000)
		delay := float32(max(t.Delay, 0) / 1000)
		pt := &propertyTween{
			property: css,
			seq: gween.NewSequence(
				gween.New(0, 0, delay, ease.Linear),
				gween.New(0, 1, duration, Easing(t.Timing)),
			),
		}
		byProp[css] = pt
		g.props = append(g.props, pt)
	}
	return g
}

// Update advances every property by dt seconds. Properties that finish
// signal their end to the controller; when all are finished the controller
// is settled and Done is set.
func (g *TransitionGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.generation != g.ctrl.generation {
		g.Done = true
		return
	}

	allDone := true
	for _, pt := range g.props {
		if pt.done {
			continue
		}
		v, _, finished := pt.seq.Update(dt)
		pt.progress = v
		if !finished {
			allDone = false
			continue
		}
		pt.done = true
		pt.progress = 1
		g.ctrl.HandleTransitionEnd(pt.property)
		if g.generation != g.ctrl.generation {
			g.Done = true
			return
		}
	}
	if !allDone {
		return
	}
	g.Done = true
	// Keys declared without a timing never signal; finish them with the group.
	g.ctrl.Settle()
}

// Properties returns the CSS properties being played, in first-key order.
func (g *TransitionGroup) Properties() []string {
	out := make([]string, len(g.props))
	for i, pt := range g.props {
		out[i] = pt.property
	}
	return out
}

// Progress returns the eased 0..1 progress of a CSS property.
func (g *TransitionGroup) Progress(property string) (float64, bool) {
	for _, pt := range g.props {
		if pt.property == property {
			return float64(pt.progress), true
		}
	}
	return 0, false
}
