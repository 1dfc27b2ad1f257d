package preview

import (
	"github.com/phanxgames/motion"
)

// Style keys the preview renders, in box slot order.
var boxKeys = []string{"width", "height", "left", "top", "opacity", "angle", "scale"}

const (
	slotWidth = iota
	slotHeight
	slotLeft
	slotTop
	slotOpacity
	slotAngle
	slotScale
	slotCount
)

const fillKey = "fill"

// defaultFill is used for items without any fill keyframe or override.
var defaultFill = motion.Color{R: 0.55, G: 0.6, B: 0.7, A: 1}

// box is the displayed state of one item.
type box struct {
	item *motion.Item

	shown     [slotCount]float64
	shownFill motion.Color

	// Values at the moment the current transition group started.
	from     [slotCount]float64
	fromFill motion.Color
	group    *motion.TransitionGroup
	started  bool
}

// Scene is the preview model: scroll position, pointer state and the
// displayed box of every item. It has no ebiten dependency so it can be
// driven from tests.
type Scene struct {
	session   *motion.Session
	keyframes *motion.Keyframes
	layout    string

	boxes  []*box
	byID   map[string]*box
	anims  map[string]*motion.Animator
	scroll float64

	pointer pointer
	events  []pointerEvent
}

// NewScene builds the scene for a registry. keyframes may be nil.
func NewScene(r *motion.Registry, keyframes *motion.Keyframes, layout string) *Scene {
	s := &Scene{
		session:   motion.NewSession(r),
		keyframes: keyframes,
		layout:    layout,
		byID:      make(map[string]*box),
		anims:     make(map[string]*motion.Animator),
	}
	for _, it := range r.Items() {
		b := &box{item: it}
		s.boxes = append(s.boxes, b)
		s.byID[it.ID] = b
		if keyframes != nil {
			if a := keyframes.Animator(it.ID, layout); a != nil {
				s.anims[it.ID] = a
			}
		}
	}
	s.refresh()
	return s
}

// Session returns the scene's interaction session.
func (s *Scene) Session() *motion.Session { return s.session }

// Scroll returns the scroll position.
func (s *Scene) Scroll() float64 { return s.scroll }

// Load fires page load triggers.
func (s *Scene) Load() {
	s.session.Load()
	s.refresh()
}

// SetScroll moves the page to position and fires the scroll triggers it
// crosses.
func (s *Scene) SetScroll(position float64) {
	if position < 0 {
		position = 0
	}
	s.scroll = position
	s.session.Scroll(position)
	s.refresh()
}

// Pointer feeds the cursor position in screen coordinates and the primary
// button state.
func (s *Scene) Pointer(x, y float64, pressed bool) {
	target := s.hitTest(x, y+s.scroll)
	s.events = s.pointer.update(s.events[:0], target, pressed)
	for _, e := range s.events {
		s.session.Trigger(e.itemID, e.typ)
	}
	if len(s.events) > 0 {
		s.refresh()
	}
}

// Hover returns the item under the cursor.
func (s *Scene) Hover() string { return s.pointer.hover }

// Step applies one scripted event. Scroll steps move the page as well.
func (s *Scene) Step(st motion.Step) {
	if st.Action == motion.StepScroll {
		s.SetScroll(st.Position)
		return
	}
	s.session.Step(st)
	s.refresh()
}

// Update advances transitions by dt seconds.
func (s *Scene) Update(dt float32) {
	s.session.Advance(dt)
	s.refresh()
}

// hitTest returns the topmost item containing the page point (x, y). Leaf
// items win over the groups holding them.
func (s *Scene) hitTest(x, y float64) string {
	for pass := 0; pass < 2; pass++ {
		for i := len(s.boxes) - 1; i >= 0; i-- {
			b := s.boxes[i]
			if b.item.Type.HasChildren() != (pass == 1) {
				continue
			}
			if b.rect().Contains(x, y) {
				return b.item.ID
			}
		}
	}
	return ""
}

func (b *box) rect() motion.Rect {
	return motion.Rect{
		X:      b.shown[slotLeft],
		Y:      b.shown[slotTop],
		Width:  b.shown[slotWidth] * b.shown[slotScale],
		Height: b.shown[slotHeight] * b.shown[slotScale],
	}
}

// refresh recomputes every box from interaction state, keyframes and the
// item's static area, blending along running transitions.
func (s *Scene) refresh() {
	keys := append(boxKeys[:len(boxKeys):len(boxKeys)], fillKey)
	for _, b := range s.boxes {
		id := b.item.ID
		st := s.session.Controller(id).State(keys)
		target, targetFill := s.target(b.item, st)

		g := s.session.Group(id)
		if !b.started || g != b.group {
			b.from, b.fromFill = b.shown, b.shownFill
			if !b.started {
				b.from, b.fromFill = target, targetFill
			}
			b.group = g
			b.started = true
		}
		for i, key := range boxKeys {
			b.shown[i] = lerp(b.from[i], target[i], groupProgress(g, key))
		}
		b.shownFill = targetFill
		if t := groupProgress(g, fillKey); t < 1 {
			b.shownFill = b.fromFill.Mix(targetFill, t)
		}
	}
}

func groupProgress(g *motion.TransitionGroup, key string) float64 {
	if g == nil || g.Done {
		return 1
	}
	if p, ok := g.Progress(motion.CSSProperty(key)); ok {
		return p
	}
	return 1
}

// target resolves the values an item is heading to.
func (s *Scene) target(it *motion.Item, st motion.ItemState) ([slotCount]float64, motion.Color) {
	a := s.anims[it.ID]
	pos := s.scroll
	area := it.Area
	anim := func(fn func(float64) float64) func(float64) float64 {
		if a == nil {
			return nil
		}
		return fn
	}

	var v [slotCount]float64
	v[slotWidth] = motion.Compose(st, "width", anim(func(w float64) float64 {
		return a.Dimensions(motion.DimensionsValue{Width: w, Height: area.Height}, pos).Width
	}), area.Width)
	v[slotHeight] = motion.Compose(st, "height", anim(func(h float64) float64 {
		return a.Dimensions(motion.DimensionsValue{Width: area.Width, Height: h}, pos).Height
	}), area.Height)
	v[slotLeft] = motion.Compose(st, "left", anim(func(l float64) float64 {
		return a.Position(motion.PositionValue{Left: l, Top: area.Y}, pos).Left
	}), area.X)
	v[slotTop] = motion.Compose(st, "top", anim(func(t float64) float64 {
		return a.Position(motion.PositionValue{Left: area.X, Top: t}, pos).Top
	}), area.Y)
	v[slotOpacity] = motion.Compose(st, "opacity", anim(func(o float64) float64 {
		return a.Opacity(motion.OpacityValue{Opacity: o}, pos).Opacity
	}), 1)
	v[slotAngle] = motion.Compose(st, "angle", anim(func(d float64) float64 {
		return a.Rotation(motion.RotationValue{Angle: d}, pos).Angle
	}), 0)
	v[slotScale] = motion.Compose(st, "scale", anim(func(sc float64) float64 {
		return a.Scale(motion.ScaleValue{Scale: sc}, pos).Scale
	}), 1)

	fill := motion.Compose(st, fillKey, func(fallback string) string {
		if a == nil {
			return fallback
		}
		return primaryColor(a.Fill(nil, pos), fallback)
	}, "")
	c, err := motion.ParseColor(fill)
	if err != nil {
		c = defaultFill
	}
	return v, c
}

// primaryColor returns the color standing for a fill stack: the first solid
// layer, or the first stop of the first gradient.
func primaryColor(layers []motion.FillLayer, fallback string) string {
	for _, l := range layers {
		switch l.Type {
		case motion.FillSolid:
			return l.Value
		case motion.FillLinearGradient, motion.FillRadialGradient, motion.FillConicGradient:
			if len(l.Colors) > 0 {
				return l.Colors[0].Value
			}
		}
	}
	return fallback
}

func lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}
