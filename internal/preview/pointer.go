package preview

import "github.com/phanxgames/motion"

// pointerEvent is an item trigger produced by the pointer state machine.
type pointerEvent struct {
	itemID string
	typ    motion.TriggerType
}

// pointer tracks hover and press state for the mouse.
type pointer struct {
	hover   string // item under the cursor, "" for none
	down    bool
	pressed string // item under the cursor when the button went down
}

// update advances the state machine with the item under the cursor and the
// button state, appending the resulting triggers to buf. Hover-out fires
// before hover-in; a click needs press and release over the same item.
func (p *pointer) update(buf []pointerEvent, target string, pressed bool) []pointerEvent {
	if target != p.hover {
		if p.hover != "" {
			buf = append(buf, pointerEvent{p.hover, motion.TriggerHoverOut})
		}
		if target != "" {
			buf = append(buf, pointerEvent{target, motion.TriggerHoverIn})
		}
		p.hover = target
	}

	switch {
	case pressed && !p.down:
		p.down = true
		p.pressed = target
	case !pressed && p.down:
		if p.pressed != "" && p.pressed == target {
			buf = append(buf, pointerEvent{target, motion.TriggerClick})
		}
		p.down = false
		p.pressed = ""
	}
	return buf
}
