package preview

import (
	"testing"

	"github.com/phanxgames/motion"
)

func TestPointerHoverEnterLeave(t *testing.T) {
	var p pointer
	evs := p.update(nil, "a", false)
	if len(evs) != 1 || evs[0] != (pointerEvent{"a", motion.TriggerHoverIn}) {
		t.Fatalf("enter = %v", evs)
	}
	evs = p.update(nil, "a", false)
	if len(evs) != 0 {
		t.Fatalf("steady hover fired %v", evs)
	}
	evs = p.update(nil, "b", false)
	want := []pointerEvent{{"a", motion.TriggerHoverOut}, {"b", motion.TriggerHoverIn}}
	if len(evs) != 2 || evs[0] != want[0] || evs[1] != want[1] {
		t.Fatalf("move = %v, want %v", evs, want)
	}
	evs = p.update(nil, "", false)
	if len(evs) != 1 || evs[0] != (pointerEvent{"b", motion.TriggerHoverOut}) {
		t.Fatalf("leave = %v", evs)
	}
}

func TestPointerClickSameItem(t *testing.T) {
	var p pointer
	p.update(nil, "a", false)
	if evs := p.update(nil, "a", true); len(evs) != 0 {
		t.Fatalf("press fired %v", evs)
	}
	evs := p.update(nil, "a", false)
	if len(evs) != 1 || evs[0] != (pointerEvent{"a", motion.TriggerClick}) {
		t.Fatalf("release = %v, want click", evs)
	}
}

func TestPointerNoClickWhenReleasedElsewhere(t *testing.T) {
	var p pointer
	p.update(nil, "a", true)
	evs := p.update(nil, "b", false)
	for _, e := range evs {
		if e.typ == motion.TriggerClick {
			t.Fatalf("unexpected click %v", e)
		}
	}
}
