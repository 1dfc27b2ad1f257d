package preview

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// overlay renders the debug text: frame rate, scroll, hover target and the
// current state of every interaction.
func (g *Game) overlay() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "scroll: %.0f  hover: %s\n", g.scene.Scroll(), g.scene.Hover())
	b.WriteString(g.scene.describe())
	return b.String()
}

// describe lists interaction states and running transitions.
func (s *Scene) describe() string {
	var b strings.Builder
	r := s.session.Registry()
	for _, id := range r.InteractionIDs() {
		cur, _ := r.CurrentState(id)
		fmt.Fprintf(&b, "%s: %s\n", id, cur)
	}
	for _, bx := range s.boxes {
		if p := s.session.Controller(bx.item.ID).Pending(); len(p) > 0 {
			fmt.Fprintf(&b, "  %s pending %s\n", bx.item.ID, strings.Join(p, ","))
		}
	}
	return b.String()
}
