package motion

import "time"

// StuckTransition is a stage that has been transitioning for longer than
// expected, typically because its end signal was lost.
type StuckTransition struct {
	ItemID        string
	InteractionID string
	Stage         TransitioningStage
	Age           time.Duration
}

// StuckTransitions reports every transitioning stage older than age and
// logs a warning for each. It does not change any stage; recovery is up to
// the caller, e.g. ItemController.Settle.
func (r *Registry) StuckTransitions(age time.Duration) []StuckTransition {
	now := r.now()
	var out []StuckTransition
	for _, e := range r.stages {
		s, ok := e.stage.(TransitioningStage)
		if !ok {
			continue
		}
		d := now.Sub(s.Updated)
		if d <= age {
			continue
		}
		out = append(out, StuckTransition{
			ItemID:        e.key.itemID,
			InteractionID: e.key.interactionID,
			Stage:         s,
			Age:           d,
		})
		r.log.Warn("transition stuck", "item", e.key.itemID, "interaction", e.key.interactionID,
			"from", s.From, "to", s.To, "age", d)
	}
	return out
}

// checkInteractions warns about triggers that can never fire: edges naming
// states the interaction does not declare, and item triggers on items that
// do not exist.
func (r *Registry) checkInteractions() {
	for _, in := range r.interactions {
		for i, t := range in.Triggers {
			if _, ok := in.state(t.From); !ok {
				r.log.Warn("trigger from unknown state", "interaction", in.ID, "trigger", i, "state", t.From)
			}
			if _, ok := in.state(t.To); !ok {
				r.log.Warn("trigger to unknown state", "interaction", in.ID, "trigger", i, "state", t.To)
			}
			if t.IsItemTrigger() {
				if _, ok := r.itemsByID[t.ItemID]; !ok {
					r.log.Warn("trigger on unknown item", "interaction", in.ID, "trigger", i, "item", t.ItemID)
				}
			}
		}
	}
}
