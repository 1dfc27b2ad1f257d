package motion

import "time"

// ItemStage is an item's lifecycle record within one interaction. It is
// either an ActiveStage or a TransitioningStage; callers switch on the
// concrete type.
type ItemStage interface {
	// UpdatedAt is when the stage was last replaced.
	UpdatedAt() time.Time
	// resolvedState is the state the stage stands in or is heading to.
	resolvedState() string
}

// ActiveStage is a settled item. IsStartState marks the baseline, which
// contributes no style overrides.
type ActiveStage struct {
	StateID      string
	IsStartState bool
	Updated      time.Time
}

// TransitioningStage is an item whose CSS transition From -> To is running.
type TransitioningStage struct {
	From      string
	To        string
	Direction Direction
	Updated   time.Time
}

func (s ActiveStage) UpdatedAt() time.Time        { return s.Updated }
func (s ActiveStage) resolvedState() string        { return s.StateID }
func (s TransitioningStage) UpdatedAt() time.Time { return s.Updated }
func (s TransitioningStage) resolvedState() string { return s.To }

// stageKey identifies the stage of one item within one interaction.
type stageKey struct {
	itemID        string
	interactionID string
}

// stageEntry is one slot of the registry's stage table. Slots keep their
// seeding order, which breaks ties between equal timestamps.
type stageEntry struct {
	key   stageKey
	stage ItemStage
}
