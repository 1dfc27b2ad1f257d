package motion

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// ErrNoActiveState reports an interaction without a state other than its
// start state. It is a content authoring defect and aborts registry setup.
var ErrNoActiveState = errors.New("motion: interaction has no active state")

// ErrNoViewport reports an article with scroll triggers built without
// WithViewport or WithViewportWidth.
var ErrNoViewport = errors.New("motion: scroll triggers need a viewport width")

// Receiver is the registry's view of an item controller.
type Receiver interface {
	// ReceiveChange asks the item to re-render.
	ReceiveChange()
	// ReceiveAction delivers a state entry action such as play or pause.
	ReceiveAction(ActionType)
	// HandleTransitionStart lists the style keys about to transition.
	HandleTransitionStart(keys []string)
}

// StateProp is the resolved interaction override for one style key. Value is
// nil when the key only carries a transition.
type StateProp struct {
	Value      any
	Transition *Timing
}

// StateProps maps style keys to their resolved overrides.
type StateProps map[string]StateProp

// TriggerSet is a set of item trigger types.
type TriggerSet map[TriggerType]struct{}

// Has reports whether t is in the set.
func (s TriggerSet) Has(t TriggerType) bool {
	_, ok := s[t]
	return ok
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	viewport func() float64
	now      func() time.Time
	logger   *slog.Logger
}

// WithViewportWidth fixes the viewport width scroll trigger positions are
// scaled by.
func WithViewportWidth(w float64) RegistryOption {
	return func(o *registryOptions) {
		o.viewport = func() float64 { return w }
	}
}

// WithViewport supplies the viewport width on every scroll notification, for
// hosts whose window can be resized.
func WithViewport(fn func() float64) RegistryOption {
	return func(o *registryOptions) {
		o.viewport = fn
	}
}

// WithClock replaces time.Now as the source of stage timestamps.
func WithClock(now func() time.Time) RegistryOption {
	return func(o *registryOptions) {
		o.now = now
	}
}

// WithLogger sets a logger for this registry instead of the package logger.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// Registry owns an article's interactions, the current state of each, and
// the stage of every participating item. It is built once per article and
// handed to every item controller; it is not safe for concurrent use.
type Registry struct {
	items        []*Item
	itemsByID    map[string]*Item
	interactions []Interaction

	activeState  map[string]string   // interaction ID -> active state ID
	participants map[string][]string // active state ID -> item IDs
	current      map[string]string   // interaction ID -> current state ID

	stages     []stageEntry
	stageIndex map[stageKey]int

	receivers map[string]Receiver

	viewport func() float64
	now      func() time.Time
	log      *slog.Logger
}

// NewRegistry builds the registry for article. It fails with
// ErrNoActiveState when an interaction has no state besides its start state,
// and with ErrNoViewport when the article has scroll triggers but no
// viewport option was given.
func NewRegistry(article Article, opts ...RegistryOption) (*Registry, error) {
	o := registryOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.viewport == nil {
		if id, ok := firstScrollTrigger(article.Interactions); ok {
			return nil, fmt.Errorf("interaction %q: %w", id, ErrNoViewport)
		}
		o.viewport = func() float64 { return 0 }
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	r := &Registry{
		items:        flattenItems(article),
		itemsByID:    make(map[string]*Item),
		interactions: article.Interactions,
		activeState:  make(map[string]string, len(article.Interactions)),
		participants: make(map[string][]string, len(article.Interactions)),
		current:      make(map[string]string, len(article.Interactions)),
		stageIndex:   make(map[stageKey]int),
		receivers:    make(map[string]Receiver),
		viewport:     o.viewport,
		now:          o.now,
		log:          o.logger,
	}
	for _, it := range r.items {
		r.itemsByID[it.ID] = it
	}

	for _, in := range r.interactions {
		active, ok := in.activeStateID()
		if !ok {
			return nil, fmt.Errorf("interaction %q: %w", in.ID, ErrNoActiveState)
		}
		r.activeState[in.ID] = active
		r.current[in.ID] = in.StartStateID
		var ids []string
		for _, it := range r.items {
			if len(it.State[active]) != 0 {
				ids = append(ids, it.ID)
			}
		}
		r.participants[active] = ids
	}
	r.checkInteractions()

	ts := r.now()
	for _, it := range r.items {
		for _, in := range r.interactions {
			if _, ok := it.State[r.activeState[in.ID]]; !ok {
				continue
			}
			key := stageKey{itemID: it.ID, interactionID: in.ID}
			r.stageIndex[key] = len(r.stages)
			r.stages = append(r.stages, stageEntry{
				key:   key,
				stage: ActiveStage{StateID: in.StartStateID, IsStartState: true, Updated: ts},
			})
		}
	}
	return r, nil
}

// Register attaches the receiver for itemID, replacing any previous one.
func (r *Registry) Register(itemID string, rc Receiver) {
	r.receivers[itemID] = rc
}

// Unregister detaches the receiver for itemID.
func (r *Registry) Unregister(itemID string) {
	delete(r.receivers, itemID)
}

// NotifyLoad fires page load triggers: scroll triggers at position 0 whose
// From is the interaction's current state.
func (r *Registry) NotifyLoad() {
	ts := r.now()
	for i := range r.interactions {
		in := &r.interactions[i]
		cur := r.current[in.ID]
		for _, t := range in.Triggers {
			if t.IsLoadTrigger() && t.From == cur {
				r.transition(in, t.To, ts)
				break
			}
		}
	}
}

// NotifyScroll fires scroll triggers crossed at position. A trigger sits at
// its Position times the viewport width; scrolling past it moves From -> To,
// and for reversible triggers scrolling back above it moves To -> From.
// Callers should coalesce scroll events, e.g. one call per frame. Nothing
// fires while the viewport width is not positive.
func (r *Registry) NotifyScroll(position float64) {
	width := r.viewport()
	if width <= 0 {
		r.log.Debug("scroll ignored without viewport width", "position", position, "width", width)
		return
	}
	ts := r.now()
	for i := range r.interactions {
		in := &r.interactions[i]
		cur := r.current[in.ID]
		for _, t := range in.Triggers {
			if t.IsItemTrigger() || t.Position == 0 {
				continue
			}
			past := t.Position*width < position
			if !past && !t.IsReverse {
				continue
			}
			from, to := t.From, t.To
			if !past {
				from, to = t.To, t.From
			}
			if from != cur {
				continue
			}
			r.transition(in, to, ts)
			break
		}
	}
}

// NotifyItemTrigger fires item triggers of type typ on itemID.
func (r *Registry) NotifyItemTrigger(itemID string, typ TriggerType) {
	ts := r.now()
	for i := range r.interactions {
		in := &r.interactions[i]
		cur := r.current[in.ID]
		for _, t := range in.Triggers {
			if t.IsItemTrigger() && t.ItemID == itemID && t.Type == typ && t.From == cur {
				r.transition(in, t.To, ts)
				break
			}
		}
	}
}

// transition moves in to state to and starts the item transitions.
func (r *Registry) transition(in *Interaction, to string, ts time.Time) {
	active := r.activeState[in.ID]
	dir := DirectionOut
	if to == active {
		dir = DirectionIn
	}
	r.log.Debug("interaction transition", "interaction", in.ID, "from", r.current[in.ID], "to", to, "direction", dir)
	r.current[in.ID] = to

	if st, ok := in.state(to); ok {
		for _, a := range st.Actions {
			if rc := r.receivers[a.ItemID]; rc != nil {
				rc.ReceiveAction(a.Type)
			}
		}
	}

	for i := range r.stages {
		e := &r.stages[i]
		if e.key.interactionID != in.ID {
			continue
		}
		e.stage = TransitioningStage{
			From:      e.stage.resolvedState(),
			To:        to,
			Direction: dir,
			Updated:   ts,
		}
	}

	participants := r.participants[active]
	notify := make([]string, 0, len(participants)+len(in.Triggers))
	seen := make(map[string]struct{}, cap(notify))
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		notify = append(notify, id)
	}
	for _, id := range participants {
		add(id)
	}
	for _, t := range in.Triggers {
		if t.IsItemTrigger() {
			add(t.ItemID)
		}
	}
	for _, id := range notify {
		if rc := r.receivers[id]; rc != nil {
			rc.ReceiveChange()
		}
	}

	for _, id := range participants {
		rc := r.receivers[id]
		if rc == nil {
			continue
		}
		rc.HandleTransitionStart(r.itemsByID[id].State[active].keys())
	}
}

// NotifyTransitionEnd settles every running transition of itemID: a stage
// heading in becomes active on the target state, one heading out returns to
// the start state.
func (r *Registry) NotifyTransitionEnd(itemID string) {
	ts := r.now()
	for i := range r.stages {
		e := &r.stages[i]
		if e.key.itemID != itemID {
			continue
		}
		s, ok := e.stage.(TransitioningStage)
		if !ok {
			continue
		}
		e.stage = ActiveStage{
			StateID:      s.To,
			IsStartState: s.Direction == DirectionOut,
			Updated:      ts,
		}
		r.log.Debug("transition end", "item", itemID, "interaction", e.key.interactionID, "state", s.To)
	}
	if rc := r.receivers[itemID]; rc != nil {
		rc.ReceiveChange()
	}
}

// StatePropsForItem replays the item's stages, oldest first, into the style
// overrides it should render with.
//
// A settled non-start stage contributes its state's values. A transition
// contributes the timing of every key of the state it moves into (in) or out
// of (out) that declares one; only a transition in sets values, so a
// transition out keeps whatever value earlier stages produced.
func (r *Registry) StatePropsForItem(itemID string) StateProps {
	props := StateProps{}
	item := r.itemsByID[itemID]
	if item == nil {
		return props
	}
	for _, s := range r.itemStages(itemID) {
		switch s := s.(type) {
		case ActiveStage:
			if s.IsStartState {
				continue
			}
			for key, p := range item.State[s.StateID] {
				props[key] = StateProp{Value: p.Value}
			}
		case TransitioningStage:
			stateID := s.To
			if s.Direction == DirectionOut {
				stateID = s.From
			}
			for key, p := range item.State[stateID] {
				timing := p.direction(s.Direction)
				if timing == nil {
					continue
				}
				tm := *timing
				prop := StateProp{Transition: &tm}
				if s.Direction == DirectionIn {
					prop.Value = p.Value
				} else {
					prop.Value = props[key].Value
				}
				props[key] = prop
			}
		}
	}
	return props
}

// itemStages returns the item's stages ordered by update time. Equal
// timestamps keep seeding order.
func (r *Registry) itemStages(itemID string) []ItemStage {
	var out []ItemStage
	for _, e := range r.stages {
		if e.key.itemID == itemID {
			out = append(out, e.stage)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt().Before(out[j].UpdatedAt())
	})
	return out
}

// ItemAvailableTriggers returns the trigger types on itemID that would fire
// right now, i.e. whose From is the owning interaction's current state.
func (r *Registry) ItemAvailableTriggers(itemID string) TriggerSet {
	set := TriggerSet{}
	for _, in := range r.interactions {
		cur := r.current[in.ID]
		for _, t := range in.Triggers {
			if t.IsItemTrigger() && t.ItemID == itemID && t.From == cur {
				set[t.Type] = struct{}{}
			}
		}
	}
	return set
}

// CurrentState returns the current state of an interaction.
func (r *Registry) CurrentState(interactionID string) (string, bool) {
	s, ok := r.current[interactionID]
	return s, ok
}

// InteractionIDs returns the interaction IDs in declaration order.
func (r *Registry) InteractionIDs() []string {
	ids := make([]string, len(r.interactions))
	for i, in := range r.interactions {
		ids[i] = in.ID
	}
	return ids
}

// ActiveState returns the active (non-start) state of an interaction.
func (r *Registry) ActiveState(interactionID string) (string, bool) {
	s, ok := r.activeState[interactionID]
	return s, ok
}

// Stage returns the stage of itemID within an interaction.
func (r *Registry) Stage(itemID, interactionID string) (ItemStage, bool) {
	i, ok := r.stageIndex[stageKey{itemID: itemID, interactionID: interactionID}]
	if !ok {
		return nil, false
	}
	return r.stages[i].stage, true
}

// Participants returns the items that declare overrides for the active state
// of an interaction.
func (r *Registry) Participants(interactionID string) []string {
	return r.participants[r.activeState[interactionID]]
}

// Items returns every item of the article, children before their group.
func (r *Registry) Items() []*Item {
	return r.items
}

// Item returns the item with the given ID.
func (r *Registry) Item(itemID string) (*Item, bool) {
	it, ok := r.itemsByID[itemID]
	return it, ok
}

// firstScrollTrigger returns the first interaction holding a scroll trigger
// past page load.
func firstScrollTrigger(interactions []Interaction) (string, bool) {
	for _, in := range interactions {
		for _, t := range in.Triggers {
			if !t.IsItemTrigger() && !t.IsLoadTrigger() {
				return in.ID, true
			}
		}
	}
	return "", false
}

// keys returns the style keys of p in sorted order.
func (p StateParams) keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
