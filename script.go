package motion

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Script step actions.
const (
	StepLoad          = "load"
	StepScroll        = "scroll"
	StepClick         = "click"
	StepHoverIn       = "hover-in"
	StepHoverOut      = "hover-out"
	StepTransitionEnd = "transition-end"
	StepSettle        = "settle"
	StepAdvance       = "advance"
)

// Step is one scripted event.
type Step struct {
	Action   string  `yaml:"action"`
	Item     string  `yaml:"item,omitempty"`
	Position float64 `yaml:"position,omitempty"`
	Property string  `yaml:"property,omitempty"`
	DT       float64 `yaml:"dt,omitempty"`
}

// Script is an ordered list of events replayed against a Session.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// LoadScript parses a YAML script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	return &s, nil
}

// SessionAction records an action delivered to an item.
type SessionAction struct {
	ItemID string
	Type   ActionType
}

// Session drives a registry without a browser: it owns a controller for
// every item, plays transitions headlessly, and counts re-render requests.
type Session struct {
	registry *Registry
	order    []string
	ctrls    map[string]*ItemController
	keys     map[string][]string
	groups   map[string]*TransitionGroup
	renders  map[string]int
	actions  []SessionAction
}

// NewSession creates and registers a controller for every item of r.
func NewSession(r *Registry) *Session {
	s := &Session{
		registry: r,
		ctrls:    make(map[string]*ItemController),
		keys:     make(map[string][]string),
		groups:   make(map[string]*TransitionGroup),
		renders:  make(map[string]int),
	}
	for _, it := range r.Items() {
		id := it.ID
		s.order = append(s.order, id)
		s.keys[id] = itemStyleKeys(it)
		c := NewItemController(id, r, func() { s.renders[id]++ })
		c.SetActionReceiver(func(t ActionType) {
			s.actions = append(s.actions, SessionAction{ItemID: id, Type: t})
		})
		s.ctrls[id] = c
	}
	return s
}

// itemStyleKeys returns every style key the item declares in any state.
func itemStyleKeys(it *Item) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, params := range it.State {
		for k := range params {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Registry returns the session's registry.
func (s *Session) Registry() *Registry { return s.registry }

// Controller returns the controller of itemID, or nil.
func (s *Session) Controller(itemID string) *ItemController { return s.ctrls[itemID] }

// Keys returns the style keys itemID declares in any state.
func (s *Session) Keys(itemID string) []string { return s.keys[itemID] }

// Group returns the latest transition group started for itemID, or nil.
func (s *Session) Group(itemID string) *TransitionGroup { return s.groups[itemID] }

// Renders returns how many re-renders itemID was asked for.
func (s *Session) Renders(itemID string) int { return s.renders[itemID] }

// Actions returns the actions delivered so far, in order.
func (s *Session) Actions() []SessionAction { return s.actions }

// Load fires page load triggers.
func (s *Session) Load() {
	s.registry.NotifyLoad()
	s.startGroups()
}

// Scroll fires scroll triggers at position.
func (s *Session) Scroll(position float64) {
	s.registry.NotifyScroll(position)
	s.startGroups()
}

// Trigger fires a pointer trigger on itemID.
func (s *Session) Trigger(itemID string, typ TriggerType) {
	c := s.ctrls[itemID]
	if c == nil {
		return
	}
	c.SendTrigger(typ)
	s.startGroups()
}

// TransitionEnd delivers an end signal for cssProp on itemID.
func (s *Session) TransitionEnd(itemID, cssProp string) {
	if c := s.ctrls[itemID]; c != nil {
		c.HandleTransitionEnd(cssProp)
	}
}

// Advance steps every running transition group by dt seconds.
func (s *Session) Advance(dt float32) {
	for _, id := range s.order {
		if g := s.groups[id]; g != nil {
			g.Update(dt)
		}
	}
}

// Settle completes every pending transition at once.
func (s *Session) Settle() {
	for _, id := range s.order {
		if g := s.groups[id]; g != nil {
			g.Done = true
		}
		s.ctrls[id].Settle()
	}
}

// startGroups starts playback for items whose transition has no group yet.
func (s *Session) startGroups() {
	for _, id := range s.order {
		c := s.ctrls[id]
		if len(c.pending) == 0 {
			continue
		}
		if g := s.groups[id]; g != nil && g.generation == c.generation {
			continue
		}
		s.groups[id] = c.Play(s.keys[id])
	}
}

// Step applies one scripted event. It reports false when the step was
// skipped because its action or item is unknown.
func (s *Session) Step(st Step) bool {
	needsItem := st.Action == StepClick || st.Action == StepHoverIn ||
		st.Action == StepHoverOut || st.Action == StepTransitionEnd
	if needsItem && s.ctrls[st.Item] == nil {
		Logger().Warn("script: unknown item", "action", st.Action, "item", st.Item)
		return false
	}
	switch st.Action {
	case StepLoad:
		s.Load()
	case StepScroll:
		s.Scroll(st.Position)
	case StepClick:
		s.Trigger(st.Item, TriggerClick)
	case StepHoverIn:
		s.Trigger(st.Item, TriggerHoverIn)
	case StepHoverOut:
		s.Trigger(st.Item, TriggerHoverOut)
	case StepTransitionEnd:
		s.TransitionEnd(st.Item, st.Property)
	case StepSettle:
		s.Settle()
	case StepAdvance:
		s.Advance(float32(st.DT))
	default:
		Logger().Warn("script: unknown action", "action", st.Action)
		return false
	}
	return true
}

// Run applies every step of script in order and returns how many were
// applied.
func (s *Session) Run(script *Script) int {
	n := 0
	for _, st := range script.Steps {
		if s.Step(st) {
			n++
		}
	}
	return n
}
