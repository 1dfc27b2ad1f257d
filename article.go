package motion

// Article is the static input of the interaction engine: sections of item
// trees plus the interactions wiring them together. It is immutable once a
// Registry has been built from it.
type Article struct {
	ID           string        `yaml:"id"`
	Sections     []Section     `yaml:"sections"`
	Interactions []Interaction `yaml:"interactions"`
}

// Section is a vertical slice of an article.
type Section struct {
	ID    string `yaml:"id"`
	Items []Item `yaml:"items"`
}

// Item is one positioned element. Group and compound items nest children in
// Items. State maps a state ID to the style keys the item overrides while
// that state is active.
type Item struct {
	ID    string                 `yaml:"id"`
	Type  ItemType               `yaml:"type"`
	Items []Item                 `yaml:"items,omitempty"`
	State map[string]StateParams `yaml:"state,omitempty"`
	Area  Rect                   `yaml:"area,omitempty"`
}

// StateParams maps a logical style key (width, angle, fill, ...) to its
// override within one state.
type StateParams map[string]StateParam

// StateParam is the value a style key takes in a state, and the transition
// timings used when entering (In) and leaving (Out) that state.
type StateParam struct {
	Value any     `yaml:"value"`
	In    *Timing `yaml:"in,omitempty"`
	Out   *Timing `yaml:"out,omitempty"`
}

// Timing describes one CSS transition. Durations and delays are
// milliseconds; Timing is a CSS timing function name.
type Timing struct {
	Timing   string  `yaml:"timing"`
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
}

// direction returns the timing for d, or nil when none is declared.
func (p StateParam) direction(d Direction) *Timing {
	if d == DirectionIn {
		return p.In
	}
	return p.Out
}

// Interaction is a two-state machine: the start state and exactly one other,
// active, state. Triggers are directed edges between them.
type Interaction struct {
	ID           string             `yaml:"id"`
	Triggers     []Trigger          `yaml:"triggers"`
	States       []InteractionState `yaml:"states"`
	StartStateID string             `yaml:"startStateId"`
}

// activeStateID returns the first state that is not the start state.
func (in Interaction) activeStateID() (string, bool) {
	for _, s := range in.States {
		if s.ID != in.StartStateID {
			return s.ID, true
		}
	}
	return "", false
}

func (in Interaction) state(id string) (InteractionState, bool) {
	for _, s := range in.States {
		if s.ID == id {
			return s, true
		}
	}
	return InteractionState{}, false
}

// InteractionState is one state of an interaction and the actions fired
// when it is entered.
type InteractionState struct {
	ID      string   `yaml:"id"`
	Actions []Action `yaml:"actions,omitempty"`
}

// Action asks the item ItemID to perform a side effect such as play or pause.
type Action struct {
	Type   ActionType `yaml:"type"`
	ItemID string     `yaml:"itemId"`
}

// Trigger is an edge From -> To guarded by an event. A trigger with an
// ItemID is an item trigger fired by pointer events of Type on that item.
// Otherwise it is a scroll trigger crossed at Position, a fraction of the
// viewport width; position 0 marks a page load trigger. Scroll triggers
// with IsReverse also fire To -> From when scrolled back above Position.
type Trigger struct {
	ItemID    string      `yaml:"itemId,omitempty"`
	Type      TriggerType `yaml:"type,omitempty"`
	Position  float64     `yaml:"position,omitempty"`
	IsReverse bool        `yaml:"isReverse,omitempty"`
	From      string      `yaml:"from"`
	To        string      `yaml:"to"`
}

// IsItemTrigger reports whether t reacts to pointer events on an item.
func (t Trigger) IsItemTrigger() bool {
	return t.ItemID != ""
}

// IsLoadTrigger reports whether t fires on page load.
func (t Trigger) IsLoadTrigger() bool {
	return !t.IsItemTrigger() && t.Position == 0
}

// flattenItems returns every item of the article, children before the group
// that holds them.
func flattenItems(a Article) []*Item {
	var out []*Item
	for i := range a.Sections {
		out = appendNested(out, a.Sections[i].Items)
	}
	return out
}

func appendNested(out []*Item, items []Item) []*Item {
	for i := range items {
		it := &items[i]
		if it.Type.HasChildren() {
			out = appendNested(out, it.Items)
		}
		out = append(out, it)
	}
	return out
}
