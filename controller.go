package motion

// Interactions is the registry surface an ItemController depends on.
// *Registry implements it.
type Interactions interface {
	Register(itemID string, rc Receiver)
	StatePropsForItem(itemID string) StateProps
	ItemAvailableTriggers(itemID string) TriggerSet
	NotifyItemTrigger(itemID string, typ TriggerType)
	NotifyTransitionEnd(itemID string)
}

// ItemState is what an item renders from its interactions: style overrides
// keyed by style key and the CSS transition shorthand covering them.
type ItemState struct {
	Styles     map[string]any
	Transition string
}

// ItemController is one item's view of the interaction registry. It filters
// state props for rendering, forwards pointer triggers, and collects
// per-property transition end signals until the whole transition is done.
type ItemController struct {
	itemID   string
	registry Interactions
	onChange func()
	onAction func(ActionType)

	pending    []string
	generation int
}

// NewItemController creates the controller for itemID and registers it.
// onChange is called whenever the item should re-render; it may be nil.
func NewItemController(itemID string, registry Interactions, onChange func()) *ItemController {
	c := &ItemController{
		itemID:   itemID,
		registry: registry,
		onChange: onChange,
	}
	registry.Register(itemID, c)
	return c
}

// ItemID returns the controlled item's ID.
func (c *ItemController) ItemID() string { return c.itemID }

// State returns the interaction overrides for keys. Keys without a value are
// left out of Styles but still contribute their transition.
func (c *ItemController) State(keys []string) ItemState {
	props := c.registry.StatePropsForItem(c.itemID)
	styles := make(map[string]any, len(keys))
	for _, key := range keys {
		p, ok := props[key]
		if !ok || p.Value == nil {
			continue
		}
		styles[key] = p.Value
	}
	return ItemState{
		Styles:     styles,
		Transition: TransitionString(props, keys),
	}
}

// HasTrigger reports whether a trigger of type typ on itemID can fire now.
func (c *ItemController) HasTrigger(itemID string, typ TriggerType) bool {
	return c.registry.ItemAvailableTriggers(itemID).Has(typ)
}

// SendTrigger fires a pointer trigger on the controlled item.
func (c *ItemController) SendTrigger(typ TriggerType) {
	c.registry.NotifyItemTrigger(c.itemID, typ)
}

// SetActionReceiver sets the callback for play and pause actions.
func (c *ItemController) SetActionReceiver(fn func(ActionType)) {
	c.onAction = fn
}

// ReceiveAction implements Receiver.
func (c *ItemController) ReceiveAction(typ ActionType) {
	if c.onAction != nil {
		c.onAction(typ)
	}
}

// ReceiveChange implements Receiver.
func (c *ItemController) ReceiveChange() {
	if c.onChange != nil {
		c.onChange()
	}
}

// HandleTransitionStart implements Receiver. keys replace any pending set;
// a transition that is still running is superseded.
func (c *ItemController) HandleTransitionStart(keys []string) {
	c.generation++
	c.pending = c.pending[:0]
	for _, k := range keys {
		if !c.isPending(k) {
			c.pending = append(c.pending, k)
		}
	}
}

// HandleTransitionEnd records that the CSS property cssProp finished
// transitioning. Every pending style key rendered by that property is done,
// since one descriptor covers them all; once none remain the registry is
// told the item settled.
func (c *ItemController) HandleTransitionEnd(cssProp string) {
	for _, key := range StyleKeys(cssProp) {
		if i := c.pendingIndex(key); i >= 0 {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
		}
	}
	if len(c.pending) != 0 {
		return
	}
	c.registry.NotifyTransitionEnd(c.itemID)
}

// Pending returns the style keys still waiting for an end signal.
func (c *ItemController) Pending() []string {
	out := make([]string, len(c.pending))
	copy(out, c.pending)
	return out
}

// Settle ends the running transition at once, as if every pending property
// had signaled completion. It does nothing when no transition is pending.
func (c *ItemController) Settle() {
	if len(c.pending) == 0 {
		return
	}
	c.pending = c.pending[:0]
	c.registry.NotifyTransitionEnd(c.itemID)
}

func (c *ItemController) isPending(key string) bool {
	return c.pendingIndex(key) >= 0
}

func (c *ItemController) pendingIndex(key string) int {
	for i, k := range c.pending {
		if k == key {
			return i
		}
	}
	return -1
}
