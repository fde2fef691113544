package dom

// Event is a document event dispatched to a single node.
type Event struct {
	Type   string // "click", "submit", ...
	Target *Node  // Node the event was dispatched to

	defaultPrevented bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault cancels the default action that follows the event,
// such as submitting the enclosing form. It is final for the dispatch.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener handles an event.
type Listener func(*Event)

// ListenerID identifies a registered listener so it can be removed.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// EventHandler pairs an event type with a listener. It can be passed to
// element factories to register the listener at construction time.
type EventHandler struct {
	Event    string
	Listener Listener
}

// OnClick registers a click listener at construction time.
func OnClick(fn Listener) EventHandler { return EventHandler{Event: "click", Listener: fn} }

// OnSubmit registers a submit listener at construction time.
func OnSubmit(fn Listener) EventHandler { return EventHandler{Event: "submit", Listener: fn} }

// AddEventListener registers fn for events of the given type.
func (n *Node) AddEventListener(typ string, fn Listener) ListenerID {
	if fn == nil {
		return 0
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	n.nextListener++
	id := n.nextListener
	n.listeners[typ] = append(n.listeners[typ], listenerEntry{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters the listener with the given ID.
// It returns false if no such listener exists.
func (n *Node) RemoveEventListener(typ string, id ListenerID) bool {
	entries := n.listeners[typ]
	for i, e := range entries {
		if e.id == id {
			n.listeners[typ] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for typ.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[typ])
}

// Dispatch runs every listener registered for ev.Type on n, in
// registration order. Target is set to n.
func (n *Node) Dispatch(ev *Event) {
	ev.Target = n
	// Copy so listeners may add or remove listeners during dispatch.
	entries := append([]listenerEntry(nil), n.listeners[ev.Type]...)
	for _, e := range entries {
		e.fn(ev)
	}
}

// Click dispatches a click event to n and returns it.
func (n *Node) Click() *Event {
	ev := NewEvent("click")
	n.Dispatch(ev)
	return ev
}
