package event

// Handler processes specific event types
// Presentation collaborators implement this interface to receive notifications
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit, before the emitting call returns
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The bus uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Emitter is the publishing side of the Bus, accepted by components that only notify
type Emitter interface {
	Emit(et EventType, payload any)
}

// Bus dispatches events to registered handlers
//
// Architecture:
//   - Synchronous delivery: Emit returns after every handler ran
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - No queue, no replay: an event emitted with no handlers is dropped
//
// Not safe for concurrent use; the frame loop owns it
type Bus struct {
	handlers map[EventType][]Handler
	frame    int64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
// A handler can register for multiple event types
func (b *Bus) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		b.handlers[t] = append(b.handlers[t], handler)
	}
}

// Subscribe registers fn for the given types
func (b *Bus) Subscribe(fn func(GameEvent), types ...EventType) {
	b.Register(HandlerFunc{Types: types, Fn: fn})
}

// SetFrame stamps subsequent events with the frame number
func (b *Bus) SetFrame(frame int64) {
	b.frame = frame
}

// Emit delivers an event to every handler registered for its type
func (b *Bus) Emit(et EventType, payload any) {
	ev := GameEvent{Type: et, Payload: payload, Frame: b.frame}
	for _, h := range b.handlers[et] {
		h.HandleEvent(ev)
	}
}

// Recorder is a Handler that stores every event it receives
// Shared by the test suites of every package that emits
type Recorder struct {
	Types  []EventType
	Events []GameEvent
}

func (r *Recorder) HandleEvent(ev GameEvent) { r.Events = append(r.Events, ev) }

func (r *Recorder) EventTypes() []EventType { return r.Types }

// Count returns how many events of type et were recorded
func (r *Recorder) Count(et EventType) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// Last returns the most recent event of type et
func (r *Recorder) Last(et EventType) (GameEvent, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == et {
			return r.Events[i], true
		}
	}
	return GameEvent{}, false
}

// Reset discards recorded events
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// AllTypes lists every emitted event type, for recorders that watch everything
func AllTypes() []EventType {
	types := make([]EventType, 0, int(eventTypeCount)-1)
	for t := EventJumpPressed; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}
