package event

// Handler receives events for a single kind.
type Handler func(Event)

// Dispatcher delivers events synchronously to per-kind subscriber
// lists. It belongs to one engine instance and is not safe for
// concurrent use; the engine is single-threaded by contract.
type Dispatcher struct {
	source string
	subs   [kindCount][]Handler
}

// NewDispatcher creates a dispatcher whose events carry the given
// source identifier.
func NewDispatcher(source string) *Dispatcher {
	return &Dispatcher{source: source}
}

// Subscribe registers a handler for one event kind. Handlers run in
// registration order. Nil handlers and unknown kinds are ignored.
func (d *Dispatcher) Subscribe(kind Kind, fn Handler) {
	if fn == nil || kind >= kindCount {
		return
	}
	d.subs[kind] = append(d.subs[kind], fn)
}

// Publish delivers an event of the given kind to its subscribers.
// A panicking handler is recovered so the publishing call completes;
// remaining handlers still run.
func (d *Dispatcher) Publish(kind Kind, payload any) {
	if kind >= kindCount {
		return
	}
	evt := New(kind, payload, d.source)
	for _, fn := range d.subs[kind] {
		d.deliver(fn, evt)
	}
}

func (d *Dispatcher) deliver(fn Handler, evt Event) {
	defer func() {
		_ = recover()
	}()
	fn(evt)
}

// SubscriberCount returns the number of handlers for a kind.
func (d *Dispatcher) SubscriberCount(kind Kind) int {
	if kind >= kindCount {
		return 0
	}
	return len(d.subs[kind])
}
