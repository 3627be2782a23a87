package event

import (
	"fmt"
	"log"
	"slices"
)

// Handler receives one published event.
type Handler func(e Event)

// Subscription identifies one registered handler. It is the handle passed
// back to Unsubscribe.
type Subscription struct {
	kind Kind
	id   uint64
}

// Kind returns the event kind the subscription listens to.
func (s Subscription) Kind() Kind { return s.kind }

// Valid reports whether s came from Subscribe.
func (s Subscription) Valid() bool { return s.id != 0 }

// HandlerFault wraps a panic recovered from a handler.
type HandlerFault struct {
	Kind  Kind
	Value any
}

func (f *HandlerFault) Error() string {
	return fmt.Sprintf("event: %s handler panicked: %v", f.Kind, f.Value)
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous typed publish/subscribe router. Delivery happens
// inside Publish, in subscription order. A Bus is not safe for concurrent
// use.
type Bus struct {
	subscribers map[Kind][]subscriber
	nextID      uint64

	// OnFault receives handler panics. Defaults to log.Printf.
	OnFault func(err error)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[Kind][]subscriber)}
}

// Subscribe registers h for events of kind k.
func (b *Bus) Subscribe(k Kind, h Handler) Subscription {
	if b == nil || h == nil {
		return Subscription{}
	}
	if b.subscribers == nil {
		b.subscribers = make(map[Kind][]subscriber)
	}
	b.nextID++
	b.subscribers[k] = append(b.subscribers[k], subscriber{id: b.nextID, handler: h})
	return Subscription{kind: k, id: b.nextID}
}

// Unsubscribe removes the handler behind s. It returns false if s was not
// registered.
func (b *Bus) Unsubscribe(s Subscription) bool {
	if b == nil || !s.Valid() {
		return false
	}
	subs := b.subscribers[s.kind]
	for i, sub := range subs {
		if sub.id != s.id {
			continue
		}
		next := slices.Delete(subs, i, i+1)
		if len(next) == 0 {
			delete(b.subscribers, s.kind)
		} else {
			b.subscribers[s.kind] = next
		}
		return true
	}
	return false
}

// Publish delivers e to every handler subscribed to e.Kind() at the moment
// of the call.
func (b *Bus) Publish(e Event) {
	if b == nil || e == nil {
		return
	}
	k := e.Kind()
	subs := b.subscribers[k]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		b.deliver(k, sub.handler, e)
	}
}

// Len returns the number of handlers subscribed to k.
func (b *Bus) Len(k Kind) int {
	if b == nil {
		return 0
	}
	return len(b.subscribers[k])
}

func (b *Bus) deliver(k Kind, h Handler, e Event) {
	defer func() {
		if v := recover(); v != nil {
			b.fault(&HandlerFault{Kind: k, Value: v})
		}
	}()
	h(e)
}

func (b *Bus) fault(err error) {
	if b.OnFault != nil {
		b.OnFault(err)
		return
	}
	log.Printf("%v", err)
}

// On subscribes a handler typed to one event variant.
func On[T Event](b *Bus, fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	var zero T
	return b.Subscribe(zero.Kind(), func(e Event) {
		if typed, ok := e.(T); ok {
			fn(typed)
		}
	})
}
