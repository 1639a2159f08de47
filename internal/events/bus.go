package events

import (
	"fmt"
	"sync"
)

// Handler consumes one event. Handlers run synchronously on the
// publishing goroutine, in registration order.
type Handler func(Event)

// Bus is the publish/subscribe mechanism for engine events. Delivery is
// synchronous and at-least-once per publish: Publish returns only after
// every subscribed handler has run.
type Bus interface {
	// Publish delivers the event to all handlers subscribed to its type
	Publish(event Event)

	// Subscribe registers a handler for an event type and returns a
	// subscription ID for Unsubscribe
	Subscribe(eventType Type, handler Handler) string

	// Unsubscribe removes a subscription; unknown IDs are ignored
	Unsubscribe(id string)
}

type subscription struct {
	id      string
	handler Handler
}

type bus struct {
	mu     sync.Mutex
	subs   map[Type][]subscription
	nextID int
}

// NewBus creates a synchronous in-process bus
func NewBus() Bus {
	return &bus{
		subs: make(map[Type][]subscription),
	}
}

func (b *bus) Publish(event Event) {
	b.mu.Lock()
	regs := make([]subscription, len(b.subs[event.EventType()]))
	copy(regs, b.subs[event.EventType()])
	b.mu.Unlock()

	for _, s := range regs {
		s.handler(event)
	}
}

func (b *bus) Subscribe(eventType Type, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := fmt.Sprintf("sub_%d", b.nextID)
	b.subs[eventType] = append(b.subs[eventType], subscription{
		id:      id,
		handler: handler,
	})
	return id
}

func (b *bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, regs := range b.subs {
		for i, s := range regs {
			if s.id == id {
				b.subs[eventType] = append(regs[:i], regs[i+1:]...)
				return
			}
		}
	}
}
