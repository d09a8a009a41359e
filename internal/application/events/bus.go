package events

import "sync"

// Topics published by the CRUD controllers after successful mutations.
// Interested views subscribe instead of one entity's save reaching into
// another entity's render path directly.
const (
	TopicStudentsChanged = "students_changed"
	TopicCoachesChanged  = "coaches_changed"
	TopicClassesChanged  = "classes_changed"
)

// Bus is a minimal in-process topic bus. Handlers run synchronously on the
// publishing goroutine, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]func()
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]func())}
}

// Subscribe registers handler for topic. There is no unsubscribe;
// subscriptions live for the process lifetime.
func (b *Bus) Subscribe(topic string, handler func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish invokes every handler subscribed to topic.
func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()
	for _, h := range handlers {
		h()
	}
}
