package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// statsBus wraps another Bus and counts traffic per event type. It is a
// plain decorator: the inner bus is never modified, and callers hold the
// wrapper through the same Bus interface.
type statsBus struct {
	inner Bus

	published *prometheus.CounterVec
	delivered *prometheus.CounterVec
}

// WithStats layers prometheus counters over a bus. Metrics are registered
// against the given registerer under the gembattle_events namespace.
func WithStats(inner Bus, reg prometheus.Registerer) Bus {
	factory := promauto.With(reg)

	return &statsBus{
		inner: inner,
		published: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gembattle",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Events published, by event type.",
		}, []string{"type"}),
		delivered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gembattle",
			Subsystem: "events",
			Name:      "delivered_total",
			Help:      "Handler deliveries, by event type.",
		}, []string{"type"}),
	}
}

func (b *statsBus) Publish(event Event) {
	b.published.WithLabelValues(string(event.EventType())).Inc()
	b.inner.Publish(event)
}

func (b *statsBus) Subscribe(eventType Type, handler Handler) string {
	counted := func(event Event) {
		b.delivered.WithLabelValues(string(event.EventType())).Inc()
		handler(event)
	}
	return b.inner.Subscribe(eventType, counted)
}

func (b *statsBus) Unsubscribe(id string) {
	b.inner.Unsubscribe(id)
}
