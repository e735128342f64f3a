package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	contractsv1 "parcelhub/contracts/gen/events/v1"
)

// Handler consumes one envelope delivered on a subscribed topic.
type Handler func(context.Context, contractsv1.Envelope) error

// Bus is the event bus used by the outbox relay and consumers.
// Delivery is in-process publish/subscribe; the broker list is accepted so
// the constructor signature stays stable once an external broker is wired.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscription
	brokers     []string
	logger      *slog.Logger

	bufferSize   int
	maxAttempts  int
	retryBackoff time.Duration
}

const (
	defaultBufferSize   = 128
	defaultMaxAttempts  = 5
	defaultRetryBackoff = 200 * time.Millisecond
)

type subscription struct {
	group string
	ch    chan contractsv1.Envelope
}

func NewBus(brokers []string, logger *slog.Logger) (*Bus, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers:  make(map[string][]subscription),
		brokers:      append([]string(nil), brokers...),
		logger:       logger,
		bufferSize:   defaultBufferSize,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}, nil
}

// Publish fans the envelope out to every subscriber of topic. A subscriber
// whose buffer is full makes Publish fail so the outbox row stays pending and
// is retried on the next relay cycle.
func (b *Bus) Publish(ctx context.Context, topic string, event contractsv1.Envelope) error {
	b.mu.RLock()
	subs := append([]subscription(nil), b.subscribers[topic]...)
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub.ch <- event:
		default:
			b.logger.Warn("subscriber buffer full",
				"event", "bus_publish_backpressure",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"consumer_group", sub.group,
				"event_id", event.EventID,
			)
			return ErrSubscriberBusy
		}
	}

	b.logger.Info("event published",
		"event", "bus_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"topic", topic,
		"event_id", event.EventID,
		"event_type", event.EventType,
		"subscribers", len(subs),
	)
	return nil
}

// Subscribe registers handler on topic until ctx is cancelled. A handler
// error is redelivered to the same handler with doubling backoff, up to
// maxAttempts deliveries; after that the event is dropped and logged.
func (b *Bus) Subscribe(
	ctx context.Context,
	topic string,
	consumerGroup string,
	handler func(context.Context, contractsv1.Envelope) error,
) error {
	sub := subscription{
		group: consumerGroup,
		ch:    make(chan contractsv1.Envelope, b.bufferSize),
	}

	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], sub)
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				b.removeSubscriber(topic, sub.ch)
				return
			case event := <-sub.ch:
				b.deliver(ctx, topic, consumerGroup, event, handler)
			}
		}
	}()
	return nil
}

func (b *Bus) deliver(
	ctx context.Context,
	topic string,
	consumerGroup string,
	event contractsv1.Envelope,
	handler func(context.Context, contractsv1.Envelope) error,
) {
	backoff := b.retryBackoff
	for attempt := 1; ; attempt++ {
		err := handler(ctx, event)
		if err == nil {
			return
		}
		final := attempt >= b.maxAttempts
		b.logger.Error("consumer handler failed",
			"event", "bus_consume_failed",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"topic", topic,
			"consumer_group", consumerGroup,
			"event_id", event.EventID,
			"event_type", event.EventType,
			"attempt", attempt,
			"dropped", final,
			"error", err.Error(),
		)
		if final {
			return
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		backoff *= 2
	}
}

func (b *Bus) removeSubscriber(topic string, target chan contractsv1.Envelope) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := b.subscribers[topic]
	if len(items) == 0 {
		return
	}
	filtered := make([]subscription, 0, len(items))
	for _, item := range items {
		if item.ch != target {
			filtered = append(filtered, item)
		}
	}
	b.subscribers[topic] = filtered
}
