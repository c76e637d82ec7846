package events

import (
	"log/slog"
	"sync"
	"time"
)

// subscriberBufferSize bounds the per-subscriber queue. A dashboard
// that stops reading loses its oldest messages, never blocks the
// dispatcher.
const subscriberBufferSize = 256

// Subscriber is one SSE connection's view of the stream. Read from C
// until it is closed; the broadcaster closes it on Unsubscribe.
type Subscriber struct {
	id uint64
	C  chan StreamMessage

	mu      sync.Mutex
	queue   []StreamMessage
	dropped int

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Broadcaster fans stream messages out to the process-local SSE
// subscribers. Dispatch never blocks and never fails: slow subscribers
// drop their oldest buffered messages and receive a dropped-count
// marker so clients know to resynchronise over REST.
type Broadcaster struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*Subscriber
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uint64]*Subscriber)}
}

// Subscribe registers a new subscriber and starts its delivery pump.
func (b *Broadcaster) Subscribe() *Subscriber {
	sub := &Subscriber{
		C:    make(chan StreamMessage),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs[sub.id] = sub
	count := len(b.subs)
	b.mu.Unlock()

	go sub.pump()

	slog.Debug("SSE subscriber added", "subscriber_id", sub.id, "total", count)
	return sub
}

// Unsubscribe removes a subscriber; its channel closes once the pump
// exits.
func (b *Broadcaster) Unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	delete(b.subs, sub.id)
	count := len(b.subs)
	b.mu.Unlock()

	sub.close()
	slog.Debug("SSE subscriber removed", "subscriber_id", sub.id, "total", count)
}

// Dispatch enqueues a message for every current subscriber. Within one
// subscriber, messages from a single Dispatch caller are delivered in
// call order.
func (b *Broadcaster) Dispatch(msg StreamMessage) {
	b.mu.Lock()
	subs := make([]*Subscriber, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.enqueue(msg)
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// CloseAll unsubscribes everyone; used during shutdown.
func (b *Broadcaster) CloseAll() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[uint64]*Subscriber)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

func (s *Subscriber) enqueue(msg StreamMessage) {
	s.mu.Lock()
	if len(s.queue) >= subscriberBufferSize {
		s.queue = s.queue[1:]
		s.dropped++
	}
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// next pops the message to deliver: a dropped-count marker takes
// precedence over queued messages.
func (s *Subscriber) next() (StreamMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dropped > 0 {
		msg := StreamMessage{
			Type:      "dropped",
			Timestamp: time.Now().UTC(),
			Data:      map[string]interface{}{"count": s.dropped},
		}
		s.dropped = 0
		return msg, true
	}
	if len(s.queue) == 0 {
		return StreamMessage{}, false
	}
	msg := s.queue[0]
	s.queue = s.queue[1:]
	return msg, true
}

// pump moves messages from the bounded queue to the unbuffered channel.
// It is the only goroutine that closes C.
func (s *Subscriber) pump() {
	defer close(s.C)
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			msg, ok := s.next()
			if !ok {
				break
			}
			select {
			case s.C <- msg:
			case <-s.done:
				return
			}
		}
	}
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() { close(s.done) })
}
