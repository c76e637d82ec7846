package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, sub *Subscriber) StreamMessage {
	t.Helper()
	select {
	case msg, ok := <-sub.C:
		require.True(t, ok, "subscriber channel closed unexpectedly")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream message")
		return StreamMessage{}
	}
}

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	defer b.CloseAll()

	s1 := b.Subscribe()
	s2 := b.Subscribe()
	assert.Equal(t, 2, b.SubscriberCount())

	b.Dispatch(StreamMessage{Type: StreamCardRefresh})

	assert.Equal(t, StreamCardRefresh, recv(t, s1).Type)
	assert.Equal(t, StreamCardRefresh, recv(t, s2).Type)
}

func TestBroadcaster_OrderPreservedPerSubscriber(t *testing.T) {
	b := NewBroadcaster()
	defer b.CloseAll()

	sub := b.Subscribe()
	for i := 0; i < 10; i++ {
		b.Dispatch(StreamMessage{
			Type: StreamStateTransition,
			Data: map[string]interface{}{"seq": i},
		})
	}

	for i := 0; i < 10; i++ {
		msg := recv(t, sub)
		assert.Equal(t, i, msg.Data["seq"])
	}
}

func TestBroadcaster_SlowSubscriberDropsOldest(t *testing.T) {
	b := NewBroadcaster()
	defer b.CloseAll()

	sub := b.Subscribe()

	// Nobody reads: overflow the buffer well past its bound. The pump
	// may pull at most one message off the queue while we fill it, so
	// overfill generously.
	total := subscriberBufferSize + 50
	for i := 0; i < total; i++ {
		b.Dispatch(StreamMessage{
			Type: StreamActivityMetricUpdated,
			Data: map[string]interface{}{"seq": i},
		})
	}

	// The pump may have one in-flight message before the overflow, so
	// the dropped marker arrives first or second.
	sawMarker := false
	prev := -1
	for i := 0; i < subscriberBufferSize+2; i++ {
		msg := recv(t, sub)
		if msg.Type == "dropped" {
			sawMarker = true
			count, ok := msg.Data["count"].(int)
			require.True(t, ok)
			assert.Greater(t, count, 0)
			continue
		}
		seq := msg.Data["seq"].(int)
		assert.Greater(t, seq, prev, "messages out of dispatch order")
		prev = seq
	}
	assert.True(t, sawMarker, "expected a dropped-count marker")
}

func TestBroadcaster_DispatchNeverBlocks(t *testing.T) {
	b := NewBroadcaster()
	defer b.CloseAll()

	b.Subscribe() // never read

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBufferSize*3; i++ {
			b.Dispatch(StreamMessage{Type: StreamCardRefresh})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Dispatch blocked on a slow subscriber")
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	b.Unsubscribe(sub)

	select {
	case _, ok := <-sub.C:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after Unsubscribe")
	}
	assert.Equal(t, 0, b.SubscriberCount())

	// Dispatch after unsubscribe is a no-op, not a panic.
	b.Dispatch(StreamMessage{Type: StreamCardRefresh})
}

func TestBroadcaster_ConcurrentDispatch(t *testing.T) {
	b := NewBroadcaster()
	defer b.CloseAll()

	sub := b.Subscribe()

	const writers, perWriter = 4, 20
	for w := 0; w < writers; w++ {
		go func(w int) {
			for i := 0; i < perWriter; i++ {
				b.Dispatch(StreamMessage{
					Type: StreamPriorityUpdated,
					Data: map[string]interface{}{"id": fmt.Sprintf("%d-%d", w, i)},
				})
			}
		}(w)
	}

	seen := map[string]bool{}
	for len(seen) < writers*perWriter {
		msg := recv(t, sub)
		if msg.Type == "dropped" {
			t.Fatal("unexpected drop with an active reader and small volume")
		}
		seen[msg.Data["id"].(string)] = true
	}
}
