package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	defer cleanup()

	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Broadcast(Event{Event: "pending_leaves", Data: map[string]int64{"pending": 3}})

	event := <-ch
	assert.Equal(t, "pending_leaves", event.Event)
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	_, cleanup := hub.Subscribe()
	cleanup()

	assert.Zero(t, hub.SubscriberCount())

	// Double cleanup must not panic on a closed channel
	cleanup()
}

func TestHub_SlowConsumerDoesNotBlock(t *testing.T) {
	t.Parallel()
	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	defer cleanup()

	// Overflow the subscriber buffer; Broadcast must drop, not block
	for i := 0; i < 25; i++ {
		hub.Broadcast(Event{Event: "ping"})
	}

	require.Equal(t, 10, len(ch), "buffer holds the first events, the rest are dropped")
}
