package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllStreams(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("worker-1")
	ch2, cleanup2 := hub.Subscribe("worker-1")
	defer cleanup1()
	defer cleanup2()

	other, cleanupOther := hub.Subscribe("worker-2")
	defer cleanupOther()

	hub.Publish("worker-1", Event{RecipientID: "worker-1", Name: "notification", Data: "hola"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, "notification", event.Name)
			assert.Equal(t, "hola", event.Data)
		default:
			t.Fatal("expected a buffered event")
		}
	}

	select {
	case <-other:
		t.Fatal("event leaked to another recipient")
	default:
	}
}

func TestHubCleanupClosesStream(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("worker-1")
	require.Equal(t, 1, hub.StreamCount("worker-1"))

	cleanup()

	assert.Equal(t, 0, hub.StreamCount("worker-1"))
	_, open := <-ch
	assert.False(t, open)

	// Publishing after cleanup must not panic or deliver anywhere.
	hub.Publish("worker-1", Event{Name: "notification"})
}

func TestHubPublishSkipsFullStreams(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("worker-1")
	defer cleanup()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish("worker-1", Event{Name: "notification"})
	}

	assert.Equal(t, cap(ch), len(ch))
}

func TestHubPublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("worker-1")
	ch2, cleanup2 := hub.Subscribe("worker-2")
	defer cleanup1()
	defer cleanup2()

	hub.PublishToMany([]string{"worker-1", "worker-2"}, Event{Name: "notification"})

	event1 := <-ch1
	event2 := <-ch2
	assert.Equal(t, "worker-1", event1.RecipientID)
	assert.Equal(t, "worker-2", event2.RecipientID)
}
