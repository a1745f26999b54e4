package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	id string
}

func (e testEvent) EventType() string     { return "test.happened" }
func (e testEvent) EventID() string       { return e.id }
func (e testEvent) OccurredAt() time.Time { return time.Now() }
func (e testEvent) Payload() interface{}  { return e.id }

func newTestBus() *Bus {
	return NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishDispatchesToAllHandlers(t *testing.T) {
	bus := newTestBus()

	received := make(chan string, 2)
	for i := 0; i < 2; i++ {
		bus.Subscribe("test.happened", func(_ context.Context, ev Event) error {
			received <- ev.EventID()
			return nil
		})
	}

	bus.Publish(context.Background(), testEvent{id: "ev-1"})

	for i := 0; i < 2; i++ {
		select {
		case id := <-received:
			assert.Equal(t, "ev-1", id)
		case <-time.After(time.Second):
			t.Fatal("handler was not invoked")
		}
	}
}

func TestPublishIgnoresUnsubscribedTypes(t *testing.T) {
	bus := newTestBus()

	called := make(chan struct{}, 1)
	bus.Subscribe("other.type", func(context.Context, Event) error {
		called <- struct{}{}
		return nil
	})

	bus.Publish(context.Background(), testEvent{id: "ev-1"})

	select {
	case <-called:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishSyncReturnsFirstHandlerError(t *testing.T) {
	bus := newTestBus()
	boom := errors.New("boom")

	var secondCalled bool
	bus.Subscribe("test.happened", func(context.Context, Event) error {
		return boom
	})
	bus.Subscribe("test.happened", func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	err := bus.PublishSync(context.Background(), testEvent{id: "ev-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondCalled)
}

func TestPublishSyncNoHandlers(t *testing.T) {
	bus := newTestBus()
	assert.NoError(t, bus.PublishSync(context.Background(), testEvent{id: "ev-1"}))
}
