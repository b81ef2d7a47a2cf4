package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBroker_FanOutWithSequence(t *testing.T) {
	t.Parallel()
	b := NewBroker()
	defer func() { _ = b.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first, err := b.Listen(ctx)
	require.NoError(t, err)
	second, err := b.Listen(ctx)
	require.NoError(t, err)

	require.NoError(t, b.SendEvent(BoardChanged(ActionMove, "cand-1", "nuevos", "preseleccion")))
	require.NoError(t, b.SendEvent(BoardChanged(ActionDelete, "cand-2", "revision-cv")))

	for _, ch := range []<-chan Event{first, second} {
		ev := receive(t, ch)
		assert.Equal(t, EventBoardChanged, ev.Type)
		assert.Equal(t, ActionMove, ev.Action)
		assert.Equal(t, []string{"nuevos", "preseleccion"}, ev.ColumnIDs)
		assert.Equal(t, int64(1), ev.SequenceID)

		ev = receive(t, ch)
		assert.Equal(t, ActionDelete, ev.Action)
		assert.Equal(t, int64(2), ev.SequenceID)
	}
}

func TestBroker_ListenerRemovedOnCancel(t *testing.T) {
	t.Parallel()
	b := NewBroker()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := b.Listen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, b.ListenerCount())

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("listener channel was not closed")
	}
	assert.Equal(t, 0, b.ListenerCount())
}

func TestBroker_SlowListenerDoesNotBlock(t *testing.T) {
	t.Parallel()
	b := NewBroker()
	defer func() { _ = b.Close() }()

	_, err := b.Listen(context.Background())
	require.NoError(t, err)

	for i := 0; i < listenerBuffer*3; i++ {
		require.NoError(t, b.SendEvent(BoardChanged(ActionEdit, "cand-1")))
	}
}

func TestBroker_Close(t *testing.T) {
	t.Parallel()
	b := NewBroker()
	ch, err := b.Listen(context.Background())
	require.NoError(t, err)

	require.NoError(t, b.Close())
	_, ok := <-ch
	assert.False(t, ok)

	assert.ErrorIs(t, b.SendEvent(BoardChanged(ActionReset, "")), ErrClosed)
	_, err = b.Listen(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, b.Close(), "second close is a no-op")
}
