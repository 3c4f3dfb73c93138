package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readOrTimeout receives one event from the subscription or fails the test.
func readOrTimeout(t *testing.T, sub *Subscription) []byte {
	t.Helper()
	select {
	case data, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestDispatcher_BroadcastDeliversToAllSubscribers(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	sub1, err := d.Subscribe(ctx, "audit:a")
	require.NoError(t, err)
	defer sub1.Close()
	sub2, err := d.Subscribe(ctx, "audit:a")
	require.NoError(t, err)
	defer sub2.Close()

	d.Broadcast("audit:a", []byte(`{"type":"audit.status"}`))

	assert.JSONEq(t, `{"type":"audit.status"}`, string(readOrTimeout(t, sub1)))
	assert.JSONEq(t, `{"type":"audit.status"}`, string(readOrTimeout(t, sub2)))
}

func TestDispatcher_BroadcastIsolatesChannels(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	subA, err := d.Subscribe(ctx, "audit:a")
	require.NoError(t, err)
	defer subA.Close()
	subB, err := d.Subscribe(ctx, "audit:b")
	require.NoError(t, err)
	defer subB.Close()

	d.Broadcast("audit:b", []byte(`{"audit_id":"b"}`))

	assert.JSONEq(t, `{"audit_id":"b"}`, string(readOrTimeout(t, subB)))
	select {
	case data := <-subA.C:
		t.Fatalf("subscriber on audit:a received event for audit:b: %s", data)
	default:
	}
}

func TestDispatcher_BroadcastToEmptyChannelIsNoOp(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Broadcast("audit:nobody", []byte(`{}`))
	})
}

func TestDispatcher_CloseStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	sub, err := d.Subscribe(ctx, "audit:a")
	require.NoError(t, err)
	require.Equal(t, 1, d.SubscriberCount("audit:a"))

	sub.Close()
	assert.Equal(t, 0, d.SubscriberCount("audit:a"))

	// Delivery channel is closed after Close
	_, ok := <-sub.C
	assert.False(t, ok, "subscription channel should be closed")
}

func TestDispatcher_CloseTwiceIsSafe(t *testing.T) {
	d := NewDispatcher()
	sub, err := d.Subscribe(context.Background(), "audit:a")
	require.NoError(t, err)

	sub.Close()
	assert.NotPanics(t, func() { sub.Close() })
}

func TestDispatcher_SlowSubscriberDropsEvents(t *testing.T) {
	d := NewDispatcher()
	sub, err := d.Subscribe(context.Background(), "audit:a")
	require.NoError(t, err)
	defer sub.Close()

	// Fill the subscription buffer without draining, then publish one more.
	for i := 0; i < subscriptionBuffer; i++ {
		d.Broadcast("audit:a", []byte(`{"sequence":1}`))
	}
	d.Broadcast("audit:a", []byte(`{"sequence":2}`))

	// The buffered events are all there; the overflow event was dropped.
	received := 0
	for {
		select {
		case <-sub.C:
			received++
		default:
			assert.Equal(t, subscriptionBuffer, received)
			return
		}
	}
}

func TestDispatcher_SubscriberCount(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	assert.Equal(t, 0, d.SubscriberCount("audit:a"))

	sub1, err := d.Subscribe(ctx, "audit:a")
	require.NoError(t, err)
	sub2, err := d.Subscribe(ctx, "audit:a")
	require.NoError(t, err)
	assert.Equal(t, 2, d.SubscriberCount("audit:a"))

	sub1.Close()
	assert.Equal(t, 1, d.SubscriberCount("audit:a"))
	sub2.Close()
	assert.Equal(t, 0, d.SubscriberCount("audit:a"))
}
