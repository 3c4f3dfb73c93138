package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	dispatcher := NewDispatcher()
	listener := NewNotifyListener("host=localhost dbname=audits", dispatcher)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=audits", listener.connString)
	assert.NotNil(t, listener.ops)
	assert.Same(t, dispatcher, listener.dispatcher)
	assert.False(t, listener.running.Load())
}

// Before Start there is no session goroutine, so subscription requests have
// nowhere to go.
func TestNotifyListener_BeforeStart(t *testing.T) {
	listener := NewNotifyListener("host=localhost dbname=audits", NewDispatcher())

	t.Run("subscribe is rejected", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "audit.events")
		assert.ErrorContains(t, err, "not established")
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		assert.NoError(t, listener.Unsubscribe(t.Context(), "audit.events"))
	})

	t.Run("stop returns immediately", func(t *testing.T) {
		listener.Stop(t.Context())
	})
}

// Ops that would not change the active set must succeed without touching the
// connection at all; a nil conn proves they never reach Exec.
func TestApplyOp_NoChangeSkipsConnection(t *testing.T) {
	active := map[string]bool{"audit.events": true}

	t.Run("listen on an active channel", func(t *testing.T) {
		op := subOp{channel: "audit.events", listen: true}
		assert.NoError(t, applyOp(t.Context(), nil, active, op))
		assert.True(t, active["audit.events"])
	})

	t.Run("unlisten on an inactive channel", func(t *testing.T) {
		op := subOp{channel: "never.subscribed", listen: false}
		assert.NoError(t, applyOp(t.Context(), nil, active, op))
		assert.NotContains(t, active, "never.subscribed")
	})
}
