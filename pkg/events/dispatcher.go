package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// subscriptionBuffer is the per-subscription channel depth. A subscriber that
// falls further behind than this starts losing events (dropped with a warning;
// persisted events remain recoverable via catchup).
const subscriptionBuffer = 64

// Dispatcher fans NOTIFY payloads out to in-process subscribers. The serving
// API embeds one per process; integration tests use it to observe pipeline
// egress end to end.
type Dispatcher struct {
	// Channel subscriptions: channel → subscription id → delivery chan
	channels map[string]map[int]chan []byte
	nextID   int
	mu       sync.Mutex

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction).
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// Subscription is one subscriber's handle on a channel. Receive from C;
// call Close when done.
type Subscription struct {
	C <-chan []byte

	channel string
	id      int
	d       *Dispatcher
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		channels: make(map[string]map[int]chan []byte),
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN. Called
// once during startup after both sides exist.
func (d *Dispatcher) SetListener(l *NotifyListener) {
	d.listenerMu.Lock()
	defer d.listenerMu.Unlock()
	d.listener = l
}

// Subscribe registers a subscriber for a channel, issuing LISTEN when it is
// the channel's first. LISTEN completes before Subscribe returns, so events
// published afterwards are guaranteed to be observed.
func (d *Dispatcher) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	ch := make(chan []byte, subscriptionBuffer)

	d.mu.Lock()
	needsListen := false
	if _, exists := d.channels[channel]; !exists {
		d.channels[channel] = make(map[int]chan []byte)
		needsListen = true
	}
	d.nextID++
	id := d.nextID
	d.channels[channel][id] = ch
	d.mu.Unlock()

	if needsListen {
		d.listenerMu.RLock()
		l := d.listener
		d.listenerMu.RUnlock()
		if l != nil {
			if err := l.Subscribe(ctx, channel); err != nil {
				d.remove(channel, id)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	return &Subscription{C: ch, channel: channel, id: id, d: d}, nil
}

// Close unregisters the subscription. The last subscriber on a channel
// triggers UNLISTEN.
func (s *Subscription) Close() {
	s.d.remove(s.channel, s.id)
}

// Broadcast delivers an event payload to all subscribers of the channel.
// Sends are non-blocking; a full subscriber buffer drops the event.
func (d *Dispatcher) Broadcast(channel string, event []byte) {
	d.mu.Lock()
	subs := make([]chan []byte, 0, len(d.channels[channel]))
	for _, ch := range d.channels[channel] {
		subs = append(subs, ch)
	}
	d.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
			slog.Warn("Dropping event for slow subscriber", "channel", channel)
		}
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (d *Dispatcher) SubscriberCount(channel string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.channels[channel])
}

// remove deletes one subscription and stops LISTEN if it was the channel's
// last. The UNLISTEN goroutine re-checks for a resubscribe first, so a rapid
// close/subscribe cycle does not drop the LISTEN.
func (d *Dispatcher) remove(channel string, id int) {
	d.mu.Lock()
	subs, exists := d.channels[channel]
	if !exists {
		d.mu.Unlock()
		return
	}
	if ch, ok := subs[id]; ok {
		delete(subs, id)
		close(ch)
	}
	last := len(subs) == 0
	if last {
		delete(d.channels, channel)
	}
	d.mu.Unlock()

	if !last {
		return
	}
	d.listenerMu.RLock()
	l := d.listener
	d.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		d.mu.Lock()
		_, resubscribed := d.channels[channel]
		d.mu.Unlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}
