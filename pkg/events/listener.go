package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// subOp is one LISTEN/UNLISTEN request handed to the session loop, the only
// goroutine that ever touches the pgx connection.
type subOp struct {
	channel string
	listen  bool
	reply   chan error
}

// NotifyListener owns the dedicated Postgres LISTEN connection and feeds
// NOTIFY payloads into the Dispatcher. Subscription changes are serialized
// through the session loop so Exec never races WaitForNotification, and a
// dropped connection is redialed with backoff, replaying LISTEN for every
// active channel.
type NotifyListener struct {
	connString string
	dispatcher *Dispatcher

	ops     chan subOp
	running atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewNotifyListener creates a new PostgreSQL NOTIFY listener.
func NewNotifyListener(connString string, dispatcher *Dispatcher) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		dispatcher: dispatcher,
		ops:        make(chan subOp, 16),
	}
}

// Start dials the LISTEN connection and launches the session loop. Dialing
// happens synchronously so a bad connection string surfaces here rather
// than in the background.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	l.running.Store(true)
	go l.session(loopCtx, conn)

	slog.Info("NOTIFY listener started")
	return nil
}

// Subscribe issues LISTEN for the channel and returns once Postgres has
// accepted it, so notifications published afterwards are delivered.
// Idempotent for channels already being listened to.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}
	return l.request(ctx, channel, true)
}

// Unsubscribe issues UNLISTEN for the channel. A listener that is not
// running has nothing to unlisten.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !l.running.Load() {
		return nil
	}
	return l.request(ctx, channel, false)
}

// request queues one op for the session loop and waits for its reply.
func (l *NotifyListener) request(ctx context.Context, channel string, listen bool) error {
	op := subOp{channel: channel, listen: listen, reply: make(chan error, 1)}
	select {
	case l.ops <- op:
	case <-l.done:
		return fmt.Errorf("notify listener stopped")
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-op.reply:
		return err
	case <-l.done:
		return fmt.Errorf("notify listener stopped")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// session owns conn until shutdown. Each turn applies queued subscription
// ops, then blocks briefly for a notification; the short wait timeout is
// what keeps the loop responsive to new ops without a second goroutine on
// the connection.
func (l *NotifyListener) session(ctx context.Context, conn *pgx.Conn) {
	defer close(l.done)
	active := make(map[string]bool)

	for {
		if conn == nil {
			if conn = l.redial(ctx, active); conn == nil {
				return // Shutdown during reconnect
			}
		}

		l.applyPending(ctx, conn, active)

		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		n, err := conn.WaitForNotification(waitCtx)
		cancel()
		switch {
		case err == nil:
			l.dispatcher.Broadcast(n.Channel, []byte(n.Payload))
		case ctx.Err() != nil:
			_ = conn.Close(context.Background())
			return
		case waitCtx.Err() != nil:
			// Wait window elapsed; go apply any queued ops.
		default:
			slog.Error("NOTIFY receive failed", "error", err)
			_ = conn.Close(context.Background())
			conn = nil
		}
	}
}

// applyPending drains queued LISTEN/UNLISTEN ops. Ops that would not change
// the active set succeed without touching the connection.
func (l *NotifyListener) applyPending(ctx context.Context, conn *pgx.Conn, active map[string]bool) {
	for {
		select {
		case op := <-l.ops:
			op.reply <- applyOp(ctx, conn, active, op)
		default:
			return
		}
	}
}

func applyOp(ctx context.Context, conn *pgx.Conn, active map[string]bool, op subOp) error {
	if op.listen == active[op.channel] {
		return nil
	}
	verb := "LISTEN"
	if !op.listen {
		verb = "UNLISTEN"
	}
	quoted := pgx.Identifier{op.channel}.Sanitize()
	if _, err := conn.Exec(ctx, verb+" "+quoted); err != nil {
		return fmt.Errorf("%s %s failed: %w", verb, quoted, err)
	}
	if op.listen {
		active[op.channel] = true
	} else {
		delete(active, op.channel)
	}
	slog.Debug("NOTIFY subscription changed", "channel", op.channel, "listen", op.listen)
	return nil
}

// redial re-establishes the LISTEN connection with exponential backoff and
// replays LISTEN for every active channel. Returns nil only on shutdown.
func (l *NotifyListener) redial(ctx context.Context, active map[string]bool) *pgx.Conn {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		for channel := range active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", channel, "error", err)
			}
		}
		slog.Info("NOTIFY listener reconnected", "channels", len(active))
		return conn
	}
}

// Stop ends the session loop and waits for it to close the connection. The
// context bounds only the wait.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)
	if l.cancel == nil {
		return
	}
	l.cancel()
	select {
	case <-l.done:
	case <-ctx.Done():
		slog.Warn("NOTIFY listener did not stop in time")
	}
}
