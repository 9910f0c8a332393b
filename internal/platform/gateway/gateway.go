// File: internal/platform/gateway/gateway.go
package gateway

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Dialer opens a store handle.
type Dialer[H any] func(ctx context.Context) (H, error)

// Closer releases a handle obtained from a Dialer.
type Closer[H any] func(ctx context.Context, handle H) error

// ConnectionError is returned when the store could not be reached.
type ConnectionError struct {
	Store string
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Store, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Gateway caches one store handle for the lifetime of the process.
//
// The first EnsureConnected call dials; later calls return the cached
// handle. A failed dial leaves the gateway unconnected so the next call
// tries again. Once a handle is cached it is kept until Close or Reset,
// even if the store later becomes unreachable.
type Gateway[H any] struct {
	name   string
	dial   Dialer[H]
	close  Closer[H]
	logger *zap.Logger

	mu        sync.Mutex
	handle    H
	connected bool
}

// Option configures a Gateway.
type Option[H any] func(*Gateway[H])

// WithCloser sets the function used by Close.
func WithCloser[H any](c Closer[H]) Option[H] {
	return func(g *Gateway[H]) { g.close = c }
}

// WithLogger sets the logger used for connect/close events.
func WithLogger[H any](l *zap.Logger) Option[H] {
	return func(g *Gateway[H]) { g.logger = l }
}

// New returns an unconnected gateway. name identifies the store in errors and logs.
func New[H any](name string, dial Dialer[H], opts ...Option[H]) *Gateway[H] {
	g := &Gateway[H]{name: name, dial: dial, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EnsureConnected returns the cached handle, dialing first if needed.
func (g *Gateway[H]) EnsureConnected(ctx context.Context) (H, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.connected {
		return g.handle, nil
	}

	handle, err := g.dial(ctx)
	if err != nil {
		var zero H
		g.logger.Error("Store connection failed", zap.String("store", g.name), zap.Error(err))
		return zero, &ConnectionError{Store: g.name, Err: err}
	}

	g.handle = handle
	g.connected = true
	g.logger.Info("Store connected", zap.String("store", g.name))
	return handle, nil
}

// Connected reports whether a handle is cached.
func (g *Gateway[H]) Connected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// Close releases the cached handle, if any.
func (g *Gateway[H]) Close(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.connected {
		return nil
	}
	handle := g.handle
	g.forget()

	if g.close == nil {
		return nil
	}
	if err := g.close(ctx, handle); err != nil {
		return fmt.Errorf("closing %s: %w", g.name, err)
	}
	g.logger.Info("Store connection closed", zap.String("store", g.name))
	return nil
}

// Reset drops the cached handle without closing it.
func (g *Gateway[H]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.forget()
}

func (g *Gateway[H]) forget() {
	var zero H
	g.handle = zero
	g.connected = false
}
