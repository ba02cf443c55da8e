// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about card generation and preview requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCardHooks(&myCardHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Card().OnCardStart(ctx, preset, shapeCount)
//	// ... generate ...
//	observability.Card().OnCardComplete(ctx, preset, drawn, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Card Hooks
// =============================================================================

// CardHooks receives events from card generation.
type CardHooks interface {
	// OnCardStart records the start of a card with its planned shape count.
	OnCardStart(ctx context.Context, preset string, shapes int)

	// OnCardComplete records a finished (or failed) card.
	OnCardComplete(ctx context.Context, preset string, shapes int, duration time.Duration, err error)

	// OnCardWritten records a card written to disk.
	OnCardWritten(ctx context.Context, path string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the preview server.
type ServerHooks interface {
	// OnRequest records a served request.
	OnRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCardHooks is a no-op implementation of CardHooks.
type NoopCardHooks struct{}

func (NoopCardHooks) OnCardStart(context.Context, string, int)                          {}
func (NoopCardHooks) OnCardComplete(context.Context, string, int, time.Duration, error) {}
func (NoopCardHooks) OnCardWritten(context.Context, string, int)                        {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	cardHooks   CardHooks   = NoopCardHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetCardHooks registers custom card hooks.
// This should be called once at application startup before any generation.
func SetCardHooks(h CardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cardHooks = h
	}
}

// SetServerHooks registers custom server hooks.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Card returns the registered card hooks.
func Card() CardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cardHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cardHooks = NoopCardHooks{}
	serverHooks = NoopServerHooks{}
}
