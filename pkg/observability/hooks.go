// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about pipeline execution.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnReadStart(ctx)
//	// ... read trees ...
//	observability.Pipeline().OnReadComplete(ctx, accepted, rejected, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the read → rasterize → render pipeline.
type PipelineHooks interface {
	// Read events
	OnReadStart(ctx context.Context)
	OnLineRejected(ctx context.Context, line int, code string)
	OnReadComplete(ctx context.Context, accepted, rejected int, duration time.Duration, err error)

	// Rasterize events
	OnRasterizeComplete(ctx context.Context, width, height int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnReadStart(context.Context)                                    {}
func (NoopPipelineHooks) OnLineRejected(context.Context, int, string)                    {}
func (NoopPipelineHooks) OnReadComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRasterizeComplete(context.Context, int, int, time.Duration)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
