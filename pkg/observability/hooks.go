// Package observability provides hooks around a render run.
//
// Hooks are registered once at startup and default to no-ops, so library
// code can emit events without depending on a metrics or tracing backend.
//
//	observability.SetRenderHooks(&myHooks{})
//
// The pipeline emits:
//
//	observability.Render().OnThemeStart(ctx, theme, files)
//	observability.Render().OnRenderStart(ctx, theme, source, format)
//	observability.Render().OnRenderComplete(ctx, theme, source, format, exitCode, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from a render run.
type RenderHooks interface {
	// Theme events
	OnThemeStart(ctx context.Context, theme string, files int)
	OnThemeSkip(ctx context.Context, theme, reason string)

	// Render events
	OnRenderStart(ctx context.Context, theme, source, format string)
	OnRenderComplete(ctx context.Context, theme, source, format string, exitCode int, duration time.Duration)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnThemeStart(context.Context, string, int)             {}
func (NoopRenderHooks) OnThemeSkip(context.Context, string, string)           {}
func (NoopRenderHooks) OnRenderStart(context.Context, string, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, string, int, time.Duration) {
}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
