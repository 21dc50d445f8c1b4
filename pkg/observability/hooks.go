// Package observability provides hooks for instrumenting kata runs.
//
// Katas are pure functions and never log on their own. The catalog calls
// the registered hooks around each run so that the CLI (or any other host)
// can log, count, or time runs without the kata packages knowing about it.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetKataHooks(&myKataHooks{})
//	    // ... run application
//	}
//
// The catalog emits events:
//
//	observability.Kata().OnRunStart(ctx, name)
//	// ... run the kata ...
//	observability.Kata().OnRunComplete(ctx, name, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// KataHooks receives events from catalog runs.
type KataHooks interface {
	// OnRunStart records that a kata is about to run.
	OnRunStart(ctx context.Context, name string)

	// OnRunComplete records the outcome of a run. err is nil on success.
	OnRunComplete(ctx context.Context, name string, duration time.Duration, err error)
}

// NoopKataHooks is a no-op implementation of KataHooks.
type NoopKataHooks struct{}

func (NoopKataHooks) OnRunStart(context.Context, string)                          {}
func (NoopKataHooks) OnRunComplete(context.Context, string, time.Duration, error) {}

var (
	kataHooks KataHooks = NoopKataHooks{}
	hooksMu   sync.RWMutex
)

// SetKataHooks registers custom kata hooks. A nil h is ignored.
// This should be called once at application startup before any runs.
func SetKataHooks(h KataHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		kataHooks = h
	}
}

// Kata returns the registered kata hooks.
func Kata() KataHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return kataHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	kataHooks = NoopKataHooks{}
}
