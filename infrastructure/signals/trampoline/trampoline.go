// Package trampoline bridges OS signal delivery to normal goroutine context.
//
// The code that actually runs in signal context is the Go runtime's handler: it records
// the signal in a lock-free mask and wakes the runtime's receiver, which then performs a
// non-blocking send into every subscribed channel. Trampoline subscribes a single-slot
// channel, so the slot is the pending-signal indicator: a raise that finds it full is
// dropped, and any number of raises between two observations collapse into one.
package trampoline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"ctrlc/application/signals"
)

var ErrEmptySignalSet = errors.New("ctrlc: empty signal set")

type Trampoline struct {
	notifier signals.Notifier
	// pending must stay at capacity 1. os/signal never blocks on a send.
	pending   chan os.Signal
	sigs      []os.Signal
	closeOnce sync.Once
}

// Install subscribes a new pending indicator to sigs.
// Errors wrap signals.ErrOSRegistrationFailed.
func Install(notifier signals.Notifier, sigs ...os.Signal) (*Trampoline, error) {
	if len(sigs) == 0 {
		return nil, fmt.Errorf("%w: %w", signals.ErrOSRegistrationFailed, ErrEmptySignalSet)
	}

	t := &Trampoline{
		notifier: notifier,
		pending:  make(chan os.Signal, 1),
		sigs:     append([]os.Signal(nil), sigs...),
	}
	if err := notifier.Notify(t.pending, t.sigs...); err != nil {
		return nil, fmt.Errorf("%w: %w", signals.ErrOSRegistrationFailed, err)
	}

	return t, nil
}

// Signals returns the intercepted signal set.
func (t *Trampoline) Signals() []os.Signal {
	return append([]os.Signal(nil), t.sigs...)
}

// Wait blocks until a signal is pending and consumes it, resetting the indicator.
func (t *Trampoline) Wait(ctx context.Context) (os.Signal, error) {
	select {
	case sig := <-t.pending:
		return sig, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close unsubscribes the indicator. Signals left without any subscriber fall back to
// their default disposition. Safe to call more than once.
func (t *Trampoline) Close() {
	t.closeOnce.Do(func() {
		t.notifier.Stop(t.pending)
	})
}
