// Package registration holds the set-once state guarding the process signal disposition.
package registration

import (
	"sync"
	"sync/atomic"

	"ctrlc/application/signals"
)

// Registration allows exactly one successful install for its lifetime. It is never reset:
// the disposition it guards cannot be safely taken back once installed.
// The zero value is ready to use.
type Registration struct {
	mu         sync.Mutex
	registered atomic.Bool
}

func New() *Registration {
	return &Registration{}
}

// Claim runs install unless a previous Claim succeeded. The registered flag is only set
// after install succeeds, so a rejected install leaves the slot free. Concurrent callers
// are serialized: exactly one wins and the rest get signals.ErrAlreadyRegistered.
func (r *Registration) Claim(install func() error) error {
	if r.registered.Load() {
		return signals.ErrAlreadyRegistered
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.registered.Load() {
		return signals.ErrAlreadyRegistered
	}
	if err := install(); err != nil {
		return err
	}
	r.registered.Store(true)

	return nil
}

func (r *Registration) Registered() bool {
	return r.registered.Load()
}
