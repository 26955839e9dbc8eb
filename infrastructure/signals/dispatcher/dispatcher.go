// Package dispatcher owns the handler registration lifecycle and runs the user callback
// on a dedicated goroutine, never in signal context.
package dispatcher

import (
	"context"
	"fmt"
	"os"

	"ctrlc/application/logging"
	"ctrlc/application/signals"
	palSignal "ctrlc/infrastructure/PAL/signal"
	"ctrlc/infrastructure/signals/trampoline"
)

// Callback is run once per observed notification.
// Returning true keeps waiting for further signals, false stops handling.
type Callback func() bool

type Dispatcher struct {
	// registrar guards the process-wide disposition; shared by every Dispatcher of a process.
	registrar signals.Registrar
	// provider resolves the signal set for the configured mode.
	provider palSignal.Provider
	// notifier subscribes the trampoline to OS signal delivery.
	notifier signals.Notifier
	logger   logging.Logger
}

func New(
	registrar signals.Registrar,
	provider palSignal.Provider,
	notifier signals.Notifier,
	logger logging.Logger,
) *Dispatcher {
	return &Dispatcher{
		registrar: registrar,
		provider:  provider,
		notifier:  notifier,
		logger:    logger,
	}
}

// Register installs the trampoline for cfg.Mode and starts the waiting goroutine.
// It fails with signals.ErrAlreadyRegistered once any Register on the same registrar
// has succeeded, and with signals.ErrOSRegistrationFailed when the signal set is rejected.
func (d *Dispatcher) Register(callback Callback, cfg Config) (*JoinHandle, error) {
	if callback == nil {
		return nil, signals.ErrNilCallback
	}

	sigs, err := d.provider.Signals(cfg.Mode)
	if err != nil {
		return nil, err
	}

	var t *trampoline.Trampoline
	claimErr := d.registrar.Claim(func() error {
		if cfg.Strict {
			if inUseErr := d.checkDispositions(sigs); inUseErr != nil {
				return inUseErr
			}
		}
		var installErr error
		t, installErr = trampoline.Install(d.notifier, sigs...)
		return installErr
	})
	if claimErr != nil {
		return nil, claimErr
	}

	handle := newJoinHandle()
	go d.wait(t, callback, cfg.OnStop, handle)

	return handle, nil
}

func (d *Dispatcher) checkDispositions(sigs []os.Signal) error {
	for _, sig := range sigs {
		if d.notifier.Ignored(sig) {
			return fmt.Errorf("%w: %s: %w", signals.ErrOSRegistrationFailed, sig, signals.ErrDispositionInUse)
		}
	}
	return nil
}

func (d *Dispatcher) wait(t *trampoline.Trampoline, callback Callback, policy StopPolicy, handle *JoinHandle) {
	var err error
	defer func() {
		if policy == RestoreDefault {
			t.Close()
		}
		handle.finish(err)
	}()

	for {
		sig, waitErr := t.Wait(context.Background())
		if waitErr != nil {
			err = waitErr
			return
		}

		d.logger.Printf("ctrlc: %s received", sig)
		keepWaiting, invokeErr := invoke(callback)
		if invokeErr != nil {
			d.logger.Printf("ctrlc: %v", invokeErr)
			err = invokeErr
			return
		}
		if !keepWaiting {
			d.logger.Printf("ctrlc: handler stopped (%s)", policy)
			return
		}
	}
}

func invoke(callback Callback) (keepWaiting bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", signals.ErrCallbackPanicked, r)
		}
	}()
	return callback(), nil
}
