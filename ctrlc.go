// Package ctrlc runs a callback when the process receives an interrupt request.
//
// On Unix, Ctrl-C is SIGINT; on Windows it is CTRL_C_EVENT or CTRL_BREAK_EVENT. With
// Termination mode, SIGTERM and SIGHUP (CTRL_CLOSE, CTRL_LOGOFF and CTRL_SHUTDOWN on Windows)
// drive the same callback.
//
// A handler can be registered once per process. The callback runs on a dedicated
// goroutine, never concurrently with itself. Returning true keeps it waiting for the next
// signal; returning false stops it and readies the returned JoinHandle.
//
//	handle, err := ctrlc.SetHandler(func() bool {
//		cancel()
//		return false
//	})
//	if err != nil {
//		log.Fatalf("failed to set interrupt handler: %v", err)
//	}
//	...
//	_ = handle.Join()
package ctrlc

import (
	"ctrlc/application/logging"
	"ctrlc/application/signals"
	palSignal "ctrlc/infrastructure/PAL/signal"
	infraLogging "ctrlc/infrastructure/logging"
	"ctrlc/infrastructure/signals/dispatcher"
	"ctrlc/infrastructure/signals/registration"
	"ctrlc/infrastructure/signals/trampoline"
)

// process guards the signal disposition of this process. It is never reset.
var process = registration.New()

type (
	Mode       = palSignal.Mode
	StopPolicy = dispatcher.StopPolicy
	JoinHandle = dispatcher.JoinHandle
)

const (
	InterruptOnly = palSignal.InterruptOnly
	Termination   = palSignal.Termination

	RestoreDefault = dispatcher.RestoreDefault
	KeepInert      = dispatcher.KeepInert
)

var (
	ErrAlreadyRegistered    = signals.ErrAlreadyRegistered
	ErrOSRegistrationFailed = signals.ErrOSRegistrationFailed
	ErrDispositionInUse     = signals.ErrDispositionInUse
	ErrCallbackPanicked     = signals.ErrCallbackPanicked
	ErrNilCallback          = signals.ErrNilCallback
	ErrUnknownMode          = palSignal.ErrUnknownMode
)

// Config tunes a registration. The zero value intercepts Ctrl-C only, restores the
// default disposition on stop and logs through the standard log package.
type Config struct {
	Mode   Mode
	OnStop StopPolicy
	// Strict fails with ErrDispositionInUse instead of taking over a signal the process
	// currently ignores, such as SIGHUP under nohup.
	Strict bool
	Logger logging.Logger
}

// SetHandler registers handler for Ctrl-C.
func SetHandler(handler func() bool) (*JoinHandle, error) {
	return SetHandlerWithConfig(handler, Config{})
}

// TrySetHandler is SetHandler, but fails if the process currently ignores the signal.
func TrySetHandler(handler func() bool) (*JoinHandle, error) {
	return SetHandlerWithConfig(handler, Config{Strict: true})
}

// SetOneShotHandler registers handler to run on the first Ctrl-C only.
func SetOneShotHandler(handler func()) (*JoinHandle, error) {
	if handler == nil {
		return nil, ErrNilCallback
	}
	return SetHandler(func() bool {
		handler()
		return false
	})
}

// SetHandlerWithConfig registers handler for the signal set selected by cfg.Mode.
func SetHandlerWithConfig(handler func() bool, cfg Config) (*JoinHandle, error) {
	if handler == nil {
		return nil, ErrNilCallback
	}

	logger := cfg.Logger
	if logger == nil {
		logger = infraLogging.NewLogLogger()
	}

	d := dispatcher.New(process, palSignal.NewDefaultProvider(), trampoline.NewOSNotifier(), logger)
	return d.Register(handler, dispatcher.Config{
		Mode:   cfg.Mode,
		OnStop: cfg.OnStop,
		Strict: cfg.Strict,
	})
}
