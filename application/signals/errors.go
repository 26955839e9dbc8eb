package signals

import "errors"

var (
	ErrAlreadyRegistered    = errors.New("ctrlc: handler already registered")
	ErrOSRegistrationFailed = errors.New("ctrlc: os refused signal handler registration")
	// ErrDispositionInUse is wrapped together with ErrOSRegistrationFailed when a strict
	// registration finds a signal the process already ignores.
	ErrDispositionInUse = errors.New("ctrlc: signal disposition already in use")
	ErrCallbackPanicked = errors.New("ctrlc: handler callback panicked")
	ErrNilCallback      = errors.New("ctrlc: nil handler callback")
)
