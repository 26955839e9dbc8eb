package signal

import (
	"errors"
	"fmt"
	"os"
)

var ErrUnknownMode = errors.New("ctrlc: unknown signal mode")

// Mode selects which process-termination requests are intercepted.
type Mode int

const (
	// InterruptOnly intercepts Ctrl-C only.
	InterruptOnly Mode = iota
	// Termination intercepts Ctrl-C plus termination and hangup requests where the platform has them.
	Termination
)

func (m Mode) String() string {
	switch m {
	case InterruptOnly:
		return "interrupt"
	case Termination:
		return "termination"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Provider abstracts platform-specific signals
type Provider interface {
	Signals(mode Mode) ([]os.Signal, error)
}

type DefaultProvider struct {
}

func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

// Signals returns the signal set for mode. Ctrl-C always comes first.
func (p *DefaultProvider) Signals(mode Mode) ([]os.Signal, error) {
	switch mode {
	case InterruptOnly:
		return interruptSignals(), nil
	case Termination:
		return terminationSignals(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}
