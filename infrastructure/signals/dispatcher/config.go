package dispatcher

import palSignal "ctrlc/infrastructure/PAL/signal"

// StopPolicy decides what happens to the intercepted signals once the callback asks to stop.
type StopPolicy int

const (
	// RestoreDefault unsubscribes on stop. Later signals get the OS default disposition,
	// which terminates the process.
	RestoreDefault StopPolicy = iota
	// KeepInert leaves the subscription in place without a reader. Later signals are absorbed.
	KeepInert
)

func (p StopPolicy) String() string {
	switch p {
	case RestoreDefault:
		return "restore-default"
	case KeepInert:
		return "keep-inert"
	default:
		return "unknown"
	}
}

type Config struct {
	Mode   palSignal.Mode
	OnStop StopPolicy
	// Strict refuses to take over a signal the process currently ignores.
	Strict bool
}
