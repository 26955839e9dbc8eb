package signals

import "os"

// Notifier subscribes channels to OS signal delivery.
// Implementations must be safe for concurrent use.
type Notifier interface {
	// Notify subscribes c to sig. It must not subscribe anything if it returns an error.
	Notify(c chan<- os.Signal, sig ...os.Signal) error
	// Stop unsubscribes c. When it returns, c receives no more signals.
	Stop(c chan<- os.Signal)
	// Ignored reports whether sig is currently ignored by the process.
	Ignored(sig os.Signal) bool
}
