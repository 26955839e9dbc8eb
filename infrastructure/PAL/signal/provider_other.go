//go:build !unix && !windows

package signal

import "os"

func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
