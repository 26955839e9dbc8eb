//go:build windows

package signal

import (
	"os"
	"syscall"
)

// os.Interrupt covers CTRL_C_EVENT and CTRL_BREAK_EVENT.
func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

// The runtime maps CTRL_CLOSE_EVENT, CTRL_LOGOFF_EVENT and CTRL_SHUTDOWN_EVENT to SIGTERM.
// There is no hangup request on windows.
func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}
