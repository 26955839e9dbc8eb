//go:build windows

package signal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Raise delivers sig to the current process.
// Only os.Interrupt is supported. It is sent as CTRL_BREAK_EVENT to every process
// attached to the console of process group 0.
func Raise(sig os.Signal) error {
	if sig != os.Interrupt {
		return fmt.Errorf("%w: %v", ErrRaiseUnsupported, sig)
	}
	if err := windows.GenerateConsoleCtrlEvent(windows.CTRL_BREAK_EVENT, 0); err != nil {
		return fmt.Errorf("GenerateConsoleCtrlEvent: %w", err)
	}
	return nil
}
