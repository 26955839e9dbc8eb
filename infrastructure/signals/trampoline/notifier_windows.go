//go:build windows

package trampoline

import (
	"fmt"
	"os"
	"syscall"
)

// The runtime's console control handler only ever produces these two.
func validate(sig os.Signal) error {
	if sig == os.Interrupt || sig == syscall.SIGTERM {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedSignal, sig)
}
