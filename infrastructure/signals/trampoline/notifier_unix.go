//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package trampoline

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func validate(sig os.Signal) error {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return fmt.Errorf("%w: %v is not a system signal", ErrUnsupportedSignal, sig)
	}
	if unix.SignalName(s) == "" {
		return fmt.Errorf("%w: signal %d", ErrUnsupportedSignal, int(s))
	}
	// os/signal silently drops these two.
	if s == unix.SIGKILL || s == unix.SIGSTOP {
		return fmt.Errorf("%w: %s cannot be caught", ErrUnsupportedSignal, unix.SignalName(s))
	}
	return nil
}
