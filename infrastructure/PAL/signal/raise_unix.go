//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package signal

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Raise delivers sig to the current process.
func Raise(sig os.Signal) error {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return fmt.Errorf("%w: %v", ErrRaiseUnsupported, sig)
	}
	if err := unix.Kill(unix.Getpid(), s); err != nil {
		return fmt.Errorf("kill %s: %w", s, err)
	}
	return nil
}
