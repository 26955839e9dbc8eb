//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package trampoline

import (
	"fmt"
	"os"
)

func validate(sig os.Signal) error {
	if sig == os.Interrupt {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedSignal, sig)
}
