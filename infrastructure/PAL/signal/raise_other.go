//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package signal

import (
	"fmt"
	"os"
)

func Raise(sig os.Signal) error {
	return fmt.Errorf("%w: %v", ErrRaiseUnsupported, sig)
}
