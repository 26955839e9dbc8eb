package signal

import "errors"

var ErrRaiseUnsupported = errors.New("ctrlc: raising this signal is not supported on this platform")
