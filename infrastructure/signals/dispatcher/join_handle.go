package dispatcher

import "context"

// JoinHandle represents the goroutine waiting for signals on behalf of a callback.
type JoinHandle struct {
	done chan struct{}
	// err is written once, before done is closed.
	err error
}

func newJoinHandle() *JoinHandle {
	return &JoinHandle{
		done: make(chan struct{}),
	}
}

func (h *JoinHandle) finish(err error) {
	h.err = err
	close(h.done)
}

// Done is closed when the waiting goroutine has exited.
func (h *JoinHandle) Done() <-chan struct{} {
	return h.done
}

// Join blocks until the waiting goroutine exits and returns its terminal error,
// which is nil when the callback asked to stop.
func (h *JoinHandle) Join() error {
	<-h.done
	return h.err
}

// JoinContext is Join bounded by ctx.
func (h *JoinHandle) JoinContext(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the terminal error, or nil while the goroutine is still running.
func (h *JoinHandle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
