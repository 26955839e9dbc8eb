package trampoline

import (
	"errors"
	"os"
	"os/signal"
)

var ErrUnsupportedSignal = errors.New("ctrlc: signal not supported on this platform")

// OSNotifier subscribes channels through os/signal.
type OSNotifier struct {
}

func NewOSNotifier() *OSNotifier {
	return &OSNotifier{}
}

func (n *OSNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) error {
	for _, s := range sig {
		if err := validate(s); err != nil {
			return err
		}
	}
	signal.Notify(c, sig...)
	return nil
}

func (n *OSNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

func (n *OSNotifier) Ignored(sig os.Signal) bool {
	return signal.Ignored(sig)
}
