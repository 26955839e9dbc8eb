package trampoline

import (
	"os"
	"testing"
)

func TestNewOSNotifier(t *testing.T) {
	t.Parallel()

	n := NewOSNotifier()
	if n == nil {
		t.Fatalf("NewOSNotifier must not return nil")
	}
}

func TestOSNotifier_NotifyAndStop(t *testing.T) {
	notifier := NewOSNotifier()
	ch := make(chan os.Signal, 1)

	if err := notifier.Notify(ch, os.Interrupt); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	notifier.Stop(ch)
}
