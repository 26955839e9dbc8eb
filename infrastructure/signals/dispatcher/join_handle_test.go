package dispatcher

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestJoinHandle_PendingUntilFinished(t *testing.T) {
	t.Parallel()

	h := newJoinHandle()

	if h.Err() != nil {
		t.Fatalf("Err must be nil while running")
	}
	select {
	case <-h.Done():
		t.Fatal("Done must not be closed while running")
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := h.JoinContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

func TestJoinHandle_FinishPublishesError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "clean stop", err: nil},
		{name: "terminal error", err: errors.New("callback failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newJoinHandle()
			go h.finish(tt.err)

			if err := h.Join(); !errors.Is(err, tt.err) {
				t.Fatalf("Join: expected %v, got %v", tt.err, err)
			}
			if err := h.JoinContext(context.Background()); !errors.Is(err, tt.err) {
				t.Fatalf("JoinContext: expected %v, got %v", tt.err, err)
			}
			if err := h.Err(); !errors.Is(err, tt.err) {
				t.Fatalf("Err: expected %v, got %v", tt.err, err)
			}
			<-h.Done()
		})
	}
}

func TestStopPolicy_String(t *testing.T) {
	t.Parallel()

	if RestoreDefault.String() != "restore-default" || KeepInert.String() != "keep-inert" {
		t.Fatalf("unexpected policy names %q, %q", RestoreDefault, KeepInert)
	}
}
