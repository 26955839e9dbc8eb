//go:build unix

package signal

import (
	"os"
	"syscall"
	"testing"
)

func TestSignals_Unix_ExactSetAndOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode Mode
		want []os.Signal
	}{
		{
			name: "interrupt only",
			mode: InterruptOnly,
			want: []os.Signal{os.Interrupt},
		},
		{
			name: "termination broadens the interrupt set",
			mode: Termination,
			want: []os.Signal{
				os.Interrupt,    // SIGINT
				syscall.SIGTERM, // TERM
				syscall.SIGHUP,  // HUP
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewDefaultProvider().Signals(tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("unexpected length: got %d, want %d; got=%v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("unexpected element at %d: got %v, want %v; full got=%v", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}
