package signal

import (
	"errors"
	"testing"
)

func TestSignals_UnknownMode(t *testing.T) {
	t.Parallel()

	got, err := NewDefaultProvider().Signals(Mode(42))
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no signals, got %v", got)
	}
}

func TestSignals_InterruptAlwaysFirst(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{InterruptOnly, Termination} {
		got, err := NewDefaultProvider().Signals(mode)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", mode, err)
		}
		if len(got) == 0 || got[0].String() != "interrupt" {
			t.Fatalf("%s: expected interrupt first, got %v", mode, got)
		}
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	cases := map[Mode]string{
		InterruptOnly: "interrupt",
		Termination:   "termination",
		Mode(7):       "Mode(7)",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}
