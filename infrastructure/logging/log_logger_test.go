package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestNewLogLogger_ReturnsLogger(t *testing.T) {
	l := NewLogLogger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestLogLogger_Printf_WritesToStdLog(t *testing.T) {
	origOutput := log.Writer()
	origFlags := log.Flags()
	origPrefix := log.Prefix()
	defer func() {
		log.SetOutput(origOutput)
		log.SetFlags(origFlags)
		log.SetPrefix(origPrefix)
	}()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFlags(0)
	log.SetPrefix("")

	LogLogger{}.Printf("ctrlc: %s received", "interrupt")
	if !strings.Contains(buf.String(), "ctrlc: interrupt received") {
		t.Fatalf("expected log output to contain formatted message, got %q", buf.String())
	}
}

func TestNopLogger_Printf_WritesNothing(t *testing.T) {
	origOutput := log.Writer()
	defer log.SetOutput(origOutput)

	var buf bytes.Buffer
	log.SetOutput(&buf)

	NewNopLogger().Printf("ctrlc: %s received", "interrupt")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
