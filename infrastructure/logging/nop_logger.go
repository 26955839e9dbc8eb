package logging

import "ctrlc/application/logging"

// NopLogger discards everything. Use it to keep the library silent.
type NopLogger struct {
}

func NewNopLogger() logging.Logger {
	return NopLogger{}
}

func (NopLogger) Printf(string, ...any) {}
