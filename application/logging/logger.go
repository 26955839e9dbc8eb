package logging

// Logger is the logging contract used across the module.
type Logger interface {
	Printf(format string, v ...any)
}
