package logger

// Keys for log attributes added by the debug middleware.
const (
	ErrorVerboseKey    = "error_verbose"
	ErrorStackTraceKey = "error_stacktrace"
)
