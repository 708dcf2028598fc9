package ports

// DiagnosticReporter writes a failure to the user's error stream.
type DiagnosticReporter interface {
	Report(err error)
}
