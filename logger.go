package spritemaker

// Logger receives progress and warning messages. *log.Logger from
// github.com/charmbracelet/log satisfies it. Implementations must be safe
// for concurrent use; images are loaded in parallel.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// nopLogger discards everything. The library stays silent unless the
// caller supplies a logger.
type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}
