package calculation

// Logger is the logging surface the engine writes to. *logrus.Logger and
// *logrus.Entry both satisfy it. The default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// loanLogger tags every line with the loan it concerns so batch runs stay readable.
type loanLogger struct {
	next Logger
	name string
}

func withLoan(l Logger, name string) Logger {
	if name == "" {
		return l
	}
	return loanLogger{next: l, name: name}
}

func (l loanLogger) Debugf(format string, args ...any) {
	l.next.Debugf("[%s] "+format, append([]any{l.name}, args...)...)
}

func (l loanLogger) Infof(format string, args ...any) {
	l.next.Infof("[%s] "+format, append([]any{l.name}, args...)...)
}

func (l loanLogger) Warnf(format string, args ...any) {
	l.next.Warnf("[%s] "+format, append([]any{l.name}, args...)...)
}

func (l loanLogger) Errorf(format string, args ...any) {
	l.next.Errorf("[%s] "+format, append([]any{l.name}, args...)...)
}
