package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const defaultLogLevel = logrus.WarnLevel

// newLogger builds the logrus logger shared by the engine and the server.
// Logs go to w so they never mix with report output.
func newLogger(level string, asJSON bool, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	if asJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl := defaultLogLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	logger.SetLevel(lvl)
	return logger, nil
}
