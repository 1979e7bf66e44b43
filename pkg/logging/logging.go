// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options controls how log lines are emitted
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// Setup applies the options to the standard logrus logger. An unknown level
// falls back to info and is reported once the logger is configured.
func Setup(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	logrus.SetOutput(out)

	if opts.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if err != nil && opts.Level != "" {
		logrus.WithField("level", opts.Level).Warn("unknown log level, using info")
	}
}

// For returns a logger tagged with the component name
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
