// Package logging builds the logrus logger shared by the rmtable commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel applies when no level is configured.
const DefaultLevel = logrus.WarnLevel

// Options selects the log level and destination.
type Options struct {
	// Level is a logrus level name; empty means DefaultLevel.
	Level string
	// File, when set, receives log output (appended). Otherwise Fallback is used.
	File string
	// Fallback is the destination when File is empty. Nil discards.
	Fallback io.Writer
}

// New returns a configured logger and a cleanup function that closes any
// opened log file. On success the cleanup function is never nil.
func New(opts Options) (*logrus.Logger, func(), error) {
	level := DefaultLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   opts.File != "",
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	cleanup := func() {}
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		cleanup = func() { f.Close() }
	case opts.Fallback != nil:
		log.SetOutput(opts.Fallback)
	default:
		log.SetOutput(io.Discard)
	}

	return log, cleanup, nil
}
