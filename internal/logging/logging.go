// Package logging configures the logrus logger shared by all components.
//
// The terminal belongs to the control surface, so without a log file the
// logger discards everything.
package logging

import (
	"io"
	"time"

	rotate "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tessro/playbar/internal/config"
)

// New builds a logger from the log section of the config.
func New(cfg config.LogConfig) (*log.Logger, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
	} else {
		// One file per day, keep a week, symlink the newest.
		writer, err := rotate.New(
			cfg.File+".%Y%m%d",
			rotate.WithLinkName(cfg.File),
			rotate.WithMaxAge(7*24*time.Hour),
			rotate.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open log file")
		}
		logger.SetOutput(writer)
	}

	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger, nil
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Component returns an entry tagged with the component name.
func Component(logger *log.Logger, name string) *log.Entry {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithField("c", name)
}
