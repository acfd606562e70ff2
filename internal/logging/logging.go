package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/beesweeper-server/internal/config"
)

// New builds the process logger. Development mode logs everything down to
// debug with colors; production logs JSON at the configured level. When a
// log file is configured, entries are also written to a rotating file.
func New(cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetLevel(level)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Level:      log.GetLevel(),
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
