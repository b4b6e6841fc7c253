package logger

import (
	"io"
	"os"

	"dodo-statistics/internal/config"

	"github.com/sirupsen/logrus"
)

// Logger оборачивает logrus и настраивается из конфигурации
type Logger struct {
	*logrus.Logger
}

// New создает логгер с уровнем, форматом и файлом из конфигурации
func New(cfg *config.LoggerConfig) *Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			output = io.MultiWriter(os.Stdout, file)
		} else {
			log.WithError(err).Warn("Failed to open log file, using stdout only")
		}
	}
	log.SetOutput(output)

	return &Logger{Logger: log}
}
