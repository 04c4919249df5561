package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/sirupsen/logrus"
)

// a development log past this size is moved to development.log.1 on startup
const maxLogSize = 10 * 1024 * 1024

// NewLogger returns a new logger. In debug mode everything goes to
// development.log in the config directory, otherwise only errors are kept
// and they are dropped.
func NewLogger(config *config.AppConfig) *logrus.Entry {
	var log *logrus.Logger
	if config.Debug || os.Getenv("DEBUG") == "TRUE" {
		log = newDevelopmentLogger(config)
	} else {
		log = newProductionLogger()
	}

	// JSON unless asked otherwise: tail -f development.log | humanlog
	if os.Getenv("LOG_FORMAT") == "text" {
		log.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	} else {
		log.Formatter = &logrus.JSONFormatter{}
	}

	return log.WithFields(logrus.Fields{
		"debug":     config.Debug,
		"version":   config.Version,
		"commit":    config.Commit,
		"buildDate": config.BuildDate,
	})
}

// LogPath is where the development log is written
func LogPath(config *config.AppConfig) string {
	return filepath.Join(config.ConfigDir, "development.log")
}

func getLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel())

	path := LogPath(config)
	if err := rotate(path, maxLogSize); err != nil {
		fmt.Fprintf(os.Stderr, "unable to rotate log file: %v\n", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		// a broken log file must not stop lazysnapper from starting
		fmt.Fprintf(os.Stderr, "unable to log to file: %v\n", err)
		log.Out = io.Discard
		return log
	}
	log.SetOutput(file)
	return log
}

// rotate keeps a single previous generation of the log
func rotate(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < maxSize {
		return nil
	}
	return os.Rename(path, path+".1")
}

func newProductionLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.ErrorLevel)
	return log
}
