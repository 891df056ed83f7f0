package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a configured logrus logger: human-readable debug output in
// development, JSON at info level everywhere else.
func New(env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
