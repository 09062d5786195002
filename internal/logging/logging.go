package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the shared JSON logger used by the simulator.
func SetupLogging(level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: level,
	}

	return &logger
}
