package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

const EnvLogLevel = "LOG_LEVEL"

func CreateLogger(serviceName string) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	if val, ok := os.LookupEnv(EnvLogLevel); ok {
		if level, err := logrus.ParseLevel(val); err == nil {
			l.SetLevel(level)
		} else {
			l.WithError(err).Warnf("Unknown log level [%s], using [%s].", val, l.GetLevel().String())
		}
	}
	return l.WithField("service", serviceName)
}
