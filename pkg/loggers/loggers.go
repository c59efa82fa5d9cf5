package loggers

import (
	"github.com/sirupsen/logrus"
)

const (
	App      = "app"
	Storage  = "storage"
	Issuance = "issuance"
	CLI      = "cli"
)

var w = &LoggerWrapper{
	loggers: map[string]*logrus.Entry{
		App:      newWithModule(App),
		Storage:  newWithModule(Storage),
		Issuance: newWithModule(Issuance),
		CLI:      newWithModule(CLI),
	},
}

type LoggerWrapper struct {
	loggers map[string]*logrus.Entry
}

func newWithModule(name string) *logrus.Entry {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000",
	})
	return l.WithField("module", name)
}

// Initialize sets the level for every module logger. Unknown levels fall
// back to info.
func Initialize(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	for _, entry := range w.loggers {
		entry.Logger.SetLevel(lvl)
	}
}

func Logger(name string) logrus.FieldLogger {
	return w.loggers[name]
}
