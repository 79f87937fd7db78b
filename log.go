package consumerfactory

import (
	"io"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
)

const (
	DEBUG = log.DEBUG
	INFO  = log.INFO
	ERROR = log.ERROR
)

type Logger interface {
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
	Lvl() string
	// Print for sarama logger
	Print(v ...any)
	// Printf for sarama logger
	Printf(format string, v ...any)
	// Println for sarama logger
	Println(v ...any)
}

func NewConsoleLogger(level string) Logger {
	return log.NewConsoleLog(level)
}

// NewZerologLogger writes structured json lines to w.
func NewZerologLogger(w io.Writer, level string) Logger {
	return log.NewZerologLog(w, level)
}
