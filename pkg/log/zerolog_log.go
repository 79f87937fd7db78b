package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologLog writes structured json lines, tagging sarama output with
// component=sarama.
type ZerologLog struct {
	logger zerolog.Logger
	level  string
}

func NewZerologLog(w io.Writer, level string) *ZerologLog {
	return &ZerologLog{
		level:  level,
		logger: zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Str("logger", "kafka-consumer-factory").Logger(),
	}
}

func (z *ZerologLog) Infof(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

func (z *ZerologLog) Debugf(format string, args ...any) {
	z.logger.Debug().Msgf(format, args...)
}

func (z *ZerologLog) Errorf(format string, args ...any) {
	z.logger.Error().Msgf(format, args...)
}

func (z *ZerologLog) Print(v ...any) {
	z.sarama().Msg(fmt.Sprint(v...))
}

func (z *ZerologLog) Printf(format string, v ...any) {
	z.sarama().Msgf(format, v...)
}

func (z *ZerologLog) Println(v ...any) {
	z.sarama().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (z *ZerologLog) Lvl() string {
	return z.level
}

func (z *ZerologLog) sarama() *zerolog.Event {
	return z.logger.Debug().Str("component", "sarama")
}

func toZerologLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return zerolog.DebugLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
