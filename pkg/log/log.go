package log

const (
	DEBUG string = "DEBUG"
	INFO  string = "INFO"
	ERROR string = "ERROR"
)

// Logger is shared by the consumer factory and the client backends. Print,
// Printf and Println let it stand in as sarama.Logger.
type Logger interface {
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
	Print(v ...any)
	Printf(format string, v ...any)
	Println(v ...any)
	Lvl() string
}
