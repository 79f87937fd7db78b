package log

import (
	"fmt"
	goLog "log"
	"os"
)

type ConsoleLog struct {
	saramaLog  *goLog.Logger
	factoryLog *goLog.Logger
	level      string
}

func NewConsoleLog(level string) *ConsoleLog {
	return &ConsoleLog{
		level:      level,
		saramaLog:  goLog.New(os.Stdout, "[Sarama] ", goLog.LstdFlags),
		factoryLog: goLog.New(os.Stdout, "[KafkaConsumerFactory] ", goLog.LstdFlags),
	}
}

func (c *ConsoleLog) Infof(format string, args ...any) {
	if c.level == ERROR {
		return
	}
	c.factoryLog.Print(fmt.Sprintf(format, args...))
}

func (c *ConsoleLog) Debugf(format string, args ...any) {
	if c.level != DEBUG {
		return
	}
	c.factoryLog.Print(fmt.Sprintf(format, args...))
}

func (c *ConsoleLog) Errorf(format string, args ...any) {
	c.factoryLog.Print(fmt.Sprintf(format, args...))
}

func (c *ConsoleLog) Print(v ...any) {
	c.saramaLog.Print(v...)
}

func (c *ConsoleLog) Printf(format string, v ...any) {
	c.saramaLog.Printf(format, v...)
}

func (c *ConsoleLog) Println(v ...any) {
	c.saramaLog.Println(v...)
}

func (c *ConsoleLog) Lvl() string {
	return c.level
}
