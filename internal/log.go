package internal

import "github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"

type Logger = log.Logger

var logger Logger = log.NewConsoleLog(log.ERROR)

func SetLogger(l Logger) {
	logger = l
}
