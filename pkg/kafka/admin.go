package kafka

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/sarama"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
)

type Admin interface {
	CreateTopic(topicName string, partition int32) error
	ListTopics() ([]string, error)
}

func NewAdmin(brokers []string, clusterConfig *ClusterConfig, logger log.Logger) Admin {
	// admin operations always go through sarama, whatever library consumes.
	return sarama.NewAdmin(brokers, clusterConfig, logger)
}
