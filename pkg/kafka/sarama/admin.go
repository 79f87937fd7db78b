package sarama

import (
	"errors"
	"sort"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
)

const adminClientID = "kafka-consumer-factory-admin"

type Admin struct {
	clusterConfig *config.ClusterConfig
	logger        log.Logger
	brokers       []string
}

func NewAdmin(brokers []string, clusterConfig *config.ClusterConfig, logger log.Logger) *Admin {
	return &Admin{
		brokers:       brokers,
		clusterConfig: clusterConfig,
		logger:        logger,
	}
}

func (a *Admin) CreateTopic(topicName string, partition int32) error {
	clusterAdmin, err := a.clusterAdmin()
	if err != nil {
		return err
	}
	if err := clusterAdmin.CreateTopic(topicName, &sarama.TopicDetail{NumPartitions: partition, ReplicationFactor: 1}, false); err != nil {
		var topicError *sarama.TopicError
		if !errors.As(err, &topicError) || topicError.Err != sarama.ErrTopicAlreadyExists {
			_ = clusterAdmin.Close()
			return err
		}
	}
	return clusterAdmin.Close()
}

func (a *Admin) ListTopics() ([]string, error) {
	clusterAdmin, err := a.clusterAdmin()
	if err != nil {
		return nil, err
	}
	topicDetails, err := clusterAdmin.ListTopics()
	if err != nil {
		_ = clusterAdmin.Close()
		return nil, err
	}
	topics := make([]string, 0, len(topicDetails))
	for name := range topicDetails {
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, clusterAdmin.Close()
}

func (a *Admin) clusterAdmin() (sarama.ClusterAdmin, error) {
	saramaConfig, err := newBaseConfig(a.clusterConfig, adminClientID, a.logger)
	if err != nil {
		return nil, err
	}
	return sarama.NewClusterAdmin(a.brokers, saramaConfig)
}
