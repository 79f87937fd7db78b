package kafka

import (
	"context"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/sarama"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/segmentio"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
)

type Consumer interface {
	PartitionsFor(ctx context.Context, topicName string) ([]PartitionInfo, error)
	Assign(ctx context.Context, partitions []TopicPartition) error
	Poll(ctx context.Context) ([]*ConsumerRecord, error)
	Close() error
}

// NewConsumer consumes resolved exactly once; clusterConfig selects the client library.
func NewConsumer(clusterConfig *ClusterConfig, resolved ResolvedConfiguration, logger log.Logger) (Consumer, error) {
	switch clusterConfig.Library {
	case config.LibrarySegmentio:
		consumer, err := segmentio.NewConsumer(clusterConfig, resolved, logger)
		if err != nil {
			return nil, err
		}
		return consumer, nil
	default:
		consumer, err := sarama.NewConsumer(clusterConfig, resolved, logger)
		if err != nil {
			return nil, err
		}
		return consumer, nil
	}
}
