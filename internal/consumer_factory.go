package internal

import (
	"context"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
)

var kafkaNewConsumer = kafka.NewConsumer

type KafkaConsumerFactory struct {
	clientConfig *ClientConfig
}

func NewKafkaConsumerFactory(clientConfig *ClientConfig) *KafkaConsumerFactory {
	return &KafkaConsumerFactory{
		clientConfig: clientConfig,
	}
}

func (f *KafkaConsumerFactory) Create() (kafka.Consumer, error) {
	resolved := BuildConsumerConfig(f.clientConfig)
	return kafkaNewConsumer(mapToClusterConfig(f.clientConfig.TopicConfig.ClusterConfig), resolved, logger)
}

// CreateAndSubscribe creates a consumer assigned to every partition of the
// topic that the client config does not filter out. Client errors are
// returned unchanged.
func (f *KafkaConsumerFactory) CreateAndSubscribe(ctx context.Context) (kafka.Consumer, error) {
	consumer, err := f.Create()
	if err != nil {
		return nil, err
	}
	topicName := f.clientConfig.TopicConfig.TopicName
	partitionInfos, err := consumer.PartitionsFor(ctx, topicName)
	if err != nil {
		_ = consumer.Close()
		return nil, err
	}
	f.logUnknownPartitions(topicName, partitionInfos)
	topicPartitions := SelectPartitions(partitionInfos, f.clientConfig.IsPartitionFiltered)
	if err := consumer.Assign(ctx, topicPartitions); err != nil {
		_ = consumer.Close()
		return nil, err
	}
	logger.Infof("consumer %s assigned to %d of %d partitions, topic: %s", f.clientConfig.ConsumerID, len(topicPartitions), len(partitionInfos), topicName)
	return consumer, nil
}

// partition ids the topic does not have are ignored.
func (f *KafkaConsumerFactory) logUnknownPartitions(topicName string, partitionInfos []kafka.PartitionInfo) {
	known := make(map[int32]struct{}, len(partitionInfos))
	for _, partitionInfo := range partitionInfos {
		known[partitionInfo.Partition] = struct{}{}
	}
	for _, partitionID := range f.clientConfig.PartitionIDs {
		if _, exists := known[partitionID]; !exists {
			logger.Infof("partition %d does not exist and is ignored, topic: %s", partitionID, topicName)
		}
	}
}
