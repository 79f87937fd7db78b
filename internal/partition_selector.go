package internal

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
)

// SelectPartitions returns, in input order, the partitions isExcluded does not reject.
func SelectPartitions(partitionInfos []kafka.PartitionInfo, isExcluded func(partition int32) bool) []kafka.TopicPartition {
	topicPartitions := make([]kafka.TopicPartition, 0, len(partitionInfos))
	for _, partitionInfo := range partitionInfos {
		if isExcluded(partitionInfo.Partition) {
			continue
		}
		topicPartitions = append(topicPartitions, kafka.TopicPartition{
			Topic:     partitionInfo.Topic,
			Partition: partitionInfo.Partition,
		})
	}
	return topicPartitions
}
