package topic

import "errors"

var ErrNotAssigned = errors.New("consumer is not assigned to any partitions")

// PartitionInfo describes a partition as reported by cluster metadata.
type PartitionInfo struct {
	Topic     string
	Replicas  []int32
	Isr       []int32
	Partition int32
}

// TopicPartition identifies a partition to be assigned to a consumer.
type TopicPartition struct {
	Topic     string
	Partition int32
}

func NewTopicPartition(topic string, partition int32) TopicPartition {
	return TopicPartition{Topic: topic, Partition: partition}
}
