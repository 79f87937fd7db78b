package internal

import (
	"testing"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
	"github.com/stretchr/testify/assert"
)

func partitionInfos(topicName string, partitions ...int32) []kafka.PartitionInfo {
	infos := make([]kafka.PartitionInfo, 0, len(partitions))
	for _, partition := range partitions {
		infos = append(infos, kafka.PartitionInfo{Topic: topicName, Partition: partition})
	}
	return infos
}

func Test_SelectPartitions_ShouldExcludeFilteredPartitions(t *testing.T) {
	// Given
	infos := partitionInfos("orders", 0, 1, 2, 3)
	isOdd := func(partition int32) bool { return partition%2 == 1 }

	// When
	topicPartitions := SelectPartitions(infos, isOdd)

	// Then
	assert.Equal(t, []kafka.TopicPartition{
		{Topic: "orders", Partition: 0},
		{Topic: "orders", Partition: 2},
	}, topicPartitions)
}

func Test_SelectPartitions_ShouldReturnEmptyForEmptyInput(t *testing.T) {
	// When
	topicPartitions := SelectPartitions(nil, func(int32) bool { return false })

	// Then
	assert.NotNil(t, topicPartitions)
	assert.Empty(t, topicPartitions)
}

func Test_SelectPartitions_ShouldPreserveInputOrder(t *testing.T) {
	// Given
	infos := partitionInfos("orders", 3, 0, 2, 1)

	// When
	topicPartitions := SelectPartitions(infos, func(int32) bool { return false })

	// Then
	assert.Len(t, topicPartitions, 4)
	for i, topicPartition := range topicPartitions {
		assert.Equal(t, infos[i].Partition, topicPartition.Partition)
		assert.Equal(t, "orders", topicPartition.Topic)
	}
}

func Test_SelectPartitions_ShouldReturnEmptyWhenEverythingIsExcluded(t *testing.T) {
	// When
	topicPartitions := SelectPartitions(partitionInfos("orders", 0, 1), func(int32) bool { return true })

	// Then
	assert.Empty(t, topicPartitions)
}
