package kafka

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/message"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/topic"
)

type (
	ConsumerRecord = message.ConsumerRecord
	Header         = message.Header
	PartitionInfo  = topic.PartitionInfo
	TopicPartition = topic.TopicPartition
)

var ErrNotAssigned = topic.ErrNotAssigned
