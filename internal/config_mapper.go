package internal

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
)

// BuildConsumerConfig maps clientConfig onto the flat consumer configuration.
// Interceptor keys are present only when at least one filter is configured.
func BuildConsumerConfig(clientConfig *ClientConfig) kafka.ResolvedConfiguration {
	topicConfig := clientConfig.TopicConfig
	configMap := kafka.ResolvedConfiguration{
		kafka.ClientIDConfig:          clientConfig.ConsumerID,
		kafka.BootstrapServersConfig:  topicConfig.ClusterConfig.Brokers,
		kafka.KeyDeserializerConfig:   topicConfig.DeserializerConfig.KeyDeserializer,
		kafka.ValueDeserializerConfig: topicConfig.DeserializerConfig.ValueDeserializer,
		kafka.EnableAutoCommitConfig:  clientConfig.AutoCommit,
		kafka.MaxPollRecordsConfig:    clientConfig.MaxResultsPerPartition,
	}
	if filters := clientConfig.GetFilters(); len(filters) > 0 {
		configMap[kafka.InterceptorClassesConfig] = RecordFilterInterceptorName
		configMap[RecordFilterConfigKey] = filters
	}
	return configMap
}
