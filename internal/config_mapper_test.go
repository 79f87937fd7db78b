package internal

import (
	"testing"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
	"github.com/stretchr/testify/assert"
)

func newTestClientConfig(filters []*FilterDefinition) *ClientConfig {
	return &ClientConfig{
		TopicConfig: &TopicConfig{
			ClusterConfig: &ClusterConfig{Brokers: "localhost:9092", Version: "2.2.0"},
			DeserializerConfig: &DeserializerConfig{
				KeyDeserializer:   "string",
				ValueDeserializer: "json",
			},
			TopicName: "orders",
		},
		FilterConfig:           &FilterConfig{Filters: filters},
		ConsumerID:             "consumer-1",
		AutoCommit:             true,
		MaxResultsPerPartition: 500,
	}
}

func Test_BuildConsumerConfig_ShouldMapClientConfigWithoutFilters(t *testing.T) {
	// Given
	clientConfig := newTestClientConfig(nil)

	// When
	configuration := BuildConsumerConfig(clientConfig)

	// Then
	assert.Len(t, configuration, 6)
	assert.Equal(t, "consumer-1", configuration[kafka.ClientIDConfig])
	assert.Equal(t, "localhost:9092", configuration[kafka.BootstrapServersConfig])
	assert.Equal(t, "string", configuration[kafka.KeyDeserializerConfig])
	assert.Equal(t, "json", configuration[kafka.ValueDeserializerConfig])
	assert.Equal(t, true, configuration[kafka.EnableAutoCommitConfig])
	assert.Equal(t, 500, configuration[kafka.MaxPollRecordsConfig])
	assert.False(t, configuration.Has(kafka.InterceptorClassesConfig))
	assert.False(t, configuration.Has(RecordFilterConfigKey))
}

func Test_BuildConsumerConfig_ShouldAddInterceptorWhenFiltersExist(t *testing.T) {
	// Given
	f1, err := NewFilterDefinition(StringSearchFilter, map[string]string{"search": "order"})
	assert.Nil(t, err)
	filters := []*FilterDefinition{f1}
	clientConfig := newTestClientConfig(filters)

	// When
	configuration := BuildConsumerConfig(clientConfig)

	// Then
	assert.Len(t, configuration, 8)
	assert.Equal(t, RecordFilterInterceptorName, configuration[kafka.InterceptorClassesConfig])
	assert.Equal(t, filters, configuration[RecordFilterConfigKey])
	assert.Same(t, f1, configuration[RecordFilterConfigKey].([]*FilterDefinition)[0])
}

func Test_BuildConsumerConfig_ShouldOmitInterceptorWhenFilterConfigIsNil(t *testing.T) {
	// Given
	clientConfig := newTestClientConfig(nil)
	clientConfig.FilterConfig = nil

	// When
	configuration := BuildConsumerConfig(clientConfig)

	// Then
	assert.Len(t, configuration, 6)
}
