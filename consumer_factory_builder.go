package consumerfactory

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/internal"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
)

type (
	Consumer              = kafka.Consumer
	ConsumerRecord        = kafka.ConsumerRecord
	Header                = kafka.Header
	PartitionInfo         = kafka.PartitionInfo
	TopicPartition        = kafka.TopicPartition
	ResolvedConfiguration = kafka.ResolvedConfiguration
	ConsumerInterceptor   = kafka.ConsumerInterceptor
	InterceptorFactory    = kafka.InterceptorFactory
	Deserializer          = kafka.Deserializer
	DeserializerFunc      = kafka.DeserializerFunc
	RecordFilter          = internal.RecordFilter
	RecordFilterFactory   = internal.RecordFilterFactory
	ClientConfig          = internal.ClientConfig
	KafkaConsumerFactory  = internal.KafkaConsumerFactory
)

var ErrNotAssigned = kafka.ErrNotAssigned

type ConsumerFactoryBuilder struct {
	clusterConfigMap ClusterConfigMap
	viewConfigMap    ViewConfigMap
}

func NewConsumerFactoryBuilder(clusterConfigMap ClusterConfigMap, viewConfigMap ViewConfigMap) *ConsumerFactoryBuilder {
	return &ConsumerFactoryBuilder{
		clusterConfigMap: clusterConfigMap,
		viewConfigMap:    viewConfigMap,
	}
}

func (b *ConsumerFactoryBuilder) Log(l Logger) *ConsumerFactoryBuilder {
	internal.SetLogger(l)
	return b
}

// Filter makes a record filter available to view configs under name.
func (b *ConsumerFactoryBuilder) Filter(name string, factory RecordFilterFactory) *ConsumerFactoryBuilder {
	internal.RegisterRecordFilter(name, factory)
	return b
}

func (b *ConsumerFactoryBuilder) Deserializer(name string, deserializer Deserializer) *ConsumerFactoryBuilder {
	kafka.RegisterDeserializer(name, deserializer)
	return b
}

func (b *ConsumerFactoryBuilder) Interceptor(name string, factory InterceptorFactory) *ConsumerFactoryBuilder {
	kafka.RegisterInterceptor(name, factory)
	return b
}

// Build returns a factory for the named view. When partitionIDs is given it
// replaces the partition ids of the view config.
func (b *ConsumerFactoryBuilder) Build(viewName string, partitionIDs ...int32) (*KafkaConsumerFactory, error) {
	viewConfig, err := b.viewConfigMap.GetConfigWithDefault(viewName)
	if err != nil {
		return nil, err
	}
	clusterConfig, err := b.clusterConfigMap.GetConfigWithDefault(viewConfig.Cluster)
	if err != nil {
		return nil, err
	}
	clientConfig, err := internal.NewClientConfig(clusterConfig, viewConfig, partitionIDs...)
	if err != nil {
		return nil, err
	}
	return internal.NewKafkaConsumerFactory(clientConfig), nil
}
