package kafka

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/interceptor"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/serde"
)

type (
	ConsumerInterceptor = interceptor.ConsumerInterceptor
	InterceptorFactory  = interceptor.Factory
	Deserializer        = serde.Deserializer
	DeserializerFunc    = serde.DeserializerFunc
)

func RegisterInterceptor(name string, factory InterceptorFactory) {
	interceptor.Register(name, factory)
}

func RegisterDeserializer(name string, deserializer Deserializer) {
	serde.Register(name, deserializer)
}
