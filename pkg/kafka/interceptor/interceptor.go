package interceptor

import (
	"context"
	"fmt"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/csmap"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/message"
)

// ConsumerInterceptor sees every polled batch after deserialization and may
// drop or replace records.
type ConsumerInterceptor interface {
	OnConsume(ctx context.Context, records []*message.ConsumerRecord) []*message.ConsumerRecord
	Close() error
}

// Factory builds an interceptor from the resolved consumer configuration.
type Factory func(configuration config.ResolvedConfiguration) (ConsumerInterceptor, error)

var factories = csmap.Create[string, Factory](4)

func Register(name string, factory Factory) {
	factories.Store(name, factory)
}

func New(name string, configuration config.ResolvedConfiguration) (ConsumerInterceptor, error) {
	factory, exists := factories.Load(name)
	if !exists {
		return nil, fmt.Errorf("interceptor not found: %s", name)
	}
	return factory(configuration)
}
