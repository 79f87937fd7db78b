package interceptor

import (
	"context"
	"errors"
	"fmt"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/message"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/serde"
)

// Pipeline deserializes raw records and runs them through the configured
// interceptors, in the order they are listed in interceptor.classes.
type Pipeline struct {
	keyDeserializer   serde.Deserializer
	valueDeserializer serde.Deserializer
	interceptors      []ConsumerInterceptor
}

func NewPipeline(configuration config.ResolvedConfiguration) (*Pipeline, error) {
	keyDeserializer, err := serde.Get(configuration.GetString(config.KeyDeserializerConfig))
	if err != nil {
		return nil, err
	}
	valueDeserializer, err := serde.Get(configuration.GetString(config.ValueDeserializerConfig))
	if err != nil {
		return nil, err
	}
	names := configuration.GetInterceptorNames()
	interceptors := make([]ConsumerInterceptor, 0, len(names))
	for _, name := range names {
		consumerInterceptor, err := New(name, configuration)
		if err != nil {
			for _, created := range interceptors {
				_ = created.Close()
			}
			return nil, err
		}
		interceptors = append(interceptors, consumerInterceptor)
	}
	return &Pipeline{
		keyDeserializer:   keyDeserializer,
		valueDeserializer: valueDeserializer,
		interceptors:      interceptors,
	}, nil
}

// Process returns every record that could be deserialized, even when others
// in the batch fail. The failures are joined into the returned error.
func (p *Pipeline) Process(ctx context.Context, records []*message.ConsumerRecord) ([]*message.ConsumerRecord, error) {
	deserialized := make([]*message.ConsumerRecord, 0, len(records))
	var errs []error
	for _, record := range records {
		if err := p.deserialize(record); err != nil {
			errs = append(errs, fmt.Errorf("topic: %s, partition: %d, offset: %d: %w", record.Topic, record.Partition, record.Offset, err))
			continue
		}
		deserialized = append(deserialized, record)
	}
	for _, consumerInterceptor := range p.interceptors {
		deserialized = consumerInterceptor.OnConsume(ctx, deserialized)
	}
	return deserialized, errors.Join(errs...)
}

func (p *Pipeline) deserialize(record *message.ConsumerRecord) error {
	key, err := p.keyDeserializer.Deserialize(record.Topic, record.RawKey)
	if err != nil {
		return err
	}
	value, err := p.valueDeserializer.Deserialize(record.Topic, record.RawValue)
	if err != nil {
		return err
	}
	record.Key = key
	record.Value = value
	return nil
}

func (p *Pipeline) Close() error {
	var errs []error
	for _, consumerInterceptor := range p.interceptors {
		if err := consumerInterceptor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
