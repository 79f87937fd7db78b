package internal

import (
	"context"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
)

const (
	RecordFilterInterceptorName = "RecordFilterInterceptor"
	RecordFilterConfigKey       = "record.filter.definitions"
)

func init() {
	kafka.RegisterInterceptor(RecordFilterInterceptorName, NewRecordFilterInterceptor)
}

// RecordFilterInterceptor keeps a record only when every configured filter
// includes it.
type RecordFilterInterceptor struct {
	filters []configuredFilter
}

type configuredFilter struct {
	filter RecordFilter
	name   string
}

func NewRecordFilterInterceptor(configuration kafka.ResolvedConfiguration) (kafka.ConsumerInterceptor, error) {
	definitions, ok := configuration[RecordFilterConfigKey].([]*FilterDefinition)
	if !ok {
		return nil, NewErrWithArgs("'%s' must hold the record filter definitions", RecordFilterConfigKey)
	}
	interceptor := &RecordFilterInterceptor{filters: make([]configuredFilter, 0, len(definitions))}
	for _, definition := range definitions {
		filter := definition.Factory()
		if err := filter.Configure(definition.Options); err != nil {
			_ = interceptor.Close()
			return nil, err
		}
		interceptor.filters = append(interceptor.filters, configuredFilter{filter: filter, name: definition.Name})
	}
	return interceptor, nil
}

func (r *RecordFilterInterceptor) OnConsume(_ context.Context, records []*kafka.ConsumerRecord) []*kafka.ConsumerRecord {
	included := make([]*kafka.ConsumerRecord, 0, len(records))
	for _, record := range records {
		if r.include(record) {
			FilteredRecords.WithLabelValues(record.Topic, recordIncluded).Inc()
			included = append(included, record)
			continue
		}
		FilteredRecords.WithLabelValues(record.Topic, recordExcluded).Inc()
	}
	return included
}

func (r *RecordFilterInterceptor) include(record *kafka.ConsumerRecord) bool {
	for _, filter := range r.filters {
		if !includeRecord(filter, record) {
			return false
		}
	}
	return true
}

// includeRecord excludes the record when the filter panics.
func includeRecord(filter configuredFilter, record *kafka.ConsumerRecord) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("record filter %s failed, topic: %s, partition: %d, offset: %d, err: %v", filter.name, record.Topic, record.Partition, record.Offset, r)
			result = false
		}
	}()
	return filter.filter.IncludeRecord(record.Topic, record.Partition, record.Offset, record.Key, record.Value)
}

func (r *RecordFilterInterceptor) Close() error {
	for _, filter := range r.filters {
		filter.filter.Close()
	}
	return nil
}
