package internal

import (
	"context"
	"errors"
	"testing"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_NewRecordFilterInterceptor_ThrowErrWhenDefinitionsAreMissing(t *testing.T) {
	// When
	interceptor, err := NewRecordFilterInterceptor(kafka.ResolvedConfiguration{})

	// Then
	assert.Nil(t, interceptor)
	assert.Equal(t, "'record.filter.definitions' must hold the record filter definitions", err.Error())
}

func Test_NewRecordFilterInterceptor_ShouldConfigureFilters(t *testing.T) {
	// Given
	filter := &stubFilter{include: true}
	options := map[string]string{"search": "x"}
	configuration := kafka.ResolvedConfiguration{
		RecordFilterConfigKey: []*FilterDefinition{{Name: "stub", Factory: stubFactory(filter), Options: options}},
	}

	// When
	_, err := NewRecordFilterInterceptor(configuration)

	// Then
	assert.Nil(t, err)
	assert.Equal(t, options, filter.configured)
}

func Test_NewRecordFilterInterceptor_ThrowErrWhenFilterConfigurationFails(t *testing.T) {
	// Given
	definition, _ := NewFilterDefinition(StringSearchFilter, nil)
	configuration := kafka.ResolvedConfiguration{RecordFilterConfigKey: []*FilterDefinition{definition}}

	// When
	interceptor, err := NewRecordFilterInterceptor(configuration)

	// Then
	assert.Nil(t, interceptor)
	assert.Equal(t, "record filter 'string-search' requires option 'search'", err.Error())
}

func Test_NewRecordFilterInterceptor_ShouldCloseConfiguredFiltersWhenLaterConfigurationFails(t *testing.T) {
	// Given
	configured := &stubFilter{include: true}
	failing := &stubFilter{configureErr: errors.New("configure failed")}
	configuration := kafka.ResolvedConfiguration{
		RecordFilterConfigKey: []*FilterDefinition{
			{Name: "configured", Factory: stubFactory(configured)},
			{Name: "failing", Factory: stubFactory(failing)},
		},
	}

	// When
	interceptor, err := NewRecordFilterInterceptor(configuration)

	// Then
	assert.Nil(t, interceptor)
	assert.EqualError(t, err, "configure failed")
	assert.True(t, configured.closed)
	assert.False(t, failing.closed)
}

func Test_NewRecordFilterInterceptor_ShouldNotShareFiltersBetweenInterceptors(t *testing.T) {
	// Given
	var created []*stubFilter
	definition := &FilterDefinition{Name: "stub", Factory: func() RecordFilter {
		filter := &stubFilter{include: true}
		created = append(created, filter)
		return filter
	}}
	configuration := kafka.ResolvedConfiguration{RecordFilterConfigKey: []*FilterDefinition{definition}}
	first, err := NewRecordFilterInterceptor(configuration)
	assert.Nil(t, err)
	_, err = NewRecordFilterInterceptor(configuration)
	assert.Nil(t, err)

	// When
	err = first.Close()

	// Then
	assert.Nil(t, err)
	assert.Len(t, created, 2)
	assert.True(t, created[0].closed)
	assert.False(t, created[1].closed)
}

func Test_RecordFilterInterceptor_ShouldKeepRecordsIncludedByEveryFilter(t *testing.T) {
	// Given
	search, _ := NewFilterDefinition(StringSearchFilter, map[string]string{"search": "paid"})
	key, _ := NewFilterDefinition(KeyEqualsFilter, map[string]string{"key": "1"})
	interceptor, err := NewRecordFilterInterceptor(kafka.ResolvedConfiguration{
		RecordFilterConfigKey: []*FilterDefinition{search, key},
	})
	assert.Nil(t, err)
	records := []*kafka.ConsumerRecord{
		{Topic: "interceptor-orders", Offset: 0, Key: "1", Value: "order paid"},
		{Topic: "interceptor-orders", Offset: 1, Key: "2", Value: "order paid"},
		{Topic: "interceptor-orders", Offset: 2, Key: "1", Value: "order created"},
	}

	// When
	included := interceptor.OnConsume(context.Background(), records)

	// Then
	assert.Len(t, included, 1)
	assert.Equal(t, int64(0), included[0].Offset)
	assert.Equal(t, float64(1), testutil.ToFloat64(FilteredRecords.WithLabelValues("interceptor-orders", recordIncluded)))
	assert.Equal(t, float64(2), testutil.ToFloat64(FilteredRecords.WithLabelValues("interceptor-orders", recordExcluded)))
}

func Test_RecordFilterInterceptor_ShouldExcludeRecordWhenFilterPanics(t *testing.T) {
	// Given
	interceptor, _ := NewRecordFilterInterceptor(kafka.ResolvedConfiguration{
		RecordFilterConfigKey: []*FilterDefinition{{Name: "panics", Factory: stubFactory(&stubFilter{panics: true})}},
	})

	// When
	included := interceptor.OnConsume(context.Background(), []*kafka.ConsumerRecord{{Topic: "orders"}})

	// Then
	assert.Empty(t, included)
}

func Test_RecordFilterInterceptor_ShouldCloseFilters(t *testing.T) {
	// Given
	filter := &stubFilter{include: true}
	interceptor, _ := NewRecordFilterInterceptor(kafka.ResolvedConfiguration{
		RecordFilterConfigKey: []*FilterDefinition{{Name: "stub", Factory: stubFactory(filter)}},
	})

	// When
	err := interceptor.Close()

	// Then
	assert.Nil(t, err)
	assert.True(t, filter.closed)
}

func stubFactory(filter *stubFilter) RecordFilterFactory {
	return func() RecordFilter { return filter }
}
