package message

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name     string
		buffered int
		max      int
		expected int
	}{
		{name: "Drains available records", buffered: 3, max: 10, expected: 3},
		{name: "Stops at max", buffered: 10, max: 4, expected: 4},
		{name: "Non positive max reads one", buffered: 2, max: 0, expected: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make(chan *ConsumerRecord, tt.buffered)
			for i := 0; i < tt.buffered; i++ {
				records <- &ConsumerRecord{Offset: int64(i)}
			}

			result := Collect(context.Background(), records, tt.max)

			assert.Len(t, result, tt.expected)
			for i, record := range result {
				assert.Equal(t, int64(i), record.Offset)
			}
		})
	}
}

func TestCollect_ReturnsEmptyWhenContextDone(t *testing.T) {
	// Given
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	records := make(chan *ConsumerRecord)

	// When
	result := Collect(ctx, records, 5)

	// Then
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCollect_ReturnsWhenChannelClosed(t *testing.T) {
	// Given
	records := make(chan *ConsumerRecord, 1)
	records <- &ConsumerRecord{Offset: 7}
	close(records)

	// When
	result := Collect(context.Background(), records, 5)

	// Then
	assert.Len(t, result, 1)
	assert.Equal(t, int64(7), result[0].Offset)
}
