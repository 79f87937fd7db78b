package integration

import (
	"context"
	"sort"
	"testing"
	"time"

	consumerfactory "github.com/aykanferhat/go-kafka-consumer-factory"

	"gotest.tools/v3/assert"
)

func Test_ConsumerFactory_ShouldConsumeSelectedPartitions(t *testing.T) {
	for _, library := range []consumerfactory.Library{consumerfactory.LibrarySarama, consumerfactory.LibrarySegmentio} {
		t.Run(string(library), func(t *testing.T) {
			// Given
			ctx := context.Background()
			clusterConfigsMap := newClusterConfigMap(library)
			viewConfigs := consumerfactory.ViewConfigMap{
				viewName: {
					Cluster:      clusterName,
					Topic:        topic,
					PartitionIDs: []int32{0, 2},
				},
			}
			kafkaContainer := InitializeTestCluster(ctx, t, clusterConfigsMap)
			defer func() {
				_ = kafkaContainer.Terminate(ctx)
			}()
			produceToEachPartition(t, clusterConfigsMap[clusterName], map[int32]string{0: "message-0", 1: "message-1", 2: "message-2"})

			factory, err := consumerfactory.NewConsumerFactoryBuilder(clusterConfigsMap, viewConfigs).
				Log(consumerfactory.NewConsoleLogger(consumerfactory.INFO)).
				Build(viewName)
			assert.NilError(t, err)

			// When
			consumer, err := factory.CreateAndSubscribe(ctx)
			assert.NilError(t, err)
			defer consumer.Close()
			records := pollUntil(ctx, t, consumer, 2)

			// Then
			assert.Equal(t, len(records), 2)
			sort.Slice(records, func(i, j int) bool { return records[i].Partition < records[j].Partition })
			assert.Equal(t, records[0].Partition, int32(0))
			assert.Equal(t, records[0].Value, "message-0")
			assert.Equal(t, records[1].Partition, int32(2))
			assert.Equal(t, records[1].Value, "message-2")
		})
	}
}

func Test_ConsumerFactory_ShouldFilterRecords(t *testing.T) {
	// Given
	ctx := context.Background()
	clusterConfigsMap := newClusterConfigMap(consumerfactory.LibrarySarama)
	viewConfigs := consumerfactory.ViewConfigMap{
		viewName: {
			Cluster: clusterName,
			Topic:   topic,
			Filters: []*consumerfactory.FilterConfigItem{
				{Name: "string-search", Options: map[string]string{"search": "-1"}},
			},
		},
	}
	kafkaContainer := InitializeTestCluster(ctx, t, clusterConfigsMap)
	defer func() {
		_ = kafkaContainer.Terminate(ctx)
	}()
	produceToEachPartition(t, clusterConfigsMap[clusterName], map[int32]string{0: "message-0", 1: "message-1", 2: "message-2"})

	factory, err := consumerfactory.NewConsumerFactoryBuilder(clusterConfigsMap, viewConfigs).Build(viewName)
	assert.NilError(t, err)

	// When
	consumer, err := factory.CreateAndSubscribe(ctx)
	assert.NilError(t, err)
	defer consumer.Close()
	records := pollUntil(ctx, t, consumer, 1)

	// Then
	assert.Equal(t, len(records), 1)
	assert.Equal(t, records[0].Partition, int32(1))
	assert.Equal(t, records[0].Value, "message-1")

	pollCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	remaining, err := consumer.Poll(pollCtx)
	assert.NilError(t, err)
	assert.Equal(t, len(remaining), 0)
}

func Test_ConsumerFactory_ShouldReturnPartitionsOfTopic(t *testing.T) {
	// Given
	ctx := context.Background()
	clusterConfigsMap := newClusterConfigMap(consumerfactory.LibrarySarama)
	viewConfigs := consumerfactory.ViewConfigMap{
		viewName: {Cluster: clusterName, Topic: topic},
	}
	kafkaContainer := InitializeTestCluster(ctx, t, clusterConfigsMap)
	defer func() {
		_ = kafkaContainer.Terminate(ctx)
	}()
	factory, err := consumerfactory.NewConsumerFactoryBuilder(clusterConfigsMap, viewConfigs).Build(viewName)
	assert.NilError(t, err)

	// When
	consumer, err := factory.Create()
	assert.NilError(t, err)
	defer consumer.Close()
	partitionInfos, err := consumer.PartitionsFor(ctx, topic)

	// Then
	assert.NilError(t, err)
	assert.Equal(t, len(partitionInfos), int(totalPartition))
	for _, partitionInfo := range partitionInfos {
		assert.Equal(t, partitionInfo.Topic, topic)
	}

	admin, err := consumerfactory.NewAdmin(clusterConfigsMap, clusterName)
	assert.NilError(t, err)
	topics, err := admin.ListTopics()
	assert.NilError(t, err)
	assert.Assert(t, len(topics) > 0)
}
