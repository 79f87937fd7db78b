package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	consumerfactory "github.com/aykanferhat/go-kafka-consumer-factory"

	"github.com/IBM/sarama"

	"github.com/testcontainers/testcontainers-go"
	containerKafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"gotest.tools/v3/assert"
)

const (
	clusterName    = "cluster"
	viewName       = "view"
	topic          = "message.topic.0"
	totalPartition = int32(3)
)

func InitializeTestCluster(ctx context.Context, t *testing.T, clusterConfigsMap consumerfactory.ClusterConfigMap) *containerKafka.KafkaContainer {
	kafkaContainer, err := containerKafka.RunContainer(ctx,
		containerKafka.WithClusterID("test-cluster"),
		testcontainers.WithImage("confluentinc/confluent-local:7.5.0"),
	)
	assert.NilError(t, err)
	brokers, err := kafkaContainer.Brokers(ctx)
	assert.NilError(t, err)
	for _, clusterConfig := range clusterConfigsMap {
		clusterConfig.Brokers = strings.Join(brokers, ",")
	}
	admin, err := consumerfactory.NewAdmin(clusterConfigsMap, clusterName)
	assert.NilError(t, err)
	assert.NilError(t, admin.CreateTopic(topic, totalPartition))
	time.Sleep(2 * time.Second) // After creating a topic, wait for synchronization.
	return kafkaContainer
}

// produceToEachPartition sends one record per partition, the value is the given
// prefix followed by the partition id.
func produceToEachPartition(t *testing.T, clusterConfig *consumerfactory.ClusterConfig, values map[int32]string) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Partitioner = sarama.NewManualPartitioner
	producer, err := sarama.NewSyncProducer(clusterConfig.GetBrokers(), config)
	assert.NilError(t, err)
	defer producer.Close()
	for partition, value := range values {
		_, _, err := producer.SendMessage(&sarama.ProducerMessage{
			Topic:     topic,
			Partition: partition,
			Key:       sarama.StringEncoder(value),
			Value:     sarama.StringEncoder(value),
		})
		assert.NilError(t, err)
	}
}

// pollUntil polls until count records arrived or the timeout elapses.
func pollUntil(ctx context.Context, t *testing.T, consumer consumerfactory.Consumer, count int) []*consumerfactory.ConsumerRecord {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	var records []*consumerfactory.ConsumerRecord
	for len(records) < count && ctx.Err() == nil {
		polled, err := consumer.Poll(ctx)
		assert.NilError(t, err)
		records = append(records, polled...)
	}
	return records
}

func newClusterConfigMap(library consumerfactory.Library) consumerfactory.ClusterConfigMap {
	return consumerfactory.ClusterConfigMap{
		clusterName: {
			Brokers: "", // dynamic
			Version: "2.2.0",
			Library: library,
		},
	}
}
