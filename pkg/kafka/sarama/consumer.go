package sarama

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/interceptor"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/message"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/topic"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
)

type metadataClient interface {
	Replicas(topic string, partitionID int32) ([]int32, error)
	InSyncReplicas(topic string, partitionID int32) ([]int32, error)
	Close() error
}

type Consumer struct {
	client         metadataClient
	consumer       sarama.Consumer
	offsetManager  sarama.OffsetManager
	pipeline       *interceptor.Pipeline
	logger         log.Logger
	assignment     *assignment
	mu             sync.Mutex
	maxPollRecords int
	offsetInitial  int64
}

func NewConsumer(clusterConfig *config.ClusterConfig, resolved config.ResolvedConfiguration, logger log.Logger) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(clusterConfig, resolved, logger)
	if err != nil {
		return nil, err
	}
	pipeline, err := interceptor.NewPipeline(resolved)
	if err != nil {
		return nil, err
	}
	client, err := sarama.NewClient(resolved.GetBrokers(), saramaConfig)
	if err != nil {
		_ = pipeline.Close()
		return nil, err
	}
	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		_ = pipeline.Close()
		_ = client.Close()
		return nil, err
	}
	var offsetManager sarama.OffsetManager
	if saramaConfig.Consumer.Offsets.AutoCommit.Enable {
		// assigned partitions have no group; offsets are committed under the client id.
		offsetManager, err = sarama.NewOffsetManagerFromClient(saramaConfig.ClientID, client)
		if err != nil {
			_ = pipeline.Close()
			_ = client.Close()
			return nil, err
		}
	}
	return newConsumer(client, consumer, offsetManager, pipeline, resolved.GetInt(config.MaxPollRecordsConfig), saramaConfig.Consumer.Offsets.Initial, logger), nil
}

func newConsumer(
	client metadataClient,
	consumer sarama.Consumer,
	offsetManager sarama.OffsetManager,
	pipeline *interceptor.Pipeline,
	maxPollRecords int,
	offsetInitial int64,
	logger log.Logger,
) *Consumer {
	return &Consumer{
		client:         client,
		consumer:       consumer,
		offsetManager:  offsetManager,
		pipeline:       pipeline,
		maxPollRecords: maxPollRecords,
		offsetInitial:  offsetInitial,
		logger:         logger,
	}
}

func (c *Consumer) PartitionsFor(_ context.Context, topicName string) ([]topic.PartitionInfo, error) {
	partitions, err := c.consumer.Partitions(topicName)
	if err != nil {
		return nil, err
	}
	partitionInfos := make([]topic.PartitionInfo, 0, len(partitions))
	for _, partition := range partitions {
		replicas, err := c.client.Replicas(topicName, partition)
		if err != nil {
			return nil, err
		}
		isr, err := c.client.InSyncReplicas(topicName, partition)
		if err != nil {
			return nil, err
		}
		partitionInfos = append(partitionInfos, topic.PartitionInfo{
			Topic:     topicName,
			Partition: partition,
			Replicas:  replicas,
			Isr:       isr,
		})
	}
	return partitionInfos, nil
}

// Assign replaces the current assignment.
func (c *Consumer) Assign(_ context.Context, topicPartitions []topic.TopicPartition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.unassign(); err != nil {
		return err
	}
	a := newAssignment(c.maxPollRecords)
	for _, tp := range topicPartitions {
		offset, partitionOffsetManager, err := c.startingOffset(tp)
		if err != nil {
			_ = a.close()
			return err
		}
		partitionConsumer, err := c.consumer.ConsumePartition(tp.Topic, tp.Partition, offset)
		if err != nil {
			if partitionOffsetManager != nil {
				_ = partitionOffsetManager.Close()
			}
			_ = a.close()
			return err
		}
		a.add(tp, partitionConsumer, partitionOffsetManager)
	}
	a.start(c.logger)
	c.assignment = a
	c.logger.Debugf("assigned partitions: %v", topicPartitions)
	return nil
}

func (c *Consumer) Poll(ctx context.Context) ([]*message.ConsumerRecord, error) {
	c.mu.Lock()
	a := c.assignment
	c.mu.Unlock()
	if a == nil {
		return nil, topic.ErrNotAssigned
	}
	records := message.Collect(ctx, a.records, c.maxPollRecords)
	processed, err := c.pipeline.Process(ctx, records)
	if err != nil {
		return processed, err
	}
	// filtered records are marked too, they were consumed.
	a.markOffsets(records)
	return processed, nil
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	if err := c.unassign(); err != nil {
		errs = append(errs, err)
	}
	if err := c.pipeline.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.offsetManager != nil {
		if err := c.offsetManager.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	// the consumer was created from the client, closing the client releases it.
	if err := c.client.Close(); err != nil && !strings.EqualFold(err.Error(), clientClosedErr) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var clientClosedErr = sarama.ErrClosedClient.Error()

func (c *Consumer) unassign() error {
	if c.assignment == nil {
		return nil
	}
	err := c.assignment.close()
	c.assignment = nil
	return err
}

func (c *Consumer) startingOffset(tp topic.TopicPartition) (int64, sarama.PartitionOffsetManager, error) {
	if c.offsetManager == nil {
		return c.offsetInitial, nil, nil
	}
	partitionOffsetManager, err := c.offsetManager.ManagePartition(tp.Topic, tp.Partition)
	if err != nil {
		return 0, nil, err
	}
	offset, _ := partitionOffsetManager.NextOffset()
	return offset, partitionOffsetManager, nil
}

type assignment struct {
	records            chan *message.ConsumerRecord
	stop               chan struct{}
	offsetManagers     map[topic.TopicPartition]sarama.PartitionOffsetManager
	partitionConsumers []sarama.PartitionConsumer
	wg                 sync.WaitGroup
}

func newAssignment(bufferSize int) *assignment {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &assignment{
		records:        make(chan *message.ConsumerRecord, bufferSize),
		stop:           make(chan struct{}),
		offsetManagers: make(map[topic.TopicPartition]sarama.PartitionOffsetManager),
	}
}

func (a *assignment) add(tp topic.TopicPartition, partitionConsumer sarama.PartitionConsumer, partitionOffsetManager sarama.PartitionOffsetManager) {
	a.partitionConsumers = append(a.partitionConsumers, partitionConsumer)
	if partitionOffsetManager != nil {
		a.offsetManagers[tp] = partitionOffsetManager
	}
}

func (a *assignment) start(logger log.Logger) {
	for _, partitionConsumer := range a.partitionConsumers {
		a.wg.Add(2)
		go func(pc sarama.PartitionConsumer) {
			defer a.wg.Done()
			for msg := range pc.Messages() {
				select {
				case a.records <- toConsumerRecord(msg):
				case <-a.stop:
					return
				}
			}
		}(partitionConsumer)
		go func(pc sarama.PartitionConsumer) {
			defer a.wg.Done()
			for err := range pc.Errors() {
				logger.Errorf("Error from partition consumer, topic: %s, partition: %d, err: %s", err.Topic, err.Partition, err.Err.Error())
			}
		}(partitionConsumer)
	}
}

func (a *assignment) markOffsets(records []*message.ConsumerRecord) {
	if len(a.offsetManagers) == 0 {
		return
	}
	for _, record := range records {
		if partitionOffsetManager, exists := a.offsetManagers[topic.NewTopicPartition(record.Topic, record.Partition)]; exists {
			partitionOffsetManager.MarkOffset(record.Offset+1, "")
		}
	}
}

func (a *assignment) close() error {
	close(a.stop)
	var errs []error
	for _, partitionConsumer := range a.partitionConsumers {
		if err := partitionConsumer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, partitionOffsetManager := range a.offsetManagers {
		if err := partitionOffsetManager.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.wg.Wait()
	return errors.Join(errs...)
}

func toConsumerRecord(msg *sarama.ConsumerMessage) *message.ConsumerRecord {
	headers := make([]message.Header, 0, len(msg.Headers))
	for _, hdr := range msg.Headers {
		headers = append(headers, message.Header{Key: hdr.Key, Value: hdr.Value})
	}
	return &message.ConsumerRecord{
		Headers:   headers,
		Timestamp: msg.Timestamp,
		RawKey:    msg.Key,
		RawValue:  msg.Value,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}
}
