package segmentio

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/interceptor"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/message"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/topic"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/scram"
)

type partitionReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	readPartitions func(ctx context.Context, topicName string) ([]kafka.Partition, error)
	newReader      func(readerConfig kafka.ReaderConfig) partitionReader
	dialer         *kafka.Dialer
	pipeline       *interceptor.Pipeline
	logger         log.Logger
	assignment     *assignment
	brokers        []string
	mu             sync.Mutex
	maxPollRecords int
	startOffset    int64
	autoCommit     bool
}

func NewConsumer(clusterConfig *config.ClusterConfig, resolved config.ResolvedConfiguration, logger log.Logger) (*Consumer, error) {
	clientID := resolved.GetString(config.ClientIDConfig)
	if len(clientID) == 0 {
		return nil, errors.New("client.id is empty in consumer config")
	}
	brokers := resolved.GetBrokers()
	if len(brokers) == 0 {
		return nil, errors.New("bootstrap.servers is empty in consumer config")
	}
	dialer, err := newDialer(clusterConfig, clientID)
	if err != nil {
		return nil, err
	}
	startOffset := kafka.FirstOffset
	if clusterConfig.OffsetInitial == config.OffsetNewest {
		startOffset = kafka.LastOffset
	}
	pipeline, err := interceptor.NewPipeline(resolved)
	if err != nil {
		return nil, err
	}
	c := &Consumer{
		dialer:         dialer,
		brokers:        brokers,
		pipeline:       pipeline,
		logger:         logger,
		maxPollRecords: resolved.GetInt(config.MaxPollRecordsConfig),
		startOffset:    startOffset,
		autoCommit:     resolved.GetBool(config.EnableAutoCommitConfig),
		newReader: func(readerConfig kafka.ReaderConfig) partitionReader {
			return kafka.NewReader(readerConfig)
		},
	}
	c.readPartitions = c.readPartitionsFromBrokers
	return c, nil
}

func newDialer(clusterConfig *config.ClusterConfig, clientID string) (*kafka.Dialer, error) {
	timeout := clusterConfig.DialTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	dialer := &kafka.Dialer{
		ClientID:  clientID,
		Timeout:   timeout,
		DualStack: true,
	}
	if clusterConfig.Auth == nil {
		return dialer, nil
	}
	mechanism, err := scram.Mechanism(scram.SHA512, clusterConfig.Auth.Username, clusterConfig.Auth.Password)
	if err != nil {
		return nil, err
	}
	caCertPool := x509.NewCertPool()
	for _, certificate := range clusterConfig.Auth.Certificates {
		caCert, err := os.ReadFile(certificate)
		if err != nil {
			return nil, err
		}
		caCertPool.AppendCertsFromPEM(caCert)
	}
	dialer.SASLMechanism = mechanism
	dialer.TLS = &tls.Config{RootCAs: caCertPool, MinVersion: tls.VersionTLS12}
	return dialer, nil
}

func (c *Consumer) readPartitionsFromBrokers(ctx context.Context, topicName string) ([]kafka.Partition, error) {
	var errs []error
	for _, broker := range c.brokers {
		conn, err := c.dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		partitions, err := conn.ReadPartitions(topicName)
		_ = conn.Close()
		if err != nil {
			return nil, err
		}
		return partitions, nil
	}
	return nil, errors.Join(errs...)
}

func (c *Consumer) PartitionsFor(ctx context.Context, topicName string) ([]topic.PartitionInfo, error) {
	partitions, err := c.readPartitions(ctx, topicName)
	if err != nil {
		return nil, err
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i].ID < partitions[j].ID })
	partitionInfos := make([]topic.PartitionInfo, 0, len(partitions))
	for _, partition := range partitions {
		partitionInfos = append(partitionInfos, topic.PartitionInfo{
			Topic:     partition.Topic,
			Partition: int32(partition.ID),
			Replicas:  brokerIDs(partition.Replicas),
			Isr:       brokerIDs(partition.Isr),
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
	if c.autoCommit {
		c.logger.Infof("enable.auto.commit is ignored for assigned partitions, client: %s", c.dialer.ClientID)
	}
	a := newAssignment(c.maxPollRecords)
	for _, tp := range topicPartitions {
		a.readers = append(a.readers, c.newReader(kafka.ReaderConfig{
			Brokers:     c.brokers,
			Topic:       tp.Topic,
			Partition:   int(tp.Partition),
			Dialer:      c.dialer,
			StartOffset: c.startOffset,
			MinBytes:    1,
			MaxBytes:    10e6,
			MaxWait:     1 * time.Second,
		}))
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
	return c.pipeline.Process(ctx, records)
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errors.Join(c.unassign(), c.pipeline.Close())
}

func (c *Consumer) unassign() error {
	if c.assignment == nil {
		return nil
	}
	err := c.assignment.close()
	c.assignment = nil
	return err
}

type assignment struct {
	ctx     context.Context
	cancel  context.CancelFunc
	records chan *message.ConsumerRecord
	readers []partitionReader
	wg      sync.WaitGroup
}

func newAssignment(bufferSize int) *assignment {
	if bufferSize < 1 {
		bufferSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &assignment{
		ctx:     ctx,
		cancel:  cancel,
		records: make(chan *message.ConsumerRecord, bufferSize),
	}
}

func (a *assignment) start(logger log.Logger) {
	for _, reader := range a.readers {
		a.wg.Add(1)
		go func(r partitionReader) {
			defer a.wg.Done()
			for {
				msg, err := r.ReadMessage(a.ctx)
				if err != nil {
					if a.ctx.Err() == nil && !errors.Is(err, io.EOF) {
						logger.Errorf("Error from partition reader, err: %s", err.Error())
					}
					return
				}
				select {
				case a.records <- toConsumerRecord(msg):
				case <-a.ctx.Done():
					return
				}
			}
		}(reader)
	}
}

func (a *assignment) close() error {
	a.cancel()
	var errs []error
	for _, reader := range a.readers {
		if err := reader.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing partition reader: %w", err))
		}
	}
	a.wg.Wait()
	return errors.Join(errs...)
}

func brokerIDs(brokers []kafka.Broker) []int32 {
	ids := make([]int32, 0, len(brokers))
	for _, broker := range brokers {
		ids = append(ids, int32(broker.ID))
	}
	return ids
}

func toConsumerRecord(msg kafka.Message) *message.ConsumerRecord {
	headers := make([]message.Header, 0, len(msg.Headers))
	for _, hdr := range msg.Headers {
		headers = append(headers, message.Header{Key: []byte(hdr.Key), Value: hdr.Value})
	}
	return &message.ConsumerRecord{
		Headers:   headers,
		Timestamp: msg.Time,
		RawKey:    msg.Key,
		RawValue:  msg.Value,
		Topic:     msg.Topic,
		Partition: int32(msg.Partition),
		Offset:    msg.Offset,
	}
}
