package sarama

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/log"
)

const defaultVersion = "2.2.0"

func NewSaramaConfig(clusterConfig *config.ClusterConfig, resolved config.ResolvedConfiguration, logger log.Logger) (*sarama.Config, error) {
	clientID := resolved.GetString(config.ClientIDConfig)
	if len(clientID) == 0 {
		return nil, errors.New("client.id is empty in consumer config")
	}
	saramaConfig, err := newBaseConfig(clusterConfig, clientID, logger)
	if err != nil {
		return nil, err
	}
	offsetInitial, err := getSaramaOffsetInitial(clusterConfig.OffsetInitial)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = offsetInitial
	saramaConfig.Consumer.MaxProcessingTime = 1 * time.Second
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = resolved.GetBool(config.EnableAutoCommitConfig)
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
	if maxPollRecords := resolved.GetInt(config.MaxPollRecordsConfig); maxPollRecords > saramaConfig.ChannelBufferSize {
		saramaConfig.ChannelBufferSize = maxPollRecords
	}
	return saramaConfig, nil
}

func newBaseConfig(clusterConfig *config.ClusterConfig, clientID string, logger log.Logger) (*sarama.Config, error) {
	if logger != nil && strings.EqualFold(logger.Lvl(), log.DEBUG) {
		sarama.Logger = logger
	}
	saramaConfig := sarama.NewConfig()
	if err := setMetadataConfig(saramaConfig, clientID, clusterConfig.Version, clusterConfig.DialTimeout); err != nil {
		return nil, err
	}
	if clusterConfig.Auth != nil {
		if err := addAuthToConfig(saramaConfig, clusterConfig.Auth); err != nil {
			return nil, err
		}
	}
	return saramaConfig, nil
}

func setMetadataConfig(saramaConfig *sarama.Config, clientID string, version string, dialTimeout time.Duration) error {
	if len(version) == 0 {
		version = defaultVersion
	}
	v, err := sarama.ParseKafkaVersion(version)
	if err != nil {
		return err
	}
	if dialTimeout == 0 {
		dialTimeout = 30 * time.Second
	}
	saramaConfig.ChannelBufferSize = 256
	saramaConfig.ApiVersionsRequest = true
	saramaConfig.Version = v
	saramaConfig.ClientID = clientID

	saramaConfig.Metadata.Retry.Max = 1
	saramaConfig.Metadata.Retry.Backoff = 10 * time.Second
	saramaConfig.Metadata.Full = false

	saramaConfig.Net.ReadTimeout = dialTimeout
	saramaConfig.Net.DialTimeout = dialTimeout
	saramaConfig.Net.WriteTimeout = dialTimeout
	return nil
}

func addAuthToConfig(saramaConfig *sarama.Config, auth *config.Auth) error {
	saramaConfig.Net.SASL.Enable = true
	saramaConfig.Net.SASL.User = auth.Username
	saramaConfig.Net.SASL.Password = auth.Password
	saramaConfig.Net.SASL.Handshake = true
	saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient { return &xDGSCRAMClient{HashGeneratorFcn: sHA512} }
	saramaConfig.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
	saramaConfig.Net.TLS.Enable = true
	tlsConfiguration, err := createTLSConfiguration(auth.Certificates)
	if err != nil {
		return err
	}
	saramaConfig.Net.TLS.Config = tlsConfiguration
	return nil
}

func createTLSConfiguration(certificates []string) (*tls.Config, error) {
	caCertPool := x509.NewCertPool()
	for _, certificate := range certificates {
		caCert, err := os.ReadFile(certificate)
		if err != nil {
			return nil, err
		}
		caCertPool.AppendCertsFromPEM(caCert)
	}
	return &tls.Config{RootCAs: caCertPool, MinVersion: tls.VersionTLS12}, nil
}

func getSaramaOffsetInitial(i config.OffsetInitial) (int64, error) {
	switch i {
	case config.OffsetOldest, "":
		return sarama.OffsetOldest, nil
	case config.OffsetNewest:
		return sarama.OffsetNewest, nil
	default:
		return 0, errors.New("OffsetInitial value not match, it should be newest or oldest")
	}
}
