package kafka

import "github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka/config"

type (
	ClusterConfig         = config.ClusterConfig
	Auth                  = config.Auth
	Library               = config.Library
	OffsetInitial         = config.OffsetInitial
	ResolvedConfiguration = config.ResolvedConfiguration
)

const (
	ClientIDConfig           = config.ClientIDConfig
	BootstrapServersConfig   = config.BootstrapServersConfig
	KeyDeserializerConfig    = config.KeyDeserializerConfig
	ValueDeserializerConfig  = config.ValueDeserializerConfig
	EnableAutoCommitConfig   = config.EnableAutoCommitConfig
	MaxPollRecordsConfig     = config.MaxPollRecordsConfig
	InterceptorClassesConfig = config.InterceptorClassesConfig

	LibrarySarama    = config.LibrarySarama
	LibrarySegmentio = config.LibrarySegmentio

	OffsetNewest = config.OffsetNewest
	OffsetOldest = config.OffsetOldest
)
