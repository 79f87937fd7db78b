package config

const (
	ClientIDConfig           = "client.id"
	BootstrapServersConfig   = "bootstrap.servers"
	KeyDeserializerConfig    = "key.deserializer"
	ValueDeserializerConfig  = "value.deserializer"
	EnableAutoCommitConfig   = "enable.auto.commit"
	MaxPollRecordsConfig     = "max.poll.records"
	InterceptorClassesConfig = "interceptor.classes"
)

type Library string

const (
	LibrarySarama    Library = "sarama"
	LibrarySegmentio Library = "segmentio"
)

type OffsetInitial string

const (
	OffsetNewest OffsetInitial = "newest"
	OffsetOldest OffsetInitial = "oldest"
)
