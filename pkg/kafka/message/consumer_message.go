package message

import (
	"time"
)

// ConsumerRecord is a record read from a topic partition. Key and Value hold
// the deserialized forms of RawKey and RawValue.
type ConsumerRecord struct {
	Timestamp time.Time
	Key       any
	Value     any
	Topic     string
	Headers   []Header
	RawKey    []byte
	RawValue  []byte
	Offset    int64
	Partition int32
}

type Header struct {
	Key   []byte
	Value []byte
}
