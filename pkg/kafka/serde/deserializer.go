package serde

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/csmap"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/json"
)

const (
	StringDeserializer  = "string"
	BytesDeserializer   = "bytes"
	JSONDeserializer    = "json"
	ShortDeserializer   = "short"
	IntegerDeserializer = "integer"
	LongDeserializer    = "long"
	FloatDeserializer   = "float"
	DoubleDeserializer  = "double"
)

type Deserializer interface {
	Deserialize(topic string, data []byte) (any, error)
}

// DeserializerFunc adapts a plain function to Deserializer.
type DeserializerFunc func(topic string, data []byte) (any, error)

func (f DeserializerFunc) Deserialize(topic string, data []byte) (any, error) {
	return f(topic, data)
}

var deserializers = csmap.Create[string, Deserializer](8)

func init() {
	Register(StringDeserializer, DeserializerFunc(deserializeString))
	Register(BytesDeserializer, DeserializerFunc(deserializeBytes))
	Register(JSONDeserializer, DeserializerFunc(deserializeJSON))
	Register(ShortDeserializer, fixedWidth(2, func(b []byte) any { return int16(binary.BigEndian.Uint16(b)) }))
	Register(IntegerDeserializer, fixedWidth(4, func(b []byte) any { return int32(binary.BigEndian.Uint32(b)) }))
	Register(LongDeserializer, fixedWidth(8, func(b []byte) any { return int64(binary.BigEndian.Uint64(b)) }))
	Register(FloatDeserializer, fixedWidth(4, func(b []byte) any { return math.Float32frombits(binary.BigEndian.Uint32(b)) }))
	Register(DoubleDeserializer, fixedWidth(8, func(b []byte) any { return math.Float64frombits(binary.BigEndian.Uint64(b)) }))
}

// Register makes a deserializer available under name, replacing any previous one.
func Register(name string, deserializer Deserializer) {
	deserializers.Store(strings.ToLower(name), deserializer)
}

func Get(name string) (Deserializer, error) {
	deserializer, exists := deserializers.Load(strings.ToLower(name))
	if !exists {
		return nil, fmt.Errorf("deserializer not found: %s", name)
	}
	return deserializer, nil
}

func deserializeString(_ string, data []byte) (any, error) {
	if data == nil {
		return nil, nil
	}
	return string(data), nil
}

func deserializeBytes(_ string, data []byte) (any, error) {
	if data == nil {
		return nil, nil
	}
	return data, nil
}

func deserializeJSON(_ string, data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func fixedWidth(size int, decode func([]byte) any) Deserializer {
	return DeserializerFunc(func(topic string, data []byte) (any, error) {
		if data == nil {
			return nil, nil
		}
		if len(data) != size {
			return nil, fmt.Errorf("size of data received by deserializer is not %d, topic: %s, size: %d", size, topic, len(data))
		}
		return decode(data), nil
	})
}
