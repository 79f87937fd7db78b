package json

import (
	"github.com/json-iterator/go"
)

// map keys are sorted so printed records are stable.
var customJSON = NewJSON()

func Marshal(obj any) ([]byte, error) {
	return customJSON.Marshal(obj)
}

func Unmarshal(data []byte, obj any) error {
	return customJSON.Unmarshal(data, obj)
}

type JSON struct {
	iter jsoniter.API
}

func NewJSON() *JSON {
	return &JSON{
		iter: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
		}.Froze(),
	}
}

func (j *JSON) Unmarshal(data []byte, obj any) error {
	return j.iter.Unmarshal(data, obj)
}

func (j *JSON) Marshal(obj any) ([]byte, error) {
	return j.iter.Marshal(obj)
}
