package internal

import (
	"strings"

	"github.com/hashicorp/go-uuid"
)

const consumerIDPrefix = "KafkaWebView-Consumer-"

type ViewConfig struct {
	Name                   string              `json:"-"`
	Cluster                string              `json:"cluster"`
	Topic                  string              `json:"topic"`
	KeyDeserializer        string              `json:"keyDeserializer"`
	ValueDeserializer      string              `json:"valueDeserializer"`
	ConsumerID             string              `json:"consumerId"`
	Filters                []*FilterConfigItem `json:"filters"`
	PartitionIDs           []int32             `json:"partitionIds"`
	MaxResultsPerPartition int                 `json:"maxResultsPerPartition"`
	AutoCommit             bool                `json:"autoCommit"`
}

type FilterConfigItem struct {
	Options map[string]string `json:"options"`
	Name    string            `json:"name"`
}

type ViewConfigMap map[string]*ViewConfig

func (v ViewConfigMap) GetConfigWithDefault(name string) (*ViewConfig, error) {
	vc, exists := v[strings.ToLower(name)]
	if !exists {
		return nil, NewErrWithArgs("view config not found: %s", name)
	}
	vc.Name = name
	if len(vc.Cluster) == 0 {
		return nil, NewErrWithArgs("view config 'cluster' is required, view: %s", name)
	}
	if len(vc.Topic) == 0 {
		return nil, NewErrWithArgs("view config 'topic' is required, view: %s", name)
	}
	for _, filter := range vc.Filters {
		if len(filter.Name) == 0 {
			return nil, NewErrWithArgs("view config filter 'name' is required, view: %s", name)
		}
	}
	if len(vc.KeyDeserializer) == 0 {
		vc.KeyDeserializer = "string"
	}
	if len(vc.ValueDeserializer) == 0 {
		vc.ValueDeserializer = "string"
	}
	if vc.MaxResultsPerPartition < 0 {
		return nil, NewErrWithArgs("view config 'maxResultsPerPartition' must not be negative, view: %s", name)
	}
	if vc.MaxResultsPerPartition == 0 {
		vc.MaxResultsPerPartition = 10
	}
	if len(vc.ConsumerID) == 0 {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return nil, err
		}
		vc.ConsumerID = consumerIDPrefix + id
	}
	return vc, nil
}
