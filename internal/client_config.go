package internal

// ClientConfig is everything needed to create one consumer for one topic.
type ClientConfig struct {
	TopicConfig            *TopicConfig
	FilterConfig           *FilterConfig
	ConsumerID             string
	PartitionIDs           []int32
	MaxResultsPerPartition int
	AutoCommit             bool
}

type TopicConfig struct {
	ClusterConfig      *ClusterConfig
	DeserializerConfig *DeserializerConfig
	TopicName          string
}

type DeserializerConfig struct {
	KeyDeserializer   string
	ValueDeserializer string
}

type FilterConfig struct {
	Filters []*FilterDefinition
}

// IsPartitionFiltered reports whether partition must be left out of the
// assignment. An empty PartitionIDs list keeps every partition.
func (c *ClientConfig) IsPartitionFiltered(partition int32) bool {
	if len(c.PartitionIDs) == 0 {
		return false
	}
	for _, partitionID := range c.PartitionIDs {
		if partitionID == partition {
			return false
		}
	}
	return true
}

// GetFilters never returns nil.
func (c *ClientConfig) GetFilters() []*FilterDefinition {
	if c.FilterConfig == nil || c.FilterConfig.Filters == nil {
		return []*FilterDefinition{}
	}
	return c.FilterConfig.Filters
}

func NewClientConfig(clusterConfig *ClusterConfig, viewConfig *ViewConfig, partitionIDs ...int32) (*ClientConfig, error) {
	filters := make([]*FilterDefinition, 0, len(viewConfig.Filters))
	for _, filterConfig := range viewConfig.Filters {
		definition, err := NewFilterDefinition(filterConfig.Name, filterConfig.Options)
		if err != nil {
			return nil, err
		}
		filters = append(filters, definition)
	}
	if len(partitionIDs) == 0 {
		partitionIDs = viewConfig.PartitionIDs
	}
	return &ClientConfig{
		TopicConfig: &TopicConfig{
			ClusterConfig: clusterConfig,
			DeserializerConfig: &DeserializerConfig{
				KeyDeserializer:   viewConfig.KeyDeserializer,
				ValueDeserializer: viewConfig.ValueDeserializer,
			},
			TopicName: viewConfig.Topic,
		},
		FilterConfig:           &FilterConfig{Filters: filters},
		ConsumerID:             viewConfig.ConsumerID,
		PartitionIDs:           partitionIDs,
		MaxResultsPerPartition: viewConfig.MaxResultsPerPartition,
		AutoCommit:             viewConfig.AutoCommit,
	}, nil
}
