package consumerfactory

import (
	"github.com/aykanferhat/go-kafka-consumer-factory/internal"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/viper"
)

type (
	ClusterConfig    = internal.ClusterConfig
	Auth             = internal.Auth
	ClusterConfigMap = internal.ClusterConfigMap
	ViewConfig       = internal.ViewConfig
	ViewConfigMap    = internal.ViewConfigMap
	FilterConfigItem = internal.FilterConfigItem
	Library          = kafka.Library
	OffsetInitial    = kafka.OffsetInitial
	Admin            = kafka.Admin
)

const (
	LibrarySarama    = kafka.LibrarySarama
	LibrarySegmentio = kafka.LibrarySegmentio
	OffsetNewest     = kafka.OffsetNewest
	OffsetOldest     = kafka.OffsetOldest
)

func ReadKafkaClusterConfigWithProfile(kafkaConfigPath string, profile string) (ClusterConfigMap, error) {
	var conf map[string]*ClusterConfig
	if err := viper.ReadFileWithProfile(profile, &conf, kafkaConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadKafkaClusterConfig(kafkaConfigPath string) (ClusterConfigMap, error) {
	var conf map[string]*ClusterConfig
	if err := viper.ReadFile(&conf, kafkaConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

func ReadKafkaViewConfig(kafkaViewConfigPath string) (ViewConfigMap, error) {
	var conf map[string]*ViewConfig
	if err := viper.ReadFile(&conf, kafkaViewConfigPath); err != nil {
		return nil, err
	}
	return conf, nil
}

// NewAdmin returns an admin client for the named cluster.
func NewAdmin(clusterConfigMap ClusterConfigMap, clusterName string) (Admin, error) {
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault(clusterName)
	if err != nil {
		return nil, err
	}
	return internal.NewAdmin(clusterConfig), nil
}
