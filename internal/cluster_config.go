package internal

import (
	"strings"
	"time"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"
)

type (
	Library       = kafka.Library
	OffsetInitial = kafka.OffsetInitial
)

var (
	LibrarySarama    = kafka.LibrarySarama
	LibrarySegmentio = kafka.LibrarySegmentio
	OffsetNewest     = kafka.OffsetNewest
	OffsetOldest     = kafka.OffsetOldest
)

type ClusterConfig struct {
	Auth          *Auth         `json:"auth"`
	ClusterName   string        `json:"-"`
	Brokers       string        `json:"brokers"`
	Version       string        `json:"version"`
	Library       Library       `json:"library"`
	OffsetInitial OffsetInitial `json:"offsetInitial"`
	DialTimeout   time.Duration `json:"dialTimeout"`
}

// GetBrokers returns the connect string split into broker addresses.
func (config *ClusterConfig) GetBrokers() []string {
	return strings.Split(strings.ReplaceAll(config.Brokers, " ", ""), ",")
}

type Auth struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	Certificates []string `json:"certificates"`
}

type ClusterConfigMap map[string]*ClusterConfig

func (c ClusterConfigMap) GetConfigWithDefault(name string) (*ClusterConfig, error) {
	cc, exists := c[strings.ToLower(name)]
	if !exists {
		return nil, NewErrWithArgs("cluster config not found: %s", name)
	}
	cc.ClusterName = name
	if err := validateClusterConfig(cc); err != nil {
		return nil, err
	}
	return cc, nil
}

func validateClusterConfig(clusterConfig *ClusterConfig) error {
	if len(clusterConfig.Brokers) == 0 {
		return NewErrWithArgs("cluster config 'brokers' is required, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.Version) == 0 {
		return NewErrWithArgs("cluster configs 'version' is required, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.Library) == 0 {
		clusterConfig.Library = LibrarySarama
	}
	if clusterConfig.Library != LibrarySarama && clusterConfig.Library != LibrarySegmentio {
		return NewErrWithArgs("cluster config 'library' should be sarama or segmentio, cluster: %s", clusterConfig.ClusterName)
	}
	if len(clusterConfig.OffsetInitial) == 0 {
		clusterConfig.OffsetInitial = OffsetOldest
	}
	if clusterConfig.DialTimeout == 0 {
		clusterConfig.DialTimeout = 30 * time.Second
	}
	return nil
}

func (c ClusterConfigMap) SetAuth(cluster, username, password string, certificatePaths []string) error {
	clusterConfig, err := c.GetConfigWithDefault(cluster)
	if err != nil {
		return err
	}
	clusterConfig.Auth = &Auth{
		Username:     username,
		Password:     password,
		Certificates: certificatePaths,
	}
	return nil
}

func mapToClusterConfig(clusterConfig *ClusterConfig) *kafka.ClusterConfig {
	c := &kafka.ClusterConfig{
		Version:       clusterConfig.Version,
		Library:       clusterConfig.Library,
		OffsetInitial: clusterConfig.OffsetInitial,
		DialTimeout:   clusterConfig.DialTimeout,
	}
	if clusterConfig.Auth != nil {
		c.Auth = &kafka.Auth{
			Username:     clusterConfig.Auth.Username,
			Password:     clusterConfig.Auth.Password,
			Certificates: clusterConfig.Auth.Certificates,
		}
	}
	return c
}
