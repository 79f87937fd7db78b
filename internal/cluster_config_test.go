package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ClusterConfig_ShouldReturnBrokers(t *testing.T) {
	// Given
	clusterConfig := &ClusterConfig{
		Brokers: "broker1, broker2, broker3",
		Version: "2.2.0",
	}

	// When
	brokers := clusterConfig.GetBrokers()

	// Then
	assert.Len(t, brokers, 3)
	assert.Equal(t, "broker1", brokers[0])
	assert.Equal(t, "broker2", brokers[1])
	assert.Equal(t, "broker3", brokers[2])
}

func Test_ClusterConfigMap_ThrowErrWhenConfigNotFound(t *testing.T) {
	// Given
	clusterConfigMap := make(ClusterConfigMap)
	clusterConfigMap["cluster"] = &ClusterConfig{
		Brokers: "broker1, broker2, broker3",
		Version: "2.2.0",
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("notFoundCluster")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config not found: notFoundCluster", err.Error())
}

func Test_ClusterConfigMap_ThrowErrWhenBrokersIsEmpty(t *testing.T) {
	// Given
	clusterConfigMap := make(ClusterConfigMap)
	clusterConfigMap["cluster"] = &ClusterConfig{
		Brokers: "",
		Version: "2.2.0",
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("cluster")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config 'brokers' is required, cluster: cluster", err.Error())
}

func Test_ClusterConfigMap_ThrowErrWhenVersionIsEmpty(t *testing.T) {
	// Given
	clusterConfigMap := make(ClusterConfigMap)
	clusterConfigMap["cluster"] = &ClusterConfig{
		Brokers: "broker1, broker2, broker3",
		Version: "",
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("cluster")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster configs 'version' is required, cluster: cluster", err.Error())
}

func Test_ClusterConfigMap_ThrowErrWhenLibraryIsUnknown(t *testing.T) {
	// Given
	clusterConfigMap := make(ClusterConfigMap)
	clusterConfigMap["cluster"] = &ClusterConfig{
		Brokers: "broker1",
		Version: "2.2.0",
		Library: "confluent",
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("cluster")

	// Then
	assert.Nil(t, clusterConfig)
	assert.Equal(t, "cluster config 'library' should be sarama or segmentio, cluster: cluster", err.Error())
}

func Test_ClusterConfigMap_ShouldReturnClusterConfig(t *testing.T) {
	// Given
	clusterConfigMap := make(ClusterConfigMap)
	clusterConfigMap["cluster"] = &ClusterConfig{
		Brokers: "broker1, broker2, broker3",
		Version: "2.2.0",
	}

	// When
	clusterConfig, err := clusterConfigMap.GetConfigWithDefault("Cluster")

	// Then
	assert.Nil(t, err)
	assert.Equal(t, "Cluster", clusterConfig.ClusterName)
	assert.Equal(t, LibrarySarama, clusterConfig.Library)
	assert.Equal(t, OffsetOldest, clusterConfig.OffsetInitial)
	assert.Equal(t, 30*time.Second, clusterConfig.DialTimeout)
}

func Test_ClusterConfigMap_ShouldSetAuth(t *testing.T) {
	// Given
	clusterConfigMap := make(ClusterConfigMap)
	clusterConfigMap["cluster"] = &ClusterConfig{
		Brokers: "broker1",
		Version: "2.2.0",
		Auth:    &Auth{Username: "old", Password: "old"},
	}

	// When
	err := clusterConfigMap.SetAuth("cluster", "username", "password", []string{"ca.pem"})

	// Then
	assert.Nil(t, err)
	auth := clusterConfigMap["cluster"].Auth
	assert.Equal(t, "username", auth.Username)
	assert.Equal(t, "password", auth.Password)
	assert.Equal(t, []string{"ca.pem"}, auth.Certificates)
}

func Test_MapToClusterConfig(t *testing.T) {
	// Given
	clusterConfig := &ClusterConfig{
		Brokers:       "broker1",
		Version:       "3.6.0",
		Library:       LibrarySegmentio,
		OffsetInitial: OffsetNewest,
		DialTimeout:   5 * time.Second,
		Auth:          &Auth{Username: "username", Password: "password"},
	}

	// When
	kafkaClusterConfig := mapToClusterConfig(clusterConfig)

	// Then
	assert.Equal(t, "3.6.0", kafkaClusterConfig.Version)
	assert.Equal(t, LibrarySegmentio, kafkaClusterConfig.Library)
	assert.Equal(t, OffsetNewest, kafkaClusterConfig.OffsetInitial)
	assert.Equal(t, 5*time.Second, kafkaClusterConfig.DialTimeout)
	assert.Equal(t, "username", kafkaClusterConfig.Auth.Username)
}
