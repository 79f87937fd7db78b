package internal

import "github.com/aykanferhat/go-kafka-consumer-factory/pkg/kafka"

func NewAdmin(clusterConfig *ClusterConfig) kafka.Admin {
	return kafka.NewAdmin(clusterConfig.GetBrokers(), mapToClusterConfig(clusterConfig), logger)
}
