package config

import (
	"time"
)

// ClusterConfig carries the connection settings that are not part of the
// resolved consumer configuration.
type ClusterConfig struct {
	Auth          *Auth
	Version       string
	Library       Library
	OffsetInitial OffsetInitial
	DialTimeout   time.Duration
}

type Auth struct {
	Username     string
	Password     string
	Certificates []string
}
