package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	recordIncluded = "included"
	recordExcluded = "excluded"
)

var FilteredRecords = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_consumer_factory_filtered_records_total",
		Help: "Total number of records evaluated by the record filter interceptor",
	},
	[]string{"topic", "result"},
)
