package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	consumerfactory "github.com/aykanferhat/go-kafka-consumer-factory"
	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type consumeOptions struct {
	metricsAddr  string
	partitionIDs []int32
	maxRecords   int
	timeout      time.Duration
}

func newConsumeCommand(opts *options) *cobra.Command {
	consumeOpts := &consumeOptions{}
	cmd := &cobra.Command{
		Use:   "consume <view>",
		Short: "print records of a view as json lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := opts.builder()
			if err != nil {
				return err
			}
			factory, err := builder.Build(args[0], consumeOpts.partitionIDs...)
			if err != nil {
				return err
			}
			if len(consumeOpts.metricsAddr) > 0 {
				go serveMetrics(consumeOpts.metricsAddr, opts.logger())
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), consumeOpts.timeout)
			defer cancel()
			consumer, err := factory.CreateAndSubscribe(ctx)
			if err != nil {
				return err
			}
			defer consumer.Close()
			return consume(ctx, consumer, cmd.OutOrStdout(), consumeOpts.maxRecords)
		},
	}
	flags := cmd.Flags()
	flags.Int32SliceVar(&consumeOpts.partitionIDs, "partitions", nil, "partition ids to read, all partitions of the view when empty")
	flags.IntVar(&consumeOpts.maxRecords, "max-records", 100, "stop after this many records")
	flags.DurationVar(&consumeOpts.timeout, "timeout", 30*time.Second, "stop after this duration")
	flags.StringVar(&consumeOpts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	return cmd
}

func consume(ctx context.Context, consumer consumerfactory.Consumer, w io.Writer, maxRecords int) error {
	printed := 0
	for printed < maxRecords {
		records, pollErr := consumer.Poll(ctx)
		if pollErr == nil && len(records) == 0 && ctx.Err() != nil {
			return nil
		}
		// records that were read before a failure are still printed.
		for _, record := range records {
			if printed == maxRecords {
				break
			}
			if err := printRecord(w, record); err != nil {
				return err
			}
			printed++
		}
		if pollErr != nil {
			return pollErr
		}
	}
	return nil
}

type recordView struct {
	Timestamp time.Time         `json:"timestamp"`
	Key       any               `json:"key"`
	Value     any               `json:"value"`
	Headers   map[string]string `json:"headers,omitempty"`
	Topic     string            `json:"topic"`
	Offset    int64             `json:"offset"`
	Partition int32             `json:"partition"`
}

func printRecord(w io.Writer, record *consumerfactory.ConsumerRecord) error {
	view := recordView{
		Timestamp: record.Timestamp,
		Key:       printable(record.Key),
		Value:     printable(record.Value),
		Topic:     record.Topic,
		Offset:    record.Offset,
		Partition: record.Partition,
	}
	if len(record.Headers) > 0 {
		view.Headers = make(map[string]string, len(record.Headers))
		for _, header := range record.Headers {
			view.Headers[string(header.Key)] = string(header.Value)
		}
	}
	bytes, err := json.Marshal(view)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

// bytes deserializer output is printed as text instead of base64.
func printable(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func serveMetrics(addr string, logger consumerfactory.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("metrics server stopped, addr: %s, err: %s", addr, err.Error())
	}
}
