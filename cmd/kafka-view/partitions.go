package main

import (
	"fmt"
	"text/tabwriter"

	consumerfactory "github.com/aykanferhat/go-kafka-consumer-factory"
	"github.com/spf13/cobra"
)

func newPartitionsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "partitions <view>",
		Short: "list partitions of the topic behind a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viewConfigMap, err := opts.viewConfigMap()
			if err != nil {
				return err
			}
			viewConfig, err := viewConfigMap.GetConfigWithDefault(args[0])
			if err != nil {
				return err
			}
			builder, err := opts.builder()
			if err != nil {
				return err
			}
			factory, err := builder.Build(args[0])
			if err != nil {
				return err
			}
			consumer, err := factory.Create()
			if err != nil {
				return err
			}
			defer consumer.Close()
			partitionInfos, err := consumer.PartitionsFor(cmd.Context(), viewConfig.Topic)
			if err != nil {
				return err
			}
			return printPartitions(cmd, partitionInfos)
		},
	}
}

func printPartitions(cmd *cobra.Command, partitionInfos []consumerfactory.PartitionInfo) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOPIC\tPARTITION\tREPLICAS\tISR")
	for _, partitionInfo := range partitionInfos {
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\n", partitionInfo.Topic, partitionInfo.Partition, partitionInfo.Replicas, partitionInfo.Isr)
	}
	return w.Flush()
}
