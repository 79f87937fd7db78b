package main

import (
	"fmt"

	consumerfactory "github.com/aykanferhat/go-kafka-consumer-factory"
	"github.com/spf13/cobra"
)

func newTopicsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "topics <cluster>",
		Short: "list topics of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterConfigMap, err := opts.clusterConfigMap()
			if err != nil {
				return err
			}
			admin, err := consumerfactory.NewAdmin(clusterConfigMap, args[0])
			if err != nil {
				return err
			}
			topics, err := admin.ListTopics()
			if err != nil {
				return err
			}
			for _, topicName := range topics {
				fmt.Fprintln(cmd.OutOrStdout(), topicName)
			}
			return nil
		},
	}
}
