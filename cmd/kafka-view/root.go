package main

import (
	"os"
	"strings"

	consumerfactory "github.com/aykanferhat/go-kafka-consumer-factory"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "KAFKA_VIEW"

const (
	clusterConfigFlag = "cluster-config"
	viewConfigFlag    = "view-config"
	profileFlag       = "profile"
	logLevelFlag      = "log-level"
)

// options are read through viper so every flag can also be set from a
// KAFKA_VIEW_* environment variable.
type options struct {
	v *viper.Viper
}

func (o *options) clusterConfigMap() (consumerfactory.ClusterConfigMap, error) {
	path := o.v.GetString(clusterConfigFlag)
	if profile := o.v.GetString(profileFlag); len(profile) > 0 {
		return consumerfactory.ReadKafkaClusterConfigWithProfile(path, profile)
	}
	return consumerfactory.ReadKafkaClusterConfig(path)
}

func (o *options) viewConfigMap() (consumerfactory.ViewConfigMap, error) {
	return consumerfactory.ReadKafkaViewConfig(o.v.GetString(viewConfigFlag))
}

func (o *options) logger() consumerfactory.Logger {
	return consumerfactory.NewZerologLogger(os.Stderr, strings.ToUpper(o.v.GetString(logLevelFlag)))
}

func (o *options) builder() (*consumerfactory.ConsumerFactoryBuilder, error) {
	clusterConfigMap, err := o.clusterConfigMap()
	if err != nil {
		return nil, err
	}
	viewConfigMap, err := o.viewConfigMap()
	if err != nil {
		return nil, err
	}
	return consumerfactory.NewConsumerFactoryBuilder(clusterConfigMap, viewConfigMap).Log(o.logger()), nil
}

func newRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "kafka-view",
		Short:         "browse kafka topics through configured views",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.String(clusterConfigFlag, "resources/cluster-config.yaml", "path of the cluster config file")
	flags.String(viewConfigFlag, "resources/view-config.yaml", "path of the view config file")
	flags.String(profileFlag, "", "profile section of the cluster config file")
	flags.String(logLevelFlag, consumerfactory.INFO, "DEBUG, INFO or ERROR")
	_ = opts.v.BindPFlags(flags)
	opts.v.SetEnvPrefix(envPrefix)
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	rootCmd.AddCommand(newConsumeCommand(opts), newPartitionsCommand(opts), newTopicsCommand(opts))
	return rootCmd
}
