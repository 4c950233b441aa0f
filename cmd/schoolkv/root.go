package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/schoolkv/schoolkv/configs"
	"github.com/schoolkv/schoolkv/internal/kvclient"
	"github.com/schoolkv/schoolkv/internal/logging"
)

var (
	configFile string
	config     *configs.Config
	logger     = logging.DefaultLogger
)

var rootCmd = &cobra.Command{
	Use:   "schoolkv",
	Short: "Key-value store tooling for school records",
	Long: `schoolkv talks to a Redis-compatible key-value store. It can run
one-off get/set/delete commands, a scripted demo exchange, or serve the
store and the name dataset over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = configs.LoadConfig(configFile)
		if err != nil {
			return err
		}
		logger.SetLevel(logging.ParseLevel(config.Log.Level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
}

func clientConfig() kvclient.Config {
	return kvclient.Config{
		Addr:        config.Redis.Addr,
		DialTimeout: config.Redis.DialTimeout,
		QueueSize:   config.Redis.QueueSize,
		Logger:      logger,
	}
}

// withClient connects, runs fn and closes the client. Connection and
// command failures are logged but never abort the process; the command
// still exits zero.
func withClient(ctx context.Context, fn func(*kvclient.Client)) {
	client := kvclient.New(clientConfig())
	if err := client.Connect(ctx); err != nil {
		return
	}
	defer func() {
		_ = client.Close()
	}()

	fn(client)
}
