package main

import (
	"github.com/spf13/cobra"

	"github.com/schoolkv/schoolkv/internal/kvclient"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withClient(cmd.Context(), func(c *kvclient.Client) {
			c.Print(<-c.GetValue(args[0]))
		})
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value under a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		withClient(cmd.Context(), func(c *kvclient.Client) {
			c.Print(<-c.SetValue(args[0], args[1]))
		})
		return nil
	},
}

var delCmd = &cobra.Command{
	Use:   "del <key>",
	Short: "Remove a key from the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withClient(cmd.Context(), func(c *kvclient.Client) {
			c.Print(<-c.DeleteValue(args[0]))
		})
		return nil
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the key-value server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := kvclient.New(clientConfig())
		if err := client.Connect(cmd.Context()); err == nil {
			defer func() {
				_ = client.Close()
			}()
		}
		logger.Info("client %s state: %s", client.ID(), client.State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(pingCmd)
}
