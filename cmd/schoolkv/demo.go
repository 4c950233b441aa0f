package main

import (
	"github.com/spf13/cobra"

	"github.com/schoolkv/schoolkv/internal/kvclient"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted school lookup exchange",
	Long: `demo connects to the key-value server and performs a fixed exchange:
look up "Holberton", store "100" under "HolbertonSanFrancisco", then
read it back. Every reply and error is printed; the command always
exits zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		withClient(cmd.Context(), func(c *kvclient.Client) {
			displaySchoolValue(c, "Holberton")
			setNewSchool(c, "HolbertonSanFrancisco", "100")
			displaySchoolValue(c, "HolbertonSanFrancisco")
		})
		return nil
	},
}

// setNewSchool stores value under the given school name and prints the
// server's confirmation
func setNewSchool(c *kvclient.Client, name, value string) {
	c.Print(<-c.SetValue(name, value))
}

// displaySchoolValue prints the value stored under the given school name
func displaySchoolValue(c *kvclient.Client, name string) {
	c.Print(<-c.GetValue(name))
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
