package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyturnctl",
	Short: "Single-use access key vending server",
	Long: `keyturnctl manages the keyturn server: a small service that issues
single-use access keys and redeems them into provisioned proxy accounts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
