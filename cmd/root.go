package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cloud-plans-service",
	Short: "Cloud plans and benefits service",
	Long:  "Serves cloud subscription plans, regional prices and benefits over HTTP and gRPC.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
