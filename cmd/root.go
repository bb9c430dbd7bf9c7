package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"serde-api/cmd/bench"
	"serde-api/cmd/serve"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "serde",
		Short: "typed JSON serialization service",
		Long: fmt.Sprintf(`serde (v%s)

A small object-to-text serialization service written in Go. It exposes a JSON
serializer with type-tagging for date-times, decimals, sets and records, a
recursive plain-structure converter, and DRF-style pagination over HTTP.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of serde",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serde v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
