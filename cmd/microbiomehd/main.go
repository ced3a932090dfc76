// Package main provides the microbiomehd CLI for resolving the dataset
// registry and loading dataset collections.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "microbiomehd",
	Short: "microbiomehd catalogs and loads microbiome OTU dataset collections",
	Long: `microbiomehd resolves the dataset registry of a microbiome OTU
collection, scans directories of cleaned per-dataset tables, and loads
datasets into control/disease bundles for downstream analysis.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML; optional)")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(versionCmd)
}
