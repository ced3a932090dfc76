// Scan command lists the dataset IDs present in a clean-table directory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iseultl/microbiomeHD/internal/dataset"
	"github.com/Iseultl/microbiomeHD/internal/paths"
)

var scanCmd = &cobra.Command{
	Use:   "scan [clean-dir]",
	Short: "List dataset IDs with complete clean tables",
	Long: `Scan lists every dataset ID in the directory for which both the
<id>.otu_table.clean and <id>.metadata.clean files are present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir, err := cleanDirArg(args)
	if err != nil {
		return err
	}
	ids, err := dataset.ScanIDs(dir)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

// cleanDirArg resolves the clean-table directory from the positional
// argument, the config file, the environment, or the default layout.
func cleanDirArg(args []string) (string, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		return "", err
	}
	dir, err := paths.ResolveCleanDir(arg, cfg.CleanDir)
	if err != nil {
		return "", fmt.Errorf("resolve clean dir: %w", err)
	}
	return dir, nil
}
