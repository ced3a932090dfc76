// Catalog command resolves the registry document and prints the catalog.
package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Iseultl/microbiomeHD/internal/catalog"
	"github.com/Iseultl/microbiomeHD/internal/paths"
)

var (
	catalogDataDir string
	catalogJSON    bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <registry.yaml>",
	Short: "Resolve the dataset registry and print every entry",
	Long: `Catalog reads the YAML registry document, derives any file paths not
given explicitly, fills in default fields, and prints the resolved entries.

Example:
  microbiomehd catalog results_folders.yaml --data-dir raw_data`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogDataDir, "data-dir", "", "base directory holding the per-dataset results folders")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "output in JSON format")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	dataDir, err := paths.ResolveDataDir(catalogDataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cat, err := catalog.Resolve(args[0], dataDir)
	if err != nil {
		return err
	}

	if catalogJSON {
		out, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	ids := make([]string, 0, len(cat))
	for id := range cat {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		e := cat[id]
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", id)
		fmt.Fprintf(cmd.OutOrStdout(), "  otu_table:     %s\n", e.OTUTable)
		fmt.Fprintf(cmd.OutOrStdout(), "  metadata_file: %s\n", e.MetadataFile)
		if e.SummaryFile != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  summary_file:  %s\n", e.SummaryFile)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  region=%s sequencer=%s year=%s table_type=%s disease_label=%s\n",
			e.Region, e.Sequencer, e.Year, e.TableType, e.DiseaseLabel)
	}
	return nil
}
