// Load command builds the full dataset collection and prints a summary.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Iseultl/microbiomeHD/internal/dataset"
	"github.com/Iseultl/microbiomeHD/pkg/frame"
)

var loadRaw bool

var loadCmd = &cobra.Command{
	Use:   "load [clean-dir]",
	Short: "Load every dataset into control/disease bundles",
	Long: `Load reads every complete dataset in the directory, converts raw OTU
counts to relative abundances, classifies samples into control and disease
groups, and prints per-dataset sample counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&loadRaw, "raw", false, "keep raw counts instead of relative abundances")
}

func runLoad(cmd *cobra.Command, args []string) error {
	dir, err := cleanDirArg(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	normalize := dataset.Normalizer(relAbundance)
	if loadRaw {
		normalize = nil
	}

	collection, err := dataset.LoadAll(dir, cfg.Vocabulary, normalize)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(collection))
	for id := range collection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		b := collection[id]
		samples, otus := b.Abundance.Dims()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples (%d control, %d disease), %d OTUs\n",
			id, samples, len(b.Samples.Controls), len(b.Samples.Diseases), otus)
	}
	return nil
}

// relAbundance converts raw counts to per-sample fractional abundances.
func relAbundance(a *frame.Abundance) (*frame.Abundance, error) {
	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return a, nil
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		row := mat.Row(nil, i, a.Data)
		total := floats.Sum(row)
		if total == 0 {
			return nil, fmt.Errorf("sample %s has zero total abundance", a.Samples[i])
		}
		floats.Scale(1/total, row)
		out.SetRow(i, row)
	}
	return a.WithData(out)
}
