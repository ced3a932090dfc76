// Package catalog resolves the dataset registry: it reads the declarative
// YAML registry document and populates every entry with derived file paths
// and default field values.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Iseultl/microbiomeHD/pkg/types"
)

// Suffixes of the files inside each dataset's results folder.
const (
	otuTableSuffix = ".otu_table.100.denovo.rdp_assigned"
	metadataSuffix = ".metadata.txt"
	summaryName    = "summary_file.txt"
	rdpDir         = "RDP"
)

// Resolve reads the registry document at registryPath and returns a catalog
// in which every entry has its paths and defaults populated. baseDir is the
// directory containing the per-dataset results folders. Explicit values in
// the registry are never overwritten.
func Resolve(registryPath, baseDir string) (types.Catalog, error) {
	raw, err := os.ReadFile(registryPath)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var cat types.Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", registryPath, err)
	}

	// Stable iteration keeps warnings and errors in a reproducible order.
	ids := make([]string, 0, len(cat))
	for id := range cat {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if cat[id] == nil {
			cat[id] = &types.Entry{}
		}
		if err := resolveEntry(id, cat[id], baseDir); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// resolveEntry fills in the derived paths and defaults of a single entry.
func resolveEntry(id string, e *types.Entry, baseDir string) error {
	if e.OTUTable == "" {
		if e.Folder == "" {
			return fmt.Errorf("dataset %s: %w", id, types.ErrOTUTableSource)
		}
		path, err := absJoin(baseDir, e.Folder, rdpDir, folderStem(e.Folder)+otuTableSuffix)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", id, err)
		}
		e.OTUTable = path
	}

	if e.MetadataFile == "" {
		if e.Folder == "" {
			return fmt.Errorf("dataset %s: %w", id, types.ErrMetadataSource)
		}
		path, err := absJoin(baseDir, e.Folder, folderStem(e.Folder)+metadataSuffix)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", id, err)
		}
		e.MetadataFile = path
	}

	if e.SummaryFile == "" {
		if e.Folder == "" {
			slog.Warn("no summary file or results folder for dataset", "dataset", id)
		} else {
			path, err := absJoin(baseDir, e.Folder, summaryName)
			if err != nil {
				return fmt.Errorf("dataset %s: %w", id, err)
			}
			e.SummaryFile = path
		}
	}

	if e.Region == "" {
		e.Region = types.Unknown
	}
	if e.Sequencer == "" {
		e.Sequencer = types.Unknown
	}
	if e.Year == "" {
		e.Year = types.Unknown
	}
	if e.DiseaseLabel == "" {
		e.DiseaseLabel = types.DefaultDiseaseLabel
	}
	if e.TableType == "" {
		e.TableType = types.TableClassic
	}

	if err := e.Validate(); err != nil {
		return fmt.Errorf("dataset %s: %w", id, err)
	}
	return nil
}

// folderStem strips the trailing underscore-delimited segment from a results
// folder name: "crc_baxter_results" becomes "crc_baxter". A name without an
// underscore is its own stem.
func folderStem(folder string) string {
	if i := strings.LastIndex(folder, "_"); i >= 0 {
		return folder[:i]
	}
	return folder
}

func absJoin(parts ...string) (string, error) {
	return filepath.Abs(filepath.Join(parts...))
}
