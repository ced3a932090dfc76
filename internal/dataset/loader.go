// Package dataset reads per-dataset clean tables and assembles the full
// in-memory dataset collection.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Iseultl/microbiomeHD/pkg/frame"
)

// Clean file suffixes produced by the upstream cleaning pipeline.
const (
	otuSuffix  = ".otu_table.clean"
	metaSuffix = ".metadata.clean"
)

// Read loads the clean OTU table and metadata table for one dataset ID from
// dir. Missing or malformed files are fatal and propagate to the caller.
func Read(dir, id string) (*frame.Abundance, *frame.Frame, error) {
	abun, err := frame.ReadAbundanceTSV(filepath.Join(dir, id+otuSuffix))
	if err != nil {
		return nil, nil, fmt.Errorf("dataset %s: %w", id, err)
	}
	meta, err := frame.ReadTSV(filepath.Join(dir, id+metaSuffix))
	if err != nil {
		return nil, nil, fmt.Errorf("dataset %s: %w", id, err)
	}
	return abun, meta, nil
}

// ScanIDs lists the dataset IDs present in dir. A candidate ID is the part
// of a file name before its first dot; it is kept only when both clean
// files exist. IDs are returned sorted.
func ScanIDs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan clean dir: %w", err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	seen := make(map[string]bool)
	var ids []string
	for name := range names {
		id, _, _ := strings.Cut(name, ".")
		if seen[id] {
			continue
		}
		seen[id] = true
		if names[id+otuSuffix] && names[id+metaSuffix] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
