package types

import "errors"

// Catalog resolution errors. Both are configuration errors: the registry
// entry names neither an explicit path nor a results folder to derive one
// from.
var (
	ErrOTUTableSource = errors.New("no otu_table path or results folder")
	ErrMetadataSource = errors.New("no metadata_file path or results folder")
)

// Classification and aggregation errors.
var (
	// ErrNoDiseaseColumn means the metadata table lacks the disease-state
	// column named by the registry entry.
	ErrNoDiseaseColumn = errors.New("disease-state column not found in metadata")

	// ErrEmptyClass means a dataset's metadata matched no control labels
	// or no disease labels, leaving one side of the comparison empty.
	ErrEmptyClass = errors.New("control or disease group is empty")
)
