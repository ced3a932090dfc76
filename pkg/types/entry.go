package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Table orientations accepted in registry entries.
const (
	// TableClassic has OTUs as rows and samples as columns.
	TableClassic = "classic"
	// TableNormal has samples as rows and OTUs as columns.
	TableNormal = "normal"
)

// Defaults applied by the catalog resolver when a registry entry omits a
// field.
const (
	// DefaultDiseaseLabel is the metadata column holding each sample's
	// control/disease label.
	DefaultDiseaseLabel = "DiseaseState"

	// Unknown marks registry fields whose value was not recorded.
	Unknown = "unk"
)

// Entry describes one dataset in the registry document. Path fields may be
// given explicitly or derived from Folder by the catalog resolver; all other
// fields have documented defaults.
type Entry struct {
	// Folder is the results directory name under the collection's base
	// directory, e.g. "crc_baxter_results".
	Folder string `yaml:"folder" json:"folder,omitempty"`

	// OTUTable and MetadataFile are absolute paths once resolved.
	OTUTable     string `yaml:"otu_table" json:"otu_table"`
	MetadataFile string `yaml:"metadata_file" json:"metadata_file"`

	// SummaryFile is optional; resolution failure is a warning, not an
	// error.
	SummaryFile string `yaml:"summary_file" json:"summary_file,omitempty"`

	// Region is the sequenced 16S region, e.g. "V4".
	Region string `yaml:"region" json:"region"`

	// Sequencer is the DNA sequencing platform.
	Sequencer string `yaml:"sequencer" json:"sequencer"`

	// DiseaseLabel is the metadata column holding sample labels.
	DiseaseLabel string `yaml:"disease_label" json:"disease_label"`

	// TableType is TableClassic or TableNormal.
	TableType string `yaml:"table_type" json:"table_type"`

	// Year is the publication year of the study.
	Year string `yaml:"year" json:"year"`

	// Condition holds free-form study condition fields carried through
	// untouched.
	Condition map[string]any `yaml:"condition" json:"condition,omitempty"`
}

// Validate checks a resolved entry. It is meaningful only after the catalog
// resolver has populated defaults and derived paths.
func (e *Entry) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.OTUTable, validation.Required),
		validation.Field(&e.MetadataFile, validation.Required),
		validation.Field(&e.TableType, validation.Required, validation.In(TableClassic, TableNormal)),
		validation.Field(&e.DiseaseLabel, validation.Required),
	)
}

// Catalog maps dataset IDs to fully resolved registry entries.
type Catalog map[string]*Entry
