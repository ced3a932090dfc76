package types

import (
	"errors"
	"fmt"
)

// Vocabulary validation errors.
var (
	ErrVocabularyEmpty   = errors.New("vocabulary side must not be empty")
	ErrVocabularyOverlap = errors.New("control and disease labels overlap")
)

// Vocabulary is the closed set of disease-state labels recognized during
// classification. It is an injected value rather than a constant so new
// cohorts can be added through configuration.
type Vocabulary struct {
	Controls []string `yaml:"controls" mapstructure:"controls"`
	Diseases []string `yaml:"diseases" mapstructure:"diseases"`
}

// DefaultVocabulary returns the label sets used across the microbiomeHD
// collection.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Controls: []string{"H", "nonCDI", "nonGVHD", "nonIBD"},
		Diseases: []string{
			"ASD", "CD", "CDI", "CIRR", "CRC", "EDD", "GVHD", "HIV",
			"MHE", "NASH", "OB", "PAR", "PSA", "RA", "T1D", "T2D", "UC",
		},
	}
}

// Validate checks that both sides are non-empty and disjoint.
func (v Vocabulary) Validate() error {
	if len(v.Controls) == 0 || len(v.Diseases) == 0 {
		return ErrVocabularyEmpty
	}
	controls := make(map[string]bool, len(v.Controls))
	for _, c := range v.Controls {
		controls[c] = true
	}
	for _, d := range v.Diseases {
		if controls[d] {
			return fmt.Errorf("%w: %q", ErrVocabularyOverlap, d)
		}
	}
	return nil
}

// IsControl reports whether label is a recognized control label.
func (v Vocabulary) IsControl(label string) bool { return contains(v.Controls, label) }

// IsDisease reports whether label is a recognized disease label.
func (v Vocabulary) IsDisease(label string) bool { return contains(v.Diseases, label) }

func contains(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}

// Classes holds the vocabulary labels actually present in one dataset's
// metadata, split into the control and disease sides.
type Classes struct {
	Controls []string
	Diseases []string
}

// Partition holds the sample IDs of one dataset split by matched class.
// Samples whose label is in neither side of the classes are excluded.
type Partition struct {
	Controls []string
	Diseases []string
}
