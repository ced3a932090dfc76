// Package classify assigns samples to control and disease groups by
// matching a dataset's disease-state labels against a vocabulary.
package classify

import (
	"fmt"

	"github.com/Iseultl/microbiomeHD/pkg/frame"
	"github.com/Iseultl/microbiomeHD/pkg/types"
)

// Classes returns the vocabulary labels present in the label column of meta,
// split into control and disease sides in order of first appearance.
// Labels outside the vocabulary are dropped without error; bad values only
// surface later if they leave a class empty.
func Classes(meta *frame.Frame, label string, vocab types.Vocabulary) (types.Classes, error) {
	col, err := meta.Column(label)
	if err != nil {
		return types.Classes{}, fmt.Errorf("%w: %q", types.ErrNoDiseaseColumn, label)
	}

	var classes types.Classes
	seen := make(map[string]bool, len(col))
	for _, v := range col {
		if seen[v] {
			continue
		}
		seen[v] = true
		switch {
		case vocab.IsControl(v):
			classes.Controls = append(classes.Controls, v)
		case vocab.IsDisease(v):
			classes.Diseases = append(classes.Diseases, v)
		}
	}
	return classes, nil
}

// Partition splits the sample IDs of meta by the matched classes. Samples
// whose label is in neither side are excluded from both lists.
func Partition(meta *frame.Frame, label string, classes types.Classes) (types.Partition, error) {
	col, err := meta.Column(label)
	if err != nil {
		return types.Partition{}, fmt.Errorf("%w: %q", types.ErrNoDiseaseColumn, label)
	}

	controls := toSet(classes.Controls)
	diseases := toSet(classes.Diseases)

	var part types.Partition
	for i, v := range col {
		switch {
		case controls[v]:
			part.Controls = append(part.Controls, meta.Index[i])
		case diseases[v]:
			part.Diseases = append(part.Diseases, meta.Index[i])
		}
	}
	return part, nil
}

func toSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}
