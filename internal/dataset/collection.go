package dataset

import (
	"fmt"
	"log/slog"

	"github.com/Iseultl/microbiomeHD/internal/classify"
	"github.com/Iseultl/microbiomeHD/pkg/frame"
	"github.com/Iseultl/microbiomeHD/pkg/types"
)

// Normalizer transforms a raw abundance table into a normalized one, e.g.
// counts into relative abundances. The transform must preserve the sample
// index and OTU columns.
type Normalizer func(*frame.Abundance) (*frame.Abundance, error)

// LoadAll builds a bundle for every dataset found in dir: it loads the
// clean tables, applies normalize to the abundance table, classifies the
// metadata labels against vocab, and partitions the samples. A nil
// normalize leaves the raw counts in place.
//
// A dataset whose control or disease group comes up empty aborts the whole
// batch; there is no partial-result mode.
func LoadAll(dir string, vocab types.Vocabulary, normalize Normalizer) (types.Collection, error) {
	if err := vocab.Validate(); err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}

	ids, err := ScanIDs(dir)
	if err != nil {
		return nil, err
	}

	slog.Info("reading datasets", "dir", dir, "count", len(ids))
	collection := make(types.Collection, len(ids))
	for _, id := range ids {
		slog.Info("reading dataset", "dataset", id)

		abun, meta, err := Read(dir, id)
		if err != nil {
			return nil, err
		}
		if normalize != nil {
			abun, err = normalize(abun)
			if err != nil {
				return nil, fmt.Errorf("dataset %s: normalize: %w", id, err)
			}
		}

		classes, err := classify.Classes(meta, types.DefaultDiseaseLabel, vocab)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", id, err)
		}
		if len(classes.Controls) == 0 || len(classes.Diseases) == 0 {
			return nil, fmt.Errorf("dataset %s: %w", id, types.ErrEmptyClass)
		}

		samples, err := classify.Partition(meta, types.DefaultDiseaseLabel, classes)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", id, err)
		}

		collection[id] = &types.Bundle{
			ID:        id,
			Abundance: abun,
			Metadata:  meta,
			Classes:   classes,
			Samples:   samples,
		}
	}
	slog.Info("reading datasets finished", "count", len(collection))
	return collection, nil
}
