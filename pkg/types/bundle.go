package types

import (
	"github.com/Iseultl/microbiomeHD/pkg/frame"
)

// Bundle aggregates everything downstream analysis needs for one dataset.
// It is constructed once by the batch aggregator and not mutated afterwards.
type Bundle struct {
	ID        string
	Abundance *frame.Abundance
	Metadata  *frame.Frame
	Classes   Classes
	Samples   Partition
}

// Collection maps dataset IDs to their loaded bundles.
type Collection map[string]*Bundle
