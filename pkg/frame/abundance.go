package frame

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Abundance is a numeric OTU table with samples as rows and OTUs as
// columns. Sample IDs carry the same string-index guarantee as Frame.
type Abundance struct {
	Samples []string
	OTUs    []string

	// Data is len(Samples) x len(OTUs).
	Data *mat.Dense

	samplePos map[string]int
}

// AbundanceFromFrame parses every cell of f as a float64 count.
func AbundanceFromFrame(f *Frame) (*Abundance, error) {
	rows, cols := f.Len(), len(f.Columns)
	data := make([]float64, 0, rows*cols)
	for _, id := range f.Index {
		row, err := f.Row(id)
		if err != nil {
			return nil, err
		}
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("abundance cell [%s, %s]: %w", id, f.Columns[j], err)
			}
			data = append(data, v)
		}
	}

	a := &Abundance{
		Samples:   append([]string(nil), f.Index...),
		OTUs:      append([]string(nil), f.Columns...),
		samplePos: make(map[string]int, rows),
	}
	if rows > 0 && cols > 0 {
		a.Data = mat.NewDense(rows, cols, data)
	}
	for i, id := range a.Samples {
		a.samplePos[id] = i
	}
	return a, nil
}

// ReadAbundanceTSV reads a tab-separated OTU table from path.
func ReadAbundanceTSV(path string) (*Abundance, error) {
	f, err := ReadTSV(path)
	if err != nil {
		return nil, err
	}
	return AbundanceFromFrame(f)
}

// Dims returns (samples, OTUs).
func (a *Abundance) Dims() (int, int) {
	return len(a.Samples), len(a.OTUs)
}

// SampleCounts returns the abundance values for one sample in OTU order.
func (a *Abundance) SampleCounts(sampleID string) ([]float64, error) {
	i, ok := a.samplePos[sampleID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRowNotFound, sampleID)
	}
	return mat.Row(nil, i, a.Data), nil
}

// WithData returns a copy of a backed by data, which must have the same
// dimensions. Normalization transforms use this to keep index and OTU
// names aligned with the transformed matrix.
func (a *Abundance) WithData(data *mat.Dense) (*Abundance, error) {
	r, c := data.Dims()
	if r != len(a.Samples) || c != len(a.OTUs) {
		return nil, fmt.Errorf("abundance data is %dx%d, want %dx%d", r, c, len(a.Samples), len(a.OTUs))
	}
	out := &Abundance{
		Samples:   append([]string(nil), a.Samples...),
		OTUs:      append([]string(nil), a.OTUs...),
		Data:      data,
		samplePos: make(map[string]int, len(a.Samples)),
	}
	for i, id := range out.Samples {
		out.samplePos[id] = i
	}
	return out, nil
}
