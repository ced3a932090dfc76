package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iseultl/microbiomeHD/pkg/frame"
)

func TestRelAbundance(t *testing.T) {
	f, err := frame.New("", []string{"s1", "s2"}, []string{"otu1", "otu2"},
		[][]string{{"3", "1"}, {"5", "5"}})
	require.NoError(t, err)
	a, err := frame.AbundanceFromFrame(f)
	require.NoError(t, err)

	rel, err := relAbundance(a)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, rel.Data.At(0, 0), 1e-12)
	assert.InDelta(t, 0.25, rel.Data.At(0, 1), 1e-12)
	assert.InDelta(t, 0.5, rel.Data.At(1, 0), 1e-12)
	// The input table is left untouched.
	assert.Equal(t, 3.0, a.Data.At(0, 0))
}

func TestRelAbundanceZeroSample(t *testing.T) {
	f, err := frame.New("", []string{"s1"}, []string{"otu1", "otu2"},
		[][]string{{"0", "0"}})
	require.NoError(t, err)
	a, err := frame.AbundanceFromFrame(f)
	require.NoError(t, err)

	_, err = relAbundance(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s1")
}
