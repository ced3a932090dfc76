package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iseultl/microbiomeHD/pkg/types"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results_folders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveDerivesPaths(t *testing.T) {
	base := t.TempDir()
	registry := writeRegistry(t, `
crc_baxter:
  folder: crc_baxter_results
  region: V4
  sequencer: MiSeq
  year: "2016"
`)

	cat, err := Resolve(registry, base)
	require.NoError(t, err)
	require.Contains(t, cat, "crc_baxter")

	e := cat["crc_baxter"]
	assert.Equal(t,
		filepath.Join(base, "crc_baxter_results", "RDP", "crc_baxter.otu_table.100.denovo.rdp_assigned"),
		e.OTUTable)
	assert.Equal(t,
		filepath.Join(base, "crc_baxter_results", "crc_baxter.metadata.txt"),
		e.MetadataFile)
	assert.Equal(t,
		filepath.Join(base, "crc_baxter_results", "summary_file.txt"),
		e.SummaryFile)

	assert.Equal(t, "V4", e.Region)
	assert.Equal(t, "MiSeq", e.Sequencer)
	assert.Equal(t, "2016", e.Year)
	assert.Equal(t, types.DefaultDiseaseLabel, e.DiseaseLabel)
	assert.Equal(t, types.TableClassic, e.TableType)
}

func TestResolveStemWithoutUnderscore(t *testing.T) {
	base := t.TempDir()
	registry := writeRegistry(t, `
plain:
  folder: plain
`)

	cat, err := Resolve(registry, base)
	require.NoError(t, err)

	e := cat["plain"]
	assert.Equal(t,
		filepath.Join(base, "plain", "RDP", "plain.otu_table.100.denovo.rdp_assigned"),
		e.OTUTable)
	assert.Equal(t,
		filepath.Join(base, "plain", "plain.metadata.txt"),
		e.MetadataFile)
}

func TestResolveKeepsExplicitPaths(t *testing.T) {
	base := t.TempDir()
	registry := writeRegistry(t, `
custom:
  folder: custom_results
  otu_table: /elsewhere/custom.otu
  metadata_file: /elsewhere/custom.meta
  summary_file: /elsewhere/summary.txt
  table_type: normal
  disease_label: Status
`)

	cat, err := Resolve(registry, base)
	require.NoError(t, err)

	e := cat["custom"]
	assert.Equal(t, "/elsewhere/custom.otu", e.OTUTable)
	assert.Equal(t, "/elsewhere/custom.meta", e.MetadataFile)
	assert.Equal(t, "/elsewhere/summary.txt", e.SummaryFile)
	assert.Equal(t, types.TableNormal, e.TableType)
	assert.Equal(t, "Status", e.DiseaseLabel)
}

func TestResolveMissingSources(t *testing.T) {
	base := t.TempDir()

	t.Run("no otu table source", func(t *testing.T) {
		registry := writeRegistry(t, `
broken:
  region: V4
`)
		_, err := Resolve(registry, base)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrOTUTableSource)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("no metadata source", func(t *testing.T) {
		registry := writeRegistry(t, `
broken:
  otu_table: /elsewhere/broken.otu
`)
		_, err := Resolve(registry, base)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrMetadataSource)
	})

	t.Run("missing summary file is only a warning", func(t *testing.T) {
		registry := writeRegistry(t, `
ok:
  otu_table: /elsewhere/ok.otu
  metadata_file: /elsewhere/ok.meta
`)
		cat, err := Resolve(registry, base)
		require.NoError(t, err)
		assert.Empty(t, cat["ok"].SummaryFile)
	})
}

func TestResolveConditionCarriedThrough(t *testing.T) {
	base := t.TempDir()
	registry := writeRegistry(t, `
cdi_schubert:
  folder: cdi_schubert_results
  condition:
    antibiotics: recent
    cohort: inpatient
`)

	cat, err := Resolve(registry, base)
	require.NoError(t, err)
	assert.Equal(t, "recent", cat["cdi_schubert"].Condition["antibiotics"])
	assert.Equal(t, "inpatient", cat["cdi_schubert"].Condition["cohort"])
}

func TestResolveBadRegistry(t *testing.T) {
	base := t.TempDir()

	t.Run("missing registry file", func(t *testing.T) {
		_, err := Resolve(filepath.Join(base, "nope.yaml"), base)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		registry := writeRegistry(t, "a: [unclosed")
		_, err := Resolve(registry, base)
		require.Error(t, err)
	})
}

func TestFolderStem(t *testing.T) {
	tests := []struct {
		folder string
		want   string
	}{
		{"crc_baxter_results", "crc_baxter"},
		{"foo_bar_results", "foo_bar"},
		{"foo_results", "foo"},
		{"plain", "plain"},
		{"trailing_", "trailing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, folderStem(tt.folder), "folderStem(%q)", tt.folder)
	}
}
