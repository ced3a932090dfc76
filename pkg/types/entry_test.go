package types

import "testing"

func TestEntryValidate(t *testing.T) {
	resolved := func(mutate func(*Entry)) *Entry {
		e := &Entry{
			OTUTable:     "/data/x/RDP/x.otu_table.100.denovo.rdp_assigned",
			MetadataFile: "/data/x/x.metadata.txt",
			DiseaseLabel: DefaultDiseaseLabel,
			TableType:    TableClassic,
		}
		if mutate != nil {
			mutate(e)
		}
		return e
	}

	tests := []struct {
		name    string
		entry   *Entry
		wantErr bool
	}{
		{
			name:  "fully resolved entry",
			entry: resolved(nil),
		},
		{
			name:  "normal table type",
			entry: resolved(func(e *Entry) { e.TableType = TableNormal }),
		},
		{
			name:    "missing otu table",
			entry:   resolved(func(e *Entry) { e.OTUTable = "" }),
			wantErr: true,
		},
		{
			name:    "missing metadata file",
			entry:   resolved(func(e *Entry) { e.MetadataFile = "" }),
			wantErr: true,
		},
		{
			name:    "unknown table type",
			entry:   resolved(func(e *Entry) { e.TableType = "sideways" }),
			wantErr: true,
		},
		{
			name:    "missing disease label",
			entry:   resolved(func(e *Entry) { e.DiseaseLabel = "" }),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		})
	}
}
