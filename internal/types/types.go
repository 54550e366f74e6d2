package types

type SchemaTable struct {
	Name    string
	Columns []SchemaColumn
	Indexes []SchemaIndex
}

type SchemaColumn struct {
	Name             string
	Type             string
	Nullable         bool
	IsPrimary        bool
	ForeignKeyTable  string
	ForeignKeyColumn string
}

type SchemaIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

// Dependencies lists the tables this table references, in column order.
func (t SchemaTable) Dependencies() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, col := range t.Columns {
		if col.ForeignKeyTable == "" || seen[col.ForeignKeyTable] {
			continue
		}
		seen[col.ForeignKeyTable] = true
		deps = append(deps, col.ForeignKeyTable)
	}
	return deps
}

// Manifest describes one generated dataset on disk.
type Manifest struct {
	RunID       string         `json:"run_id"`
	GeneratedAt string         `json:"generated_at"`
	Version     string         `json:"version"`
	Counts      map[string]int `json:"counts"`
	Files       []string       `json:"files"`
	Comment     string         `json:"comment"`
}
