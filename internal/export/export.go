// Package export writes a generated dataset to disk: the SQL INSERT
// script, the document collections as JSON, an optional CSV bundle and a
// run manifest.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/projector"
	"github.com/Rana718/vitalgen/internal/schema"
	"github.com/Rana718/vitalgen/internal/types"
)

const (
	MarriagesFile = "marriages.json"
	DeathsFile    = "deaths.json"
	ManifestFile  = "manifest.json"
	CSVDir        = "csv"
)

type Options struct {
	Dir     string
	SQLFile string
	Dialect schema.Dialect
	SQL     bool
	Schema  bool
	Indexes bool
	JSON    bool
	CSV     bool
	Version string
}

// Documents are the two denormalized collections of one run.
type Documents struct {
	Marriages []projector.MarriageDocument
	Deaths    []projector.DeathDocument
}

// Write emits every requested artifact and returns the manifest it wrote.
func Write(ds *generator.Dataset, docs Documents, opts Options) (*types.Manifest, error) {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	tables, err := ds.Tables()
	if err != nil {
		return nil, err
	}

	manifest := &types.Manifest{
		RunID:       ds.RunID.String(),
		GeneratedAt: ds.GeneratedAt.Format(time.RFC3339),
		Version:     opts.Version,
		Counts:      ds.Counts(),
		Comment:     fmt.Sprintf("%s dialect", opts.Dialect),
	}
	manifest.Counts["marriage_documents"] = len(docs.Marriages)
	manifest.Counts["death_documents"] = len(docs.Deaths)

	if opts.SQL {
		path := filepath.Join(opts.Dir, opts.SQLFile)
		if err := WriteSQLFile(path, opts.Dialect, tables, opts.Schema, opts.Indexes); err != nil {
			return nil, err
		}
		manifest.Files = append(manifest.Files, opts.SQLFile)
	}

	if opts.JSON {
		if err := writeJSON(filepath.Join(opts.Dir, MarriagesFile), docs.Marriages); err != nil {
			return nil, err
		}
		if err := writeJSON(filepath.Join(opts.Dir, DeathsFile), docs.Deaths); err != nil {
			return nil, err
		}
		manifest.Files = append(manifest.Files, MarriagesFile, DeathsFile)
	}

	if opts.CSV {
		files, err := WriteCSV(filepath.Join(opts.Dir, CSVDir), tables)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			manifest.Files = append(manifest.Files, filepath.Join(CSVDir, f))
		}
	}

	manifest.Files = append(manifest.Files, ManifestFile)
	if err := writeJSON(filepath.Join(opts.Dir, ManifestFile), manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

func writeJSON(filePath string, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(filePath), err)
	}

	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
