package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCorpusIsComplete(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(c.NamesMen) == 0 || len(c.NamesWomen) == 0 {
		t.Fatal("expected both name pools to be populated")
	}
	if len(c.Occupations) < 50 {
		t.Errorf("expected at least 50 occupations, got %d", len(c.Occupations))
	}
	if len(c.Villages) < 15 {
		t.Errorf("expected at least 15 villages, got %d", len(c.Villages))
	}
}

func TestParseNormalizesEntries(t *testing.T) {
	// "Nováková" with a combining acute accent on the first a.
	data := []byte(`
villages: ["  Brno  ", ""]
streets: [Hlavní]
names_men: [Jan]
names_women: [Marie]
surnames_men: [Novák]
surnames_women: ["Nova\u0301kova\u0301"]
occupations: [kovář]
director_titles: [farář]
celebrant_titles: [kaplan]
officiant_titles: [děkan]
death_causes: [stáří]
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Villages) != 1 || c.Villages[0] != "Brno" {
		t.Errorf("expected trimmed single village, got %q", c.Villages)
	}
	if c.SurnamesWomen[0] != "Nováková" {
		t.Errorf("expected NFC surname, got %q", c.SurnamesWomen[0])
	}
}

func TestParseRejectsEmptyList(t *testing.T) {
	_, err := Parse([]byte("villages: [Brno]\n"))
	if !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, DefaultBytes(), 0644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def, _ := Default()
	if len(c.DeathCauses) != len(def.DeathCauses) {
		t.Errorf("expected %d death causes, got %d", len(def.DeathCauses), len(c.DeathCauses))
	}
}
