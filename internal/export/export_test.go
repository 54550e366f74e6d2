package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rana718/vitalgen/internal/config"
	"github.com/Rana718/vitalgen/internal/corpus"
	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/projector"
	"github.com/Rana718/vitalgen/internal/schema"
	"github.com/Rana718/vitalgen/internal/types"
)

func testDataset(t *testing.T) *generator.Dataset {
	t.Helper()
	c, err := corpus.Default()
	if err != nil {
		t.Fatalf("Failed to load corpus: %v", err)
	}

	cfg := config.DefaultConfig().Generation
	cfg.Records = 30
	g, err := generator.New(cfg, c, generator.WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}

	ds, err := g.Run()
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}
	return ds
}

func TestLiteral(t *testing.T) {
	cases := []struct {
		dialect schema.Dialect
		value   interface{}
		want    string
	}{
		{schema.PostgreSQL, nil, "NULL"},
		{schema.PostgreSQL, true, "TRUE"},
		{schema.SQLite, false, "FALSE"},
		{schema.MySQL, 42, "42"},
		{schema.PostgreSQL, "O'Brien", "'O''Brien'"},
		{schema.PostgreSQL, `a\b`, ` E'a\\b'`},
		{schema.MySQL, `a\b'`, `'a\\b'''`},
		{schema.SQLite, "Nováková", "'Nováková'"},
		{schema.SQLite, model.MustParseDate("1830-05-02"), "'1830-05-02'"},
		{schema.SQLite, model.Date{}, "NULL"},
	}

	for _, c := range cases {
		if got := Literal(c.dialect, c.value); got != c.want {
			t.Errorf("Literal(%s, %v) = %q, want %q", c.dialect, c.value, got, c.want)
		}
	}
}

func TestInsertStatement(t *testing.T) {
	stmt, err := InsertStatement(schema.PostgreSQL, model.User{ID: 0, Name: "Jan Novák"})
	if err != nil {
		t.Fatalf("InsertStatement failed: %v", err)
	}
	want := `INSERT INTO "User" ("_id_user","name") VALUES (0,'Jan Novák');`
	if stmt != want {
		t.Errorf("unexpected statement:\n got %s\nwant %s", stmt, want)
	}

	person := model.Person{ID: 3, Surname: "Novák", Birth: model.MustParseDate("1830-01-01"), Sex: model.Male}
	stmt, err = InsertStatement(schema.MySQL, person)
	if err != nil {
		t.Fatalf("InsertStatement failed: %v", err)
	}
	if strings.Contains(stmt, "mother_id") {
		t.Errorf("absent parents should not be emitted: %s", stmt)
	}
	if !strings.HasPrefix(stmt, "INSERT INTO `Person` (`_id_person`,") {
		t.Errorf("mysql statement should use backticks: %s", stmt)
	}
}

func TestWriteSQLOrder(t *testing.T) {
	ds := testDataset(t)
	tables, err := ds.Tables()
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := WriteSQL(&buf, schema.PostgreSQL, tables, false, false)
	if err != nil {
		t.Fatalf("WriteSQL failed: %v", err)
	}

	records, _ := ds.Records()
	if n != len(records) {
		t.Errorf("expected %d statements, got %d", len(records), n)
	}

	out := buf.String()
	userPos := strings.Index(out, `INSERT INTO "User"`)
	personPos := strings.Index(out, `INSERT INTO "Person"`)
	deathPos := strings.Index(out, `INSERT INTO "Death"`)
	if userPos < 0 || personPos < 0 || deathPos < 0 {
		t.Fatal("expected User, Person and Death inserts")
	}
	if !(userPos < personPos && personPos < deathPos) {
		t.Error("inserts are not in dependency order")
	}
}

func TestWrite(t *testing.T) {
	ds := testDataset(t)
	marriages, deaths := projector.New(ds, nil).Project()
	dir := t.TempDir()

	manifest, err := Write(ds, Documents{Marriages: marriages, Deaths: deaths}, Options{
		Dir:     dir,
		SQLFile: "inserts.sql",
		Dialect: schema.SQLite,
		SQL:     true,
		Schema:  true,
		JSON:    true,
		CSV:     true,
		Version: "test",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, f := range manifest.Files {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("manifest lists missing file %s", f)
		}
	}

	script, err := os.ReadFile(filepath.Join(dir, "inserts.sql"))
	if err != nil {
		t.Fatalf("Failed to read script: %v", err)
	}
	if !strings.HasPrefix(string(script), `DROP TABLE IF EXISTS "Death";`) {
		t.Error("script should start by dropping tables")
	}

	data, err := os.ReadFile(filepath.Join(dir, MarriagesFile))
	if err != nil {
		t.Fatalf("Failed to read marriages: %v", err)
	}
	var docs []map[string]interface{}
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("marriages.json is not valid JSON: %v", err)
	}
	if len(docs) != len(ds.Marriages) {
		t.Errorf("expected %d marriage documents, got %d", len(ds.Marriages), len(docs))
	}

	var saved types.Manifest
	raw, _ := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err := json.Unmarshal(raw, &saved); err != nil {
		t.Fatalf("manifest.json is not valid JSON: %v", err)
	}
	if saved.RunID != ds.RunID.String() {
		t.Errorf("manifest run id mismatch: %s", saved.RunID)
	}
	if saved.Counts[model.TablePerson] != len(ds.Persons) {
		t.Errorf("manifest person count mismatch")
	}
}

func TestWriteCSV(t *testing.T) {
	ds := testDataset(t)
	tables, _ := ds.Tables()
	dir := t.TempDir()

	files, err := WriteCSV(dir, tables)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if len(files) != len(tables) {
		t.Errorf("expected %d files, got %d", len(tables), len(files))
	}

	file, err := os.Open(filepath.Join(dir, "Person.csv"))
	if err != nil {
		t.Fatalf("Failed to open Person.csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse Person.csv: %v", err)
	}
	if rows[0][0] != "_id_person" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if len(rows)-1 != len(ds.Persons) {
		t.Errorf("expected %d person rows, got %d", len(ds.Persons), len(rows)-1)
	}
	// first-generation mother has no parents
	if rows[1][8] != "" || rows[1][9] != "" {
		t.Errorf("expected empty parent columns, got %v", rows[1])
	}
}
