package schema

import (
	"strings"
	"testing"

	"github.com/Rana718/vitalgen/internal/types"
)

func TestInsertionOrder(t *testing.T) {
	order, err := InsertionOrder()
	if err != nil {
		t.Fatalf("InsertionOrder failed: %v", err)
	}

	expected := []string{
		"User", "Register", "Name", "Occupation",
		"Director", "DirectorName", "Celebrant", "CelebrantName", "Officiant", "OfficiantName",
		"Person", "PersonName", "PersonOccupation",
		"Marriage", "Witness", "Death",
	}
	if len(order) != len(expected) {
		t.Fatalf("expected %d tables, got %d: %v", len(expected), len(order), order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
}

func TestEveryForeignKeyResolves(t *testing.T) {
	for _, table := range Tables() {
		for _, c := range table.Columns {
			if c.ForeignKeyTable == "" {
				continue
			}
			ref, ok := Lookup(c.ForeignKeyTable)
			if !ok {
				t.Errorf("%s.%s references unknown table %s", table.Name, c.Name, c.ForeignKeyTable)
				continue
			}
			found := false
			for _, rc := range ref.Columns {
				if rc.Name == c.ForeignKeyColumn && rc.IsPrimary {
					found = true
				}
			}
			if !found {
				t.Errorf("%s.%s references non-key column %s.%s", table.Name, c.Name, ref.Name, c.ForeignKeyColumn)
			}
		}
	}
}

func TestCycleDetected(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(types.SchemaTable{Name: "a", Columns: []types.SchemaColumn{{Name: "b_id", ForeignKeyTable: "b", ForeignKeyColumn: "id"}}})
	g.AddTable(types.SchemaTable{Name: "b", Columns: []types.SchemaColumn{{Name: "a_id", ForeignKeyTable: "a", ForeignKeyColumn: "id"}}})

	if _, err := g.BuildInsertionOrder(); err == nil {
		t.Fatal("expected circular dependency error")
	}
}

func TestCreateTableSQL(t *testing.T) {
	table, ok := Lookup("Witness")
	if !ok {
		t.Fatal("Witness table missing from catalog")
	}

	pg := PostgreSQL.CreateTableSQL(table)
	if !strings.HasPrefix(pg, `CREATE TABLE IF NOT EXISTS "Witness" (`) {
		t.Errorf("unexpected postgres DDL header: %s", pg)
	}
	if !strings.Contains(pg, `FOREIGN KEY ("marriage_id") REFERENCES "Marriage"("_id_marriage")`) {
		t.Errorf("postgres DDL missing marriage foreign key:\n%s", pg)
	}

	my := MySQL.CreateTableSQL(table)
	if !strings.Contains(my, "`person_id` INT NOT NULL") {
		t.Errorf("mysql DDL should use backticks and INT:\n%s", my)
	}
	if !strings.HasSuffix(my, "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;") {
		t.Errorf("mysql DDL missing engine clause:\n%s", my)
	}
}

func TestScriptDropsInReverse(t *testing.T) {
	stmts, err := SQLite.Script(true)
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}
	if stmts[0] != `DROP TABLE IF EXISTS "Death";` {
		t.Errorf("expected Death dropped first, got %s", stmts[0])
	}
	if PostgreSQL.DropTableSQL("User") != `DROP TABLE IF EXISTS "User" CASCADE;` {
		t.Errorf("postgres drop should cascade")
	}
	var indexes int
	for _, s := range stmts {
		if strings.HasPrefix(s, "CREATE INDEX") {
			indexes++
		}
	}
	if indexes == 0 {
		t.Error("expected index statements")
	}
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{"postgres": PostgreSQL, "MySQL": MySQL, "sqlite3": SQLite} {
		got, err := ParseDialect(in)
		if err != nil || got != want {
			t.Errorf("ParseDialect(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDialect("oracle"); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
