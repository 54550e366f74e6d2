package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Rana718/vitalgen/internal/config"
	"github.com/Rana718/vitalgen/internal/corpus"
	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/schema"
)

func testDataset(t *testing.T) *generator.Dataset {
	t.Helper()
	c, err := corpus.Default()
	require.NoError(t, err)

	cfg := config.DefaultConfig().Generation
	cfg.Records = 120
	g, err := generator.New(cfg, c, generator.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	ds, err := g.Run()
	require.NoError(t, err)
	return ds
}

func TestMySQLDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mysql://root:pw@localhost:3306/vital", "root:pw@tcp(localhost:3306)/vital"},
		{"mysql://u:p@db:3306/vital?ssl-mode=REQUIRED", "u:p@tcp(db:3306)/vital?tls=skip-verify"},
		{"root:pw@tcp(localhost:3306)/vital", "root:pw@tcp(localhost:3306)/vital"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MySQLDSN(tt.in))
	}
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "/tmp/v.db?cache=shared&_journal_mode=WAL&_foreign_keys=on", SQLitePath("sqlite:///tmp/v.db"))
	assert.Equal(t, "v.db?mode=memory", SQLitePath("sqlite://v.db?mode=memory"))
}

func TestChunkSplitsOnColumnsAndSize(t *testing.T) {
	persons := []model.Record{
		model.Person{ID: 0, Sex: model.Female},
		model.Person{ID: 1, Sex: model.Male},
		model.Person{ID: 2, Sex: model.Male, MotherID: model.IntPtr(0), FatherID: model.IntPtr(1)},
		model.Person{ID: 3, Sex: model.Male, MotherID: model.IntPtr(0), FatherID: model.IntPtr(1)},
		model.Person{ID: 4, Sex: model.Female},
	}

	chunks := chunk(generator.TableRecords{Table: model.TablePerson, Records: persons}, 100)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0].rows, 2)
	assert.Len(t, chunks[1].rows, 2)
	assert.Contains(t, chunks[1].columns, "mother_id")
	assert.NotContains(t, chunks[0].columns, "mother_id")

	chunks = chunk(generator.TableRecords{Table: model.TablePerson, Records: persons[:2]}, 1)
	assert.Len(t, chunks, 2)
}

func TestSQLiteLoad(t *testing.T) {
	ctx := context.Background()
	url := "sqlite://" + filepath.Join(t.TempDir(), "vital.db")

	store, err := New(ctx, "sqlite", url, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, schema.SQLite, store.Dialect())

	require.NoError(t, store.ResetSchema(ctx, true))

	ds := testDataset(t)
	tables, err := ds.Tables()
	require.NoError(t, err)

	inserted, err := store.Insert(ctx, tables)
	require.NoError(t, err)

	total := 0
	for _, n := range ds.Counts() {
		total += n
	}
	assert.Equal(t, total, inserted)

	db, err := sql.Open("sqlite3", SQLitePath(url))
	require.NoError(t, err)
	defer db.Close()

	for table, want := range ds.Counts() {
		var got int
		require.NoError(t, db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %q", table)).Scan(&got))
		assert.Equal(t, want, got, table)
	}

	// a second reset drops every table
	require.NoError(t, store.ResetSchema(ctx, false))
	var marriages int
	require.NoError(t, db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %q", model.TableMarriage)).Scan(&marriages))
	assert.Zero(t, marriages)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "oracle", "", nil)
	assert.Error(t, err)
}
