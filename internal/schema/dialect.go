package schema

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/Rana718/vitalgen/internal/types"
)

// Dialect is a SQL flavour the relational output targets.
type Dialect string

const (
	PostgreSQL Dialect = "postgresql"
	MySQL      Dialect = "mysql"
	SQLite     Dialect = "sqlite"
)

func ParseDialect(provider string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "postgresql", "postgres", "pg":
		return PostgreSQL, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

// Quote wraps an identifier in the dialect's quote character.
func (d Dialect) Quote(name string) string {
	if d == MySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return pq.QuoteIdentifier(name)
}

func (d Dialect) FormatColumnType(column types.SchemaColumn) string {
	parts := []string{column.Type}
	if d == MySQL && column.Type == typeInt {
		parts[0] = "INT"
	}

	if column.IsPrimary {
		parts = append(parts, "PRIMARY KEY")
	} else if !column.Nullable {
		parts = append(parts, "NOT NULL")
	}

	return strings.Join(parts, " ")
}

func (d Dialect) CreateTableSQL(table types.SchemaTable) string {
	var lines []string
	var foreignKeys []string

	for _, column := range table.Columns {
		if column.ForeignKeyTable != "" && column.ForeignKeyColumn != "" {
			foreignKeys = append(foreignKeys, fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s(%s)",
				d.Quote(column.Name), d.Quote(column.ForeignKeyTable), d.Quote(column.ForeignKeyColumn)))
		}
	}

	lines = append(lines, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", d.Quote(table.Name)))

	for i, column := range table.Columns {
		comma := ","
		if i == len(table.Columns)-1 && len(foreignKeys) == 0 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("  %s %s%s", d.Quote(column.Name), d.FormatColumnType(column), comma))
	}

	for i, fk := range foreignKeys {
		comma := ","
		if i == len(foreignKeys)-1 {
			comma = ""
		}
		lines = append(lines, fk+comma)
	}

	if d == MySQL {
		lines = append(lines, ") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")
	} else {
		lines = append(lines, ");")
	}
	return strings.Join(lines, "\n")
}

func (d Dialect) CreateIndexSQL(index types.SchemaIndex) string {
	unique := ""
	if index.Unique {
		unique = "UNIQUE "
	}
	columns := make([]string, len(index.Columns))
	for i, c := range index.Columns {
		columns[i] = d.Quote(c)
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s);", unique, d.Quote(index.Name), d.Quote(index.Table), strings.Join(columns, ", "))
}

func (d Dialect) DropTableSQL(tableName string) string {
	if d == PostgreSQL {
		return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE;", d.Quote(tableName))
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", d.Quote(tableName))
}

// Script renders drop, create and index statements for the whole catalog.
// Drops run in reverse insertion order.
func (d Dialect) Script(withIndexes bool) ([]string, error) {
	order, err := InsertionOrder()
	if err != nil {
		return nil, err
	}

	var stmts []string
	for i := len(order) - 1; i >= 0; i-- {
		stmts = append(stmts, d.DropTableSQL(order[i]))
	}
	for _, name := range order {
		t, _ := Lookup(name)
		stmts = append(stmts, d.CreateTableSQL(t))
	}
	if withIndexes {
		for _, name := range order {
			t, _ := Lookup(name)
			for _, idx := range t.Indexes {
				stmts = append(stmts, d.CreateIndexSQL(idx))
			}
		}
	}
	return stmts, nil
}
