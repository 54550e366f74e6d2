package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/schema"
)

// Literal renders v as an inline SQL literal for d.
func Literal(d schema.Dialect, v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(val)
	case model.Date:
		if val.IsZero() {
			return "NULL"
		}
		return quoteString(d, val.String())
	case string:
		return quoteString(d, val)
	default:
		return quoteString(d, fmt.Sprint(val))
	}
}

func quoteString(d schema.Dialect, s string) string {
	switch d {
	case schema.PostgreSQL:
		return pq.QuoteLiteral(s)
	case schema.MySQL:
		s = strings.ReplaceAll(s, `\`, `\\`)
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
}

// InsertStatement renders one record as a self-contained INSERT.
func InsertStatement(d schema.Dialect, r model.Record) (string, error) {
	fields := r.Fields()
	columns := make([]string, len(fields))
	values := make([]interface{}, len(fields))
	for i, f := range fields {
		columns[i] = d.Quote(f.Column)
		values[i] = sq.Expr(Literal(d, f.Value))
	}

	query, _, err := sq.Insert(d.Quote(r.Entity())).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert for %s: %w", r.Entity(), err)
	}
	return query + ";", nil
}

// WriteSQL writes the optional DDL followed by one INSERT per record.
func WriteSQL(w io.Writer, d schema.Dialect, tables []generator.TableRecords, withSchema, withIndexes bool) (int, error) {
	bw := bufio.NewWriter(w)
	statements := 0

	if withSchema {
		ddl, err := d.Script(withIndexes)
		if err != nil {
			return 0, err
		}
		for _, stmt := range ddl {
			if _, err := fmt.Fprintf(bw, "%s\n\n", stmt); err != nil {
				return statements, err
			}
			statements++
		}
	}

	for _, t := range tables {
		if len(t.Records) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "-- %s (%d)\n", t.Table, len(t.Records)); err != nil {
			return statements, err
		}
		for _, r := range t.Records {
			stmt, err := InsertStatement(d, r)
			if err != nil {
				return statements, err
			}
			if _, err := fmt.Fprintln(bw, stmt); err != nil {
				return statements, err
			}
			statements++
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return statements, err
		}
	}

	return statements, bw.Flush()
}

func WriteSQLFile(path string, d schema.Dialect, tables []generator.TableRecords, withSchema, withIndexes bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := WriteSQL(file, d, tables, withSchema, withIndexes); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
