// Package sqlstore loads a generated dataset into a relational database.
package sqlstore

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/schema"
)

const defaultBatchSize = 100

// Store recreates the schema and bulk inserts rows in dependency order.
type Store interface {
	Dialect() schema.Dialect
	ResetSchema(ctx context.Context, withIndexes bool) error
	Insert(ctx context.Context, tables []generator.TableRecords) (int, error)
	Close() error
}

// New connects to provider at url.
func New(ctx context.Context, provider, url string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dialect, err := schema.ParseDialect(provider)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case schema.PostgreSQL:
		return NewPostgres(ctx, url, logger)
	case schema.MySQL:
		return OpenMySQL(ctx, url, logger)
	default:
		return OpenSQLite(ctx, url, logger)
	}
}

// insertChunk is a run of records sharing one column list.
type insertChunk struct {
	table   string
	columns []string
	rows    [][]interface{}
}

// chunk groups consecutive records with identical columns into multi-row
// inserts of at most size rows.
func chunk(t generator.TableRecords, size int) []insertChunk {
	var out []insertChunk
	var cur *insertChunk
	key := ""

	for _, r := range t.Records {
		cols := model.Columns(r)
		k := strings.Join(cols, ",")
		if cur == nil || k != key || len(cur.rows) >= size {
			out = append(out, insertChunk{table: t.Table, columns: cols})
			cur = &out[len(out)-1]
			key = k
		}
		cur.rows = append(cur.rows, model.Values(r))
	}
	return out
}

func buildInsert(qb sq.StatementBuilderType, d schema.Dialect, c insertChunk, convert func(interface{}) interface{}) (string, []interface{}, error) {
	quoted := make([]string, len(c.columns))
	for i, col := range c.columns {
		quoted[i] = d.Quote(col)
	}

	ins := qb.Insert(d.Quote(c.table)).Columns(quoted...)
	for _, row := range c.rows {
		if convert != nil {
			converted := make([]interface{}, len(row))
			for i, v := range row {
				converted[i] = convert(v)
			}
			row = converted
		}
		ins = ins.Values(row...)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build insert for %s: %w", c.table, err)
	}
	return query, args, nil
}
