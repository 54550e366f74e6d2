package sqlstore

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/model"
	"github.com/Rana718/vitalgen/internal/schema"
)

type PostgresStore struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
	log  *zap.Logger
}

func NewPostgres(ctx context.Context, url string, logger *zap.Logger) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresStore{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log:  logger,
	}, nil
}

func (p *PostgresStore) Dialect() schema.Dialect { return schema.PostgreSQL }

func (p *PostgresStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *PostgresStore) ResetSchema(ctx context.Context, withIndexes bool) error {
	stmts, err := schema.PostgreSQL.Script(withIndexes)
	if err != nil {
		return err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}
	return tx.Commit(ctx)
}

// pgDate hands dates to pgx as time.Time so the DATE codec encodes them.
func pgDate(v interface{}) interface{} {
	if d, ok := v.(model.Date); ok {
		if d.IsZero() {
			return nil
		}
		return d.Time()
	}
	return v
}

// Insert queues every chunk of a table on one pgx batch inside a single
// transaction.
func (p *PostgresStore) Insert(ctx context.Context, tables []generator.TableRecords) (int, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, t := range tables {
		if len(t.Records) == 0 {
			continue
		}

		batch := &pgx.Batch{}
		for _, c := range chunk(t, defaultBatchSize) {
			query, args, err := buildInsert(p.qb, schema.PostgreSQL, c, pgDate)
			if err != nil {
				return inserted, err
			}
			batch.Queue(query, args...)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return inserted, fmt.Errorf("failed to insert into %s: %w", t.Table, err)
		}
		inserted += len(t.Records)
		p.log.Debug("table loaded", zap.String("table", t.Table), zap.Int("rows", len(t.Records)))
	}

	if err := tx.Commit(ctx); err != nil {
		return inserted, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}
