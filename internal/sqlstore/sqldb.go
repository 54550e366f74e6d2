package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/generator"
	"github.com/Rana718/vitalgen/internal/schema"
)

// SQLStore serves the database/sql drivers, MySQL and SQLite.
type SQLStore struct {
	db      *sql.DB
	qb      sq.StatementBuilderType
	dialect schema.Dialect
	log     *zap.Logger
}

// MySQLDSN turns a mysql:// URL into a go-sql-driver DSN. Other inputs are
// returned unchanged.
func MySQLDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.Index(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=REQUIRED", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=DISABLED", "tls=false")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=require", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=disable", "tls=false")

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func OpenMySQL(ctx context.Context, url string, logger *zap.Logger) (*SQLStore, error) {
	db, err := sql.Open("mysql", MySQLDSN(url))
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)

	return newSQLStore(ctx, db, schema.MySQL, logger)
}

// SQLitePath strips the sqlite:// scheme and adds the default pragmas.
func SQLitePath(url string) string {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL&_foreign_keys=on"
	}
	return dbPath
}

func OpenSQLite(ctx context.Context, url string, logger *zap.Logger) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", SQLitePath(url))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return newSQLStore(ctx, db, schema.SQLite, logger)
}

func newSQLStore(ctx context.Context, db *sql.DB, dialect schema.Dialect, logger *zap.Logger) (*SQLStore, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SQLStore{
		db:      db,
		qb:      sq.StatementBuilder.PlaceholderFormat(sq.Question),
		dialect: dialect,
		log:     logger,
	}, nil
}

func (s *SQLStore) Dialect() schema.Dialect { return s.dialect }

func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLStore) ResetSchema(ctx context.Context, withIndexes bool) error {
	stmts, err := s.dialect.Script(withIndexes)
	if err != nil {
		return err
	}

	if s.dialect == schema.MySQL {
		stmts = append([]string{"SET FOREIGN_KEY_CHECKS = 0;"}, stmts...)
		stmts = append(stmts, "SET FOREIGN_KEY_CHECKS = 1;")
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *SQLStore) Insert(ctx context.Context, tables []generator.TableRecords) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, t := range tables {
		for _, c := range chunk(t, defaultBatchSize) {
			query, args, err := buildInsert(s.qb, s.dialect, c, nil)
			if err != nil {
				return inserted, err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return inserted, fmt.Errorf("failed to insert into %s: %w", t.Table, err)
			}
			inserted += len(c.rows)
		}
		s.log.Debug("table loaded", zap.String("table", t.Table), zap.Int("rows", len(t.Records)))
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}
