// Package docstore loads the denormalized marriage and death documents into
// MongoDB.
package docstore

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Rana718/vitalgen/internal/projector"
)

const (
	MarriagesCollection = "marriages"
	DeathsCollection    = "deaths"
)

type Store struct {
	client   *mongo.Client
	database *mongo.Database
	log      *zap.Logger
}

// Connect opens the client and selects dbName, or the database named in the
// URL path when dbName is empty.
func Connect(ctx context.Context, url, dbName string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if dbName == "" {
		dbName = DatabaseName(url, clientOpts)
	}
	logger.Debug("using mongo database", zap.String("database", dbName))

	return &Store{
		client:   client,
		database: client.Database(dbName),
		log:      logger,
	}, nil
}

// DatabaseName picks the database from the URL path, then the auth source,
// then "vitalgen".
func DatabaseName(url string, opts *options.ClientOptions) string {
	parts := strings.Split(url, "/")
	if len(parts) > 3 {
		dbPart := parts[len(parts)-1]
		if idx := strings.Index(dbPart, "?"); idx >= 0 {
			dbPart = dbPart[:idx]
		}
		if dbPart != "" && dbPart != "admin" {
			return dbPart
		}
	}

	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}
	return "vitalgen"
}

func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Disconnect(context.Background())
	}
	return nil
}

// Reset drops both collections.
func (s *Store) Reset(ctx context.Context) error {
	for _, name := range []string{MarriagesCollection, DeathsCollection} {
		if err := s.database.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}
	return nil
}

// Load inserts the documents and, when withIndexes is set, creates the
// secondary indexes afterwards.
func (s *Store) Load(ctx context.Context, marriages []projector.MarriageDocument, deaths []projector.DeathDocument, withIndexes bool) (int, error) {
	inserted := 0

	n, err := s.insert(ctx, MarriagesCollection, toAny(marriages))
	inserted += n
	if err != nil {
		return inserted, err
	}

	n, err = s.insert(ctx, DeathsCollection, toAny(deaths))
	inserted += n
	if err != nil {
		return inserted, err
	}

	if !withIndexes {
		return inserted, nil
	}
	if err := s.createIndexes(ctx, MarriagesCollection, MarriageIndexes); err != nil {
		return inserted, err
	}
	if err := s.createIndexes(ctx, DeathsCollection, DeathIndexes); err != nil {
		return inserted, err
	}
	return inserted, nil
}

func (s *Store) insert(ctx context.Context, collection string, docs []interface{}) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	res, err := s.database.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	s.log.Debug("collection loaded", zap.String("collection", collection), zap.Int("documents", len(res.InsertedIDs)))
	return len(res.InsertedIDs), nil
}

func (s *Store) createIndexes(ctx context.Context, collection string, paths []string) error {
	names, err := s.database.Collection(collection).Indexes().CreateMany(ctx, indexModels(paths))
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
	}
	s.log.Debug("indexes created", zap.String("collection", collection), zap.Int("count", len(names)))
	return nil
}

func toAny[T any](docs []T) []interface{} {
	out := make([]interface{}, len(docs))
	for i := range docs {
		out[i] = docs[i]
	}
	return out
}
