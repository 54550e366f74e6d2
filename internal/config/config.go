package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const FileName = "vitalgen.config.json"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Version    string     `json:"version" mapstructure:"version"`
	CorpusPath string     `json:"corpus_path" mapstructure:"corpus_path"`
	Generation Generation `json:"generation" mapstructure:"generation"`
	Output     Output     `json:"output" mapstructure:"output"`
	Database   Database   `json:"database" mapstructure:"database"`
	Log        Log        `json:"log" mapstructure:"log"`
}

// Generation sizes every pool. Records is the marriage+death budget the
// person and marriage targets derive from.
type Generation struct {
	Records     int `json:"records" mapstructure:"records"`
	Persons     int `json:"persons" mapstructure:"persons"`
	Users       int `json:"users" mapstructure:"users"`
	Archives    int `json:"archives" mapstructure:"archives"`
	Fonds       int `json:"fonds" mapstructure:"fonds"`
	Signatures  int `json:"signatures" mapstructure:"signatures"`
	Directors   int `json:"directors" mapstructure:"directors"`
	Celebrants  int `json:"celebrants" mapstructure:"celebrants"`
	Officiants  int `json:"officiants" mapstructure:"officiants"`
	Occupations int `json:"occupations" mapstructure:"occupations"`
	Villages    int `json:"villages" mapstructure:"villages"`
	Marriages   int `json:"marriages" mapstructure:"marriages"`
	Deaths      int `json:"deaths" mapstructure:"deaths"`
}

type Output struct {
	Dir     string `json:"dir" mapstructure:"dir"`
	SQLFile string `json:"sql_file" mapstructure:"sql_file"`
	JSON    bool   `json:"json" mapstructure:"json"`
	CSV     bool   `json:"csv" mapstructure:"csv"`
}

type Database struct {
	Provider      string `json:"provider" mapstructure:"provider"`
	URLEnv        string `json:"url_env" mapstructure:"url_env"`
	MongoURLEnv   string `json:"mongo_url_env" mapstructure:"mongo_url_env"`
	MongoDatabase string `json:"mongo_database" mapstructure:"mongo_database"`
	CreateIndexes bool   `json:"create_indexes" mapstructure:"create_indexes"`
}

type Log struct {
	Level string `json:"level" mapstructure:"level"`
	JSON  bool   `json:"json" mapstructure:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Generation: Generation{
			Records:     1000,
			Users:       2,
			Archives:    3,
			Fonds:       5,
			Signatures:  15,
			Directors:   3,
			Celebrants:  3,
			Officiants:  3,
			Occupations: 50,
			Villages:    15,
			Marriages:   -1,
			Deaths:      -1,
		},
		Output: Output{
			Dir:     "output",
			SQLFile: "inserts.sql",
			JSON:    true,
		},
		Database: Database{
			Provider:      "postgresql",
			URLEnv:        "DATABASE_URL",
			MongoURLEnv:   "MONGODB_URL",
			MongoDatabase: "test",
			CreateIndexes: true,
		},
		Log: Log{Level: "info"},
	}
}

// SetDefaults registers every key of DefaultConfig on v so that env
// variables bind even when no config file is present.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("corpus_path", d.CorpusPath)

	g := d.Generation
	v.SetDefault("generation.records", g.Records)
	v.SetDefault("generation.persons", g.Persons)
	v.SetDefault("generation.users", g.Users)
	v.SetDefault("generation.archives", g.Archives)
	v.SetDefault("generation.fonds", g.Fonds)
	v.SetDefault("generation.signatures", g.Signatures)
	v.SetDefault("generation.directors", g.Directors)
	v.SetDefault("generation.celebrants", g.Celebrants)
	v.SetDefault("generation.officiants", g.Officiants)
	v.SetDefault("generation.occupations", g.Occupations)
	v.SetDefault("generation.villages", g.Villages)
	v.SetDefault("generation.marriages", g.Marriages)
	v.SetDefault("generation.deaths", g.Deaths)

	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.sql_file", d.Output.SQLFile)
	v.SetDefault("output.json", d.Output.JSON)
	v.SetDefault("output.csv", d.Output.CSV)

	v.SetDefault("database.provider", d.Database.Provider)
	v.SetDefault("database.url_env", d.Database.URLEnv)
	v.SetDefault("database.mongo_url_env", d.Database.MongoURLEnv)
	v.SetDefault("database.mongo_database", d.Database.MongoDatabase)
	v.SetDefault("database.create_indexes", d.Database.CreateIndexes)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Output.SQLFile == "" {
		cfg.Output.SQLFile = "inserts.sql"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.MongoURLEnv == "" {
		cfg.Database.MongoURLEnv = "MONGODB_URL"
	}
	if cfg.Database.MongoDatabase == "" {
		cfg.Database.MongoDatabase = "test"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) GetMongoURL() (string, error) {
	mongoURL := os.Getenv(c.Database.MongoURLEnv)
	if mongoURL == "" {
		return "", fmt.Errorf("mongodb URL not found in environment variable %s", c.Database.MongoURLEnv)
	}
	return mongoURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if strings.ToLower(c.Database.Provider) == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: unsupported database provider: %s. Supported providers: %v",
			ErrInvalidConfig, c.Database.Provider, supportedProviders)
	}

	g := c.Generation
	if g.Records < 0 || g.Persons < 0 || g.Occupations < 0 || g.Villages < 0 {
		return fmt.Errorf("%w: generation counts cannot be negative", ErrInvalidConfig)
	}

	required := []struct {
		key   string
		value int
	}{
		{"users", g.Users},
		{"archives", g.Archives},
		{"fonds", g.Fonds},
		{"signatures", g.Signatures},
		{"directors", g.Directors},
		{"celebrants", g.Celebrants},
		{"officiants", g.Officiants},
	}
	for _, r := range required {
		if r.value <= 0 {
			return fmt.Errorf("%w: generation.%s must be positive, got %d", ErrInvalidConfig, r.key, r.value)
		}
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir cannot be empty", ErrInvalidConfig)
	}

	return nil
}

// PersonsTarget is the population size the generator aims for.
func (g Generation) PersonsTarget() int {
	if g.Persons > 0 {
		return g.Persons
	}
	return (g.Records / 3) * 8
}

// WriteDefault writes DefaultConfig as indented JSON to path.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
