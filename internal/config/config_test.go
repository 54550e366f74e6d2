package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Generation.Records != 1000 {
		t.Errorf("Expected records to be 1000, got %d", config.Generation.Records)
	}

	if config.Generation.PersonsTarget() != 2664 {
		t.Errorf("Expected persons target 2664, got %d", config.Generation.PersonsTarget())
	}

	if config.Output.SQLFile != "inserts.sql" {
		t.Errorf("Expected sql_file to be 'inserts.sql', got '%s'", config.Output.SQLFile)
	}

	if config.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", config.Database.Provider)
	}

	if config.Database.MongoDatabase != "test" {
		t.Errorf("Expected mongo database to be 'test', got '%s'", config.Database.MongoDatabase)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, FileName)

	if err := os.WriteFile(path, []byte(`{"generation": {"records": 90, "users": 4}, "database": {"provider": "sqlite"}}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Generation.Records != 90 {
		t.Errorf("Expected records 90, got %d", cfg.Generation.Records)
	}
	if cfg.Generation.Users != 4 {
		t.Errorf("Expected users 4, got %d", cfg.Generation.Users)
	}
	if cfg.Generation.Signatures != 15 {
		t.Errorf("Expected default signatures 15, got %d", cfg.Generation.Signatures)
	}
	if cfg.Generation.Marriages != -1 {
		t.Errorf("Expected default marriages -1, got %d", cfg.Generation.Marriages)
	}
	if cfg.Database.Provider != "sqlite" {
		t.Errorf("Expected provider sqlite, got %s", cfg.Database.Provider)
	}
	if cfg.Generation.PersonsTarget() != 240 {
		t.Errorf("Expected persons target 240, got %d", cfg.Generation.PersonsTarget())
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Provider = "oracle"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for unknown provider, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Generation.Fonds = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for zero fonds, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Generation.Records = -5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for negative records, got %v", err)
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "VITALGEN_TEST_DB_URL"

	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected error when env variable is unset")
	}

	t.Setenv("VITALGEN_TEST_DB_URL", "postgres://localhost/test")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("GetDatabaseURL failed: %v", err)
	}
	if url != "postgres://localhost/test" {
		t.Errorf("Unexpected url %s", url)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("Expected error when config already exists")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}
	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Generation.Officiants != 3 {
		t.Errorf("Expected officiants 3, got %d", cfg.Generation.Officiants)
	}
}
