package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hannesw/tgeld/internal/config"
	"github.com/hannesw/tgeld/internal/log"
	"github.com/hannesw/tgeld/internal/models"
)

const (
	dbFileName        = "tgeld.db"
	migrationFlagFile = "migration_v1.flag"
)

// ErrStaleUpdate reports an update that matched no rows: the identity was
// stale or the row is gone. Callers treat it as a warning, not a failure.
var ErrStaleUpdate = errors.New("no rows updated")

// Store owns the SQLite connection. Every operation serializes on mu so no
// two of them race on the single backing file. Related-row resolution runs
// outside the lock held for the primary query (see resolveTasks).
type Store struct {
	gdb *gorm.DB
	mu  sync.Mutex
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the process-wide store, opening it on first use. Concurrent
// first callers share the same single attempt; once it fails, every later
// call reports that same error until the process restarts.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			defaultErr = fmt.Errorf("load config: %w", err)
			return
		}
		defaultStore, defaultErr = Open(cfg.DataDir)
	})
	return defaultStore, defaultErr
}

// Open creates dir if needed, applies the one-shot legacy reset and opens the
// database with its schema migrated.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFileName)
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := resetLegacyTables(gdb, dir); err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&models.Task{}, &models.TimeEntry{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	log.With("db").Debug("store opened", "path", dbPath)
	return &Store{gdb: gdb}, nil
}

// resetLegacyTables drops the pre-v1 tables exactly once, gated by a sentinel
// flag file next to the database. Legacy data is intentionally discarded on
// the first run after the upgrade.
func resetLegacyTables(gdb *gorm.DB, dir string) error {
	flagPath := filepath.Join(dir, migrationFlagFile)
	if _, err := os.Stat(flagPath); err == nil {
		return nil
	}

	// On a fresh install the tables do not exist yet; drop failures are fine.
	_ = gdb.Migrator().DropTable(&models.Task{})
	_ = gdb.Migrator().DropTable(&models.TimeEntry{})

	if err := os.WriteFile(flagPath, []byte("migrated"), 0644); err != nil {
		return fmt.Errorf("write migration flag: %w", err)
	}
	log.With("db").Debug("legacy tables reset", "flag", flagPath)
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
