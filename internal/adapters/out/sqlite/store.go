// Package sqlite provides the SQLite-backed order store: schema setup, the
// store-wide access guard and a GORM implementation of the Unit of Work pattern.
//
// The store owns exactly one database connection. Every access goes through
// one mutex owned by the Store value:
//
//   - a unit of work takes the guard in Begin and releases it in Commit or Rollback
//   - read-only queries and maintenance jobs run inside Store.Do
//
// Concurrent checkouts and admin edits are therefore linearized in the order
// they reach the guard, and two edits of the same order never interleave.
//
// Basic transaction management:
//
//	uow := store.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and is
// otherwise harmless, which is what makes the deferred rollback above safe.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"

	"storefront/internal/adapters/out/sqlite/orderrepo"
	"storefront/internal/core/ports"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverName is the database/sql driver registered by github.com/mattn/go-sqlite3.
const DriverName = "sqlite3"

// DSN builds a connection string for the database file at path with write-ahead
// logging and NORMAL synchronous mode. A power loss may drop the last commits
// but never corrupts the file.
func DSN(path string) string {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_synchronous", "NORMAL")
	params.Set("_busy_timeout", "5000")
	return "file:" + path + "?" + params.Encode()
}

// Store is the single owner of the order database.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewStore wraps an open *sql.DB, pins it to one connection and applies the
// schema. The schema is applied idempotently on every start; there is no
// migration history.
//
// Example:
//
//	sqlDB, err := sql.Open(sqlite.DriverName, sqlite.DSN("data.db"))
//	if err != nil {
//	    return err
//	}
//	store, err := sqlite.NewStore(sqlDB)
func NewStore(sqlDB *sql.DB) (*Store, error) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: DriverName,
		Conn:       sqlDB,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Create produces a new UnitOfWork bound to this store.
func (s *Store) Create() ports.UnitOfWork {
	return &GormUnitOfWork{store: s}
}

// Do runs fn while holding the store guard. fn must not start a unit of work.
func (s *Store) Do(ctx context.Context, fn func(db *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.db.WithContext(ctx))
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
