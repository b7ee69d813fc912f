// Package store loads the combined career table into the SQLite database
// the career data service reads from.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ethandillon/DreamJobRealityCheck/internal/config"
	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
)

type DB struct {
	Pool *sql.DB
	path string
}

func Open(path string) (*DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, config.SQLiteBusyTimeout.Milliseconds())

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storageError(path, "failed to open database", err)
	}

	// sqlite wants a single writer
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), config.SQLitePingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, storageError(path, "failed to connect to database", err)
	}

	return &DB{Pool: pool, path: path}, nil
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}

func storageError(path, message string, err error) error {
	return apperrors.NewStorageError(fmt.Sprintf("%s '%s'", message, path), err).
		WithContext(apperrors.CtxPath, path)
}
