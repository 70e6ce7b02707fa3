// Package database defines the read-only connection contract the rest
// of dbglance is written against. Callers never import the mysql
// package directly; they hold a Reader.
package database

import (
	"context"
	"time"
)

// Row represents a single result row.
type Row interface {
	Scan(dest ...any) error
}

// Rows represents a result set.
// Callers must always call Close() when done, even on error.
type Rows interface {
	// Next advances to the next row.
	// Returns false when no more rows exist or on error.
	Next() bool

	// Scan copies the current row's columns into the provided destinations.
	Scan(dest ...any) error

	// Close releases resources held by the result set.
	Close()

	// Err returns any error encountered during iteration.
	Err() error
}

// Reader is the read-only connection interface the inspector borrows.
// dbglance only ever issues SELECT statements.
type Reader interface {
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close releases all resources held by the connection pool.
	Close()

	// Query executes a SQL statement that returns multiple rows.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Config holds all settings needed to connect to and pool a database.
type Config struct {
	// DSN is the driver-native data source name.
	DSN string

	// Pool tuning
	MaxConns        int           // maximum number of open connections
	MaxIdleConns    int           // idle connections kept alive
	MaxConnLifetime time.Duration // maximum time a connection may be reused
	MaxConnIdleTime time.Duration // maximum time a connection may sit idle

	// Timeouts
	ConnectTimeout time.Duration // time limit for the initial ping
	QueryTimeout   time.Duration // per-query deadline applied by callers
}

// DefaultConfig returns pool settings suited to a short-lived CLI run:
// one report, a handful of sequential queries, no reuse to speak of.
func DefaultConfig(dsn string) *Config {
	return &Config{
		DSN:             dsn,
		MaxConns:        2,
		MaxIdleConns:    1,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 1 * time.Minute,
		ConnectTimeout:  10 * time.Second,
		QueryTimeout:    30 * time.Second,
	}
}
