// Package mysql implements database.Reader for MySQL on top of
// database/sql and go-sql-driver/mysql.
package mysql

import (
	"context"
	"database/sql"

	"github.com/mkarpis/dbglance/internal/database"
	"github.com/mkarpis/dbglance/internal/errs"

	_ "github.com/go-sql-driver/mysql" // register "mysql" driver
)

// Driver is a MySQL implementation of database.Reader.
// It owns the underlying pool and must be closed by the caller.
type Driver struct {
	db *sql.DB
}

// New opens a MySQL connection pool from cfg and pings it before
// returning, so an unreachable server or bad credentials fail here
// rather than on the first query.
func New(ctx context.Context, cfg *database.Config) (*Driver, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "invalid DSN", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	d := &Driver{db: db}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := d.Ping(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// NewFromDB wraps an existing *sql.DB. The caller keeps ownership of
// the handle's lifecycle. Used by tests to inject a mocked connection.
func NewFromDB(db *sql.DB) *Driver {
	return &Driver{db: db}
}

// Ping verifies the server is reachable and credentials are valid.
func (d *Driver) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

// Close releases the connection pool.
func (d *Driver) Close() {
	_ = d.db.Close()
}

// Query executes a parameterized SELECT and returns the result set.
func (d *Driver) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "query failed")
	}
	return &mysqlRows{rows: rows}, nil
}

// mysqlRows adapts *sql.Rows to database.Rows.
type mysqlRows struct {
	rows *sql.Rows
}

func (r *mysqlRows) Next() bool             { return r.rows.Next() }
func (r *mysqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *mysqlRows) Close()                 { _ = r.rows.Close() }
func (r *mysqlRows) Err() error             { return r.rows.Err() }
