// Package inspect reads table and column metadata for one schema from
// the MySQL information_schema catalog.
package inspect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkarpis/dbglance/internal/database"
)

// Inspector issues read-only metadata queries against a borrowed
// connection. It does not own the connection's lifecycle.
type Inspector struct {
	db     database.Reader
	schema string
}

// New creates an Inspector for the given target schema.
func New(db database.Reader, schema string) *Inspector {
	return &Inspector{db: db, schema: schema}
}

// No ORDER BY here: table order is whatever the server returns and is
// deliberately left undefined.
const tablesQuery = `
	SELECT table_name,
	       table_type,
	       table_rows,
	       index_length,
	       auto_increment
	FROM information_schema.tables
	WHERE table_schema = ?`

const columnsQuery = `
	SELECT table_name,
	       column_name,
	       is_nullable,
	       column_type,
	       column_key
	FROM information_schema.columns
	WHERE table_schema = ?
	ORDER BY table_name ASC, ordinal_position ASC`

// Tables returns one record per table or view in the target schema.
// Every call re-reads the catalog; nothing is cached.
func (i *Inspector) Tables(ctx context.Context) ([]TableRecord, error) {
	rows, err := i.db.Query(ctx, tablesQuery, i.schema)
	if err != nil {
		return nil, fmt.Errorf("table metadata query: %w", err)
	}
	defer rows.Close()

	var records []TableRecord
	for rows.Next() {
		var rec TableRecord
		var tableRows, indexLength, autoIncrement sql.Null[uint64]

		if err := rows.Scan(&rec.Name, &rec.Type, &tableRows, &indexLength, &autoIncrement); err != nil {
			return nil, fmt.Errorf("scan table record: %w", err)
		}

		rec.Rows = fromNull(tableRows)
		rec.IndexLength = fromNull(indexLength)
		rec.AutoIncrement = fromNull(autoIncrement)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table metadata query: %w", err)
	}
	return records, nil
}

// Columns returns one record per column in the target schema, grouped
// by table name and ordered by ordinal position within each table.
func (i *Inspector) Columns(ctx context.Context) ([]ColumnRecord, error) {
	rows, err := i.db.Query(ctx, columnsQuery, i.schema)
	if err != nil {
		return nil, fmt.Errorf("column metadata query: %w", err)
	}
	defer rows.Close()

	var records []ColumnRecord
	for rows.Next() {
		var rec ColumnRecord
		var key sql.NullString

		if err := rows.Scan(&rec.TableName, &rec.ColumnName, &rec.Nullable, &rec.ColumnType, &key); err != nil {
			return nil, fmt.Errorf("scan column record: %w", err)
		}

		if key.Valid {
			rec.Key = &key.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("column metadata query: %w", err)
	}
	return records, nil
}

func fromNull(v sql.Null[uint64]) *uint64 {
	if !v.Valid {
		return nil
	}
	u := v.V
	return &u
}
