package inspect

import (
	"fmt"
	"strconv"
)

// TableRecord is one row of table metadata from the catalog. Nullable
// catalog fields are pointers; nil means the catalog has no value
// (views have no row estimate, tables without an auto-increment key
// have no counter).
type TableRecord struct {
	Name          string
	Type          string // raw catalog value: "BASE TABLE", "VIEW", …
	Rows          *uint64
	IndexLength   *uint64
	AutoIncrement *uint64
}

// TypeLabel maps the raw catalog table type to its display label.
func (r TableRecord) TypeLabel() string {
	switch r.Type {
	case "BASE TABLE":
		return "TABLE"
	case "VIEW":
		return "VIEW"
	default:
		return "UNKNOWN"
	}
}

// String renders the record as one fixed-width report line, e.g.
//
//	TABLE            pika |     1 rows |        16384 bytes | Y
func (r TableRecord) String() string {
	rows := "no"
	if r.Rows != nil {
		rows = strconv.FormatUint(*r.Rows, 10)
	}

	indexLength := "no"
	if r.IndexLength != nil {
		indexLength = strconv.FormatUint(*r.IndexLength, 10)
	}

	autoIncrement := "N"
	if r.AutoIncrement != nil && *r.AutoIncrement == 1 {
		autoIncrement = "Y"
	}

	return fmt.Sprintf("%-5s %15s | %5s rows | %12s bytes | %s",
		r.TypeLabel(), r.Name, rows, indexLength, autoIncrement)
}

// ColumnRecord is one row of column metadata from the catalog.
type ColumnRecord struct {
	TableName  string
	ColumnName string
	Nullable   string  // raw catalog value: "YES" or "NO"
	ColumnType string  // full declaration, e.g. "int(11)"
	Key        *string // "PRI", "UNI", "MUL", or nil
}

// NullLabel maps the raw IS_NULLABLE value to its display label.
// Unrecognized values pass through verbatim so future catalog values
// stay visible instead of being masked.
func (r ColumnRecord) NullLabel() string {
	switch r.Nullable {
	case "YES":
		return ""
	case "NO":
		return "NOT NULL"
	default:
		return r.Nullable
	}
}

// String renders the record as one fixed-width report line, e.g.
//
//	pika                         id | int(11) | NOT NULL | PRI
func (r ColumnRecord) String() string {
	key := ""
	if r.Key != nil {
		key = *r.Key
	}

	return fmt.Sprintf("%-15s %15s | %s | %s | %s",
		r.TableName, r.ColumnName, r.ColumnType, r.NullLabel(), key)
}
