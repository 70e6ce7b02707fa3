package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestTableRecordString(t *testing.T) {
	tests := []struct {
		name string
		rec  TableRecord
		want string
	}{
		{
			name: "empty table without auto-increment",
			rec:  TableRecord{Name: "chu", Type: "BASE TABLE", Rows: ptr(uint64(0)), IndexLength: ptr(uint64(0))},
			want: "TABLE             chu |     0 rows |            0 bytes | N",
		},
		{
			name: "view has no row estimate",
			rec:  TableRecord{Name: "john", Type: "VIEW"},
			want: "VIEW             john |    no rows |           no bytes | N",
		},
		{
			name: "auto-increment table",
			rec:  TableRecord{Name: "pika", Type: "BASE TABLE", Rows: ptr(uint64(1)), IndexLength: ptr(uint64(16384)), AutoIncrement: ptr(uint64(1))},
			want: "TABLE            pika |     1 rows |        16384 bytes | Y",
		},
		{
			name: "unknown catalog type",
			rec:  TableRecord{Name: "sys_config", Type: "SYSTEM VIEW"},
			want: "UNKNOWN      sys_config |    no rows |           no bytes | N",
		},
		{
			name: "auto-increment beyond one renders N",
			rec:  TableRecord{Name: "pika", Type: "BASE TABLE", Rows: ptr(uint64(3)), IndexLength: ptr(uint64(16384)), AutoIncrement: ptr(uint64(4))},
			want: "TABLE            pika |     3 rows |        16384 bytes | N",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.String())
		})
	}
}

func TestTableRecordTypeLabel(t *testing.T) {
	assert.Equal(t, "TABLE", TableRecord{Type: "BASE TABLE"}.TypeLabel())
	assert.Equal(t, "VIEW", TableRecord{Type: "VIEW"}.TypeLabel())
	assert.Equal(t, "UNKNOWN", TableRecord{Type: "SYSTEM VIEW"}.TypeLabel())
	assert.Equal(t, "UNKNOWN", TableRecord{}.TypeLabel())
}

func TestColumnRecordString(t *testing.T) {
	tests := []struct {
		name string
		rec  ColumnRecord
		want string
	}{
		{
			name: "not null primary key",
			rec:  ColumnRecord{TableName: "pika", ColumnName: "id", Nullable: "NO", ColumnType: "int(11)", Key: ptr("PRI")},
			want: "pika                         id | int(11) | NOT NULL | PRI",
		},
		{
			name: "nullable column without key",
			rec:  ColumnRecord{TableName: "chu", ColumnName: "something", Nullable: "YES", ColumnType: "int(11)"},
			want: "chu                   something | int(11) |  | ",
		},
		{
			name: "unexpected nullability value passes through",
			rec:  ColumnRecord{TableName: "chu", ColumnName: "something", Nullable: "MAYBE", ColumnType: "text"},
			want: "chu                   something | text | MAYBE | ",
		},
		{
			name: "long table name is not truncated",
			rec:  ColumnRecord{TableName: "pim_catalog_product", ColumnName: "family_id", Nullable: "YES", ColumnType: "int(11)", Key: ptr("MUL")},
			want: "pim_catalog_product       family_id | int(11) |  | MUL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.String())
		})
	}
}

func TestColumnRecordNullLabel(t *testing.T) {
	assert.Equal(t, "", ColumnRecord{Nullable: "YES"}.NullLabel())
	assert.Equal(t, "NOT NULL", ColumnRecord{Nullable: "NO"}.NullLabel())
	assert.Equal(t, "MAYBE", ColumnRecord{Nullable: "MAYBE"}.NullLabel())
}
