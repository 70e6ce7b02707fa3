package mysql

import (
	"context"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/mkarpis/dbglance/internal/errs"
)

// MySQL server error numbers this tool cares about.
// Full list: https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	errDBAccessDenied     = 1044 // access denied for user to database
	errAccessDenied       = 1045 // access denied for user (bad credentials)
	errNoDatabase         = 1046 // no database selected
	errUnknownDatabase    = 1049
	errTooManyConns       = 1040
	errBadFieldError      = 1054
	errParseError         = 1064
	errTableAccessDenied  = 1142 // command denied to user for table
	errColumnAccessDenied = 1143
	errNoSuchTable        = 1146
)

// mapError translates go-sql-driver/mysql errors into *errs.Error.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return errs.Wrap(
			classifyCode(mysqlErr.Number),
			fmt.Sprintf("%s: %s", msg, mysqlErr.Message),
			err,
		)
	}

	// Anything else (net errors, handshake failures) means we never got
	// a usable connection.
	return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
}

// classifyCode maps MySQL server error numbers to ErrKind.
func classifyCode(code uint16) errs.ErrKind {
	switch code {
	case errAccessDenied, errDBAccessDenied, errNoDatabase, errUnknownDatabase, errTooManyConns:
		return errs.ErrKindConnectionFailed
	case errTableAccessDenied, errColumnAccessDenied:
		return errs.ErrKindPermissionDenied
	case errBadFieldError, errParseError, errNoSuchTable:
		return errs.ErrKindQueryFailed
	default:
		return errs.ErrKindQueryFailed
	}
}
