// Package sqlerr classifies database driver errors into a small set of
// failure kinds that callers can switch on with errors.Is.
package sqlerr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Failure kinds.
var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnection          = errors.New("database connection error")
	ErrQuery               = errors.New("query execution failed")
)

// Error is a classified database failure.
type Error struct {
	Op         string // repository operation, e.g. "users.get_by_email"
	Kind       error  // one of the failure kinds above
	Code       string // SQLSTATE when the server reported one
	Constraint string // violated constraint name, if any
	Err        error  // driver error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Constraint != "" {
		fmt.Fprintf(&b, " (%s)", e.Constraint)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the failure kind and the driver error.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify wraps err into an *Error for operation op. It returns nil for a
// nil err and passes already classified errors through unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	e := &Error{Op: op, Kind: ErrQuery, Err: err}

	var pgErr *pgconn.PgError
	var connErr *pgconn.ConnectError
	var netErr net.Error

	switch {
	case errors.Is(err, sql.ErrNoRows):
		e.Kind = ErrNotFound
	case errors.As(err, &pgErr):
		e.Code = pgErr.Code
		e.Constraint = pgErr.ConstraintName
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			e.Kind = ErrConstraintViolation
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			e.Kind = ErrConnection
		}
	case errors.As(err, &connErr),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		e.Kind = ErrConnection
	}

	return e
}

// Kind reports the failure kind of err, or nil if err is not classified.
func Kind(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
