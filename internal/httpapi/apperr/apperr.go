// Package apperr carries the status/message pairs the API exposes to
// clients and translates store-level failures into them.
package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes intercepted centrally. Anything else is a 500.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
)

type Error struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

func (e *Error) Error() string {
	return e.Msg
}

func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, msg)
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, msg)
}

// Translate maps any error to the client-facing form. Expected conditions
// pass through untouched; constraint violations from the store become their
// HTTP equivalents; everything else is a generic 500 so internal detail
// never reaches the client.
func Translate(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return BadRequest("Bad Request")
		case pgNotNullViolation:
			return BadRequest("Missing required field")
		case pgForeignKeyViolation:
			return NotFound("Referenced entity not found")
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Resource not found")
	}

	return New(http.StatusInternalServerError, "Internal Server Error")
}
