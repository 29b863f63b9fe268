// Package apierror provides the closed failure taxonomy shared by all
// repositories and handlers. Every store-level error is classified into one
// of these kinds before it reaches the presentation layer, so clients never
// see raw database errors and every failure maps to a stable HTTP status.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Kind enumerates the outcome categories of a failed operation.
type Kind int

const (
	// KindConflict: a uniqueness or foreign-key constraint was violated.
	KindConflict Kind = iota
	// KindNotFound: a lookup by primary key returned no row.
	KindNotFound
	// KindBadRequest: the caller supplied no recognized mutable fields.
	KindBadRequest
	// KindInternal: any other persistence-layer failure.
	KindInternal
)

// Error is the canonical typed failure. Detail is a human-readable,
// client-safe message; internal diagnostics go to the log, not here.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// HTTPStatus maps the failure kind to its transport status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Conflict(detail string) *Error   { return &Error{Kind: KindConflict, Detail: detail} }
func NotFound(detail string) *Error   { return &Error{Kind: KindNotFound, Detail: detail} }
func BadRequest(detail string) *Error { return &Error{Kind: KindBadRequest, Detail: detail} }
func Internal(detail string) *Error   { return &Error{Kind: KindInternal, Detail: detail} }

// FromDB classifies a GORM error for the entity being operated on.
// Relies on gorm.Config{TranslateError: true} so constraint violations
// surface as the same sentinel errors on every supported driver.
// entidade is the lowercase Portuguese entity name ("cliente", "produto"...).
func FromDB(err error, entidade string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(fmt.Sprintf("%s não encontrado.", titulo(entidade)))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(fmt.Sprintf("O %s que você está tentando adicionar já existe.", entidade))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Conflict(fmt.Sprintf("%s com dados duplicados ou inválidos.", titulo(entidade)))
	default:
		return Internal(fmt.Sprintf("Um erro ocorreu ao tentar processar o %s: %v", entidade, err))
	}
}

func titulo(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Status returns the HTTP status for any error: typed failures map through
// HTTPStatus, everything else is a 500.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.HTTPStatus()
	}
	return http.StatusInternalServerError
}
