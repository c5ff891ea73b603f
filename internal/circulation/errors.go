package circulation

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

type Code string

const (
	CodeInvalidTransition   Code = "INVALID_TRANSITION"
	CodeInsufficientStock   Code = "INSUFFICIENT_STOCK"
	CodeInvalidQuantity     Code = "INVALID_QUANTITY"
	CodeInvalidDelta        Code = "INVALID_DELTA"
	CodeNegativeCounter     Code = "NEGATIVE_COUNTER"
	CodeSumMismatch         Code = "SUM_MISMATCH"
	CodeNotFound            Code = "NOT_FOUND"
	CodeUnauthorizedActor   Code = "UNAUTHORIZED_ACTOR"
	CodeDuplicateInForm     Code = "DUPLICATE_IN_FORM"
	CodeExistsMismatchTrue  Code = "EXISTS_MISMATCH_TRUE"
	CodeExistsMismatchFalse Code = "EXISTS_MISMATCH_FALSE"
	CodePendingElsewhere    Code = "PENDING_ELSEWHERE"
	CodeDuplicateTitle      Code = "DUPLICATE_TITLE"
	CodeBookInUse           Code = "BOOK_IN_USE"
	CodeConflict            Code = "CONFLICT"
	CodeStoreError          Code = "STORE_ERROR"
)

// Error is the caller-facing failure of a circulation operation.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf reports the code carried by err. Errors that did not originate in
// this package count as store failures.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeStoreError
}

// EntryError is the validation failure of one entry in a donation batch.
type EntryError struct {
	Index int
	Title string
	Code  Code
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%q): %s", e.Index, e.Title, e.Code)
}

// EntryErrors lists the per-entry failures wrapped in err, if any.
func EntryErrors(err error) []*EntryError {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var single *EntryError
		if errors.As(err, &single) {
			return []*EntryError{single}
		}
		return nil
	}

	out := make([]*EntryError, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var ee *EntryError
		if errors.As(e, &ee) {
			out = append(out, ee)
		}
	}
	return out
}

// storeError wraps a repository failure. Domain errors pass through as is.
func storeError(err error, what string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return &Error{Code: CodeNotFound, Message: what + " not found", Err: err}
	case errors.Is(err, repository.ErrConflict):
		return &Error{Code: CodeConflict, Message: what + " was modified concurrently", Err: err}
	default:
		return &Error{Code: CodeStoreError, Message: "failed to access " + what, Err: err}
	}
}
