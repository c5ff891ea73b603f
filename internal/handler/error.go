package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/validation"
)

var codeStatus = map[circulation.Code]int{
	circulation.CodeNotFound:            http.StatusNotFound,
	circulation.CodeInvalidQuantity:     http.StatusBadRequest,
	circulation.CodeInvalidDelta:        http.StatusBadRequest,
	circulation.CodeUnauthorizedActor:   http.StatusForbidden,
	circulation.CodeInvalidTransition:   http.StatusConflict,
	circulation.CodeInsufficientStock:   http.StatusConflict,
	circulation.CodeConflict:            http.StatusConflict,
	circulation.CodeBookInUse:           http.StatusConflict,
	circulation.CodeDuplicateTitle:      http.StatusConflict,
	circulation.CodeNegativeCounter:     http.StatusUnprocessableEntity,
	circulation.CodeSumMismatch:         http.StatusUnprocessableEntity,
	circulation.CodeDuplicateInForm:     http.StatusUnprocessableEntity,
	circulation.CodeExistsMismatchTrue:  http.StatusUnprocessableEntity,
	circulation.CodeExistsMismatchFalse: http.StatusUnprocessableEntity,
	circulation.CodePendingElsewhere:    http.StatusUnprocessableEntity,
	circulation.CodeStoreError:          http.StatusInternalServerError,
}

func statusFor(code circulation.Code) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeServiceError renders a circulation failure. Store failures are logged
// and never leak their cause to the client.
func writeServiceError(c *gin.Context, err error) {
	code := circulation.CodeOf(err)
	status := statusFor(code)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).WithError(err).Error("circulation operation failed")
		writeError(c, status, string(code), "internal error")
		return
	}

	message := err.Error()
	var e *circulation.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    string(code),
		Message: message,
		Errors:  entryFieldErrors(circulation.EntryErrors(err)),
	})
}

func entryFieldErrors(entries []*circulation.EntryError) []validation.FieldError {
	if len(entries) == 0 {
		return nil
	}
	return lo.Map(entries, func(ee *circulation.EntryError, _ int) validation.FieldError {
		return validation.FieldError{
			Field:   fmt.Sprintf("entries[%d].book_title", ee.Index),
			Rule:    string(ee.Code),
			Message: ee.Error(),
		}
	})
}
