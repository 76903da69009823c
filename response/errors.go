package response

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError carries field-level detail so the caller can correct its
// input and retry.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Set(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type NotAuthorizedError struct {
	Reason string
}

func (e *NotAuthorizedError) Error() string {
	if e.Reason == "" {
		return "not authorized"
	}
	return "not authorized: " + e.Reason
}

// ConflictError names the departments that already hold an entry on the date,
// so the UI can highlight them.
type ConflictError struct {
	Date        string
	Departments []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("holiday already declared on %s for departments: %s",
		e.Date, strings.Join(e.Departments, ", "))
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// HandleError maps the error taxonomy onto HTTP statuses and the
// {success:false, error} envelope. Anything outside the taxonomy is a store
// or programming failure and surfaces as a 500.
func HandleError(c *gin.Context, err error) {
	var (
		validationErr    *ValidationError
		notAuthorizedErr *NotAuthorizedError
		conflictErr      *ConflictError
		notFoundErr      *NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   validationErr.Error(),
			"fields":  validationErr.Fields,
		})
	case errors.As(err, &notAuthorizedErr):
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   notAuthorizedErr.Error(),
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":     false,
			"error":       conflictErr.Error(),
			"departments": conflictErr.Departments,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   notFoundErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
	}
}
