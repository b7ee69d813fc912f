package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	ErrTypeSheet    ErrorType = "SHEET"
	ErrTypeSchema   ErrorType = "SCHEMA"
	ErrTypeParsing  ErrorType = "PARSING"
	ErrTypeStorage  ErrorType = "STORAGE"
	ErrTypeConfig   ErrorType = "CONFIG"
	ErrTypeConflict ErrorType = "CONFLICT"
)

// Context keys attached to pipeline errors
const (
	CtxPath            = "path"
	CtxHint            = "hint"
	CtxSheet           = "sheet"
	CtxAvailableSheets = "available_sheets"
	CtxExpected        = "expected"
	CtxFound           = "found"
	CtxMissing         = "missing"
	CtxLock            = "lock"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewMissingFileError reports a required input file that does not exist.
// hint tells the operator how to obtain it.
func NewMissingFileError(path, hint string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("the file '%s' was not found", path), nil).
		WithContext(CtxPath, path).
		WithContext(CtxHint, hint)
}

// NewMissingSheetError reports a workbook without the expected sheet
func NewMissingSheetError(path, sheet string, available []string) *AppError {
	msg := fmt.Sprintf("could not find sheet '%s' in '%s'", sheet, path)
	return NewAppError(ErrTypeSheet, msg, nil).
		WithContext(CtxPath, path).
		WithContext(CtxSheet, sheet).
		WithContext(CtxAvailableSheets, available)
}

// NewMissingColumnsError reports expected columns absent from a loaded table
func NewMissingColumnsError(source string, expected, found []string) *AppError {
	foundSet := make(map[string]struct{}, len(found))
	for _, f := range found {
		foundSet[f] = struct{}{}
	}
	var missing []string
	for _, e := range expected {
		if _, ok := foundSet[e]; !ok {
			missing = append(missing, e)
		}
	}
	msg := fmt.Sprintf("the column names in '%s' do not match the expected names (missing: %s)",
		source, strings.Join(missing, ", "))
	return NewAppError(ErrTypeSchema, msg, nil).
		WithContext(CtxPath, source).
		WithContext(CtxExpected, expected).
		WithContext(CtxFound, found).
		WithContext(CtxMissing, missing)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewConflictError reports a resource held by another run
func NewConflictError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConflict, message, cause)
}

// IsType reports whether err wraps an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// As returns the AppError wrapped by err, if any
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
