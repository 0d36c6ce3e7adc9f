package sales

// errors.go defines the load-failure taxonomy and maps it to user-facing
// messages with support codes:
//
//	FILE004 - File not found
//	FILE005 - Empty file (no header, or a header with no data rows)
//	VAL004  - Missing required column
//	ERR000  - Anything else

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFileNotFound means the sales file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyFile means the sales file has no data rows.
	ErrEmptyFile = errors.New("empty file")

	// ErrSchemaInvalid means the header lacks one or more required columns.
	ErrSchemaInvalid = errors.New("missing required columns")

	// ErrUnavailable is returned by every query on a table that did not load.
	// It marks an absent result, not a fault.
	ErrUnavailable = errors.New("sales data unavailable")

	// ErrNoRecords is returned by MaxMinSales on a loaded table with no records.
	ErrNoRecords = errors.New("no sales records")
)

// LoadError reports why a file could not be loaded. The table returned
// alongside it is in State.
type LoadError struct {
	Path  string
	State State
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError lists the required columns missing from a header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSchemaInvalid, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchemaInvalid }

// CellError reports a cell that could not be converted when a query needed it.
type CellError struct {
	Line   int
	Column string
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("line %d: invalid %s value %q", e.Line, e.Column, e.Value)
}

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for support reference
}

func (m UserMessage) String() string {
	return fmt.Sprintf("Error: %s. %s (%s)", m.Message, m.Action, m.Code)
}

// DescribeLoadError maps a load error to a user message.
func DescribeLoadError(err error) UserMessage {
	var schemaErr *SchemaError

	switch {
	case errors.As(err, &schemaErr):
		return UserMessage{
			Message: "CSV file is missing required columns: " + strings.Join(schemaErr.Missing, ", "),
			Action:  "Check that the header contains " + strings.Join(requiredColumns(), ", "),
			Code:    "VAL004",
		}
	case errors.Is(err, ErrFileNotFound):
		return UserMessage{
			Message: "File not found",
			Action:  "Check that SALES_FILE points at an existing file",
			Code:    "FILE004",
		}
	case errors.Is(err, ErrEmptyFile):
		return UserMessage{
			Message: "File is empty",
			Action:  "Provide a file with a header row and at least one data row",
			Code:    "FILE005",
		}
	default:
		return UserMessage{
			Message: "An unexpected error occurred",
			Action:  "Check the application log for details",
			Code:    "ERR000",
		}
	}
}

func requiredColumns() []string {
	var cols []string
	for _, spec := range FieldSpecs {
		if spec.Required {
			cols = append(cols, spec.Name)
		}
	}
	return cols
}
