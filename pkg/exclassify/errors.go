package exclassify

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptyPolicy indicates no column rules were given.
var ErrEmptyPolicy = errors.New("classification policy is empty")

// ClassifyError represents an error while processing a sheet.
type ClassifyError struct {
	SheetName string
	Component string // "read", "write", "sheets", "validation"
	Err       error
}

func (e *ClassifyError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("classification error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("classification error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ClassifyError) Unwrap() error {
	return e.Err
}

// NewClassifyError creates a new ClassifyError.
func NewClassifyError(sheetName, component string, err error) *ClassifyError {
	return &ClassifyError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
