package bompic

import (
	"errors"

	"github.com/bom2pic/bompic/pkg/bompic/archive"
)

// ErrInvalidColumn indicates malformed column letters, or image and name
// columns resolving to the same column.
var ErrInvalidColumn = errors.New("invalid column letters")

// ErrCorruptWorkbook indicates one workbook could not be parsed. Extract
// recovers from it by skipping the file; it never surfaces as a batch
// failure.
var ErrCorruptWorkbook = errors.New("workbook cannot be parsed")

// ErrNoImagesFound indicates that after attempting every workbook, no image
// was anchored in the requested column.
var ErrNoImagesFound = errors.New("no images found in any workbook")

// ErrEmptyInput is archive.ErrEmptyInput, re-exported for callers that only
// import the root package.
var ErrEmptyInput = archive.ErrEmptyInput
