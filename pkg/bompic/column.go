package bompic

import (
	"fmt"
	"strings"
)

// Column is a resolved spreadsheet column: the user-facing letters and the
// zero-based index they denote.
type Column struct {
	// Letters is the upper-cased column identifier (1-2 letters).
	Letters string
	// Index is the zero-based column index (A=0, Z=25, AA=26).
	Index int
}

// ParseColumn resolves column letters to a Column value. Letters are
// case-insensitive and trimmed; anything outside [A-Za-z]{1,2} fails with
// ErrInvalidColumn. The letters form a base-26 numeral with digits 1..26,
// so A=0, Z=25, AA=26, AZ=51.
func ParseColumn(letters string) (Column, error) {
	upper := strings.ToUpper(strings.TrimSpace(letters))
	if len(upper) < 1 || len(upper) > 2 {
		return Column{}, fmt.Errorf("%w: %q", ErrInvalidColumn, letters)
	}

	index := 0
	for _, r := range upper {
		if r < 'A' || r > 'Z' {
			return Column{}, fmt.Errorf("%w: %q", ErrInvalidColumn, letters)
		}
		index = index*26 + int(r-'A') + 1
	}

	return Column{Letters: upper, Index: index - 1}, nil
}
