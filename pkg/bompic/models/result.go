package models

// Result is the batch-level extraction output.
type Result struct {
	// Archive is the zip archive byte content.
	Archive []byte
	// TotalFound is the number of images extracted across all workbooks.
	TotalFound int
	// Saved is the number of manifest entries marked Saved.
	Saved int
	// Duplicates is the number of manifest entries marked Duplicate.
	// Saved + Duplicates == TotalFound.
	Duplicates int
}
