// Package models defines data structures for image extraction.
package models

// ExtractedImage represents one embedded image anchored in the target column.
type ExtractedImage struct {
	// Label is the raw text of the label cell on the image's row.
	// When the cell is empty it holds the synthesized "image_<row>" form.
	Label string
	// Data is the raw image byte content as stored in the workbook.
	Data []byte
	// Sheet is the name of the sheet owning the image.
	Sheet string
	// Row is the anchor row (1-based).
	Row int
}
