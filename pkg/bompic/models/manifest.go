package models

// Action describes what happened to an image during packaging.
type Action string

const (
	// ActionSaved marks the first image written under a given filename.
	ActionSaved Action = "Saved"
	// ActionDuplicate marks a later image whose filename collided with an
	// earlier one. Its bytes still overwrite the earlier entry in the archive.
	ActionDuplicate Action = "Duplicate"
)

// ManifestEntry is one row of report.csv, derived 1:1 from an ExtractedImage
// in discovery order.
type ManifestEntry struct {
	// Sheet is the sheet name owning the image.
	Sheet string
	// Row is the anchor row (1-based).
	Row int
	// Label is the raw label text the filename was derived from.
	Label string
	// Filename is the final name inside the archive's images/ directory.
	Filename string
	// Action is Saved or Duplicate.
	Action Action
}
