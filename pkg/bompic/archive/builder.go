// Package archive packages extracted images and a CSV manifest into a
// single zip archive.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/bom2pic/bompic/pkg/bompic/models"
	"github.com/bom2pic/bompic/pkg/bompic/naming"
)

// ErrEmptyInput indicates Build was called with no images. The batch layer
// rejects empty sequences before packaging, so this guard should be
// unreachable in practice.
var ErrEmptyInput = errors.New("no images to package")

// imageDir is the path prefix for image entries inside the archive.
const imageDir = "images/"

// reportName is the manifest filename at the archive root.
const reportName = "report.csv"

// Summary is the packaging output: archive bytes plus the manifest that
// went into it.
type Summary struct {
	// Data is the zip archive content.
	Data []byte
	// Entries is the manifest in processing order.
	Entries []models.ManifestEntry
	// Saved counts entries marked Saved.
	Saved int
	// Duplicates counts entries marked Duplicate.
	Duplicates int
}

// Build writes every image plus report.csv into a deflate-compressed zip.
// Each filename is derived from the image's label and sniffed format. A
// filename seen before is reported as Duplicate, but its bytes are written
// anyway and the last occurrence wins inside the archive; duplicate
// tracking exists for reporting, not renaming.
func Build(images []models.ExtractedImage) (*Summary, error) {
	if len(images) == 0 {
		return nil, ErrEmptyInput
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]struct{}, len(images))
	summary := &Summary{Entries: make([]models.ManifestEntry, 0, len(images))}

	for _, img := range images {
		filename := naming.Normalize(img.Label) + "." + naming.DetectExtension(img.Data)

		action := models.ActionSaved
		if _, dup := seen[filename]; dup {
			action = models.ActionDuplicate
			summary.Duplicates++
		} else {
			seen[filename] = struct{}{}
			summary.Saved++
		}

		w, err := zw.Create(imageDir + filename)
		if err != nil {
			return nil, fmt.Errorf("create archive entry %s: %w", filename, err)
		}
		if _, err := w.Write(img.Data); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", filename, err)
		}

		summary.Entries = append(summary.Entries, models.ManifestEntry{
			Sheet:    img.Sheet,
			Row:      img.Row,
			Label:    img.Label,
			Filename: filename,
			Action:   action,
		})
	}

	if err := writeReport(zw, summary.Entries); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	summary.Data = buf.Bytes()
	return summary, nil
}

// writeReport emits the manifest at the archive root.
func writeReport(zw *zip.Writer, entries []models.ManifestEntry) error {
	w, err := zw.Create(reportName)
	if err != nil {
		return fmt.Errorf("create %s: %w", reportName, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sheet", "row", "part_name", "filename", "action"}); err != nil {
		return fmt.Errorf("write %s header: %w", reportName, err)
	}
	for _, e := range entries {
		record := []string{e.Sheet, strconv.Itoa(e.Row), e.Label, e.Filename, string(e.Action)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write %s row: %w", reportName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
