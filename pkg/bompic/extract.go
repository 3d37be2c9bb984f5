// Package bompic extracts images embedded in Excel workbooks by anchor
// column, names each from a label column on the same row, and packages the
// result into a zip archive with a CSV manifest.
package bompic

import (
	"fmt"
	"sync"

	"github.com/bom2pic/bompic/pkg/bompic/archive"
	"github.com/bom2pic/bompic/pkg/bompic/models"
	"github.com/bom2pic/bompic/pkg/bompic/parser"
)

// Workbook is one input workbook: its filename and raw byte content.
type Workbook struct {
	Filename string
	Data     []byte
}

// Extract runs the full pipeline over every workbook: scan for images
// anchored in imageColumn, label each from nameColumn on the same row, and
// package everything into a zip archive with a report.csv manifest.
//
// A workbook that cannot be parsed is skipped with a warning so one bad
// upload cannot sink an otherwise-valid batch. Extract fails with
// ErrNoImagesFound when no workbook yields a matching image; it never
// returns an empty archive.
func Extract(workbooks []Workbook, imageColumn, nameColumn string, opts Options) (*models.Result, error) {
	imageCol, err := ParseColumn(imageColumn)
	if err != nil {
		return nil, err
	}
	nameCol, err := ParseColumn(nameColumn)
	if err != nil {
		return nil, err
	}
	if imageCol.Letters == nameCol.Letters {
		return nil, fmt.Errorf("%w: image and name columns must differ, both are %q",
			ErrInvalidColumn, imageCol.Letters)
	}

	log := opts.logger()
	scanned := scanAll(workbooks, imageCol.Index, nameCol.Index, opts.workers())

	var images []models.ExtractedImage
	for i, wb := range workbooks {
		if scanned.errs[i] != nil {
			log.Warn("skipping workbook",
				"file", wb.Filename,
				"error", fmt.Sprintf("%v: %v", ErrCorruptWorkbook, scanned.errs[i]))
			continue
		}
		images = append(images, scanned.images[i]...)
	}
	if len(images) == 0 {
		return nil, ErrNoImagesFound
	}

	summary, err := archive.Build(images)
	if err != nil {
		return nil, err
	}

	return &models.Result{
		Archive:    summary.Data,
		TotalFound: len(images),
		Saved:      summary.Saved,
		Duplicates: summary.Duplicates,
	}, nil
}

// scanOutcome holds per-workbook scan results indexed by input position, so
// the combined image order never depends on scan scheduling.
type scanOutcome struct {
	images [][]models.ExtractedImage
	errs   []error
}

func scanAll(workbooks []Workbook, imageCol, labelCol, workers int) scanOutcome {
	out := scanOutcome{
		images: make([][]models.ExtractedImage, len(workbooks)),
		errs:   make([]error, len(workbooks)),
	}

	if workers == 1 || len(workbooks) < 2 {
		for i, wb := range workbooks {
			out.images[i], out.errs[i] = parser.ScanWorkbook(wb.Data, imageCol, labelCol)
		}
		return out
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, wb := range workbooks {
		wg.Add(1)
		go func(i int, wb Workbook) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			out.images[i], out.errs[i] = parser.ScanWorkbook(wb.Data, imageCol, labelCol)
		}(i, wb)
	}
	wg.Wait()

	return out
}
