// Package parser walks xlsx workbook containers to locate embedded
// pictures, their anchor cells, and the label cells next to them.
package parser

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/bom2pic/bompic/pkg/bompic/models"
	"github.com/xuri/excelize/v2"
)

// ScanWorkbook opens one workbook from raw bytes and returns every image
// anchored in imageCol, each paired with the text of the labelCol cell on
// its row. An empty label cell yields a synthesized "image_<row>" label.
// Columns are 0-based; returned rows are 1-based. A workbook containing no
// matching images is a valid empty result, not an error.
func ScanWorkbook(data []byte, imageCol, labelCol int) ([]models.ExtractedImage, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	anchors, err := ExtractPictures(zr)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var images []models.ExtractedImage
	for _, a := range anchors {
		if a.Col != imageCol {
			continue
		}
		row := a.Row + 1
		label, err := labelAt(f, a.Sheet, row, labelCol)
		if err != nil {
			return nil, err
		}
		if label == "" {
			label = fmt.Sprintf("image_%d", row)
		}
		images = append(images, models.ExtractedImage{
			Label: label,
			Data:  a.Data,
			Sheet: a.Sheet,
			Row:   row,
		})
	}

	return images, nil
}

// labelAt reads the cell value at a 1-based row and 0-based column.
func labelAt(f *excelize.File, sheet string, row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return "", fmt.Errorf("label cell at row %d: %w", row, err)
	}
	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("read label cell %s!%s: %w", sheet, cell, err)
	}
	return value, nil
}
