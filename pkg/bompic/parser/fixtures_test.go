package parser

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/xuri/excelize/v2"
)

type testCell struct {
	sheet string
	cell  string
	value interface{}
}

type testPicture struct {
	sheet string
	cell  string
	data  []byte
}

// pngBytes encodes a tiny solid-color PNG so each fixture picture has
// distinct, recognizable content.
func pngBytes(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// buildWorkbook assembles an in-memory xlsx with the given cells and
// anchored pictures.
func buildWorkbook(t *testing.T, cells []testCell, pictures []testPicture) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for _, c := range cells {
		ensureSheet(t, f, c.sheet)
		if err := f.SetCellValue(c.sheet, c.cell, c.value); err != nil {
			t.Fatalf("set cell %s!%s: %v", c.sheet, c.cell, err)
		}
	}
	for _, p := range pictures {
		ensureSheet(t, f, p.sheet)
		pic := &excelize.Picture{Extension: ".png", File: p.data}
		if err := f.AddPictureFromBytes(p.sheet, p.cell, pic); err != nil {
			t.Fatalf("add picture at %s!%s: %v", p.sheet, p.cell, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func ensureSheet(t *testing.T, f *excelize.File, name string) {
	t.Helper()
	if _, err := f.NewSheet(name); err != nil {
		t.Fatalf("create sheet %s: %v", name, err)
	}
}
