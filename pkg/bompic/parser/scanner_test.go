package parser

import (
	"bytes"
	"image/color"
	"testing"
)

func TestScanWorkbook(t *testing.T) {
	red := pngBytes(t, color.RGBA{R: 255, A: 255})
	green := pngBytes(t, color.RGBA{G: 255, A: 255})
	blue := pngBytes(t, color.RGBA{B: 255, A: 255})

	cells := []testCell{
		{sheet: "Sheet1", cell: "C2", value: "X1"},
		{sheet: "Sheet1", cell: "C4", value: "X1"},
	}
	pictures := []testPicture{
		{sheet: "Sheet1", cell: "B2", data: red},
		{sheet: "Sheet1", cell: "B3", data: green},
		{sheet: "Sheet1", cell: "B4", data: blue},
		{sheet: "Sheet1", cell: "E2", data: red}, // other column, ignored
	}
	data := buildWorkbook(t, cells, pictures)

	images, err := ScanWorkbook(data, 1, 2)
	if err != nil {
		t.Fatalf("ScanWorkbook failed: %v", err)
	}

	want := []struct {
		label string
		sheet string
		row   int
		data  []byte
	}{
		{"X1", "Sheet1", 2, red},
		{"image_3", "Sheet1", 3, green},
		{"X1", "Sheet1", 4, blue},
	}

	if len(images) != len(want) {
		t.Fatalf("got %d images, expected %d", len(images), len(want))
	}
	for i, w := range want {
		img := images[i]
		if img.Label != w.label || img.Sheet != w.sheet || img.Row != w.row {
			t.Errorf("image %d = {%q, %s, r%d}, expected {%q, %s, r%d}",
				i, img.Label, img.Sheet, img.Row, w.label, w.sheet, w.row)
		}
		if !bytes.Equal(img.Data, w.data) {
			t.Errorf("image %d bytes do not match the anchored picture", i)
		}
	}
}

func TestScanWorkbookNumericLabel(t *testing.T) {
	red := pngBytes(t, color.RGBA{R: 255, A: 255})
	data := buildWorkbook(t,
		[]testCell{{sheet: "Sheet1", cell: "B5", value: 42}},
		[]testPicture{{sheet: "Sheet1", cell: "A5", data: red}})

	images, err := ScanWorkbook(data, 0, 1)
	if err != nil {
		t.Fatalf("ScanWorkbook failed: %v", err)
	}
	if len(images) != 1 || images[0].Label != "42" {
		t.Fatalf("got %+v, expected one image labeled \"42\"", images)
	}
}

func TestScanWorkbookNoMatches(t *testing.T) {
	data := buildWorkbook(t, []testCell{{sheet: "Sheet1", cell: "A1", value: "x"}}, nil)

	images, err := ScanWorkbook(data, 1, 2)
	if err != nil {
		t.Fatalf("ScanWorkbook failed: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("got %d images, expected 0", len(images))
	}
}

func TestScanWorkbookGarbage(t *testing.T) {
	if _, err := ScanWorkbook([]byte("not a workbook"), 0, 1); err == nil {
		t.Fatal("expected error for non-container input")
	}
}
