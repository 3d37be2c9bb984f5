package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// PictureAnchor describes one embedded picture and the cell it is anchored
// to. It is the unit the scanner filters by column.
type PictureAnchor struct {
	// Sheet is the owning sheet name.
	Sheet string
	// Row is the anchor row (0-based, drawing coordinate space).
	Row int
	// Col is the anchor column (0-based).
	Col int
	// Data is the raw byte content of the referenced media part.
	Data []byte
}

// sheetInfo ties a declared sheet name to its relationship id, preserving
// workbook declaration order.
type sheetInfo struct {
	name string
	rID  string
}

// picRef is an anchored picture reference before media resolution.
type picRef struct {
	row, col int
	embedID  string
}

// ExtractPictures walks the workbook container and returns every embedded
// picture together with the cell it is anchored to, in sheet declaration
// order and drawing order within each sheet. Pictures placed with an
// absolute anchor have no cell position and are skipped. A damaged drawing
// part drops only its own sheet; a container missing the workbook part is
// an error.
func ExtractPictures(r *zip.Reader) ([]PictureAnchor, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return nil, fmt.Errorf("read workbook part: %w", err)
	}
	sheets := parseWorkbookSheets(workbookXML)
	if len(sheets) == 0 {
		return nil, nil
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, fmt.Errorf("read workbook rels: %w", err)
	}
	sheetPaths := parseWorkbookRels(wbRelsXML)

	var result []PictureAnchor
	for _, sheet := range sheets {
		sheetPath, ok := sheetPaths[sheet.rID]
		if !ok {
			continue
		}
		anchors, err := extractSheetPictures(r, sheet.name, sheetPath)
		if err != nil {
			continue
		}
		result = append(result, anchors...)
	}

	return result, nil
}

// extractSheetPictures resolves one sheet's drawing part and returns its
// anchored pictures. A sheet without relationships or a drawing yields nil.
func extractSheetPictures(r *zip.Reader, sheetName, sheetPath string) ([]PictureAnchor, error) {
	relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
	relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

	sheetRelsXML, err := readZipFile(r, relsPath)
	if err != nil {
		return nil, nil
	}
	drawingTarget := findDrawingRelationship(sheetRelsXML)
	if drawingTarget == "" {
		return nil, nil
	}
	drawingPath := resolveRelativePath(drawingTarget, "xl/drawings")

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil {
		return nil, err
	}
	refs := parseDrawingPictures(drawingXML)
	if len(refs) == 0 {
		return nil, nil
	}

	media := parseDrawingRels(r, drawingPath)

	var anchors []PictureAnchor
	for _, ref := range refs {
		mediaPath, ok := media[ref.embedID]
		if !ok {
			continue
		}
		data, err := readZipFile(r, mediaPath)
		if err != nil {
			continue
		}
		anchors = append(anchors, PictureAnchor{
			Sheet: sheetName,
			Row:   ref.row,
			Col:   ref.col,
			Data:  data,
		})
	}

	return anchors, nil
}

// parseDrawingPictures streams a drawing XML part and collects picture
// references from cell-anchored elements, in document order.
func parseDrawingPictures(data []byte) []picRef {
	var refs []picRef

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor":
				refs = append(refs, parseAnchorPictures(decoder)...)
			}
		}
	}

	return refs
}

// parseAnchorPictures parses one anchor element: the from marker gives the
// cell position, each pic child contributes one reference. Group shapes are
// recursed; their pictures inherit the group's anchor.
func parseAnchorPictures(decoder *xml.Decoder) []picRef {
	var refs []picRef
	row, col := -1, -1

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				col, row = parseMarker(decoder)
				depth--
			case "pic":
				if embedID := parsePicture(decoder); embedID != "" && row >= 0 && col >= 0 {
					refs = append(refs, picRef{row: row, col: col, embedID: embedID})
				}
				depth--
			case "grpSp":
				refs = append(refs, parseGroupPictures(decoder, row, col)...)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return refs
}

// parseGroupPictures collects pictures nested in a group shape.
func parseGroupPictures(decoder *xml.Decoder, row, col int) []picRef {
	var refs []picRef

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "pic":
				if embedID := parsePicture(decoder); embedID != "" && row >= 0 && col >= 0 {
					refs = append(refs, picRef{row: row, col: col, embedID: embedID})
				}
				depth--
			case "grpSp":
				refs = append(refs, parseGroupPictures(decoder, row, col)...)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return refs
}

// parseMarker parses a from marker element for its col and row children.
func parseMarker(decoder *xml.Decoder) (col, row int) {
	col, row = -1, -1

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "col":
				if txt, err := readElementText(decoder); err == nil {
					if v, convErr := strconv.Atoi(strings.TrimSpace(txt)); convErr == nil {
						col = v
					}
				}
				depth--
			case "row":
				if txt, err := readElementText(decoder); err == nil {
					if v, convErr := strconv.Atoi(strings.TrimSpace(txt)); convErr == nil {
						row = v
					}
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parsePicture consumes a pic element and returns the blip embed id.
func parsePicture(decoder *xml.Decoder) string {
	var embedID string

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "blip" {
				for _, attr := range t.Attr {
					if attr.Name.Local == "embed" {
						embedID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return embedID
}

// parseDrawingRels maps a drawing's relationship ids to media part paths.
func parseDrawingRels(r *zip.Reader, drawingPath string) map[string]string {
	result := make(map[string]string)

	dir, file := path.Split(drawingPath)
	relsXML, err := readZipFile(r, dir+"_rels/"+file+".rels")
	if err != nil {
		return result
	}

	decoder := xml.NewDecoder(strings.NewReader(string(relsXML)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && strings.Contains(strings.ToLower(relType), "image") {
				result[rID] = resolveRelativePath(target, "xl/drawings")
			}
		}
	}

	return result
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return baseDir + target
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) []sheetInfo {
	var sheets []sheetInfo
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				sheets = append(sheets, sheetInfo{name: name, rID: rID})
			}
		}
	}

	return sheets
}

func parseWorkbookRels(data []byte) map[string]string {
	result := make(map[string]string) // rId -> worksheet part path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && strings.Contains(strings.ToLower(target), "worksheet") {
				result[rID] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

func findDrawingRelationship(data []byte) string {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if strings.HasSuffix(strings.ToLower(relType), "/drawing") {
				return target
			}
		}
	}

	return ""
}
