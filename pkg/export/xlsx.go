package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tribunalworks/evidence-register/pkg/model"
)

const sheetName = "Evidence Register"

// Workbook renders the accepted records as an XLSX workbook carrying the
// same 18 columns as the CSV register. The CSV stays canonical; this is a
// convenience rendition for review.
func Workbook(records []model.EvidenceRecord) ([]byte, error) {
	f := excelize.NewFile()

	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)

	for i, header := range model.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx := range records {
		for colIdx, value := range records[rowIdx].Row() {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	// widen the columns a reviewer actually scans
	_ = f.SetColWidth(sheetName, "B", "B", 48) // filename
	_ = f.SetColWidth(sheetName, "D", "D", 36) // subject
	_ = f.SetColWidth(sheetName, "I", "J", 40) // hashes
	_ = f.SetColWidth(sheetName, "R", "R", 80) // summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
