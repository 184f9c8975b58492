package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel renders a quote as an Excel workbook and returns the file
// contents as a byte slice.
func GenerateExcel(data QuoteExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 48); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	// ── Title row ───────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	row := 3

	// writePair writes one label/value row with bordered styling.
	writePair := func(label, value string) {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(label))
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, labelStyle)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(value))
		f.SetCellStyle(sheetName, "B"+rowStr, "B"+rowStr, valueStyle)
		row++
	}

	// ── Customer block ──────────────────────────────────────────────────

	for _, fld := range data.CustomerFields {
		if fld.Value == "" {
			continue
		}
		writePair(fld.Label, fld.Value)
	}
	row++

	// ── Window sections ─────────────────────────────────────────────────

	for _, sec := range data.Sections {
		rowStr := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+rowStr, "B"+rowStr); err != nil {
			return nil, fmt.Errorf("merge section: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(sec.Title))
		f.SetCellStyle(sheetName, "A"+rowStr, "B"+rowStr, sectionStyle)
		row++

		for _, fld := range sec.Fields {
			writePair(fld.Label, fld.Value)
		}
		if sec.Priced {
			writePair("Price", FormatAUD(sec.Price))
		}
		row++
	}

	// ── Summary ─────────────────────────────────────────────────────────

	if data.Priced {
		if data.DiscountPercent > 0 {
			rowStr := fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, "Discount:")
			f.SetCellValue(sheetName, "B"+rowStr, fmt.Sprintf("%.0f%%", data.DiscountPercent))
			f.SetCellStyle(sheetName, "A"+rowStr, "B"+rowStr, summaryStyle)
			row++
		}
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, "Total:")
		f.SetCellValue(sheetName, "B"+rowStr, FormatAUD(data.TotalPrice))
		f.SetCellStyle(sheetName, "A"+rowStr, "B"+rowStr, summaryStyle)
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
