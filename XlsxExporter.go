package main

import (
	"fmt"
	"miniSheet/contracts"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Sheet1"

// Edit is one user input: the raw text typed into a cell
type Edit struct {
	CellId string
	Raw    string
}

// ParseEdit splits "B1==A1+1" at the first "=" into B1 and "=A1+1"
func ParseEdit(s string) (Edit, error) {
	cellId, raw, found := strings.Cut(s, "=")
	if !found || strings.TrimSpace(cellId) == "" {
		return Edit{}, fmt.Errorf("edit `%s` should look like CELL=RAW", s)
	}

	return Edit{CellId: strings.TrimSpace(cellId), Raw: raw}, nil
}

// ExportXlsx writes non-empty cells to the first sheet of a new workbook.
// Formula cells keep their formula next to the computed value.
func ExportXlsx(grid *contracts.Grid, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	for _, cell := range grid.Cells {
		if cell.Raw == "" {
			continue
		}

		if err = f.SetCellValue(xlsxSheetName, cell.Id, cell.Value); err != nil {
			return fmt.Errorf("export %s: %w", cell.Id, err)
		}

		if cell.HasFormula() {
			if err = f.SetCellFormula(xlsxSheetName, cell.Id, strings.TrimPrefix(cell.Formula, FormulaPrefix)); err != nil {
				return fmt.Errorf("export %s: %w", cell.Id, err)
			}
		}
	}

	return f.SaveAs(path)
}

// ImportXlsx reads the grid area of the first sheet back as edits in grid order
func ImportXlsx(path string, columns []string, rows int) (edits []Edit, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}

	for row := 1; row <= rows; row++ {
		for _, column := range columns {
			columnNumber, err := excelize.ColumnNameToNumber(column)
			if err != nil {
				return nil, err
			}

			cellName, err := excelize.CoordinatesToCellName(columnNumber, row)
			if err != nil {
				return nil, err
			}

			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("import %s: %w", cellName, err)
			}

			if formula != "" {
				edits = append(edits, Edit{CellId: cellName, Raw: FormulaPrefix + formula})
				continue
			}

			value, err := f.GetCellValue(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("import %s: %w", cellName, err)
			}

			if value != "" {
				edits = append(edits, Edit{CellId: cellName, Raw: value})
			}
		}
	}

	return edits, nil
}

// ApplyEdits runs every edit through UpdateCell in order and stops on an unknown cell
func ApplyEdits(sheet *Sheet, edits []Edit) error {
	for _, edit := range edits {
		if _, err := sheet.UpdateCell(edit.CellId, edit.Raw); err != nil {
			return err
		}
	}

	return nil
}
