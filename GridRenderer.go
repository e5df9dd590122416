package main

import (
	"miniSheet/contracts"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	formulaStyle = cellStyle.Foreground(lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"})
	errorStyle   = cellStyle.Foreground(lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"})
)

// RenderGrid draws the grid as a terminal table, row numbers in the first column
func RenderGrid(grid *contracts.Grid, mode DisplayMode) string {
	cellsById := make(map[string]contracts.Cell, len(grid.Cells))
	for _, cell := range grid.Cells {
		cellsById[cell.Id] = cell
	}

	headers := append([]string{""}, grid.Columns...)
	rowCells := make([][]contracts.Cell, 0, grid.Rows)
	rows := make([][]string, 0, grid.Rows)

	for row := 1; row <= grid.Rows; row++ {
		rowNumber := strconv.Itoa(row)
		cells := make([]contracts.Cell, 0, len(grid.Columns))
		line := []string{rowNumber}

		for _, column := range grid.Columns {
			cell := cellsById[column+rowNumber]
			cells = append(cells, cell)
			line = append(line, DisplayValue(cell, mode))
		}

		rowCells = append(rowCells, cells)
		rows = append(rows, line)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			if row < 0 || row >= len(rowCells) {
				return cellStyle
			}

			cell := rowCells[row][col-1]
			switch {
			case cell.Value == contracts.ErrorValue:
				return errorStyle
			case cell.HasFormula():
				return formulaStyle
			}
			return cellStyle
		}).
		Render()
}
