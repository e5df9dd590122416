package main

import (
	"fmt"
	"miniSheet/contracts"
	"strconv"
)

const MaxRows = 9

var DefaultColumns = []string{"A", "B", "C", "D", "E"}

const DefaultRows = 5

// CellStore owns every cell of a fixed size grid. Cells are created once and never removed.
type CellStore struct {
	columns  []string
	rows     int
	order    []string
	position map[string]int
	cells    map[string]*contracts.Cell
}

func NewCellStore(columns []string, rows int) (*CellStore, error) {
	if err := ValidateGrid(columns, rows); err != nil {
		return nil, err
	}

	store := &CellStore{
		columns:  append([]string{}, columns...),
		rows:     rows,
		order:    make([]string, 0, len(columns)*rows),
		position: make(map[string]int, len(columns)*rows),
		cells:    make(map[string]*contracts.Cell, len(columns)*rows),
	}

	// row-major, same order a grid is rendered in
	for row := 1; row <= rows; row++ {
		for _, column := range columns {
			cellId := column + strconv.Itoa(row)
			store.position[cellId] = len(store.order)
			store.order = append(store.order, cellId)
			store.cells[cellId] = &contracts.Cell{
				Id:    cellId,
				Raw:   "",
				Value: "",
				Deps:  []string{},
			}
		}
	}

	return store, nil
}

// ValidateGrid accepts unique single uppercase letter columns and 1..MaxRows rows
func ValidateGrid(columns []string, rows int) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: at least one column is required", contracts.InvalidGridError)
	}

	if rows < 1 || rows > MaxRows {
		return fmt.Errorf("%w: rows should be between 1 and %d, got %d", contracts.InvalidGridError, MaxRows, rows)
	}

	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		if len(column) != 1 || column[0] < 'A' || column[0] > 'Z' {
			return fmt.Errorf("%w: column `%s` should be a single uppercase letter", contracts.InvalidGridError, column)
		}
		if seen[column] {
			return fmt.Errorf("%w: duplicated column `%s`", contracts.InvalidGridError, column)
		}
		seen[column] = true
	}

	return nil
}

func (s *CellStore) Get(cellId string) (*contracts.Cell, bool) {
	cell, ok := s.cells[cellId]
	return cell, ok
}

// GetValue is the contracts.CellValuesGetter view of the store
func (s *CellStore) GetValue(cellId string) (contracts.Value, bool) {
	if cell, ok := s.cells[cellId]; ok {
		return cell.Value, true
	}

	return nil, false
}

// Position returns the grid order index of cellId, -1 for unknown cells
func (s *CellStore) Position(cellId string) int {
	if position, ok := s.position[cellId]; ok {
		return position
	}

	return -1
}

func (s *CellStore) Ids() []string {
	return s.order
}

func (s *CellStore) Columns() []string {
	return s.columns
}

func (s *CellStore) Rows() int {
	return s.rows
}

// Snapshot copies every cell in grid order
func (s *CellStore) Snapshot() []contracts.Cell {
	cells := make([]contracts.Cell, 0, len(s.order))
	for _, cellId := range s.order {
		cells = append(cells, s.cells[cellId].Copy())
	}

	return cells
}
