package main

import (
	"miniSheet/contracts"
	"miniSheet/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func _newSheet(t *testing.T, cyclePolicy CyclePolicy) *Sheet {
	sheet, err := NewDefaultSheet(DefaultColumns, DefaultRows, cyclePolicy)
	assert.NoError(t, err)
	return sheet
}

func _updateCells(t *testing.T, sheet *Sheet, edits ...string) {
	for _, edit := range edits {
		parsed, err := ParseEdit(edit)
		assert.NoError(t, err)

		_, err = sheet.UpdateCell(parsed.CellId, parsed.Raw)
		assert.NoError(t, err)
	}
}

func _cellValue(t *testing.T, sheet *Sheet, cellId string) contracts.Value {
	cell, err := sheet.GetCell(cellId)
	assert.NoError(t, err)
	return cell.Value
}

func TestNewDefaultSheet(t *testing.T) {
	t.Run("unknown cycle policy", func(t *testing.T) {
		sheet, err := NewDefaultSheet(DefaultColumns, DefaultRows, "converge")

		assert.Nil(t, sheet)
		assert.ErrorIs(t, err, contracts.InvalidConfigError)
	})

	t.Run("invalid grid", func(t *testing.T) {
		sheet, err := NewDefaultSheet(DefaultColumns, 10, CyclePolicyError)

		assert.Nil(t, sheet)
		assert.ErrorIs(t, err, contracts.InvalidGridError)
	})

	t.Run("empty grid", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)
		grid := sheet.Grid()

		assert.Equal(t, DefaultColumns, grid.Columns)
		assert.Equal(t, DefaultRows, grid.Rows)
		assert.Len(t, grid.Cells, 25)
		for _, cell := range grid.Cells {
			assert.Equal(t, "", cell.Raw)
			assert.Equal(t, contracts.Value(""), cell.Value)
		}
	})
}

func TestSheet_UpdateCell(t *testing.T) {
	t.Run("classification", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		touched, err := sheet.UpdateCell("A1", "=1+1")
		assert.NoError(t, err)
		assert.Equal(t, "=1+1", touched[0].Formula)
		assert.True(t, touched[0].HasFormula())

		touched, err = sheet.UpdateCell("A1", "1+1")
		assert.NoError(t, err)
		assert.Equal(t, "", touched[0].Formula)
		assert.Equal(t, contracts.Value("1+1"), touched[0].Value)
		assert.Empty(t, touched[0].Deps)
	})

	t.Run("literals", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=42", "B1=foo", "C1= 7 ", "D1=   ", "E1=")

		assert.Equal(t, contracts.Value(42.0), _cellValue(t, sheet, "A1"))
		assert.Equal(t, contracts.Value("foo"), _cellValue(t, sheet, "B1"))
		assert.Equal(t, contracts.Value(7.0), _cellValue(t, sheet, "C1"))
		assert.Equal(t, contracts.Value("   "), _cellValue(t, sheet, "D1"))
		assert.Equal(t, contracts.Value(""), _cellValue(t, sheet, "E1"))
	})

	t.Run("unknown cell", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		touched, err := sheet.UpdateCell("F1", "5")

		assert.Nil(t, touched)
		assert.ErrorIs(t, err, contracts.CellNotFoundError)
		assert.Len(t, sheet.Grid().Cells, 25)
	})

	t.Run("propagation", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=5", "B1==A1+1")
		assert.Equal(t, contracts.Value(6.0), _cellValue(t, sheet, "B1"))

		touched, err := sheet.UpdateCell("A1", "10")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Value(11.0), _cellValue(t, sheet, "B1"))
		assert.Len(t, touched, 2)
		assert.Equal(t, "A1", touched[0].Id)
		assert.Equal(t, "B1", touched[1].Id)
	})

	t.Run("transitive propagation", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=1", "B1==A1", "C1==B1+1")
		_updateCells(t, sheet, "A1=100")

		assert.Equal(t, contracts.Value(100.0), _cellValue(t, sheet, "B1"))
		assert.Equal(t, contracts.Value(101.0), _cellValue(t, sheet, "C1"))
	})

	t.Run("diamond", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=1", "B1==A1*2", "C1==A1*3", "D1==B1+C1")
		touched, _ := sheet.UpdateCell("A1", "2")

		assert.Equal(t, contracts.Value(10.0), _cellValue(t, sheet, "D1"))

		ids := make([]string, 0, len(touched))
		for _, cell := range touched {
			ids = append(ids, cell.Id)
		}
		assert.Equal(t, []string{"A1", "B1", "C1", "D1"}, ids)
	})

	t.Run("error containment", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "B1==A1+1")
		touched, err := sheet.UpdateCell("A1", "=1/")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Value(contracts.ErrorValue), touched[0].Value)
		assert.NotEmpty(t, touched[0].Error)

		// ERROR is not numeric, so the dependant fails too
		assert.Equal(t, contracts.Value(contracts.ErrorValue), _cellValue(t, sheet, "B1"))

		_updateCells(t, sheet, "A1=5")

		cell, _ := sheet.GetCell("A1")
		assert.Equal(t, contracts.Value(5.0), cell.Value)
		assert.Equal(t, "", cell.Error)
		assert.Equal(t, contracts.Value(6.0), _cellValue(t, sheet, "B1"))
	})

	t.Run("text operand", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=hello", "B1==A1+1")

		cell, _ := sheet.GetCell("B1")
		assert.Equal(t, contracts.Value(contracts.ErrorValue), cell.Value)
		assert.Contains(t, cell.Error, "non-numeric")
	})

	t.Run("empty references are zero", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "B1==A1+C5*2+3", "D1=   ")

		assert.Equal(t, contracts.Value(3.0), _cellValue(t, sheet, "B1"))

		_updateCells(t, sheet, "E1==D1+1")
		assert.Equal(t, contracts.Value(1.0), _cellValue(t, sheet, "E1"))
		assert.Equal(t, contracts.Value("   "), _cellValue(t, sheet, "D1"))
	})

	t.Run("comments do not hide references", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=5", "B1=3")
		touched, _ := sheet.UpdateCell("C1", "=A1//B1")

		assert.Equal(t, []string{"A1", "B1"}, touched[0].Deps)
		assert.Equal(t, contracts.Value(contracts.ErrorValue), touched[0].Value)
		assert.Contains(t, touched[0].Error, "syntax error")
	})

	t.Run("textual reference quirk", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		touched, _ := sheet.UpdateCell("B1", "=A12")

		assert.Equal(t, []string{"A1"}, touched[0].Deps)
		assert.Equal(t, contracts.Value(contracts.ErrorValue), touched[0].Value)
		assert.Equal(t, []string{"B1"}, sheet.FindDependents("A1"))
	})

	t.Run("idempotence", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=3", "B1==A1*A1", "C1==B1-A1", "D1==1/0")
		_updateCells(t, sheet, "B1==A1*A1")
		first := sheet.Grid()

		_updateCells(t, sheet, "B1==A1*A1")

		assert.Equal(t, first, sheet.Grid())
	})

	t.Run("removing a reference stops propagation", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1=1", "B1==A1", "B1=7")
		touched, _ := sheet.UpdateCell("A1", "2")

		assert.Len(t, touched, 1)
		assert.Empty(t, sheet.FindDependents("A1"))
		assert.Equal(t, contracts.Value(7.0), _cellValue(t, sheet, "B1"))
	})

	t.Run("returned cells are copies", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		touched, _ := sheet.UpdateCell("B1", "=A1+A2")
		touched[0].Deps[0] = "E5"
		touched[0].Value = "changed"

		cell, _ := sheet.GetCell("B1")
		assert.Equal(t, []string{"A1", "A2"}, cell.Deps)
		assert.Equal(t, contracts.Value(0.0), cell.Value)
	})
}

func TestSheet_UpdateCell_Cycles(t *testing.T) {
	t.Run("error policy", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		_updateCells(t, sheet, "A1==B1", "B1==A1", "C1==A1+1")
		_updateCells(t, sheet, "A1==B1")

		for _, cellId := range []string{"A1", "B1", "C1"} {
			cell, _ := sheet.GetCell(cellId)
			assert.Equal(t, contracts.Value(contracts.ErrorValue), cell.Value, cellId)
		}

		cell, _ := sheet.GetCell("A1")
		assert.Contains(t, cell.Error, "circular reference")

		// breaking the cycle recovers every cell
		_updateCells(t, sheet, "B1=4")

		assert.Equal(t, contracts.Value(4.0), _cellValue(t, sheet, "A1"))
		assert.Equal(t, contracts.Value(5.0), _cellValue(t, sheet, "C1"))
	})

	t.Run("self reference", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicyError)

		touched, err := sheet.UpdateCell("A1", "=A1+1")

		assert.NoError(t, err)
		assert.Len(t, touched, 1)
		assert.Equal(t, contracts.Value(contracts.ErrorValue), touched[0].Value)
	})

	t.Run("single pass policy terminates", func(t *testing.T) {
		sheet := _newSheet(t, CyclePolicySinglePass)

		_updateCells(t, sheet, "A1==B1+1", "B1==A1+1")
		touched, err := sheet.UpdateCell("A1", "=B1+1")

		assert.NoError(t, err)
		assert.Len(t, touched, 2)
		assert.IsType(t, float64(0), _cellValue(t, sheet, "A1"))
		assert.IsType(t, float64(0), _cellValue(t, sheet, "B1"))
	})
}

func TestSheet_UpdateCell_EvaluatesEachCellOnce(t *testing.T) {
	store, _ := NewCellStore(DefaultColumns, DefaultRows)
	formulaParser := NewFormulaParser(DefaultColumns, DefaultRows)
	executor := mocks.NewExpressionExecutor(t)
	sheet := NewSheet(store, formulaParser, executor, NewCellDependencyTree(store.Position), CyclePolicySinglePass)

	executor.On("Evaluate", mock.Anything, mock.Anything).Return(1.0, nil)

	_updateCells(t, sheet, "B1==A1", "C1==A1+B1", "D1==B1+C1", "A2==D1+A1")
	executor.Calls = nil

	_, err := sheet.UpdateCell("A1", "5")

	assert.NoError(t, err)
	executor.AssertNumberOfCalls(t, "Evaluate", 4)
	for _, formula := range []string{"=A1", "=A1+B1", "=B1+C1", "=D1+A1"} {
		executor.AssertCalled(t, "Evaluate", formula, mock.Anything)
	}
}

func TestSheet_Evaluate(t *testing.T) {
	sheet := _newSheet(t, CyclePolicyError)
	_updateCells(t, sheet, "A1=2", "B1==A1*10")

	t.Run("grid values", func(t *testing.T) {
		value, err := sheet.Evaluate("=B1+A1", nil)

		assert.NoError(t, err)
		assert.Equal(t, contracts.Value(22.0), value)
	})

	t.Run("overrides win over the grid", func(t *testing.T) {
		value, err := sheet.Evaluate("=B1+A1", NewOverridesValuesGetter(map[string]contracts.Value{"A1": 5.0}))

		assert.NoError(t, err)
		assert.Equal(t, contracts.Value(25.0), value)
		assert.Equal(t, contracts.Value(2.0), _cellValue(t, sheet, "A1"))
	})

	t.Run("literal", func(t *testing.T) {
		value, err := sheet.Evaluate("12", nil)

		assert.NoError(t, err)
		assert.Equal(t, contracts.Value(12.0), value)
	})

	t.Run("error", func(t *testing.T) {
		value, err := sheet.Evaluate("=A1/0", nil)

		assert.ErrorIs(t, err, contracts.DivisionByZeroError)
		assert.Equal(t, contracts.Value(contracts.ErrorValue), value)
	})
}
