package contracts

// CellValuesGetter resolves the current value of a referenced cell.
// The second result is false when the getter does not know the cell.
type CellValuesGetter func(cellId string) (Value, bool)

type ExpressionExecutor interface {
	// Evaluate returns ErrorValue together with a wrapped ExpressionError when evaluation fails
	Evaluate(formula string, getter CellValuesGetter) (Value, error)
}

type FormulaParser interface {
	IsFormula(raw string) bool
	ExtractDependencies(formula string) []string
	IsReference(name string) bool
}
