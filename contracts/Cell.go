package contracts

import (
	"errors"
	"fmt"
)

// Value is a computed cell value:
//   - float64: numeric literals and formula results
//   - string: non-numeric literals, empty cells and the ErrorValue sentinel
type Value any

// ErrorValue is stored as the value of a formula cell whose evaluation failed
const ErrorValue = "ERROR"

type Cell struct {
	Id      string   `json:"id"`
	Raw     string   `json:"raw"`
	Value   Value    `json:"value"`
	Formula string   `json:"formula,omitempty"`
	Deps    []string `json:"deps"`
	Error   string   `json:"error,omitempty"`
}

func (c *Cell) HasFormula() bool {
	return c.Formula != ""
}

// Copy returns a detached copy, so the deps slice can not be mutated through it
func (c *Cell) Copy() Cell {
	copied := *c
	copied.Deps = append(make([]string, 0, len(c.Deps)), c.Deps...)
	return copied
}

var CellNotFoundError = errors.New("cell not found")

var InvalidGridError = errors.New("invalid grid bounds")

var InvalidConfigError = errors.New("invalid config")

var ExpressionError = errors.New("expression error")

var SyntaxError = fmt.Errorf("%w: %s", ExpressionError, "syntax error")

var InvalidReferenceError = fmt.Errorf("%w: %s", ExpressionError, "invalid reference")

var NonNumericOperandError = fmt.Errorf("%w: %s", ExpressionError, "non-numeric operand")

var DivisionByZeroError = fmt.Errorf("%w: %s", ExpressionError, "division by zero")

var NonFiniteResultError = fmt.Errorf("%w: %s", ExpressionError, "result is not a finite number")

var UnsupportedOperationError = fmt.Errorf("%w: %s", ExpressionError, "unsupported operation")

var CircularReferenceError = fmt.Errorf("%w: %s", ExpressionError, "circular reference detected")
