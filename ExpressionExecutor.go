package main

import (
	"fmt"
	"math"
	"miniSheet/contracts"
	"strings"

	"github.com/expr-lang/expr/ast"
	exprParser "github.com/expr-lang/expr/parser"
)

// ExpressionExecutor evaluates formulas over a closed arithmetic grammar:
// numbers, grid references, binary + - * /, unary + - and parentheses.
// The formula is only parsed by expr, never compiled or run by its VM.
type ExpressionExecutor struct {
	formulaParser contracts.FormulaParser
}

func NewExpressionExecutor(formulaParser contracts.FormulaParser) *ExpressionExecutor {
	return &ExpressionExecutor{formulaParser: formulaParser}
}

func (e *ExpressionExecutor) Evaluate(formula string, getter contracts.CellValuesGetter) (contracts.Value, error) {
	result, err := e.doEvaluate(formula, getter)
	if err != nil {
		return contracts.ErrorValue, fmt.Errorf("%s: %w", formula, err)
	}

	return result, nil
}

func (e *ExpressionExecutor) doEvaluate(formula string, getter contracts.CellValuesGetter) (float64, error) {
	expression := strings.TrimPrefix(formula, FormulaPrefix)
	if err := checkTokens(expression); err != nil {
		return 0, err
	}

	tree, err := exprParser.Parse(expression)
	if err != nil {
		// first line only, the rest is a source snippet
		return 0, fmt.Errorf("%w: %s", contracts.SyntaxError, strings.SplitN(err.Error(), "\n", 2)[0])
	}

	if tree == nil || tree.Node == nil {
		return 0, fmt.Errorf("%w: empty expression", contracts.SyntaxError)
	}

	visitor := NewFindReferencesVisitor(e.formulaParser.IsReference)
	ast.Walk(&tree.Node, visitor)
	if len(visitor.invalidReferences) > 0 {
		return 0, fmt.Errorf("%w: %s", contracts.InvalidReferenceError, strings.Join(visitor.invalidReferences, ", "))
	}

	result, err := e.evaluateNode(tree.Node, getter)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, contracts.NonFiniteResultError
	}

	return result, nil
}

func (e *ExpressionExecutor) evaluateNode(node ast.Node, getter contracts.CellValuesGetter) (float64, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return float64(n.Value), nil

	case *ast.FloatNode:
		return n.Value, nil

	case *ast.IdentifierNode:
		return e.resolveReference(n.Value, getter)

	case *ast.UnaryNode:
		operand, err := e.evaluateNode(n.Node, getter)
		if err != nil {
			return 0, err
		}

		switch n.Operator {
		case "-":
			return -operand, nil
		case "+":
			return operand, nil
		}
		return 0, fmt.Errorf("%w: unary `%s`", contracts.UnsupportedOperationError, n.Operator)

	case *ast.BinaryNode:
		left, err := e.evaluateNode(n.Left, getter)
		if err != nil {
			return 0, err
		}

		right, err := e.evaluateNode(n.Right, getter)
		if err != nil {
			return 0, err
		}

		switch n.Operator {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, contracts.DivisionByZeroError
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("%w: operator `%s`", contracts.UnsupportedOperationError, n.Operator)
	}

	return 0, fmt.Errorf("%w: %s", contracts.UnsupportedOperationError, describeNode(node))
}

// resolveReference treats unknown, empty and whitespace-only cells as 0
func (e *ExpressionExecutor) resolveReference(cellId string, getter contracts.CellValuesGetter) (float64, error) {
	if getter == nil {
		return 0, nil
	}

	value, ok := getter(cellId)
	if !ok {
		return 0, nil
	}

	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}
		if number, isNumber := ParseNumber(v); isNumber {
			return number, nil
		}
	}

	return 0, fmt.Errorf("%w: %s = %v", contracts.NonNumericOperandError, cellId, value)
}

func describeNode(node ast.Node) string {
	switch n := node.(type) {
	case *ast.CallNode:
		return "function call"
	case *ast.StringNode:
		return fmt.Sprintf("string %q", n.Value)
	case *ast.BoolNode:
		return "boolean"
	case *ast.NilNode:
		return "nil"
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}

// checkTokens allows decimal numbers, identifiers, + - * / ( ) and spaces only.
// expr's lexer also knows comments, strings, hex and 1_000 literals, none of them
// reach the parser.
func checkTokens(expression string) error {
	for i := 0; i < len(expression); {
		c := expression[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case c == '/' && i+1 < len(expression) && (expression[i+1] == '/' || expression[i+1] == '*'):
			return fmt.Errorf("%w: comment at position %d", contracts.SyntaxError, i)

		case strings.IndexByte("+-*/()", c) >= 0:
			i++

		case isDigit(c) || c == '.':
			end, ok := scanDecimal(expression, i)
			if !ok {
				return fmt.Errorf("%w: malformed number at position %d", contracts.SyntaxError, i)
			}
			i = end

		case isLetter(c):
			for i < len(expression) && (isLetter(expression[i]) || isDigit(expression[i])) {
				i++
			}

		default:
			return fmt.Errorf("%w: unexpected `%c` at position %d", contracts.SyntaxError, c, i)
		}
	}

	return nil
}

// scanDecimal reads digits[.digits][(e|E)[+-]digits] starting at start
func scanDecimal(expression string, start int) (int, bool) {
	i := start
	digits := 0
	for i < len(expression) && isDigit(expression[i]) {
		i++
		digits++
	}

	if i < len(expression) && expression[i] == '.' {
		i++
		for i < len(expression) && isDigit(expression[i]) {
			i++
			digits++
		}
	}

	if digits == 0 {
		return i, false
	}

	if i < len(expression) && (expression[i] == 'e' || expression[i] == 'E') {
		i++
		if i < len(expression) && (expression[i] == '+' || expression[i] == '-') {
			i++
		}

		exponentDigits := 0
		for i < len(expression) && isDigit(expression[i]) {
			i++
			exponentDigits++
		}
		if exponentDigits == 0 {
			return i, false
		}
	}

	// 0x10, 1_000, 1.2.3 and 5A1 all end up here
	if i < len(expression) && (isLetter(expression[i]) || isDigit(expression[i]) || expression[i] == '.') {
		return i, false
	}

	return i, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
