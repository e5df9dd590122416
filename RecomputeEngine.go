package main

import (
	"fmt"
	"miniSheet/contracts"
)

type CyclePolicy string

const (
	// CyclePolicyError evaluates every formula cell that takes part in a cycle to ErrorValue
	CyclePolicyError CyclePolicy = "error"
	// CyclePolicySinglePass evaluates cyclic cells once per update, values are not converged
	CyclePolicySinglePass CyclePolicy = "single_pass"
)

func (p CyclePolicy) IsValid() bool {
	return p == CyclePolicyError || p == CyclePolicySinglePass
}

// Sheet is the recompute engine. UpdateCell is the only way cells change.
// It is not safe for concurrent use, SheetRepository serialises access to it.
type Sheet struct {
	store          *CellStore
	formulaParser  contracts.FormulaParser
	executor       contracts.ExpressionExecutor
	dependencyTree contracts.CellDependencyTree
	cyclePolicy    CyclePolicy
}

func NewSheet(
	store *CellStore, formulaParser contracts.FormulaParser,
	executor contracts.ExpressionExecutor, dependencyTree contracts.CellDependencyTree,
	cyclePolicy CyclePolicy,
) *Sheet {
	return &Sheet{
		store:          store,
		formulaParser:  formulaParser,
		executor:       executor,
		dependencyTree: dependencyTree,
		cyclePolicy:    cyclePolicy,
	}
}

// NewDefaultSheet wires the default parser, executor and dependency tree for the grid bounds
func NewDefaultSheet(columns []string, rows int, cyclePolicy CyclePolicy) (*Sheet, error) {
	if !cyclePolicy.IsValid() {
		return nil, fmt.Errorf("%w: unknown cycle policy `%s`", contracts.InvalidConfigError, cyclePolicy)
	}

	store, err := NewCellStore(columns, rows)
	if err != nil {
		return nil, err
	}

	formulaParser := NewFormulaParser(columns, rows)

	return NewSheet(
		store,
		formulaParser,
		NewExpressionExecutor(formulaParser),
		NewCellDependencyTree(store.Position),
		cyclePolicy,
	), nil
}

// UpdateCell stores raw for cellId, evaluates it and refreshes every transitive dependant.
// Evaluation failures end up in the cells as ErrorValue, the only error returned is
// CellNotFoundError. The returned cells are copies in evaluation order, cellId first.
func (s *Sheet) UpdateCell(cellId string, raw string) ([]contracts.Cell, error) {
	cell, ok := s.store.Get(cellId)
	if !ok {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	cell.Raw = raw
	cell.Deps = []string{}
	cell.Error = ""

	if s.formulaParser.IsFormula(raw) {
		cell.Formula = raw
		cell.Deps = s.formulaParser.ExtractDependencies(raw)
	} else {
		cell.Formula = ""
		cell.Value = ParseLiteral(raw)
	}

	s.dependencyTree.SetDependsOn(cellId, cell.Deps)

	// the walk starts at cellId, so the edited cell is evaluated there
	return s.recompute(cellId), nil
}

// FindDependents returns the direct dependants of cellId in grid order
func (s *Sheet) FindDependents(cellId string) []string {
	return s.dependencyTree.GetDependants(cellId)
}

func (s *Sheet) GetCell(cellId string) (contracts.Cell, error) {
	cell, ok := s.store.Get(cellId)
	if !ok {
		return contracts.Cell{}, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	return cell.Copy(), nil
}

func (s *Sheet) Grid() *contracts.Grid {
	return &contracts.Grid{
		Columns: s.store.Columns(),
		Rows:    s.store.Rows(),
		Cells:   s.store.Snapshot(),
	}
}

func (s *Sheet) Ids() []string {
	return s.store.Ids()
}

func (s *Sheet) Columns() []string {
	return s.store.Columns()
}

func (s *Sheet) Rows() int {
	return s.store.Rows()
}

// Evaluate computes raw against overrides first and the grid second, nothing is stored
func (s *Sheet) Evaluate(raw string, overrides contracts.CellValuesGetter) (contracts.Value, error) {
	if !s.formulaParser.IsFormula(raw) {
		return ParseLiteral(raw), nil
	}

	return s.executor.Evaluate(raw, NewCellValuesGetterChain(overrides, s.store.GetValue))
}

// recompute refreshes cellId and everything reachable from it through dependants.
// Every cell is visited once per update, so cycles terminate. Cells are evaluated in
// reverse post-order of the walk: a cell is only evaluated after every refreshed
// cell it reads from, unless both sit on the same cycle.
func (s *Sheet) recompute(cellId string) []contracts.Cell {
	postOrder := make([]string, 0, 1)
	s.walkDependants(cellId, map[string]bool{}, &postOrder)

	touched := make([]contracts.Cell, 0, len(postOrder))
	for i := len(postOrder) - 1; i >= 0; i-- {
		cell, ok := s.store.Get(postOrder[i])
		if !ok {
			continue
		}

		if cell.HasFormula() {
			s.evaluateCell(cell)
		}
		touched = append(touched, cell.Copy())
	}

	return touched
}

func (s *Sheet) walkDependants(cellId string, visited map[string]bool, postOrder *[]string) {
	if visited[cellId] {
		return
	}
	visited[cellId] = true

	// reversed, so unrelated siblings come out in grid order
	dependants := s.dependencyTree.GetDependants(cellId)
	for i := len(dependants) - 1; i >= 0; i-- {
		s.walkDependants(dependants[i], visited, postOrder)
	}

	*postOrder = append(*postOrder, cellId)
}

func (s *Sheet) evaluateCell(cell *contracts.Cell) {
	if s.cyclePolicy == CyclePolicyError && s.dependencyTree.IsCircular(cell.Id) {
		cell.Value = contracts.ErrorValue
		cell.Error = fmt.Errorf("%s: %w", cell.Id, contracts.CircularReferenceError).Error()
		return
	}

	value, err := s.executor.Evaluate(cell.Formula, s.store.GetValue)
	cell.Value = value
	cell.Error = ""
	if err != nil {
		cell.Error = err.Error()
	}
}

// ParseLiteral keeps numeric text as a number and anything else verbatim
func ParseLiteral(raw string) contracts.Value {
	if number, ok := ParseNumber(raw); ok {
		return number
	}

	return raw
}
