package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const FormulaPrefix = "="

// FormulaParser recognises formulas and the in-grid references they contain.
// A reference is exactly one configured column letter followed by one configured row digit.
type FormulaParser struct {
	referenceRegex      *regexp.Regexp
	exactReferenceRegex *regexp.Regexp
}

func NewFormulaParser(columns []string, rows int) *FormulaParser {
	pattern := fmt.Sprintf("[%s][1-%d]", strings.Join(columns, ""), rows)

	return &FormulaParser{
		referenceRegex:      regexp.MustCompile(pattern),
		exactReferenceRegex: regexp.MustCompile("^" + pattern + "$"),
	}
}

func (p *FormulaParser) IsFormula(raw string) bool {
	return strings.HasPrefix(raw, FormulaPrefix)
}

// ExtractDependencies returns distinct references in first-occurrence order.
// "=A12" yields ["A1"]: matching is textual, the same way the evaluator would see it.
func (p *FormulaParser) ExtractDependencies(formula string) []string {
	dependencies := make([]string, 0)
	seen := map[string]bool{}

	for _, cellId := range p.referenceRegex.FindAllString(formula, -1) {
		if !seen[cellId] {
			seen[cellId] = true
			dependencies = append(dependencies, cellId)
		}
	}

	return dependencies
}

func (p *FormulaParser) IsReference(name string) bool {
	return p.exactReferenceRegex.MatchString(name)
}

// ParseNumber accepts finite decimal numbers, surrounding whitespace allowed
func ParseNumber(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	// decimal only: ParseFloat would also take 0x1p4
	if trimmed == "" || strings.ContainsAny(trimmed, "xX_") {
		return 0, false
	}

	number, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}

	return number, true
}
