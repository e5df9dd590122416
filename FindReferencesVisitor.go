package main

import (
	"github.com/expr-lang/expr/ast"
)

// FindReferencesVisitor splits identifiers of a formula AST into grid references
// and names that do not address any cell of the grid.
type FindReferencesVisitor struct {
	isReference       func(name string) bool
	references        []string
	invalidReferences []string
}

func NewFindReferencesVisitor(isReference func(name string) bool) *FindReferencesVisitor {
	return &FindReferencesVisitor{isReference: isReference}
}

func (v *FindReferencesVisitor) Visit(node *ast.Node) {
	var ok bool
	var identifierNode *ast.IdentifierNode

	if identifierNode, ok = (*node).(*ast.IdentifierNode); !ok {
		return
	}

	if v.isReference(identifierNode.Value) {
		v.references = append(v.references, identifierNode.Value)
	} else {
		v.invalidReferences = append(v.invalidReferences, identifierNode.Value)
	}
}
