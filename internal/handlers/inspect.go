package handlers

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const unknownOperation = "unknown"

// operationInfo is what the handler learns about a document before executing it.
type operationInfo struct {
	Type  string
	Name  string
	Depth int
}

// inspectOperation parses query and describes the operation selected by
// operationName. Documents that do not parse report an unknown type and zero
// depth; the executor reports their syntax errors.
func inspectOperation(query, operationName string) operationInfo {
	info := operationInfo{Type: unknownOperation}

	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil || doc == nil {
		return info
	}

	operations := doc.Operations
	if op := doc.Operations.ForName(operationName); op != nil {
		info.Type = string(op.Operation)
		info.Name = op.Name
		operations = ast.OperationList{op}
	}
	info.Depth = calculateQueryDepth(operations, doc.Fragments)
	return info
}

// calculateQueryDepth walks the GraphQL AST and returns the maximum selection depth.
// Depth is counted from field selections (not from operation root). Named
// fragments count as if they were inlined.
func calculateQueryDepth(operations ast.OperationList, fragments ast.FragmentDefinitionList) int {
	maxDepth := 0
	for _, op := range operations {
		if d := selectionSetDepth(op.SelectionSet, fragments, map[string]bool{}); d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth
}

func selectionSetDepth(set ast.SelectionSet, fragments ast.FragmentDefinitionList, visiting map[string]bool) int {
	maxDepth := 0
	for _, sel := range set {
		var childDepth int
		switch s := sel.(type) {
		case *ast.Field:
			if s.SelectionSet != nil {
				childDepth = 1 + selectionSetDepth(s.SelectionSet, fragments, visiting)
			} else {
				childDepth = 1
			}
		case *ast.InlineFragment:
			childDepth = selectionSetDepth(s.SelectionSet, fragments, visiting)
		case *ast.FragmentSpread:
			// Cyclic spreads are a validation error; stop walking and let the executor report it.
			def := fragments.ForName(s.Name)
			if def == nil || visiting[s.Name] {
				continue
			}
			visiting[s.Name] = true
			childDepth = selectionSetDepth(def.SelectionSet, fragments, visiting)
			delete(visiting, s.Name)
		}
		if childDepth > maxDepth {
			maxDepth = childDepth
		}
	}
	return maxDepth
}
