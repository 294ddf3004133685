// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astutil implements functions to walk and dump a tree.
package astutil

import (
	"fmt"

	"github.com/open2b/pony/ast"
)

// Visitor's Visit method is invoked for every node encountered by Walk.
type Visitor interface {
	Visit(node ast.Node) (w Visitor)
}

// Walk visits a tree in depth. Initially it calls v.Visit(node), where node
// must not be nil. If the visitor w returned by v.Visit(node) is not nil,
// Walk is called recursively with w on each of the non-nil children of node,
// in source order, followed by a call of w.Visit(nil).
//
// Markup, blocks, expressions and patterns are all visited. An element name
// is visited as an ElementName node, its segments are not visited.
func Walk(v Visitor, node ast.Node) {

	if v == nil {
		panic("v can't be nil")
	}

	if node == nil {
		panic("node can't be nil")
	}

	v = v.Visit(node)

	if v == nil {
		return
	}

	switch n := node.(type) {

	// Markup.

	case *ast.Fragment:
		walkChildren(v, n.Children)

	case *ast.ClosedElement:
		Walk(v, n.Opening)
		walkChildren(v, n.Children)
		Walk(v, n.Closing)

	case *ast.OpeningElement:
		Walk(v, n.Name)
		walkAttributes(v, n.Attributes)

	case *ast.ClosingElement:
		Walk(v, n.Name)

	case *ast.SelfClosingElement:
		Walk(v, n.Name)
		walkAttributes(v, n.Attributes)

	case *ast.NamedAttribute:
		Walk(v, n.Key)
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *ast.SpreadAttribute:
		Walk(v, n.Expr)

	case *ast.ExpressionValue:
		Walk(v, n.Expr)

	case *ast.Mustache:
		Walk(v, n.Expr)
		if n.Format != nil {
			Walk(v, n.Format)
		}

	// Blocks.

	case *ast.IfBlock:
		Walk(v, n.Condition)
		walkChildren(v, n.Children)
		for _, branch := range n.Dividers {
			Walk(v, branch)
		}

	case *ast.IfBranch:
		Walk(v, n.Divider)
		walkChildren(v, n.Children)

	case *ast.ElseIf:
		Walk(v, n.Condition)

	case *ast.MatchBlock:
		Walk(v, n.Expr)
		for _, comment := range n.Comments {
			Walk(v, comment)
		}
		for _, c := range n.Cases {
			Walk(v, c)
		}

	case *ast.MatchCase:
		Walk(v, n.Divider)
		walkChildren(v, n.Children)

	case *ast.CaseDivider:
		Walk(v, n.Pattern)
		if n.Guard != nil {
			Walk(v, n.Guard)
		}

	// Expressions.

	case *ast.Path:
		for _, s := range n.Segments {
			Walk(v, s.Ident)
		}

	case *ast.Paren:
		Walk(v, n.Expr)

	case *ast.UnaryOperator:
		Walk(v, n.Expr)

	case *ast.BinaryOperator:
		Walk(v, n.Expr1)
		Walk(v, n.Expr2)

	case *ast.Range:
		if n.Low != nil {
			Walk(v, n.Low)
		}
		if n.High != nil {
			Walk(v, n.High)
		}

	case *ast.Assignment:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)

	case *ast.Call:
		Walk(v, n.Func)
		walkExpressions(v, n.Args)

	case *ast.MethodCall:
		Walk(v, n.Receiver)
		Walk(v, n.Method)
		walkExpressions(v, n.Args)

	case *ast.Selector:
		Walk(v, n.Expr)

	case *ast.Index:
		Walk(v, n.Expr)
		Walk(v, n.Index)

	case *ast.Try:
		Walk(v, n.Expr)

	case *ast.Tuple:
		walkExpressions(v, n.Elements)

	case *ast.Array:
		walkExpressions(v, n.Elements)
		if n.Len != nil {
			Walk(v, n.Len)
		}

	case *ast.Closure:
		walkPatterns(v, n.Params)
		Walk(v, n.Body)

	case *ast.Let:
		Walk(v, n.Pattern)
		Walk(v, n.Expr)

	case *ast.MacroCall:
		Walk(v, n.Path)

	// Patterns.

	case *ast.LiteralPattern:
		Walk(v, n.Literal)

	case *ast.IdentPattern:
		Walk(v, n.Ident)
		if n.Sub != nil {
			Walk(v, n.Sub)
		}

	case *ast.PathPattern:
		Walk(v, n.Path)

	case *ast.TupleStructPattern:
		Walk(v, n.Path)
		walkPatterns(v, n.Elements)

	case *ast.StructPattern:
		Walk(v, n.Path)
		for _, f := range n.Fields {
			Walk(v, f)
		}

	case *ast.FieldPattern:
		Walk(v, n.Name)
		if n.Pattern != nil {
			Walk(v, n.Pattern)
		}

	case *ast.TuplePattern:
		walkPatterns(v, n.Elements)

	case *ast.SlicePattern:
		walkPatterns(v, n.Elements)

	case *ast.RangePattern:
		if n.Low != nil {
			Walk(v, n.Low)
		}
		if n.High != nil {
			Walk(v, n.High)
		}

	case *ast.ReferencePattern:
		Walk(v, n.Pattern)

	case *ast.OrPattern:
		walkPatterns(v, n.Cases)

	case *ast.ElementName:
	case *ast.StringValue:
	case *ast.Text:
	case *ast.Comment:
	case *ast.FormatSpec:
	case *ast.Else:
	case *ast.Identifier:
	case *ast.BasicLiteral:
	case *ast.WildcardPattern:
	case *ast.RestPattern:
		// Nothing to do.

	default:
		panic(fmt.Sprintf("no cases were defined for type %T on function Walk", n))
	}

	v.Visit(nil)

}

func walkChildren(v Visitor, children []ast.Child) {
	for _, child := range children {
		Walk(v, child)
	}
}

func walkAttributes(v Visitor, attributes []ast.Attribute) {
	for _, attribute := range attributes {
		Walk(v, attribute)
	}
}

func walkExpressions(v Visitor, exprs []ast.Expression) {
	for _, expr := range exprs {
		Walk(v, expr)
	}
}

func walkPatterns(v Visitor, patterns []ast.Pattern) {
	for _, pattern := range patterns {
		Walk(v, pattern)
	}
}

// Visit implements the Visitor interface for the f function.
func (f inspector) Visit(node ast.Node) Visitor {
	if node == nil {
		return nil
	}
	if f(node) {
		return f
	}
	return nil
}

type inspector func(ast.Node) bool

// Inspect visits the tree by calling the function f on every node. If f
// returns false, the children of the node are not visited. Unlike Walk, f is
// never called with a nil node.
func Inspect(node ast.Node, f func(ast.Node) bool) {
	Walk(inspector(f), node)
}
