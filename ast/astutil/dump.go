// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astutil

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/open2b/pony/ast"
)

type dumper struct {
	output      io.Writer
	indentLevel int
}

type errVisitor struct {
	err error
}

func (e errVisitor) Error() string {
	return e.err.Error()
}

// Visit writes the representation of a node, indented according to its
// depth in the tree. The Visit method is called by the Walk function.
func (d *dumper) Visit(node ast.Node) Visitor {

	// Walk calls Visit(nil) after the children of a node.
	if node == nil {
		d.indentLevel--
		return nil
	}

	d.indentLevel++

	var text string
	switch n := node.(type) {
	case *ast.Text:
		text = strconv.Quote(truncate(n.Text, 30))
	case *ast.Comment:
		text = strconv.Quote(truncate(n.Text, 30))
	case *ast.StringValue:
		text = strconv.Quote(n.Value)
	case *ast.NamedAttribute:
		text = n.Key.Name
	case *ast.OpeningElement:
		text = n.Name.String()
	case *ast.ClosingElement:
		text = n.Name.String()
	case *ast.ClosedElement:
		text = n.Opening.Name.String()
	case *ast.SelfClosingElement:
		text = n.Name.String()
	case *ast.IfBlock:
		text = n.Condition.String()
	case *ast.ElseIf:
		text = n.Condition.String()
	case *ast.MatchBlock:
		text = n.Expr.String()
	case *ast.CaseDivider:
		text = n.Pattern.String()
	case *ast.FieldPattern:
		text = n.Name.Name
	case *ast.Mustache:
		text = n.Expr.String()
	case *ast.SpreadAttribute:
		text = n.Expr.String()
	case *ast.Fragment, *ast.ExpressionValue, *ast.IfBranch, *ast.Else, *ast.MatchCase:
		// Nodes with no text of their own.
	case *ast.ElementName:
		text = n.String()
	case *ast.FormatSpec:
		text = n.String()
	case ast.Expression:
		text = n.String()
	case ast.Pattern:
		text = n.String()
	}

	for i := 0; i < d.indentLevel; i++ {
		_, err := fmt.Fprint(d.output, "│    ")
		if err != nil {
			panic(errVisitor{err})
		}
	}

	// Type name without the "*ast." prefix.
	typeStr := fmt.Sprintf("%T", node)[5:]

	var err error
	if text == "" {
		_, err = fmt.Fprintf(d.output, "%s (%s)\n", typeStr, node.Pos())
	} else {
		_, err = fmt.Fprintf(d.output, "%s (%s) %s\n", typeStr, node.Pos(), text)
	}
	if err != nil {
		panic(errVisitor{err})
	}

	return d
}

// Dump writes to w a dump of the tree rooted at node, one node per line with
// its position. It returns an error if node is nil or if writing to w fails.
func Dump(w io.Writer, node ast.Node) (err error) {

	defer func() {
		if r := recover(); r != nil {
			if t, ok := r.(errVisitor); ok {
				err = t.err
			} else {
				panic(r)
			}
		}
	}()

	if node == nil {
		return errors.New("can't dump a nil tree")
	}

	d := dumper{w, -1}
	Walk(&d, node)

	return nil
}

// truncate truncates s to maxRunes runes, appending "..." if truncated.
func truncate(s string, maxRunes int) string {
	if maxRunes < 0 {
		panic("astutil: maxRunes can not be negative")
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
