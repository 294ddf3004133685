// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/open2b/pony/ast"
)

func parsePatternSource(src string) (ast.Pattern, error) {
	return parseSource(src, func(p *parsing, c *cursor) ast.Pattern {
		return p.parsePattern(c, true)
	})
}

var patternStringTests = []struct {
	src      string
	expected string
}{
	{"_", "_"},
	{"x", "x"},
	{"ref x", "ref x"},
	{"mut x", "mut x"},
	{"ref mut x", "ref mut x"},
	{"x @ 1..=5", "x @ 1..=5"},
	{"x @ Some(_)", "x @ Some(_)"},
	{"0", "0"},
	{"-1", "-1"},
	{"-1.5", "-1.5"},
	{"'a'", "'a'"},
	{`"s"`, `"s"`},
	{"true", "true"},
	{"1..=5", "1..=5"},
	{"1..5", "1..5"},
	{"3..", "3.."},
	{"..=5", "..=5"},
	{"-10..=-1", "-10..=-1"},
	{"'a'..='z'", "'a'..='z'"},
	{"i32::MIN..=0", "i32::MIN..=0"},
	{"Color::Red", "Color::Red"},
	{"::std::cmp::Ordering::Less", "::std::cmp::Ordering::Less"},
	{"Some(x)", "Some(x)"},
	{"Some(_)", "Some(_)"},
	{"Some(A | B)", "Some(A | B)"},
	{"Point(x, y,)", "Point(x, y)"},
	{"Point { x, y: 0 }", "Point { x, y: 0 }"},
	{"Point { x, .. }", "Point { x, .. }"},
	{"Point { .. }", "Point { .. }"},
	{"Point {}", "Point { }"},
	{"Pair { 0: a, 1: b }", "Pair { 0: a, 1: b }"},
	{"Point { ref x, mut y }", "Point { x: ref x, y: mut y }"},
	{"Apple { color: Color::Red, .. }", "Apple { color: Color::Red, .. }"},
	{"Food::Fruit(Fruit::Apple(Apple { color, .. }))", "Food::Fruit(Fruit::Apple(Apple { color, .. }))"},
	{"()", "()"},
	{"(a)", "a"},
	{"(a,)", "(a,)"},
	{"(a, b)", "(a, b)"},
	{"(a, .., b)", "(a, .., b)"},
	{"(0, _)", "(0, _)"},
	{"[]", "[]"},
	{"[a, b]", "[a, b]"},
	{"[first, .., last]", "[first, .., last]"},
	{"[first, rest @ ..]", "[first, rest @ ..]"},
	{"&x", "&x"},
	{"&mut x", "&mut x"},
	{"&(a, b)", "&(a, b)"},
	{"A | B", "A | B"},
	{"A | B | C", "A | B | C"},
	{"| A | B", "| A | B"},
	{"(1 | 2, x)", "(1 | 2, x)"},
}

func TestPatternString(t *testing.T) {
	for _, test := range patternStringTests {
		pattern, err := parsePatternSource(test.src)
		if err != nil {
			t.Errorf("source: %q, %s\n", test.src, err)
			continue
		}
		if got := pattern.String(); got != test.expected {
			t.Errorf("source: %q, unexpected %q, expecting %q\n", test.src, got, test.expected)
		}
	}
}

var patternTreeTests = []struct {
	src  string
	node ast.Node
}{
	{"_", ast.NewWildcardPattern(p(1, 1, 0, 0))},
	{"x", ast.NewIdentPattern(p(1, 1, 0, 0), false, false, ast.NewIdentifier(p(1, 1, 0, 0), "x"), nil)},
	{"ref mut x", ast.NewIdentPattern(p(1, 1, 0, 8), true, true, ast.NewIdentifier(p(1, 9, 8, 8), "x"), nil)},
	{"-1", ast.NewLiteralPattern(p(1, 1, 0, 1), true, ast.NewBasicLiteral(p(1, 2, 1, 1), ast.IntLiteral, "1"))},
	{"1..=5", ast.NewRangePattern(p(1, 1, 0, 4),
		ast.NewLiteralPattern(p(1, 1, 0, 0), false, ast.NewBasicLiteral(p(1, 1, 0, 0), ast.IntLiteral, "1")),
		ast.NewLiteralPattern(p(1, 5, 4, 4), false, ast.NewBasicLiteral(p(1, 5, 4, 4), ast.IntLiteral, "5")),
		true)},
	{"Some(_)", ast.NewTupleStructPattern(p(1, 1, 0, 6),
		ast.NewPath(p(1, 1, 0, 3), false, []ast.PathSegment{{Ident: ast.NewIdentifier(p(1, 1, 0, 3), "Some")}}),
		[]ast.Pattern{ast.NewWildcardPattern(p(1, 6, 5, 5))})},
	{"| A | B", ast.NewOrPattern(p(1, 1, 0, 6), true, []ast.Pattern{
		ast.NewIdentPattern(p(1, 3, 2, 2), false, false, ast.NewIdentifier(p(1, 3, 2, 2), "A"), nil),
		ast.NewIdentPattern(p(1, 7, 6, 6), false, false, ast.NewIdentifier(p(1, 7, 6, 6), "B"), nil),
	})},
	{"&x", ast.NewReferencePattern(p(1, 1, 0, 1), false,
		ast.NewIdentPattern(p(1, 2, 1, 1), false, false, ast.NewIdentifier(p(1, 2, 1, 1), "x"), nil))},
	{"(..)", ast.NewTuplePattern(p(1, 1, 0, 3), []ast.Pattern{ast.NewRestPattern(p(1, 2, 1, 2))})},
}

func TestPatternTrees(t *testing.T) {
	for _, test := range patternTreeTests {
		pattern, err := parsePatternSource(test.src)
		if err != nil {
			t.Errorf("source: %q, %s\n", test.src, err)
			continue
		}
		if diff := cmp.Diff(test.node, pattern); diff != "" {
			t.Errorf("source: %q, unexpected tree (-want +got):\n%s", test.src, diff)
		}
	}
}

var patternErrorTests = []struct {
	src string
	msg string
	col int
}{
	{"", "unexpected EOF, expecting pattern", 1},
	{"+", "unexpected +, expecting pattern", 1},
	{"if", "unexpected if, expecting pattern", 1},
	{"-x", "unexpected x, expecting number", 2},
	{"..=", "unexpected EOF, expecting range bound", 4},
	{"1..=", "unexpected EOF, expecting range bound", 5},
	{"ref 1", "unexpected 1, expecting identifier", 5},
	{"ref if", "unexpected if, expecting identifier", 5},
	{"(a b)", "unexpected b, expecting ,", 4},
	{"Some(a b)", "unexpected b, expecting ,", 8},
	{"Point { .., x }", "unexpected ,, expecting }", 11},
	{"Point { x y }", "unexpected y, expecting ,", 11},
	{"Point { x @ _ }", "unexpected @ in field shorthand", 13},
	{"Point { 0 }", "unexpected 0, expecting identifier", 9},
	{"a b", "unexpected b, expecting EOF", 3},
}

func TestPatternErrors(t *testing.T) {
	for _, test := range patternErrorTests {
		_, err := parsePatternSource(test.src)
		if err == nil {
			t.Errorf("source: %q, expecting error %q\n", test.src, test.msg)
			continue
		}
		e := err.(*SyntaxError)
		if e.Message() != test.msg {
			t.Errorf("source: %q, unexpected error %q, expecting %q\n", test.src, e.Message(), test.msg)
		}
		if pos := e.Position(); pos.Line != 1 || pos.Column != test.col {
			t.Errorf("source: %q, unexpected position %s, expecting 1:%d\n", test.src, pos, test.col)
		}
	}
}
