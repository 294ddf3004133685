// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"testing"

	"golang.org/x/net/html/atom"
)

var n1 = NewBasicLiteral(nil, IntLiteral, "1")
var n2 = NewBasicLiteral(nil, IntLiteral, "2")
var n3 = NewBasicLiteral(nil, IntLiteral, "3")
var n5 = NewBasicLiteral(nil, IntLiteral, "5")

var a = NewIdentifier(nil, "a")
var b = NewIdentifier(nil, "b")
var x = NewIdentifier(nil, "x")

func path(global bool, names ...string) *Path {
	segments := make([]PathSegment, len(names))
	for i, name := range names {
		segments[i] = PathSegment{Ident: NewIdentifier(nil, name)}
	}
	return NewPath(nil, global, segments)
}

var expressionStringTests = []struct {
	str  string
	expr Expression
}{
	{"1", n1},
	{"3.59", NewBasicLiteral(nil, FloatLiteral, "3.59")},
	{`"a\tb"`, NewBasicLiteral(nil, StringLiteral, `"a\tb"`)},
	{`'c'`, NewBasicLiteral(nil, CharLiteral, `'c'`)},
	{"x", x},
	{"-1", NewUnaryOperator(nil, OperatorSubtraction, n1)},
	{"!!a", NewUnaryOperator(nil, OperatorNot, NewUnaryOperator(nil, OperatorNot, a))},
	{"*a", NewUnaryOperator(nil, OperatorDereference, a)},
	{"&mut x", NewUnaryOperator(nil, OperatorMutReference, x)},
	{"-(1 + 2)", NewUnaryOperator(nil, OperatorSubtraction, NewBinaryOperator(nil, OperatorAddition, n1, n2))},
	{"1 + 2", NewBinaryOperator(nil, OperatorAddition, n1, n2)},
	{"1 * 2 + 3", NewBinaryOperator(nil, OperatorAddition, NewBinaryOperator(nil, OperatorMultiplication, n1, n2), n3)},
	{"(1 + 2) * 3", NewBinaryOperator(nil, OperatorMultiplication, NewBinaryOperator(nil, OperatorAddition, n1, n2), n3)},
	{"1 - (2 - 3)", NewBinaryOperator(nil, OperatorSubtraction, n1, NewBinaryOperator(nil, OperatorSubtraction, n2, n3))},
	{"a && b || x", NewBinaryOperator(nil, OperatorOr, NewBinaryOperator(nil, OperatorAnd, a, b), x)},
	{"a << 2 == b", NewBinaryOperator(nil, OperatorEqual, NewBinaryOperator(nil, OperatorLeftShift, a, n2), b)},
	{"(a)", NewParen(nil, a)},
	{"a..b", NewRange(nil, a, b, false)},
	{"1..=5", NewRange(nil, n1, n5, true)},
	{"a..", NewRange(nil, a, nil, false)},
	{"..b", NewRange(nil, nil, b, false)},
	{"..", NewRange(nil, nil, nil, false)},
	{"x = 1", NewAssignment(nil, x, AssignmentSimple, n1)},
	{"x >>= 2", NewAssignment(nil, x, AssignmentRightShift, n2)},
	{"f()", NewCall(nil, NewIdentifier(nil, "f"), nil)},
	{"f(a, b)", NewCall(nil, NewIdentifier(nil, "f"), []Expression{a, b})},
	{"a.len()", NewMethodCall(nil, a, NewIdentifier(nil, "len"), "", nil)},
	{"a.collect::<Vec<_>>()", NewMethodCall(nil, a, NewIdentifier(nil, "collect"), "<Vec<_>>", nil)},
	{"(a + b).max(1)", NewMethodCall(nil, NewBinaryOperator(nil, OperatorAddition, a, b), NewIdentifier(nil, "max"), "", []Expression{n1})},
	{"a.b", NewSelector(nil, a, "b")},
	{"t.0", NewSelector(nil, NewIdentifier(nil, "t"), "0")},
	{"(..a).start", NewSelector(nil, NewRange(nil, nil, a, false), "start")},
	{"a[2]", NewIndex(nil, a, n2)},
	{"a[1..]", NewIndex(nil, a, NewRange(nil, n1, nil, false))},
	{"f()?", NewTry(nil, NewCall(nil, NewIdentifier(nil, "f"), nil))},
	{"()", NewTuple(nil, nil)},
	{"(1,)", NewTuple(nil, []Expression{n1})},
	{"(1, a)", NewTuple(nil, []Expression{n1, a})},
	{"[]", NewArray(nil, nil, nil)},
	{"[1, 2]", NewArray(nil, []Expression{n1, n2}, nil)},
	{"[0; 5]", NewArray(nil, []Expression{NewBasicLiteral(nil, IntLiteral, "0")}, n5)},
	{"|| 1", NewClosure(nil, false, nil, n1)},
	{"move |x, _| x", NewClosure(nil, true, []Pattern{
		NewIdentPattern(nil, false, false, x, nil), NewWildcardPattern(nil)}, x)},
	{"let Some(x) = a", NewLet(nil, NewTupleStructPattern(nil, path(false, "Some"),
		[]Pattern{NewIdentPattern(nil, false, false, x, nil)}), a)},
	{"::std::mem", path(true, "std", "mem")},
	{"Vec::<u8>::new", NewPath(nil, false, []PathSegment{
		{Ident: NewIdentifier(nil, "Vec"), Generics: "<u8>"},
		{Ident: NewIdentifier(nil, "new")},
	})},
	{`format!("{}", a)`, NewMacroCall(nil, path(false, "format"), '(', `"{}", a`)},
	{"vec![1, 2]", NewMacroCall(nil, path(false, "vec"), '[', "1, 2")},
	{"m!{a}", NewMacroCall(nil, path(false, "m"), '{', "a")},
}

func TestExpressionString(t *testing.T) {
	for _, e := range expressionStringTests {
		if e.expr.String() != e.str {
			t.Errorf("unexpected %q, expecting %q\n", e.expr.String(), e.str)
		}
	}
}

var patternStringTests = []struct {
	str     string
	pattern Pattern
}{
	{"_", NewWildcardPattern(nil)},
	{"..", NewRestPattern(nil)},
	{"1", NewLiteralPattern(nil, false, n1)},
	{"-1", NewLiteralPattern(nil, true, n1)},
	{"x", NewIdentPattern(nil, false, false, x, nil)},
	{"ref mut x @ 1..=5", NewIdentPattern(nil, true, true, x,
		NewRangePattern(nil, NewLiteralPattern(nil, false, n1), NewLiteralPattern(nil, false, n5), true))},
	{"Color::Red", NewPathPattern(nil, path(false, "Color", "Red"))},
	{"Some(_)", NewTupleStructPattern(nil, path(false, "Some"), []Pattern{NewWildcardPattern(nil)})},
	{"P { a, b: _, .. }", NewStructPattern(nil, path(false, "P"), []*FieldPattern{
		NewFieldPattern(nil, a, nil),
		NewFieldPattern(nil, b, NewWildcardPattern(nil)),
	}, true)},
	{"P { .. }", NewStructPattern(nil, path(false, "P"), nil, true)},
	{"P { a }", NewStructPattern(nil, path(false, "P"), []*FieldPattern{NewFieldPattern(nil, a, nil)}, false)},
	{"()", NewTuplePattern(nil, nil)},
	{"(x,)", NewTuplePattern(nil, []Pattern{NewIdentPattern(nil, false, false, x, nil)})},
	{"(_, ..)", NewTuplePattern(nil, []Pattern{NewWildcardPattern(nil), NewRestPattern(nil)})},
	{"[x, .., _]", NewSlicePattern(nil, []Pattern{
		NewIdentPattern(nil, false, false, x, nil), NewRestPattern(nil), NewWildcardPattern(nil)})},
	{"3..", NewRangePattern(nil, NewLiteralPattern(nil, false, n3), nil, false)},
	{"..=5", NewRangePattern(nil, nil, NewLiteralPattern(nil, false, n5), true)},
	{"&x", NewReferencePattern(nil, false, NewIdentPattern(nil, false, false, x, nil))},
	{"&mut _", NewReferencePattern(nil, true, NewWildcardPattern(nil))},
	{"1 | 2", NewOrPattern(nil, false, []Pattern{NewLiteralPattern(nil, false, n1), NewLiteralPattern(nil, false, n2)})},
	{"| _ | ..", NewOrPattern(nil, true, []Pattern{NewWildcardPattern(nil), NewRestPattern(nil)})},
}

func TestPatternString(t *testing.T) {
	for _, p := range patternStringTests {
		if p.pattern.String() != p.str {
			t.Errorf("unexpected %q, expecting %q\n", p.pattern.String(), p.str)
		}
	}
}

func intPtr(n int) *int {
	return &n
}

var formatStringTests = []struct {
	str    string
	format *FormatSpec
}{
	{"", &FormatSpec{}},
	{"?", &FormatSpec{Type: FormatType{Kind: FormatDebug}}},
	{">", &FormatSpec{Align: &Align{Direction: AlignRight}}},
	{"'0'^5", &FormatSpec{Align: &Align{Fill: '0', HasFill: true, Direction: AlignCenter}, Width: intPtr(5)}},
	{`'\''<`, &FormatSpec{Align: &Align{Fill: '\'', HasFill: true, Direction: AlignLeft}}},
	{`'\n'<`, &FormatSpec{Align: &Align{Fill: '\n', HasFill: true, Direction: AlignLeft}}},
	{`'\u{7}'>`, &FormatSpec{Align: &Align{Fill: '\a', HasFill: true, Direction: AlignRight}}},
	{`'\0'>5`, &FormatSpec{Align: &Align{HasFill: true, Direction: AlignRight}, Width: intPtr(5)}},
	{"+#08.2?", &FormatSpec{Sign: SignPositive, Pretty: true, Zero: true, Width: intPtr(8),
		Precision: &Precision{Kind: PrecisionCount, Count: 2}, Type: FormatType{Kind: FormatDebug}}},
	{"-", &FormatSpec{Sign: SignNegative}},
	{"#x?", &FormatSpec{Pretty: true, Type: FormatType{Kind: FormatDebugLowerHex}}},
	{"X?", &FormatSpec{Type: FormatType{Kind: FormatDebugUpperHex}}},
	{"4 e", &FormatSpec{Width: intPtr(4), Type: FormatType{Kind: FormatOther, Name: "e"}}},
	{".3 b", &FormatSpec{Precision: &Precision{Kind: PrecisionCount, Count: 3}, Type: FormatType{Kind: FormatOther, Name: "b"}}},
	{".p$", &FormatSpec{Precision: &Precision{Kind: PrecisionParameter, Parameter: "p"}}},
	{".*x", &FormatSpec{Precision: &Precision{Kind: PrecisionStar}, Type: FormatType{Kind: FormatOther, Name: "x"}}},
	{"#b", &FormatSpec{Pretty: true, Type: FormatType{Kind: FormatOther, Name: "b"}}},
}

func TestFormatSpecString(t *testing.T) {
	for _, f := range formatStringTests {
		if f.format.String() != f.str {
			t.Errorf("unexpected %q, expecting %q\n", f.format.String(), f.str)
		}
	}
}

func TestPositionString(t *testing.T) {
	pos := &Position{Line: 37, Column: 18, Start: 402, End: 405}
	if s := pos.String(); s != "37:18" {
		t.Fatalf("unexpected %q, expecting %q", s, "37:18")
	}
	end := pos.WithEnd(410)
	if end.End != 410 || pos.End != 405 {
		t.Fatalf("unexpected ends %d and %d, expecting 410 and 405", end.End, pos.End)
	}
	if n := NewText(pos, "t"); n.Pos() != pos {
		t.Fatal("Pos does not return the node position")
	}
}

func elementName(names ...string) *ElementName {
	segments := make([]*Identifier, len(names))
	for i, name := range names {
		segments[i] = NewIdentifier(nil, name)
	}
	return NewElementName(nil, segments)
}

func TestElementName(t *testing.T) {
	tests := []struct {
		name *ElementName
		str  string
		atom atom.Atom
	}{
		{elementName("div"), "div", atom.Div},
		{elementName("input"), "input", atom.Input},
		{elementName("Button"), "Button", 0},
		{elementName("my-widget"), "my-widget", 0},
		{elementName("icon", "Cactus"), "icon::Cactus", 0},
		{elementName("html", "div"), "html::div", 0},
	}
	for _, test := range tests {
		if s := test.name.String(); s != test.str {
			t.Errorf("unexpected %q, expecting %q\n", s, test.str)
		}
		if got := test.name.Atom(); got != test.atom {
			t.Errorf("name: %q, unexpected atom %q, expecting %q\n", test.str, got, test.atom)
		}
	}
}

func TestElementNameMatches(t *testing.T) {
	tests := []struct {
		opening, closing *ElementName
		matches          bool
	}{
		{elementName("a"), elementName("a"), true},
		{elementName("a"), elementName("b"), false},
		{elementName("icon", "Cactus"), elementName("icon", "Cactus"), true},
		{elementName("icon", "Cactus"), elementName("icon"), true},
		{elementName("icon"), elementName("icon", "Cactus"), true},
		{elementName("icon", "Cactus"), elementName("icon", "Tree"), false},
		{elementName("a", "b"), elementName("b", "b"), false},
	}
	for _, test := range tests {
		if got := test.opening.Matches(test.closing); got != test.matches {
			t.Errorf("<%s> and </%s>: unexpected %t, expecting %t\n", test.opening, test.closing, got, test.matches)
		}
	}
}

func TestElementInterface(t *testing.T) {
	attrs := []Attribute{NewNamedAttribute(nil, NewIdentifier(nil, "disabled"), nil)}
	elements := []Element{
		NewSelfClosingElement(nil, elementName("input"), attrs),
		NewClosedElement(nil, NewOpeningElement(nil, elementName("input"), attrs), nil,
			NewClosingElement(nil, elementName("input"))),
	}
	for _, e := range elements {
		if e.ElementName().String() != "input" {
			t.Errorf("%T: unexpected name %q, expecting %q", e, e.ElementName(), "input")
		}
		if len(e.ElementAttributes()) != 1 {
			t.Errorf("%T: unexpected %d attributes, expecting 1", e, len(e.ElementAttributes()))
		}
	}
}

func TestBlockKeyword(t *testing.T) {
	blocks := []struct {
		block   Block
		keyword string
	}{
		{NewIfBlock(nil, a, nil, nil), "if"},
		{NewMatchBlock(nil, a, nil, nil), "match"},
	}
	for _, b := range blocks {
		if k := b.block.Keyword(); k != b.keyword {
			t.Errorf("%T: unexpected %q, expecting %q", b.block, k, b.keyword)
		}
	}
}
