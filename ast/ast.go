// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast declares the types used to define Pony template trees.
//
// For example, the source:
//
//	<Button primary>Clicked {count:>3} times</Button>
//
// is represented with the tree:
//
//	&ast.ClosedElement{
//		Opening: &ast.OpeningElement{
//			Name: ast.NewElementName(pos, []*ast.Identifier{ast.NewIdentifier(pos, "Button")}),
//			Attributes: []ast.Attribute{
//				ast.NewNamedAttribute(pos, ast.NewIdentifier(pos, "primary"), nil),
//			},
//		},
//		Children: []ast.Child{
//			ast.NewText(pos, "Clicked"),
//			ast.NewMustache(pos, ast.NewIdentifier(pos, "count"), &ast.FormatSpec{
//				Align: &ast.Align{Direction: ast.AlignRight},
//				Width: &three,
//			}),
//			ast.NewText(pos, "times"),
//		},
//		Closing: &ast.ClosingElement{
//			Name: ast.NewElementName(pos, []*ast.Identifier{ast.NewIdentifier(pos, "Button")}),
//		},
//	}
//
// Every node, once returned by the parser, is owned by its parent and is
// never shared between trees.
package ast

import (
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// Node is a node of the tree.
type Node interface {
	Pos() *Position // position in the original source
}

// Position is a position of a node in the source.
type Position struct {
	Line   int // line starting from 1
	Column int // column in characters starting from 1
	Start  int // index of the first byte
	End    int // index of the last byte
}

// Pos returns the position p.
func (p *Position) Pos() *Position {
	return p
}

// String returns the line and column separated by a colon, for example "37:18".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// WithEnd returns a copy of the position but with the given end index.
func (p *Position) WithEnd(end int) *Position {
	pp := *p
	pp.End = end
	return &pp
}

// Root is the root node of a template. It is implemented by the
// ClosedElement, SelfClosingElement and Fragment nodes.
type Root interface {
	Node
	root()
}

// Child is a node that can appear in the children of an element, a fragment
// or a block. It is implemented by the Text, ClosedElement,
// SelfClosingElement, Fragment, Mustache, Comment, IfBlock and MatchBlock
// nodes.
type Child interface {
	Node
	child()
}

// Element is implemented by the ClosedElement and SelfClosingElement nodes.
type Element interface {
	Root
	Child
	ElementName() *ElementName
	ElementAttributes() []Attribute
}

// Attribute is implemented by the NamedAttribute and SpreadAttribute nodes.
type Attribute interface {
	Node
	attribute()
}

// AttributeValue is implemented by the StringValue and ExpressionValue nodes.
type AttributeValue interface {
	Node
	attributeValue()
}

// Block is implemented by the IfBlock and MatchBlock nodes.
type Block interface {
	Child
	Keyword() string
}

// IfDivider is implemented by the Else and ElseIf nodes.
type IfDivider interface {
	Node
	ifDivider()
}

// Fragment node represents a fragment in the form <>...</>.
type Fragment struct {
	*Position         // position in the source.
	Children  []Child // children.
}

// NewFragment returns a new Fragment node.
func NewFragment(pos *Position, children []Child) *Fragment {
	return &Fragment{pos, children}
}

func (*Fragment) root()  {}
func (*Fragment) child() {}

// ElementName node represents the name of an element. The name is an
// identifier or a path as in <my::module::Element>.
type ElementName struct {
	*Position               // position in the source.
	Segments  []*Identifier // path segments.
}

// NewElementName returns a new ElementName node.
func NewElementName(pos *Position, segments []*Identifier) *ElementName {
	return &ElementName{pos, segments}
}

// String returns the string representation of n.
func (n *ElementName) String() string {
	var b strings.Builder
	for i, s := range n.Segments {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(s.Name)
	}
	return b.String()
}

// Atom returns the atom of the HTML element named n. It returns 0 if n is a
// path or if it is not the name of a known HTML element, as for a component.
func (n *ElementName) Atom() atom.Atom {
	if len(n.Segments) != 1 {
		return 0
	}
	return atom.Lookup([]byte(n.Segments[0].Name))
}

// Matches reports whether the closing name c matches n. Segments are compared
// pairwise by identifier, up to the shortest of the two names.
func (n *ElementName) Matches(c *ElementName) bool {
	for i := 0; i < len(n.Segments) && i < len(c.Segments); i++ {
		if n.Segments[i].Name != c.Segments[i].Name {
			return false
		}
	}
	return true
}

// OpeningElement node represents the opening tag of a closed element.
type OpeningElement struct {
	*Position               // position in the source.
	Name       *ElementName // name.
	Attributes []Attribute  // attributes.
}

// NewOpeningElement returns a new OpeningElement node.
func NewOpeningElement(pos *Position, name *ElementName, attributes []Attribute) *OpeningElement {
	return &OpeningElement{pos, name, attributes}
}

// ClosingElement node represents the closing tag of a closed element.
type ClosingElement struct {
	*Position              // position in the source.
	Name      *ElementName // name.
}

// NewClosingElement returns a new ClosingElement node.
func NewClosingElement(pos *Position, name *ElementName) *ClosingElement {
	return &ClosingElement{pos, name}
}

// ClosedElement node represents an element with an opening and a closing
// tag, as in <a>...</a>.
type ClosedElement struct {
	*Position                 // position in the source.
	Opening   *OpeningElement // opening tag.
	Children  []Child         // children.
	Closing   *ClosingElement // closing tag.
}

// NewClosedElement returns a new ClosedElement node.
func NewClosedElement(pos *Position, opening *OpeningElement, children []Child, closing *ClosingElement) *ClosedElement {
	return &ClosedElement{pos, opening, children, closing}
}

func (*ClosedElement) root()  {}
func (*ClosedElement) child() {}

// ElementName returns the name of the opening tag.
func (n *ClosedElement) ElementName() *ElementName {
	return n.Opening.Name
}

// ElementAttributes returns the attributes of the opening tag.
func (n *ClosedElement) ElementAttributes() []Attribute {
	return n.Opening.Attributes
}

// SelfClosingElement node represents an element in the form <a/>.
type SelfClosingElement struct {
	*Position               // position in the source.
	Name       *ElementName // name.
	Attributes []Attribute  // attributes.
}

// NewSelfClosingElement returns a new SelfClosingElement node.
func NewSelfClosingElement(pos *Position, name *ElementName, attributes []Attribute) *SelfClosingElement {
	return &SelfClosingElement{pos, name, attributes}
}

func (*SelfClosingElement) root()  {}
func (*SelfClosingElement) child() {}

// ElementName returns the name of the element.
func (n *SelfClosingElement) ElementName() *ElementName {
	return n.Name
}

// ElementAttributes returns the attributes of the element.
func (n *SelfClosingElement) ElementAttributes() []Attribute {
	return n.Attributes
}

// NamedAttribute node represents an attribute in the form key="value",
// key={expr} or, when Value is nil, a flag attribute in the form key.
type NamedAttribute struct {
	*Position                // position in the source.
	Key       *Identifier    // key.
	Value     AttributeValue // value, nil for flag attributes.
}

// NewNamedAttribute returns a new NamedAttribute node.
func NewNamedAttribute(pos *Position, key *Identifier, value AttributeValue) *NamedAttribute {
	return &NamedAttribute{pos, key, value}
}

func (*NamedAttribute) attribute() {}

// SpreadAttribute node represents an attribute in the form {..expr}.
type SpreadAttribute struct {
	*Position            // position in the source.
	Expr      Expression // spread expression.
}

// NewSpreadAttribute returns a new SpreadAttribute node.
func NewSpreadAttribute(pos *Position, expr Expression) *SpreadAttribute {
	return &SpreadAttribute{pos, expr}
}

func (*SpreadAttribute) attribute() {}

// StringValue node represents a string literal attribute value.
type StringValue struct {
	*Position        // position in the source.
	Value     string // unquoted value.
}

// NewStringValue returns a new StringValue node.
func NewStringValue(pos *Position, value string) *StringValue {
	return &StringValue{pos, value}
}

func (*StringValue) attributeValue() {}

// ExpressionValue node represents an attribute value in the form {expr}.
type ExpressionValue struct {
	*Position            // position in the source.
	Expr      Expression // expression.
}

// NewExpressionValue returns a new ExpressionValue node.
func NewExpressionValue(pos *Position, expr Expression) *ExpressionValue {
	return &ExpressionValue{pos, expr}
}

func (*ExpressionValue) attributeValue() {}

// Text node represents a run of text.
type Text struct {
	*Position        // position in the source.
	Text      string // text, as it appears in the source.
}

// NewText returns a new Text node.
func NewText(pos *Position, text string) *Text {
	return &Text{pos, text}
}

func (*Text) child() {}

// Comment node represents a comment in the form <!-- ... -->.
type Comment struct {
	*Position        // position in the source.
	Text      string // text between <!-- and -->.
}

// NewComment returns a new Comment node.
func NewComment(pos *Position, text string) *Comment {
	return &Comment{pos, text}
}

func (*Comment) child() {}

// Mustache node represents an interpolation in the form {expr} or
// {expr:format}.
type Mustache struct {
	*Position             // position in the source.
	Expr      Expression  // expression.
	Format    *FormatSpec // format, nil if there is no format.
}

// NewMustache returns a new Mustache node.
func NewMustache(pos *Position, expr Expression, format *FormatSpec) *Mustache {
	return &Mustache{pos, expr, format}
}

func (*Mustache) child() {}

// IfBlock node represents a block in the form
//
//	{#if cond} ... {:else if cond} ... {:else} ... {/if}
type IfBlock struct {
	*Position             // position in the source.
	Condition Expression  // condition.
	Children  []Child     // children before the first divider.
	Dividers  []*IfBranch // dividers with their children, in source order.
}

// NewIfBlock returns a new IfBlock node.
func NewIfBlock(pos *Position, cond Expression, children []Child, dividers []*IfBranch) *IfBlock {
	return &IfBlock{pos, cond, children, dividers}
}

func (*IfBlock) child() {}

// Keyword returns "if".
func (*IfBlock) Keyword() string { return "if" }

// IfBranch node represents a divider of an if block and the children that
// follow it.
type IfBranch struct {
	*Position           // position in the source.
	Divider   IfDivider // divider.
	Children  []Child   // children.
}

// NewIfBranch returns a new IfBranch node.
func NewIfBranch(pos *Position, divider IfDivider, children []Child) *IfBranch {
	return &IfBranch{pos, divider, children}
}

// Else node represents an {:else} divider.
type Else struct {
	*Position // position in the source.
}

// NewElse returns a new Else node.
func NewElse(pos *Position) *Else {
	return &Else{pos}
}

func (*Else) ifDivider() {}

// ElseIf node represents an {:else if cond} divider.
type ElseIf struct {
	*Position            // position in the source.
	Condition Expression // condition.
}

// NewElseIf returns a new ElseIf node.
func NewElseIf(pos *Position, cond Expression) *ElseIf {
	return &ElseIf{pos, cond}
}

func (*ElseIf) ifDivider() {}

// MatchBlock node represents a block in the form
//
//	{#match expr} {:case pattern} ... {:case pattern if guard} ... {/match}
type MatchBlock struct {
	*Position              // position in the source.
	Expr      Expression   // matched expression.
	Comments  []*Comment   // comments before the first case.
	Cases     []*MatchCase // cases, in source order.
}

// NewMatchBlock returns a new MatchBlock node.
func NewMatchBlock(pos *Position, expr Expression, comments []*Comment, cases []*MatchCase) *MatchBlock {
	return &MatchBlock{pos, expr, comments, cases}
}

func (*MatchBlock) child() {}

// Keyword returns "match".
func (*MatchBlock) Keyword() string { return "match" }

// MatchCase node represents a case divider of a match block and the
// children that follow it.
type MatchCase struct {
	*Position              // position in the source.
	Divider   *CaseDivider // divider.
	Children  []Child      // children.
}

// NewMatchCase returns a new MatchCase node.
func NewMatchCase(pos *Position, divider *CaseDivider, children []Child) *MatchCase {
	return &MatchCase{pos, divider, children}
}

// CaseDivider node represents a {:case pattern} or {:case pattern if guard}
// divider.
type CaseDivider struct {
	*Position            // position in the source.
	Pattern   Pattern    // pattern.
	Guard     Expression // guard, nil if there is no guard.
}

// NewCaseDivider returns a new CaseDivider node.
func NewCaseDivider(pos *Position, pattern Pattern, guard Expression) *CaseDivider {
	return &CaseDivider{pos, pattern, guard}
}
