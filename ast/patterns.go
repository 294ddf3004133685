// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"strings"
)

// Pattern node represents a pattern, as used by the cases of a match block,
// by let expressions and by closure parameters.
type Pattern interface {
	Node
	String() string
	pattern()
}

// WildcardPattern node represents the _ pattern.
type WildcardPattern struct {
	*Position // position in the source.
}

// NewWildcardPattern returns a new WildcardPattern node.
func NewWildcardPattern(pos *Position) *WildcardPattern {
	return &WildcardPattern{pos}
}

func (*WildcardPattern) pattern() {}

// String returns the string representation of n.
func (*WildcardPattern) String() string { return "_" }

// RestPattern node represents the .. pattern in tuples, slices and tuple
// structs.
type RestPattern struct {
	*Position // position in the source.
}

// NewRestPattern returns a new RestPattern node.
func NewRestPattern(pos *Position) *RestPattern {
	return &RestPattern{pos}
}

func (*RestPattern) pattern() {}

// String returns the string representation of n.
func (*RestPattern) String() string { return ".." }

// LiteralPattern node represents a literal pattern. Negative numbers have
// Negative set to true.
type LiteralPattern struct {
	*Position               // position in the source.
	Negative  bool          // reports whether the literal is preceded by '-'.
	Literal   *BasicLiteral // literal.
}

// NewLiteralPattern returns a new LiteralPattern node.
func NewLiteralPattern(pos *Position, negative bool, lit *BasicLiteral) *LiteralPattern {
	return &LiteralPattern{pos, negative, lit}
}

func (*LiteralPattern) pattern() {}

// String returns the string representation of n.
func (n *LiteralPattern) String() string {
	if n.Negative {
		return "-" + n.Literal.String()
	}
	return n.Literal.String()
}

// IdentPattern node represents a binding pattern as in x, ref x, mut x and
// x @ subpattern.
type IdentPattern struct {
	*Position             // position in the source.
	Ref       bool        // reports whether the binding is by reference.
	Mut       bool        // reports whether the binding is mutable.
	Ident     *Identifier // identifier.
	Sub       Pattern     // subpattern after '@', nil if there is no subpattern.
}

// NewIdentPattern returns a new IdentPattern node.
func NewIdentPattern(pos *Position, ref, mut bool, ident *Identifier, sub Pattern) *IdentPattern {
	return &IdentPattern{pos, ref, mut, ident, sub}
}

func (*IdentPattern) pattern() {}

// String returns the string representation of n.
func (n *IdentPattern) String() string {
	var s string
	if n.Ref {
		s += "ref "
	}
	if n.Mut {
		s += "mut "
	}
	s += n.Ident.Name
	if n.Sub != nil {
		s += " @ " + n.Sub.String()
	}
	return s
}

// PathPattern node represents a path pattern as in Color::Red.
type PathPattern struct {
	*Position       // position in the source.
	Path      *Path // path.
}

// NewPathPattern returns a new PathPattern node.
func NewPathPattern(pos *Position, path *Path) *PathPattern {
	return &PathPattern{pos, path}
}

func (*PathPattern) pattern() {}

// String returns the string representation of n.
func (n *PathPattern) String() string { return n.Path.String() }

// TupleStructPattern node represents a pattern as in Some(x).
type TupleStructPattern struct {
	*Position           // position in the source.
	Path      *Path     // path.
	Elements  []Pattern // elements.
}

// NewTupleStructPattern returns a new TupleStructPattern node.
func NewTupleStructPattern(pos *Position, path *Path, elements []Pattern) *TupleStructPattern {
	return &TupleStructPattern{pos, path, elements}
}

func (*TupleStructPattern) pattern() {}

// String returns the string representation of n.
func (n *TupleStructPattern) String() string {
	return n.Path.String() + "(" + joinPatterns(n.Elements, ", ") + ")"
}

// FieldPattern represents a field of a struct pattern. Shorthand fields, as
// in Apple { color }, have a nil Pattern.
type FieldPattern struct {
	*Position             // position in the source.
	Name      *Identifier // field name.
	Pattern   Pattern     // pattern, nil for shorthand fields.
}

// NewFieldPattern returns a new FieldPattern.
func NewFieldPattern(pos *Position, name *Identifier, pattern Pattern) *FieldPattern {
	return &FieldPattern{pos, name, pattern}
}

// StructPattern node represents a pattern as in Apple { color, .. }.
type StructPattern struct {
	*Position                 // position in the source.
	Path      *Path           // path.
	Fields    []*FieldPattern // fields.
	Rest      bool            // reports whether the pattern ends with '..'.
}

// NewStructPattern returns a new StructPattern node.
func NewStructPattern(pos *Position, path *Path, fields []*FieldPattern, rest bool) *StructPattern {
	return &StructPattern{pos, path, fields, rest}
}

func (*StructPattern) pattern() {}

// String returns the string representation of n.
func (n *StructPattern) String() string {
	var b strings.Builder
	b.WriteString(n.Path.String())
	b.WriteString(" {")
	for i, f := range n.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(f.Name.Name)
		if f.Pattern != nil {
			b.WriteString(": ")
			b.WriteString(f.Pattern.String())
		}
	}
	if n.Rest {
		if len(n.Fields) > 0 {
			b.WriteByte(',')
		}
		b.WriteString(" ..")
	}
	b.WriteString(" }")
	return b.String()
}

// TuplePattern node represents a tuple pattern as in (a, b).
type TuplePattern struct {
	*Position           // position in the source.
	Elements  []Pattern // elements.
}

// NewTuplePattern returns a new TuplePattern node.
func NewTuplePattern(pos *Position, elements []Pattern) *TuplePattern {
	return &TuplePattern{pos, elements}
}

func (*TuplePattern) pattern() {}

// String returns the string representation of n.
func (n *TuplePattern) String() string {
	if len(n.Elements) == 1 {
		return "(" + n.Elements[0].String() + ",)"
	}
	return "(" + joinPatterns(n.Elements, ", ") + ")"
}

// SlicePattern node represents a slice pattern as in [first, .., last].
type SlicePattern struct {
	*Position           // position in the source.
	Elements  []Pattern // elements.
}

// NewSlicePattern returns a new SlicePattern node.
func NewSlicePattern(pos *Position, elements []Pattern) *SlicePattern {
	return &SlicePattern{pos, elements}
}

func (*SlicePattern) pattern() {}

// String returns the string representation of n.
func (n *SlicePattern) String() string {
	return "[" + joinPatterns(n.Elements, ", ") + "]"
}

// RangePattern node represents a range pattern as in 1..=5 and 3.. .
type RangePattern struct {
	*Position         // position in the source.
	Low       Pattern // low bound, nil if there is no low bound.
	High      Pattern // high bound, nil if there is no high bound.
	Inclusive bool    // reports whether the range is in the form ..=.
}

// NewRangePattern returns a new RangePattern node.
func NewRangePattern(pos *Position, low, high Pattern, inclusive bool) *RangePattern {
	return &RangePattern{pos, low, high, inclusive}
}

func (*RangePattern) pattern() {}

// String returns the string representation of n.
func (n *RangePattern) String() string {
	var s string
	if n.Low != nil {
		s = n.Low.String()
	}
	s += ".."
	if n.Inclusive {
		s += "="
	}
	if n.High != nil {
		s += n.High.String()
	}
	return s
}

// ReferencePattern node represents a reference pattern as in &x and &mut x.
type ReferencePattern struct {
	*Position         // position in the source.
	Mut       bool    // reports whether the reference is mutable.
	Pattern   Pattern // referenced pattern.
}

// NewReferencePattern returns a new ReferencePattern node.
func NewReferencePattern(pos *Position, mut bool, pattern Pattern) *ReferencePattern {
	return &ReferencePattern{pos, mut, pattern}
}

func (*ReferencePattern) pattern() {}

// String returns the string representation of n.
func (n *ReferencePattern) String() string {
	if n.Mut {
		return "&mut " + n.Pattern.String()
	}
	return "&" + n.Pattern.String()
}

// OrPattern node represents an alternation of patterns as in A | B.
type OrPattern struct {
	*Position           // position in the source.
	Leading   bool      // reports whether the pattern starts with '|'.
	Cases     []Pattern // alternatives.
}

// NewOrPattern returns a new OrPattern node.
func NewOrPattern(pos *Position, leading bool, cases []Pattern) *OrPattern {
	return &OrPattern{pos, leading, cases}
}

func (*OrPattern) pattern() {}

// String returns the string representation of n.
func (n *OrPattern) String() string {
	s := joinPatterns(n.Cases, " | ")
	if n.Leading {
		s = "| " + s
	}
	return s
}

func joinPatterns(patterns []Pattern, sep string) string {
	var b strings.Builder
	for i, p := range patterns {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p.String())
	}
	return b.String()
}
