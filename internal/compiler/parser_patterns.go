// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"github.com/open2b/pony/ast"
)

// parsePattern parses a pattern, including the alternatives separated by
// '|'. If leading is true, the pattern can start with '|'.
func (p *parsing) parsePattern(c *cursor, leading bool) ast.Pattern {
	pos := c.peek().pos
	hasLeading := false
	if leading && c.peek().typ == tokenVerticalBar {
		c.next()
		hasLeading = true
	}
	cases := []ast.Pattern{p.parsePatternNoAlt(c)}
	for c.peek().typ == tokenVerticalBar {
		c.next()
		cases = append(cases, p.parsePatternNoAlt(c))
	}
	if len(cases) == 1 && !hasLeading {
		return cases[0]
	}
	return ast.NewOrPattern(span(pos, c), hasLeading, cases)
}

// parsePatternNoAlt parses a pattern that is not an alternation. It is used
// for closure parameters, where '|' ends the parameters.
func (p *parsing) parsePatternNoAlt(c *cursor) ast.Pattern {
	tok := c.peek()
	switch tok.typ {
	case tokenAmpersand:
		c.next()
		mut := false
		if c.peek().is("mut") {
			c.next()
			mut = true
		}
		p.enter(tok.pos)
		pattern := p.parsePatternNoAlt(c)
		p.exit()
		return ast.NewReferencePattern(tok.pos.WithEnd(pattern.Pos().End), mut, pattern)
	case tokenPeriod:
		if !isRange(c) {
			break
		}
		if p.rangeOperator(c) {
			// ..=high
			high := p.parseRangeBound(c)
			if high == nil {
				tok := c.peek()
				panic(syntaxError(tok.pos, "unexpected %s, expecting range bound", tok))
			}
			return ast.NewRangePattern(tok.pos.WithEnd(high.Pos().End), nil, high, true)
		}
		return ast.NewRestPattern(span(tok.pos, c))
	case tokenLeftParenthesis:
		g := c.group()
		pos := span(tok.pos, c)
		p.enter(tok.pos)
		elements, trailing := p.parsePatternList(g)
		p.exit()
		if len(elements) == 1 && !trailing {
			if _, ok := elements[0].(*ast.RestPattern); !ok {
				return elements[0]
			}
		}
		return ast.NewTuplePattern(pos, elements)
	case tokenLeftBracket:
		p.enter(tok.pos)
		elements, _ := p.parsePatternList(c.group())
		p.exit()
		return ast.NewSlicePattern(span(tok.pos, c), elements)
	case tokenIdentifier:
		switch string(tok.txt) {
		case "_":
			c.next()
			return ast.NewWildcardPattern(tok.pos)
		case "ref", "mut":
			return p.parseIdentPattern(c)
		}
	}
	low := p.parseRangeBound(c)
	if low == nil {
		panic(syntaxError(tok.pos, "unexpected %s, expecting pattern", tok))
	}
	if path, ok := low.(*ast.PathPattern); ok {
		switch c.peek().typ {
		case tokenLeftParenthesis:
			p.enter(c.peek().pos)
			elements, _ := p.parsePatternList(c.group())
			p.exit()
			return ast.NewTupleStructPattern(span(path.Position, c), path.Path, elements)
		case tokenLeftBrace:
			p.enter(c.peek().pos)
			defer p.exit()
			return p.parseStructPattern(c, path.Path)
		}
	}
	if !isRange(c) {
		if path, ok := low.(*ast.PathPattern); ok && !path.Path.Global && len(path.Path.Segments) == 1 &&
			path.Path.Segments[0].Generics == "" {
			// A single identifier is a binding.
			var sub ast.Pattern
			if c.peek().typ == tokenAt {
				p.enter(c.next().pos)
				sub = p.parsePatternNoAlt(c)
				p.exit()
			}
			return ast.NewIdentPattern(span(tok.pos, c), false, false, path.Path.Segments[0].Ident, sub)
		}
		return low
	}
	inclusive := p.rangeOperator(c)
	high := p.parseRangeBound(c)
	if high == nil {
		if inclusive {
			tok := c.peek()
			panic(syntaxError(tok.pos, "unexpected %s, expecting range bound", tok))
		}
		return ast.NewRangePattern(span(low.Pos(), c), low, nil, false)
	}
	return ast.NewRangePattern(low.Pos().WithEnd(high.Pos().End), low, high, inclusive)
}

// parseRangeBound parses a pattern that can be the bound of a range pattern,
// that is a literal, a negative number or a path. It returns nil if the next
// token cannot start a range bound.
func (p *parsing) parseRangeBound(c *cursor) ast.Pattern {
	tok := c.peek()
	switch {
	case tok.typ == tokenSubtraction:
		lit := c.at(1)
		if lit.typ != tokenInt && lit.typ != tokenFloat {
			panic(syntaxError(lit.pos, "unexpected %s, expecting number", lit))
		}
		c.next()
		return ast.NewLiteralPattern(tok.pos.WithEnd(lit.pos.End), true, p.parseLiteral(c))
	case isLiteral(tok):
		lit := p.parseLiteral(c)
		return ast.NewLiteralPattern(lit.Position, false, lit)
	case tok.typ == tokenPathSeparator, tok.typ == tokenIdentifier && !isKeyword(tok):
		path := p.parsePath(c)
		return ast.NewPathPattern(path.Position, path)
	}
	return nil
}

// parseIdentPattern parses a binding pattern as in ref mut x @ sub.
func (p *parsing) parseIdentPattern(c *cursor) ast.Pattern {
	pos := c.peek().pos
	var ref, mut bool
	if c.peek().is("ref") {
		c.next()
		ref = true
	}
	if c.peek().is("mut") {
		c.next()
		mut = true
	}
	tok := c.peek()
	if tok.typ != tokenIdentifier || isKeyword(tok) {
		panic(syntaxError(tok.pos, "unexpected %s, expecting identifier", tok))
	}
	c.next()
	ident := p.parseIdentifierNode(tok)
	var sub ast.Pattern
	if c.peek().typ == tokenAt {
		p.enter(c.next().pos)
		sub = p.parsePatternNoAlt(c)
		p.exit()
	}
	return ast.NewIdentPattern(span(pos, c), ref, mut, ident, sub)
}

// parsePatternList parses a comma separated list of patterns, with an
// optional trailing comma, up to the end of c.
func (p *parsing) parsePatternList(c *cursor) (patterns []ast.Pattern, trailing bool) {
	for !c.isEmpty() {
		patterns = append(patterns, p.parsePattern(c, true))
		if c.isEmpty() {
			return patterns, false
		}
		c.expect(tokenComma)
		trailing = true
	}
	return patterns, trailing
}

// parseStructPattern parses the fields of a struct pattern with the given
// path, as in Apple { color: Color::Red, .. }.
func (p *parsing) parseStructPattern(c *cursor, path *ast.Path) ast.Pattern {
	g := c.group()
	var fields []*ast.FieldPattern
	rest := false
	for !g.isEmpty() {
		if isRange(g) {
			g.next()
			g.next()
			rest = true
			if tok := g.peek(); tok.typ != tokenEOF {
				panic(syntaxError(tok.pos, "unexpected %s, expecting %s", tok, g.eof()))
			}
			break
		}
		fields = append(fields, p.parseFieldPattern(g))
		if g.isEmpty() {
			break
		}
		g.expect(tokenComma)
	}
	return ast.NewStructPattern(span(path.Position, c), path, fields, rest)
}

// parseFieldPattern parses a field of a struct pattern, as in color: Red,
// color, ref mut color and 0: x.
func (p *parsing) parseFieldPattern(c *cursor) *ast.FieldPattern {
	tok := c.peek()
	if (tok.typ == tokenIdentifier || tok.typ == tokenInt) && c.at(1).typ == tokenColon {
		c.next()
		c.next()
		name := p.parseIdentifierNode(tok)
		pattern := p.parsePattern(c, true)
		return ast.NewFieldPattern(tok.pos.WithEnd(pattern.Pos().End), name, pattern)
	}
	binding := p.parseIdentPattern(c).(*ast.IdentPattern)
	if binding.Sub != nil {
		panic(syntaxError(binding.Sub.Pos(), "unexpected @ in field shorthand"))
	}
	if !binding.Ref && !binding.Mut {
		return ast.NewFieldPattern(binding.Position, binding.Ident, nil)
	}
	return ast.NewFieldPattern(binding.Position, binding.Ident, binding)
}
