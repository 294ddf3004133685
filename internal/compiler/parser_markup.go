// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"github.com/open2b/pony/ast"
)

// parseRoot parses the root of a template, an element or a fragment.
func (p *parsing) parseRoot(c *cursor) ast.Root {
	tok := c.peek()
	if tok.typ == tokenLess {
		switch c.at(1).typ {
		case tokenGreater:
			return p.parseFragment(c)
		case tokenIdentifier:
			return p.parseElement(c)
		}
	}
	panic(syntaxError(tok.pos, "unexpected %s, expecting element or fragment", tok))
}

// parseFragment parses a fragment in the form <>...</>.
func (p *parsing) parseFragment(c *cursor) *ast.Fragment {
	open := c.next()
	c.next()
	p.enter(open.pos)
	children, ok := p.parseUntil(c, isFragmentClosing)
	if !ok {
		panic(syntaxError(open.pos, "did not find the closing tag </>"))
	}
	c.next()
	c.next()
	c.next()
	p.exit()
	return ast.NewFragment(span(open.pos, c), children)
}

// isFragmentClosing reports whether the next tokens are </>.
func isFragmentClosing(c *cursor) bool {
	return c.at(0).typ == tokenLess && c.at(1).typ == tokenDivision && c.at(2).typ == tokenGreater
}

// parseElement parses a closed or a self-closing element.
func (p *parsing) parseElement(c *cursor) ast.Element {
	open := c.next()
	p.enter(open.pos)
	name := p.parseElementName(c)
	attributes := p.parseAttributes(c)
	switch tok := c.next(); tok.typ {
	case tokenDivision:
		if end := c.peek(); end.typ != tokenGreater {
			panic(syntaxError(end.pos, "unexpected %s, expecting >", end))
		}
		c.next()
		p.exit()
		return ast.NewSelfClosingElement(span(open.pos, c), name, attributes)
	case tokenGreater:
		opening := ast.NewOpeningElement(span(open.pos, c), name, attributes)
		element := p.parseClosedElement(c, opening)
		p.exit()
		return element
	default:
		panic(syntaxError(tok.pos, "unexpected %s, expecting > or />", tok))
	}
}

// parseClosedElement parses the children and the closing tag of the element
// with the given opening tag.
func (p *parsing) parseClosedElement(c *cursor, opening *ast.OpeningElement) *ast.ClosedElement {
	children, ok := p.parseUntil(c, func(c *cursor) bool {
		return p.isClosingElement(c, opening.Name)
	})
	if !ok {
		panic(syntaxError(opening.Pos(), "did not find the closing tag </%s>", opening.Name))
	}
	closing := p.parseClosingElement(c)
	return ast.NewClosedElement(opening.WithEnd(closing.End), opening, children, closing)
}

// isClosingElement reports whether the next tokens are a closing tag that
// matches name.
func (p *parsing) isClosingElement(c *cursor, name *ast.ElementName) bool {
	if c.at(0).typ != tokenLess || c.at(1).typ != tokenDivision || c.at(2).typ != tokenIdentifier {
		return false
	}
	f := c.fork()
	f.next()
	f.next()
	return name.Matches(p.parseElementName(f))
}

// parseClosingElement parses a closing tag in the form </name>.
func (p *parsing) parseClosingElement(c *cursor) *ast.ClosingElement {
	open := c.next()
	c.next()
	name := p.parseElementName(c)
	c.expect(tokenGreater)
	return ast.NewClosingElement(span(open.pos, c), name)
}

// parseElementName parses the name of an element, an identifier or a path as
// in icon::Cactus. The next token must be an identifier.
func (p *parsing) parseElementName(c *cursor) *ast.ElementName {
	pos := c.peek().pos
	segments := []*ast.Identifier{p.parseMarkupName(c)}
	for c.at(0).typ == tokenPathSeparator && c.at(1).typ == tokenIdentifier {
		c.next()
		segments = append(segments, p.parseMarkupName(c))
	}
	return ast.NewElementName(span(pos, c), segments)
}

// parseMarkupName parses the name of an element segment or of an attribute.
// Keywords are valid names and words joined by '-' without spaces, as in
// aria-label, form a single name. The next token must be an identifier.
func (p *parsing) parseMarkupName(c *cursor) *ast.Identifier {
	first := c.next()
	last := first
	for {
		hyphen, word := c.at(0), c.at(1)
		if hyphen.typ != tokenSubtraction || word.typ != tokenIdentifier || !adjacent(last, hyphen) || !adjacent(hyphen, word) {
			break
		}
		c.next()
		last = c.next()
	}
	if last.pos == first.pos {
		return p.parseIdentifierNode(first)
	}
	pos := first.pos.WithEnd(last.pos.End)
	return ast.NewIdentifier(pos, p.source(pos.Start, pos.End))
}

// parseAttributes parses the attributes of an element up to '>' or '/'.
func (p *parsing) parseAttributes(c *cursor) []ast.Attribute {
	var attributes []ast.Attribute
	for {
		switch tok := c.peek(); tok.typ {
		case tokenGreater, tokenDivision:
			return attributes
		case tokenLeftBrace:
			attributes = append(attributes, p.parseSpreadAttribute(c))
		case tokenIdentifier:
			attributes = append(attributes, p.parseNamedAttribute(c))
		default:
			panic(syntaxError(tok.pos, "unexpected %s, expecting attribute, > or />", tok))
		}
	}
}

// parseSpreadAttribute parses an attribute in the form {..expr}.
func (p *parsing) parseSpreadAttribute(c *cursor) *ast.SpreadAttribute {
	pos := c.peek().pos
	g := c.group()
	if !isRange(g) {
		tok := g.peek()
		panic(syntaxError(tok.pos, "unexpected %s, expecting ..", tok))
	}
	g.next()
	g.next()
	expr := p.mustParseExpr(g)
	expectEnd(g)
	return ast.NewSpreadAttribute(span(pos, c), expr)
}

// parseNamedAttribute parses an attribute in the form key, key="value" or
// key={expr}.
func (p *parsing) parseNamedAttribute(c *cursor) *ast.NamedAttribute {
	key := p.parseMarkupName(c)
	if c.peek().typ != tokenAssignment {
		return ast.NewNamedAttribute(key.WithEnd(key.End), key, nil)
	}
	c.next()
	var value ast.AttributeValue
	switch tok := c.peek(); tok.typ {
	case tokenInterpretedString, tokenRawString:
		c.next()
		value = ast.NewStringValue(tok.pos, unquoteString(tok.txt))
	case tokenLeftBrace:
		g := c.group()
		expr := p.mustParseExpr(g)
		expectEnd(g)
		value = ast.NewExpressionValue(span(tok.pos, c), expr)
	default:
		panic(syntaxError(tok.pos, "unexpected %s, expecting string or {", tok))
	}
	return ast.NewNamedAttribute(key.WithEnd(value.Pos().End), key, value)
}

// parseUntil parses children until stop reports true. If the end of c is
// reached first, it returns the children parsed and false.
func (p *parsing) parseUntil(c *cursor, stop func(*cursor) bool) ([]ast.Child, bool) {
	var children []ast.Child
	for !stop(c) {
		if c.isEmpty() {
			return children, false
		}
		children = append(children, p.parseChild(c))
	}
	return children, true
}

// parseChild parses a child of an element, a fragment or a block.
func (p *parsing) parseChild(c *cursor) ast.Child {
	tok := c.peek()
	switch tok.typ {
	case tokenLess:
		switch c.at(1).typ {
		case tokenGreater:
			return p.parseFragment(c)
		case tokenIdentifier:
			return p.parseElement(c)
		}
		if isComment(c) {
			return p.parseComment(c)
		}
	case tokenLeftBrace:
		g := c.inside(tokenLeftBrace)
		switch g.peek().typ {
		case tokenHash:
			return p.parseBlock(c)
		case tokenColon, tokenDivision:
			panic(syntaxError(tok.pos, "unexpected %s", p.source(tok.pos.Start, g.eof().pos.End)))
		}
		return p.parseMustache(c)
	}
	return p.parseText(c)
}

// parseText parses a text. A text is made of at least one token and ends
// before '<', '>', '{' or at the end of c.
func (p *parsing) parseText(c *cursor) *ast.Text {
	first := c.next()
	last := c.last()
	for {
		switch c.peek().typ {
		case tokenEOF, tokenLess, tokenGreater, tokenLeftBrace:
			pos := first.pos.WithEnd(last.pos.End)
			return ast.NewText(pos, p.source(pos.Start, pos.End))
		}
		c.next()
		last = c.last()
	}
}

// isComment reports whether the next tokens are <!--.
func isComment(c *cursor) bool {
	lt, bang, h1, h2 := c.at(0), c.at(1), c.at(2), c.at(3)
	return lt.typ == tokenLess && bang.typ == tokenNot && h1.typ == tokenSubtraction && h2.typ == tokenSubtraction &&
		adjacent(lt, bang) && adjacent(bang, h1) && adjacent(h1, h2)
}

// isCommentEnd reports whether the next tokens are -->.
func isCommentEnd(c *cursor) bool {
	h1, h2, gt := c.at(0), c.at(1), c.at(2)
	return h1.typ == tokenSubtraction && h2.typ == tokenSubtraction && gt.typ == tokenGreater &&
		adjacent(h1, h2) && adjacent(h2, gt)
}

// parseComment parses a comment in the form <!-- ... -->.
func (p *parsing) parseComment(c *cursor) *ast.Comment {
	open := c.next()
	c.next()
	c.next()
	start := c.next().pos.End + 1
	for !isCommentEnd(c) {
		if c.isEmpty() {
			panic(syntaxError(open.pos, "comment not terminated"))
		}
		c.next()
	}
	end := c.peek().pos.Start - 1
	c.next()
	c.next()
	c.next()
	return ast.NewComment(span(open.pos, c), p.source(start, end))
}
