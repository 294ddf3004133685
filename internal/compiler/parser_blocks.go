// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"github.com/open2b/pony/ast"
)

// A block is delimited by tags in braces. The opening tag starts with '#',
// a divider starts with ':' and the closing tag starts with '/':
//
//	{#if cond} ... {:else if cond} ... {:else} ... {/if}
//	{#match expr} {:case pattern} ... {:case pattern if guard} ... {/match}

// isTag reports whether the next token tree is a tag with the given sigil
// and keyword, as {:else} and {/if}.
func isTag(c *cursor, sigil tokenTyp, keyword string) bool {
	g := c.inside(tokenLeftBrace)
	return g != nil && g.at(0).typ == sigil && g.at(1).is(keyword)
}

// either returns a function that reports whether a or b reports true.
func either(a, b func(*cursor) bool) func(*cursor) bool {
	return func(c *cursor) bool {
		return a(c) || b(c)
	}
}

// divider describes the dividers of a block.
type divider[D ast.Node] struct {
	is    func(*cursor) bool // reports whether a divider follows
	parse func(*cursor) D    // parses a divider
}

// section is a divider with the children that follow it.
type section[D ast.Node] struct {
	divider  D
	children []ast.Child
	pos      *ast.Position
}

// parseDividedUntil parses, until end reports true, dividers each followed by
// its children. If the end of c is reached first, it returns the sections
// parsed and false.
func parseDividedUntil[D ast.Node](p *parsing, c *cursor, d divider[D], end func(*cursor) bool) ([]section[D], bool) {
	var sections []section[D]
	for !end(c) {
		if c.isEmpty() {
			return sections, false
		}
		if !d.is(c) {
			tok := c.peek()
			panic(syntaxError(tok.pos, "unexpected %s, expecting divider", tok))
		}
		div := d.parse(c)
		children, ok := p.parseUntil(c, either(d.is, end))
		sections = append(sections, section[D]{div, children, span(div.Pos(), c)})
		if !ok {
			return sections, false
		}
	}
	return sections, true
}

// parseBlock parses a block. The next token tree is a tag starting with '#'.
func (p *parsing) parseBlock(c *cursor) ast.Block {
	g := c.inside(tokenLeftBrace)
	g.next()
	kw := g.peek()
	if kw.typ != tokenIdentifier {
		panic(syntaxError(kw.pos, "unexpected %s, expecting block keyword", kw))
	}
	switch string(kw.txt) {
	case "if":
		return p.parseIfBlock(c)
	case "match":
		return p.parseMatchBlock(c)
	}
	panic(syntaxError(kw.pos, "unknown block kind %q", kw.txt))
}

// parseOpeningTag parses the opening tag of a block and returns its position
// and a cursor positioned after the keyword.
func (p *parsing) parseOpeningTag(c *cursor) (*ast.Position, *cursor) {
	pos := c.peek().pos
	g := c.group()
	g.next()
	g.next()
	return pos, g
}

// parseClosingTag parses the closing tag of a block.
func (p *parsing) parseClosingTag(c *cursor) {
	g := c.group()
	g.next()
	g.next()
	expectEnd(g)
}

// parseIfBlock parses an if block.
func (p *parsing) parseIfBlock(c *cursor) *ast.IfBlock {

	pos, g := p.parseOpeningTag(c)
	p.enter(pos)
	cond := p.mustParseExpr(g)
	expectEnd(g)

	isElse := func(c *cursor) bool { return isTag(c, tokenColon, "else") }
	isEnd := func(c *cursor) bool { return isTag(c, tokenDivision, "if") }

	children, ok := p.parseUntil(c, either(isElse, isEnd))
	var sections []section[ast.IfDivider]
	if ok {
		sections, ok = parseDividedUntil(p, c, divider[ast.IfDivider]{isElse, p.parseIfDivider}, isEnd)
	}
	if !ok {
		panic(syntaxError(pos, "did not find {/if}"))
	}
	p.parseClosingTag(c)

	branches := make([]*ast.IfBranch, len(sections))
	for i, s := range sections {
		if i > 0 {
			if _, ok := sections[i-1].divider.(*ast.Else); ok {
				panic(syntaxError(s.divider.Pos(), "{:else} must be the last divider of {#if}"))
			}
		}
		branches[i] = ast.NewIfBranch(s.pos, s.divider, s.children)
	}

	p.exit()

	return ast.NewIfBlock(span(pos, c), cond, children, branches)
}

// parseIfDivider parses an {:else if cond} or an {:else} divider.
func (p *parsing) parseIfDivider(c *cursor) ast.IfDivider {
	pos, g := p.parseOpeningTag(c)
	pos = span(pos, c)
	if !g.peek().is("if") {
		expectEnd(g)
		return ast.NewElse(pos)
	}
	g.next()
	cond := p.mustParseExpr(g)
	expectEnd(g)
	return ast.NewElseIf(pos, cond)
}

// parseMatchBlock parses a match block.
func (p *parsing) parseMatchBlock(c *cursor) *ast.MatchBlock {

	pos, g := p.parseOpeningTag(c)
	p.enter(pos)
	expr := p.mustParseExpr(g)
	expectEnd(g)

	isCase := func(c *cursor) bool { return isTag(c, tokenColon, "case") }
	isEnd := func(c *cursor) bool { return isTag(c, tokenDivision, "match") }

	children, ok := p.parseUntil(c, either(isCase, isEnd))
	var sections []section[*ast.CaseDivider]
	if ok {
		sections, ok = parseDividedUntil(p, c, divider[*ast.CaseDivider]{isCase, p.parseCaseDivider}, isEnd)
	}
	if !ok {
		panic(syntaxError(pos, "did not find {/match}"))
	}
	p.parseClosingTag(c)

	var comments []*ast.Comment
	for _, child := range children {
		comment, ok := child.(*ast.Comment)
		if !ok {
			panic(syntaxError(child.Pos(), "only comments can precede the first {:case}"))
		}
		comments = append(comments, comment)
	}

	cases := make([]*ast.MatchCase, len(sections))
	for i, s := range sections {
		cases[i] = ast.NewMatchCase(s.pos, s.divider, s.children)
	}

	p.exit()

	return ast.NewMatchBlock(span(pos, c), expr, comments, cases)
}

// parseCaseDivider parses a {:case pattern} or {:case pattern if guard}
// divider.
func (p *parsing) parseCaseDivider(c *cursor) *ast.CaseDivider {
	pos, g := p.parseOpeningTag(c)
	pattern := p.parsePattern(g, true)
	var guard ast.Expression
	if g.peek().is("if") {
		g.next()
		guard = p.mustParseExpr(g)
	}
	expectEnd(g)
	return ast.NewCaseDivider(span(pos, c), pattern, guard)
}
