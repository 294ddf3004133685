// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

// A cursor is a position in a sequence of token trees. A token tree is a
// single token or a delimited group, from an opening delimiter up to its
// matching closing delimiter.
//
// A cursor over the tokens of a group ends at the closing delimiter of the
// group. A cursor is a value over a shared token slice, so copying it, as
// fork does, is cheap and advancing the copy does not affect the original.
type cursor struct {
	toks []token // tokens
	pos  int     // index of the next token
	end  int     // index of the closing delimiter or of the EOF token
}

// newCursor returns a cursor over all the tokens of toks. The last token of
// toks must be the EOF token.
func newCursor(toks []token) *cursor {
	return &cursor{toks: toks, end: len(toks) - 1}
}

// peek returns the next token without consuming it. It is the same as at(0).
func (c *cursor) peek() token {
	return c.at(0)
}

// at returns, without consuming anything, the first token of the k-th next
// token tree, where k starts from 0. Past the end of the cursor, at returns
// an EOF token positioned at the end.
func (c *cursor) at(k int) token {
	i := c.pos
	for ; k > 0 && i < c.end; k-- {
		i = c.skip(i)
	}
	if i >= c.end {
		return c.eof()
	}
	return c.toks[i]
}

// skip returns the index of the token that follows the token tree that
// starts at index i.
func (c *cursor) skip(i int) int {
	if c.toks[i].isOpen() {
		return c.toks[i].match + 1
	}
	return i + 1
}

// eof returns the EOF token of the cursor. For a cursor over a group it has
// the position and the text of the closing delimiter.
func (c *cursor) eof() token {
	end := c.toks[c.end]
	return token{typ: tokenEOF, pos: end.pos, txt: end.txt, match: -1}
}

// isEmpty reports whether there are no more tokens.
func (c *cursor) isEmpty() bool {
	return c.pos >= c.end
}

// next consumes the next token tree and returns its first token. If the
// cursor is empty it returns the EOF token and does not advance.
func (c *cursor) next() token {
	tok := c.peek()
	if c.pos < c.end {
		c.pos = c.skip(c.pos)
	}
	return tok
}

// last returns the last token consumed. If the last token tree consumed is
// a group, it is its closing delimiter.
func (c *cursor) last() token {
	return c.toks[c.pos-1]
}

// fork returns an independent copy of c.
func (c *cursor) fork() *cursor {
	f := *c
	return &f
}

// adopt advances c to the position of f, a fork of c.
func (c *cursor) adopt(f *cursor) {
	c.pos = f.pos
}

// group consumes the next token tree, that must be a group, and returns a
// cursor over its tokens, excluding the delimiters.
func (c *cursor) group() *cursor {
	open := c.pos
	end := c.toks[open].match
	c.pos = end + 1
	return &cursor{toks: c.toks, pos: open + 1, end: end}
}

// inside returns a cursor over the tokens of the group that is the next
// token tree, without consuming it. It returns nil if the next token tree is
// not a group delimited by typ.
func (c *cursor) inside(typ tokenTyp) *cursor {
	if c.peek().typ != typ {
		return nil
	}
	return c.fork().group()
}

// expect consumes the next token and returns it if it has type typ.
// Otherwise it panics with a syntax error.
func (c *cursor) expect(typ tokenTyp) token {
	tok := c.peek()
	if tok.typ != typ {
		panic(syntaxError(tok.pos, "unexpected %s, expecting %s", tok, typ))
	}
	return c.next()
}

// adjacent reports whether the token b immediately follows the token a in
// the source, without spaces in between.
func adjacent(a, b token) bool {
	return b.typ != tokenEOF && b.pos.Start == a.pos.End+1
}
