// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compiler implements the lexer and the parser of Pony templates.
package compiler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/open2b/pony/ast"
)

// DefaultMaxDepth is the maximum nesting depth used when no other limit is
// given.
const DefaultMaxDepth = 256

// SyntaxError records a parsing error with the path and the position where the
// error occurred.
type SyntaxError struct {
	path string
	pos  ast.Position
	msg  string
}

// Error returns a string representing the syntax error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: syntax error: %s", e.path, e.pos, e.msg)
}

// Message returns the message of the syntax error, without position and path.
func (e *SyntaxError) Message() string {
	return e.msg
}

// Path returns the path of the syntax error.
func (e *SyntaxError) Path() string {
	return e.path
}

// Position returns the position of the syntax error.
func (e *SyntaxError) Position() ast.Position {
	return e.pos
}

// syntaxError returns a SyntaxError error with position pos and message
// formatted according the given format.
func syntaxError(pos *ast.Position, format string, a ...interface{}) *SyntaxError {
	return &SyntaxError{"", *pos, fmt.Sprintf(format, a...)}
}

// A LimitError is an error returned by the parser reporting that the parsing
// has reached a limit imposed by the implementation.
type LimitError struct {
	// pos is the position of the node that exceeded the limit.
	pos *ast.Position
	// path of the file that caused the error.
	path string
	// msg is the error message. Does not include file/position.
	msg string
}

// newLimitError returns a new LimitError that occurred at the given pos.
func newLimitError(pos *ast.Position, format string, a ...interface{}) *LimitError {
	return &LimitError{
		pos: pos,
		msg: fmt.Sprintf(format, a...),
	}
}

// Position returns the position of the node that exceeded the limit.
func (e *LimitError) Position() ast.Position {
	return *e.pos
}

// Path returns the path of the file that caused the LimitError.
func (e *LimitError) Path() string {
	return e.path
}

// Message returns the error message of the LimitError.
func (e *LimitError) Message() string {
	return e.msg
}

// Error implements the interface error for the LimitError.
func (e *LimitError) Error() string {
	return fmt.Sprintf("%s:%s: limit error: %s", e.path, e.pos, e.msg)
}

// parsing is a parsing state.
type parsing struct {

	// Source of the template.
	src []byte

	// Current nesting depth.
	depth int

	// Maximum nesting depth.
	maxDepth int
}

// ParseTemplateSource parses a template source and returns its root element
// or fragment. path is the path of the template, used only in the errors.
// maxDepth is the maximum nesting depth of elements, fragments, blocks and
// nested expressions and patterns; if it is zero, DefaultMaxDepth is used.
//
// If the source is not a valid template, it returns a *SyntaxError. If the
// nesting depth exceeds maxDepth, it returns a *LimitError.
func ParseTemplateSource(src []byte, path string, maxDepth int) (root ast.Root, err error) {

	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	tokens, err := scanTemplate(src)
	if err != nil {
		e := err.(*SyntaxError)
		e.path = path
		return nil, e
	}

	p := &parsing{
		src:      src,
		maxDepth: maxDepth,
	}

	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *SyntaxError:
				e.path = path
				root = nil
				err = e
			case *LimitError:
				e.path = path
				root = nil
				err = e
			default:
				panic(r)
			}
		}
	}()

	c := newCursor(tokens)
	root = p.parseRoot(c)
	if tok := c.peek(); tok.typ != tokenEOF {
		panic(syntaxError(tok.pos, "unexpected %s after the root %s", tok, rootKind(root)))
	}

	return root, nil
}

// rootKind returns "fragment" if root is a fragment, otherwise "element".
func rootKind(root ast.Root) string {
	if _, ok := root.(*ast.Fragment); ok {
		return "fragment"
	}
	return "element"
}

// enter enters a nested element, fragment or block, or a nested expression or
// pattern, at position pos. It panics with a LimitError if the maximum depth
// is exceeded.
func (p *parsing) enter(pos *ast.Position) {
	p.depth++
	if p.depth > p.maxDepth {
		panic(newLimitError(pos, "nesting depth exceeds the maximum of %d", p.maxDepth))
	}
}

// exit exits what the last call to enter entered.
func (p *parsing) exit() {
	p.depth--
}

// source returns the source between the start and end indexes, end
// inclusive.
func (p *parsing) source(start, end int) string {
	if end < start {
		return ""
	}
	return string(p.src[start : end+1])
}

// span returns a copy of pos that ends where the last token consumed by c
// ends.
func span(pos *ast.Position, c *cursor) *ast.Position {
	return pos.WithEnd(c.last().pos.End)
}

// expectEnd panics with a syntax error if c is not empty.
func expectEnd(c *cursor) {
	if tok := c.peek(); tok.typ != tokenEOF {
		panic(syntaxError(tok.pos, "unexpected %s, expecting %s", tok, c.eof()))
	}
}

// literalType returns a literal type from a token type.
func literalType(typ tokenTyp) ast.LiteralType {
	switch typ {
	case tokenInterpretedString, tokenRawString:
		return ast.StringLiteral
	case tokenChar:
		return ast.CharLiteral
	case tokenInt:
		return ast.IntLiteral
	case tokenFloat:
		return ast.FloatLiteral
	default:
		panic("invalid token type")
	}
}

// isLiteral reports whether tok is a literal, including true and false.
func isLiteral(tok token) bool {
	switch tok.typ {
	case tokenInterpretedString, tokenRawString, tokenChar, tokenInt, tokenFloat:
		return true
	}
	return tok.is("true") || tok.is("false")
}

// parseLiteral parses a literal, as reported by isLiteral.
func (p *parsing) parseLiteral(c *cursor) *ast.BasicLiteral {
	tok := c.next()
	if tok.typ == tokenIdentifier {
		return ast.NewBasicLiteral(tok.pos, ast.BoolLiteral, string(tok.txt))
	}
	return ast.NewBasicLiteral(tok.pos, literalType(tok.typ), string(tok.txt)+tok.suffix)
}

// parseIdentifierNode returns an Identifier node from a token.
func (p *parsing) parseIdentifierNode(tok token) *ast.Identifier {
	ident := ast.NewIdentifier(tok.pos, string(tok.txt))
	return ident
}

// unquoteString returns the characters of the string literal s unquoted.
// s can have the b, r and br prefixes and must be a valid literal.
func unquoteString(s []byte) string {
	if s[0] == 'b' {
		s = s[1:]
	}
	if s[0] == 'r' {
		s = s[1:]
		n := 0
		for s[n] == '#' {
			n++
		}
		return string(s[n+1 : len(s)-n-1])
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(string(s), `\`) {
		return string(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if s[i+1] == '\n' {
			// Line continuation: skip the newline and the following spaces.
			i += 2
			for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
				i++
			}
			i--
			continue
		}
		r, n := parseEscapedRune(s[i:])
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
		} else {
			b.WriteRune(r)
		}
		i += n
	}
	return b.String()
}

// unquoteChar returns the character of the char literal s. s can have the b
// prefix and must be a valid literal.
func unquoteChar(s []byte) rune {
	if s[0] == 'b' {
		s = s[1:]
	}
	if s[1] == '\\' {
		r, _ := parseEscapedRune(s[1:])
		return r
	}
	r, _ := utf8.DecodeRune(s[1:])
	return r
}

// parseEscapedRune parses an escaped rune sequence starting with '\\' and
// returns the rune and the length of the parsed sequence, excluding the
// backslash.
func parseEscapedRune(s []byte) (rune, int) {
	switch s[1] {
	case 'n':
		return '\n', 1
	case 'r':
		return '\r', 1
	case 't':
		return '\t', 1
	case '0':
		return 0, 1
	case '\\', '\'', '"':
		return rune(s[1]), 1
	case 'x':
		return rune(hexValue(s[2])<<4 | hexValue(s[3])), 3
	case 'u':
		// \u{1F600}
		var r rune
		j := 3
		for ; s[j] != '}'; j++ {
			if s[j] != '_' {
				r = r<<4 | rune(hexValue(s[j]))
			}
		}
		return r, j
	}
	panic("unexpected escaped rune")
}

// hexValue returns the value of the hexadecimal digit c.
func hexValue(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}
