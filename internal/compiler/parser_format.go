// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"bytes"
	"strconv"

	"github.com/open2b/pony/ast"
)

// parseFormatSpec parses the format spec of a mustache, in the form
//
//	[[fill]align][sign]['#']['0'][width]['.' precision]type
//
// c is positioned after ':' and the format spec extends up to the end of c. pos is
// the position of ':'.
func (p *parsing) parseFormatSpec(c *cursor, pos *ast.Position) *ast.FormatSpec {

	spec := ast.NewFormatSpec(pos.WithEnd(pos.End))
	start := c.pos

	// Align.
	if isAlign(c.at(0)) || c.at(0).typ == tokenChar && isAlign(c.at(1)) {
		align := &ast.Align{}
		if tok := c.peek(); tok.typ == tokenChar {
			c.next()
			align.Fill = unquoteChar(tok.txt)
			align.HasFill = true
		}
		switch c.next().typ {
		case tokenLess:
			align.Direction = ast.AlignLeft
		case tokenXor:
			align.Direction = ast.AlignCenter
		case tokenGreater:
			align.Direction = ast.AlignRight
		}
		spec.Align = align
	}

	// Sign.
	switch c.peek().typ {
	case tokenAddition:
		c.next()
		spec.Sign = ast.SignPositive
	case tokenSubtraction:
		c.next()
		spec.Sign = ast.SignNegative
	}

	// Pretty.
	if c.peek().typ == tokenHash {
		c.next()
		spec.Pretty = true
	}

	// suffix is the suffix of a width or a precision, as x in 5x?, that is
	// lexed as part of the number but is the type of the format spec.
	var suffix token

	// Width and precision.
	switch tok := c.peek(); tok.typ {
	case tokenInt:
		c.next()
		spec.Zero, spec.Width = p.parseWidth(tok, tok.txt)
		suffix = numberSuffix(tok)
		if suffix.typ == tokenEOF && c.peek().typ == tokenPeriod {
			c.next()
			spec.Precision, suffix = p.parsePrecision(c)
		}
	case tokenFloat:
		c.next()
		if tok.suffix != "" {
			panic(syntaxError(tok.pos, "unexpected suffix %q in format width", tok.suffix))
		}
		i := bytes.IndexByte(tok.txt, '.')
		if i < 0 {
			panic(syntaxError(tok.pos, "unexpected %s, expecting width", tok))
		}
		spec.Zero, spec.Width = p.parseWidth(tok, tok.txt[:i])
		if i == len(tok.txt)-1 {
			// 6. followed by the precision, as in 6.* and 6.name$
			spec.Precision, suffix = p.parsePrecision(c)
		} else {
			count, err := strconv.Atoi(string(tok.txt[i+1:]))
			if err != nil || !isDecimal(tok.txt[i+1:]) {
				panic(syntaxError(tok.pos, "invalid precision %s", tok.txt[i+1:]))
			}
			spec.Precision = &ast.Precision{Kind: ast.PrecisionCount, Count: count}
		}
	case tokenPeriod:
		c.next()
		spec.Precision, suffix = p.parsePrecision(c)
	}

	// Type.
	tok := suffix
	if tok.typ == tokenEOF && c.peek().typ == tokenIdentifier {
		tok = c.next()
	}
	if tok.typ == tokenIdentifier {
		if c.peek().typ == tokenQuestion {
			c.next()
			switch string(tok.txt) {
			case "x":
				spec.Type.Kind = ast.FormatDebugLowerHex
			case "X":
				spec.Type.Kind = ast.FormatDebugUpperHex
			default:
				panic(syntaxError(tok.pos, "unexpected %s?, expecting x? or X?", tok))
			}
		} else {
			spec.Type.Kind = ast.FormatOther
			spec.Type.Name = string(tok.txt)
		}
	} else if c.peek().typ == tokenQuestion {
		c.next()
		spec.Type.Kind = ast.FormatDebug
	}
	if tok := c.peek(); tok.typ != tokenEOF {
		panic(syntaxError(tok.pos, "unexpected %s in format spec", tok))
	}

	if c.pos > start {
		spec.Position.End = c.last().pos.End
	}

	return spec
}

// isAlign reports whether tok is an alignment, one of '<', '^' and '>'.
func isAlign(tok token) bool {
	return tok.typ == tokenLess || tok.typ == tokenXor || tok.typ == tokenGreater
}

// parseWidth parses the digits of the width of the integer or float literal
// tok and returns the zero flag and the width.
func (p *parsing) parseWidth(tok token, digits []byte) (bool, *int) {
	if !isDecimal(digits) {
		panic(syntaxError(tok.pos, "invalid width %s", digits))
	}
	zero := false
	if len(digits) > 1 && digits[0] == '0' {
		if digits[1] == '0' {
			panic(syntaxError(tok.pos, "at most one leading zero is allowed in width"))
		}
		zero = true
		digits = digits[1:]
	}
	width, err := strconv.Atoi(string(digits))
	if err != nil {
		panic(syntaxError(tok.pos, "width %s is out of range", digits))
	}
	return zero, &width
}

// parsePrecision parses a precision after '.' and returns it with the
// identifier token of the type, if it is lexed as a suffix of the
// precision.
func (p *parsing) parsePrecision(c *cursor) (*ast.Precision, token) {
	tok := c.peek()
	switch {
	case tok.typ == tokenMultiplication:
		c.next()
		return &ast.Precision{Kind: ast.PrecisionStar}, c.eof()
	case tok.typ == tokenInt:
		c.next()
		if !isDecimal(tok.txt) {
			panic(syntaxError(tok.pos, "invalid precision %s", tok.txt))
		}
		count, err := strconv.Atoi(string(tok.txt))
		if err != nil {
			panic(syntaxError(tok.pos, "precision %s is out of range", tok.txt))
		}
		return &ast.Precision{Kind: ast.PrecisionCount, Count: count}, numberSuffix(tok)
	case tok.typ == tokenIdentifier && c.at(1).typ == tokenDollar:
		c.next()
		c.next()
		return &ast.Precision{Kind: ast.PrecisionParameter, Parameter: string(tok.txt)}, c.eof()
	}
	panic(syntaxError(tok.pos, "unexpected %s, expecting integer or parameter name$", tok))
}

// numberSuffix returns the suffix of the number tok as an identifier token.
// If tok has no suffix, it returns an EOF token.
func numberSuffix(tok token) token {
	if tok.suffix == "" {
		return token{typ: tokenEOF, match: -1}
	}
	start := tok.pos.End - len(tok.suffix) + 1
	pos := &ast.Position{
		Line:   tok.pos.Line,
		Column: tok.pos.Column + len(tok.txt),
		Start:  start,
		End:    tok.pos.End,
	}
	return token{typ: tokenIdentifier, pos: pos, txt: []byte(tok.suffix), match: -1}
}
