// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"github.com/open2b/pony/ast"
)

// parseMustache parses a mustache in the form {expr} or {expr:format}.
func (p *parsing) parseMustache(c *cursor) *ast.Mustache {
	pos := c.peek().pos
	g := c.group()
	expr := p.mustParseExpr(g)
	var format *ast.FormatSpec
	if tok := g.peek(); tok.typ == tokenColon {
		g.next()
		format = p.parseFormatSpec(g, tok.pos)
	} else if tok.typ != tokenEOF {
		panic(syntaxError(tok.pos, "unexpected %s, expecting : or }", tok))
	}
	return ast.NewMustache(span(pos, c), expr, format)
}
