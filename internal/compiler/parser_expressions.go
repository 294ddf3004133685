// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"bytes"

	"github.com/open2b/pony/ast"
)

// The expression grammar, from the lowest to the highest precedence, is:
//
//	assignment  a = b, a += b, ...  (right associative)
//	range       a..b, a..=b, a.., ..b, ..
//	binary      || && comparisons | ^ & << >> + - * / %
//	unary       ! - * & &mut
//	postfix     calls, method calls, fields, indexes and ?
//
// Multi-character operators are lexed as single punctuation tokens, so
// tokens are joined into an operator only if there are no spaces between
// them.

// parseExpr parses an expression and returns it. It returns nil if the next
// token cannot start an expression.
func (p *parsing) parseExpr(c *cursor) ast.Expression {
	lhs := p.parseRange(c)
	if lhs == nil {
		return nil
	}
	typ, n, ok := assignmentOperator(c)
	if !ok {
		return lhs
	}
	for i := 0; i < n; i++ {
		c.next()
	}
	p.enter(lhs.Pos())
	rhs := p.mustParseExpr(c)
	p.exit()
	return ast.NewAssignment(lhs.Pos().WithEnd(rhs.Pos().End), lhs, typ, rhs)
}

// mustParseExpr is like parseExpr but panics with a syntax error if there is
// no expression.
func (p *parsing) mustParseExpr(c *cursor) ast.Expression {
	expr := p.parseExpr(c)
	if expr == nil {
		tok := c.peek()
		panic(syntaxError(tok.pos, "unexpected %s, expecting expression", tok))
	}
	return expr
}

// parseExprList parses a comma separated list of expressions, with an
// optional trailing comma, up to the end of c. trailing reports whether
// the list ends with a comma.
func (p *parsing) parseExprList(c *cursor) (exprs []ast.Expression, trailing bool) {
	for !c.isEmpty() {
		exprs = append(exprs, p.mustParseExpr(c))
		if c.isEmpty() {
			return exprs, false
		}
		c.expect(tokenComma)
		trailing = true
	}
	return exprs, trailing
}

// parseRange parses a range expression or, if there is no range operator, a
// binary expression.
func (p *parsing) parseRange(c *cursor) ast.Expression {
	if isRange(c) {
		pos := c.peek().pos
		inclusive := p.rangeOperator(c)
		high := p.parseBinary(c, 0)
		if high == nil {
			if inclusive {
				tok := c.peek()
				panic(syntaxError(tok.pos, "unexpected %s, expecting expression", tok))
			}
			return ast.NewRange(span(pos, c), nil, nil, false)
		}
		return ast.NewRange(pos.WithEnd(high.Pos().End), nil, high, inclusive)
	}
	low := p.parseBinary(c, 0)
	if low == nil || !isRange(c) {
		return low
	}
	inclusive := p.rangeOperator(c)
	high := p.parseBinary(c, 0)
	if high == nil {
		if inclusive {
			tok := c.peek()
			panic(syntaxError(tok.pos, "unexpected %s, expecting expression", tok))
		}
		return ast.NewRange(span(low.Pos(), c), low, nil, false)
	}
	return ast.NewRange(low.Pos().WithEnd(high.Pos().End), low, high, inclusive)
}

// isRange reports whether the next tokens are the .. or ..= operators.
func isRange(c *cursor) bool {
	a, b := c.at(0), c.at(1)
	return a.typ == tokenPeriod && b.typ == tokenPeriod && adjacent(a, b)
}

// rangeOperator consumes a range operator and reports whether it is
// inclusive.
func (p *parsing) rangeOperator(c *cursor) bool {
	c.next()
	dot := c.next()
	if tok := c.peek(); tok.typ == tokenAssignment && adjacent(dot, tok) {
		c.next()
		return true
	}
	return false
}

// andPrecedence is the precedence of the && operator.
const andPrecedence = 3

// parseBinary parses a binary expression. Binary operators with a precedence
// less than or equal to min are not consumed. It returns nil if the next
// token cannot start an expression.
func (p *parsing) parseBinary(c *cursor, min int) ast.Expression {

	// path is the tree path that starts from the root operator and ends with
	// the leaf operator.
	var path []ast.Operator

	// unary is the number of unary operators, each one is a nesting level.
	unary := 0
	defer func() { p.depth -= unary }()

	for {

		var operand ast.Expression
		var operator ast.Operator

		switch tok := c.peek(); tok.typ {
		case tokenNot, tokenSubtraction, tokenMultiplication:
			c.next()
			operator = ast.NewUnaryOperator(tok.pos.WithEnd(tok.pos.End), unaryOperator(tok.typ), nil)
		case tokenAmpersand:
			c.next()
			op := ast.OperatorReference
			pos := tok.pos.WithEnd(tok.pos.End)
			if c.peek().is("mut") {
				pos.End = c.next().pos.End
				op = ast.OperatorMutReference
			}
			operator = ast.NewUnaryOperator(pos, op, nil)
		default:
			operand = p.parseOperand(c)
			if operand == nil {
				if len(path) > 0 {
					panic(syntaxError(tok.pos, "unexpected %s, expecting expression", tok))
				}
				return nil
			}
			op := binaryOperator(c, min)
			if op == nil {
				if len(path) > 0 {
					operand = addLastOperand(operand, path)
				}
				return operand
			}
			operator = op
		}

		// Add the operator to the expression tree.

		switch op := operator.(type) {

		case *ast.UnaryOperator:
			// A unary operator becomes the new leaf operator as it has an
			// higher precedence than all the other operators.
			p.enter(op.Pos())
			unary++
			if len(path) > 0 {
				setLastOperand(path[len(path)-1], op)
			}
			path = append(path, op)

		case *ast.BinaryOperator:
			// For a binary operator, start from the leaf operator and go up
			// to the root stopping if an operator with lower precedence is
			// found.

			// i is the position in the path where to add the operator.
			i := len(path)
			for i > 0 && op.Precedence() <= path[i-1].Precedence() {
				i--
			}
			if i > 0 {
				// operator becomes the child of the operator with lower
				// precedence found going up the path.
				setLastOperand(path[i-1], op)
			}
			if i < len(path) {
				// operand becomes the child of the leaf operator.
				setLastOperand(path[len(path)-1], operand)
				// Set the end for all the operators in the path from i onwards.
				for _, o := range path[i:] {
					o.Pos().End = operand.Pos().End
				}
				// operator becomes the new leaf operator.
				op.Expr1 = path[i]
				op.Position.Start = path[i].Pos().Start
				op.Position.Line = path[i].Pos().Line
				op.Position.Column = path[i].Pos().Column
				path[i] = op
				path = path[0 : i+1]
			} else {
				// operator becomes the new leaf operator.
				op.Expr1 = operand
				op.Position.Start = operand.Pos().Start
				op.Position.Line = operand.Pos().Line
				op.Position.Column = operand.Pos().Column
				path = append(path, op)
			}

		}

	}

}

// setLastOperand sets expr as the last operand of the operator op.
func setLastOperand(op ast.Operator, expr ast.Expression) {
	switch o := op.(type) {
	case *ast.UnaryOperator:
		o.Expr = expr
	case *ast.BinaryOperator:
		o.Expr2 = expr
	}
}

// addLastOperand adds the last operand to the expression parsing path and
// returns the operand resulting from the parsing of the entire expression.
func addLastOperand(op ast.Expression, path []ast.Operator) ast.Expression {
	setLastOperand(path[len(path)-1], op)
	// Set the end for all the operators in path.
	end := op.Pos().End
	for _, o := range path {
		o.Pos().End = end
	}
	// The operand is the root of the expression tree.
	return path[0]
}

// unaryOperator returns the unary operator type of a token type.
func unaryOperator(typ tokenTyp) ast.OperatorType {
	switch typ {
	case tokenNot:
		return ast.OperatorNot
	case tokenSubtraction:
		return ast.OperatorSubtraction
	case tokenMultiplication:
		return ast.OperatorDereference
	}
	panic("invalid unary operator")
}

// binaryOperator consumes the binary operator that follows, if its
// precedence is greater than min, and returns it with no operands. It returns
// nil if no binary operator follows or if it has a lower precedence.
func binaryOperator(c *cursor, min int) *ast.BinaryOperator {
	a, b := c.at(0), c.at(1)
	joint := adjacent(a, b)
	op, n := ast.OperatorType(-1), 1
	switch a.typ {
	case tokenAssignment:
		if joint && b.typ == tokenAssignment {
			op, n = ast.OperatorEqual, 2
		}
	case tokenNot:
		if joint && b.typ == tokenAssignment {
			op, n = ast.OperatorNotEqual, 2
		}
	case tokenLess, tokenGreater:
		op = ast.OperatorLess
		if a.typ == tokenGreater {
			op = ast.OperatorGreater
		}
		if joint {
			switch b.typ {
			case tokenAssignment:
				op, n = op+1, 2 // <= and >=
			case a.typ:
				if x := c.at(2); x.typ == tokenAssignment && adjacent(b, x) {
					return nil // <<= and >>=
				}
				op, n = ast.OperatorLeftShift, 2
				if a.typ == tokenGreater {
					op = ast.OperatorRightShift
				}
			}
		}
	case tokenAmpersand, tokenVerticalBar:
		op = ast.OperatorBitAnd
		if a.typ == tokenVerticalBar {
			op = ast.OperatorBitOr
		}
		if joint {
			switch b.typ {
			case tokenAssignment:
				return nil // &= and |=
			case a.typ:
				op, n = ast.OperatorAnd, 2
				if a.typ == tokenVerticalBar {
					op = ast.OperatorOr
				}
			}
		}
	case tokenAddition, tokenSubtraction, tokenMultiplication, tokenDivision, tokenModulo, tokenXor:
		if joint && (b.typ == tokenAssignment || a.typ == tokenSubtraction && b.typ == tokenGreater) {
			return nil // compound assignments and ->
		}
		op = arithmeticOperators[a.typ]
	}
	if op < 0 {
		return nil
	}
	expr := ast.NewBinaryOperator(a.pos.WithEnd(a.pos.End), op, nil, nil)
	if expr.Precedence() <= min {
		return nil
	}
	for i := 0; i < n; i++ {
		c.next()
	}
	return expr
}

var arithmeticOperators = map[tokenTyp]ast.OperatorType{
	tokenAddition:       ast.OperatorAddition,
	tokenSubtraction:    ast.OperatorSubtraction,
	tokenMultiplication: ast.OperatorMultiplication,
	tokenDivision:       ast.OperatorDivision,
	tokenModulo:         ast.OperatorModulo,
	tokenXor:            ast.OperatorXor,
}

// assignmentOperator returns the assignment operator that follows and its
// length in tokens. ok is false if no assignment operator follows.
func assignmentOperator(c *cursor) (typ ast.AssignmentType, n int, ok bool) {
	a, b := c.at(0), c.at(1)
	if a.typ == tokenAssignment {
		if adjacent(a, b) && (b.typ == tokenAssignment || b.typ == tokenGreater) {
			return 0, 0, false // == and =>
		}
		return ast.AssignmentSimple, 1, true
	}
	if b.typ != tokenAssignment || !adjacent(a, b) {
		if (a.typ == tokenLess || a.typ == tokenGreater) && b.typ == a.typ && adjacent(a, b) {
			if x := c.at(2); x.typ == tokenAssignment && adjacent(b, x) {
				if a.typ == tokenLess {
					return ast.AssignmentLeftShift, 3, true
				}
				return ast.AssignmentRightShift, 3, true
			}
		}
		return 0, 0, false
	}
	switch a.typ {
	case tokenAddition:
		typ = ast.AssignmentAddition
	case tokenSubtraction:
		typ = ast.AssignmentSubtraction
	case tokenMultiplication:
		typ = ast.AssignmentMultiplication
	case tokenDivision:
		typ = ast.AssignmentDivision
	case tokenModulo:
		typ = ast.AssignmentModulo
	case tokenAmpersand:
		typ = ast.AssignmentAnd
	case tokenVerticalBar:
		typ = ast.AssignmentOr
	case tokenXor:
		typ = ast.AssignmentXor
	default:
		return 0, 0, false
	}
	return typ, 2, true
}

// parseOperand parses a primary expression followed by its postfix
// operators. It returns nil if the next token cannot start an operand.
func (p *parsing) parseOperand(c *cursor) ast.Expression {
	expr := p.parsePrimary(c)
	if expr == nil {
		return nil
	}
	return p.parsePostfix(c, expr)
}

// parsePrimary parses a primary expression. It returns nil if the next token
// cannot start a primary expression.
func (p *parsing) parsePrimary(c *cursor) ast.Expression {
	tok := c.peek()
	switch tok.typ {
	case tokenInt, tokenFloat, tokenInterpretedString, tokenRawString, tokenChar:
		return p.parseLiteral(c)
	case tokenIdentifier:
		switch string(tok.txt) {
		case "true", "false":
			return p.parseLiteral(c)
		case "let":
			return p.parseLet(c)
		case "move":
			return p.parseClosure(c)
		}
		if isKeyword(tok) {
			return nil
		}
		return p.parsePathExpr(c)
	case tokenPathSeparator:
		return p.parsePathExpr(c)
	case tokenVerticalBar:
		return p.parseClosure(c)
	case tokenLeftParenthesis:
		p.enter(tok.pos)
		defer p.exit()
		g := c.group()
		pos := span(tok.pos, c)
		exprs, trailing := p.parseExprList(g)
		if len(exprs) == 1 && !trailing {
			return ast.NewParen(pos, exprs[0])
		}
		return ast.NewTuple(pos, exprs)
	case tokenLeftBracket:
		p.enter(tok.pos)
		defer p.exit()
		g := c.group()
		pos := span(tok.pos, c)
		if g.isEmpty() {
			return ast.NewArray(pos, nil, nil)
		}
		first := p.mustParseExpr(g)
		if g.peek().typ == tokenSemicolon {
			g.next()
			length := p.mustParseExpr(g)
			expectEnd(g)
			return ast.NewArray(pos, []ast.Expression{first}, length)
		}
		elements := []ast.Expression{first}
		if !g.isEmpty() {
			g.expect(tokenComma)
			rest, _ := p.parseExprList(g)
			elements = append(elements, rest...)
		}
		return ast.NewArray(pos, elements, nil)
	}
	return nil
}

// parsePathExpr parses a path expression or a macro call. A path with a
// single segment and no generic arguments is returned as an Identifier.
func (p *parsing) parsePathExpr(c *cursor) ast.Expression {
	path := p.parsePath(c)
	if bang := c.peek(); bang.typ == tokenNot {
		if tok := c.at(1); tok.isOpen() {
			c.next()
			c.group()
			tokens := p.source(tok.pos.End+1, c.last().pos.Start-1)
			return ast.NewMacroCall(span(path.Position, c), path, tok.txt[0], tokens)
		}
	}
	if !path.Global && len(path.Segments) == 1 && path.Segments[0].Generics == "" {
		return path.Segments[0].Ident
	}
	return path
}

// parsePath parses a path as in a::b::<T>::c.
func (p *parsing) parsePath(c *cursor) *ast.Path {
	pos := c.peek().pos
	global := false
	if c.peek().typ == tokenPathSeparator {
		c.next()
		global = true
	}
	var segments []ast.PathSegment
	for {
		tok := c.peek()
		if tok.typ != tokenIdentifier {
			panic(syntaxError(tok.pos, "unexpected %s, expecting identifier", tok))
		}
		c.next()
		segments = append(segments, ast.PathSegment{Ident: p.parseIdentifierNode(tok)})
		if c.peek().typ != tokenPathSeparator {
			break
		}
		c.next()
		if c.peek().typ == tokenLess {
			segments[len(segments)-1].Generics = p.parseGenerics(c)
			if c.peek().typ != tokenPathSeparator {
				break
			}
			c.next()
		}
	}
	return ast.NewPath(span(pos, c), global, segments)
}

// parseGenerics parses generic arguments, as in <Vec<_>>, and returns their
// source. The arguments are not parsed.
func (p *parsing) parseGenerics(c *cursor) string {
	open := c.expect(tokenLess)
	depth := 1
	var prev token
	for depth > 0 {
		tok := c.next()
		switch tok.typ {
		case tokenEOF:
			panic(syntaxError(tok.pos, "unexpected %s, expecting >", tok))
		case tokenLess:
			depth++
		case tokenGreater:
			if prev.typ != tokenSubtraction || !adjacent(prev, tok) {
				depth--
			}
		}
		prev = tok
	}
	return p.source(open.pos.Start, c.last().pos.End)
}

// parsePostfix parses the postfix operators that follow expr.
func (p *parsing) parsePostfix(c *cursor, expr ast.Expression) ast.Expression {
	for {
		tok := c.peek()
		switch tok.typ {
		case tokenLeftParenthesis:
			p.enter(tok.pos)
			args, _ := p.parseExprList(c.group())
			p.exit()
			expr = ast.NewCall(span(expr.Pos(), c), expr, args)
		case tokenLeftBracket:
			p.enter(tok.pos)
			g := c.group()
			index := p.mustParseExpr(g)
			expectEnd(g)
			p.exit()
			expr = ast.NewIndex(span(expr.Pos(), c), expr, index)
		case tokenQuestion:
			c.next()
			expr = ast.NewTry(span(expr.Pos(), c), expr)
		case tokenPeriod:
			if isRange(c) {
				return expr
			}
			c.next()
			expr = p.parseField(c, expr)
		default:
			return expr
		}
	}
}

// parseField parses what follows the '.' after expr: a method call, a named
// field or a tuple index.
func (p *parsing) parseField(c *cursor, expr ast.Expression) ast.Expression {
	tok := c.next()
	switch tok.typ {
	case tokenIdentifier:
		var generics string
		if c.peek().typ == tokenPathSeparator && c.at(1).typ == tokenLess {
			c.next()
			generics = p.parseGenerics(c)
			if c.peek().typ != tokenLeftParenthesis {
				tok := c.peek()
				panic(syntaxError(tok.pos, "unexpected %s, expecting (", tok))
			}
		}
		if c.peek().typ == tokenLeftParenthesis {
			p.enter(c.peek().pos)
			args, _ := p.parseExprList(c.group())
			p.exit()
			return ast.NewMethodCall(span(expr.Pos(), c), expr, p.parseIdentifierNode(tok), generics, args)
		}
		return ast.NewSelector(span(expr.Pos(), c), expr, string(tok.txt))
	case tokenInt:
		if tok.suffix == "" && isDecimal(tok.txt) {
			return ast.NewSelector(span(expr.Pos(), c), expr, string(tok.txt))
		}
	case tokenFloat:
		// a.0.1 is lexed as a, '.' and the float 0.1.
		if i := bytes.IndexByte(tok.txt, '.'); tok.suffix == "" && i > 0 && i < len(tok.txt)-1 &&
			isDecimal(tok.txt[:i]) && isDecimal(tok.txt[i+1:]) {
			expr = ast.NewSelector(expr.Pos().WithEnd(tok.pos.Start+i-1), expr, string(tok.txt[:i]))
			return ast.NewSelector(span(expr.Pos(), c), expr, string(tok.txt[i+1:]))
		}
	}
	panic(syntaxError(tok.pos, "unexpected %s, expecting field name or method call", tok))
}

// isDecimal reports whether s contains only decimal digits.
func isDecimal(s []byte) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// parseClosure parses a closure as in |a, b| a + b or move || x.
func (p *parsing) parseClosure(c *cursor) ast.Expression {
	pos := c.peek().pos
	p.enter(pos)
	defer p.exit()
	move := false
	if c.peek().is("move") {
		c.next()
		move = true
	}
	bar := c.expect(tokenVerticalBar)
	var params []ast.Pattern
	if tok := c.peek(); tok.typ == tokenVerticalBar && adjacent(bar, tok) {
		// ||
		c.next()
	} else {
		for {
			if c.peek().typ == tokenVerticalBar {
				c.next()
				break
			}
			params = append(params, p.parsePatternNoAlt(c))
			if tok := c.peek(); tok.typ == tokenComma {
				c.next()
			} else if tok.typ != tokenVerticalBar {
				panic(syntaxError(tok.pos, "unexpected %s, expecting , or |", tok))
			}
		}
	}
	body := p.mustParseExpr(c)
	return ast.NewClosure(pos.WithEnd(body.Pos().End), move, params, body)
}

// parseLet parses a let expression as in let Some(x) = value. The scrutinee
// cannot contain the && and || operators, so that let expressions can be
// chained in conditions.
func (p *parsing) parseLet(c *cursor) ast.Expression {
	pos := c.next().pos
	p.enter(pos)
	defer p.exit()
	pattern := p.parsePattern(c, true)
	if tok := c.peek(); tok.typ != tokenAssignment || adjacent(tok, c.at(1)) && c.at(1).typ == tokenAssignment {
		panic(syntaxError(tok.pos, "unexpected %s, expecting =", tok))
	}
	c.next()
	expr := p.parseBinary(c, andPrecedence)
	if expr == nil {
		tok := c.peek()
		panic(syntaxError(tok.pos, "unexpected %s, expecting expression", tok))
	}
	return ast.NewLet(pos.WithEnd(expr.Pos().End), pattern, expr)
}
