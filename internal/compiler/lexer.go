// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"unicode"
	"unicode/utf8"

	"github.com/open2b/pony/ast"
)

const BOM rune = 0xfeff
const bomErrorMsg = "invalid BOM in the middle of the file"

// scanTemplate scans a template source and returns its tokens. The last
// token has type tokenEOF. Delimiters are balanced and every delimiter
// records, in the match field, the index of its matching delimiter.
func scanTemplate(text []byte) ([]token, error) {
	lex := &lexer{
		text:   text,
		src:    text,
		line:   1,
		column: 1,
	}
	if r, s := utf8.DecodeRune(lex.src); r == BOM {
		lex.src = lex.src[s:]
	}
	err := lex.scan()
	if err != nil {
		return nil, err
	}
	return lex.tokens, nil
}

// lexer maintains the scanner status.
type lexer struct {
	text   []byte  // text on which the scans are performed
	src    []byte  // slice of the text used during the scan
	line   int     // current line starting from 1
	column int     // current column starting from 1
	tokens []token // scanned tokens
	open   []int   // indexes in tokens of the open delimiters
}

func (l *lexer) newline() {
	l.line++
	l.column = 1
}

func (l *lexer) errorf(format string, a ...interface{}) *SyntaxError {
	pos := ast.Position{
		Line:   l.line,
		Column: l.column,
		Start:  len(l.text) - len(l.src),
		End:    len(l.text) - len(l.src),
	}
	return syntaxError(&pos, format, a...)
}

// skip skips the next n bytes of src, updating the line and the column.
func (l *lexer) skip(n int) {
	for _, c := range l.src[:n] {
		if c == '\n' {
			l.newline()
		} else if isStartChar(c) {
			l.column++
		}
	}
	l.src = l.src[n:]
}

// emit emits a token of type typ and length length at the current line and
// column.
func (l *lexer) emit(typ tokenTyp, length int) {
	start := len(l.text) - len(l.src)
	end := start + length - 1
	if length == 0 {
		end = start
	}
	l.tokens = append(l.tokens, token{
		typ: typ,
		pos: &ast.Position{
			Line:   l.line,
			Column: l.column,
			Start:  start,
			End:    end,
		},
		txt:   l.src[0:length:length],
		match: -1,
	})
	l.skip(length)
}

// scan scans the source.
func (l *lexer) scan() error {

	for len(l.src) > 0 {
		c := l.src[0]
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
			l.skip(1)
			continue
		case '(', '[', '{':
			l.open = append(l.open, len(l.tokens))
			l.emit(l.delimiter(c), 1)
			continue
		case ')', ']', '}':
			typ := l.delimiter(c)
			if len(l.open) == 0 {
				return l.errorf("unexpected %s", typ)
			}
			o := l.open[len(l.open)-1]
			if closing(l.tokens[o].typ) != typ {
				return l.errorf("unexpected %s, expecting %s", typ, closing(l.tokens[o].typ))
			}
			l.open = l.open[:len(l.open)-1]
			l.tokens[o].match = len(l.tokens)
			l.emit(typ, 1)
			l.tokens[len(l.tokens)-1].match = o
			continue
		case ':':
			if len(l.src) > 1 && l.src[1] == ':' {
				l.emit(tokenPathSeparator, 2)
				continue
			}
		case '"':
			if err := l.lexInterpretedString(0); err != nil {
				return err
			}
			continue
		case '\'':
			if err := l.lexCharOrLifetime(); err != nil {
				return err
			}
			continue
		case 'b', 'r':
			if ok, err := l.lexPrefixedLiteral(); ok || err != nil {
				if err != nil {
					return err
				}
				continue
			}
		}
		if isDecDigit(c) {
			l.lexNumber()
			continue
		}
		if c < utf8.RuneSelf && punctuation[c] != tokenEOF {
			l.emit(punctuation[c], 1)
			continue
		}
		r, s := utf8.DecodeRune(l.src)
		switch {
		case r == utf8.RuneError && s == 1:
			return l.errorf("invalid UTF-8 encoding")
		case r == BOM:
			return l.errorf(bomErrorMsg)
		case r == '_' || unicode.IsLetter(r):
			l.lexIdentifier(s)
		case unicode.IsSpace(r):
			l.skip(s)
		default:
			l.emit(tokenSymbol, s)
		}
	}

	if len(l.open) > 0 {
		tok := l.tokens[l.open[len(l.open)-1]]
		return syntaxError(tok.pos, "unclosed delimiter %s", tok.typ)
	}

	l.emit(tokenEOF, 0)

	return nil
}

// delimiter returns the token type of the delimiter c.
func (l *lexer) delimiter(c byte) tokenTyp {
	switch c {
	case '(':
		return tokenLeftParenthesis
	case ')':
		return tokenRightParenthesis
	case '[':
		return tokenLeftBracket
	case ']':
		return tokenRightBracket
	case '{':
		return tokenLeftBrace
	}
	return tokenRightBrace
}

// isStartChar reports whether b is the first byte of an UTF-8 encoded
// character.
func isStartChar(b byte) bool {
	return b < 128 || 191 < b
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isOctDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isDecDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// identifierLen returns the length in bytes of the identifier characters at
// the start of src.
func identifierLen(src []byte) int {
	p := 0
	for p < len(src) {
		r, s := utf8.DecodeRune(src[p:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p += s
	}
	return p
}

// isIdentifierStart reports whether src starts with a character that can
// start an identifier.
func isIdentifierStart(src []byte) bool {
	if len(src) == 0 {
		return false
	}
	r, _ := utf8.DecodeRune(src)
	return r == '_' || unicode.IsLetter(r)
}

// lexIdentifier reads an identifier knowing that src starts with a character
// with a length of s bytes.
func (l *lexer) lexIdentifier(s int) {
	l.emit(tokenIdentifier, s+identifierLen(l.src[s:]))
}

// lexPrefixedLiteral reads a byte string, a raw string or a byte literal,
// knowing that src starts with 'b' or 'r'. It returns false if src does not
// start with a prefixed literal.
func (l *lexer) lexPrefixedLiteral() (bool, error) {
	p := 1
	if l.src[0] == 'b' && len(l.src) > 1 && l.src[1] == 'r' {
		p = 2
	}
	if p == len(l.src) {
		return false, nil
	}
	switch l.src[p] {
	case '"':
		if l.src[p-1] == 'r' {
			return true, l.lexRawString(p)
		}
		return true, l.lexInterpretedString(p)
	case '#':
		if l.src[p-1] == 'r' {
			q := p
			for q < len(l.src) && l.src[q] == '#' {
				q++
			}
			if q < len(l.src) && l.src[q] == '"' {
				return true, l.lexRawString(p)
			}
		}
	case '\'':
		if p == 1 && l.src[0] == 'b' {
			n, err := l.charLen(1)
			if n > 0 {
				l.emit(tokenChar, n)
			}
			return n > 0 || err != nil, err
		}
	}
	return false, nil
}

// lexNumber reads an integer or a floating-point number knowing that src
// starts with '0'..'9'. An identifier immediately following the number is
// read as its suffix, as in 5usize.
func (l *lexer) lexNumber() {
	typ := tokenInt
	p := 0
	if len(l.src) > 2 && l.src[0] == '0' && (l.src[1] == 'x' || l.src[1] == 'o' || l.src[1] == 'b') {
		isDigit := isHexDigit
		switch l.src[1] {
		case 'o':
			isDigit = isOctDigit
		case 'b':
			isDigit = isBinDigit
		}
		q := 2
		for q < len(l.src) && l.src[q] == '_' {
			q++
		}
		if q < len(l.src) && isDigit(l.src[q]) {
			p = q
			for p < len(l.src) && (isDigit(l.src[p]) || l.src[p] == '_') {
				p++
			}
		}
	}
	if p == 0 {
		p = decimalLen(l.src)
		// Fractional part.
		if p+1 < len(l.src) && l.src[p] == '.' && isDecDigit(l.src[p+1]) {
			typ = tokenFloat
			p += 1 + decimalLen(l.src[p+1:])
		} else if p < len(l.src) && l.src[p] == '.' && (p+1 == len(l.src) ||
			l.src[p+1] != '.' && !isIdentifierStart(l.src[p+1:])) {
			typ = tokenFloat
			p++
		}
		// Exponent.
		if p < len(l.src) && (l.src[p] == 'e' || l.src[p] == 'E') && l.src[p-1] != '.' {
			q := p + 1
			if q < len(l.src) && (l.src[q] == '+' || l.src[q] == '-') {
				q++
			}
			for q < len(l.src) && l.src[q] == '_' {
				q++
			}
			if q < len(l.src) && isDecDigit(l.src[q]) {
				typ = tokenFloat
				p = q + decimalLen(l.src[q:])
			}
		}
	}
	n := p
	if isIdentifierStart(l.src[p:]) {
		p += identifierLen(l.src[p:])
	}
	suffix := string(l.src[n:p])
	l.emit(typ, p)
	tok := &l.tokens[len(l.tokens)-1]
	tok.txt = tok.txt[:n:n]
	tok.suffix = suffix
}

// decimalLen returns the length of the decimal digits and underscores at the
// start of src.
func decimalLen(src []byte) int {
	p := 0
	for p < len(src) && (isDecDigit(src[p]) || src[p] == '_') {
		p++
	}
	return p
}

// lexInterpretedString reads a string "..." knowing that the quote is at
// index p of src. Strings can span multiple lines.
func (l *lexer) lexInterpretedString(p int) error {
	p++
	for {
		if p == len(l.src) {
			return l.errorf("string not terminated")
		}
		switch l.src[p] {
		case '"':
			l.emit(tokenInterpretedString, p+1)
			return nil
		case '\\':
			n, err := l.escape(p, '"')
			if err != nil {
				return err
			}
			p += n
		default:
			r, s := utf8.DecodeRune(l.src[p:])
			if r == utf8.RuneError && s == 1 {
				l.skip(p)
				return l.errorf("invalid UTF-8 encoding")
			}
			p += s
		}
	}
}

// lexRawString reads a raw string as r"..." or r#"..."# knowing that src
// starts with its prefix and that the 'r' is at index p-1 of src.
func (l *lexer) lexRawString(p int) error {
	hashes := 0
	for l.src[p] == '#' {
		hashes++
		p++
	}
	if hashes > 255 {
		return l.errorf("too many '#' symbols in raw string")
	}
	p++
STRING:
	for {
		if p == len(l.src) {
			return l.errorf("raw string not terminated")
		}
		if l.src[p] == '"' {
			q := p + 1
			for i := 0; i < hashes; i++ {
				if q == len(l.src) || l.src[q] != '#' {
					p = q
					continue STRING
				}
				q++
			}
			l.emit(tokenRawString, q)
			return nil
		}
		r, s := utf8.DecodeRune(l.src[p:])
		if r == utf8.RuneError && s == 1 {
			l.skip(p)
			return l.errorf("invalid UTF-8 encoding")
		}
		p += s
	}
}

// lexCharOrLifetime reads a char literal as 'a' or a lifetime as 'a knowing
// that src starts with a quote. A quote that does not start a char literal
// or a lifetime is emitted as a symbol.
func (l *lexer) lexCharOrLifetime() error {
	n, err := l.charLen(0)
	if err != nil {
		return err
	}
	if n > 0 {
		l.emit(tokenChar, n)
		return nil
	}
	if isIdentifierStart(l.src[1:]) {
		l.emit(tokenLifetime, 1+identifierLen(l.src[1:]))
		return nil
	}
	l.emit(tokenSymbol, 1)
	return nil
}

// charLen returns the length of the char literal ending at index p of src,
// knowing that the opening quote is at index p. It returns 0 if src does not
// contain a char literal at index p.
func (l *lexer) charLen(p int) (int, error) {
	if p+1 == len(l.src) {
		return 0, nil
	}
	if l.src[p+1] == '\\' {
		n, err := l.escape(p+1, '\'')
		if err != nil {
			return 0, err
		}
		q := p + 1 + n
		if q == len(l.src) || l.src[q] != '\'' {
			l.skip(q)
			return 0, l.errorf("char literal not terminated")
		}
		return q + 1, nil
	}
	r, s := utf8.DecodeRune(l.src[p+1:])
	if r == utf8.RuneError && s == 1 {
		l.skip(p + 1)
		return 0, l.errorf("invalid UTF-8 encoding")
	}
	q := p + 1 + s
	if r != '\'' && r != '\n' && q < len(l.src) && l.src[q] == '\'' {
		return q + 1, nil
	}
	return 0, nil
}

// escape reads an escape sequence knowing that the backslash is at index p
// of src and returns its length. quote is the quote of the enclosing
// literal.
func (l *lexer) escape(p int, quote byte) (int, error) {
	if p+1 == len(l.src) {
		l.skip(p)
		return 0, l.errorf("escape sequence not terminated")
	}
	switch c := l.src[p+1]; c {
	case 'n', 'r', 't', '\\', '0', '\'', '"':
		return 2, nil
	case 'x':
		for i := 0; i < 2; i++ {
			if p+2+i == len(l.src) || !isHexDigit(l.src[p+2+i]) {
				l.skip(p)
				return 0, l.errorf("invalid hexadecimal escape")
			}
		}
		if l.src[p+2] > '7' {
			l.skip(p)
			return 0, l.errorf("out of range hex escape")
		}
		return 4, nil
	case 'u':
		q := p + 2
		if q == len(l.src) || l.src[q] != '{' {
			l.skip(p)
			return 0, l.errorf("incorrect unicode escape sequence")
		}
		q++
		var r rune
		var digits int
		for ; q < len(l.src) && l.src[q] != '}'; q++ {
			c := l.src[q]
			if c == '_' {
				continue
			}
			switch {
			case '0' <= c && c <= '9':
				r = r*16 + rune(c-'0')
			case 'a' <= c && c <= 'f':
				r = r*16 + rune(c-'a'+10)
			case 'A' <= c && c <= 'F':
				r = r*16 + rune(c-'A'+10)
			default:
				l.skip(p)
				return 0, l.errorf("invalid character %q in unicode escape", c)
			}
			digits++
			if digits > 6 {
				l.skip(p)
				return 0, l.errorf("overlong unicode escape")
			}
		}
		if q == len(l.src) {
			l.skip(p)
			return 0, l.errorf("unterminated unicode escape")
		}
		if digits == 0 {
			l.skip(p)
			return 0, l.errorf("empty unicode escape")
		}
		if 0xD800 <= r && r < 0xE000 || r > unicode.MaxRune {
			l.skip(p)
			return 0, l.errorf("invalid unicode character escape U+%X", r)
		}
		return q + 1 - p, nil
	case '\n':
		if quote == '"' {
			q := p + 2
			for q < len(l.src) && (l.src[q] == ' ' || l.src[q] == '\t' || l.src[q] == '\n' || l.src[q] == '\r') {
				q++
			}
			return q - p, nil
		}
	}
	l.skip(p)
	return 0, l.errorf("unknown character escape")
}
