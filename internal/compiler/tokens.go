// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiler

import (
	"github.com/open2b/pony/ast"
)

// Token type.
type tokenTyp int

const (
	tokenEOF               tokenTyp = iota // eof
	tokenIdentifier                        // customerName
	tokenLifetime                          // 't
	tokenInt                               // 18
	tokenFloat                             // 12.895
	tokenInterpretedString                 // "abc"
	tokenRawString                         // r"abc"
	tokenChar                              // 'a'
	tokenPathSeparator                     // ::
	tokenLeftParenthesis                   // (
	tokenRightParenthesis                  // )
	tokenLeftBracket                       // [
	tokenRightBracket                      // ]
	tokenLeftBrace                         // {
	tokenRightBrace                        // }
	tokenLess                              // <
	tokenGreater                           // >
	tokenColon                             // :
	tokenSemicolon                         // ;
	tokenComma                             // ,
	tokenPeriod                            // .
	tokenHash                              // #
	tokenQuestion                          // ?
	tokenAddition                          // +
	tokenSubtraction                       // -
	tokenMultiplication                    // *
	tokenDivision                          // /
	tokenAssignment                        // =
	tokenVerticalBar                       // |
	tokenNot                               // !
	tokenAmpersand                         // &
	tokenModulo                            // %
	tokenXor                               // ^
	tokenAt                                // @
	tokenDollar                            // $
	tokenTilde                             // ~
	tokenSymbol                            // any other character
)

var tokenString = map[tokenTyp]string{
	tokenEOF:               "EOF",
	tokenIdentifier:        "identifier",
	tokenLifetime:          "lifetime",
	tokenInt:               "integer literal",
	tokenFloat:             "float literal",
	tokenInterpretedString: "string literal",
	tokenRawString:         "raw string literal",
	tokenChar:              "char literal",
	tokenPathSeparator:     "::",
	tokenLeftParenthesis:   "(",
	tokenRightParenthesis:  ")",
	tokenLeftBracket:       "[",
	tokenRightBracket:      "]",
	tokenLeftBrace:         "{",
	tokenRightBrace:        "}",
	tokenLess:              "<",
	tokenGreater:           ">",
	tokenColon:             ":",
	tokenSemicolon:         ";",
	tokenComma:             ",",
	tokenPeriod:            ".",
	tokenHash:              "#",
	tokenQuestion:          "?",
	tokenAddition:          "+",
	tokenSubtraction:       "-",
	tokenMultiplication:    "*",
	tokenDivision:          "/",
	tokenAssignment:        "=",
	tokenVerticalBar:       "|",
	tokenNot:               "!",
	tokenAmpersand:         "&",
	tokenModulo:            "%",
	tokenXor:               "^",
	tokenAt:                "@",
	tokenDollar:            "$",
	tokenTilde:             "~",
	tokenSymbol:            "symbol",
}

// punctuation maps the single character punctuation to its token type.
var punctuation = [128]tokenTyp{
	'<': tokenLess,
	'>': tokenGreater,
	':': tokenColon,
	';': tokenSemicolon,
	',': tokenComma,
	'.': tokenPeriod,
	'#': tokenHash,
	'?': tokenQuestion,
	'+': tokenAddition,
	'-': tokenSubtraction,
	'*': tokenMultiplication,
	'/': tokenDivision,
	'=': tokenAssignment,
	'|': tokenVerticalBar,
	'!': tokenNot,
	'&': tokenAmpersand,
	'%': tokenModulo,
	'^': tokenXor,
	'@': tokenAt,
	'$': tokenDollar,
	'~': tokenTilde,
}

// String returns the string that represents the token type.
func (tt tokenTyp) String() string {
	if s, ok := tokenString[tt]; ok {
		return s
	}
	panic("invalid token type")
}

// token is a lexical token.
type token struct {
	typ    tokenTyp      // type
	pos    *ast.Position // position in the source
	txt    []byte        // token text, without the suffix for numeric literals
	suffix string        // suffix of a numeric literal, as "usize" in 5usize
	match  int           // for delimiters, the index of the matching delimiter
}

// String returns the string that represents the token.
func (tok token) String() string {
	switch tok.typ {
	case tokenEOF:
		if len(tok.txt) > 0 {
			// end of a delimited group.
			return string(tok.txt)
		}
		return "EOF"
	case tokenIdentifier, tokenLifetime, tokenInt, tokenFloat, tokenInterpretedString, tokenRawString, tokenChar, tokenSymbol:
		return string(tok.txt) + tok.suffix
	}
	return tok.typ.String()
}

// is reports whether tok is an identifier with name name.
func (tok token) is(name string) bool {
	return tok.typ == tokenIdentifier && string(tok.txt) == name
}

// isOpen reports whether tok is an opening delimiter.
func (tok token) isOpen() bool {
	return tok.typ == tokenLeftParenthesis || tok.typ == tokenLeftBracket || tok.typ == tokenLeftBrace
}

// isClose reports whether tok is a closing delimiter.
func (tok token) isClose() bool {
	return tok.typ == tokenRightParenthesis || tok.typ == tokenRightBracket || tok.typ == tokenRightBrace
}

// closing returns the closing delimiter type of the opening delimiter typ.
func closing(typ tokenTyp) tokenTyp {
	switch typ {
	case tokenLeftParenthesis:
		return tokenRightParenthesis
	case tokenLeftBracket:
		return tokenRightBracket
	case tokenLeftBrace:
		return tokenRightBrace
	}
	panic("not an opening delimiter")
}

// keywords are the identifiers that cannot be used as names in expressions
// and patterns.
var keywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "static": true, "struct": true,
	"trait": true, "true": true, "type": true, "unsafe": true, "use": true,
	"where": true, "while": true, "async": true, "await": true, "dyn": true,
}

// isKeyword reports whether tok is a keyword.
func isKeyword(tok token) bool {
	return tok.typ == tokenIdentifier && keywords[string(tok.txt)]
}
