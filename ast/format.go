// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"strconv"
	"strings"
	"unicode"
)

// AlignDirection represents the direction of an alignment.
type AlignDirection int

const (
	AlignLeft   AlignDirection = iota // <
	AlignCenter                       // ^
	AlignRight                        // >
)

// String returns the string representation of the direction.
func (d AlignDirection) String() string {
	return [...]string{"<", "^", ">"}[d]
}

// Sign represents the sign flag of a format spec.
type Sign int

const (
	SignNone     Sign = iota
	SignPositive      // +
	SignNegative      // -
)

// PrecisionKind represents the kind of a precision.
type PrecisionKind int

const (
	PrecisionCount     PrecisionKind = iota // .5
	PrecisionParameter                      // .name$
	PrecisionStar                           // .*
)

// FormatKind represents the kind of a format type.
type FormatKind int

const (
	FormatDisplay       FormatKind = iota // empty
	FormatDebug                           // ?
	FormatDebugLowerHex                   // x?
	FormatDebugUpperHex                   // X?
	FormatOther                           // identifier
)

// Align represents the alignment of a format spec.
type Align struct {
	Fill      rune           // fill character, if HasFill is true.
	HasFill   bool           // reports whether there is a fill character.
	Direction AlignDirection // direction.
}

// Precision represents the precision of a format spec.
type Precision struct {
	Kind      PrecisionKind // kind.
	Count     int           // count, for PrecisionCount.
	Parameter string        // parameter name, for PrecisionParameter.
}

// FormatType represents the type of a format spec.
type FormatType struct {
	Kind FormatKind // kind.
	Name string     // identifier, for FormatOther.
}

// FormatSpec node represents the format of a mustache, that is the part
// after ':' as in {value:'0'>+#6.2?}.
//
// The fields follow the fixed order of the grammar:
//
//	[[fill]align][sign]['#']['0'][width]['.' precision]type
type FormatSpec struct {
	*Position            // position in the source.
	Align     *Align     // alignment, nil if there is no alignment.
	Sign      Sign       // sign.
	Pretty    bool       // reports whether the '#' flag is present.
	Zero      bool       // reports whether the width has a leading zero.
	Width     *int       // width, nil if there is no width.
	Precision *Precision // precision, nil if there is no precision.
	Type      FormatType // type.
}

// NewFormatSpec returns a new FormatSpec node with the Display type.
func NewFormatSpec(pos *Position) *FormatSpec {
	return &FormatSpec{Position: pos}
}

// String returns the source representation of n. Parsing the returned string
// produces a format spec equal to n.
func (n *FormatSpec) String() string {
	var b strings.Builder
	if n.Align != nil {
		if n.Align.HasFill {
			b.WriteString(quoteChar(n.Align.Fill))
		}
		b.WriteString(n.Align.Direction.String())
	}
	switch n.Sign {
	case SignPositive:
		b.WriteByte('+')
	case SignNegative:
		b.WriteByte('-')
	}
	if n.Pretty {
		b.WriteByte('#')
	}
	if n.Width != nil {
		if n.Zero {
			b.WriteByte('0')
		}
		b.WriteString(strconv.Itoa(*n.Width))
	}
	if p := n.Precision; p != nil {
		b.WriteByte('.')
		switch p.Kind {
		case PrecisionCount:
			b.WriteString(strconv.Itoa(p.Count))
		case PrecisionParameter:
			b.WriteString(p.Parameter)
			b.WriteByte('$')
		case PrecisionStar:
			b.WriteByte('*')
		}
	}
	var typ string
	switch n.Type.Kind {
	case FormatDebug:
		typ = "?"
	case FormatDebugLowerHex:
		typ = "x?"
	case FormatDebugUpperHex:
		typ = "X?"
	case FormatOther:
		typ = n.Type.Name
	}
	if typ != "" && typ != "?" && b.Len() > 0 {
		// A type identifier adjacent to a number would be lexed as its
		// suffix.
		if c := b.String()[b.Len()-1]; '0' <= c && c <= '9' {
			b.WriteByte(' ')
		}
	}
	b.WriteString(typ)
	return b.String()
}

// quoteChar returns the char literal representing r.
func quoteChar(r rune) string {
	switch r {
	case '\'', '\\':
		return `'\` + string(r) + `'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case 0:
		return `'\0'`
	}
	if unicode.IsPrint(r) {
		return "'" + string(r) + "'"
	}
	return `'\u{` + strconv.FormatInt(int64(r), 16) + `}'`
}
