// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pony parses Pony templates.
//
// A Pony template is a single element or fragment written in a JSX-like
// markup, with interpolations in the form {expr} or {expr:format} and blocks
// in the form {#if cond}...{/if} and {#match expr}...{/match}. For example:
//
//	<ul class="todos">
//	    {#if todos.is_empty()}
//	        <li>Nothing to do</li>
//	    {:else}
//	        <li>{todos.len():>3} items</li>
//	    {/if}
//	</ul>
//
// ParseTemplate and ParseFile return the tree of a template, as defined in the
// ast package, or an error describing why the source is not valid.
package pony

import (
	"io/fs"

	"github.com/open2b/pony/ast"
	"github.com/open2b/pony/internal/compiler"
)

// DefaultMaxDepth is the maximum nesting depth used when
// ParseOptions.MaxDepth is zero.
const DefaultMaxDepth = compiler.DefaultMaxDepth

// ParseOptions contains options for parsing templates.
type ParseOptions struct {

	// MaxDepth is the maximum nesting depth of elements, fragments, blocks,
	// and of the groups, closures and operators nested in expressions and
	// patterns. If it is zero, DefaultMaxDepth is used.
	MaxDepth int
}

// SyntaxError represents a syntax error in a template. Its Error method
// returns a string in the form "path:line:column: syntax error: message".
type SyntaxError = compiler.SyntaxError

// LimitError is returned when a template exceeds the maximum nesting depth.
// Its Error method returns a string in the form
// "path:line:column: limit error: message".
type LimitError = compiler.LimitError

// CompilerError is implemented by SyntaxError and LimitError.
type CompilerError interface {
	error
	Position() ast.Position
	Path() string
	Message() string
}

// ParseTemplate parses the source of a template and returns its root, an
// *ast.ClosedElement, an *ast.SelfClosingElement or an *ast.Fragment.
//
// If the source is not a valid template, it returns a *SyntaxError. If the
// nesting depth exceeds the maximum, it returns a *LimitError.
func ParseTemplate(src []byte, options *ParseOptions) (ast.Root, error) {
	return compiler.ParseTemplateSource(src, "", maxDepth(options))
}

// ParseFile reads the template with the given name from fsys and parses it.
// name is also the path reported in the returned *SyntaxError and
// *LimitError errors.
//
// If the file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func ParseFile(fsys fs.FS, name string, options *ParseOptions) (ast.Root, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return compiler.ParseTemplateSource(src, name, maxDepth(options))
}

// maxDepth returns the maximum depth in options.
func maxDepth(options *ParseOptions) int {
	if options == nil || options.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return options.MaxDepth
}
