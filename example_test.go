// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pony_test

import (
	"errors"
	"fmt"
	"log"
	"testing/fstest"

	"github.com/open2b/pony"
	"github.com/open2b/pony/ast"
	"github.com/open2b/pony/ast/astutil"
)

func ExampleParseTemplate() {
	src := `<ul class="todos">
    {#if todos.is_empty()}
        <li>Nothing to do</li>
    {:else}
        <li>{todos.len():>3} items</li>
    {/if}
</ul>`

	tree, err := pony.ParseTemplate([]byte(src), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%T\n", tree)

	astutil.Inspect(tree, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.ClosedElement:
			fmt.Printf("element %s\n", n.ElementName())
		case *ast.Mustache:
			fmt.Printf("mustache %s with format %s\n", n.Expr, n.Format)
		}
		return true
	})

	// Output:
	// *ast.ClosedElement
	// element ul
	// element li
	// element li
	// mustache todos.len() with format >3
}

func ExampleParseFile() {
	fsys := fstest.MapFS{
		"pages/index.pony": {Data: []byte("<a>\n  {}</a>")},
	}

	_, err := pony.ParseFile(fsys, "pages/index.pony", nil)

	var e *pony.SyntaxError
	if errors.As(err, &e) {
		fmt.Println(e.Path())
		fmt.Println(e.Position())
		fmt.Println(e.Message())
	}

	// Output:
	// pages/index.pony
	// 2:4
	// unexpected }, expecting expression
}
