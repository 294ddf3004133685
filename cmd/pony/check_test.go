// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	ponylib "github.com/open2b/pony"
)

var site = fstest.MapFS{
	"index.pony":                      {Data: []byte(`<Layout title="Home"><p>{greeting}</p></Layout>`)},
	"README.md":                       {Data: []byte("# Site")},
	"pages/about.pony":                {Data: []byte("<>\n  <h1>About</h1>\n  {#if}{/if}\n</>")},
	"pages/list.jsx.pony":             {Data: []byte(`<ul>{#match items.len()}{:case 0}<li>none</li>{:case _}{items.len():>3}{/match}</ul>`)},
	"pages/draft.txt":                 {Data: []byte(`<a>`)},
	"node_modules/pkg/x.pony":         {Data: []byte(`<x/>`)},
	"pages/node_modules/b.pony":       {Data: []byte(`<b/>`)},
	"components/button/button.pony":   {Data: []byte(`<button {..props}><slot/></button>`)},
	"components/button/unclosed.pony": {Data: []byte(`<button>`)},
}

var siteConfig = &config{Extensions: []string{".pony"}, Exclude: []string{"node_modules"}}

var templateFilesTests = []struct {
	paths []string
	names []string
}{
	{nil, []string{
		"components/button/button.pony",
		"components/button/unclosed.pony",
		"index.pony",
		"pages/about.pony",
		"pages/list.jsx.pony",
	}},
	{[]string{"pages"}, []string{"pages/about.pony", "pages/list.jsx.pony"}},
	{[]string{"pages/", "./pages/about.pony"}, []string{"pages/about.pony", "pages/list.jsx.pony"}},
	{[]string{"pages/draft.txt"}, []string{"pages/draft.txt"}},
	{[]string{"node_modules"}, []string{"node_modules/pkg/x.pony"}},
	{[]string{"components/button/../../index.pony"}, []string{"index.pony"}},
}

func TestTemplateFiles(t *testing.T) {
	for _, test := range templateFilesTests {
		names, err := templateFiles(site, siteConfig, test.paths)
		if err != nil {
			t.Errorf("paths: %q, unexpected error %q\n", test.paths, err)
			continue
		}
		if diff := cmp.Diff(test.names, names); diff != "" {
			t.Errorf("paths: %q, unexpected names (-want +got):\n%s", test.paths, diff)
		}
	}
}

func TestTemplateFilesErrors(t *testing.T) {
	if _, err := templateFiles(site, siteConfig, []string{"missing"}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("unexpected error %v, expecting fs.ErrNotExist", err)
	}
	_, err := templateFiles(site, siteConfig, []string{"../outside"})
	if err == nil || err.Error() != `path "../outside" is not inside the current directory` {
		t.Errorf("unexpected error %v", err)
	}
}

func TestCheckTemplates(t *testing.T) {
	names, err := templateFiles(site, siteConfig, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = checkTemplates(site, siteConfig, names)
	if err == nil {
		t.Fatal("expecting errors")
	}
	lines := strings.Split(err.Error(), "\n")
	expected := []string{
		"components/button/unclosed.pony:1:1: syntax error: did not find the closing tag </button>",
		"pages/about.pony:3:7: syntax error: unexpected }, expecting expression",
	}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Fatalf("unexpected errors (-want +got):\n%s", diff)
	}
	var se *ponylib.SyntaxError
	if !errors.As(err, &se) {
		t.Fatal("expecting the joined errors to contain a *pony.SyntaxError")
	}
	if err = checkTemplates(site, siteConfig, []string{"index.pony", "pages/list.jsx.pony"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestCheckTemplatesMaxDepth(t *testing.T) {
	cfg := &config{Extensions: []string{".pony"}, MaxDepth: 1}
	err := checkTemplate(site, cfg, "index.pony")
	var le *ponylib.LimitError
	if !errors.As(err, &le) {
		t.Fatalf("unexpected error %v, expecting a *pony.LimitError", err)
	}
	if le.Path() != "index.pony" {
		t.Fatalf("unexpected path %q", le.Path())
	}
}
