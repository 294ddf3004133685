// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	ponylib "github.com/open2b/pony"
	"github.com/open2b/pony/ast"
	"github.com/open2b/pony/ast/astutil"
)

// stats holds the number of nodes of a set of templates.
type stats struct {
	Templates   int `yaml:"templates"`
	Elements    int `yaml:"elements"`
	Components  int `yaml:"components"`
	Fragments   int `yaml:"fragments"`
	Texts       int `yaml:"texts"`
	Comments    int `yaml:"comments"`
	Mustaches   int `yaml:"mustaches"`
	IfBlocks    int `yaml:"if_blocks"`
	MatchBlocks int `yaml:"match_blocks"`
	MaxDepth    int `yaml:"max_depth"`
}

// collectStats parses the named templates of fsys and returns their stats.
// If some templates are not valid, it returns their errors joined.
func collectStats(fsys fs.FS, cfg *config, names []string) (*stats, error) {
	s := &stats{}
	var errs []error
	for _, name := range names {
		tree, err := ponylib.ParseFile(fsys, name, cfg.parseOptions())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.add(tree)
	}
	if errs != nil {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// add adds the nodes of tree to s.
func (s *stats) add(tree ast.Root) {
	s.Templates++
	astutil.Inspect(tree, func(node ast.Node) bool {
		switch n := node.(type) {
		case ast.Element:
			s.Elements++
			if n.ElementName().Atom() == 0 {
				s.Components++
			}
		case *ast.Fragment:
			s.Fragments++
		case *ast.Text:
			s.Texts++
		case *ast.Comment:
			s.Comments++
		case *ast.Mustache:
			s.Mustaches++
		case *ast.IfBlock:
			s.IfBlocks++
		case *ast.MatchBlock:
			s.MatchBlocks++
		}
		return true
	})
	d := &depthVisitor{}
	astutil.Walk(d, tree)
	if d.max > s.MaxDepth {
		s.MaxDepth = d.max
	}
}

// depthVisitor computes the maximum nesting depth of elements, fragments and
// blocks of a tree.
type depthVisitor struct {
	nests []bool
	depth int
	max   int
}

func (v *depthVisitor) Visit(node ast.Node) astutil.Visitor {
	if node == nil {
		if v.nests[len(v.nests)-1] {
			v.depth--
		}
		v.nests = v.nests[:len(v.nests)-1]
		return nil
	}
	var nests bool
	switch node.(type) {
	case *ast.ClosedElement, *ast.SelfClosingElement, *ast.Fragment, *ast.IfBlock, *ast.MatchBlock:
		nests = true
		v.depth++
		if v.depth > v.max {
			v.max = v.depth
		}
	}
	v.nests = append(v.nests, nests)
	return v
}

// writeText writes s to w as a table.
func (s *stats) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	rows := []struct {
		name  string
		value int
	}{
		{"templates", s.Templates},
		{"elements", s.Elements},
		{"components", s.Components},
		{"fragments", s.Fragments},
		{"texts", s.Texts},
		{"comments", s.Comments},
		{"mustaches", s.Mustaches},
		{"if blocks", s.IfBlocks},
		{"match blocks", s.MatchBlocks},
		{"max depth", s.MaxDepth},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\n", row.name, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// writeYAML writes s to w in YAML format.
func (s *stats) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
