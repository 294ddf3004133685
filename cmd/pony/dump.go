// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	ponylib "github.com/open2b/pony"
	"github.com/open2b/pony/ast/astutil"
)

// dumpTemplates parses the named templates of fsys and writes their trees to
// w, each one preceded by the name of the template. Templates that are not
// valid are skipped and their errors are returned joined.
func dumpTemplates(w io.Writer, fsys fs.FS, cfg *config, names []string) error {
	var errs []error
	for _, name := range names {
		tree, err := ponylib.ParseFile(fsys, name, cfg.parseOptions())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
			return err
		}
		if err := astutil.Dump(w, tree); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
