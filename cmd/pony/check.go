// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	ponylib "github.com/open2b/pony"
)

// fsPath returns the path, relative to the current directory, of the file
// system path p, in the form accepted by fs.FS.
func fsPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		p, err = filepath.Rel(wd, p)
		if err != nil {
			return "", err
		}
	}
	name := filepath.ToSlash(filepath.Clean(p))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("path %q is not inside the current directory", p)
	}
	return name, nil
}

// templateFiles returns the names of the template files in paths, sorted and
// without duplicates. Directories are walked recursively, skipping the
// excluded ones; a file given explicitly is returned whatever its extension.
// If paths is empty, the root of fsys is walked.
func templateFiles(fsys fs.FS, cfg *config, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	seen := map[string]bool{}
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, p := range paths {
		root, err := fsPath(p)
		if err != nil {
			return nil, err
		}
		fi, err := fs.Stat(fsys, root)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			add(root)
			continue
		}
		err = fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if name != root && cfg.isExcluded(d.Name()) {
					return fs.SkipDir
				}
				return nil
			}
			if cfg.isTemplate(name) {
				add(name)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(names)
	return names, nil
}

// checkTemplates parses the named templates of fsys and returns their errors
// joined, or nil if all the templates are valid.
func checkTemplates(fsys fs.FS, cfg *config, names []string) error {
	var errs []error
	for _, name := range names {
		if err := checkTemplate(fsys, cfg, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// checkTemplate parses the named template of fsys.
func checkTemplate(fsys fs.FS, cfg *config, name string) error {
	_, err := ponylib.ParseFile(fsys, name, cfg.parseOptions())
	return err
}
