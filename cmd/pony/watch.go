// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// templateFS implements a file system that reads the files in a directory
// and watches the files it reads.
type templateFS struct {
	root    string
	fsys    fs.FS
	watcher *fsnotify.Watcher
	changed chan string
	errors  chan error
	done    chan struct{}

	sync.Mutex
	watched map[string]bool
}

// newTemplateFS returns a templateFS that reads the files in the directory
// root. The caller must call Close when it no longer needs it.
func newTemplateFS(root string) (*templateFS, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	t := &templateFS{
		root:    root,
		fsys:    os.DirFS(root),
		watcher: watcher,
		watched: map[string]bool{},
		changed: make(chan string),
		errors:  make(chan error),
		done:    make(chan struct{}),
	}
	go t.run()
	return t, nil
}

// run forwards the events of the watcher until it is closed.
func (t *templateFS) run() {
	for {
		select {
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Rel(t.root, event.Name)
			if err != nil {
				continue
			}
			name = filepath.ToSlash(name)
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// The watch is gone with the file, ReadFile adds it again.
				t.Lock()
				delete(t.watched, name)
				t.Unlock()
			}
			select {
			case t.changed <- name:
			case <-t.done:
				return
			}
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			select {
			case t.errors <- err:
			case <-t.done:
				return
			}
		}
	}
}

// Changed returns a channel that receives the names of the watched files
// that have been written, created, removed or renamed.
func (t *templateFS) Changed() <-chan string {
	return t.changed
}

// Errors returns a channel that receives the errors of the watcher.
func (t *templateFS) Errors() <-chan error {
	return t.errors
}

// Close stops watching the files.
func (t *templateFS) Close() error {
	close(t.done)
	return t.watcher.Close()
}

func (t *templateFS) Open(name string) (fs.File, error) {
	err := t.watch(name)
	if err != nil {
		return nil, err
	}
	return t.fsys.Open(name)
}

func (t *templateFS) ReadFile(name string) ([]byte, error) {
	err := t.watch(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(t.fsys, name)
}

// watch starts watching the named file, if it is not already watched.
func (t *templateFS) watch(name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "watch", Path: name, Err: fs.ErrInvalid}
	}
	t.Lock()
	defer t.Unlock()
	if !t.watched[name] {
		err := t.watcher.Add(filepath.Join(t.root, filepath.FromSlash(name)))
		if err != nil {
			return err
		}
		t.watched[name] = true
	}
	return nil
}

// watchTemplates checks the named templates of fsys and then checks again each
// template that changes, until stop receives a value. It reports the results
// on stderr.
func watchTemplates(fsys *templateFS, cfg *config, names []string, stop <-chan os.Signal) {
	watched := map[string]bool{}
	for _, name := range names {
		watched[name] = true
		report(name, checkTemplate(fsys, cfg, name))
	}
	for {
		select {
		case name := <-fsys.Changed():
			if !watched[name] {
				continue
			}
			report(name, checkTemplate(fsys, cfg, name))
		case err := <-fsys.Errors():
			stderr(fmt.Sprintf("watch error: %s", err))
		case <-stop:
			return
		}
	}
}

// report reports on stderr the result of the check of the named template.
func report(name string, err error) {
	if err != nil {
		stderr("\033[1;31m" + err.Error() + "\033[0m")
		return
	}
	stderr(name + ": ok")
}
