// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTemplateFSChanged(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "index.pony")
	if err := os.WriteFile(name, []byte(`<a/>`), 0644); err != nil {
		t.Fatal(err)
	}

	fsys, err := newTemplateFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer fsys.Close()

	cfg := &config{Extensions: []string{".pony"}}
	if err := checkTemplate(fsys, cfg, "index.pony"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err := os.WriteFile(name, []byte(`<a>`), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case changed := <-fsys.Changed():
		if changed != "index.pony" {
			t.Fatalf("unexpected changed file %q, expecting %q", changed, "index.pony")
		}
	case err := <-fsys.Errors():
		t.Fatalf("unexpected watcher error: %s", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for the change")
	}

	if err := checkTemplate(fsys, cfg, "index.pony"); err == nil {
		t.Fatal("expecting error after the change")
	}
}

func TestTemplateFSInvalidPath(t *testing.T) {
	fsys, err := newTemplateFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer fsys.Close()
	if _, err := fsys.ReadFile("../index.pony"); err == nil {
		t.Fatal("expecting error for a path outside the directory")
	}
	if _, err := fsys.Open("missing.pony"); err == nil {
		t.Fatal("expecting error for a missing file")
	}
}

func TestWatchTemplates(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.pony"), []byte(`<a/>`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.pony"), []byte(`<b>`), 0644); err != nil {
		t.Fatal(err)
	}
	fsys, err := newTemplateFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer fsys.Close()

	var out bytes.Buffer
	stderrWriter = &out
	defer func() { stderrWriter = os.Stderr }()

	stop := make(chan os.Signal, 1)
	stop <- os.Interrupt
	watchTemplates(fsys, &config{Extensions: []string{".pony"}}, []string{"a.pony", "b.pony"}, stop)

	got := out.String()
	if !strings.Contains(got, "a.pony: ok\n") {
		t.Fatalf("expecting a.pony to be reported as valid, got:\n%s", got)
	}
	if !strings.Contains(got, "b.pony:1:1: syntax error: did not find the closing tag </b>") {
		t.Fatalf("expecting b.pony to be reported as invalid, got:\n%s", got)
	}
}
