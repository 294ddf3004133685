// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func init() {
	testEnvironment = true
}

// run runs the pony command with the given arguments and returns what it
// writes on stdout and stderr.
func run(args ...string) (string, string) {
	var out, errOut bytes.Buffer
	stdout, stderrWriter = &out, &errOut
	defer func() { stdout, stderrWriter = os.Stdout, os.Stderr }()
	pony(append([]string{"pony"}, args...)...)
	return out.String(), errOut.String()
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args   []string
		stdout string
		stderr string
	}{
		{nil, "", "Pony is a tool for checking Pony templates."},
		{[]string{"build"}, "", "pony build: unknown command\nRun 'pony help' for usage.\n"},
		{[]string{"help"}, "", "Usage:"},
		{[]string{"help", "check"}, "", "usage: pony check [-c file] [-v] [paths...]"},
		{[]string{"help", "config"}, "", "max_depth is the maximum nesting depth"},
		{[]string{"help", "dump"}, "", "usage: pony dump [-c file] [paths...]"},
		{[]string{"help", "run"}, "", "pony help run: unknown help topic. Run 'pony help'.\n"},
		{[]string{"version"}, "pony version " + version + "\nlanguage version " + languageVersion +
			"\nbuilt with " + runtime.Version() + "\n", ""},
		{[]string{"stats", "-o", "json"}, "", `invalid output format "json"`},
		{[]string{"check", "-x"}, "", "flag provided but not defined: -x"},
		{[]string{"check", "-c", "missing.yaml"}, "", "missing.yaml"},
	}
	for _, test := range tests {
		stdout, stderr := run(test.args...)
		if test.stdout == "" {
			if stdout != "" {
				t.Errorf("args: %q, unexpected stdout %q\n", test.args, stdout)
			}
		} else if stdout != test.stdout {
			t.Errorf("args: %q, unexpected stdout %q, expecting %q\n", test.args, stdout, test.stdout)
		}
		if test.stderr == "" {
			if stderr != "" {
				t.Errorf("args: %q, unexpected stderr %q\n", test.args, stderr)
			}
		} else if !strings.Contains(stderr, test.stderr) {
			t.Errorf("args: %q, unexpected stderr %q, expecting it to contain %q\n", test.args, stderr, test.stderr)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	files := map[string]string{
		"pony.yaml":       "extensions: [.pony]\nexclude: [vendor]\n",
		"index.pony":      "<Layout>{content}</Layout>",
		"pages/a.pony":    "<>{#if ok}<b/>{/if}</>",
		"vendor/bad.pony": "<a>",
		"pages/notes.txt": "<a>",
	}
	for name, data := range files {
		name = filepath.FromSlash(name)
		if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(name, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}

	stdout, stderr := run("check", "-v")
	if stdout != "index.pony\npages/a.pony\nok\t2 templates\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if stderr != "" {
		t.Fatalf("unexpected stderr %q", stderr)
	}

	stdout, stderr = run("check", "vendor")
	if stdout != "" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if stderr != "vendor/bad.pony:1:1: syntax error: did not find the closing tag </a>\n" {
		t.Fatalf("unexpected stderr %q", stderr)
	}

	stdout, stderr = run("dump", "pages/a.pony")
	if !strings.HasPrefix(stdout, "pages/a.pony:\nFragment (1:1)\n│    IfBlock (1:3) ok\n") {
		t.Fatalf("unexpected dump %q", stdout)
	}
	if stderr != "" {
		t.Fatalf("unexpected stderr %q", stderr)
	}

	stdout, _ = run("stats", "-o", "yaml", "pages")
	if !strings.HasPrefix(stdout, "templates: 1\nelements: 1\n") {
		t.Fatalf("unexpected stats %q", stdout)
	}
}
