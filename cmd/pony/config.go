// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	ponylib "github.com/open2b/pony"
)

// languageVersion is the latest version of the template language supported
// by the command.
const languageVersion = "v0.1.0"

// defaultConfigFile is the configuration file read when no other file is
// given with the -c flag.
const defaultConfigFile = "pony.yaml"

// config is the configuration of the pony command.
type config struct {
	Language   string   `yaml:"language"`
	Extensions []string `yaml:"extensions"`
	MaxDepth   int      `yaml:"max_depth"`
	Exclude    []string `yaml:"exclude"`
}

// loadConfig reads the configuration from the named file. If the file does
// not exist and required is false, it returns the default configuration.
func loadConfig(name string, required bool) (*config, error) {
	f, err := os.Open(name)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			cfg := &config{}
			err = cfg.validate()
			return cfg, err
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := decodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", name, err)
	}
	return cfg, nil
}

// decodeConfig decodes a configuration in YAML format from r and validates
// it. Unknown fields are not allowed.
func decodeConfig(r io.Reader) (*config, error) {
	cfg := &config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && err != io.EOF {
		return nil, err
	}
	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate validates the configuration and sets the defaults.
func (cfg *config) validate() error {
	if cfg.Language == "" {
		cfg.Language = languageVersion
	}
	if !strings.HasPrefix(cfg.Language, "v") {
		cfg.Language = "v" + cfg.Language
	}
	if !semver.IsValid(cfg.Language) {
		return fmt.Errorf("invalid language version %q", strings.TrimPrefix(cfg.Language, "v"))
	}
	if semver.Compare(cfg.Language, languageVersion) > 0 {
		return fmt.Errorf("language version %s is not supported, the latest supported version is %s", cfg.Language, languageVersion)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".pony"}
	}
	for _, ext := range cfg.Extensions {
		if len(ext) < 2 || ext[0] != '.' || strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d", cfg.MaxDepth)
	}
	for _, dir := range cfg.Exclude {
		if dir == "" || dir == "." || dir == ".." || strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("invalid excluded directory %q", dir)
		}
	}
	return nil
}

// isTemplate reports whether the file with the given name has a template
// extension.
func (cfg *config) isTemplate(name string) bool {
	base := path.Base(name)
	for _, ext := range cfg.Extensions {
		if len(base) > len(ext) && strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

// isExcluded reports whether the directory with the given name is excluded.
func (cfg *config) isExcluded(dir string) bool {
	for _, d := range cfg.Exclude {
		if d == dir {
			return true
		}
	}
	return false
}

// parseOptions returns the options used to parse the templates.
func (cfg *config) parseOptions() *ponylib.ParseOptions {
	return &ponylib.ParseOptions{MaxDepth: cfg.MaxDepth}
}
