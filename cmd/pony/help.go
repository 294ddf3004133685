// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

const helpCheck = `usage: pony check [-c file] [-v] [paths...]

Check parses the templates in the given paths and reports their syntax errors.
A path can be a template file or a directory. Directories are walked
recursively and every file with a template extension is checked. With no
paths, the current directory is checked.

Paths must be inside the current directory.

Check exits with status 1 if at least one template is not valid.

The -c flag reads the configuration from the given file instead of pony.yaml.

The -v flag prints the name of each checked template.

See also: pony help config.
`

const helpDump = `usage: pony dump [-c file] [paths...]

Dump parses the templates in the given paths, as pony check does, and prints
their trees, one node per line with its position in the source.

Dump exits with status 1 if at least one template is not valid. The trees of
the valid templates are printed anyway.
`

const helpStats = `usage: pony stats [-c file] [-o text|yaml] [paths...]

Stats parses the templates in the given paths, as pony check does, and prints
the number of elements, components, fragments, texts, comments, mustaches and
blocks they contain, and their maximum nesting depth. Components are the
elements that are not HTML elements.

The -o flag sets the output format, text or yaml. The default is text.
`

const helpWatch = `usage: pony watch [-c file] [paths...]

Watch checks the templates in the given paths, as pony check does, and then
checks again a template each time it is written, until interrupted.
`

const helpConfig = `
The pony command reads its configuration from the file pony.yaml in the current
directory, if it exists, or from the file given with the -c flag. For example:

    language: v0.1.0
    extensions: [.pony, .jsx.pony]
    max_depth: 64
    exclude: [node_modules, target]

language is the version of the template language. It must not be greater than
the version supported by the command, see pony version.

extensions are the file extensions of the templates, the default is .pony.

max_depth is the maximum nesting depth of elements, fragments, blocks and
nested expressions and patterns. Zero means the default of 256.

exclude lists the names of the directories that are not walked.
`

// commandsHelp maps a command name to a function that prints help for that
// command.
var commandsHelp = map[string]func(){
	"pony": func() {
		stderr(
			`Pony is a tool for checking Pony templates.`,
			``,
			`Usage:`,
			``,
			`	pony <command> [arguments]`,
			``,
			`The commands are:`,
			``,
			`	check       check the syntax of templates`,
			`	dump        print the trees of templates`,
			`	stats       print statistics about templates`,
			`	watch       check templates each time they change`,
			`	version     print pony version`,
			``,
			`Use "pony help <command>" for more information about a command.`,
			``,
			`Additional help topics:`,
			``,
			`	config      configuration file`,
			``,
		)
	},
	"check": func() {
		stderr(helpCheck)
	},
	"config": func() {
		stderr(helpConfig)
	},
	"dump": func() {
		stderr(helpDump)
	},
	"help": func() {
		stderr(`usage: pony help [command]`)
	},
	"stats": func() {
		stderr(helpStats)
	},
	"version": func() {
		stderr(`usage: pony version`)
	},
	"watch": func() {
		stderr(helpWatch)
	},
}
