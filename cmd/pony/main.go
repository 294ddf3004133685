// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
)

// version is the version of the pony command.
const version = "v0.1.0"

func main() {
	pony(os.Args...)
}

// testEnvironment is true when testing the pony command, false otherwise.
var testEnvironment = false

// exit causes the current program to exit with the given status code. If
// running in a test environment, every exit call is a no-op.
func exit(status int) {
	if !testEnvironment {
		os.Exit(status)
	}
}

// stdout and stderrWriter are replaced by the tests.
var stdout io.Writer = os.Stdout
var stderrWriter io.Writer = os.Stderr

// stderr prints lines on stderr.
func stderr(lines ...string) {
	for _, l := range lines {
		fmt.Fprint(stderrWriter, l+"\n")
	}
}

// exitError prints msg on stderr with a bold red color and exits with status
// code 1.
func exitError(format string, a ...interface{}) {
	msg := fmt.Errorf(format, a...)
	stderr("\033[1;31m"+msg.Error()+"\033[0m", `exit status 1`)
	exit(1)
}

// pony runs command 'pony' with given args. First argument must be the
// executable name.
func pony(args ...string) {

	// No command provided.
	if len(args) == 1 {
		commandsHelp["pony"]()
		exit(0)
		return
	}

	name := args[1]

	cmd, ok := commands[name]
	if !ok {
		stderr(
			fmt.Sprintf("pony %s: unknown command", name),
			`Run 'pony help' for usage.`,
		)
		exit(1)
		return
	}
	cmd(args[2:])
}

// newFlagSet returns a flag set for the command with the given name. Its
// usage prints the help of the command.
func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderrWriter)
	flags.Usage = func() {
		commandsHelp[name]()
		flags.PrintDefaults()
	}
	return flags
}

// commands maps a command name to a function that executes that command.
// Commands are called by command-line using:
//
//	pony command [arguments]
var commands = map[string]func(args []string){
	"check": func(args []string) {
		flags := newFlagSet("check")
		configFile := flags.String("c", "", "read the configuration from the given file.")
		verbose := flags.Bool("v", false, "print the name of each checked template.")
		if flags.Parse(args) != nil {
			exit(2)
			return
		}
		cfg, names, err := prepare(*configFile, flags.Args())
		if err != nil {
			exitError("%s", err)
			return
		}
		fsys := os.DirFS(".")
		if *verbose {
			for _, name := range names {
				fmt.Fprintln(stdout, name)
			}
		}
		if err := checkTemplates(fsys, cfg, names); err != nil {
			stderr(err.Error())
			exit(1)
			return
		}
		fmt.Fprintf(stdout, "ok\t%d templates\n", len(names))
	},
	"dump": func(args []string) {
		flags := newFlagSet("dump")
		configFile := flags.String("c", "", "read the configuration from the given file.")
		if flags.Parse(args) != nil {
			exit(2)
			return
		}
		cfg, names, err := prepare(*configFile, flags.Args())
		if err != nil {
			exitError("%s", err)
			return
		}
		if err := dumpTemplates(stdout, os.DirFS("."), cfg, names); err != nil {
			stderr(err.Error())
			exit(1)
		}
	},
	"help": func(args []string) {
		if len(args) == 0 {
			commandsHelp["pony"]()
			exit(0)
			return
		}
		topic := args[0]
		help, ok := commandsHelp[topic]
		if !ok {
			fmt.Fprintf(stderrWriter, "pony help %s: unknown help topic. Run 'pony help'.\n", topic)
			exit(1)
			return
		}
		help()
	},
	"stats": func(args []string) {
		flags := newFlagSet("stats")
		configFile := flags.String("c", "", "read the configuration from the given file.")
		output := flags.String("o", "text", "output format, text or yaml.")
		if flags.Parse(args) != nil {
			exit(2)
			return
		}
		if *output != "text" && *output != "yaml" {
			exitError("invalid output format %q", *output)
			return
		}
		cfg, names, err := prepare(*configFile, flags.Args())
		if err != nil {
			exitError("%s", err)
			return
		}
		s, err := collectStats(os.DirFS("."), cfg, names)
		if err != nil {
			stderr(err.Error())
			exit(1)
			return
		}
		if *output == "yaml" {
			err = s.writeYAML(stdout)
		} else {
			err = s.writeText(stdout)
		}
		if err != nil {
			exitError("%s", err)
		}
	},
	"version": func(args []string) {
		fmt.Fprintf(stdout, "pony version %s\n", version)
		fmt.Fprintf(stdout, "language version %s\n", languageVersion)
		fmt.Fprintf(stdout, "built with %s\n", runtime.Version())
	},
	"watch": func(args []string) {
		flags := newFlagSet("watch")
		configFile := flags.String("c", "", "read the configuration from the given file.")
		if flags.Parse(args) != nil {
			exit(2)
			return
		}
		cfg, names, err := prepare(*configFile, flags.Args())
		if err != nil {
			exitError("%s", err)
			return
		}
		fsys, err := newTemplateFS(".")
		if err != nil {
			exitError("%s", err)
			return
		}
		defer fsys.Close()
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		fmt.Fprintln(stderrWriter, "Watching templates, press Ctrl+C to stop")
		watchTemplates(fsys, cfg, names, stop)
	},
}

// prepare loads the configuration, from configFile if it is not empty, and
// returns it with the names of the templates in paths.
func prepare(configFile string, paths []string) (*config, []string, error) {
	required := configFile != ""
	if !required {
		configFile = defaultConfigFile
	}
	cfg, err := loadConfig(configFile, required)
	if err != nil {
		return nil, nil, err
	}
	names, err := templateFiles(os.DirFS("."), cfg, paths)
	if err != nil {
		return nil, nil, err
	}
	return cfg, names, nil
}
