// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// loadRuntime loads the configuration and wires up logging. Configuration
// problems are reported and the defaults are used instead.
func loadRuntime() (*Config, io.Closer) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	closer, err := setupLogging(config.Logging)
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
	}
	return config, closer
}

func runMenu() {
	config, closer := loadRuntime()
	defer closer.Close()

	session := NewSession(config, io.Discard)
	if err := runBubbleTeaApp(session, config); err != nil {
		log.Fatalf("Error running menu: %v", err)
	}
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██████╗ ██████╗ ██╗   ██╗███╗   ██╗███████╗
██╔══██╗██║   ██║██║     ██╔══██╗██╔══██╗██║   ██║████╗  ██║██╔════╝
███████║██║   ██║██║     ██████╔╝██████╔╝██║   ██║██╔██╗ ██║█████╗
██╔══██║╚██╗ ██╔╝██║     ██╔═══╝ ██╔══██╗██║   ██║██║╚██╗██║██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║     ██║  ██║╚██████╔╝██║ ╚████║███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝╚══════╝
AVL tree playground with cyclic pruning [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the menu UI: insert, generate, print, delete, search and prune`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runMenu()
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Line-oriented shell reading commands from stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell reads one command per line, e.g. 'insert 10 20 30', 'prune', 'print'. Type 'help' for the list."),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, closer := loadRuntime()
			defer closer.Close()

			interactive := isatty.IsTerminal(os.Stdin.Fd())
			noPrompt, _ := cmd.Flags().GetBool("no-prompt")

			session := NewSession(config, os.Stdout)
			if interactive {
				session.EnableProgress()
			}
			shell := NewShell(session, os.Stdin, os.Stdout, interactive && !noPrompt)
			if err := shell.Run(); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}
	cmdShell.Flags().Bool("no-prompt", false, "do not print a prompt before each command")

	var cmdBrowse = &cobra.Command{
		Use:   "browse [keys...]",
		Short: "Browse a tree in a collapsible view",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Browse builds a tree from the given keys, or from random keys when none are given, and shows it as a collapsible tree"),
		Run: func(cmd *cobra.Command, args []string) {
			config, closer := loadRuntime()
			defer closer.Close()

			session := NewSession(config, io.Discard)
			if len(args) > 0 {
				keys, err := parseKeys(args)
				if err != nil {
					log.Fatalf("Error parsing keys: %v", err)
				}
				session.Insert(keys...)
			} else {
				count, _ := cmd.Flags().GetInt("count")
				if count <= 0 {
					count = config.Generator.Count
				}
				if err := session.Generate(count); err != nil {
					log.Fatalf("Error generating keys: %v", err)
				}
			}

			if prune, _ := cmd.Flags().GetBool("prune"); prune {
				session.Tree().PruneCycles(nil)
			}

			if err := runBrowser(session.Tree()); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}
	cmdBrowse.Flags().Int("count", 0, "number of random keys when no keys are given (default from config)")
	cmdBrowse.Flags().Bool("prune", false, "run the cyclic pruner before browsing")

	var cmdVerify = &cobra.Command{
		Use:   "verify",
		Short: "Stress the tree with random operations and check its invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Verify applies random inserts and deletes, validating ordering, balance and heights after every step"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, closer := loadRuntime()
			defer closer.Close()

			var opts VerifyOptions
			opts.Rounds, _ = cmd.Flags().GetInt("rounds")
			opts.Ops, _ = cmd.Flags().GetInt("ops")
			opts.Span, _ = cmd.Flags().GetInt("span")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
			opts.Prune, _ = cmd.Flags().GetBool("prune")

			var progress io.Writer = os.Stderr
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				progress = nil
			}

			result, err := runVerify(opts, progress)
			if err != nil {
				log.Fatalf("%s❌ Verification failed:%s %v", Error, Reset, err)
			}
			fmt.Printf("\n✅ %s%d operations verified%s, max height %d, %d prune passes\n",
				Green, result.Operations, Reset, result.MaxHeight, result.PruneBatches)
		},
	}
	cmdVerify.Flags().Int("rounds", 20, "independent trees to build")
	cmdVerify.Flags().Int("ops", 2000, "operations per round")
	cmdVerify.Flags().Int("span", 500, "keys are drawn from [0, span)")
	cmdVerify.Flags().Int64("seed", 0, "random seed (0 seeds from the clock)")
	cmdVerify.Flags().Bool("prune", true, "prune each tree at the end of its round")
	cmdVerify.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlprune usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlprune CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show settings, creating the default config file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlprune version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlprune",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the menu when no subcommand is provided
			runMenu()
		},
	}
	rootCmd.AddCommand(cmdRun, cmdShell, cmdBrowse, cmdVerify, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
