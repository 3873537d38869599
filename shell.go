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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

const shellPrompt = "avlprune> "

// menuVerbs maps the numbered menu choices to shell verbs.
var menuVerbs = map[string]string{
	"1": "insert",
	"2": "gen",
	"3": "print",
	"4": "delete",
	"5": "search",
	"6": "prune",
	"7": "quit",
}

const shellHelp = `Commands (menu numbers work too):
  1 | insert K [K...]   insert keys
  2 | gen [N]           add N unique random keys (default from config)
  3 | print             print the tree
  4 | delete K [K...]   delete keys
  5 | search K          search with step count (breadth-first walk)
  6 | prune             cyclic removal of alternating nodes
  inorder             keys in ascending order
  levels              keys in level order
  help                this text
  7 | quit            exit
`

// Shell is a line-oriented front end over a Session, for scripts and
// terminals where the menu UI is not wanted.
type Shell struct {
	session *Session
	in      *bufio.Reader
	out     io.Writer
	prompt  bool
}

func NewShell(session *Session, in io.Reader, out io.Writer, prompt bool) *Shell {
	return &Shell{
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
		prompt:  prompt,
	}
}

// Run reads commands until quit or end of input. Command errors are printed
// and the loop continues.
func (sh *Shell) Run() error {
	for {
		if sh.prompt {
			fmt.Fprint(sh.out, shellPrompt)
		}
		line, err := sh.in.ReadString('\n')
		if line != "" {
			quit, cmdErr := sh.handleCommand(line)
			if cmdErr != nil {
				fmt.Fprintf(sh.out, "Error: %v\n", cmdErr)
			}
			if quit {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read command")
		}
	}
}

// handleCommand executes one input line and reports whether the shell
// should stop.
func (sh *Shell) handleCommand(line string) (bool, error) {
	args, err := shellwords.Parse(strings.TrimSpace(line))
	if err != nil {
		return false, errors.Wrapf(ErrUnknownCommand, "cannot parse %q: %v", line, err)
	}
	if len(args) == 0 {
		return false, nil
	}

	verb := strings.ToLower(args[0])
	if v, ok := menuVerbs[verb]; ok {
		verb = v
	}
	args = args[1:]

	switch verb {
	case "insert", "add":
		keys, err := sh.keyArgs(verb, args)
		if err != nil {
			return false, err
		}
		sh.session.Insert(keys...)
	case "gen", "generate":
		count := sh.session.config.Generator.Count
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return false, errors.Wrapf(ErrInvalidCount, "%q", args[0])
			}
			count = n
		}
		if err := sh.session.Generate(count); err != nil {
			return false, err
		}
	case "print", "show":
		sh.session.Print()
	case "delete", "del", "rm":
		keys, err := sh.keyArgs(verb, args)
		if err != nil {
			return false, err
		}
		sh.session.Delete(keys...)
	case "search", "find":
		if len(args) != 1 {
			return false, errors.Wrap(ErrInvalidKey, "search takes exactly one key")
		}
		key, err := parseKey(args[0])
		if err != nil {
			return false, err
		}
		sh.session.Search(key)
	case "prune":
		sh.session.Prune()
	case "inorder":
		sh.session.InOrder()
	case "levels":
		sh.session.Levels()
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
	case "quit", "exit":
		fmt.Fprintln(sh.out, "Bye.")
		return true, nil
	default:
		return false, errors.Wrapf(ErrUnknownCommand, "%q (try 'help')", args0(line))
	}

	return false, nil
}

func (sh *Shell) keyArgs(verb string, args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.Wrapf(ErrInvalidKey, "%s needs at least one key", verb)
	}
	return parseKeys(args)
}

func args0(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
