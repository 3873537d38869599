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
	"bytes"
	"strings"
	"testing"
)

func runScript(t *testing.T, script string) (*Session, string) {
	t.Helper()
	config := defaults()
	config.Generator.Seed = 1

	var out bytes.Buffer
	session := NewSession(config, &out)
	shell := NewShell(session, strings.NewReader(script), &out, false)
	if err := shell.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return session, out.String()
}

func TestShellScript(t *testing.T) {
	script := `insert 10 20 30
search 30
search 99
print
delete 20 20
prune
inorder
quit
insert 1
`
	session, out := runScript(t, script)

	for _, want := range []string{
		"Key 30 added to the tree.\n",
		"Key 30 found. Steps: 1\n",
		"Key 99 not found in the tree.\n",
		"Tree:\n└── 20\n    ├── 10\n    └── 30\n",
		"Key 20 removed from the tree.\nKey 20 is not in the tree.\n",
		"Tree after removing alternating nodes (pass 1, removed [30]):\n└── 10\n",
		"10\nBye.\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, out)
		}
	}

	if session.Tree().Contains(1) {
		t.Errorf("commands after quit must not run")
	}
}

func TestShellMenuNumbers(t *testing.T) {
	session, out := runScript(t, "1 5 3 8\n5 8\n2 4\n7\n")

	if got := session.Tree().Len(); got != 7 {
		t.Errorf("tree size = %d; want 7", got)
	}
	if !strings.Contains(out, "Key 8 found. Steps: 1\n") {
		t.Errorf("menu search missing from output:\n%s", out)
	}
	if !strings.Contains(out, "4 unique random keys added to the tree.\n") {
		t.Errorf("menu generate missing from output:\n%s", out)
	}
}

func TestShellErrorsKeepRunning(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"bogus", "unknown command"},
		{"insert", "invalid key"},
		{"insert x", "invalid key"},
		{"search 1 2", "invalid key"},
		{"gen -3", "invalid count"},
		{"gen 1000", "key range exhausted"},
		{`insert "unterminated`, "unknown command"},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			session, out := runScript(t, tc.line+"\ninsert 1\n")
			if !strings.Contains(out, "Error: ") || !strings.Contains(out, tc.want) {
				t.Errorf("output %q does not report %q", out, tc.want)
			}
			if !session.Tree().Contains(1) {
				t.Errorf("shell stopped after an error")
			}
		})
	}
}

func TestShellIgnoresBlankLinesAndHandlesMissingNewline(t *testing.T) {
	session, _ := runScript(t, "\n   \ninsert 4")
	if !session.Tree().Contains(4) {
		t.Errorf("last line without newline was not executed")
	}
}

func TestShellPrompt(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(defaults(), &out)
	shell := NewShell(session, strings.NewReader("quit\n"), &out, true)
	if err := shell.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(out.String(), shellPrompt) {
		t.Errorf("output %q does not start with the prompt", out.String())
	}
}
