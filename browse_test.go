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
	"strings"
	"testing"

	"github.com/cybrota/avlprune/avl"
)

func TestBuildTreeNodes(t *testing.T) {
	tree := avl.New()
	for k := 1; k <= 7; k++ {
		tree.Insert(k)
	}

	nodes := buildTreeNodes(tree.Root(), 1)
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes; want 1", len(nodes))
	}

	root := nodes[0]
	if got := root.Value.String(); got != "root 4  (h=3, bf=+0)" {
		t.Errorf("root label = %q", got)
	}
	if !root.Expanded {
		t.Errorf("root should start expanded")
	}
	if len(root.Nodes) != 2 {
		t.Fatalf("root has %d children; want 2", len(root.Nodes))
	}

	left, right := root.Nodes[0], root.Nodes[1]
	if got := left.Value.String(); got != "L 2  (h=2, bf=+0)" {
		t.Errorf("left label = %q", got)
	}
	if got := right.Value.String(); got != "R 6  (h=2, bf=+0)" {
		t.Errorf("right label = %q", got)
	}
	if left.Expanded || right.Expanded {
		t.Errorf("second level should start collapsed")
	}
	if len(left.Nodes) != 2 || len(left.Nodes[0].Nodes) != 0 {
		t.Errorf("unexpected shape under the left child")
	}
}

func TestBuildTreeNodesLeaning(t *testing.T) {
	tree := avl.New()
	tree.Insert(1)
	tree.Insert(2)

	nodes := buildTreeNodes(tree.Root(), 0)
	root := nodes[0]
	if got := root.Value.String(); got != "root 1  (h=2, bf=-1)" {
		t.Errorf("root label = %q", got)
	}
	if len(root.Nodes) != 1 || !strings.HasPrefix(root.Nodes[0].Value.String(), "R 2") {
		t.Errorf("single right child not rendered with side R")
	}
}

func TestBuildTreeNodesEmpty(t *testing.T) {
	if nodes := buildTreeNodes(nil, 3); nodes != nil {
		t.Errorf("empty tree produced %d nodes", len(nodes))
	}
}

func TestBrowseSummary(t *testing.T) {
	tree := avl.New()
	tree.Insert(3)
	if got := browseSummary(tree); !strings.HasPrefix(got, "keys: 1   height: 1\n") {
		t.Errorf("summary = %q", got)
	}
}
