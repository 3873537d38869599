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

package avl

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	branchLeft  = "├── "
	branchRight = "└── "
	indentLeft  = "│   "
	indentRight = "    "
)

// Fprint writes a hierarchical rendering of the tree to w, one key per line.
// The root and every right child get a closing branch, left children an open
// one, and each node lists its left child before its right child:
//
//	└── 20
//	    ├── 10
//	    └── 30
//
// An empty tree writes nothing.
func Fprint(w io.Writer, tree *Tree) error {
	bw := bufio.NewWriter(w)
	printNode(bw, tree.root, "", true)
	return bw.Flush()
}

func printNode(w *bufio.Writer, node *Node, indent string, isRight bool) {
	if node == nil {
		return
	}

	branch, childIndent := branchLeft, indentLeft
	if isRight {
		branch, childIndent = branchRight, indentRight
	}

	w.WriteString(indent)
	w.WriteString(branch)
	w.WriteString(strconv.Itoa(node.key))
	w.WriteByte('\n')

	printNode(w, node.left, indent+childIndent, false)
	printNode(w, node.right, indent+childIndent, true)
}

// String renders the tree the same way as Fprint.
func (tree *Tree) String() string {
	var sb strings.Builder
	Fprint(&sb, tree)
	return sb.String()
}
