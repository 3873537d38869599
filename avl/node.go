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

// Node is a single cell of the tree. Each node owns its subtrees; there are
// no parent pointers.
type Node struct {
	key    int
	height int // 1 + max(height(left), height(right))
	left   *Node
	right  *Node
}

// Key returns the key stored in the node.
func (n *Node) Key() int { return n.key }

// Height returns the cached height of the subtree rooted at n.
func (n *Node) Height() int { return height(n) }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }
