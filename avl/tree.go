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

// Package avl implements an ordered set of unique integer keys kept in a
// height-balanced binary search tree, together with a cyclic pruning routine
// that removes alternating nodes in level order.
//
// A Tree is not safe for concurrent use.
package avl

import "github.com/sirupsen/logrus"

// Tree holds the root of an AVL tree of unique int keys.
type Tree struct {
	root     *Node
	size     int
	revision uint64
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: nil}
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node { return tree.root }

// Len returns the number of keys in the tree.
func (tree *Tree) Len() int { return tree.size }

// Height returns the height of the tree; 0 when empty.
func (tree *Tree) Height() int { return height(tree.root) }

// Revision changes every time the key set changes. Callers can use it to
// invalidate anything derived from the tree's shape.
func (tree *Tree) Revision() uint64 { return tree.revision }

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight(node *Node) {
	node.height = max(height(node.left), height(node.right)) + 1
}

func balance(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// rotateLeft requires node.right != nil.
func rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// child first, the pivot's height depends on it
	updateHeight(node)
	updateHeight(pivot)

	traceRotation("left", node.key, pivot.key)
	return pivot
}

// rotateRight requires node.left != nil.
func rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	traceRotation("right", node.key, pivot.key)
	return pivot
}

func traceRotation(op string, from, pivot int) {
	if !Log.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	Log.WithFields(logrus.Fields{
		"op":    op,
		"from":  from,
		"pivot": pivot,
	}).Trace("rotate")
}

// Insert adds key to the tree and reports whether it was added. Inserting a
// key that is already present leaves the tree untouched.
func (tree *Tree) Insert(key int) bool {
	var added bool
	tree.root = insertRecursive(tree.root, key, &added)
	if added {
		tree.size++
		tree.revision++
	}
	return added
}

func insertRecursive(node *Node, key int, added *bool) *Node {
	if node == nil {
		*added = true
		return &Node{key: key, height: 1}
	}

	if key < node.key {
		node.left = insertRecursive(node.left, key, added)
	} else if key > node.key {
		node.right = insertRecursive(node.right, key, added)
	} else {
		return node
	}

	updateHeight(node)

	// Only one grandchild grew, so the inserted key picks the case.
	balanceFactor := balance(node)
	if balanceFactor > 1 {
		if key < node.left.key {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	} else if balanceFactor < -1 {
		if key > node.right.key {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// Delete removes key from the tree and reports whether it was present.
func (tree *Tree) Delete(key int) bool {
	var removed bool
	tree.root = deleteRecursive(tree.root, key, &removed)
	if removed {
		tree.size--
		tree.revision++
	}
	return removed
}

func deleteRecursive(node *Node, key int, removed *bool) *Node {
	if node == nil {
		return nil // Key not found
	}

	if key < node.key {
		node.left = deleteRecursive(node.left, key, removed)
	} else if key > node.key {
		node.right = deleteRecursive(node.right, key, removed)
	} else {
		// At most one child: the child takes this node's place.
		if node.left == nil {
			*removed = true
			return node.right
		}
		if node.right == nil {
			*removed = true
			return node.left
		}
		// Two children: reuse this node for the in-order successor's key and
		// splice the successor out of the right subtree instead.
		successor := findMin(node.right)
		node.key = successor.key
		node.right = deleteRecursive(node.right, successor.key, removed)
	}

	updateHeight(node)
	return rebalance(node)
}

func findMin(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

func rebalance(node *Node) *Node {
	balanceFactor := balance(node)

	// Left-heavy
	if balanceFactor > 1 {
		if balance(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if balance(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// Search walks the single root-to-key path. steps is the number of edges
// followed, which equals the depth of key when found. When the key is
// absent found is false and steps is 0.
func (tree *Tree) Search(key int) (found bool, steps int) {
	node := tree.root
	for node != nil {
		if key == node.key {
			return true, steps
		}
		if key < node.key {
			node = node.left
		} else {
			node = node.right
		}
		steps++
	}
	return false, 0
}

// Contains reports whether key is in the tree.
func (tree *Tree) Contains(key int) bool {
	found, _ := tree.Search(key)
	return found
}
