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

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// LevelOrder returns every key breadth-first: the root, then each depth
// level from left to right.
func (tree *Tree) LevelOrder() []int {
	keys := make([]int, 0, tree.size)
	if tree.root == nil {
		return keys
	}

	queue := linkedlistqueue.New()
	queue.Enqueue(tree.root)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		current := v.(*Node)
		keys = append(keys, current.key)

		if current.left != nil {
			queue.Enqueue(current.left)
		}
		if current.right != nil {
			queue.Enqueue(current.right)
		}
	}
	return keys
}

// InOrder returns the keys in ascending order.
func (tree *Tree) InOrder() []int {
	keys := make([]int, 0, tree.size)
	inOrderTraversal(tree.root, &keys)
	return keys
}

func inOrderTraversal(node *Node, result *[]int) {
	if node == nil {
		return
	}
	inOrderTraversal(node.left, result)
	*result = append(*result, node.key)
	inOrderTraversal(node.right, result)
}
