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

import "github.com/sirupsen/logrus"

// PruneBatch describes one pass of PruneCycles. Tree is the tree as it stands
// after the pass; it must not be mutated by the observer.
type PruneBatch struct {
	Index   int   // 1-based pass number
	Deleted []int // keys removed in this pass, in deletion order
	Tree    *Tree
}

// PruneReport summarizes a PruneCycles run.
type PruneReport struct {
	Batches int
	Removed int
}

// PruneCycles repeatedly removes every other node of the level-order listing
// (positions 0, 2, 4, ... so the root always goes) until the root has no left
// child or the tree is empty. observe, if not nil, is called after every pass.
//
// Keys rather than nodes are captured for each pass: rotations and successor
// copies move keys between nodes, but a key stays a valid handle for Delete.
func (tree *Tree) PruneCycles(observe func(PruneBatch)) PruneReport {
	var report PruneReport

	for tree.root != nil && tree.root.left != nil {
		listing := tree.LevelOrder()

		selected := make([]int, 0, (len(listing)+1)/2)
		for i := 0; i < len(listing); i += 2 {
			selected = append(selected, listing[i])
		}

		for _, key := range selected {
			tree.Delete(key)
		}

		report.Batches++
		report.Removed += len(selected)

		if Log.IsLevelEnabled(logrus.DebugLevel) {
			Log.WithFields(logrus.Fields{
				"batch":   report.Batches,
				"deleted": selected,
				"size":    tree.size,
				"height":  tree.Height(),
			}).Debug("prune pass complete")
		}

		if observe != nil {
			observe(PruneBatch{Index: report.Batches, Deleted: selected, Tree: tree})
		}
	}

	return report
}
