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

import "github.com/pkg/errors"

// ErrInvariant is wrapped by every error returned from Validate.
var ErrInvariant = errors.New("avl invariant violated")

// Validate checks ordering, balance, cached heights and the cached size of
// tree. It returns an error describing the first violation found, or nil.
func Validate(tree *Tree) error {
	count, err := validateNode(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return errors.Wrapf(ErrInvariant, "size is %d, counted %d nodes", tree.size, count)
	}
	return nil
}

// validateNode checks the subtree at node, whose keys must lie strictly
// between the non-nil bounds.
func validateNode(node *Node, low, high *int) (int, error) {
	if node == nil {
		return 0, nil
	}

	if low != nil && node.key <= *low {
		return 0, errors.Wrapf(ErrInvariant, "key %d is not greater than ancestor %d", node.key, *low)
	}
	if high != nil && node.key >= *high {
		return 0, errors.Wrapf(ErrInvariant, "key %d is not less than ancestor %d", node.key, *high)
	}

	left, err := validateNode(node.left, low, &node.key)
	if err != nil {
		return 0, err
	}
	right, err := validateNode(node.right, &node.key, high)
	if err != nil {
		return 0, err
	}

	if want := max(height(node.left), height(node.right)) + 1; node.height != want {
		return 0, errors.Wrapf(ErrInvariant, "node %d caches height %d, want %d", node.key, node.height, want)
	}
	if b := balance(node); b > 1 || b < -1 {
		return 0, errors.Wrapf(ErrInvariant, "node %d has balance factor %d", node.key, b)
	}

	return left + right + 1, nil
}
