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
	"io"
	"math/rand"
	"time"

	"github.com/cybrota/avlprune/avl"
	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// VerifyOptions controls a randomized stress run.
type VerifyOptions struct {
	Rounds int   // independent trees to build
	Ops    int   // insert/delete operations per round
	Span   int   // keys are drawn from [0, Span)
	Seed   int64 // 0 seeds from the clock
	Prune  bool  // prune every tree at the end of its round
}

// VerifyResult counts what a stress run exercised.
type VerifyResult struct {
	Operations   int
	PruneBatches int
	MaxHeight    int
}

// runVerify applies random inserts and deletes to an avl.Tree and to a
// btree.BTreeG model, validating the AVL invariants and comparing the key
// sets after every operation.
func runVerify(opts VerifyOptions, progress io.Writer) (VerifyResult, error) {
	var result VerifyResult
	if opts.Rounds <= 0 || opts.Ops <= 0 || opts.Span <= 0 {
		return result, errors.Wrap(ErrInvalidCount, "rounds, ops and span must be positive")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(opts.Rounds*opts.Ops,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🔍 Verifying..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(0),
		)
	}

	for round := 0; round < opts.Rounds; round++ {
		tree := avl.New()
		model := btree.NewOrderedG[int](32)

		for op := 0; op < opts.Ops; op++ {
			key := rng.Intn(opts.Span)
			if rng.Intn(3) == 0 {
				_, had := model.Delete(key)
				if tree.Delete(key) != had {
					return result, errors.Errorf("round %d op %d: delete(%d) disagrees with model", round, op, key)
				}
			} else {
				_, had := model.ReplaceOrInsert(key)
				if tree.Insert(key) == had {
					return result, errors.Errorf("round %d op %d: insert(%d) disagrees with model", round, op, key)
				}
			}

			if err := avl.Validate(tree); err != nil {
				return result, errors.Wrapf(err, "round %d op %d", round, op)
			}
			if tree.Len() != model.Len() {
				return result, errors.Errorf("round %d op %d: size %d, model has %d", round, op, tree.Len(), model.Len())
			}
			result.Operations++
			result.MaxHeight = max(result.MaxHeight, tree.Height())
			if bar != nil {
				bar.Add(1)
			}
		}

		if err := compareWithModel(tree, model); err != nil {
			return result, errors.Wrapf(err, "round %d", round)
		}

		if opts.Prune {
			report := tree.PruneCycles(nil)
			result.PruneBatches += report.Batches
			if err := avl.Validate(tree); err != nil {
				return result, errors.Wrapf(err, "round %d after prune", round)
			}
			if root := tree.Root(); root != nil && root.Left() != nil {
				return result, errors.Errorf("round %d: prune stopped with a left child under the root", round)
			}
		}

		logger.WithFields(logrus.Fields{
			"round":  round,
			"size":   tree.Len(),
			"height": tree.Height(),
		}).Debug("verify round complete")
	}

	if bar != nil {
		bar.Finish()
	}
	return result, nil
}

func compareWithModel(tree *avl.Tree, model *btree.BTreeG[int]) error {
	got := tree.InOrder()
	i := 0
	var mismatch error
	model.Ascend(func(k int) bool {
		if i >= len(got) || got[i] != k {
			mismatch = errors.Errorf("in-order key %d differs from model key %d", i, k)
			return false
		}
		i++
		return true
	})
	if mismatch != nil {
		return mismatch
	}
	if i != len(got) {
		return errors.Errorf("tree has %d keys, model has %d", len(got), i)
	}
	return nil
}
