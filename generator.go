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
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cybrota/avlprune/avl"
	"github.com/pkg/errors"
	"github.com/willf/bloom"
)

const (
	bloomFalsePositiveRate = 0.01
	// Ranges up to this size are enumerated and shuffled when most of the
	// free keys are wanted; rejection sampling would stall near the end.
	maxEnumeratedRange = 1 << 20
)

// KeyGenerator draws distinct random keys from the half-open range [min, max).
type KeyGenerator struct {
	min int
	max int
	rng *rand.Rand
}

func NewKeyGenerator(cfg GeneratorConfig) *KeyGenerator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &KeyGenerator{
		min: cfg.Min,
		max: cfg.Max,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *KeyGenerator) span() uint64 {
	return uint64(g.max) - uint64(g.min)
}

// available counts the keys of the range that tree does not hold yet.
func (g *KeyGenerator) available(tree *avl.Tree) uint64 {
	taken := uint64(0)
	for _, k := range tree.InOrder() {
		if k >= g.min && k < g.max {
			taken++
		}
	}
	return g.span() - taken
}

// Generate returns count distinct keys from the range, none of which is
// already in tree. It fails with ErrRangeExhausted instead of searching
// forever when the range cannot supply that many.
func (g *KeyGenerator) Generate(tree *avl.Tree, count int) ([]int, error) {
	if count <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "%d", count)
	}

	free := g.available(tree)
	if uint64(count) > free {
		return nil, errors.Wrapf(ErrRangeExhausted, "%d keys requested, %d free in [%d, %d)", count, free, g.min, g.max)
	}

	if g.span() <= maxEnumeratedRange && uint64(count)*2 > free {
		return g.shuffled(tree, count), nil
	}
	return g.sampled(tree, count), nil
}

func (g *KeyGenerator) shuffled(tree *avl.Tree, count int) []int {
	keys := make([]int, 0, g.span())
	for k := g.min; k < g.max; k++ {
		if !tree.Contains(k) {
			keys = append(keys, k)
		}
	}
	g.rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys[:count]
}

// sampled draws until it has count new keys. The bloom filter answers most
// "seen already?" questions; only its positives fall through to the exact set.
func (g *KeyGenerator) sampled(tree *avl.Tree, count int) []int {
	filter := bloom.NewWithEstimates(uint(count), bloomFalsePositiveRate)
	seen := make(map[int]struct{}, count)
	keys := make([]int, 0, count)
	buf := make([]byte, 8)

	for len(keys) < count {
		k := g.min + int(g.draw())
		binary.BigEndian.PutUint64(buf, uint64(k))

		if filter.Test(buf) {
			if _, dup := seen[k]; dup {
				continue
			}
		}
		if tree.Contains(k) {
			continue
		}

		filter.Add(buf)
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func (g *KeyGenerator) draw() uint64 {
	span := g.span()
	if span <= 1<<63-1 {
		return uint64(g.rng.Int63n(int64(span)))
	}
	// spans wider than int64 only come from ranges crossing most of int
	for {
		if v := g.rng.Uint64(); v < span {
			return v
		}
	}
}
