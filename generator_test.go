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
	"testing"

	"github.com/cybrota/avlprune/avl"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueKeysInRange(t *testing.T) {
	gen := NewKeyGenerator(GeneratorConfig{Min: 0, Max: 100, Seed: 1})
	tree := avl.New()
	for _, k := range []int{3, 50, 99} {
		tree.Insert(k)
	}

	keys, err := gen.Generate(tree, 10)
	require.NoError(t, err)
	require.Len(t, keys, 10)

	seen := map[int]bool{}
	for _, k := range keys {
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 100)
		require.False(t, seen[k], "duplicate key %d", k)
		require.False(t, tree.Contains(k), "key %d already in tree", k)
		seen[k] = true
	}
}

func TestGenerateWholeRange(t *testing.T) {
	gen := NewKeyGenerator(GeneratorConfig{Min: -5, Max: 5, Seed: 2})
	tree := avl.New()
	tree.Insert(0)

	keys, err := gen.Generate(tree, 9)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{-5, -4, -3, -2, -1, 1, 2, 3, 4}, keys)
}

func TestGenerateRangeExhausted(t *testing.T) {
	gen := NewKeyGenerator(GeneratorConfig{Min: 0, Max: 4, Seed: 3})
	tree := avl.New()
	tree.Insert(1)

	_, err := gen.Generate(tree, 4)
	require.True(t, errors.Is(err, ErrRangeExhausted), "got %v", err)
}

func TestGenerateInvalidCount(t *testing.T) {
	gen := NewKeyGenerator(defaultConfig.Generator)
	_, err := gen.Generate(avl.New(), 0)
	require.True(t, errors.Is(err, ErrInvalidCount), "got %v", err)
}

func TestGenerateSampledFromWideRange(t *testing.T) {
	// wide enough that the bloom-filtered sampler is used
	gen := NewKeyGenerator(GeneratorConfig{Min: 0, Max: 1 << 30, Seed: 4})
	tree := avl.New()

	keys, err := gen.Generate(tree, 2000)
	require.NoError(t, err)

	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		_, dup := seen[k]
		require.False(t, dup, "duplicate key %d", k)
		seen[k] = struct{}{}
	}
	require.Len(t, seen, 2000)
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a, err := NewKeyGenerator(GeneratorConfig{Min: 0, Max: 1000, Seed: 5}).Generate(avl.New(), 20)
	require.NoError(t, err)
	b, err := NewKeyGenerator(GeneratorConfig{Min: 0, Max: 1000, Seed: 5}).Generate(avl.New(), 20)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
