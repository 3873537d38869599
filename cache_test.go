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
	"time"

	"github.com/cybrota/avlprune/avl"
	"github.com/patrickmn/go-cache"
)

func TestCacheRenderingAndGetRendering(t *testing.T) {
	c := NewRenderCache(time.Minute)
	key := "rev:1"
	text := "└── 1\n"

	// Initially, GetRendering should miss.
	if got, ok := GetRendering(c, key); ok {
		t.Errorf("GetRendering(%q) = %q; want miss", key, got)
	}

	CacheRendering(c, key, text)

	if got, ok := GetRendering(c, key); !ok || got != text {
		t.Errorf("GetRendering(%q) = %q, %v; want %q", key, got, ok, text)
	}
}

func TestGetOrFillRenderingFollowsRevision(t *testing.T) {
	c := NewRenderCache(time.Minute)
	tree := avl.New()
	tree.Insert(1)

	first := GetOrFillRendering(c, tree)
	if first != "└── 1\n" {
		t.Fatalf("first rendering = %q", first)
	}
	if c.ItemCount() != 1 {
		t.Errorf("ItemCount() = %d; want 1", c.ItemCount())
	}

	// Same revision: served from cache.
	if got := GetOrFillRendering(c, tree); got != first {
		t.Errorf("cached rendering = %q; want %q", got, first)
	}

	tree.Insert(2)
	want := "└── 1\n    └── 2\n"
	if got := GetOrFillRendering(c, tree); got != want {
		t.Errorf("rendering after insert = %q; want %q", got, want)
	}
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount() = %d; want 2", c.ItemCount())
	}
}

func TestRenderingExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheRendering(c, "rev:9", "text")

	if _, ok := GetRendering(c, "rev:9"); !ok {
		t.Errorf("rendering should be cached immediately after CacheRendering")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRendering(c, "rev:9"); ok {
		t.Errorf("After expiration, GetRendering = %q; want miss", got)
	}
}
