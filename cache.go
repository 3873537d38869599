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
	"fmt"
	"time"

	"github.com/cybrota/avlprune/avl"
	"github.com/patrickmn/go-cache"
)

// Clean up expired renderings every 5 minutes
const renderCacheCleanup = 5 * time.Minute

// NewRenderCache creates a cache for rendered tree text. Renderings are keyed
// by tree revision, so a stale entry is never served for a changed tree; the
// expiration only bounds memory for long sessions.
func NewRenderCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, renderCacheCleanup)
}

func renderKey(tree *avl.Tree) string {
	return fmt.Sprintf("rev:%d", tree.Revision())
}

func CacheRendering(c *cache.Cache, key string, text string) {
	c.SetDefault(key, text)
}

func GetRendering(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// GetOrFillRendering returns the rendering of tree, computing and caching it
// on a miss.
func GetOrFillRendering(c *cache.Cache, tree *avl.Tree) string {
	key := renderKey(tree)
	if text, ok := GetRendering(c, key); ok {
		return text
	}

	text := tree.String()
	CacheRendering(c, key, text)
	return text
}
