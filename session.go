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
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avlprune/avl"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Generating at least this many keys shows a progress bar.
const generateProgressThreshold = 5000

// Session owns one tree and carries out the menu actions against it, writing
// user-facing messages to out. Every front end (menu UI, shell) drives a
// Session; none of them touch the tree directly.
type Session struct {
	tree   *avl.Tree
	cache  *cache.Cache
	gen    *KeyGenerator
	config *Config
	out    io.Writer

	progress bool // draw a progress bar for large generate runs
}

func NewSession(config *Config, out io.Writer) *Session {
	return &Session{
		tree:   avl.New(),
		cache:  NewRenderCache(config.CacheTTLDuration()),
		gen:    NewKeyGenerator(config.Generator),
		config: config,
		out:    out,
	}
}

func (s *Session) Tree() *avl.Tree { return s.tree }

// SetOutput redirects user-facing messages.
func (s *Session) SetOutput(out io.Writer) { s.out = out }

// EnableProgress turns on the progress bar for large generate runs. Only
// worth it when out is a terminal.
func (s *Session) EnableProgress() { s.progress = true }

// parseKey parses a key argument.
func parseKey(arg string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidKey, "%q", arg)
	}
	return k, nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := parseKey(a)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *Session) Insert(keys ...int) {
	for _, k := range keys {
		if s.tree.Insert(k) {
			fmt.Fprintf(s.out, "Key %d added to the tree.\n", k)
		} else {
			fmt.Fprintf(s.out, "Key %d is already in the tree.\n", k)
		}
	}
	logger.WithFields(logrus.Fields{"keys": keys, "size": s.tree.Len()}).Info("insert")
}

// Generate adds count random keys that are not in the tree yet.
func (s *Session) Generate(count int) error {
	keys, err := s.gen.Generate(s.tree, count)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if s.progress && count >= generateProgressThreshold {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetWriter(s.out),
			progressbar.OptionSetDescription("🎲 Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, k := range keys {
		s.tree.Insert(k)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Fprintf(s.out, "%d unique random keys added to the tree.\n", len(keys))
	logger.WithFields(logrus.Fields{"count": len(keys), "size": s.tree.Len()}).Info("generate")
	return nil
}

// Render returns the hierarchical rendering of the tree, or a placeholder
// for an empty tree.
func (s *Session) Render() string {
	if s.tree.Len() == 0 {
		return "(empty tree)\n"
	}
	return GetOrFillRendering(s.cache, s.tree)
}

func (s *Session) Print() {
	fmt.Fprintln(s.out, "Tree:")
	fmt.Fprint(s.out, s.Render())
}

func (s *Session) Delete(keys ...int) {
	for _, k := range keys {
		if s.tree.Delete(k) {
			fmt.Fprintf(s.out, "Key %d removed from the tree.\n", k)
		} else {
			fmt.Fprintf(s.out, "Key %d is not in the tree.\n", k)
		}
	}
	logger.WithFields(logrus.Fields{"keys": keys, "size": s.tree.Len()}).Info("delete")
}

// Search reports the number of steps the descent took. The menu calls this
// a breadth-first walk; the lookup itself follows a single path.
func (s *Session) Search(key int) bool {
	found, steps := s.tree.Search(key)
	if !found {
		fmt.Fprintf(s.out, "Key %d not found in the tree.\n", key)
		return false
	}
	fmt.Fprintf(s.out, "Key %d found. Steps: %d\n", key, steps)
	return true
}

// Prune runs the cyclic pruner, printing the tree after each pass.
func (s *Session) Prune() avl.PruneReport {
	fmt.Fprintln(s.out, "Cyclic removal of alternating nodes...")

	report := s.tree.PruneCycles(func(b avl.PruneBatch) {
		fmt.Fprintf(s.out, "Tree after removing alternating nodes (pass %d, removed %v):\n", b.Index, b.Deleted)
		fmt.Fprint(s.out, s.Render())
	})

	if report.Batches == 0 {
		fmt.Fprintln(s.out, "Nothing to prune: the root has no left child.")
	}
	logger.WithFields(logrus.Fields{
		"batches": report.Batches,
		"removed": report.Removed,
		"size":    s.tree.Len(),
	}).Info("prune")
	return report
}

func (s *Session) InOrder() {
	fmt.Fprintln(s.out, formatKeys(s.tree.InOrder()))
}

func (s *Session) Levels() {
	fmt.Fprintln(s.out, formatKeys(s.tree.LevelOrder()))
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
