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

import "github.com/pkg/errors"

// Input errors
var (
	// ErrInvalidKey indicates that a key argument is not a base-10 integer.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidCount indicates that a generator count is not a positive integer.
	ErrInvalidCount = errors.New("invalid count")

	// ErrUnknownCommand indicates that a shell verb or menu choice is not recognised.
	ErrUnknownCommand = errors.New("unknown command")
)

// Generator errors
var (
	// ErrRangeExhausted indicates that the configured key range cannot supply
	// the requested number of keys that are not already in the tree.
	ErrRangeExhausted = errors.New("key range exhausted")
)

// Configuration errors
var (
	// ErrInvalidConfig indicates that a loaded configuration is unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
)
