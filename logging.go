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
	"os"

	"github.com/cybrota/avlprune/avl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// logger is shared with the avl package so rotations, pruning passes and
// driver events land in one place.
var logger = avl.Log

// setupLogging points the shared logger at the configured file. With no file
// configured all log output is discarded, since stderr belongs to the UI.
// The returned closer releases the file and is never nil.
func setupLogging(cfg LoggingConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return io.NopCloser(nil), errors.Wrapf(ErrInvalidConfig, "logging level %q", cfg.Level)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return io.NopCloser(nil), errors.Wrapf(err, "failed to open log file %s", cfg.File)
	}
	logger.SetOutput(f)
	return f, nil
}
