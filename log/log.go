// Copyright 2024 The Lumina Authors
// This file is part of the lumina library.
//
// The lumina library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lumina library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lumina library. If not, see <http://www.gnu.org/licenses/>.

// Package log is the call-site API the rest of the core logs through:
// Info/Warn/Error/Crit, each taking a message followed by alternating
// key/value pairs. It is backed by log15's term-aware handler, the same
// structured logger wired through a production node's components.
package log

import (
	"os"

	"github.com/inconshreveable/log15"
)

var root = log15.New()

func init() {
	root.SetHandler(log15.StreamHandler(os.Stderr, log15.TerminalFormat()))
}

// SetHandler replaces the package-level handler, for embedding this core in
// a larger process with its own structured-logging sink.
func SetHandler(h log15.Handler) { root.SetHandler(h) }

func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }

// Crit logs at critical level and terminates the process. Persistence and
// integrity errors (storage failures, serialization divergence, hash
// mismatches) are fatal and must never be swallowed; Crit is the single
// call site the block-assembly loop uses for those.
func Crit(msg string, ctx ...interface{}) {
	root.Crit(msg, ctx...)
	os.Exit(1)
}
