// Copyright 2014-2022 Google Inc.
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

package btree

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// DefaultTargetNodeSize is the node size, in bytes, used when no
// WithTargetNodeSize option is given. It mirrors the C++ source's
// kTargetNodeSize default.
const DefaultTargetNodeSize = 256

// nodeOverheadBytes approximates the fixed per-node bookkeeping
// (leaf/position/count/maxCount/parent, plus Go's slice headers) that must
// be subtracted from TargetNodeSize before dividing by the value size. It
// is a constant approximation rather than a real
// unsafe.Sizeof(node[T]{}) measurement because node[T] also carries the
// root-only rightmost/size fields (see DESIGN.md on why this module
// collapses the source's layered field structs into one Go struct); using
// the full struct size would overstate leaf-node overhead.
const nodeOverheadBytes = 48

// Options configures a Tree at construction time. See WithTargetNodeSize,
// WithAllocator and WithLogger.
type Options[T any] struct {
	targetNodeSize int
	alloc          allocator[T]
	logger         *logrus.Logger
	linear         bool
	strict         bool
}

// Option mutates an Options[T] bundle; pass one or more to New/NewOrdered.
type Option[T any] func(*Options[T])

// WithTargetNodeSize overrides DefaultTargetNodeSize. The tree derives its
// per-node value capacity N from this: (targetNodeSize - overhead) /
// sizeof(T), floored at 3.
func WithTargetNodeSize[T any](bytes int) Option[T] {
	return func(o *Options[T]) { o.targetNodeSize = bytes }
}

// WithAllocator overrides the default per-tree FreeList with a shared one,
// or with an ArenaAllocator (alloc_arena.go, built with
// GOEXPERIMENT=arenas). Both satisfy the package's unexported node
// allocation contract, so either can be passed here.
func WithAllocator[T any](a allocator[T]) Option[T] {
	return func(o *Options[T]) { o.alloc = a }
}

// WithLogger attaches a *logrus.Logger that Tree.Verify uses to report
// invariant violations and that Tree.Dump uses, in addition to writing to
// its io.Writer, to emit a structured snapshot entry. Nil disables
// structured diagnostics; this is the default.
func WithLogger[T any](l *logrus.Logger) Option[T] {
	return func(o *Options[T]) { o.logger = l }
}

// WithStrictChecks enables debug-mode assertions for logic violations:
// Erase panics with ErrEmptyTree or ErrIteratorInvalid instead of
// corrupting the tree when handed a bad iterator. Off by default, matching
// the release-build panic-free fast path; turn it on in tests or when an
// iterator's provenance can't be trusted.
func WithStrictChecks[T any]() Option[T] {
	return func(o *Options[T]) { o.strict = true }
}

func newOptions[T any](opts []Option[T]) Options[T] {
	o := Options[T]{targetNodeSize: DefaultTargetNodeSize}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// valueSizeFor returns sizeof(T), the same quantity kValueSize names in the
// original source, with the zero-size-type edge case (T is an empty
// struct{}) floored at 1 so it can still be divided into.
func valueSizeFor[T any]() int {
	var zero T
	valueSize := int(unsafe.Sizeof(zero))
	if valueSize == 0 {
		valueSize = 1
	}
	return valueSize
}

func capacityFor[T any](targetNodeSize int) int {
	n := (targetNodeSize - nodeOverheadBytes) / valueSizeFor[T]()
	if n < 3 {
		n = 3
	}
	return n
}
