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

//go:build goexperiment.arenas

package btree

import "arena"

// ArenaAllocator is an allocator backed by a single Go arena: every node
// the tree ever requests is carved out of the same arena block and freed
// all at once when the arena is freed, instead of individually by the
// garbage collector. This is the closest Go analogue to a raw byte
// allocator, and is adapted directly from this module's own
// experimental arena support (google/btree's btree_arenas.go), which used
// the same build tag to deep-copy a *node[T] into an arena.
//
// release is a no-op: arena-backed nodes are reclaimed in bulk by Close,
// not individually. Calling Close invalidates every node the allocator
// has handed out; only use an ArenaAllocator for a Tree whose lifetime
// you control precisely.
type ArenaAllocator[T any] struct {
	a *arena.Arena
}

// NewArenaAllocator creates an arena-backed allocator.
func NewArenaAllocator[T any]() *ArenaAllocator[T] {
	return &ArenaAllocator[T]{a: arena.NewArena()}
}

// Close frees the underlying arena and every node allocated from it.
func (al *ArenaAllocator[T]) Close() { al.a.Free() }

func (al *ArenaAllocator[T]) newLeaf(parent *node[T], maxCount int) *node[T] {
	n := arena.New[node[T]](al.a)
	n.leaf = true
	n.parent = parent
	n.maxCount = maxCount
	n.values = arena.MakeSlice[T](al.a, maxCount, maxCount)
	return n
}

func (al *ArenaAllocator[T]) newInternal(parent *node[T], maxCount int) *node[T] {
	n := al.newLeaf(parent, maxCount)
	n.leaf = false
	n.children = arena.MakeSlice[*node[T]](al.a, maxCount+1, maxCount+1)
	return n
}

func (al *ArenaAllocator[T]) release(*node[T]) {
	// Reclaimed in bulk by Close; see type doc.
}
