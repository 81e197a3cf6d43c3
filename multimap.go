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

// MultiMap is a Tree of Entry values ordered by Key alone that may hold
// several entries under the same key, the Go analogue of the source's
// btree_multimap.
type MultiMap[K, V any] struct {
	t *Tree[Entry[K, V]]
}

// NewMultiMap builds an empty MultiMap ordered by keyLess.
func NewMultiMap[K, V any](keyLess LessFunc[K], opts ...Option[Entry[K, V]]) *MultiMap[K, V] {
	entryLess := func(a, b Entry[K, V]) bool { return keyLess(a.Key, b.Key) }
	return &MultiMap[K, V]{t: New(entryLess, opts...)}
}

// NewOrderedMultiMap builds an empty MultiMap over a built-in ordered key
// type.
func NewOrderedMultiMap[K Ordered, V any](opts ...Option[Entry[K, V]]) *MultiMap[K, V] {
	cmp := Compare[K]()
	entryCmp := func(a, b Entry[K, V]) int { return cmp(a.Key, b.Key) }
	return &MultiMap[K, V]{t: newTree(newCompareComparator(entryCmp), true, opts)}
}

// Len returns the number of entries in the multimap.
func (m *MultiMap[K, V]) Len() int { return m.t.Len() }

// Empty reports whether the multimap holds no entries.
func (m *MultiMap[K, V]) Empty() bool { return m.t.Empty() }

// Insert adds val under key, even if key already has one or more values.
func (m *MultiMap[K, V]) Insert(key K, val V) Iterator[Entry[K, V]] {
	return m.t.InsertMulti(Entry[K, V]{Key: key, Val: val})
}

// EqualRange returns the [lo,hi) range of every entry stored under key.
func (m *MultiMap[K, V]) EqualRange(key K) (Iterator[Entry[K, V]], Iterator[Entry[K, V]]) {
	return m.t.EqualRange(Entry[K, V]{Key: key})
}

// Count reports how many entries are stored under key.
func (m *MultiMap[K, V]) Count(key K) int {
	return m.t.CountMulti(Entry[K, V]{Key: key})
}

// Delete removes every entry stored under key, reporting how many.
func (m *MultiMap[K, V]) Delete(key K) int {
	return m.t.EraseMulti(Entry[K, V]{Key: key})
}

// Begin returns an iterator at the entry with the smallest key.
func (m *MultiMap[K, V]) Begin() Iterator[Entry[K, V]] { return m.t.Begin() }

// End returns the one-past-the-end iterator.
func (m *MultiMap[K, V]) End() Iterator[Entry[K, V]] { return m.t.End() }

// Clear removes every entry.
func (m *MultiMap[K, V]) Clear() { m.t.Clear() }

// Verify runs Tree.Verify on the underlying tree.
func (m *MultiMap[K, V]) Verify() error { return m.t.Verify() }
