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

// Entry is a key/value pair as stored by Map and MultiMap. Iterating a
// Map/MultiMap's underlying Tree yields these directly.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Map is a Tree of Entry values ordered by Key alone, holding at most one
// entry per key — the Go analogue of the source's btree_map, a
// btree_unique_container over entries instead of bare keys.
type Map[K, V any] struct {
	t *Tree[Entry[K, V]]
}

// NewMap builds an empty Map ordered by keyLess.
func NewMap[K, V any](keyLess LessFunc[K], opts ...Option[Entry[K, V]]) *Map[K, V] {
	entryLess := func(a, b Entry[K, V]) bool { return keyLess(a.Key, b.Key) }
	return &Map[K, V]{t: New(entryLess, opts...)}
}

// NewOrderedMap builds an empty Map over a built-in ordered key type.
func NewOrderedMap[K Ordered, V any](opts ...Option[Entry[K, V]]) *Map[K, V] {
	cmp := Compare[K]()
	entryCmp := func(a, b Entry[K, V]) int { return cmp(a.Key, b.Key) }
	return &Map[K, V]{t: newTree(newCompareComparator(entryCmp), true, opts)}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Empty() }

// Get returns the value stored under key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it, ok := m.t.FindUnique(Entry[K, V]{Key: key})
	if !ok {
		var zero V
		return zero, false
	}
	return it.Value().Val, true
}

// Set stores val under key, overwriting any existing value for that key,
// and reports whether the key is new.
func (m *Map[K, V]) Set(key K, val V) bool {
	it, inserted := m.t.InsertUnique(Entry[K, V]{Key: key, Val: val})
	if !inserted {
		it.SetValue(Entry[K, V]{Key: key, Val: val})
	}
	return inserted
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.t.EraseUnique(Entry[K, V]{Key: key}) > 0
}

// Begin returns an iterator at the entry with the smallest key.
func (m *Map[K, V]) Begin() Iterator[Entry[K, V]] { return m.t.Begin() }

// End returns the one-past-the-end iterator.
func (m *Map[K, V]) End() Iterator[Entry[K, V]] { return m.t.End() }

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Verify runs Tree.Verify on the underlying tree.
func (m *Map[K, V]) Verify() error { return m.t.Verify() }
