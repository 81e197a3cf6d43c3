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

// MultiSet is a Tree that may hold several equivalent copies of the same
// key, the multi-key counterpart of Set (mirroring the source's
// btree_multiset over btree_multi_container).
type MultiSet[T any] struct {
	t *Tree[T]
}

// NewMultiSet builds an empty MultiSet ordered by less.
func NewMultiSet[T any](less LessFunc[T], opts ...Option[T]) *MultiSet[T] {
	return &MultiSet[T]{t: New(less, opts...)}
}

// NewOrderedMultiSet builds an empty MultiSet over a built-in ordered type.
func NewOrderedMultiSet[T Ordered](opts ...Option[T]) *MultiSet[T] {
	return &MultiSet[T]{t: NewOrdered(opts...)}
}

// Len returns the number of elements in the multiset, counting duplicates.
func (s *MultiSet[T]) Len() int { return s.t.Len() }

// Empty reports whether the multiset holds no elements.
func (s *MultiSet[T]) Empty() bool { return s.t.Empty() }

// Insert adds v, even if an equivalent value is already present.
func (s *MultiSet[T]) Insert(v T) Iterator[T] { return s.t.InsertMulti(v) }

// Find returns an iterator at the first element equivalent to v, if any.
func (s *MultiSet[T]) Find(v T) (Iterator[T], bool) { return s.t.FindMulti(v) }

// Count reports how many elements are equivalent to v.
func (s *MultiSet[T]) Count(v T) int { return s.t.CountMulti(v) }

// EqualRange returns the [lo,hi) range of every element equivalent to v.
func (s *MultiSet[T]) EqualRange(v T) (Iterator[T], Iterator[T]) { return s.t.EqualRange(v) }

// Erase removes every element equivalent to v, reporting how many.
func (s *MultiSet[T]) Erase(v T) int { return s.t.EraseMulti(v) }

// Begin returns an iterator at the smallest element.
func (s *MultiSet[T]) Begin() Iterator[T] { return s.t.Begin() }

// End returns the one-past-the-end iterator.
func (s *MultiSet[T]) End() Iterator[T] { return s.t.End() }

// Clear removes every element.
func (s *MultiSet[T]) Clear() { s.t.Clear() }

// Verify runs Tree.Verify on the underlying tree.
func (s *MultiSet[T]) Verify() error { return s.t.Verify() }
