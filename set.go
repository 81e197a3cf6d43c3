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

// Set is a Tree holding at most one of each key, a thin facade narrowing
// Tree's unique/multi split to the unique half (mirroring how the source's
// btree_set is just a btree_unique_container wrapping a bare btree).
type Set[T any] struct {
	t *Tree[T]
}

// NewSet builds an empty Set ordered by less.
func NewSet[T any](less LessFunc[T], opts ...Option[T]) *Set[T] {
	return &Set[T]{t: New(less, opts...)}
}

// NewOrderedSet builds an empty Set over a built-in ordered type.
func NewOrderedSet[T Ordered](opts ...Option[T]) *Set[T] {
	return &Set[T]{t: NewOrdered(opts...)}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.t.Len() }

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool { return s.t.Empty() }

// Insert adds v, reporting false if it was already present.
func (s *Set[T]) Insert(v T) (Iterator[T], bool) { return s.t.InsertUnique(v) }

// Find reports whether v is present.
func (s *Set[T]) Find(v T) (Iterator[T], bool) { return s.t.FindUnique(v) }

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.t.FindUnique(v)
	return ok
}

// Erase removes v, reporting how many elements were removed (0 or 1).
func (s *Set[T]) Erase(v T) int { return s.t.EraseUnique(v) }

// Begin returns an iterator at the smallest element.
func (s *Set[T]) Begin() Iterator[T] { return s.t.Begin() }

// End returns the one-past-the-end iterator.
func (s *Set[T]) End() Iterator[T] { return s.t.End() }

// Clear removes every element.
func (s *Set[T]) Clear() { s.t.Clear() }

// Verify runs Tree.Verify on the underlying tree.
func (s *Set[T]) Verify() error { return s.t.Verify() }
