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

// Iterator is a bidirectional, in-order cursor over a Tree. Any Insert or
// Delete on the tree — even one touching an element other than what the
// iterator points at — may invalidate it; rebalance and split freely move
// values between sibling nodes. Callers needing a stable reference across
// mutations must re-locate by key afterward. See DESIGN.md.
//
// The zero Iterator is not usable; obtain one from Tree.Begin, Tree.End, or
// a lookup method.
type Iterator[T any] struct {
	node *node[T]
	pos  int
}

// End returns the iterator one-past the last element: (rightmost,
// rightmost.count). It never points at a live value.
func (t *Tree[T]) End() Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{node: t.root.rightmost, pos: t.root.rightmost.count}
}

// Begin returns an iterator at the smallest element, or End() if the tree
// is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	leftmost := t.root.parent
	return Iterator[T]{node: leftmost, pos: 0}
}

// Valid reports whether it points at a live value (false for a zero
// Iterator or an End() iterator).
func (it Iterator[T]) Valid() bool {
	return it.node != nil && it.pos >= 0 && it.pos < it.node.count
}

// Value returns the value the iterator points at. It panics if !Valid().
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		panic("btree: Value called on an iterator that does not point at a value")
	}
	return it.node.values[it.pos]
}

// SetValue overwrites the value the iterator points at in place. Callers
// must not change a value in a way that would move it relative to its
// neighbors in sorted order; Map and MultiMap rely on this to update a
// value without disturbing the key it's ordered by.
func (it Iterator[T]) SetValue(v T) { it.node.setValue(it.pos, v) }

// Equal reports whether it and other denote the same (node,position).
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.pos == other.pos
}

// Next advances the iterator by one position, amortized O(1) and O(log n)
// worst case. Calling Next at End() leaves it at End().
func (it *Iterator[T]) Next() {
	if it.node.leaf {
		if it.pos >= it.node.count {
			return // already at End()
		}
		it.pos++
		if it.pos < it.node.count {
			return
		}
	}
	it.incrementSlow()
}

func (it *Iterator[T]) incrementSlow() {
	if it.node.leaf {
		save := *it
		for it.pos == it.node.count && !it.node.isRoot() {
			it.pos = it.node.position
			it.node = it.node.parent
		}
		if it.pos == it.node.count {
			*it = save
		}
		return
	}
	it.node = it.node.child(it.pos + 1)
	for !it.node.leaf {
		it.node = it.node.child(0)
	}
	it.pos = 0
}

// Prev moves the iterator back by one position, amortized O(1) and O(log
// n) worst case. Calling Prev at Begin() leaves it at Begin().
func (it *Iterator[T]) Prev() {
	if it.node.leaf {
		it.pos--
		if it.pos >= 0 {
			return
		}
	}
	it.decrementSlow()
}

func (it *Iterator[T]) decrementSlow() {
	if it.node.leaf {
		save := *it
		for it.pos < 0 && !it.node.isRoot() {
			it.pos = it.node.position - 1
			it.node = it.node.parent
		}
		if it.pos < 0 {
			// No predecessor: it was at Begin(), so stay there.
			*it = save
			it.pos = 0
		}
		return
	}
	it.node = it.node.child(it.pos)
	for !it.node.leaf {
		it.node = it.node.child(it.node.count)
	}
	it.pos = it.node.count - 1
}

// Advance moves the iterator forward by n positions (n may be negative to
// move backward), reusing the leaf-local fast path of Next/Prev for the
// within-leaf portion of the move so that repeatedly advancing over a
// contiguous range costs O(range length), not O(range length * log n).
func (it *Iterator[T]) Advance(n int) {
	for n < 0 {
		it.Prev()
		n++
	}
	for n > 0 {
		if it.node.leaf {
			rest := it.node.count - it.pos
			step := rest
			if n < step {
				step = n
			}
			it.pos += step
			n -= rest
			if it.pos < it.node.count {
				return
			}
		} else {
			n--
		}
		it.incrementSlow()
	}
}

// Distance returns the number of Next steps needed to go from a to b. It
// assumes a <= b in iteration order (true distance(begin,end) == size()).
func Distance[T any](a, b Iterator[T]) int {
	n := 0
	for !a.Equal(b) {
		a.Next()
		n++
	}
	return n
}
