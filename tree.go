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
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Tree is a cache-efficient, in-memory ordered associative container: an
// N-ary search tree where N is chosen, at construction, from the target
// in-memory size of a node rather than fixed at 2 the way a classic
// red-black or AVL tree is. Lookups, insertions and deletions all cost
// O(log n) comparisons, but touch O(log n / log N) cache lines instead of
// O(log n), because each step inspects up to N-1 keys packed into one node
// before descending.
//
// A Tree is not safe for concurrent use. Any Insert or Delete may move
// values between sibling nodes (rebalance) or split/merge nodes, which
// invalidates every Iterator the tree has handed out except the one the
// mutating call itself returns.
type Tree[T any] struct {
	cmp    comparator[T]
	linear bool
	n      int
	alloc  allocator[T]
	root   *node[T]
	logger *logrus.Logger
	strict bool
}

// New builds a Tree ordered by less, using binary search within each node.
func New[T any](less LessFunc[T], opts ...Option[T]) *Tree[T] {
	return newTree(newLessComparator(less), false, opts)
}

// NewCompare builds a Tree ordered by cmp. A three-way comparator lets the
// tree resolve an exact-match lookup and the descent that reaches it in a
// single pass per node instead of the two passes a LessFunc-only tree needs
// (spec's comparator.threeWay).
func NewCompare[T any](cmp CompareFunc[T], opts ...Option[T]) *Tree[T] {
	return newTree(newCompareComparator(cmp), false, opts)
}

// NewOrdered builds a Tree over a built-in ordered type using the three-way
// Compare[T] comparator and opts the tree into linear in-node search, which beats binary search for small
// keys at the node sizes this package targets.
func NewOrdered[T Ordered](opts ...Option[T]) *Tree[T] {
	return newTree(newCompareComparator(Compare[T]()), true, opts)
}

func newTree[T any](cmp comparator[T], linear bool, opts []Option[T]) *Tree[T] {
	o := newOptions(opts)
	n := capacityFor[T](o.targetNodeSize)
	a := o.alloc
	if a == nil {
		a = NewFreeList[T](DefaultFreeListSize)
	}
	return &Tree[T]{cmp: cmp, linear: linear, n: n, alloc: a, logger: o.logger, strict: o.strict}
}

// Len returns the number of values stored in the tree.
func (t *Tree[T]) Len() int {
	if t.root == nil {
		return 0
	}
	if t.root.leaf {
		return t.root.count
	}
	return t.root.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool { return t.root == nil }

// minCount is the minimum number of values a non-root node may hold once
// the tree has grown past its initial doubling-leaf-root phase. A node
// dropping below this after a delete triggers a merge or rebalance.
func (t *Tree[T]) minCount() int { return t.n / 2 }

// matchState reports the result of a fused locate: whether the search
// found an exact match, definitely did not (only possible with a
// three-way comparator), or doesn't know yet (LessFunc-only comparator,
// requiring a follow-up equality check by the caller).
type matchState int

const (
	matchUnknown matchState = iota
	matchFound
	matchNotFound
)

// locate descends from the root toward k, recording the lower-bound
// position at every level, and returns as soon as a three-way comparator
// reports an exact hit partway down, fusing the descent and the
// equality check into a single pass.
func (t *Tree[T]) locate(k T) (Iterator[T], matchState) {
	it := Iterator[T]{node: t.root, pos: 0}
	for {
		pos, exact := it.node.lowerBound(k, t.cmp, t.linear)
		it.pos = pos
		if exact {
			return it, matchFound
		}
		if it.node.leaf {
			break
		}
		it.node = it.node.child(pos)
	}
	if t.cmp.threeWay() {
		return it, matchNotFound
	}
	return it, matchUnknown
}

// internalLast normalizes an iterator sitting at node.count (one past the
// node's last value — not a real position, but where lowerBound/upperBound
// land when every value in the node is less than the search key) by
// walking up the parent chain until it finds a node where the position is
// a live value, or reaches End().
func internalLast[T any](it Iterator[T]) Iterator[T] {
	for it.node != nil && it.pos == it.node.count {
		it.pos = it.node.position
		it.node = it.node.parent
		if it.node.leaf {
			it.node = nil
		}
	}
	return it
}

// internalLowerBound descends by plain lowerBound at every level (ignoring
// any exact-match signal) and normalizes via internalLast, the shape
// LowerBound, UpperBound and InsertMulti's positioning all share.
func (t *Tree[T]) internalLowerBound(k T) Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	it := Iterator[T]{node: t.root, pos: 0}
	for {
		pos, _ := it.node.lowerBound(k, t.cmp, t.linear)
		it.pos = pos
		if it.node.leaf {
			break
		}
		it.node = it.node.child(pos)
	}
	return internalLast(it)
}

func (t *Tree[T]) internalUpperBound(k T) Iterator[T] {
	if t.root == nil {
		return Iterator[T]{}
	}
	it := Iterator[T]{node: t.root, pos: 0}
	for {
		it.pos = it.node.upperBound(k, t.cmp, t.linear)
		if it.node.leaf {
			break
		}
		it.node = it.node.child(it.pos)
	}
	return internalLast(it)
}

// LowerBound returns an iterator at the first value not less than k, or
// End() if every value is less than k.
func (t *Tree[T]) LowerBound(k T) Iterator[T] {
	it := t.internalLowerBound(k)
	if it.node == nil {
		return t.End()
	}
	return it
}

// UpperBound returns an iterator at the first value strictly greater than
// k, or End() if no such value exists.
func (t *Tree[T]) UpperBound(k T) Iterator[T] {
	it := t.internalUpperBound(k)
	if it.node == nil {
		return t.End()
	}
	return it
}

// EqualRange returns [LowerBound(k), UpperBound(k)): every value equivalent
// to k, in order. For a unique tree this range holds at most one value.
func (t *Tree[T]) EqualRange(k T) (Iterator[T], Iterator[T]) {
	return t.LowerBound(k), t.UpperBound(k)
}

// FindUnique looks up k assuming the tree holds at most one value
// equivalent to k (i.e. was built with InsertUnique). It reports false
// without a second comparison when a three-way comparator's locate already
// proved there is no match.
func (t *Tree[T]) FindUnique(k T) (Iterator[T], bool) {
	if t.root == nil {
		return Iterator[T]{}, false
	}
	it, m := t.locate(k)
	if m == matchFound {
		return internalLast(it), true
	}
	if m == matchNotFound {
		return Iterator[T]{}, false
	}
	last := internalLast(it)
	if last.node != nil && !t.cmp.Less(k, last.Value()) {
		return last, true
	}
	return Iterator[T]{}, false
}

// FindMulti looks up the first value equivalent to k in a tree that may
// hold several (i.e. was built with InsertMulti).
func (t *Tree[T]) FindMulti(k T) (Iterator[T], bool) {
	if t.root == nil {
		return Iterator[T]{}, false
	}
	it := t.internalLowerBound(k)
	it = internalLast(it)
	if it.node != nil && !t.cmp.Less(k, it.Value()) {
		return it, true
	}
	return Iterator[T]{}, false
}

// CountUnique reports 1 if k is present, 0 otherwise.
func (t *Tree[T]) CountUnique(k T) int {
	if _, ok := t.FindUnique(k); ok {
		return 1
	}
	return 0
}

// CountMulti reports how many values equivalent to k are stored.
func (t *Tree[T]) CountMulti(k T) int {
	lo, hi := t.EqualRange(k)
	return Distance(lo, hi)
}

// growLeafRoot doubles (capped at t.n) the capacity of a full leaf-root
// node. A tree's very first nodes are undersized leaves (capacity 1, 2, 4,
// ...) rather than full-width ones, so that a small tree doesn't pay for N
// slots it will never fill; once the doubling reaches t.n the root behaves
// like any other node and overflow is handled by rebalanceOrSplit instead.
func (t *Tree[T]) growLeafRoot() {
	old := t.root
	newCap := t.n
	if 2*old.maxCount < t.n {
		newCap = 2 * old.maxCount
	}
	grown := t.alloc.newLeaf(nil, newCap)
	grown.swap(old)
	initRoot(grown, grown)
	t.alloc.release(old)
	t.root = grown
}

// promoteRoot makes room for a split one level above the root: if the root
// is a leaf, it is wrapped in a brand-new internal root with the old leaf
// as its sole child. If the root is already internal, its content is moved
// into a brand-new internal node that becomes the (now-empty) root's sole
// child — the root object's identity, and with it the tree's size and
// rightmost bookkeeping, is never reallocated. It returns the node (the old
// leaf, or the new sibling holding the old root's content) that the caller
// should now split.
func (t *Tree[T]) promoteRoot() *node[T] {
	if t.root.leaf {
		oldLeaf := t.root
		newRoot := t.alloc.newInternal(nil, t.n)
		initRoot(newRoot, oldLeaf)
		newRoot.setChild(0, oldLeaf)
		t.root = newRoot
		return oldLeaf
	}
	root := t.root
	sibling := t.alloc.newInternal(nil, t.n)
	// sibling.children[0] must be non-nil before swap, or swap's own
	// child-reparenting loop (keyed off sibling's pre-swap count of 0)
	// dereferences a nil slot; this placeholder is overwritten by the
	// real former-root children the swap moves in.
	sibling.setChild(0, sibling)
	sibling.swap(root)
	root.setChild(0, sibling)
	return sibling
}

// rebalanceOrSplit makes room for an insert at it (whose node is full) by
// first trying to shift values into the left sibling and then the right
// sibling if it has spare room, with the number of values moved biased by
// the side the new value is headed, and only splitting the node in two if
// neither sibling can help. it is updated in
// place to describe the same logical insertion point in whichever node the
// value should now land in.
func (t *Tree[T]) rebalanceOrSplit(it *Iterator[T]) {
	n := it.node
	insertPos := it.pos

	if n != t.root {
		p := n.parent
		if n.position > 0 {
			left := p.child(n.position - 1)
			if left.count < left.maxCount {
				div := 1
				if insertPos < left.maxCount {
					div = 2
				}
				toMove := (left.maxCount - left.count) / div
				if toMove < 1 {
					toMove = 1
				}
				if insertPos-toMove >= 0 || left.count+toMove < left.maxCount {
					left.rebalanceRightToLeft(n, toMove)
					insertPos -= toMove
					if insertPos < 0 {
						insertPos += left.count + 1
						n = left
					}
					it.node, it.pos = n, insertPos
					return
				}
			}
		}

		if n.position < p.count {
			right := p.child(n.position + 1)
			if right.count < right.maxCount {
				div := 1
				if insertPos > 0 {
					div = 2
				}
				toMove := (right.maxCount - right.count) / div
				if toMove < 1 {
					toMove = 1
				}
				if insertPos <= n.count-toMove || right.count+toMove < right.maxCount {
					right.rebalanceLeftToRight(n, toMove)
					if insertPos > n.count {
						insertPos -= n.count + 1
						n = right
					}
					it.node, it.pos = n, insertPos
					return
				}
			}
		}

		if p.count == p.maxCount {
			parentIt := Iterator[T]{node: p, pos: n.position}
			t.rebalanceOrSplit(&parentIt)
		}
	} else {
		n = t.promoteRoot()
	}

	var dest *node[T]
	if n.leaf {
		dest = t.alloc.newLeaf(n.parent, n.maxCount)
		n.split(dest, insertPos)
		if t.root.rightmost == n {
			t.root.rightmost = dest
		}
	} else {
		dest = t.alloc.newInternal(n.parent, n.maxCount)
		n.split(dest, insertPos)
	}

	if insertPos > n.count {
		insertPos -= n.count + 1
		n = dest
	}
	it.node, it.pos = n, insertPos
}

// internalInsert places v at (a leaf position derived from) it, growing,
// rebalancing or splitting as needed to make room first, and maintains the
// root's size counter (the counter only exists once the root is internal;
// while the root is a single growing leaf, Len() reads its count directly).
func (t *Tree[T]) internalInsert(it Iterator[T], v T) Iterator[T] {
	if !it.node.leaf {
		it.Prev()
		it.pos++
	}
	if it.node.count == it.node.maxCount {
		if it.node.maxCount < t.n {
			t.growLeafRoot()
			it.node = t.root
		} else {
			t.rebalanceOrSplit(&it)
			t.root.size++
		}
	} else if !t.root.leaf {
		t.root.size++
	}
	it.node.insertValue(it.pos, v)
	return it
}

// InsertUnique inserts v if no equivalent value is already present. It
// reports false, with it pointing at the existing equivalent value, if one
// was found; the tree is unchanged in that case.
func (t *Tree[T]) InsertUnique(v T) (Iterator[T], bool) {
	key := t.keyOf(v)
	if t.root == nil {
		t.root = t.alloc.newLeaf(nil, 1)
		initRoot(t.root, t.root)
	}
	it, m := t.locate(key)
	switch m {
	case matchFound:
		return internalLast(it), false
	case matchUnknown:
		last := internalLast(it)
		if last.node != nil && !t.cmp.Less(key, last.Value()) {
			return last, false
		}
	}
	return t.internalInsert(it, v), true
}

// InsertUniqueHint is InsertUnique, but first checks whether hint already
// denotes the correct sorted slot for v (i.e. the value immediately before
// hint is less than v, which is less than or equal to the value at hint).
// When the hint is right this costs O(1) amortized instead of O(log n);
// when it's wrong it falls back to InsertUnique, so a wrong hint never
// produces an incorrect tree, only a slower insert.
func (t *Tree[T]) InsertUniqueHint(hint Iterator[T], v T) (Iterator[T], bool) {
	if t.Empty() {
		return t.InsertUnique(v)
	}
	key := t.keyOf(v)
	end := t.End()
	begin := t.Begin()
	if hint.Equal(end) || t.cmp.Less(key, hint.Value()) {
		prev := hint
		prev.Prev()
		if hint.Equal(begin) || t.cmp.Less(prev.Value(), key) {
			return t.internalInsert(hint, v), true
		}
	} else if t.cmp.Less(hint.Value(), key) {
		next := hint
		next.Next()
		if next.Equal(end) || t.cmp.Less(key, next.Value()) {
			return t.internalInsert(next, v), true
		}
	} else {
		return hint, false
	}
	return t.InsertUnique(v)
}

// InsertUniqueFunc inserts the value materialize() returns only if no
// value equivalent to probe is already present, so callers whose values
// are expensive to build (or only meaningful once a slot is confirmed
// free) needn't construct one on the lookup path.
func (t *Tree[T]) InsertUniqueFunc(probe T, materialize func() T) (Iterator[T], bool) {
	if it, ok := t.FindUnique(probe); ok {
		return it, false
	}
	return t.InsertUnique(materialize())
}

// InsertMulti inserts v after any values already equivalent to it.
func (t *Tree[T]) InsertMulti(v T) Iterator[T] {
	key := t.keyOf(v)
	if t.root == nil {
		t.root = t.alloc.newLeaf(nil, 1)
		initRoot(t.root, t.root)
	}
	it := t.internalUpperBound(key)
	if it.node == nil {
		it = t.End()
	}
	return t.internalInsert(it, v)
}

// InsertMultiHint is InsertMulti's hinted counterpart: if hint already
// denotes a sorted slot where v legally belongs (previous <= v <= hint), the
// insert is O(1) amortized; otherwise it falls back to InsertMulti.
func (t *Tree[T]) InsertMultiHint(hint Iterator[T], v T) Iterator[T] {
	if t.Empty() {
		return t.InsertMulti(v)
	}
	key := t.keyOf(v)
	end := t.End()
	begin := t.Begin()
	if hint.Equal(end) || !t.cmp.Less(hint.Value(), key) {
		prev := hint
		prev.Prev()
		if hint.Equal(begin) || !t.cmp.Less(key, prev.Value()) {
			return t.internalInsert(hint, v)
		}
	} else {
		next := hint
		next.Next()
		if next.Equal(end) || !t.cmp.Less(next.Value(), key) {
			return t.internalInsert(next, v)
		}
	}
	return t.InsertMulti(v)
}

// mergeNodes folds right (and the parent delimiter between left and right)
// into left, the inverse of node.split, and retires right.
func (t *Tree[T]) mergeNodes(left, right *node[T]) {
	left.merge(right)
	if right.leaf && t.root.rightmost == right {
		t.root.rightmost = left
	}
	t.alloc.release(right)
}

// tryMergeOrRebalance repairs an undersized node (fewer than minCount
// values after a delete) by preferring a merge with a sibling that has
// room to absorb it outright, and falling back to shifting values in from
// a sibling that has some to spare. It reports whether it merged (which
// shrank the tree by one node, so the caller must keep walking up) or only
// rebalanced (which leaves tree shape, just not this node's population,
// unchanged).
func (t *Tree[T]) tryMergeOrRebalance(it *Iterator[T]) bool {
	n := it.node
	p := n.parent
	if n.position > 0 {
		left := p.child(n.position - 1)
		if 1+left.count+n.count <= left.maxCount {
			it.pos += 1 + left.count
			t.mergeNodes(left, n)
			it.node = left
			return true
		}
	}
	if n.position < p.count {
		right := p.child(n.position + 1)
		if 1+n.count+right.count <= right.maxCount {
			t.mergeNodes(n, right)
			return true
		}
		if right.count > t.minCount() && (n.count == 0 || it.pos > 0) {
			toMove := (right.count - n.count) / 2
			if toMove > right.count-1 {
				toMove = right.count - 1
			}
			n.rebalanceRightToLeft(right, toMove)
			return false
		}
	}
	if n.position > 0 {
		left := p.child(n.position - 1)
		if left.count > t.minCount() && (n.count == 0 || it.pos < n.count) {
			toMove := (left.count - n.count) / 2
			if toMove > left.count-1 {
				toMove = left.count - 1
			}
			n.rebalanceLeftToRight(left, toMove)
			it.pos += toMove
			return false
		}
	}
	return false
}

// tryShrink collapses the root by one level once it has lost its last
// value: an empty leaf root is simply discarded, an internal root with one
// leaf child is replaced by that leaf, and an internal root with one
// internal child has that child's content moved into the (retained) root
// object so the tree's size/rightmost bookkeeping never has to move.
func (t *Tree[T]) tryShrink() {
	if t.root.count > 0 {
		return
	}
	if t.root.leaf {
		t.alloc.release(t.root)
		t.root = nil
		return
	}
	child := t.root.child(0)
	if child.leaf {
		child.parent = child
		child.rightmost = child
		child.size = child.count
		t.alloc.release(t.root)
		t.root = child
		return
	}
	child.swap(t.root)
	t.alloc.release(child)
}

// Erase removes the value it points at and returns an iterator to the
// value that followed it, or End() if it pointed at the last value. it
// must be Valid().
func (t *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	if t.strict {
		if t.root == nil {
			panic(ErrEmptyTree)
		}
		if !it.Valid() {
			panic(ErrIteratorInvalid)
		}
	}
	internalDelete := false
	if !it.node.leaf {
		tmp := it
		it.Prev()
		it.node.values[it.pos], tmp.node.values[tmp.pos] = tmp.node.values[tmp.pos], it.node.values[it.pos]
		internalDelete = true
		t.root.size--
	} else if !t.root.leaf {
		t.root.size--
	}

	it.node.removeValue(it.pos)

	res := it
	for {
		if it.node == t.root {
			t.tryShrink()
			if t.root == nil {
				return t.End()
			}
			break
		}
		if it.node.count >= t.minCount() {
			break
		}
		merged := t.tryMergeOrRebalance(&it)
		if it.node.leaf {
			res = it
		}
		if !merged {
			break
		}
		it.node = it.node.parent
	}

	if res.pos == res.node.count {
		res.pos = res.node.count - 1
		res.Next()
	}
	if internalDelete {
		res.Next()
	}
	return res
}

// EraseRange removes every value in [from, to) and returns how many were
// removed.
func (t *Tree[T]) EraseRange(from, to Iterator[T]) int {
	// Each Erase may invalidate to, so count the range before erasing.
	n := Distance(from, to)
	for i := 0; i < n; i++ {
		from = t.Erase(from)
	}
	return n
}

// EraseUnique removes the value equivalent to k, if any, and reports how
// many were removed (0 or 1).
func (t *Tree[T]) EraseUnique(k T) int {
	it, ok := t.FindUnique(k)
	if !ok {
		return 0
	}
	t.Erase(it)
	return 1
}

// EraseMulti removes every value equivalent to k and reports how many were
// removed.
func (t *Tree[T]) EraseMulti(k T) int {
	lo, hi := t.EqualRange(k)
	return t.EraseRange(lo, hi)
}

// Clear removes every value from the tree, releasing all of its nodes.
func (t *Tree[T]) Clear() {
	if t.root != nil {
		t.internalClear(t.root)
		t.root = nil
	}
}

func (t *Tree[T]) internalClear(n *node[T]) {
	if !n.leaf {
		for i := 0; i <= n.count; i++ {
			t.internalClear(n.child(i))
		}
	}
	t.alloc.release(n)
}

// Assign discards the tree's current contents and copies every value from
// other, in order, without re-comparing keys (the source is already
// sorted, so each value can go straight onto the end).
func (t *Tree[T]) Assign(other *Tree[T]) {
	t.Clear()
	for it := other.Begin(); it.Valid(); it.Next() {
		v := it.Value()
		if t.Empty() {
			t.InsertMulti(v)
		} else {
			t.internalInsert(t.End(), v)
		}
	}
}

// Clone returns a deep copy of the tree: a new Tree with the same
// comparator and options-derived shape, holding independent copies of
// every node.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{cmp: t.cmp, linear: t.linear, n: t.n, alloc: NewFreeList[T](DefaultFreeListSize), logger: t.logger, strict: t.strict}
	c.Assign(t)
	return c
}

// keyOf extracts the ordering key from a value. For Tree[T] the key and the
// value are the same thing; Map[K,V]/MultiMap[K,V] (map.go, multimap.go)
// store Entry[K,V] as T and override comparison accordingly, so this stays
// the identity function here.
func (t *Tree[T]) keyOf(v T) T { return v }

// Height reports the number of nodes from the root down to (and including)
// a leaf. An empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	n := t.root
	for {
		h++
		n = n.parent
		if n == t.root {
			break
		}
	}
	return h
}

type nodeStats struct {
	leafNodes     int
	internalNodes int
}

func (t *Tree[T]) internalStats(n *node[T]) nodeStats {
	if n == nil {
		return nodeStats{}
	}
	if n.leaf {
		return nodeStats{leafNodes: 1}
	}
	res := nodeStats{internalNodes: 1}
	for i := 0; i <= n.count; i++ {
		child := t.internalStats(n.child(i))
		res.leafNodes += child.leafNodes
		res.internalNodes += child.internalNodes
	}
	return res
}

// LeafNodes reports the number of leaf nodes in the tree.
func (t *Tree[T]) LeafNodes() int { return t.internalStats(t.root).leafNodes }

// InternalNodes reports the number of internal nodes in the tree.
func (t *Tree[T]) InternalNodes() int { return t.internalStats(t.root).internalNodes }

// Nodes reports the total number of nodes (leaf and internal) in the tree.
func (t *Tree[T]) Nodes() int {
	s := t.internalStats(t.root)
	return s.leafNodes + s.internalNodes
}

// Fullness is the number of values stored divided by the maximum number
// the tree's current node count could hold; 1.0 is perfectly packed,
// smaller values indicate wasted capacity.
func (t *Tree[T]) Fullness() float64 {
	nodes := t.Nodes()
	if nodes == 0 {
		return 0
	}
	return float64(t.Len()) / float64(nodes*t.n)
}

// AverageBytesPerValue estimates, independent of how full any particular
// tree is, the per-value footprint of a leaf that is 75% full —
// experimentally a good match for a tree built from randomly ordered
// inserts.
func (t *Tree[T]) AverageBytesPerValue() float64 {
	leafBytes := float64(nodeOverheadBytes) + float64(t.n)*float64(valueSizeFor[T]())
	return leafBytes / (float64(t.n) * 0.75)
}

// Overhead is the structural cost of the tree, in bytes per value stored,
// beyond the bytes needed to hold the values themselves.
func (t *Tree[T]) Overhead() float64 {
	if t.Empty() {
		return 0
	}
	return float64(t.Nodes()*nodeOverheadBytes) / float64(t.Len())
}

// Verify walks the whole tree checking value ordering, node counts
// (including the fill floor on non-root nodes), parent/position links and
// the overall count. It stops at the first violation, logs it through the
// logger supplied via WithLogger (if any) and returns it as an error. It
// does not check that all leaves share one depth, nor the root's
// leftmost/rightmost links.
func (t *Tree[T]) Verify() error {
	if t.root == nil {
		return nil
	}
	count, err := t.internalVerify(t.root, t.root, nil, nil)
	if err != nil {
		if t.logger != nil {
			t.logger.WithError(err).Error("btree: verify failed")
		}
		return err
	}
	if count != t.Len() {
		err := fmt.Errorf("btree: size() reports %d but tree holds %d values", t.Len(), count)
		if t.logger != nil {
			t.logger.WithError(err).Error("btree: verify failed")
		}
		return err
	}
	return nil
}

func (t *Tree[T]) internalVerify(root, n *node[T], lo, hi *T) (int, error) {
	if n.count <= 0 || n.count > n.maxCount {
		return 0, fmt.Errorf("btree: node has invalid count %d (max %d)", n.count, n.maxCount)
	}
	if n != root && n.count < t.minCount() {
		return 0, fmt.Errorf("btree: node has count %d below the fill floor %d", n.count, t.minCount())
	}
	if lo != nil && t.cmp.Less(n.value(0), *lo) {
		return 0, fmt.Errorf("btree: value %v is less than its lower bound", n.value(0))
	}
	if hi != nil && t.cmp.Less(*hi, n.value(n.count-1)) {
		return 0, fmt.Errorf("btree: value %v exceeds its upper bound", n.value(n.count-1))
	}
	for i := 1; i < n.count; i++ {
		if t.cmp.Less(n.value(i), n.value(i-1)) {
			return 0, fmt.Errorf("btree: values out of order at position %d", i)
		}
	}
	count := n.count
	if !n.leaf {
		for i := 0; i <= n.count; i++ {
			c := n.child(i)
			if c == nil {
				return 0, fmt.Errorf("btree: nil child at position %d", i)
			}
			if c.parent != n {
				return 0, fmt.Errorf("btree: child at position %d has wrong parent link", i)
			}
			if c.position != i {
				return 0, fmt.Errorf("btree: child at position %d has wrong position field", i)
			}
			var childLo, childHi *T
			if i == 0 {
				childLo = lo
			} else {
				v := n.value(i - 1)
				childLo = &v
			}
			if i == n.count {
				childHi = hi
			} else {
				v := n.value(i)
				childHi = &v
			}
			sub, err := t.internalVerify(root, c, childLo, childHi)
			if err != nil {
				return 0, err
			}
			count += sub
		}
	}
	return count, nil
}

// Dump writes a human-readable, indented-by-depth listing of every value in
// the tree to w, and additionally emits a structured summary through the
// logger supplied via WithLogger (if any).
func (t *Tree[T]) Dump(w io.Writer) {
	if t.root != nil {
		t.internalDump(w, t.root, 0)
	}
	if t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"size":   t.Len(),
			"height": t.Height(),
			"nodes":  t.Nodes(),
		}).Debug("btree: dump")
	}
}

func (t *Tree[T]) internalDump(w io.Writer, n *node[T], level int) {
	for i := 0; i < n.count; i++ {
		if !n.leaf {
			t.internalDump(w, n.child(i), level+1)
		}
		fmt.Fprintf(w, "%s%v [%d]\n", strings.Repeat("  ", level), n.value(i), level)
	}
	if !n.leaf {
		t.internalDump(w, n.child(n.count), level+1)
	}
}
