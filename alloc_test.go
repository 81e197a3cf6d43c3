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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeListReusesReleasedNodes(t *testing.T) {
	fl := NewFreeList[int](4)
	n1 := fl.newLeaf(nil, 8)
	n1.values[0] = 42
	n1.count = 1
	fl.release(n1)

	n2 := fl.newLeaf(nil, 8)
	require.Same(t, n1, n2)
	// release() must have scrubbed the recycled node's values and count.
	require.Equal(t, 0, n2.count)
	require.Equal(t, 0, n2.values[0])
}

func TestFreeListCapacityMismatchBypassesPool(t *testing.T) {
	fl := NewFreeList[int](4)
	n1 := fl.newLeaf(nil, 8)
	fl.release(n1)

	// A request for a different capacity must not hand back the pooled node.
	n2 := fl.newLeaf(nil, 16)
	require.NotSame(t, n1, n2)
	require.Equal(t, 16, len(n2.values))
}

func TestFreeListBoundedRetention(t *testing.T) {
	fl := NewFreeList[int](2)
	var released []*node[int]
	for i := 0; i < 5; i++ {
		n := fl.newLeaf(nil, 4)
		released = append(released, n)
	}
	for _, n := range released {
		fl.release(n)
	}
	require.LessOrEqual(t, len(fl.freelist), 2)
}

func TestSharedFreeListAcrossTrees(t *testing.T) {
	shared := NewFreeList[int](32)
	a := newIntTree(t, WithAllocator[int](shared))
	b := newIntTree(t, WithAllocator[int](shared))

	for i := 0; i < 500; i++ {
		a.InsertUnique(i)
	}
	for i := 0; i < 500; i++ {
		b.InsertUnique(i + 1000)
	}
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())

	a.Clear()
	require.NoError(t, b.Verify())
	require.Equal(t, 500, b.Len())
}
