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

func TestIteratorNextPrev(t *testing.T) {
	tr := newIntTree(t)
	const n = 800
	for i := 0; i < n; i++ {
		tr.InsertUnique(i)
	}

	it := tr.Begin()
	for i := 0; i < n; i++ {
		require.True(t, it.Valid())
		require.Equal(t, i, it.Value())
		it.Next()
	}
	require.True(t, it.Equal(tr.End()))
	// Next() at End() stays at End().
	it.Next()
	require.True(t, it.Equal(tr.End()))

	it = tr.End()
	it.Prev()
	for i := n - 1; i >= 0; i-- {
		require.True(t, it.Valid())
		require.Equal(t, i, it.Value())
		if i > 0 {
			it.Prev()
		}
	}
	// Prev() at Begin() stays at Begin().
	before := it
	it.Prev()
	require.True(t, it.Equal(before))
}

func TestIteratorAdvance(t *testing.T) {
	tr := newIntTree(t)
	const n = 1500
	for i := 0; i < n; i++ {
		tr.InsertUnique(i)
	}

	it := tr.Begin()
	it.Advance(100)
	require.Equal(t, 100, it.Value())

	it.Advance(-50)
	require.Equal(t, 50, it.Value())

	it.Advance(0)
	require.Equal(t, 50, it.Value())

	// Advancing all the way to the end lands exactly at End().
	it = tr.Begin()
	it.Advance(n)
	require.True(t, it.Equal(tr.End()))

	it = tr.Begin()
	for i := 0; i+37 < n; i += 37 {
		require.Equal(t, i, it.Value())
		it.Advance(37)
	}
}

func TestDistance(t *testing.T) {
	tr := newIntTree(t)
	const n = 400
	for i := 0; i < n; i++ {
		tr.InsertUnique(i)
	}
	require.Equal(t, n, Distance(tr.Begin(), tr.End()))
	require.Equal(t, 0, Distance(tr.Begin(), tr.Begin()))

	lo := tr.Begin()
	lo.Advance(10)
	hi := tr.Begin()
	hi.Advance(20)
	require.Equal(t, 10, Distance(lo, hi))
}

func TestIteratorSetValue(t *testing.T) {
	tr := newIntTree(t)
	for i := 0; i < 100; i++ {
		tr.InsertUnique(i)
	}
	it, ok := tr.FindUnique(50)
	require.True(t, ok)
	it.SetValue(50) // same ordering position, legal in-place overwrite
	require.NoError(t, tr.Verify())
}
