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

func TestMapGetSetDelete(t *testing.T) {
	m := NewOrderedMap[int, string](WithTargetNodeSize[Entry[int, string]](*testNodeSize))

	_, ok := m.Get(1)
	require.False(t, ok)

	isNew := m.Set(1, "one")
	require.True(t, isNew)
	isNew = m.Set(2, "two")
	require.True(t, isNew)

	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "one", v)

	// Setting an existing key overwrites the value without changing Len.
	isNew = m.Set(1, "ONE")
	require.False(t, isNew)
	v, ok = m.Get(1)
	require.True(t, ok)
	require.Equal(t, "ONE", v)
	require.Equal(t, 2, m.Len())

	require.NoError(t, m.Verify())

	deleted := m.Delete(1)
	require.True(t, deleted)
	_, ok = m.Get(1)
	require.False(t, ok)
	require.Equal(t, 1, m.Len())

	deleted = m.Delete(1)
	require.False(t, deleted)

	m.Clear()
	require.True(t, m.Empty())
}

func TestMapIterationOrderedByKey(t *testing.T) {
	m := NewOrderedMap[int, int](WithTargetNodeSize[Entry[int, int]](*testNodeSize))
	for i := 99; i >= 0; i-- {
		m.Set(i, i*i)
	}
	require.NoError(t, m.Verify())

	prev := -1
	n := 0
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		e := it.Value()
		require.Greater(t, e.Key, prev)
		require.Equal(t, e.Key*e.Key, e.Val)
		prev = e.Key
		n++
	}
	require.Equal(t, 100, n)
}

func TestMapWithCustomLess(t *testing.T) {
	m := NewMap[string, int](func(a, b string) bool { return a < b }, WithTargetNodeSize[Entry[string, int]](*testNodeSize))
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	var keys []string
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		keys = append(keys, it.Value().Key)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
}
