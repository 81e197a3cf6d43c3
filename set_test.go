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

func TestSetInsertFindErase(t *testing.T) {
	s := NewOrderedSet[int](WithTargetNodeSize[int](*testNodeSize))
	require.True(t, s.Empty())

	for i := 0; i < 300; i++ {
		_, inserted := s.Insert(i)
		require.True(t, inserted)
	}
	require.Equal(t, 300, s.Len())
	require.NoError(t, s.Verify())

	_, inserted := s.Insert(150)
	require.False(t, inserted)
	require.Equal(t, 300, s.Len())

	require.True(t, s.Contains(150))
	require.False(t, s.Contains(9999))

	removed := s.Erase(150)
	require.Equal(t, 1, removed)
	require.False(t, s.Contains(150))
	require.Equal(t, 299, s.Len())

	var out []int
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
		out = append(out, it.Value())
	}
	require.Len(t, out, 299)
	for i := 1; i < len(out); i++ {
		require.Less(t, out[i-1], out[i])
	}

	s.Clear()
	require.True(t, s.Empty())
	require.NoError(t, s.Verify())
}

func TestSetStringLess(t *testing.T) {
	s := NewSet[string](func(a, b string) bool { return a < b }, WithTargetNodeSize[string](*testNodeSize))
	words := []string{"delta", "alpha", "charlie", "bravo", "echo"}
	for _, w := range words {
		s.Insert(w)
	}
	require.NoError(t, s.Verify())

	var out []string
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
		out = append(out, it.Value())
	}
	require.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, out)
}
