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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrictChecksEraseEmptyTree(t *testing.T) {
	tr := newIntTree(t, WithStrictChecks[int]())
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrEmptyTree))
	}()
	tr.Erase(Iterator[int]{})
}

func TestStrictChecksEraseInvalidIterator(t *testing.T) {
	tr := newIntTree(t, WithStrictChecks[int]())
	for i := 0; i < 10; i++ {
		tr.InsertUnique(i)
	}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrIteratorInvalid))
	}()
	tr.Erase(tr.End())
}

func TestWithoutStrictChecksEraseNeverPanicsOnLiveIterator(t *testing.T) {
	tr := newIntTree(t)
	for i := 0; i < 10; i++ {
		tr.InsertUnique(i)
	}
	it, ok := tr.FindUnique(5)
	require.True(t, ok)
	require.NotPanics(t, func() {
		tr.Erase(it)
	})
	require.NoError(t, tr.Verify())
}
