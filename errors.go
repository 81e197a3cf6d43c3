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

import "errors"

// Sentinel errors panicked with by the strict-mode assertions a Tree built
// with WithStrictChecks runs on every Erase. A Tree without WithStrictChecks
// never constructs these; the violations they guard against remain
// undefined behavior on the unchecked fast path. Key-not-found is not one
// of these: it is surfaced as End() or a zero count, never an error.
var (
	// ErrEmptyTree is panicked when Erase is called on a Tree with no root.
	ErrEmptyTree = errors.New("btree: tree is empty")

	// ErrIteratorInvalid is panicked when Erase is handed an iterator that
	// does not point at a live value.
	ErrIteratorInvalid = errors.New("btree: iterator does not point at a value")
)
