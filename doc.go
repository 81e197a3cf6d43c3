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

// Package btree implements a cache-efficient, in-memory ordered
// associative container on top of a B-tree.
//
// Each node stores a fixed-capacity array of values (and, for internal
// nodes, one more child pointer than values) instead of a single key the
// way a red-black tree does. This gives a flatter tree, fewer pointer
// chases per lookup, and noticeably less per-element overhead, at the
// price of iterator stability: any Insert or Delete may reshuffle values
// across sibling nodes and invalidate every live Iterator, not only ones
// pointing at the changed element.
//
// Tree is the engine: it is parametric over a LessFunc/CompareFunc
// comparator and holds values of a single type T. Set, MultiSet, Map and
// MultiMap are thin facades over Tree providing the usual sorted-container
// surface for unique-key sets, multi-key sets, unique-key maps and
// multi-key maps respectively.
//
// The tree is not safe for concurrent use. Callers needing concurrent
// access must serialize their own access to a Tree, Set, MultiSet, Map or
// MultiMap.
package btree
