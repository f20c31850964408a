// SPDX-License-Identifier: MIT

// Package bfs implements LayeredMachine, a layered breadth-first path
// search on a core.Graph revealed one frontier layer per tick.
//
// Layer k is the set of vertices first discovered while scanning every
// outgoing edge of every vertex in layer k-1 (layer 0 is the start vertex
// and is not counted). Expansion stops after the layer in which end is
// discovered, when the frontier empties, or at the depth limit. The path is
// rebuilt from parent pointers, so it is a shortest path in edge count.
//
// Options:
//
//   - WithMaxDepth(d)         stop after d layers (0 = no limit, <0 invalid).
//   - WithFilterNeighbor(fn)  skip edges for which fn(curr, neighbor) is false.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing.
//   - ErrEndVertexNotFound    if end is missing.
//   - ErrOptionViolation      for invalid options.
package bfs
