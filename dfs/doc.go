// SPDX-License-Identifier: MIT

// Package dfs implements PathMachine, a depth-first path search on a
// core.Graph whose whole traversal is computed up front and then revealed
// one exploration-log entry per tick.
//
// Traversal rules:
//
//   - Neighbors are visited in adjacency insertion order.
//   - A node on the current path is never re-entered; a node fully explored
//     once (visited) is never re-entered either.
//   - Every edge descended appends an Explore entry.
//   - A node other than end with no eligible neighbor at the time it is
//     scanned appends a Deadend entry.
//   - Every return up the explicit stack appends a Backtrack entry.
//   - The search stops at the first discovery of end; the path found is not
//     guaranteed to be shortest.
//
// The log is append-only and never reordered, so Log() of a partially
// stepped machine is always a prefix of FullLog().
//
// Complexity:
//
//   - Time:   O(V + E) to build the log, O(1) per tick.
//   - Memory: O(V + E) for the log and the explicit stack.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing.
//   - ErrEndVertexNotFound    if end is missing.
package dfs
