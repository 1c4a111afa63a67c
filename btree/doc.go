// Package btree implements an in-memory B-tree keyed by signed 64-bit
// integers, mapping each key to an opaque caller-owned value handle.
//
// The tree supports point insertion, point lookup, and a structural
// pretty-printer used for debugging and property testing. Deletion,
// ordered iteration and persistence are not implemented; see DESIGN.md
// at the repository root for why.
//
// Every node carries its own reader/writer lock. Searches and inserts
// descend the tree with lock-coupling: a child's lock is always acquired
// before its parent's is released, and an insert releases ancestor locks
// early once it reaches a node that is guaranteed not to split (see
// isSafe). This lets any number of readers and writers operate
// concurrently as long as they touch disjoint parts of the tree.
package btree
