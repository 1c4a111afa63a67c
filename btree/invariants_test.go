package btree

import "testing"

// checkInvariants walks the whole tree (no locking — callers must ensure
// no concurrent mutation) and fails t if any of the structural invariants
// from the design notes §8 do not hold:
//
//  1. every leaf is at the same depth
//  2. every internal node has exactly len(keys)+1 children
//  3. within every node, keys are strictly increasing
//  4. for every internal node, child i's keys are at most keys[i] (or
//     strictly above keys[i-1]), i.e. the separator bounds of spec.md §3
//     invariant 4 are respected — the upper bound is inclusive because a
//     promoted separator remains the largest key retained in its left
//     child (splitLeafWithInsert)
//  5. every child's parent pointer refers back to its actual parent
//  6. no key appears twice anywhere in the tree
func checkInvariants(t *testing.T, tr *Tree) {
	t.Helper()

	seen := make(map[int64]bool)
	leafDepth := -1

	var walk func(n node, parent *internalNode, lo, hi *int64, depth int)
	walk = func(n node, parent *internalNode, lo, hi *int64, depth int) {
		if n.hdr().parent != parent {
			t.Fatalf("node at depth %d has wrong parent back-link", depth)
		}

		keys := n.hdr().keys
		for i := 1; i < len(keys); i++ {
			if keys[i-1] >= keys[i] {
				t.Fatalf("keys not strictly increasing at depth %d: %v", depth, keys)
			}
		}
		for _, k := range keys {
			if lo != nil && k <= *lo {
				t.Fatalf("key %d violates lower separator bound %d", k, *lo)
			}
			if hi != nil && k > *hi {
				t.Fatalf("key %d violates upper separator bound %d", k, *hi)
			}
		}

		switch nn := n.(type) {
		case *leafNode:
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				t.Fatalf("leaf at depth %d, want %d (unequal leaf depths)", depth, leafDepth)
			}
			for _, k := range nn.keys {
				if seen[k] {
					t.Fatalf("duplicate key %d", k)
				}
				seen[k] = true
			}

		case *internalNode:
			if len(nn.children) != len(nn.keys)+1 {
				t.Fatalf("internal node has %d keys but %d children, want %d", len(nn.keys), len(nn.children), len(nn.keys)+1)
			}
			for i, c := range nn.children {
				var childLo, childHi *int64
				if i > 0 {
					childLo = &nn.keys[i-1]
				} else {
					childLo = lo
				}
				if i < len(nn.keys) {
					childHi = &nn.keys[i]
				} else {
					childHi = hi
				}
				walk(c, nn, childLo, childHi, depth+1)
			}
		}
	}

	walk(tr.loadRoot(), nil, nil, nil, 0)
}
