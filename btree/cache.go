package btree

import (
	"github.com/dgraph-io/ristretto/v2"
)

// lookupCache is an optional front end for Search, backed by ristretto's
// concurrent, admission-controlled cache. The teacher's go.mod declares
// dgraph-io/ristretto/v2 as a dependency but no package in that codebase
// imports it (see DESIGN.md); this gives it an actual home.
//
// Caching is safe here in a way it would not be for an arbitrary mutable
// store: this tree never updates or deletes a key once inserted (both are
// explicit Non-goals), so a (key -> value) pair cached after a successful
// Search or Insert is valid for the lifetime of the tree. There is no
// invalidation path because there is nothing to invalidate.
type lookupCache struct {
	c *ristretto.Cache[int64, any]
}

// WithLookupCache enables a bounded lookup cache holding approximately
// maxKeys entries. Passing it to Create is optional; a Tree with no
// lookup cache behaves identically, just without the fast path.
func WithLookupCache(maxKeys int64) Option {
	return func(t *Tree) {
		c, err := ristretto.NewCache(&ristretto.Config[int64, any]{
			NumCounters: maxKeys * 10,
			MaxCost:     maxKeys,
			BufferItems: 64,
			// Each entry costs exactly 1, so MaxCost is an entry count.
			IgnoreInternalCost: true,
		})
		if err != nil {
			panic("btree: failed to construct lookup cache: " + err.Error())
		}
		t.cache = &lookupCache{c: c}
	}
}

func (lc *lookupCache) get(key int64) (any, bool) {
	return lc.c.Get(key)
}

func (lc *lookupCache) set(key int64, value any) {
	lc.c.Set(key, value, 1)
}

func (lc *lookupCache) close() {
	lc.c.Close()
}
