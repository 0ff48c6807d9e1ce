// Package stateset tracks membership of search states by structural key.
//
// A Table interns every distinct key to a dense uint32 id. Sets are roaring
// bitmaps over those ids, so the frontier and the explored set of one run
// share a single copy of each key.
package stateset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Table assigns dense ids to state keys.
type Table struct {
	ids map[string]uint32
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{ids: make(map[string]uint32)}
}

// Intern returns the id of key, assigning the next free id on first sight.
func (t *Table) Intern(key string) uint32 {
	if id, ok := t.ids[key]; ok {
		return id
	}
	id := uint32(len(t.ids))
	t.ids[key] = id
	return id
}

// Lookup returns the id of key without interning it.
func (t *Table) Lookup(key string) (uint32, bool) {
	id, ok := t.ids[key]
	return id, ok
}

// Len returns the number of interned keys.
func (t *Table) Len() int { return len(t.ids) }

// Set is a set of interned ids.
type Set struct {
	bits *roaring.Bitmap
}

// New creates an empty Set.
func New() *Set {
	return &Set{bits: roaring.New()}
}

// Add inserts id and reports whether it was absent.
func (s *Set) Add(id uint32) bool { return s.bits.CheckedAdd(id) }

// Remove deletes id and reports whether it was present.
func (s *Set) Remove(id uint32) bool { return s.bits.CheckedRemove(id) }

// Contains reports whether id is in the set.
func (s *Set) Contains(id uint32) bool { return s.bits.Contains(id) }

// Len returns the number of ids in the set.
func (s *Set) Len() int { return int(s.bits.GetCardinality()) }
