package fontregistry

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Dict is a dictionary keyed by font IDs, with synonyms. Several IDs may
// share one entry; undefining any of them removes the entry together with
// all its synonyms. Enumeration follows definition order.
//
// The PCL interpreter uses one Dict for soft fonts (wrapped by Directory)
// and a separate one for macros.
type Dict struct {
	table *linkedhashmap.Map // key string → *dictEntry
}

type dictEntry struct {
	ids   []FontID // ids[0] is the defining ID
	value interface{}
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{table: linkedhashmap.New()}
}

func (d *Dict) entry(id FontID) (*dictEntry, bool) {
	v, ok := d.table.Get(id.key)
	if !ok {
		return nil, false
	}
	return v.(*dictEntry), true
}

// Put defines a value for id. An existing entry for id is undefined first,
// together with its synonyms.
func (d *Dict) Put(id FontID, value interface{}) {
	d.Undef(id)
	d.table.Put(id.key, &dictEntry{ids: []FontID{id}, value: value})
}

// Find looks up the value for id.
func (d *Dict) Find(id FontID) (interface{}, bool) {
	e, ok := d.entry(id)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// PutSynonym makes synonym an additional ID for the entry of existing.
// If synonym already names a different entry, that entry is undefined
// first. It returns false if existing is not defined.
func (d *Dict) PutSynonym(existing, synonym FontID) bool {
	e, ok := d.entry(existing)
	if !ok {
		return false
	}
	if other, ok := d.entry(synonym); ok {
		if other == e {
			return true
		}
		d.Undef(synonym)
	}
	e.ids = append(e.ids, synonym)
	d.table.Put(synonym.key, e)
	return true
}

// Synonyms returns all IDs of the entry for id, the defining ID first.
func (d *Dict) Synonyms(id FontID) []FontID {
	e, ok := d.entry(id)
	if !ok {
		return nil
	}
	return append([]FontID(nil), e.ids...)
}

// Undef removes the entry for id and all its synonyms. It returns false if
// id is not defined.
func (d *Dict) Undef(id FontID) bool {
	e, ok := d.entry(id)
	if !ok {
		return false
	}
	for _, syn := range e.ids {
		d.table.Remove(syn.key)
	}
	return true
}

// Each calls f once per entry, in definition order, with the entry's
// defining ID. Enumeration stops if f returns false. f may undefine
// entries.
func (d *Dict) Each(f func(id FontID, value interface{}) bool) {
	for _, e := range d.entries() {
		if _, ok := d.table.Get(e.ids[0].key); !ok {
			continue // undefined by f
		}
		if !f(e.ids[0], e.value) {
			return
		}
	}
}

func (d *Dict) entries() []*dictEntry {
	var entries []*dictEntry
	it := d.table.Iterator()
	for it.Next() {
		e := it.Value().(*dictEntry)
		if it.Key().(string) == e.ids[0].key {
			entries = append(entries, e)
		}
	}
	return entries
}

// Keys returns all IDs, synonyms included, in definition order.
func (d *Dict) Keys() []FontID {
	var keys []FontID
	it := d.table.Iterator()
	for it.Next() {
		e := it.Value().(*dictEntry)
		k := it.Key().(string)
		for _, id := range e.ids {
			if id.key == k {
				keys = append(keys, id)
				break
			}
		}
	}
	return keys
}

// Len returns the number of entries, not counting synonyms.
func (d *Dict) Len() int {
	return len(d.entries())
}

// Release removes all entries.
func (d *Dict) Release() {
	d.table.Clear()
}
