/*
Package whitelist answers whether a font's embedding restrictions may be
overridden, judged by its family name.

Some font licenses permit embedding of their fonts into documents even if
the font program itself carries a restrictive embedding flag. The family
names of these fonts are kept in a static table.

Names are compared ignoring space characters, so that "Times New Roman",
"TimesNewRoman" and "Times  New Roman" are treated alike. Comparison ends
at the end of either the query or the table entry, whatever comes first;
a family name thus matches table entries it starts with.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package whitelist

import (
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'softfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("softfont.fonts")
}

var table []string
var tableSorting sync.Once

// sorted returns the name table, sorted with the comparison used for
// lookup.
func sorted() []string {
	tableSorting.Do(func() {
		table = make([]string, len(names))
		copy(table, names[:])
		sort.SliceStable(table, func(i, j int) bool {
			return order(table[i], table[j]) < 0
		})
	})
	return table
}

// Contains is true if the first n bytes of name match an entry of the
// table. n is clamped to the length of name. Queries consisting of spaces
// only never match.
//
// A query matches an entry if, spaces ignored, one of them starts with the
// other. Entries starting with the query follow the query's insertion
// point in the sorted table; entries the query starts with are found by
// searching each non-blank prefix of the query.
func Contains(name []byte, n int) bool {
	if n > len(name) {
		n = len(name)
	}
	if n <= 0 || blank(name[:n]) {
		return false
	}
	query := string(name[:n])
	t := sorted()
	if i := search(t, query); i < len(t) && compare(t[i], name[:n]) == 0 {
		tracer().Debugf("whitelist: %q matches %q", query, t[i])
		return true
	}
	for k := 1; k < len(query); k++ {
		if query[k-1] == ' ' {
			continue
		}
		if i := search(t, query[:k]); i < len(t) && order(t[i], query[:k]) == 0 {
			tracer().Debugf("whitelist: %q starts with %q", query, t[i])
			return true
		}
	}
	return false
}

// search returns the first position in t whose entry does not sort before
// query.
func search(t []string, query string) int {
	return sort.Search(len(t), func(i int) bool {
		return order(t[i], query) >= 0
	})
}

// MayEmbed is true if a font family is whitelisted.
func MayEmbed(family string) bool {
	return Contains([]byte(family), len(family))
}

// Len returns the number of table entries.
func Len() int {
	return len(names)
}

// compare compares a table entry with a query, skipping spaces in both.
// It returns 0 as soon as either the query or the entry is exhausted.
func compare(entry string, query []byte) int {
	i, j := 0, 0
	for {
		for i < len(entry) && entry[i] == ' ' {
			i++
		}
		for j < len(query) && query[j] == ' ' {
			j++
		}
		if i == len(entry) || j == len(query) {
			return 0
		}
		if entry[i] != query[j] {
			if entry[i] < query[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
}

// order is the total order for sorting the table: like compare, but a
// shorter name sorts before a longer one starting with it.
func order(a, b string) int {
	if c := compare(a, []byte(b)); c != 0 {
		return c
	}
	la, lb := nonblank(a), nonblank(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	return 0
}

func nonblank(s string) (n int) {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			n++
		}
	}
	return
}

func blank(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}
