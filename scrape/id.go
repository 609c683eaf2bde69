package scrape

import (
	"strconv"

	"github.com/fwojciec/jdex"
)

// AllocateID returns an id for base that is not yet used in entries: base
// itself when free, otherwise the first free "base-N" for N = 1, 2, ...
// Overloaded methods and same-named objects get distinct ids this way.
func AllocateID(base string, entries *jdex.Entries) string {
	if !entries.Has(base) {
		return base
	}
	for n := 1; ; n++ {
		id := base + "-" + strconv.Itoa(n)
		if !entries.Has(id) {
			return id
		}
	}
}
