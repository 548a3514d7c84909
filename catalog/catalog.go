package catalog

import (
	"fmt"
	"sync"

	"github.com/chordpad/chordpad/model"
)

// Catalog owns the parsed chord entries. The source is fetched and
// parsed at most once, on the first Load; concurrent first callers block
// on the same parse. There is no refresh: the source is assumed static
// for the life of the process.
type Catalog struct {
	source  Source
	once    sync.Once
	entries []model.ChordEntry
	byName  map[string]model.ChordEntry
}

func New(source Source) *Catalog {
	return &Catalog{source: source}
}

// Load returns every entry in catalog order. An unreadable source
// degrades to an empty catalog rather than an error. The returned slice
// is the caller's to reorder or truncate; the entries themselves (and
// their inner slices) are shared and must be treated as read-only.
func (c *Catalog) Load() []model.ChordEntry {
	c.once.Do(func() {
		raw, err := c.source.Fetch()
		if err != nil {
			fmt.Printf("Could not read chord catalog: %v\n", err)
		} else {
			c.entries = Parse(raw)
		}
		c.byName = make(map[string]model.ChordEntry)
		for _, entry := range c.entries {
			c.byName[entry.Name] = entry
		}
	})
	res := make([]model.ChordEntry, len(c.entries))
	copy(res, c.entries)
	return res
}

// Get looks up a single entry by its exact name.
func (c *Catalog) Get(name string) (model.ChordEntry, bool) {
	c.Load()
	entry, ok := c.byName[name]
	return entry, ok
}
