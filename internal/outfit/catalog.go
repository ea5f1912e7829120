package outfit

import (
	"log/slog"
	"sort"

	"github.com/stardrifter/naevgo/internal/gfx"
)

// Catalog owns every outfit record. It is built once by Load and only
// read afterwards; Close releases owned resources at shutdown.
type Catalog struct {
	outfits []*Outfit
	byName  map[string]*Outfit
	gfx     *gfx.Manager
	closed  bool
}

// Get returns the outfit with the given name, or nil with a warning
// when no such outfit exists.
func (c *Catalog) Get(name string) *Outfit {
	if o, ok := c.byName[name]; ok {
		return o
	}
	slog.Warn("outfit not found", "name", name)
	return nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int { return len(c.outfits) }

// All returns the backing record slice. Callers must treat it as
// read-only.
func (c *Catalog) All() []*Outfit { return c.outfits }

// Tech returns the names of every outfit available at the given base
// tech level or matching one of the extra tech unlocks. Output is
// grouped by classification in declaration order and sorted by
// ascending price within each group; a name is never emitted twice.
func (c *Catalog) Tech(base int, unlocks []int) []string {
	var avail []*Outfit
	for _, o := range c.outfits {
		if o.typ == TypeNull {
			continue
		}
		if o.tech <= base {
			avail = append(avail, o)
			continue
		}
		for _, t := range unlocks {
			if o.tech == t {
				avail = append(avail, o)
				break
			}
		}
	}

	sort.SliceStable(avail, func(i, j int) bool {
		if avail[i].typ != avail[j].typ {
			return avail[i].typ < avail[j].typ
		}
		return avail[i].price < avail[j].price
	})

	names := make([]string, 0, len(avail))
	seen := make(map[string]bool, len(avail))
	for _, o := range avail {
		if seen[o.name] {
			continue
		}
		seen[o.name] = true
		names = append(names, o.name)
	}
	return names
}

// Close releases every record's owned resources and drops the backing
// array. Called exactly once at shutdown.
func (c *Catalog) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.gfx != nil {
		for _, o := range c.outfits {
			c.gfx.Release(o.Gfx())
			c.gfx.Release(o.gfxStore)
		}
	}
	c.outfits = nil
	c.byName = nil
	slog.Debug("outfit catalog closed")
}
