package editor

import "github.com/spaghettifunk/anima-tools/engine/resources"

// DedupCache maps an original material, by identity, to the clone created
// for it during one Rip call.
type DedupCache map[*resources.Material]*resources.Material

func (c DedupCache) Lookup(original *resources.Material) (*resources.Material, bool) {
	clone, ok := c[original]
	return clone, ok
}

func (c DedupCache) Store(original, clone *resources.Material) {
	c[original] = clone
}

func (c DedupCache) Clear() {
	clear(c)
}
