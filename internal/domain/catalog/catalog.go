// Package catalog holds the nested translation tree and the pure
// transformations applied to it during an export run: deep merge, scope
// filtering and canonical ordering.
package catalog

import (
	"sort"
	"strings"
)

// Catalog is a nested mapping from key to either a string leaf or another
// Catalog. Root keys are locale identifiers.
type Catalog map[string]any

// asCatalog reports whether v is a mapping node.
func asCatalog(v any) (Catalog, bool) {
	switch m := v.(type) {
	case Catalog:
		return m, true
	case map[string]any:
		return Catalog(m), true
	default:
		return nil, false
	}
}

// cloneValue deep-copies mapping nodes; leaves are returned as is.
func cloneValue(v any) any {
	if m, ok := asCatalog(v); ok {
		return m.Clone()
	}
	return v
}

// Clone returns a deep copy of c. A nil catalog clones to nil.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}
	return out
}

// Set stores value at path, creating intermediate mappings. A leaf found on
// the way is replaced by a mapping.
func (c Catalog) Set(path []string, value any) {
	if len(path) == 0 {
		return
	}
	node := c
	for _, key := range path[:len(path)-1] {
		child, ok := asCatalog(node[key])
		if !ok {
			child = Catalog{}
			node[key] = child
		}
		node = child
	}
	node[path[len(path)-1]] = cloneValue(value)
}

// SetDotted is Set with a dotted key such as "greetings.hello".
func (c Catalog) SetDotted(key string, value any) {
	c.Set(strings.Split(key, "."), value)
}

// Lookup walks path and returns the node found there.
func (c Catalog) Lookup(path ...string) (any, bool) {
	var node any = c
	for _, key := range path {
		m, ok := asCatalog(node)
		if !ok {
			return nil, false
		}
		if node, ok = m[key]; !ok {
			return nil, false
		}
	}
	return node, true
}

// Locales returns the root keys of c, sorted.
func (c Catalog) Locales() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
