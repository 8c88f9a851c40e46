package catalog

import "strings"

// Wildcard matches every key at a single level.
const Wildcard = "*"

// Scope is a path into a Catalog. Each segment is a literal key or Wildcard.
type Scope []string

// ParseScope splits a dotted scope such as "en.greetings.*".
func ParseScope(s string) Scope {
	if s == "" {
		return Scope{}
	}
	return strings.Split(s, ".")
}

// ParseScopes parses every dotted scope in list.
func ParseScopes(list []string) []Scope {
	out := make([]Scope, len(list))
	for i, s := range list {
		out[i] = ParseScope(s)
	}
	return out
}

func (s Scope) String() string { return strings.Join(s, ".") }

// Prefix returns a new scope with segments placed before s.
func (s Scope) Prefix(segments ...string) Scope {
	out := make(Scope, 0, len(segments)+len(s))
	out = append(out, segments...)
	return append(out, s...)
}

// Filter returns the part of c selected by scope, keeping the nesting of
// the matched path. It returns nil when a literal segment has no match.
// A wildcard level always yields a mapping, with children that filtered
// to nothing or to an empty mapping left out. The result shares no
// mapping with c.
func Filter(c Catalog, scope Scope) Catalog {
	if len(scope) == 0 {
		return c.Clone()
	}
	head, rest := scope[0], scope[1:]

	if head == Wildcard {
		out := Catalog{}
		for k, v := range c {
			if sub, ok := filterValue(v, rest); ok {
				out[k] = sub
			}
		}
		return out
	}

	v, ok := c[head]
	if !ok {
		return nil
	}
	if len(rest) == 0 {
		return Catalog{head: cloneValue(v)}
	}
	child, ok := asCatalog(v)
	if !ok {
		return nil
	}
	sub := Filter(child, rest)
	if sub == nil {
		return nil
	}
	return Catalog{head: sub}
}

// filterValue filters one child of a wildcard level and reports whether it
// should be kept.
func filterValue(v any, rest Scope) (any, bool) {
	child, isMap := asCatalog(v)
	if len(rest) == 0 {
		if isMap {
			return child.Clone(), len(child) > 0
		}
		return v, true
	}
	if !isMap {
		return nil, false
	}
	sub := Filter(child, rest)
	return sub, len(sub) > 0
}

// FilterAll filters c against every scope independently and deep-merges
// the matches. The result is never nil.
func FilterAll(c Catalog, scopes []Scope) Catalog {
	out := Catalog{}
	for _, s := range scopes {
		if r := Filter(c, s); r != nil {
			MergeInto(out, r)
		}
	}
	return out
}
