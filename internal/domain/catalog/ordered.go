package catalog

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Entry is one key of an Ordered catalog. Value is a string leaf or a
// nested Ordered.
type Entry struct {
	Key   string
	Value any
}

// Ordered is a catalog with a fixed key order. It encodes to JSON in that
// order.
type Ordered []Entry

// Sorted returns c with keys sorted lexicographically at every level.
func Sorted(c Catalog) Ordered {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Ordered, 0, len(keys))
	for _, k := range keys {
		v := c[k]
		if m, ok := asCatalog(v); ok {
			out = append(out, Entry{Key: k, Value: Sorted(m)})
			continue
		}
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// Keys returns the keys of o in order.
func (o Ordered) Keys() []string {
	out := make([]string, len(o))
	for i, e := range o {
		out[i] = e.Key
	}
	return out
}

// Get returns the value stored under key.
func (o Ordered) Get(key string) (any, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (o Ordered) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
