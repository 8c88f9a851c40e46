package catalog

// Merge returns a new catalog combining target and source. Values from
// source win on conflicting keys unless both sides are mappings, in which
// case they are merged recursively. Neither input is modified.
func Merge(target, source Catalog) Catalog {
	out := target.Clone()
	if out == nil {
		out = Catalog{}
	}
	return MergeInto(out, source)
}

// MergeInto merges source into target in place and returns target. Mapping
// values taken from source are copied so target never aliases source.
func MergeInto(target, source Catalog) Catalog {
	if target == nil {
		target = Catalog{}
	}
	for k, sv := range source {
		src, srcIsMap := asCatalog(sv)
		dst, dstIsMap := asCatalog(target[k])
		if srcIsMap && dstIsMap {
			target[k] = MergeInto(dst, src)
			continue
		}
		target[k] = cloneValue(sv)
	}
	return target
}
