package internal

// MarkMutualGroups tags files that are indistinguishable by resolved date
// and extension (burst shots, multi-file captures) so they receive ordering
// suffixes instead of colliding. Groups of size one are left untouched.
// Order within a group is the index iteration order, which is discovery
// order; ties are intentionally not re-sorted by original filename so the
// result is reproducible across runs given the same discovery order.
func MarkMutualGroups(ix *MediaIndex, extensions []string) {
	for _, date := range ix.UniqueDates() {
		for _, ext := range extensions {
			group := ix.ByDateExt(date, ext)
			if len(group) < 2 {
				continue
			}
			for i, meta := range group {
				Apply(meta, MetadataPatch{
					IsMutual:    ptr(true),
					MutualOrder: ptr(i + 1),
				})
			}
		}
	}
}
