package refresh

// Coalesce collapses a drained batch down to one item per coalescing key.
// Later items override earlier ones for the same key, since they carry the
// most recent metadata for that location. Output preserves first-seen key
// order. Pure function: no side effects, no I/O.
func Coalesce(items []Item, mode CoalesceMode) []Item {
	if len(items) == 0 {
		return nil
	}

	index := make(map[string]int, len(items))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		key := item.Key(mode)
		if i, ok := index[key]; ok {
			out[i] = item // last write wins
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out
}
