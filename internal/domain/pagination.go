package domain

// PageSlice cuts one 1-indexed page out of an already-sorted result set.
// Out-of-range pages yield an empty slice, never an error.
func PageSlice[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(total/pageSize), with 0 items making 0 pages.
func TotalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
