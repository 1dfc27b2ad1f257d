package motion

// RangeMap maps n from the range [start1, stop1] onto [start2, stop2].
// With withinBounds set, n below start1 yields start2 and n above stop1
// yields stop2. The bounds checks assume start1 <= stop1, which keyframe
// tracks guarantee by construction. A zero-width source range collapses to
// a step at start1.
func RangeMap(n, start1, stop1, start2, stop2 float64, withinBounds bool) float64 {
	if withinBounds && n < start1 {
		return start2
	}
	if withinBounds && n > stop1 {
		return stop2
	}
	if stop1 == start1 {
		if n < start1 {
			return start2
		}
		return stop2
	}
	return (n-start1)/(stop1-start1)*(stop2-start2) + start2
}

// binSearchInsertAt returns the index at which item would be inserted into
// the sorted list. The first element found comparing equal places the index
// right after it.
func binSearchInsertAt[T, K any](list []T, item K, compare func(K, T) float64) int {
	switch len(list) {
	case 0:
		return 0
	case 1:
		if compare(item, list[0]) < 0 {
			return 0
		}
		return 1
	}
	start, end := 0, len(list)
	for start < end {
		pivot := start + (end-start)/2
		c := compare(item, list[pivot])
		if c == 0 {
			return pivot + 1
		}
		if c < 0 {
			end = pivot
		} else {
			start = pivot + 1
		}
	}
	if start >= len(list) {
		return len(list)
	}
	if compare(item, list[start]) < 0 {
		return start
	}
	return start + 1
}

// insertSorted inserts item at its binary-search position and returns the
// grown slice.
func insertSorted[T any](list []T, item T, compare func(T, T) float64) []T {
	at := binSearchInsertAt(list, item, compare)
	list = append(list, item)
	copy(list[at+1:], list[at:])
	list[at] = item
	return list
}

// bracket returns the indices of the keyframes surrounding pos in a track of
// length n (n >= 1), given the insertion index of pos. Before the first
// keyframe both indices point at 0; past the last they are the final pair.
// This is the only place the clamp policy lives.
func bracket(index, n int) (start, end int) {
	end = index
	if index == n {
		end = index - 1
	}
	start = end
	if end != 0 {
		start = end - 1
	}
	return start, end
}
