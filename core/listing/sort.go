package listing

// keyed pairs a record with its resolved sort key so the key is computed once.
type keyed[R any] struct {
	record R
	key    Value
}

// Sort returns a new slice holding the records ordered by field, ascending.
//
// The sort is a stable top-down merge sort: records with equal values keep
// their relative input order. Neither the input slice nor the records are
// modified. If any record fails to resolve the field, Sort returns that error.
func Sort[R Record](records []R, f Field) ([]R, error) {
	items, err := resolveAll(records, f)
	if err != nil {
		return nil, err
	}

	sorted := mergeSort(items)

	out := make([]R, len(sorted))
	for i, it := range sorted {
		out[i] = it.record
	}
	return out, nil
}

// IsSorted reports whether records are in non-decreasing order of field.
func IsSorted[R Record](records []R, f Field) (bool, error) {
	var prev Value
	for i, r := range records {
		v, err := Resolve(r, f)
		if err != nil {
			return false, err
		}
		if i > 0 && Compare(prev, v) > 0 {
			return false, nil
		}
		prev = v
	}
	return true, nil
}

func resolveAll[R Record](records []R, f Field) ([]keyed[R], error) {
	items := make([]keyed[R], len(records))
	for i, r := range records {
		v, err := Resolve(r, f)
		if err != nil {
			return nil, err
		}
		items[i] = keyed[R]{record: r, key: v}
	}
	return items, nil
}

func mergeSort[R any](items []keyed[R]) []keyed[R] {
	if len(items) <= 1 {
		return items
	}

	mid := len(items) / 2
	left := mergeSort(items[:mid])
	right := mergeSort(items[mid:])

	return merge(left, right)
}

// merge combines two sorted runs into a fresh slice. On equal keys the left
// element goes first, which is what keeps the sort stable.
func merge[R any](left, right []keyed[R]) []keyed[R] {
	merged := make([]keyed[R], 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if Compare(left[i].key, right[j].key) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
