package listing

// Search returns every record whose field value equals target.
//
// sorted must already be in ascending order of field (see Sort); this is not
// checked, and an unsorted input gives an unspecified subset of the matches.
// target must be normalized the way Resolve normalizes, which ParseTarget does.
// Matches are returned in the order they appear in sorted. The result is empty,
// never nil, when nothing matches.
func Search[R Record](sorted []R, target Value, f Field) ([]R, error) {
	found, err := locate(sorted, target, f)
	if err != nil {
		return nil, err
	}
	if found < 0 {
		return []R{}, nil
	}

	lo := found
	for lo > 0 {
		v, err := Resolve(sorted[lo-1], f)
		if err != nil {
			return nil, err
		}
		if !Equal(v, target) {
			break
		}
		lo--
	}

	hi := found
	for hi < len(sorted)-1 {
		v, err := Resolve(sorted[hi+1], f)
		if err != nil {
			return nil, err
		}
		if !Equal(v, target) {
			break
		}
		hi++
	}

	out := make([]R, hi-lo+1)
	copy(out, sorted[lo:hi+1])
	return out, nil
}

// Find sorts records by f and returns the ones equal to the raw query.
func Find[R Record](records []R, f Field, raw string) ([]R, error) {
	target, err := ParseTarget(f, raw)
	if err != nil {
		return nil, err
	}
	sorted, err := Sort(records, f)
	if err != nil {
		return nil, err
	}
	return Search(sorted, target, f)
}

// locate binary-searches for any index whose value equals target, or -1.
func locate[R Record](sorted []R, target Value, f Field) (int, error) {
	left, right := 0, len(sorted)-1
	for left <= right {
		mid := left + (right-left)/2
		v, err := Resolve(sorted[mid], f)
		if err != nil {
			return -1, err
		}

		switch c := Compare(v, target); {
		case c == 0:
			return mid, nil
		case c < 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1, nil
}
