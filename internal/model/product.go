package model

// CartesianProduct returns every combination that takes one element from
// each list. The first list varies slowest, so
//
//	CartesianProduct([]string{"select", "insert"}, []string{"T"}, []string{"R"})
//
// yields (select,T,R) then (insert,T,R). An empty list yields no combinations.
func CartesianProduct[T any](lists ...[]T) [][]T {
	if len(lists) == 0 {
		return nil
	}
	total := 1
	for _, l := range lists {
		total *= len(l)
	}
	if total == 0 {
		return nil
	}

	out := make([][]T, 0, total)
	idx := make([]int, len(lists))
	for {
		combo := make([]T, len(lists))
		for i, l := range lists {
			combo[i] = l[idx[i]]
		}
		out = append(out, combo)

		// advance the rightmost index first
		pos := len(lists) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(lists[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}
