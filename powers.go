package exercises

import "math"

// Powers returns a generator for the successive powers 1, base, base², …
// not exceeding limit. Each call of the generator yields the next power,
// with false once the sequence is exhausted.
//
//     next := Powers(2, 10)
//     for p, ok := next(); ok; p, ok = next() {
//         fmt.Println(p)    // 1 2 4 8
//     }
//
// For bases of 0, 1 and -1 the sequence would not grow, it stops as soon
// as a power repeats. Negative bases alternate in sign; negative powers never
// exceed limit, so the sequence ends with the first positive power greater than
// limit. Powers stops before an overflow of int64.
func Powers(base, limit int64) func() (int64, bool) {
	value, done := int64(1), limit < 1
	seen := map[int64]bool{}
	return func() (int64, bool) {
		if done || seen[value] {
			return 0, false
		}
		p := value
		seen[p] = true
		if next, ok := mul(p, base); ok && next <= limit {
			value = next
		} else {
			done = true
		}
		return p, true
	}
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}
