// Package threshold searches an integer array for values above a limit.
package threshold

const DefaultLimit = 20

// Default is the array every page visit analyses.
var Default = []int{10, 25, 8, 45, 15, 32, 18, 50, 5, 28, 12, 38, 22, 41, 7}

type Stats struct {
	Min     int
	Max     int
	Average float64
	Count   int
}

// KeysAbove returns the indices of values strictly greater than limit, in order.
func KeysAbove(values []int, limit int) []int {
	keys := make([]int, 0, len(values))
	for i, v := range values {
		if v > limit {
			keys = append(keys, i)
		}
	}
	return keys
}

func Describe(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	s := Stats{Min: values[0], Max: values[0], Count: len(values)}

	sum := 0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += v
	}
	s.Average = float64(sum) / float64(len(values))

	return s
}
