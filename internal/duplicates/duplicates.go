// Package duplicates finds repeated values in a list of strings.
package duplicates

import (
	"regexp"
	"slices"
)

var (
	Fruits = []string{
		"apple", "banana", "orange", "apple", "grape",
		"banana", "kiwi", "mango", "orange", "pear",
		"apple", "kiwi", "pineapple", "banana", "grape",
	}

	Languages = []string{
		"JavaScript", "Python", "Java", "C++", "PHP",
		"Python", "JavaScript", "Ruby", "Go", "PHP",
		"Rust", "Java", "TypeScript", "Python", "C#",
	}
)

var separators = regexp.MustCompile(`[\s,]+`)

type Item struct {
	Index int
	Value string
}

type Duplicate struct {
	Value string
	Count int
}

type Stats struct {
	Total           int
	Unique          int
	DuplicateCount  int
	DuplicateTypes  int
	MostCommon      string
	MostCommonCount int
}

type Analysis struct {
	Original   []string
	Unique     []Item
	Duplicates []Duplicate
	Stats      Stats

	repeated map[string]struct{}
}

// Parse splits free-form input on runs of commas and whitespace.
func Parse(input string) []string {
	parts := separators.Split(input, -1)
	return slices.DeleteFunc(parts, func(s string) bool { return s == "" })
}

func Analyze(items []string) Analysis {
	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))

	a := Analysis{
		Original: append([]string(nil), items...),
		repeated: make(map[string]struct{}),
	}

	for i, v := range items {
		if counts[v] == 0 {
			order = append(order, v)
			a.Unique = append(a.Unique, Item{Index: i, Value: v})
		}
		counts[v]++
	}

	for _, v := range order {
		c := counts[v]
		if c > 1 {
			a.Duplicates = append(a.Duplicates, Duplicate{Value: v, Count: c})
			a.repeated[v] = struct{}{}
		}
		if c > a.Stats.MostCommonCount {
			a.Stats.MostCommon, a.Stats.MostCommonCount = v, c
		}
	}

	a.Stats.Total = len(items)
	a.Stats.Unique = len(a.Unique)
	a.Stats.DuplicateCount = a.Stats.Total - a.Stats.Unique
	a.Stats.DuplicateTypes = len(a.Duplicates)

	return a
}

// IsDuplicate reports whether v occurs more than once in the analysed list.
func (a Analysis) IsDuplicate(v string) bool {
	_, ok := a.repeated[v]
	return ok
}

// Uniqueness is the share of distinct values, in percent.
func (a Analysis) Uniqueness() float64 {
	if a.Stats.Total == 0 {
		return 0
	}
	return float64(a.Stats.Unique) / float64(a.Stats.Total) * 100
}
