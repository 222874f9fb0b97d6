// Package splitter turns a comma separated string into a list of values.
package splitter

import (
	"fmt"
	"strings"
)

// Element is a kept value together with its position in the raw input,
// so gaps left by dropped empty parts stay visible.
type Element struct {
	Index int
	Value string
}

func Split(input string) []Element {
	parts := strings.Split(input, ",")

	elems := make([]Element, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		elems = append(elems, Element{Index: i, Value: part})
	}

	return elems
}

func Values(elems []Element) []string {
	values := make([]string, len(elems))
	for i, e := range elems {
		values[i] = e.Value
	}
	return values
}

// PrintR renders elements in the "Array ( [i] => v )" dump layout.
func PrintR(elems []Element) string {
	var b strings.Builder
	b.WriteString("Array\n(\n")
	for _, e := range elems {
		fmt.Fprintf(&b, "    [%d] => %s\n", e.Index, e.Value)
	}
	b.WriteString(")\n")
	return b.String()
}
