// Package pipeline runs a string through a chain of transformations and
// records the value after every step.
package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const sourceStep = "Исходная строка"

type Step struct {
	Name  string
	Apply func(string) string
}

type Trace struct {
	Name  string
	Value string
}

var (
	Trim = Step{Name: "trim", Apply: strings.TrimSpace}

	Lower = Step{Name: "mb_strtolower", Apply: func(s string) string {
		return cases.Lower(language.Russian).String(s)
	}}

	UpperFirst = Step{Name: "ucfirst", Apply: upperFirst}
)

func Default() []Step {
	return []Step{Trim, Lower, UpperFirst}
}

// Run applies steps in order. The first trace entry holds the untouched input.
func Run(input string, steps ...Step) []Trace {
	traces := make([]Trace, 0, len(steps)+1)
	traces = append(traces, Trace{Name: sourceStep, Value: input})

	value := input
	for _, step := range steps {
		value = step.Apply(value)
		traces = append(traces, Trace{Name: "После " + step.Name, Value: value})
	}

	return traces
}

// Result is the value produced by the last step.
func Result(traces []Trace) string {
	if len(traces) == 0 {
		return ""
	}
	return traces[len(traces)-1].Value
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
