// Package gallery appraises a collection of artworks of different kinds.
package gallery

import (
	"fmt"

	"github.com/nikmy/labforms/pkg/money"
)

type Kind string

const (
	KindPainting  Kind = "painting"
	KindSculpture Kind = "sculpture"
	KindDigital   Kind = "digital"
)

func (k Kind) Title() string {
	switch k {
	case KindPainting:
		return "Картина"
	case KindSculpture:
		return "Скульптура"
	case KindDigital:
		return "Цифровое искусство"
	default:
		return string(k)
	}
}

type Artwork interface {
	Title() string
	Author() string
	Year() int
	BaseValue() float64
	Kind() Kind

	// Display is a multi-line description of the work.
	Display() string
	// Appraise estimates the value as of the given calendar year.
	Appraise(year int) float64
	// Feature is the kind-specific property shown under the card: style, material or format.
	Feature() (label, value string)
}

func Info(a Artwork, year int) string {
	return fmt.Sprintf("%s (%s, %d) - Оценка: %s руб.", a.Title(), a.Author(), a.Year(), money.Format(a.Appraise(year)))
}

type work struct {
	title     string
	author    string
	year      int
	baseValue float64
}

func (w work) Title() string      { return w.title }
func (w work) Author() string     { return w.author }
func (w work) Year() int          { return w.year }
func (w work) BaseValue() float64 { return w.baseValue }

func (w work) age(year int) float64 {
	return float64(year - w.year)
}
