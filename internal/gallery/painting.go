package gallery

import "fmt"

var styleMultipliers = map[string]float64{
	"импрессионизм":  2.5,
	"реализм":        1.8,
	"абстракционизм": 1.5,
	"сюрреализм":     2.0,
}

const defaultStyleMultiplier = 1.2

type Painting struct {
	work
	style     string
	medium    string
	condition float64
}

// NewPainting clamps the condition multiplier to [0.1, 2.0].
func NewPainting(title, author string, year int, baseValue float64, style, medium string, condition float64) *Painting {
	return &Painting{
		work:      work{title: title, author: author, year: year, baseValue: baseValue},
		style:     style,
		medium:    medium,
		condition: max(0.1, min(2.0, condition)),
	}
}

func (p *Painting) Kind() Kind         { return KindPainting }
func (p *Painting) Style() string      { return p.style }
func (p *Painting) Medium() string     { return p.medium }
func (p *Painting) Condition() float64 { return p.condition }

func (p *Painting) Feature() (string, string) {
	return "Стиль", p.style
}

func (p *Painting) Display() string {
	condition := "Хорошее"
	switch {
	case p.condition > 1:
		condition = "Отличное"
	case p.condition < 1:
		condition = "Плохое"
	}
	return fmt.Sprintf("Картина: %s\nСтиль: %s, Техника: %s\nСостояние: %s", p.title, p.style, p.medium, condition)
}

func (p *Painting) Appraise(year int) float64 {
	ageMultiplier := max(1.0, p.age(year)*0.05)
	styleMultiplier, ok := styleMultipliers[p.style]
	if !ok {
		styleMultiplier = defaultStyleMultiplier
	}
	return p.baseValue * ageMultiplier * styleMultiplier * p.condition
}
