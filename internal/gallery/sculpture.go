package gallery

import "fmt"

var (
	materialMultipliers = map[string]float64{
		"бронза": 2.5,
		"мрамор": 3.0,
		"дерево": 1.5,
		"глина":  1.2,
	}
	conditionMultipliers = map[string]float64{
		"отличное":           1.5,
		"хорошее":            1.0,
		"удовлетворительное": 0.7,
		"плохое":             0.3,
	}
)

const (
	defaultMaterialMultiplier  = 1.0
	defaultConditionMultiplier = 0.5
	defaultSculptureCondition  = "хорошее"
)

type Sculpture struct {
	work
	material  string
	weight    float64
	condition string
}

// NewSculpture uses "хорошее" when condition is empty.
func NewSculpture(title, author string, year int, baseValue float64, material string, weight float64, condition string) *Sculpture {
	if condition == "" {
		condition = defaultSculptureCondition
	}
	return &Sculpture{
		work:      work{title: title, author: author, year: year, baseValue: baseValue},
		material:  material,
		weight:    weight,
		condition: condition,
	}
}

func (s *Sculpture) Kind() Kind        { return KindSculpture }
func (s *Sculpture) Material() string  { return s.material }
func (s *Sculpture) Weight() float64   { return s.weight }
func (s *Sculpture) Condition() string { return s.condition }

func (s *Sculpture) Feature() (string, string) {
	return "Материал", s.material
}

func (s *Sculpture) Display() string {
	return fmt.Sprintf("Скульптура: %s\nМатериал: %s, Вес: %g кг\nСостояние: %s", s.title, s.material, s.weight, s.condition)
}

func (s *Sculpture) Appraise(year int) float64 {
	material, ok := materialMultipliers[s.material]
	if !ok {
		material = defaultMaterialMultiplier
	}
	condition, ok := conditionMultipliers[s.condition]
	if !ok {
		condition = defaultConditionMultiplier
	}
	weight := min(3.0, s.weight*0.1)
	age := max(1.0, s.age(year)*0.03)
	return s.baseValue * material * weight * condition * age
}
