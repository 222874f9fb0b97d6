package gallery

import "fmt"

var formatMultipliers = map[string]float64{
	"4K":      1.8,
	"2K":      1.5,
	"Full HD": 1.2,
	"HD":      1.0,
}

const defaultFormatMultiplier = 0.8

type DigitalArt struct {
	work
	format     string
	resolution int
	limited    bool
	edition    int
}

// NewDigitalArt creates a work; edition is meaningful for limited editions only.
func NewDigitalArt(title, author string, year int, baseValue float64, format string, resolution int, limited bool, edition int) *DigitalArt {
	if edition <= 0 {
		edition = 1
	}
	return &DigitalArt{
		work:       work{title: title, author: author, year: year, baseValue: baseValue},
		format:     format,
		resolution: resolution,
		limited:    limited,
		edition:    edition,
	}
}

func (d *DigitalArt) Kind() Kind             { return KindDigital }
func (d *DigitalArt) Format() string         { return d.format }
func (d *DigitalArt) Resolution() int        { return d.resolution }
func (d *DigitalArt) IsLimitedEdition() bool { return d.limited }

func (d *DigitalArt) Feature() (string, string) {
	return "Формат", d.format
}

func (d *DigitalArt) Display() string {
	edition := "Без ограничений"
	if d.limited {
		edition = fmt.Sprintf("Ограниченная серия №%d", d.edition)
	}
	return fmt.Sprintf("Цифровое искусство: %s\nФормат: %s, Разрешение: %dp\nТип: %s", d.title, d.format, d.resolution, edition)
}

func (d *DigitalArt) Appraise(year int) float64 {
	resolution := min(2.0, float64(d.resolution)/1000)
	edition := 0.5
	if d.limited {
		edition = 2.0
	}
	format, ok := formatMultipliers[d.format]
	if !ok {
		format = defaultFormatMultiplier
	}
	novelty := max(0.5, 2.0-d.age(year)*0.1)
	return d.baseValue * resolution * edition * format * novelty
}
