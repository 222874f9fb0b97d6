package gallery

func DefaultCollection() []Artwork {
	return []Artwork{
		NewPainting("Звездная ночь", "Винсент Ван Гог", 1889, 50_000_000, "постимпрессионизм", "масло", 1.2),
		NewPainting("Крик", "Эдвард Мунк", 1893, 45_000_000, "экспрессионизм", "масло, темпера", 0.9),
		NewSculpture("Давид", "Микеланджело", 1504, 80_000_000, "мрамор", 5600, "отличное"),
		NewSculpture("Мыслитель", "Огюст Роден", 1902, 35_000_000, "бронза", 180, "хорошее"),
		NewDigitalArt("Каждый день: первые 5000 дней", "Бипл", 2021, 1_000_000, "4K", 4096, true, 1),
		NewDigitalArt("Цифровая абстракция", "Алексей Петров", 2023, 50_000, "2K", 2048, false, 1),
	}
}

type Summary struct {
	Total        float64
	Average      float64
	MostValuable Artwork
	Top          float64
}

// Summarize appraises works as of year. The first of equally valued works wins.
func Summarize(works []Artwork, year int) Summary {
	var s Summary
	if len(works) == 0 {
		return s
	}

	for _, w := range works {
		v := w.Appraise(year)
		s.Total += v
		if s.MostValuable == nil || v > s.Top {
			s.MostValuable, s.Top = w, v
		}
	}
	s.Average = s.Total / float64(len(works))
	return s
}
