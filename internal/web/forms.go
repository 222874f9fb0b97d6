package web

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/labforms/internal/duplicates"
	"github.com/nikmy/labforms/internal/gallery"
	"github.com/nikmy/labforms/internal/pipeline"
	"github.com/nikmy/labforms/internal/splitter"
	"github.com/nikmy/labforms/internal/threshold"
	"github.com/nikmy/labforms/internal/weekday"
	"github.com/nikmy/labforms/pkg/errors"
)

func isPost(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodPost
}

type weekdayPage struct {
	Date   string
	Result *weekday.Result
	Bad    bool
}

func (s *server) handleWeekday(c *fiber.Ctx) error {
	var p weekdayPage
	if isPost(c) {
		p.Date = c.FormValue("date")
	}

	if p.Date != "" {
		res, err := weekday.Lookup(p.Date)
		if err != nil {
			s.log.Debug(errors.WrapFail(err, "look up weekday"))
			p.Bad = true
		} else {
			p.Result = &res
		}
	}

	return c.Render("weekday", p)
}

type pipelinePage struct {
	Text   string
	Traces []pipeline.Trace
	Result string
}

func (s *server) handlePipeline(c *fiber.Ctx) error {
	var p pipelinePage
	if isPost(c) {
		p.Text = c.FormValue("text")
	}

	if p.Text != "" {
		p.Traces = pipeline.Run(p.Text, pipeline.Default()...)
		p.Result = pipeline.Result(p.Traces)
	}

	return c.Render("pipeline", p)
}

type splitPage struct {
	Numbers  string
	Elements []splitter.Element
	PrintR   string
}

func (s *server) handleSplit(c *fiber.Ctx) error {
	var p splitPage
	if isPost(c) {
		p.Numbers = c.FormValue("numbers")
	}

	p.Elements = splitter.Split(p.Numbers)
	if len(p.Elements) != 0 {
		p.PrintR = splitter.PrintR(p.Elements)
	}

	return c.Render("split", p)
}

type thresholdValue struct {
	Index int
	Value int
	Above bool
}

type thresholdPage struct {
	Limit     int
	Submitted bool
	Keys      []int
	Values    []thresholdValue
	Stats     threshold.Stats
}

func (s *server) handleThreshold(c *fiber.Ctx) error {
	p := thresholdPage{Limit: threshold.DefaultLimit}
	if isPost(c) {
		p.Submitted = true
		p.Limit = parseInt(c.FormValue("threshold"))
		p.Keys = threshold.KeysAbove(threshold.Default, p.Limit)
	}

	for i, v := range threshold.Default {
		p.Values = append(p.Values, thresholdValue{Index: i, Value: v, Above: v > p.Limit})
	}
	p.Stats = threshold.Describe(threshold.Default)

	return c.Render("threshold", p)
}

// parseInt reads the leading integer of a form value, so "25.7" and "25abc"
// are 25. No leading digits counts as 0, overflow saturates.
func parseInt(raw string) int {
	raw = strings.TrimSpace(raw)

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	v, err := strconv.Atoi(raw[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

type duplicatesPage struct {
	Input    string
	Analysis duplicates.Analysis
	Cells    []duplicateCell
}

type duplicateCell struct {
	Index     int
	Value     string
	Duplicate bool
}

func (s *server) handleDuplicates(c *fiber.Ctx) error {
	items := duplicates.Fruits
	if isPost(c) {
		switch {
		case c.FormValue("use_default") != "":
		case c.FormValue("add_sample") != "":
			items = duplicates.Languages
		default:
			if custom := duplicates.Parse(c.FormValue("custom_array")); len(custom) != 0 {
				items = custom
			}
		}
	}

	a := duplicates.Analyze(items)
	p := duplicatesPage{
		Input:    strings.Join(items, ", "),
		Analysis: a,
	}
	for i, v := range a.Original {
		p.Cells = append(p.Cells, duplicateCell{Index: i, Value: v, Duplicate: a.IsDuplicate(v)})
	}

	return c.Render("duplicates", p)
}

type galleryCard struct {
	Art          gallery.Artwork
	Display      string
	Value        float64
	Info         string
	FeatureLabel string
	FeatureValue string
}

type galleryPage struct {
	Year    int
	Cards   []galleryCard
	Summary gallery.Summary
}

func (s *server) handleGallery(c *fiber.Ctx) error {
	year := s.now().Year()
	works := gallery.DefaultCollection()

	p := galleryPage{Year: year, Summary: gallery.Summarize(works, year)}
	for _, w := range works {
		label, value := w.Feature()
		p.Cards = append(p.Cards, galleryCard{
			Art:          w,
			Display:      w.Display(),
			Value:        w.Appraise(year),
			Info:         gallery.Info(w, year),
			FeatureLabel: label,
			FeatureValue: value,
		})
	}

	return c.Render("gallery", p)
}
