// Package weekday tells which day of the week a calendar date falls on.
package weekday

import (
	"strings"
	"time"

	"github.com/nikmy/labforms/pkg/errors"
)

var ErrBadDate = errors.Error("bad date format")

var names = [7]string{
	time.Sunday:    "Воскресенье",
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
}

var layouts = [...]string{
	time.DateOnly,
	"02.01.2006",
	"2006/01/02",
	"02-01-2006",
	time.RFC3339,
	time.DateTime,
}

type Result struct {
	Input string
	Date  time.Time
	Day   string
}

func Name(d time.Weekday) string {
	return names[d]
}

func Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrBadDate, "%q", raw)
}

func Lookup(raw string) (Result, error) {
	date, err := Parse(raw)
	if err != nil {
		return Result{Input: raw}, err
	}

	return Result{
		Input: raw,
		Date:  date,
		Day:   Name(date.Weekday()),
	}, nil
}
