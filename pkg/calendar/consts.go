package calendar

import "time"

const (
	dateFormat = time.DateOnly

	cmdPrev = "prev"
	cmdNext = "next"
	cmdDay  = "day"
	cmdNoop = "noop"
)

var (
	ruMonths = map[time.Month]string{
		time.January:   "Январь",
		time.February:  "Февраль",
		time.March:     "Март",
		time.April:     "Апрель",
		time.May:       "Май",
		time.June:      "Июнь",
		time.July:      "Июль",
		time.August:    "Август",
		time.September: "Сентябрь",
		time.October:   "Октябрь",
		time.November:  "Ноябрь",
		time.December:  "Декабрь",
	}

	ruWeekdays = [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
	enWeekdays = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
)
