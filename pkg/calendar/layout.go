package calendar

import (
	"fmt"
	"strconv"

	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/labforms/pkg/errors"
)

func YearMonthButton(w *Widget) error {
	if w.widgetID == "" {
		return errors.Fail("build calendar without widget id")
	}

	text := fmt.Sprintf("%s %d", w.getMonthDisplayName(w.currDate.Month()), w.currDate.Year())
	w.keyboard = append(w.keyboard, []tb.InlineButton{w.button(text, cmdNoop, w.currDate)})
	return nil
}

func WeekdaysLayout(w *Widget) error {
	row := make([]tb.InlineButton, 0, 7)
	for _, wd := range w.getWeekdaysDisplayNames() {
		row = append(row, w.button(wd, cmdNoop, w.currDate))
	}

	w.keyboard = append(w.keyboard, row)
	return nil
}

func ChooseDayLayout(w *Widget) error {
	first := beginningOfMonth(w.currDate)

	row := make([]tb.InlineButton, 0, 7)
	for i := 0; i < mondayOffset(first); i++ {
		row = append(row, w.empty())
	}

	for i := 0; i < daysIn(first); i++ {
		if len(row) == 7 {
			w.keyboard = append(w.keyboard, row)
			row = make([]tb.InlineButton, 0, 7)
		}

		day := first.AddDate(0, 0, i)
		row = append(row, w.button(strconv.Itoa(i+1), cmdDay, day))
	}

	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, w.empty())
		}
		w.keyboard = append(w.keyboard, row)
	}

	return nil
}

func NavigationLayout(w *Widget) error {
	first := beginningOfMonth(w.currDate)
	w.keyboard = append(w.keyboard, []tb.InlineButton{
		w.button("«", cmdPrev, first.AddDate(0, -1, 0)),
		w.button("»", cmdNext, first.AddDate(0, 1, 0)),
	})
	return nil
}
