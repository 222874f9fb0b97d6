// Package calendar renders a month date picker as a Telegram inline keyboard.
package calendar

import (
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/labforms/pkg/builder"
)

type Widget struct {
	currDate time.Time
	keyboard [][]tb.InlineButton
	language string
	widgetID string
}

func (w *Widget) Keyboard() [][]tb.InlineButton {
	return w.keyboard
}

func (w *Widget) Markup() *tb.ReplyMarkup {
	return &tb.ReplyMarkup{InlineKeyboard: w.keyboard}
}

type setter func(w *Widget)

func AsLanguage(lang string) setter {
	return func(w *Widget) {
		w.language = lang
	}
}

func AsCurrentDate(date time.Time) setter {
	return func(w *Widget) {
		w.currDate = date
	}
}

func AsID(id string) setter {
	return func(w *Widget) {
		w.widgetID = id
	}
}

// New builds a picker for the month containing date. Every button carries
// widgetID as its callback unique, so a single handler serves the whole widget.
func New(widgetID string, lang string, date time.Time) (*Widget, error) {
	return builder.New[Widget]().
		Use(AsCurrentDate(date)).
		Use(AsLanguage(lang)).
		Use(AsID(widgetID)).
		MaybeUse(YearMonthButton).
		MaybeUse(WeekdaysLayout).
		MaybeUse(ChooseDayLayout).
		MaybeUse(NavigationLayout).
		Get()
}

func (w *Widget) button(text, cmd string, date time.Time) tb.InlineButton {
	return tb.InlineButton{
		Unique: w.widgetID,
		Text:   text,
		Data:   encode(cmd, date),
	}
}

func (w *Widget) empty() tb.InlineButton {
	return w.button(" ", cmdNoop, w.currDate)
}

func (w *Widget) getWeekdaysDisplayNames() [7]string {
	if w.language == "en" {
		return enWeekdays
	}
	return ruWeekdays
}

func (w *Widget) getMonthDisplayName(m time.Month) string {
	if w.language == "en" {
		return m.String()
	}
	return ruMonths[m]
}
